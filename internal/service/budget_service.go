package service

import (
	"context"

	"github.com/starke/backend/internal/model"
	"github.com/starke/backend/internal/pagination"
)

// BudgetService defines the business logic for quote request submissions.
// The contract mirrors MessageService with the budget field set; company is
// optional and defaults to an empty string.
type BudgetService interface {
	Submit(ctx context.Context, b *model.Budget) error
	List(ctx context.Context, p pagination.Params) ([]*model.Budget, int, error)
}
