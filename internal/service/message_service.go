package service

import (
	"context"

	"github.com/starke/backend/internal/model"
	"github.com/starke/backend/internal/pagination"
)

// MessageService defines the business logic for contact message submissions.
type MessageService interface {
	// Submit validates and stores a new message. The msg.ID and CreatedAt
	// fields are populated by the implementation. A *validate.Error is
	// returned when required fields are missing; nothing is written in
	// that case.
	Submit(ctx context.Context, msg *model.Message) error

	// List returns one page of messages ordered newest-first, plus the
	// total row count.
	List(ctx context.Context, p pagination.Params) ([]*model.Message, int, error)
}
