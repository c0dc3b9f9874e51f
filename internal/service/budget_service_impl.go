package service

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/starke/backend/internal/model"
	"github.com/starke/backend/internal/pagination"
	"github.com/starke/backend/internal/repository"
	"github.com/starke/backend/internal/validate"
)

// company is deliberately absent: it is the one optional field.
var budgetRequired = []string{"name", "email", "phone", "service", "details", "city"}

type budgetServiceImpl struct {
	repo    repository.BudgetRepository
	timeout time.Duration
}

// NewBudgetService creates a BudgetService backed by the given repository.
func NewBudgetService(repo repository.BudgetRepository, timeout time.Duration) BudgetService {
	return &budgetServiceImpl{repo: repo, timeout: timeout}
}

func (s *budgetServiceImpl) Submit(ctx context.Context, b *model.Budget) error {
	b.Name = strings.TrimSpace(b.Name)
	b.Email = strings.TrimSpace(b.Email)
	b.Phone = strings.TrimSpace(b.Phone)
	b.Service = strings.TrimSpace(b.Service)
	b.Details = strings.TrimSpace(b.Details)
	b.Company = strings.TrimSpace(b.Company)
	b.City = strings.TrimSpace(b.City)

	missing := validate.Required(map[string]string{
		"name":    b.Name,
		"email":   b.Email,
		"phone":   b.Phone,
		"service": b.Service,
		"details": b.Details,
		"city":    b.City,
	}, budgetRequired)
	if len(missing) > 0 {
		return &validate.Error{Missing: missing}
	}

	b.CreatedAt = time.Now().UTC()

	ctx, cancel := s.scoped(ctx)
	defer cancel()
	if err := s.repo.Save(ctx, b); err != nil {
		slog.Error("save budget failed", "error", err)
		return fmt.Errorf("save budget: %w", err)
	}
	return nil
}

func (s *budgetServiceImpl) List(ctx context.Context, p pagination.Params) ([]*model.Budget, int, error) {
	ctx, cancel := s.scoped(ctx)
	defer cancel()
	return s.repo.List(ctx, p.PageSize, p.Offset())
}

func (s *budgetServiceImpl) scoped(ctx context.Context) (context.Context, context.CancelFunc) {
	if s.timeout <= 0 {
		return ctx, func() {}
	}
	return context.WithTimeout(ctx, s.timeout)
}
