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

var messageRequired = []string{"name", "email", "subject", "message"}

// messageServiceImpl is the production implementation of MessageService.
type messageServiceImpl struct {
	repo    repository.MessageRepository
	timeout time.Duration
}

// NewMessageService creates a MessageService backed by the given repository.
// Database operations are bounded by timeout; zero disables the bound.
func NewMessageService(repo repository.MessageRepository, timeout time.Duration) MessageService {
	return &messageServiceImpl{repo: repo, timeout: timeout}
}

// Submit trims all fields, validates them, stamps CreatedAt with the current
// UTC instant, and persists the message as a single committed insert.
func (s *messageServiceImpl) Submit(ctx context.Context, msg *model.Message) error {
	msg.Name = strings.TrimSpace(msg.Name)
	msg.Email = strings.TrimSpace(msg.Email)
	msg.Subject = strings.TrimSpace(msg.Subject)
	msg.Message = strings.TrimSpace(msg.Message)

	missing := validate.Required(map[string]string{
		"name":    msg.Name,
		"email":   msg.Email,
		"subject": msg.Subject,
		"message": msg.Message,
	}, messageRequired)
	if len(missing) > 0 {
		return &validate.Error{Missing: missing}
	}

	msg.CreatedAt = time.Now().UTC()

	ctx, cancel := s.scoped(ctx)
	defer cancel()
	if err := s.repo.Save(ctx, msg); err != nil {
		slog.Error("save message failed", "error", err)
		return fmt.Errorf("save message: %w", err)
	}
	return nil
}

func (s *messageServiceImpl) List(ctx context.Context, p pagination.Params) ([]*model.Message, int, error) {
	ctx, cancel := s.scoped(ctx)
	defer cancel()
	return s.repo.List(ctx, p.PageSize, p.Offset())
}

func (s *messageServiceImpl) scoped(ctx context.Context) (context.Context, context.CancelFunc) {
	if s.timeout <= 0 {
		return ctx, func() {}
	}
	return context.WithTimeout(ctx, s.timeout)
}
