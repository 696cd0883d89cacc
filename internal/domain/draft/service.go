package draft

import (
	"context"
	"fmt"
	"time"

	"golang.org/x/exp/slog"

	"legaldesk/internal/domain/record"
)

type Repository = record.Repository[Draft]

type Servicer interface {
	Save(ctx context.Context, owner string, category Category, docType, content string) (Draft, error)
	List(ctx context.Context, owner string) ([]Draft, error)
}

type Service struct {
	repo Repository
	log  *slog.Logger
	now  func() time.Time
}

func NewService(repo Repository, log *slog.Logger) *Service {
	return &Service{
		repo: repo,
		log:  log.With("component", "draft_service"),
		now:  time.Now,
	}
}

// Save persists a copy of the editor content. Nothing else ever writes drafts.
func (s *Service) Save(ctx context.Context, owner string, category Category, docType, content string) (Draft, error) {
	if owner == "" {
		return Draft{}, record.ErrNoOwner
	}
	if err := Validate(category, docType); err != nil {
		return Draft{}, err
	}

	d := Draft{
		Category: category,
		DocType:  docType,
		Content:  content,
		Date:     record.Today(s.now),
	}
	if _, err := s.repo.Create(ctx, owner, &d); err != nil {
		s.log.Error("failed to save draft", "owner", owner, "error", err)
		return Draft{}, fmt.Errorf("save draft: %w", err)
	}

	s.log.Info("draft saved", "owner", owner, "id", d.ID, "doc_type", docType)
	return d, nil
}

// List returns the owner's drafts, newest first.
func (s *Service) List(ctx context.Context, owner string) ([]Draft, error) {
	if owner == "" {
		return nil, record.ErrNoOwner
	}

	items, err := s.repo.ListByOwner(ctx, owner, record.ListOptions{OrderBy: "id", Desc: true})
	if err != nil {
		return nil, fmt.Errorf("list drafts: %w", err)
	}
	return items, nil
}
