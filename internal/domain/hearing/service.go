package hearing

import (
	"context"
	"fmt"
	"strings"

	"golang.org/x/exp/slog"

	"legaldesk/internal/domain/record"
)

type Repository = record.Repository[Hearing]

type Servicer interface {
	Add(ctx context.Context, owner, caseName, category, date string) (Hearing, error)
	Upcoming(ctx context.Context, owner string) ([]Hearing, error)
}

type Service struct {
	repo Repository
	log  *slog.Logger
}

func NewService(repo Repository, log *slog.Logger) *Service {
	return &Service{
		repo: repo,
		log:  log.With("component", "hearing_service"),
	}
}

// Add appends a hearing to the owner's docket.
func (s *Service) Add(ctx context.Context, owner, caseName, category, date string) (Hearing, error) {
	if owner == "" {
		return Hearing{}, record.ErrNoOwner
	}
	if strings.TrimSpace(caseName) == "" {
		return Hearing{}, record.Invalid("case name must not be empty")
	}

	day, err := record.ParseDate(date)
	if err != nil {
		return Hearing{}, err
	}
	if category == "" {
		category = DefaultCategory
	}

	h := Hearing{CaseName: caseName, Category: category, Date: day}
	if _, err := s.repo.Create(ctx, owner, &h); err != nil {
		s.log.Error("failed to save hearing", "owner", owner, "error", err)
		return Hearing{}, fmt.Errorf("save hearing: %w", err)
	}

	s.log.Debug("hearing saved", "owner", owner, "id", h.ID)
	return h, nil
}

// Upcoming returns the owner's first hearings by ascending date. Past dates
// are not filtered out.
func (s *Service) Upcoming(ctx context.Context, owner string) ([]Hearing, error) {
	if owner == "" {
		return nil, record.ErrNoOwner
	}

	items, err := s.repo.ListByOwner(ctx, owner, record.ListOptions{
		OrderBy: "hearing_date",
		Limit:   UpcomingLimit,
	})
	if err != nil {
		return nil, fmt.Errorf("list hearings: %w", err)
	}

	return items, nil
}
