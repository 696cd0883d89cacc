package invoice

import (
	"context"
	"fmt"
	"math"
	"strings"
	"time"

	"golang.org/x/exp/slog"

	"legaldesk/internal/domain/record"
)

type Repository = record.Repository[Invoice]

type Servicer interface {
	Create(ctx context.Context, owner, clientName string, amount float64) (Invoice, error)
	History(ctx context.Context, owner string) ([]Invoice, error)
	Find(ctx context.Context, owner string, id int64) (Invoice, error)
}

type Service struct {
	repo Repository
	log  *slog.Logger
	now  func() time.Time
}

func NewService(repo Repository, log *slog.Logger) *Service {
	return &Service{
		repo: repo,
		log:  log.With("component", "invoice_service"),
		now:  time.Now,
	}
}

// Create records an invoice dated today.
func (s *Service) Create(ctx context.Context, owner, clientName string, amount float64) (Invoice, error) {
	if owner == "" {
		return Invoice{}, record.ErrNoOwner
	}
	if strings.TrimSpace(clientName) == "" {
		return Invoice{}, record.Invalid("client name must not be empty")
	}
	if amount < 0 || math.IsNaN(amount) || math.IsInf(amount, 0) {
		return Invoice{}, record.Invalid("amount must be a non-negative number")
	}

	inv := Invoice{
		ClientName: clientName,
		Amount:     amount,
		Date:       record.Today(s.now),
	}
	if _, err := s.repo.Create(ctx, owner, &inv); err != nil {
		s.log.Error("failed to save invoice", "owner", owner, "error", err)
		return Invoice{}, fmt.Errorf("save invoice: %w", err)
	}

	return inv, nil
}

// History lists the owner's invoices, newest first.
func (s *Service) History(ctx context.Context, owner string) ([]Invoice, error) {
	if owner == "" {
		return nil, record.ErrNoOwner
	}

	items, err := s.repo.ListByOwner(ctx, owner, record.ListOptions{OrderBy: "id", Desc: true})
	if err != nil {
		return nil, fmt.Errorf("list invoices: %w", err)
	}
	return items, nil
}

func (s *Service) Find(ctx context.Context, owner string, id int64) (Invoice, error) {
	if owner == "" {
		return Invoice{}, record.ErrNoOwner
	}
	inv, err := s.repo.FindByOwner(ctx, owner, id)
	if err != nil {
		return Invoice{}, fmt.Errorf("find invoice %d: %w", id, err)
	}
	return inv, nil
}
