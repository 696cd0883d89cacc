package storage

import (
	"time"

	"golang.org/x/exp/slog"

	"legaldesk/internal/domain/draft"
	"legaldesk/internal/domain/hearing"
	"legaldesk/internal/domain/invoice"
	"legaldesk/internal/domain/record"
)

// Dates are stored as YYYY-MM-DD text in both drivers.
func formatDate(t time.Time) string {
	return t.Format(record.DateLayout)
}

func parseDate(s string) (time.Time, error) {
	return time.Parse(record.DateLayout, s)
}

func NewHearingRepository(db *DB, log *slog.Logger) *OwnedRepository[hearing.Hearing] {
	return newOwnedRepository(db, table[hearing.Hearing]{
		name:      "hearings",
		columns:   []string{"case_name", "category", "hearing_date"},
		orderable: []string{"hearing_date"},
		values: func(h *hearing.Hearing) []any {
			return []any{h.CaseName, h.Category, formatDate(h.Date)}
		},
		scan: func(row scanner, h *hearing.Hearing) error {
			var date string
			if err := row.Scan(&h.ID, &h.Owner, &h.CaseName, &h.Category, &date); err != nil {
				return err
			}
			var err error
			h.Date, err = parseDate(date)
			return err
		},
		assign: func(h *hearing.Hearing, id int64, owner string) {
			h.ID, h.Owner = id, owner
		},
	}, log)
}

func NewInvoiceRepository(db *DB, log *slog.Logger) *OwnedRepository[invoice.Invoice] {
	return newOwnedRepository(db, table[invoice.Invoice]{
		name:      "invoices",
		columns:   []string{"client_name", "amount", "invoice_date"},
		orderable: []string{"invoice_date", "amount"},
		values: func(inv *invoice.Invoice) []any {
			return []any{inv.ClientName, inv.Amount, formatDate(inv.Date)}
		},
		scan: func(row scanner, inv *invoice.Invoice) error {
			var date string
			if err := row.Scan(&inv.ID, &inv.Owner, &inv.ClientName, &inv.Amount, &date); err != nil {
				return err
			}
			var err error
			inv.Date, err = parseDate(date)
			return err
		},
		assign: func(inv *invoice.Invoice, id int64, owner string) {
			inv.ID, inv.Owner = id, owner
		},
	}, log)
}

func NewDraftRepository(db *DB, log *slog.Logger) *OwnedRepository[draft.Draft] {
	return newOwnedRepository(db, table[draft.Draft]{
		name:      "drafts",
		columns:   []string{"category", "doc_type", "content", "draft_date"},
		orderable: []string{"draft_date"},
		values: func(d *draft.Draft) []any {
			return []any{string(d.Category), d.DocType, d.Content, formatDate(d.Date)}
		},
		scan: func(row scanner, d *draft.Draft) error {
			var category, date string
			if err := row.Scan(&d.ID, &d.Owner, &category, &d.DocType, &d.Content, &date); err != nil {
				return err
			}
			d.Category = draft.Category(category)
			var err error
			d.Date, err = parseDate(date)
			return err
		},
		assign: func(d *draft.Draft, id int64, owner string) {
			d.ID, d.Owner = id, owner
		},
	}, log)
}

var (
	_ hearing.Repository = (*OwnedRepository[hearing.Hearing])(nil)
	_ invoice.Repository = (*OwnedRepository[invoice.Invoice])(nil)
	_ draft.Repository   = (*OwnedRepository[draft.Draft])(nil)
)
