package invoice

import (
	"context"

	"github.com/danielgtaylor/huma/v2"
	"golang.org/x/exp/slog"

	"legaldesk/internal/app/server/api/http/apierr"
	"legaldesk/internal/app/server/api/http/middleware/auth"
	"legaldesk/internal/domain/document"
	"legaldesk/internal/domain/invoice"
)

type Handler struct {
	service    invoice.Servicer
	renderer   document.Renderer
	log        *slog.Logger
	middleware huma.Middlewares
}

func NewHandler(service invoice.Servicer, renderer document.Renderer, log *slog.Logger, mws huma.Middlewares) *Handler {
	return &Handler{
		service:    service,
		renderer:   renderer,
		log:        log,
		middleware: mws,
	}
}

func (h *Handler) SetupRoutes(api huma.API) {
	huma.Register(api, h.createOp(), h.create)
	huma.Register(api, h.historyOp(), h.history)
	huma.Register(api, h.pdfOp(), h.pdf)
}

func (h *Handler) create(ctx context.Context, input *createInput) (*createOutput, error) {
	id, ok := auth.GetIdentity(ctx)
	if !ok {
		return nil, huma.Error401Unauthorized("Unauthorized")
	}

	inv, err := h.service.Create(ctx, id.Username, input.Body.ClientName, input.Body.Amount)
	if err != nil {
		return nil, apierr.From(h.log, err)
	}
	return &createOutput{Body: inv}, nil
}

func (h *Handler) history(ctx context.Context, _ *struct{}) (*historyOutput, error) {
	id, ok := auth.GetIdentity(ctx)
	if !ok {
		return nil, huma.Error401Unauthorized("Unauthorized")
	}

	items, err := h.service.History(ctx, id.Username)
	if err != nil {
		return nil, apierr.From(h.log, err)
	}
	if items == nil {
		items = []invoice.Invoice{}
	}
	return &historyOutput{Body: HistoryResponse{Invoices: items}}, nil
}

func (h *Handler) pdf(ctx context.Context, input *pdfInput) (*pdfOutput, error) {
	id, ok := auth.GetIdentity(ctx)
	if !ok {
		return nil, huma.Error401Unauthorized("Unauthorized")
	}

	inv, err := h.service.Find(ctx, id.Username, input.ID)
	if err != nil {
		return nil, apierr.From(h.log, err)
	}

	data, err := document.RenderInvoice(h.renderer, inv, id.Username, id.EnrollmentID)
	if err != nil {
		return nil, apierr.From(h.log, err)
	}

	return &pdfOutput{
		ContentType:        "application/pdf",
		ContentDisposition: `attachment; filename="invoice.pdf"`,
		Body:               data,
	}, nil
}
