package hearing

import (
	"context"

	"github.com/danielgtaylor/huma/v2"
	"golang.org/x/exp/slog"

	"legaldesk/internal/app/server/api/http/apierr"
	"legaldesk/internal/app/server/api/http/middleware/auth"
	"legaldesk/internal/domain/hearing"
)

type Handler struct {
	service    hearing.Servicer
	log        *slog.Logger
	middleware huma.Middlewares
}

func NewHandler(service hearing.Servicer, log *slog.Logger, mws huma.Middlewares) *Handler {
	return &Handler{
		service:    service,
		log:        log,
		middleware: mws,
	}
}

func (h *Handler) SetupRoutes(api huma.API) {
	huma.Register(api, h.addOp(), h.add)
	huma.Register(api, h.upcomingOp(), h.upcoming)
}

func (h *Handler) add(ctx context.Context, input *addInput) (*addOutput, error) {
	id, ok := auth.GetIdentity(ctx)
	if !ok {
		return nil, huma.Error401Unauthorized("Unauthorized")
	}

	item, err := h.service.Add(ctx, id.Username, input.Body.CaseName, input.Body.Category, input.Body.Date)
	if err != nil {
		return nil, apierr.From(h.log, err)
	}
	return &addOutput{Body: item}, nil
}

func (h *Handler) upcoming(ctx context.Context, _ *struct{}) (*upcomingOutput, error) {
	id, ok := auth.GetIdentity(ctx)
	if !ok {
		return nil, huma.Error401Unauthorized("Unauthorized")
	}

	items, err := h.service.Upcoming(ctx, id.Username)
	if err != nil {
		return nil, apierr.From(h.log, err)
	}
	if items == nil {
		items = []hearing.Hearing{}
	}
	return &upcomingOutput{Body: UpcomingResponse{Hearings: items}}, nil
}
