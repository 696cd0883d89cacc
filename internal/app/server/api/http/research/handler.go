// Package research exposes the evidence scanner and the citation lookup.
package research

import (
	"context"

	"github.com/danielgtaylor/huma/v2"
	"golang.org/x/exp/slog"

	"legaldesk/internal/app/server/api/http/apierr"
	"legaldesk/internal/domain/advisory"
)

// base64 of a 10 MiB image plus envelope
const maxScanBytes = 14 << 20

type Handler struct {
	advisor    advisory.Advisor
	log        *slog.Logger
	middleware huma.Middlewares
}

func NewHandler(advisor advisory.Advisor, log *slog.Logger, mws huma.Middlewares) *Handler {
	return &Handler{
		advisor:    advisor,
		log:        log,
		middleware: mws,
	}
}

func (h *Handler) SetupRoutes(api huma.API) {
	huma.Register(api, h.scanOp(), h.scan)
	huma.Register(api, h.citationsOp(), h.citations)
}

func (h *Handler) scan(ctx context.Context, input *scanInput) (*textOutput, error) {
	if h.advisor == nil {
		return nil, huma.Error503ServiceUnavailable("AI advisory is not configured")
	}

	text, err := h.advisor.Transcribe(ctx, input.Body.Image, input.Body.MimeType)
	if err != nil {
		return nil, apierr.Upstream(h.log, err)
	}
	return &textOutput{Body: TextResponse{Text: text}}, nil
}

func (h *Handler) citations(ctx context.Context, input *citationsInput) (*textOutput, error) {
	if h.advisor == nil {
		return nil, huma.Error503ServiceUnavailable("AI advisory is not configured")
	}

	text, err := h.advisor.Citations(ctx, input.Body.Query, string(input.Body.Scope))
	if err != nil {
		return nil, apierr.Upstream(h.log, err)
	}
	return &textOutput{Body: TextResponse{Text: text}}, nil
}
