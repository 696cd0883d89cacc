package drafting

import (
	"net/http"

	"github.com/danielgtaylor/huma/v2"
)

var cookieAuth = []map[string][]string{{"cookie": {}}}

func (h *Handler) catalogOp() huma.Operation {
	return huma.Operation{
		OperationID: "drafting-catalog",
		Method:      http.MethodGet,
		Path:        "/api/v1/drafting/catalog",
		Summary:     "Matter categories and document types",
		Tags:        []string{"drafting"},
		Security:    cookieAuth,
		Middlewares: h.middleware,
	}
}

func (h *Handler) bufferOp() huma.Operation {
	return huma.Operation{
		OperationID: "drafting-buffer-get",
		Method:      http.MethodGet,
		Path:        "/api/v1/drafting/buffer",
		Summary:     "Read the editor buffer",
		Tags:        []string{"drafting"},
		Security:    cookieAuth,
		Middlewares: h.middleware,
	}
}

func (h *Handler) editOp() huma.Operation {
	return huma.Operation{
		OperationID: "drafting-buffer-edit",
		Method:      http.MethodPut,
		Path:        "/api/v1/drafting/buffer",
		Summary:     "Overwrite the editor buffer",
		Description: "Nothing is persisted until the buffer is saved as a draft.",
		Tags:        []string{"drafting"},
		Security:    cookieAuth,
		Middlewares: h.middleware,
	}
}

func (h *Handler) templateOp() huma.Operation {
	return huma.Operation{
		OperationID: "drafting-buffer-template",
		Method:      http.MethodPost,
		Path:        "/api/v1/drafting/buffer/template",
		Summary:     "Replace the buffer with a boilerplate notice",
		Tags:        []string{"drafting"},
		Security:    cookieAuth,
		Middlewares: h.middleware,
	}
}

func (h *Handler) pdfOp() huma.Operation {
	return huma.Operation{
		OperationID: "drafting-buffer-pdf",
		Method:      http.MethodGet,
		Path:        "/api/v1/drafting/buffer/pdf",
		Summary:     "Render the buffer as PDF",
		Tags:        []string{"drafting"},
		Security:    cookieAuth,
		Responses: map[string]*huma.Response{
			"200": {
				Description: "PDF document",
				Content:     map[string]*huma.MediaType{"application/pdf": {}},
			},
		},
		Middlewares: h.middleware,
	}
}

func (h *Handler) sendOp() huma.Operation {
	return huma.Operation{
		OperationID: "drafting-buffer-send",
		Method:      http.MethodPost,
		Path:        "/api/v1/drafting/buffer/send",
		Summary:     "Email the rendered buffer",
		Tags:        []string{"drafting"},
		Security:    cookieAuth,
		Middlewares: h.middleware,
	}
}

func (h *Handler) analysisOp() huma.Operation {
	return huma.Operation{
		OperationID: "drafting-buffer-analysis",
		Method:      http.MethodPost,
		Path:        "/api/v1/drafting/buffer/analysis",
		Summary:     "AI success probability for the buffer",
		Tags:        []string{"drafting", "ai"},
		Security:    cookieAuth,
		Middlewares: h.middleware,
	}
}

func (h *Handler) saveOp() huma.Operation {
	return huma.Operation{
		OperationID:   "drafts-save",
		Method:        http.MethodPost,
		Path:          "/api/v1/drafts",
		Summary:       "Save the buffer as a draft",
		Tags:          []string{"drafts"},
		DefaultStatus: http.StatusCreated,
		Security:      cookieAuth,
		Middlewares:   h.middleware,
	}
}

func (h *Handler) listOp() huma.Operation {
	return huma.Operation{
		OperationID: "drafts-list",
		Method:      http.MethodGet,
		Path:        "/api/v1/drafts",
		Summary:     "Saved drafts, newest first",
		Tags:        []string{"drafts"},
		Security:    cookieAuth,
		Middlewares: h.middleware,
	}
}
