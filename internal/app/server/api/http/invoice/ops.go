package invoice

import (
	"net/http"

	"github.com/danielgtaylor/huma/v2"
)

func (h *Handler) createOp() huma.Operation {
	return huma.Operation{
		OperationID:   "invoices-create",
		Method:        http.MethodPost,
		Path:          "/api/v1/invoices",
		Summary:       "Save an invoice dated today",
		Tags:          []string{"invoices"},
		DefaultStatus: http.StatusCreated,
		Security:      []map[string][]string{{"cookie": {}}},
		Middlewares:   h.middleware,
	}
}

func (h *Handler) historyOp() huma.Operation {
	return huma.Operation{
		OperationID: "invoices-history",
		Method:      http.MethodGet,
		Path:        "/api/v1/invoices",
		Summary:     "Billing history, newest first",
		Tags:        []string{"invoices"},
		Security:    []map[string][]string{{"cookie": {}}},
		Middlewares: h.middleware,
	}
}

func (h *Handler) pdfOp() huma.Operation {
	return huma.Operation{
		OperationID: "invoices-pdf",
		Method:      http.MethodGet,
		Path:        "/api/v1/invoices/{id}/pdf",
		Summary:     "Download an invoice as PDF",
		Tags:        []string{"invoices"},
		Security:    []map[string][]string{{"cookie": {}}},
		Responses: map[string]*huma.Response{
			"200": {
				Description: "PDF document",
				Content:     map[string]*huma.MediaType{"application/pdf": {}},
			},
		},
		Middlewares: h.middleware,
	}
}
