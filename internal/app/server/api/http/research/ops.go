package research

import (
	"net/http"

	"github.com/danielgtaylor/huma/v2"
)

func (h *Handler) scanOp() huma.Operation {
	return huma.Operation{
		OperationID:  "scanner-transcribe",
		Method:       http.MethodPost,
		Path:         "/api/v1/scanner",
		Summary:      "Extract and summarise the text of a scanned image",
		Tags:         []string{"ai"},
		MaxBodyBytes: maxScanBytes,
		Security:     []map[string][]string{{"cookie": {}}},
		Middlewares:  h.middleware,
	}
}

func (h *Handler) citationsOp() huma.Operation {
	return huma.Operation{
		OperationID: "research-citations",
		Method:      http.MethodPost,
		Path:        "/api/v1/research/citations",
		Summary:     "Supreme Court citations for a query",
		Tags:        []string{"ai"},
		Security:    []map[string][]string{{"cookie": {}}},
		Middlewares: h.middleware,
	}
}
