package hearing

import (
	"net/http"

	"github.com/danielgtaylor/huma/v2"
)

func (h *Handler) addOp() huma.Operation {
	return huma.Operation{
		OperationID:   "hearings-add",
		Method:        http.MethodPost,
		Path:          "/api/v1/hearings",
		Summary:       "Add a hearing to the docket",
		Tags:          []string{"hearings"},
		DefaultStatus: http.StatusCreated,
		Security:      []map[string][]string{{"cookie": {}}},
		Middlewares:   h.middleware,
	}
}

func (h *Handler) upcomingOp() huma.Operation {
	return huma.Operation{
		OperationID: "hearings-upcoming",
		Method:      http.MethodGet,
		Path:        "/api/v1/hearings/upcoming",
		Summary:     "Next hearings",
		Description: "The five earliest hearings of the caller by date. Past dates are included.",
		Tags:        []string{"hearings"},
		Security:    []map[string][]string{{"cookie": {}}},
		Middlewares: h.middleware,
	}
}
