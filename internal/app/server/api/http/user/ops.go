package user

import (
	"net/http"

	"github.com/danielgtaylor/huma/v2"
)

func (h *Handler) registerOp() huma.Operation {
	return huma.Operation{
		OperationID:   "user-register",
		Method:        http.MethodPost,
		Path:          "/api/v1/users",
		Summary:       "Register an advocate",
		Tags:          []string{"users"},
		DefaultStatus: http.StatusCreated,
		Middlewares:   h.middleware,
	}
}

func (h *Handler) stateOp() huma.Operation {
	return huma.Operation{
		OperationID: "session-state",
		Method:      http.MethodGet,
		Path:        "/api/v1/session",
		Summary:     "Current session state",
		Tags:        []string{"session"},
		Middlewares: h.middleware,
	}
}

func (h *Handler) loginOp() huma.Operation {
	return huma.Operation{
		OperationID: "session-login",
		Method:      http.MethodPost,
		Path:        "/api/v1/session/login",
		Summary:     "Log in",
		Tags:        []string{"session"},
		Middlewares: h.middleware,
	}
}

func (h *Handler) logoutOp() huma.Operation {
	return huma.Operation{
		OperationID: "session-logout",
		Method:      http.MethodPost,
		Path:        "/api/v1/session/logout",
		Summary:     "Log out",
		Description: "Returns the session to the anonymous state and discards the unsaved editor buffer.",
		Tags:        []string{"session"},
		Middlewares: h.middleware,
	}
}

func (h *Handler) endOp() huma.Operation {
	return huma.Operation{
		OperationID: "session-end",
		Method:      http.MethodDelete,
		Path:        "/api/v1/session",
		Summary:     "End the session",
		Tags:        []string{"session"},
		Middlewares: h.middleware,
	}
}
