package api

import (
	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/adapters/humachi"
	"github.com/go-chi/chi/v5"
	"golang.org/x/exp/slog"

	"legaldesk/internal/app/server/api/http/drafting"
	healthAPI "legaldesk/internal/app/server/api/http/health"
	hearingAPI "legaldesk/internal/app/server/api/http/hearing"
	invoiceAPI "legaldesk/internal/app/server/api/http/invoice"
	"legaldesk/internal/app/server/api/http/middleware"
	"legaldesk/internal/app/server/api/http/middleware/auth"
	"legaldesk/internal/app/server/api/http/middleware/logger"
	"legaldesk/internal/app/server/api/http/research"
	userAPI "legaldesk/internal/app/server/api/http/user"
	"legaldesk/internal/config"
	"legaldesk/internal/domain/advisory"
	"legaldesk/internal/domain/delivery"
	"legaldesk/internal/domain/document"
	"legaldesk/internal/domain/draft"
	"legaldesk/internal/domain/hearing"
	"legaldesk/internal/domain/invoice"
	"legaldesk/internal/domain/session"
	"legaldesk/internal/domain/user"
	"legaldesk/internal/infrastructure/storage"
)

// Deps are the process-wide collaborators the API is built from.
type Deps struct {
	Store    *storage.DB
	Sessions *session.Manager
	Cookie   config.Session
	Renderer document.Renderer
	Sender   delivery.Sender
	// Advisor is nil when no AI provider is configured.
	Advisor advisory.Advisor
}

type Handlers struct {
	Health   *healthAPI.Handler
	User     *userAPI.Handler
	Hearing  *hearingAPI.Handler
	Invoice  *invoiceAPI.Handler
	Drafting *drafting.Handler
	Research *research.Handler
}

// New builds the router with every operation registered through huma.
func New(deps Deps, log *slog.Logger) *chi.Mux {
	mux := chi.NewMux()

	cfg := huma.DefaultConfig("LegalDesk API", "1.0.0")
	cfg.Components.SecuritySchemes = map[string]*huma.SecurityScheme{
		"cookie": {Type: "apiKey", In: "cookie", Name: deps.Cookie.CookieName},
	}

	api := humachi.New(mux, cfg)

	h := handlers(api, deps, log)
	h.Health.SetupRoutes(api)
	h.User.SetupRoutes(api)
	h.Hearing.SetupRoutes(api)
	h.Invoice.SetupRoutes(api)
	h.Drafting.SetupRoutes(api)
	h.Research.SetupRoutes(api)

	return mux
}

func handlers(api huma.API, deps Deps, log *slog.Logger) *Handlers {
	authMW := auth.New(api, deps.Sessions, deps.Cookie, log)
	loggerMW := logger.New(log)
	middlewares := middleware.NewContainer()

	userRepo := storage.NewUserRepository(deps.Store, log)
	userService := user.NewService(userRepo, user.NewValidator(), log)
	controller := session.NewController(userService, log)

	hearingService := hearing.NewService(storage.NewHearingRepository(deps.Store, log), log)
	invoiceService := invoice.NewService(storage.NewInvoiceRepository(deps.Store, log), log)
	draftService := draft.NewService(storage.NewDraftRepository(deps.Store, log), log)

	middlewares.Add(loggerMW.Middleware())
	healthHandler := healthAPI.NewHandler(pinger(deps.Store), log, middlewares.GetAllAndClear())

	middlewares.Add(loggerMW.Middleware(), authMW.Session())
	userHandler := userAPI.NewHandler(controller, authMW, log, middlewares.GetAllAndClear())

	middlewares.Add(loggerMW.Middleware(), authMW.Session(), authMW.Middleware())
	hearingHandler := hearingAPI.NewHandler(hearingService, log, middlewares.GetAllAndClear())

	middlewares.Add(loggerMW.Middleware(), authMW.Session(), authMW.Middleware())
	invoiceHandler := invoiceAPI.NewHandler(invoiceService, deps.Renderer, log, middlewares.GetAllAndClear())

	middlewares.Add(loggerMW.Middleware(), authMW.Session(), authMW.Middleware())
	draftingHandler := drafting.NewHandler(drafting.Deps{
		Editor:   controller,
		Drafts:   draftService,
		Renderer: deps.Renderer,
		Sender:   deps.Sender,
		Advisor:  deps.Advisor,
	}, log, middlewares.GetAllAndClear())

	middlewares.Add(loggerMW.Middleware(), authMW.Session(), authMW.Middleware())
	researchHandler := research.NewHandler(deps.Advisor, log, middlewares.GetAllAndClear())

	return &Handlers{
		Health:   healthHandler,
		User:     userHandler,
		Hearing:  hearingHandler,
		Invoice:  invoiceHandler,
		Drafting: draftingHandler,
		Research: researchHandler,
	}
}

func pinger(store *storage.DB) healthAPI.Pinger {
	if store == nil {
		return nil
	}
	return store
}
