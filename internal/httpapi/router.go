package httpapi

import (
	"log/slog"
	"net/http"

	"github.com/spendwise/spendwise/internal/service"
	"github.com/spendwise/spendwise/internal/store"
	"github.com/spendwise/spendwise/pkg/httpx"
	"github.com/spendwise/spendwise/pkg/slogx"

	_ "github.com/spendwise/spendwise/api/docs" // Swagger docs
	httpSwagger "github.com/swaggo/http-swagger"
)

// Router holds shared dependencies for HTTP handlers.
type Router struct {
	Mux         *http.ServeMux
	middlewares []httpx.Middleware

	verifier     httpx.TokenVerifier
	buildVersion string
	logger       *slog.Logger
	store        store.Store

	AuthService     *service.AuthService
	ExpenseService  *service.ExpenseService
	CategoryService *service.CategoryService
	StatsService    *service.StatsService
}

func NewRouter(
	verifier httpx.TokenVerifier,
	buildVersion string,
	st store.Store,
	logger *slog.Logger,
) *Router {
	r := &Router{
		Mux:          http.NewServeMux(),
		verifier:     verifier,
		buildVersion: buildVersion,
		store:        st,
		logger:       logger,
	}

	// Set default middleware chain
	r.middlewares = []httpx.Middleware{
		slogx.HTTPMiddleware(r.logger),
	}

	return r
}

func (r *Router) ApplyRoutes() {
	r.registerAuth()
	r.registerExpenses()
	r.registerCategories()
	r.registerStats()
	r.registerSystem()

	r.Mux.Handle("/swagger/", httpSwagger.Handler())
}

// ServeHTTP implements http.Handler for Router and applies the global middleware chain.
//
//	@title			SpendWise API
//	@version		1.0.0
//	@description	Personal expense tracking API: JWT-authenticated expense CRUD,
//	@description	shared categories and per-user aggregate statistics.
//
//	@host						localhost:4000
//	@BasePath					/
//
//	@schemes					http
//
//	@securityDefinitions.apikey	BearerAuth
//	@in							header
//	@name						Authorization
//	@description				JWT bearer token. Format: "Bearer {token}".
func (r *Router) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	httpx.Chain(r.Mux, r.middlewares...).ServeHTTP(w, req)
}

func (r *Router) registerAuth() {
	h := &AuthHandler{AuthService: r.AuthService}

	r.Mux.Handle("POST /api/auth/register", http.HandlerFunc(h.HandleRegister))
	r.Mux.Handle("POST /api/auth/login", http.HandlerFunc(h.HandleLogin))

	// /me runs behind the bearer gate; the handler only resolves the
	// identity the middleware attached.
	r.Mux.Handle("GET /api/auth/me",
		httpx.Chain(http.HandlerFunc(h.HandleMe),
			httpx.AuthnMiddleware(r.verifier),
		),
	)
}

func (r *Router) registerExpenses() {
	h := &ExpensesHandler{ExpenseService: r.ExpenseService}
	authn := httpx.AuthnMiddleware(r.verifier)

	r.Mux.Handle("GET /api/expenses", httpx.Chain(http.HandlerFunc(h.HandleList), authn))
	r.Mux.Handle("POST /api/expenses", httpx.Chain(http.HandlerFunc(h.HandleCreate), authn))
	r.Mux.Handle("GET /api/expenses/{id}", httpx.Chain(http.HandlerFunc(h.HandleGet), authn))
	r.Mux.Handle("PUT /api/expenses/{id}", httpx.Chain(http.HandlerFunc(h.HandleUpdate), authn))
	r.Mux.Handle("DELETE /api/expenses/{id}", httpx.Chain(http.HandlerFunc(h.HandleDelete), authn))
}

func (r *Router) registerCategories() {
	// Categories are a shared pool, not user data, so they stay outside
	// the bearer gate.
	h := &CategoriesHandler{CategoryService: r.CategoryService}

	r.Mux.Handle("GET /api/categories", http.HandlerFunc(h.HandleList))
	r.Mux.Handle("POST /api/categories", http.HandlerFunc(h.HandleCreate))
	r.Mux.Handle("GET /api/categories/{id}", http.HandlerFunc(h.HandleGet))
	r.Mux.Handle("PUT /api/categories/{id}", http.HandlerFunc(h.HandleUpdate))
	r.Mux.Handle("DELETE /api/categories/{id}", http.HandlerFunc(h.HandleDelete))
}

func (r *Router) registerStats() {
	h := &StatsHandler{StatsService: r.StatsService}

	r.Mux.Handle("GET /api/stats",
		httpx.Chain(http.HandlerFunc(h.HandleSummary),
			httpx.AuthnMiddleware(r.verifier),
		),
	)
}

func (r *Router) registerSystem() {
	r.Mux.Handle("GET /{$}", WelcomeHandler(r.buildVersion))
	r.Mux.Handle("GET /health", HealthHandler(r.store))

	// JSON 404 for everything the mux doesn't know.
	r.Mux.Handle("/", notFoundHandler())
}
