package http

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/openfolio/accounts/internal/accounts/service"
	"github.com/openfolio/accounts/internal/accounts/store"
	"github.com/openfolio/accounts/pkg/httpx"
	"github.com/openfolio/accounts/pkg/slogx"

	_ "github.com/openfolio/accounts/api/accounts" // Swagger docs
	httpSwagger "github.com/swaggo/http-swagger"
)

// Router holds shared dependencies for HTTP handlers.
type Router struct {
	Mux         *http.ServeMux
	middlewares []httpx.Middleware

	buildVersion string
	startTime    time.Time
	staticDir    string
	logger       *slog.Logger

	store          store.Store
	AccountService *service.AccountService
}

func NewRouter(
	buildVersion, staticDir string,
	st store.Store,
	logger *slog.Logger,
) *Router {
	r := &Router{
		Mux:          http.NewServeMux(),
		buildVersion: buildVersion,
		startTime:    time.Now(),
		staticDir:    staticDir,
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
	r.registerAccounts()
	r.registerSystem()
	r.registerStatic()

	r.Mux.Handle("/swagger/", httpSwagger.Handler())
}

// ServeHTTP implements http.Handler for Router and applies the global middleware chain.
//
//	@title			OpenFolio Accounts Service API
//	@version		0.1.0
//	@description	Account management service providing signup, login, profile management,
//	@description	and password changes backed by a document store.
//
//	@contact.name	OpenFolio Team
//	@contact.url	https://github.com/openfolio/accounts
//
//	@license.name	MIT
//	@license.url	https://opensource.org/licenses/MIT
//
//	@host			localhost:3000
//	@BasePath		/
//
//	@schemes		http https
func (r *Router) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	httpx.Chain(r.Mux, r.middlewares...).ServeHTTP(w, req)
}

func (r *Router) registerAccounts() {
	signupHandler := &SignupHandler{AccountService: r.AccountService}
	loginHandler := &LoginHandler{AccountService: r.AccountService}
	profileGetHandler := &ProfileGetHandler{AccountService: r.AccountService}
	profileUpdateHandler := &ProfileUpdateHandler{AccountService: r.AccountService}
	changePasswordHandler := &ChangePasswordHandler{AccountService: r.AccountService}

	r.Mux.Handle("POST /api/signup", signupHandler)
	r.Mux.Handle("POST /api/login", loginHandler)
	r.Mux.Handle("GET /api/profile", profileGetHandler)
	r.Mux.Handle("POST /api/profile", profileUpdateHandler)
	r.Mux.Handle("POST /api/change-password", changePasswordHandler)
}

func (r *Router) registerSystem() {
	r.Mux.Handle("GET /livez", LivezHandler(r.startTime, r.buildVersion))
	r.Mux.Handle("GET /readyz", ReadyzHandler(r.startTime, r.buildVersion, r.store))
}

func (r *Router) registerStatic() {
	r.Mux.Handle("GET /", StaticHandler(r.staticDir))
}
