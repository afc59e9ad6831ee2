package http

import (
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/aussiebroadwan/accounts/internal/accounts/service"
	"github.com/aussiebroadwan/accounts/pkg/httpx"
	"github.com/aussiebroadwan/accounts/pkg/slogx"

	_ "github.com/aussiebroadwan/accounts/api/accounts" // Swagger docs
	httpSwagger "github.com/swaggo/http-swagger"
)

const (
	msgGlobalRateLimit = "Too many requests from this IP, please try again later."
	msgAuthRateLimit   = "Too many authentication attempts, please try again later."
)

// RouterOptions configures the router's middleware stack.
type RouterOptions struct {
	APIPrefix    string
	BuildVersion string
	Production   bool
	CORSOrigin   string

	// Zero value configs disable the respective limiter.
	GlobalRateLimit httpx.RateLimitConfig
	AuthRateLimit   httpx.RateLimitConfig
}

// Router holds shared dependencies for HTTP handlers.
type Router struct {
	Mux         *http.ServeMux
	middlewares []httpx.Middleware

	prefix       string
	buildVersion string
	startTime    time.Time
	errors       ErrorWriter
	authLimit    httpx.RateLimitConfig
	logger       *slog.Logger

	db             Pinger
	verifier       httpx.AccessVerifier
	AuthService    *service.AuthService
	AccountService *service.AccountService
}

func NewRouter(
	opts RouterOptions,
	verifier httpx.AccessVerifier,
	db Pinger,
	logger *slog.Logger,
) *Router {
	r := &Router{
		Mux:          http.NewServeMux(),
		prefix:       "/" + strings.Trim(opts.APIPrefix, "/"),
		buildVersion: opts.BuildVersion,
		startTime:    time.Now(),
		errors:       ErrorWriter{Production: opts.Production},
		authLimit:    withMessage(opts.AuthRateLimit, msgAuthRateLimit),
		logger:       logger,
		db:           db,
		verifier:     verifier,
	}
	if r.prefix == "/" {
		r.prefix = ""
	}

	// Set default middleware chain
	r.middlewares = []httpx.Middleware{
		slogx.HTTPMiddleware(r.logger),
		httpx.Recover(),
		httpx.SecurityHeaders(),
		httpx.CORS(opts.CORSOrigin),
		httpx.RateLimitByIP(withMessage(opts.GlobalRateLimit, msgGlobalRateLimit)),
	}

	return r
}

func withMessage(cfg httpx.RateLimitConfig, msg string) httpx.RateLimitConfig {
	if cfg.Message == "" {
		cfg.Message = msg
	}
	return cfg
}

func (r *Router) ApplyRoutes() {
	r.registerAuth()
	r.registerUsers()
	r.registerSystem()

	r.Mux.Handle("/swagger/", httpSwagger.Handler())
}

// ServeHTTP implements http.Handler for Router and applies the global middleware chain.
//
//	@title			Accounts Service API
//	@version		1.0.0
//	@description	User registration, credential login, profile management and paginated user listing.
//	@description
//	@description				Access and refresh tokens are HS256 signed JWTs with independent secrets.
//
//	@contact.name				AussieBroadWAN Team
//	@contact.url				https://github.com/aussiebroadwan/accounts
//
//	@license.name				MIT
//	@license.url				https://opensource.org/licenses/MIT
//
//	@host						localhost:8080
//	@BasePath					/
//
//	@schemes					http https
//
//	@securityDefinitions.apikey	BearerAuth
//	@in							header
//	@name						Authorization
//	@description				JWT access token. Format: "Bearer {token}".
func (r *Router) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	httpx.Chain(r.Mux, r.middlewares...).ServeHTTP(w, req)
}

func (r *Router) registerAuth() {
	register := &RegisterHandler{AuthService: r.AuthService, Errors: r.errors}
	login := &LoginHandler{AuthService: r.AuthService, Errors: r.errors}
	refresh := &RefreshHandler{AuthService: r.AuthService, Errors: r.errors}

	// Credential endpoints share a stricter per-IP limit
	limit := httpx.RateLimitByIP(r.authLimit)

	r.Mux.Handle("POST "+r.prefix+"/auth/register", httpx.Chain(register, limit))
	r.Mux.Handle("POST "+r.prefix+"/auth/login", httpx.Chain(login, limit))
	r.Mux.Handle("POST "+r.prefix+"/auth/refresh", httpx.Chain(refresh, limit))
}

func (r *Router) registerUsers() {
	me := &MeHandler{AccountService: r.AccountService, Errors: r.errors}
	user := &UserHandler{AccountService: r.AccountService, Errors: r.errors}
	list := &ListUsersHandler{AccountService: r.AccountService, Errors: r.errors}

	authn := httpx.Authenticate(r.verifier)

	r.Mux.Handle("GET "+r.prefix+"/users/me", httpx.Chain(http.HandlerFunc(me.HandleGet), authn))
	r.Mux.Handle("PUT "+r.prefix+"/users/me", httpx.Chain(http.HandlerFunc(me.HandleUpdate), authn))
	r.Mux.Handle("GET "+r.prefix+"/users/{id}", httpx.Chain(user, authn))
	r.Mux.Handle("GET "+r.prefix+"/users", httpx.Chain(list, authn))
}

func (r *Router) registerSystem() {
	r.Mux.Handle("GET /livez", LivezHandler(r.startTime, r.buildVersion))
	r.Mux.Handle("GET /readyz", ReadyzHandler(r.startTime, r.buildVersion, r.db))
}
