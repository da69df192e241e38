package http

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v2"

	"github.com/ANGRAJAKARNA/Build-codingLogic-AI/auth"
	"github.com/ANGRAJAKARNA/Build-codingLogic-AI/evalsrvc"
)

type HttpServer struct {
	evalSrvc *evalsrvc.EvalSrvc
	router   *chi.Mux

	jwtKey       []byte
	apiKeyBcrypt []byte
}

func NewHttpServer(
	evalSrvc *evalsrvc.EvalSrvc,
	jwtKey []byte,
	apiKeyBcrypt []byte,
	corsOrigins []string,
) *HttpServer {
	router := chi.NewRouter()

	logger := httplog.NewLogger("codelogic", httplog.Options{
		LogLevel:         slog.LevelDebug,
		Concise:          true,
		RequestHeaders:   true,
		MessageFieldName: "message",
		Tags: map[string]string{
			"module": "eval-api",
		},
	})

	router.Use(httplog.RequestLogger(logger))

	router.Use(cors.Handler(cors.Options{
		AllowedOrigins:   corsOrigins,
		AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders:   []string{"*"},
		AllowCredentials: true,
		MaxAge:           3000,
	}))

	if len(jwtKey) > 0 {
		router.Use(auth.GetJwtAuthMiddleware(jwtKey))
	}

	server := &HttpServer{
		evalSrvc:     evalSrvc,
		router:       router,
		jwtKey:       jwtKey,
		apiKeyBcrypt: apiKeyBcrypt,
	}

	server.routes()

	return server
}

func (httpserver *HttpServer) Start(address string) error {
	return http.ListenAndServe(address, httpserver.router)
}

// Handler exposes the router, mainly for httptest.
func (httpserver *HttpServer) Handler() http.Handler {
	return httpserver.router
}

func (httpserver *HttpServer) routes() {
	r := httpserver.router
	r.Post("/auth/token", httpserver.authToken)
	r.Post("/evaluations", httpserver.evalPost)
	r.Get("/evaluations/{evalUuid}", httpserver.evalGet)
}

// requireEvaluateScope enforces the evaluate scope when authentication is
// configured. With no JWT key the API is open, for local development.
func (httpserver *HttpServer) requireEvaluateScope(r *http.Request) bool {
	if len(httpserver.jwtKey) == 0 {
		return true
	}
	claims := auth.ClaimsFromContext(r.Context())
	return claims != nil && claims.HasScope(auth.ScopeEvaluate)
}
