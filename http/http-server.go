package http

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v2"
	"github.com/google/uuid"
	"github.com/teamwork-challenge/backend/auth"
	"github.com/teamwork-challenge/backend/contestsrvc"
	"github.com/teamwork-challenge/backend/httpjson"
	"github.com/teamwork-challenge/backend/teamsrvc"
)

type HttpServer struct {
	contestSrvc *contestsrvc.ContestSrvc
	teamSrvc    *teamsrvc.TeamSrvc
	jwtKey      []byte
	router      *chi.Mux
}

func NewHttpServer(
	contestSrvc *contestsrvc.ContestSrvc,
	teamSrvc *teamsrvc.TeamSrvc,
	jwtKey []byte,
) *HttpServer {
	router := chi.NewRouter()

	logger := httplog.NewLogger("twc", httplog.Options{
		LogLevel:         slog.LevelDebug,
		Concise:          true,
		MessageFieldName: "message",
	})

	router.Use(httplog.RequestLogger(logger))

	router.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders:   []string{"*"},
		AllowCredentials: false,
		MaxAge:           3000,
	}))

	router.Use(auth.GetJwtAuthMiddleware(jwtKey))

	server := &HttpServer{
		contestSrvc: contestSrvc,
		teamSrvc:    teamSrvc,
		jwtKey:      jwtKey,
		router:      router,
	}

	server.routes()

	return server
}

func (httpserver *HttpServer) Start(address string) error {
	return http.ListenAndServe(address, httpserver.router)
}

func (httpserver *HttpServer) Handler() http.Handler {
	return httpserver.router
}

func (httpserver *HttpServer) routes() {
	r := httpserver.router
	r.Post("/auth/login", httpserver.authLogin)
	r.Post("/rounds/{roundId}/claims", httpserver.claimTask)
	r.Get("/rounds/{roundId}/dashboard", httpserver.getDashboard)
	r.Get("/rounds/{roundId}/tasks", httpserver.listTasks)
	r.Get("/tasks/{taskId}", httpserver.getTask)
	r.Get("/tasks/{taskId}/submissions", httpserver.listSubmissions)
	r.Post("/tasks/{taskId}/submissions", httpserver.createSubmission)
}

// requireTeam resolves the authenticated team from the JWT claims, writing
// a 401 response when the request carries no valid token.
func requireTeam(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	claims := auth.TeamClaimsFromContext(r.Context())
	if claims == nil {
		httpjson.WriteErrorJson(w, "authentication required",
			http.StatusUnauthorized, "unauthorized")
		return uuid.Nil, false
	}
	teamID, err := uuid.Parse(claims.TeamID)
	if err != nil {
		httpjson.WriteErrorJson(w, "invalid token claims",
			http.StatusUnauthorized, "unauthorized")
		return uuid.Nil, false
	}
	return teamID, true
}

func parseUuidParam(r *http.Request, name string) (uuid.UUID, error) {
	return uuid.Parse(chi.URLParam(r, name))
}
