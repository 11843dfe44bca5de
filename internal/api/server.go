package api

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/limbo/trackit/internal/service"
)

type Pinger interface {
	Ping(ctx context.Context) error
}

type Server struct {
	mx                 *chi.Mux
	habitsService      service.HabitsServiceI
	completionsService service.CompletionsServiceI
	boardService       service.BoardServiceI
	jwtService         JWTServiceI
	db                 Pinger
	devTokenIssuer     bool
}

type ServicesList struct {
	HabitsService      service.HabitsServiceI
	CompletionsService service.CompletionsServiceI
	BoardService       service.BoardServiceI
	JwtService         JWTServiceI
	DB                 Pinger
	DevTokenIssuer     bool
}

func New(servicesOptions *ServicesList) *Server {
	s := &Server{
		mx:                 chi.NewMux(),
		habitsService:      servicesOptions.HabitsService,
		completionsService: servicesOptions.CompletionsService,
		boardService:       servicesOptions.BoardService,
		jwtService:         servicesOptions.JwtService,
		db:                 servicesOptions.DB,
		devTokenIssuer:     servicesOptions.DevTokenIssuer,
	}
	s.routes()
	return s
}

func (s *Server) routes() {
	s.mx.Use(s.RequestIDMiddleware)
	s.mx.Use(s.SettingUpLoggerMiddleware)

	s.mx.Get("/healthz", s.Health)
	if s.devTokenIssuer {
		s.mx.Post("/auth/token", s.IssueDevToken)
	}

	s.mx.Route("/api/v1", func(r chi.Router) {
		r.Use(s.AuthMiddleware)
		r.Use(s.LoggerExtensionMiddleware)
		r.Get("/board", s.GetBoard)
		r.Get("/habits", s.GetHabits)
		r.Post("/habits", s.CreateHabit)
		r.Delete("/habits/{id}", s.DeleteHabit)
		r.Post("/completions/toggle", s.ToggleCompletion)
	})
}

func (s *Server) Run(addr string) error {
	return http.ListenAndServe(addr, s.mx)
}

// Handler exposes the mux for httptest servers.
func (s *Server) Handler() http.Handler {
	return s.mx
}
