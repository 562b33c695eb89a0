package formserver

import (
	"fmt"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/dmitrymomot/formkit/pkg/cache"
	"github.com/dmitrymomot/formkit/pkg/feedback"
	"github.com/dmitrymomot/formkit/pkg/form"
	"github.com/dmitrymomot/formkit/pkg/formctl"
	"github.com/dmitrymomot/formkit/pkg/httpserver"
	"github.com/dmitrymomot/formkit/pkg/logger"
)

// DefaultCapacity is the number of page views whose form state is kept.
const DefaultCapacity = 1024

// Server serves the forms page and its submit endpoints.
type Server struct {
	selector  formctl.Selector
	layouts   feedback.Layouts
	messages  map[form.Kind]formctl.Messages
	capacity  int
	log       *slog.Logger
	instances *cache.LRU[string, *instance]
}

// Option configures a Server.
type Option func(*Server)

// WithLogger sets the logger for requests and form controllers.
func WithLogger(log *slog.Logger) Option {
	return func(s *Server) {
		if log != nil {
			s.log = log
		}
	}
}

// WithLayouts overrides the element ids of the forms.
func WithLayouts(layouts feedback.Layouts) Option {
	return func(s *Server) {
		if layouts != nil {
			s.layouts = layouts
		}
	}
}

// WithMessages overrides the banner texts of one form.
func WithMessages(kind form.Kind, m formctl.Messages) Option {
	return func(s *Server) {
		s.messages[kind] = m
	}
}

// WithCapacity bounds the number of live form instances. Values below one
// keep the default.
func WithCapacity(n int) Option {
	return func(s *Server) {
		if n > 0 {
			s.capacity = n
		}
	}
}

// New creates a Server delivering submissions through selector.
func New(selector formctl.Selector, opts ...Option) (*Server, error) {
	if selector == nil {
		return nil, ErrNilSelector
	}

	s := &Server{
		selector: selector,
		layouts:  feedback.DefaultLayouts(),
		messages: make(map[form.Kind]formctl.Messages),
		capacity: DefaultCapacity,
		log:      slog.Default(),
	}
	for _, opt := range opts {
		opt(s)
	}
	s.log = s.log.With(logger.Component("formserver"))

	if _, err := s.buildInstance("startup-check"); err != nil {
		return nil, fmt.Errorf("formserver: %w", err)
	}
	s.instances = s.newRegistry(s.capacity)

	return s, nil
}

// Handler returns the HTTP routes.
func (s *Server) Handler() http.Handler {
	r := chi.NewRouter()
	r.Use(
		middleware.RequestID,
		middleware.RealIP,
		requestLogger(s.log),
		middleware.Recoverer,
	)

	r.Get("/", s.handlePage)
	r.Get("/healthz", httpserver.HealthCheckHandler(s.log))
	r.Post("/forms/{kind}", s.handleSubmit)

	return r
}
