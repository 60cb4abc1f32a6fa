// Package server exposes the service layer as a JSON HTTP API. Routing
// uses the standard mux with method-qualified patterns; cross-cutting
// concerns are applied per route through explicit middleware chains.
package server

import (
	"strings"

	"net/http"

	"github.com/pkg/errors"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/aigenie/genie-server/accounts"
	"github.com/aigenie/genie-server/advisor"
	"github.com/aigenie/genie-server/entitlements"
	"github.com/aigenie/genie-server/goals"
	"github.com/aigenie/genie-server/internal/config"
	"github.com/aigenie/genie-server/oneshot"
	"github.com/aigenie/genie-server/token"
	"github.com/aigenie/genie-server/video"
	"github.com/aigenie/genie-server/wisdom"
)

// Services holds the feature dependencies of the HTTP layer.
type Services struct {
	Accounts     *accounts.Service
	Wisdom       *wisdom.Service
	Entitlements *entitlements.Service
	OneShot      *oneshot.Service
	Goals        *goals.Service
	Advisor      *advisor.Service
	Video        *video.Client
	Tokens       *token.Issuer
}

type Server struct {
	env      string
	mux      *http.ServeMux
	routes   []string
	config   config.Config
	services Services
	logger   zerolog.Logger
}

func New(cfg config.Config, services Services) (*Server, error) {
	if services.Accounts == nil {
		return nil, errors.New("[server.New] accounts service is required")
	}
	if services.Tokens == nil {
		return nil, errors.New("[server.New] token issuer is required")
	}

	s := &Server{
		env:      cfg.GetEnv(),
		mux:      http.NewServeMux(),
		config:   cfg,
		services: services,
		logger:   log.With().Str("component", "server").Logger(),
	}

	s.initRoutes()
	s.logRoutes()

	return s, nil
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.mux.ServeHTTP(w, r)
}

func (s *Server) RegisterRouteHandler(pattern string, handler http.Handler) {
	s.routes = append(s.routes, pattern)
	s.mux.Handle(pattern, handler)
}

func (s *Server) RegisterRouteFunc(pattern string, handler func(http.ResponseWriter, *http.Request)) {
	s.routes = append(s.routes, pattern)
	s.mux.HandleFunc(pattern, handler)
}

func (s *Server) logRoutes() {
	if s.env != "DEV" {
		return // Skip logging in non-development environments
	}
	for _, route := range s.routes {
		parts := strings.SplitN(route, " ", 2)
		if len(parts) > 1 {
			s.logger.Debug().Str("method", parts[0]).Str("path", parts[1]).Msg("route registered")
		} else {
			s.logger.Debug().Str("path", parts[0]).Msg("route registered")
		}
	}
}
