// README: API gateway; builds the gin engine and delegates to the summary service.
package http

import (
	"github.com/gin-contrib/cors"

	"tripsummary/internal/http/middleware"
	"tripsummary/internal/service"
)

type ServerDeps struct {
	Summarizer     *service.Summarizer
	AllowedOrigins []string
}

type Server struct {
	summarizer *service.Summarizer
	cors       cors.Config
}

func NewServer(deps ServerDeps) *Server {
	return &Server{
		summarizer: deps.Summarizer,
		cors:       corsConfig(deps.AllowedOrigins),
	}
}

// corsConfig allows every origin when the list is empty or contains "*".
func corsConfig(origins []string) cors.Config {
	cfg := cors.DefaultConfig()
	cfg.AllowMethods = []string{"GET", "POST", "OPTIONS"}
	cfg.AllowHeaders = append(cfg.AllowHeaders, middleware.RequestIDHeader)
	cfg.ExposeHeaders = []string{middleware.RequestIDHeader}
	allowAll := len(origins) == 0
	for _, o := range origins {
		if o == "*" {
			allowAll = true
		}
	}
	if allowAll {
		cfg.AllowAllOrigins = true
	} else {
		cfg.AllowOrigins = origins
	}
	return cfg
}
