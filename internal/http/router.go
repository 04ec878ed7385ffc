// README: HTTP router registration.
package http

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"tripsummary/internal/http/handlers"
	"tripsummary/internal/http/middleware"
)

func (s *Server) Routes() *gin.Engine {
	r := gin.New()
	r.Use(
		middleware.RequestID(),
		middleware.Logging(),
		middleware.Recovery(),
		cors.New(s.cors),
	)

	r.GET("/health", handlers.Health)

	summaryHandler := handlers.NewSummaryHandler(s.summarizer)
	r.POST("/api/generate-summary", summaryHandler.Generate)

	return r
}
