package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

type healthResp struct {
	Status string `json:"status"`
}

// Health handles GET /health. It always reports healthy.
func Health(c *gin.Context) {
	writeJSON(c, http.StatusOK, healthResp{Status: "healthy"})
}
