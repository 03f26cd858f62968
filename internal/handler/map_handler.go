package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/jengzang/photomap-go/internal/service"
	"github.com/jengzang/photomap-go/pkg/response"
)

// MapHandler serves a completed pipeline result for review
type MapHandler struct {
	result *service.Result
}

// NewMapHandler creates a new map handler
func NewMapHandler(result *service.Result) *MapHandler {
	return &MapHandler{
		result: result,
	}
}

// GetMap handles GET / and serves the rendered artifact
func (h *MapHandler) GetMap(c *gin.Context) {
	c.Data(http.StatusOK, "text/html; charset=utf-8", h.result.Artifact)
}

// GetPoints handles GET /api/v1/points
func (h *MapHandler) GetPoints(c *gin.Context) {
	response.Success(c, h.result.Points())
}

// GetClusters handles GET /api/v1/clusters
func (h *MapHandler) GetClusters(c *gin.Context) {
	response.Success(c, h.result.Hierarchy)
}

// GetRoutes handles GET /api/v1/routes
func (h *MapHandler) GetRoutes(c *gin.Context) {
	response.Success(c, h.result.Routes)
}

// GetReport handles GET /api/v1/report
func (h *MapHandler) GetReport(c *gin.Context) {
	response.Success(c, h.result.Report)
}
