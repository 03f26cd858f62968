package api

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/jengzang/photomap-go/internal/handler"
	"github.com/jengzang/photomap-go/internal/middleware"
	"github.com/jengzang/photomap-go/internal/service"
)

// SetupRouter wires the review server around a completed pipeline result.
// The server only reads the result; re-running the pipeline means building
// a new router.
func SetupRouter(logger zerolog.Logger, result *service.Result) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestLogger(logger))
	r.Use(middleware.RateLimit(100, time.Minute))

	mapHandler := handler.NewMapHandler(result)

	r.GET("/", mapHandler.GetMap)

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "ok",
			"message": "photomap review server is running",
		})
	})

	api := r.Group("/api/v1")
	{
		api.GET("/points", mapHandler.GetPoints)
		api.GET("/clusters", mapHandler.GetClusters)
		api.GET("/routes", mapHandler.GetRoutes)
		api.GET("/report", mapHandler.GetReport)
	}

	return r
}
