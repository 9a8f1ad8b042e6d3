// Package web exposes the transcription service over HTTP.
package web

import (
	"net/http"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"media2text/internal/app/repository"
	"media2text/internal/app/service"
	"media2text/web/handlers"
)

// Server hosts the HTTP API.
type Server struct {
	engine *gin.Engine
	addr   string
	log    *zap.SugaredLogger
}

// NewServer builds the gin engine with all routes registered.
// providers lists the names the /providers endpoint reports.
func NewServer(addr string, svc *service.Service, history repository.HistoryDAO,
	providers []string, log *zap.SugaredLogger) *Server {
	gin.SetMode(gin.ReleaseMode)
	engine := gin.New()
	engine.Use(gin.Recovery())

	uploadDir := os.TempDir()
	api := handlers.NewAPIHandler(svc, history, providers, uploadDir, log)

	v1 := engine.Group("/api/v1")
	{
		transcriptions := v1.Group("/transcriptions")
		{
			transcriptions.POST("", api.Create)
			transcriptions.POST("/url", api.CreateFromURL)
			transcriptions.GET("", api.List)
			transcriptions.GET("/search", api.Search)
			transcriptions.GET("/:id", api.Get)
			transcriptions.POST("/:id/favorite", api.ToggleFavorite)
			transcriptions.DELETE("/:id", api.Delete)
		}
		v1.GET("/providers", api.Providers)
	}

	engine.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	engine.GET("/metrics", gin.WrapH(promhttp.Handler()))

	return &Server{
		engine: engine,
		addr:   addr,
		log:    log,
	}
}

// Engine exposes the router for httptest.
func (s *Server) Engine() *gin.Engine {
	return s.engine
}

// Start blocks serving HTTP until the listener fails.
func (s *Server) Start() error {
	s.log.Infow("starting HTTP server", "addr", s.addr)
	return s.engine.Run(s.addr)
}
