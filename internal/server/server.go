package server

import (
	"context"
	"fmt"
	"net/http"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/rendyak/karirku/internal/config"
	"github.com/rendyak/karirku/internal/services"
	log "github.com/sirupsen/logrus"
)

type Server struct {
	httpServer *http.Server
}

func New(cfg config.ServerConfig, auth *services.Auth, workflow *services.Workflow) *Server {

	gin.SetMode(gin.ReleaseMode)
	engine := gin.New()
	engine.Use(gin.Recovery())
	engine.Use(requestMetrics())
	engine.Use(rateLimit(cfg.RateLimitPerSecond, cfg.RateLimitBurst))

	if len(cfg.AllowedOrigins) > 0 {
		corsCfg := cors.DefaultConfig()
		corsCfg.AllowOrigins = cfg.AllowedOrigins
		engine.Use(cors.New(corsCfg))
	}

	handlers := NewHandlers(auth, workflow)

	v1 := engine.Group("/api/v1")
	v1.POST("/auth/login", handlers.login)
	v1.POST("/auth/logout", handlers.logout)
	v1.POST("/validation", handlers.submitValidation)
	v1.GET("/validations", handlers.validationStatus)
	v1.GET("/job_vacancies", handlers.vacancies)
	v1.POST("/applications", handlers.submitApplication)
	v1.GET("/applications", handlers.applications)

	return &Server{
		httpServer: &http.Server{
			Addr:    fmt.Sprintf(":%d", cfg.Port),
			Handler: engine,
		},
	}
}

// Handler exposes the routing tree for in-process tests.
func (s *Server) Handler() http.Handler {
	return s.httpServer.Handler
}

func (s *Server) Run() {
	log.Infof("http server listening on %s", s.httpServer.Addr)
	if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Fatalf("http server failed: %v", err)
	}
}

func (s *Server) Stop(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}
