package server

import (
	"context"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/inkwell-books/orders-service/internal/config"
	"github.com/inkwell-books/orders-service/internal/handlers"
)

type Server struct {
	config     *config.Config
	router     *gin.Engine
	handlers   *handlers.Handlers
	httpServer *http.Server
}

func New(h *handlers.Handlers, cfg *config.Config) *Server {
	router := gin.Default()

	s := &Server{
		config:   cfg,
		router:   router,
		handlers: h,
	}

	s.setupRoutes()

	s.httpServer = &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:      router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	return s
}

func (s *Server) setupRoutes() {
	s.router.GET("/", s.handlers.Root)
	s.router.GET("/health", s.handlers.Health)
	s.router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	s.router.POST("/order-cod", s.handlers.SubmitCODOrder)
	s.router.GET("/orders", s.handlers.ListOrders)

	// Book cover images
	s.router.Static("/image", s.config.Server.ImageDir)
}

func (s *Server) Start() error {
	return s.httpServer.ListenAndServe()
}

func (s *Server) Shutdown(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}
