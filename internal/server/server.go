package server

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"time"

	ginzap "github.com/gin-contrib/zap"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	v1 "github.com/trustification/spog-ui-e2e/api/v1"
)

type Server struct {
	srv      *http.Server
	listener net.Listener
	url      string
}

// NewServer binds addr right away so URL is known before Start, which
// allows ":0" listeners. registerHandlerFn receives the /api/v1 group.
func NewServer(addr string, registerHandlerFn func(router *gin.RouterGroup)) (*Server, error) {
	listener, err := net.Listen("tcp", addr)
	if err != nil {
		return nil, fmt.Errorf("listening on %s: %w", addr, err)
	}

	logger := zap.L().Named("http")

	engine := gin.New()
	engine.Use(
		ginzap.Ginzap(logger, time.RFC3339, true),
		ginzap.RecoveryWithZap(logger, true),
	)
	engine.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, v1.ErrorResponse{Error: "not found"})
	})

	registerHandlerFn(engine.Group("/api/v1"))

	return &Server{
		srv:      &http.Server{Handler: engine, ReadHeaderTimeout: 10 * time.Second},
		listener: listener,
		url:      fmt.Sprintf("http://%s", listener.Addr().String()),
	}, nil
}

func (s *Server) URL() string {
	return s.url
}

// Start serves until Stop is called or ctx is done. It returns nil after a
// graceful shutdown.
func (s *Server) Start(ctx context.Context) error {
	stop := context.AfterFunc(ctx, func() {
		_ = s.Stop(context.Background())
	})
	defer stop()

	zap.S().Named("mock_services").Infow("mock services listening", "url", s.url)

	if err := s.srv.Serve(s.listener); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

func (s *Server) Stop(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	return s.srv.Shutdown(ctx)
}
