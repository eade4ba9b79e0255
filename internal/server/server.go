package server

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"labqueue/internal/auth"
	"labqueue/internal/config"
)

const shutdownTimeout = 10 * time.Second

type Server struct {
	engine *gin.Engine
	log    *logrus.Logger
}

func New(appEnv config.AppEnv, log *logrus.Logger) *Server {
	switch appEnv {
	case config.ProductionEnv:
		gin.SetMode(gin.ReleaseMode)
	case config.TestEnv:
		gin.SetMode(gin.TestMode)
	}
	binding.EnableDecoderDisallowUnknownFields = true

	r := gin.New()
	r.RedirectTrailingSlash = false
	r.Use(gin.Recovery(), auth.RequestLogger(log))
	r.Use(cors.New(cors.Config{
		AllowOrigins:  []string{"*"},
		AllowMethods:  []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:  []string{"Content-Type", auth.CallerHeader, auth.RequestIDHeader},
		ExposeHeaders: []string{"Content-Length", auth.RequestIDHeader},
	}))

	return &Server{engine: r, log: log}
}

// Handler exposes the engine for httptest.
func (s *Server) Handler() http.Handler {
	return s.engine
}

// Serve blocks until ctx is done or the listener fails.
func (s *Server) Serve(ctx context.Context, address string) error {
	srv := &http.Server{
		Addr:              address,
		Handler:           s.engine,
		ReadHeaderTimeout: 5 * time.Second,
	}

	s.log.WithField("addr", address).Info("rest server starting")
	srvError := make(chan error, 1)
	go func() {
		srvError <- srv.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		s.log.Info("rest server is shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	case err := <-srvError:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	}
}
