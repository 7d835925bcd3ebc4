package server

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gorilla/sessions"
	"github.com/sirupsen/logrus"
	"github.com/techagentng/bookxchange/config"
	"github.com/techagentng/bookxchange/db"
	"github.com/techagentng/bookxchange/services"
)

// Server holds everything a request handler needs.
type Server struct {
	Config         *config.Config
	Log            *logrus.Logger
	DB             *db.GormDB
	AuthService    services.AuthService
	ListingService services.ListingService
	MessageService services.MessageService
	SessionStore   sessions.Store
	Metrics        *Metrics
}

// Start serves until SIGINT or SIGTERM, then drains in-flight requests.
func (s *Server) Start() {
	r := s.setupRouter()

	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", s.Config.Port),
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       30 * time.Second,
		WriteTimeout:      30 * time.Second,
	}

	go func() {
		s.Log.WithField("addr", srv.Addr).Info("server started")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			s.Log.WithError(err).Fatal("listen")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	s.Log.Info("shutting down server")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		s.Log.WithError(err).Error("server forced to shutdown")
	}
	if s.DB != nil {
		if err := s.DB.Close(); err != nil {
			s.Log.WithError(err).Error("closing database")
		}
	}
	s.Log.Info("server exiting")
}
