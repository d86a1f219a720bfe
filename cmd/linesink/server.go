package main

import (
	"context"
	"encoding/json"
	"fmt"
	"net"
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"

	"linesink/internal/constants"
	"linesink/internal/models"
	"linesink/internal/service"
	"linesink/internal/tracing"
)

// Server hosts the webhook callback plus the static and downloaded
// content the bot links back to in its own messages.
type Server struct {
	router     *mux.Router
	dispatcher *service.Dispatcher
	logger     *logrus.Logger
	httpServer *http.Server
	cfg        models.ServerConfig
	secret     string
}

func NewServer(cfg models.ServerConfig, secret string, dispatcher *service.Dispatcher, logger *logrus.Logger, downloadDir string) *Server {
	s := &Server{
		router:     mux.NewRouter(),
		dispatcher: dispatcher,
		logger:     logger,
		cfg:        cfg,
		secret:     secret,
	}
	s.setupRoutes(downloadDir)
	return s
}

func (s *Server) setupRoutes(downloadDir string) {
	s.router.HandleFunc("/callback", s.handleCallback).Methods("POST")
	s.router.HandleFunc("/health", s.handleHealth).Methods("GET")

	if s.cfg.StaticDir != "" {
		s.router.PathPrefix("/static/").Handler(
			http.StripPrefix("/static/", http.FileServer(http.Dir(s.cfg.StaticDir))))
	}
	s.router.PathPrefix("/downloaded/").Handler(
		http.StripPrefix("/downloaded/", http.FileServer(http.Dir(downloadDir))))
}

func (s *Server) Start(ctx context.Context) error {
	s.httpServer = &http.Server{
		Addr:         fmt.Sprintf(":%d", s.cfg.Port),
		Handler:      s.router,
		ReadTimeout:  constants.DefaultServerReadTimeoutSec * time.Second,
		WriteTimeout: constants.DefaultServerWriteTimeoutSec * time.Second,
		IdleTimeout:  constants.DefaultServerIdleTimeoutSec * time.Second,
		BaseContext:  func(_ net.Listener) context.Context { return ctx },
	}
	s.logger.WithField("port", s.cfg.Port).Info("Starting server")
	return s.httpServer.ListenAndServe()
}

func (s *Server) Shutdown(ctx context.Context) error {
	if s.httpServer == nil {
		return nil
	}
	return s.httpServer.Shutdown(ctx)
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(map[string]string{"status": "ok"})
}

// handleCallback validates the webhook delivery and acknowledges it
// before any replies are sent; event handling runs on its own
// goroutine per event so scripted delays never stall the webhook.
func (s *Server) handleCallback(w http.ResponseWriter, r *http.Request) {
	body, err := verifySignature(r, s.secret)
	if err != nil {
		s.logger.WithError(err).Warn("Rejected webhook delivery")
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	var payload models.WebhookPayload
	if err := json.Unmarshal(body, &payload); err != nil {
		s.logger.WithError(err).Warn("Failed to decode webhook payload")
		http.Error(w, "Bad Request", http.StatusBadRequest)
		return
	}

	s.logger.WithFields(logrus.Fields{
		"destination": payload.Destination,
		"events":      len(payload.Events),
	}).Debug("Received webhook delivery")

	for _, event := range payload.Events {
		go s.handleEvent(event)
	}

	w.WriteHeader(http.StatusOK)
}

func (s *Server) handleEvent(event models.Event) {
	ctx, span := tracing.StartSpan(context.Background(), "event.handle",
		attribute.String("event.type", string(event.Type)))
	defer span.End()

	if err := s.dispatcher.HandleEvent(ctx, event); err != nil {
		tracing.RecordError(ctx, err)
		s.logger.WithError(err).WithFields(logrus.Fields{
			"event_type": event.Type,
			"source":     event.Source.String(),
		}).Error("Failed to handle event")
	}
}
