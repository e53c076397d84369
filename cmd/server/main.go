package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gorilla/mux"

	"github.com/inamate/sketchboard/internal/config"
	"github.com/inamate/sketchboard/internal/engine"
	mw "github.com/inamate/sketchboard/internal/middleware"
	"github.com/inamate/sketchboard/internal/session"
	"github.com/inamate/sketchboard/internal/textmetrics"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("load config", "error", err)
		os.Exit(1)
	}

	level, err := cfg.Level()
	if err != nil {
		slog.Warn("falling back to info logging", "error", err)
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: level})))

	// One measurer for every session; its face cache is shared.
	measurer := textmetrics.Default()
	defer measurer.Close()

	style := engine.DefaultStyle
	style.BrushSize = cfg.BrushSize
	style.Font.Size = cfg.FontSize

	newEngine := func() *engine.Engine {
		return engine.NewEngine(engine.Options{Style: style, Measurer: measurer})
	}

	hub := session.NewHub(newEngine, cfg.SessionTTL)
	go hub.Run()

	issuer := session.NewIssuer(cfg.SessionSecret, cfg.SessionTTL)
	sessionHandler := session.NewHandler(hub, issuer, cfg.Origins())

	r := mux.NewRouter()

	// Global middleware
	r.Use(mw.Recovery)
	r.Use(mw.Logger)
	r.Use(mw.CORS(cfg.Origins()))

	// Health check
	r.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status":"ok"}`))
	}).Methods("GET")

	r.HandleFunc("/sessions", sessionHandler.Create).Methods("POST", "OPTIONS")
	r.HandleFunc("/sessions/{sessionId}", sessionHandler.Get).Methods("GET", "OPTIONS")

	// WebSocket endpoint
	r.HandleFunc("/ws/sessions/{sessionId}", sessionHandler.ServeWS)

	addr := fmt.Sprintf(":%d", cfg.Port)
	srv := &http.Server{
		Addr:         addr,
		Handler:      r,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 120 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Graceful shutdown
	go func() {
		sigCh := make(chan os.Signal, 1)
		signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
		<-sigCh

		slog.Info("shutting down server")

		// Disconnect websocket clients first; Shutdown does not wait for hijacked connections.
		hub.Stop()

		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer shutdownCancel()
		srv.Shutdown(shutdownCtx)
	}()

	slog.Info("server starting", "addr", addr)
	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		slog.Error("server error", "error", err)
		os.Exit(1)
	}
}
