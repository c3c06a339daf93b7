package main

import (
	"context"
	"flag"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github-insights/internal/adapter/github"
	"github-insights/internal/server"
	"github-insights/internal/service"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
)

func main() {
	_ = godotenv.Load()

	addr := flag.String("addr", "", "listen address (default $INSIGHTS_ADDR or :8080)")
	flag.Parse()

	listen := *addr
	if listen == "" {
		listen = os.Getenv("INSIGHTS_ADDR")
	}
	if listen == "" {
		listen = ":8080"
	}

	token := os.Getenv("GITHUB_TOKEN")
	if token == "" {
		logrus.Warn("GITHUB_TOKEN not set, using unauthenticated GitHub API (60 requests/hour)")
	}

	provider := github.NewProvider(token)
	insights := service.NewInsightsService(provider)
	handler := server.New(insights, os.Getenv("INSIGHTS_BASE_URL"))

	srv := &http.Server{
		Addr:         listen,
		Handler:      handler,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 60 * time.Second,
	}

	go func() {
		logrus.WithField("addr", listen).Info("insights server listening")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logrus.WithError(err).Fatal("server failed")
		}
	}()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	<-sigChan

	logrus.Info("shutting down")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logrus.WithError(err).Error("shutdown failed")
	}
}
