package main

import (
	"github.com/joho/godotenv"
	"log"
	"log/slog"
	"net/http"
	"os"
)

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	_ = godotenv.Load()
	addr := getEnv("SLEUTH_ADDR", ":8632")
	level := getEnv("SLEUTH_LOG", "info")

	if err := setupLogging(level); err != nil {
		return err
	}

	s := newServer()
	s.setupRoutes()

	slog.Info("listening", "addr", addr)
	return http.ListenAndServe(addr, s.router)
}

func setupLogging(level string) error {
	var logLevel slog.Level
	err := logLevel.UnmarshalText([]byte(level))
	h := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: logLevel})
	slog.SetDefault(slog.New(h))
	return err
}

func getEnv(key, fallback string) string {
	if val, ok := os.LookupEnv(key); ok {
		return val
	}
	return fallback
}
