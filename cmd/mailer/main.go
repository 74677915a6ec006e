package main

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/recruitsss/recruitsss-backend/internal/config"
	"github.com/recruitsss/recruitsss-backend/internal/database"
	"github.com/recruitsss/recruitsss-backend/internal/logging"
	"github.com/recruitsss/recruitsss-backend/internal/mailer"
	"github.com/recruitsss/recruitsss-backend/internal/notify"
)

func main() {
	logging.Setup()

	cfg := config.Load()
	if cfg.SMTPHost == "" {
		slog.Error("SMTP_HOST environment variable is required")
		os.Exit(1)
	}

	if err := database.Connect(cfg); err != nil {
		slog.Error("database connection failed", "error", err)
		os.Exit(1)
	}

	conn, err := notify.Connect(cfg.AMQPURL, cfg.AMQPRetries, cfg.AMQPRetryDelay)
	if err != nil {
		slog.Error("queue connection failed", "error", err)
		os.Exit(1)
	}
	defer conn.Close()

	ch, err := notify.SetupChannel(conn)
	if err != nil {
		slog.Error("queue channel setup failed", "error", err)
		os.Exit(1)
	}
	defer ch.Close()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	sender := mailer.NewSender(database.DB, mailer.NewTransport(cfg))
	slog.Info("mailer started", "queue", notify.EmailQueue)

	if err := sender.Run(ctx, ch); err != nil && !errors.Is(err, context.Canceled) {
		slog.Error("mailer stopped", "error", err)
		os.Exit(1)
	}
	slog.Info("mailer stopped")
}
