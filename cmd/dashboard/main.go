package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/shenikar/tactical_dashboard/internal/client"
	"github.com/shenikar/tactical_dashboard/internal/config"
	"github.com/shenikar/tactical_dashboard/pkg/logger"
)

const httpTimeout = 10 * time.Second

func main() {
	cfg, err := config.LoadClientConfig()
	if err != nil {
		logrus.Fatalf("Failed to load config: %v", err)
	}

	// Логи в stderr, stdout - экран дашборда
	log := logger.NewConsole(cfg.LogLevel, os.Stderr)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	fetcher := client.NewFetcher(cfg.ServerURL, httpTimeout)
	subscriber, err := client.NewSubscriber(cfg.ServerURL, cfg.ReconnectDelay, log)
	if err != nil {
		log.Fatalf("Invalid DASHBOARD_SERVER_URL: %v", err)
	}

	render := func(s client.State) {
		fmt.Fprint(os.Stdout, "\033[H\033[2J")
		client.Render(os.Stdout, s)
		fmt.Fprintln(os.Stdout, "[e] emergency  [q] quit")
	}
	reducer := client.NewReducer(fetcher, cfg.OfficerBadge, log, render)

	go subscriber.Run(ctx, reducer)
	go readCommands(ctx, stop, reducer)

	log.WithField("server", cfg.ServerURL).Info("Dashboard started")
	if err := reducer.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
		log.Errorf("Dashboard stopped: %v", err)
	}
}

// readCommands переводит нажатия в действия редьюсера
func readCommands(ctx context.Context, quit context.CancelFunc, r *client.Reducer) {
	scanner := bufio.NewScanner(os.Stdin)
	for scanner.Scan() {
		if ctx.Err() != nil {
			return
		}
		switch strings.ToLower(strings.TrimSpace(scanner.Text())) {
		case "e":
			r.RequestEmergency()
		case "y":
			r.ConfirmEmergency()
		case "n":
			r.CancelEmergency()
		case "d":
			r.DismissIncoming()
		case "q":
			quit()
			return
		}
	}
}
