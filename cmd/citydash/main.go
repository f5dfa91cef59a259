package main

import (
	"context"
	"flag"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gometeo/citydash/internal/dashboard"
)

func main() {
	apiURL := flag.String("api", "http://localhost:3000", "base URL of the dashboard API")
	city := flag.String("city", "", "city to look up")
	watch := flag.Duration("watch", 0, "repeat the search at this interval (0 runs once)")
	timeout := flag.Duration("timeout", 15*time.Second, "per request timeout")
	flag.Parse()

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelWarn}))

	client := dashboard.NewClient(*apiURL, *timeout)
	orch := dashboard.New(client, dashboard.NewTextView(os.Stdout), logger)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	state := orch.LoadCurrency(ctx, dashboard.State{})
	state = orch.Search(ctx, state, *city)

	if *watch <= 0 {
		if state.Weather == nil && state.News == nil {
			os.Exit(1)
		}
		return
	}

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	ticker := time.NewTicker(*watch)
	defer ticker.Stop()

	for {
		select {
		case <-sigChan:
			return
		case <-ticker.C:
			state = orch.Search(ctx, state, *city)
		}
	}
}
