// cmd/fleetstatsd/main.go
//
// This is the entry point for the fleet API daemon. It serves the
// fleet-stats and leads endpoints the showroom page talks to.

package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/Nestorservice/asapfoodtrailer/internal/config"
	"github.com/Nestorservice/asapfoodtrailer/internal/fleetapi"
	"github.com/Nestorservice/asapfoodtrailer/internal/logbook"
)

func main() {
	host := flag.String("host", "127.0.0.1", "address to bind")
	port := flag.Int("port", 8750, "port to listen on")
	flag.Parse()

	cwd, err := os.Getwd()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error getting working directory: %v\n", err)
		os.Exit(1)
	}
	if err := config.InitShowroomDir(cwd); err != nil {
		fmt.Fprintf(os.Stderr, "Error initializing .showroom directory: %v\n", err)
		os.Exit(1)
	}
	cfg, err := config.NewConfig(cwd)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}
	lb, err := logbook.New(filepath.Join(cfg.LogsDir(), "fleetstatsd.log"))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening log: %v\n", err)
		os.Exit(1)
	}

	server := fleetapi.NewServer(
		fleetapi.Settings{Host: *host, Port: *port},
		fleetapi.WithLogger(lb),
	)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	errc := make(chan error, 1)
	go func() {
		errc <- server.Start(ctx)
	}()

	select {
	case err := <-errc:
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error running fleet API: %v\n", err)
			os.Exit(1)
		}
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := server.Shutdown(shutdownCtx); err != nil {
			fmt.Fprintf(os.Stderr, "Error shutting down: %v\n", err)
			os.Exit(1)
		}
		lb.Info("fleetapi stopped")
	}
}
