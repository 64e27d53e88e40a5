package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/middlemost/podlink"
	"github.com/middlemost/podlink/bolt"
	"github.com/middlemost/podlink/http"
	"github.com/middlemost/podlink/otel"
	"github.com/middlemost/podlink/prometheus"
	prom "github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/spf13/cobra"
)

func (m *Main) serveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the deep link HTTP service",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			// Shutdown on SIGINT (CTRL-C).
			ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
			defer stop()
			return m.Serve(ctx)
		},
	}
}

// Serve opens the database and HTTP server and blocks until ctx is done.
func (m *Main) Serve(ctx context.Context) error {
	// Interpolate config paths.
	dbPath := m.Config.Database.Path
	if err := InterpolatePaths(&dbPath); err != nil {
		return err
	}

	// Open database.
	db := bolt.NewDB()
	db.Path = dbPath
	if err := db.Open(); err != nil {
		return err
	}
	defer db.Close()
	fmt.Fprintf(m.Stdout, "database initialized: path=%s\n", dbPath)

	// Build dispatch pipeline: router, history, metrics, tracing.
	router := podlink.NewRouter(m.Config.DeepLink.WebBaseHost)
	router.LogOutput = m.Stdout

	resolutionService := bolt.NewResolutionService(db)

	dispatcher := podlink.NewDispatcher(router)
	dispatcher.ResolutionService = resolutionService
	dispatcher.LogOutput = m.Stdout

	registry := prom.NewRegistry()
	registry.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))

	var dispatchService podlink.DispatchService = dispatcher
	dispatchService = prometheus.NewDispatchService(dispatchService, registry, m.Config.Metrics.Namespace)
	dispatchService = otel.NewDispatchService(dispatchService, m.Config.Tracing.TracerName)

	// Initialize HTTP server.
	httpServer := http.NewServer()
	httpServer.Addr = m.Config.HTTP.Addr
	httpServer.Host = m.Config.HTTP.Host
	httpServer.Autocert = m.Config.HTTP.Autocert
	httpServer.LogOutput = m.Stdout

	httpServer.DispatchService = dispatchService
	httpServer.ResolutionService = resolutionService
	httpServer.Gatherer = registry

	// Open HTTP server.
	if err := httpServer.Open(); err != nil {
		return err
	}
	defer httpServer.Close()
	u := httpServer.URL()
	fmt.Fprintf(m.Stdout, "http listening: %s\n", u.String())

	<-ctx.Done()
	fmt.Fprintln(m.Stdout, "received interrupt, shutting down...")
	return nil
}
