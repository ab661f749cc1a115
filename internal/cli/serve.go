package cli

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	oteladapter "github.com/halversen/daystart/internal/adapters/otel"
	"github.com/halversen/daystart/internal/config"
	"github.com/halversen/daystart/internal/quote"
	"github.com/halversen/daystart/internal/service"
	"github.com/halversen/daystart/internal/store"
	"github.com/halversen/daystart/internal/weather"
	"github.com/halversen/daystart/internal/web"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the dashboard API server",
	Long: `Start the dashboard API server.

The store is in-memory and seeded with demo data; everything is lost
on restart.

Examples:
  daystart serve              # Start on default port 8080
  daystart serve --port 3000  # Start on port 3000`,
	RunE: runServe,
}

var servePort int

func init() {
	rootCmd.AddCommand(serveCmd)
	serveCmd.Flags().IntVarP(&servePort, "port", "p", 0, "Port to listen on (overrides DAYSTART_PORT)")
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg, err := config.LoadServer()
	if err != nil {
		return fmt.Errorf("loading configuration: %w", err)
	}
	if cmd.Flags().Changed("port") {
		cfg.Port = servePort
	}

	// Create context that cancels on interrupt
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigChan
		fmt.Println("\nShutting down...")
		cancel()
	}()

	st := store.New()
	store.Seed(st)
	svc := service.New(st)

	var rec web.MetricsRecorder
	exporter, err := oteladapter.NewExporter(ctx, oteladapter.LoadConfig())
	if err != nil {
		rec = oteladapter.NewNoOpExporter()
	} else {
		rec = exporter
		defer func() {
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			_ = exporter.Close(shutdownCtx)
		}()
	}

	server := web.NewHTTPServer(
		web.Config{Port: cfg.Port, DefaultUserID: cfg.DefaultUserID},
		svc,
		quote.NewClient(quote.Config{}),
		weather.NewClient(weather.Config{APIKey: cfg.WeatherAPIKey}),
		rec,
	)

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := server.Shutdown(shutdownCtx); err != nil {
			fmt.Printf("Server shutdown error: %v\n", err)
		}
	}()

	fmt.Printf("Starting server at http://localhost:%d\n", cfg.Port)

	err = server.ListenAndServe()
	if err == http.ErrServerClosed {
		return nil // Graceful shutdown
	}
	return err
}
