package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/git-kubik/azure-architecture-map/internal/config"
	"github.com/git-kubik/azure-architecture-map/internal/content"
	"github.com/git-kubik/azure-architecture-map/internal/db"
	"github.com/git-kubik/azure-architecture-map/internal/graph"
	"github.com/git-kubik/azure-architecture-map/internal/live"
	"github.com/git-kubik/azure-architecture-map/internal/logging"
	"github.com/git-kubik/azure-architecture-map/internal/markdown"
	"github.com/git-kubik/azure-architecture-map/internal/reconcile"
	"github.com/git-kubik/azure-architecture-map/internal/server"
	"github.com/git-kubik/azure-architecture-map/internal/state"
	"github.com/git-kubik/azure-architecture-map/internal/ui"
)

var servePort int

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the architecture map server",
	Long:  `Starts the HTTP server hosting the interactive architecture map.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load(cfgFile)
		if err != nil {
			return fmt.Errorf("loading config: %w", err)
		}
		if cmd.Flags().Changed("port") {
			cfg.Port = servePort
		}
		if err := cfg.Validate(); err != nil {
			return fmt.Errorf("invalid config: %w", err)
		}

		log, err := logging.New(cfg.LogLevel, cfg.LogFormat)
		if err != nil {
			return err
		}
		defer log.Sync()

		// Pick the catalog: built-in Azure table, or a user-supplied file.
		catalog := content.Default()
		if cfg.CatalogFile != "" {
			catalog, err = content.LoadFile(cfg.CatalogFile)
			if err != nil {
				return err
			}
			log.Info("loaded catalog", zap.String("file", cfg.CatalogFile))
		}

		// Open the store. Unreachable storage is fatal at startup only.
		dbPath := filepath.Join(cfg.DataDir, "graph_state.db")
		database, err := db.Open(dbPath)
		if err != nil {
			return fmt.Errorf("opening database: %w", err)
		}
		defer database.Close()

		store := state.NewStore(database, log)
		renderer := markdown.NewRenderer()
		hub := live.NewHub(log)
		rec := reconcile.New(store, renderer, reconcile.ZoomConfig{
			Step: cfg.Zoom.Step,
			Min:  cfg.Zoom.Min,
			Max:  cfg.Zoom.Max,
		}, log)

		initial := graph.Snapshot{
			Elements: graph.Build(catalog, graph.Layout{
				PrimaryRadius: cfg.Layout.PrimaryRadius,
				SubRadius:     cfg.Layout.SubRadius,
			}),
			Zoom: 1.0,
		}

		srv := server.New(server.Config{Port: cfg.Port, AllowAll: true}, log)
		r := srv.Router()
		ui.RegisterRoutes(r)
		state.RegisterRoutes(r, store, initial)
		reconcile.RegisterRoutes(r, rec, hub)
		hub.RegisterRoutes(r)

		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		go func() {
			<-ctx.Done()
			log.Info("shutting down server")
			srv.Shutdown(context.Background())
		}()

		log.Info("azmap starting",
			zap.String("version", Version),
			zap.Int("port", cfg.Port),
			zap.String("database", dbPath))

		return srv.Start()
	},
}

func init() {
	serveCmd.Flags().IntVar(&servePort, "port", 8080, "Port to listen on")
	rootCmd.AddCommand(serveCmd)
}
