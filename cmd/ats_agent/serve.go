package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/SanthoshkumarGudi/ATS-SW/internal/config"
	"github.com/SanthoshkumarGudi/ATS-SW/internal/pipeline"
	"github.com/SanthoshkumarGudi/ATS-SW/internal/server"
)

func newServeCmd(a *app) *cobra.Command {
	var (
		port    int
		migrate bool
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the REST API server",
		Long: "Start an HTTP server that screens uploaded or URL-referenced resumes. Screenings are " +
			"persisted when a database URL is configured; authentication is enabled when JWT_SECRET is set.",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()
			if port == 0 {
				port = a.cfg.Port
			}

			screenerOpts := []pipeline.Option{
				pipeline.WithLogger(a.log),
				pipeline.WithFetcher(a.fetcher()),
			}

			// A *db.DB is only assigned when connected so a nil store stays a nil interface.
			var store server.Store
			if a.cfg.DatabaseURL != "" {
				database, err := a.connectDB(ctx)
				if err != nil {
					return err
				}
				defer database.Close()

				if migrate {
					if err := database.Migrate(ctx); err != nil {
						return err
					}
				}
				store = database
				screenerOpts = append(screenerOpts, pipeline.WithStore(database))
			} else {
				a.log.Warn("no database configured, screenings will not be persisted")
			}

			var jwtService *server.JWTService
			jwtConfig, err := config.NewJWTConfig()
			switch {
			case errors.Is(err, config.ErrJWTSecretMissing):
				a.log.Warn("JWT_SECRET not set, API authentication is disabled")
			case err != nil:
				return fmt.Errorf("failed to create JWT config: %w", err)
			default:
				jwtService = server.NewJWTService(jwtConfig)
			}

			srv := server.New(pipeline.NewScreener(a.cfg.Screening, screenerOpts...), store, server.Config{
				Port:           port,
				MaxUploadBytes: a.cfg.MaxDocumentBytes,
				Logger:         a.log,
				RateLimit:      &a.cfg.RateLimit,
				JWT:            jwtService,
			})

			a.log.Info("starting API server",
				zap.Int("port", port),
				zap.Bool("persistence", store != nil),
				zap.Bool("auth", jwtService != nil))
			return srv.Start(ctx)
		},
	}

	cmd.Flags().IntVar(&port, "port", 0, "Port to listen on (defaults to the configured port)")
	cmd.Flags().BoolVar(&migrate, "migrate", false, "Apply the database schema before serving")
	return cmd
}
