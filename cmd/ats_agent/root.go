package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/SanthoshkumarGudi/ATS-SW/internal/config"
	"github.com/SanthoshkumarGudi/ATS-SW/internal/db"
	"github.com/SanthoshkumarGudi/ATS-SW/internal/fetch"
	"github.com/SanthoshkumarGudi/ATS-SW/internal/logger"
	"github.com/SanthoshkumarGudi/ATS-SW/internal/observability"
	"github.com/SanthoshkumarGudi/ATS-SW/internal/types"
)

// resumeStoreTokenEnv names the bearer token sent when fetching resumes by URL.
const resumeStoreTokenEnv = "RESUME_STORE_TOKEN"

// app carries the state shared by every subcommand once flags are parsed.
type app struct {
	configPath string
	debug      bool
	jsonOut    bool

	cfg *config.Config
	log *zap.Logger
}

func newRootCmd() *cobra.Command {
	a := &app{}

	root := &cobra.Command{
		Use:   "ats_agent",
		Short: "Applicant screening: resume parsing and skill matching",
		Long: "ats_agent extracts text from PDF resumes, derives candidate facts (name, email, phone, " +
			"location, skills) and scores them against a job's required skills.",
		SilenceUsage: true,
		PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
			return a.init()
		},
		PersistentPostRun: func(_ *cobra.Command, _ []string) {
			if a.log != nil {
				_ = a.log.Sync()
			}
		},
	}

	root.PersistentFlags().StringVar(&a.configPath, "config", "", "Path to a config file (JSON, YAML or TOML)")
	root.PersistentFlags().BoolVar(&a.debug, "debug", false, "Enable debug logging")
	root.PersistentFlags().BoolVar(&a.jsonOut, "json", false, "Print JSON output and JSON logs")

	root.AddCommand(
		newParseResumeCmd(a),
		newScoreCmd(a),
		newScreenCmd(a),
		newScreenBatchCmd(a),
		newListScreeningsCmd(a),
		newMigrateCmd(a),
		newServeCmd(a),
		newTokenCmd(a),
	)
	return root
}

func (a *app) init() error {
	cfg, err := config.Load(a.configPath)
	if err != nil {
		return err
	}
	a.cfg = cfg

	log, err := logger.New(a.jsonOut || cfg.Log.JSON, a.debug || cfg.Log.Debug)
	if err != nil {
		return fmt.Errorf("failed to create logger: %w", err)
	}
	a.log = log
	return nil
}

// printJSON writes v as indented JSON to the command's output.
func (a *app) printJSON(cmd *cobra.Command, v any) error {
	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("failed to encode output: %w", err)
	}
	return nil
}

func (a *app) printer(cmd *cobra.Command) *observability.Printer {
	return observability.NewPrinter(cmd.OutOrStdout())
}

// fetcher builds the document client from config and the environment.
func (a *app) fetcher() *fetch.Client {
	opts := fetch.DefaultOptions()
	opts.Timeout = a.cfg.FetchTimeout
	opts.MaxBytes = a.cfg.MaxDocumentBytes
	opts.Token = os.Getenv(resumeStoreTokenEnv)
	return fetch.NewClient(opts)
}

// connectDB opens the screening store. It fails when no database URL is configured.
func (a *app) connectDB(ctx context.Context) (*db.DB, error) {
	if a.cfg.DatabaseURL == "" {
		return nil, fmt.Errorf("database URL is required (set DATABASE_URL or database_url in the config file)")
	}
	database, err := db.Connect(ctx, a.cfg.DatabaseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	return database, nil
}

// readDocument loads a local resume file.
func readDocument(path, mediaType string) (*types.RawDocument, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read resume file: %w", err)
	}
	return &types.RawDocument{
		Content:   content,
		MediaType: mediaType,
		Filename:  filepath.Base(path),
	}, nil
}

// splitList parses a comma-separated flag value, dropping blank entries.
func splitList(value string) []string {
	items := []string{}
	for _, part := range strings.Split(value, ",") {
		if part = strings.TrimSpace(part); part != "" {
			items = append(items, part)
		}
	}
	return items
}
