package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/SanthoshkumarGudi/ATS-SW/internal/pipeline"
	"github.com/SanthoshkumarGudi/ATS-SW/internal/types"
)

// batchEntry is one element of a screen-batch input file. ResumePath loads a
// local file instead of fetching resume_url.
type batchEntry struct {
	types.ScreeningRequest
	ResumePath string `json:"resume_path,omitempty"`
}

// loadBatch reads a JSON array of batch entries.
func loadBatch(path string) ([]types.ScreeningRequest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read batch file: %w", err)
	}

	var entries []batchEntry
	if err := json.Unmarshal(data, &entries); err != nil {
		return nil, fmt.Errorf("failed to parse batch file %s: %w", path, err)
	}

	reqs := make([]types.ScreeningRequest, len(entries))
	for i, entry := range entries {
		reqs[i] = entry.ScreeningRequest
		if entry.ResumePath == "" {
			continue
		}
		doc, err := readDocument(entry.ResumePath, entry.MediaType)
		if err != nil {
			return nil, fmt.Errorf("entry %d: %w", i, err)
		}
		reqs[i].Document = doc
	}
	return reqs, nil
}

func newScreenBatchCmd(a *app) *cobra.Command {
	var (
		in string
		o  screenerOptions
	)

	cmd := &cobra.Command{
		Use:   "screen-batch",
		Short: "Screen many applications concurrently",
		Long: "Screen every request in a JSON file. Each entry carries job_id, candidate_id, " +
			"required_skills and either resume_url or resume_path. One failing entry does not stop the others.",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			reqs, err := loadBatch(in)
			if err != nil {
				return err
			}

			screener, cleanup, err := a.newScreener(ctx, cmd, o)
			if err != nil {
				return err
			}
			defer cleanup()

			results := screener.ScreenBatch(ctx, reqs)

			var (
				succeeded []types.Screening
				failed    []pipeline.BatchResult
			)
			for _, res := range results {
				if res.Screening != nil {
					succeeded = append(succeeded, *res.Screening)
				} else {
					failed = append(failed, res)
				}
			}

			if a.jsonOut {
				if err := a.printJSON(cmd, results); err != nil {
					return err
				}
			} else {
				a.printer(cmd).PrintScreeningTable(succeeded)
				for _, res := range failed {
					_, _ = fmt.Fprintf(cmd.OutOrStdout(), "entry %d failed: %s\n", res.Index, res.Error)
				}
			}

			if len(failed) > 0 {
				return fmt.Errorf("%d of %d screenings failed", len(failed), len(results))
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&in, "in", "", "Path to the JSON batch file (required)")
	cmd.Flags().IntVar(&o.concurrency, "concurrency", pipeline.DefaultConcurrency, "Maximum screenings in flight")
	cmd.Flags().BoolVar(&o.save, "save", false, "Save the screenings to the database")
	cmd.Flags().BoolVar(&o.progress, "progress", false, "Print pipeline steps to stderr")
	_ = cmd.MarkFlagRequired("in")
	return cmd
}
