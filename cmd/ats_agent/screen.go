package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/SanthoshkumarGudi/ATS-SW/internal/pipeline"
	"github.com/SanthoshkumarGudi/ATS-SW/internal/schemas"
	"github.com/SanthoshkumarGudi/ATS-SW/internal/types"
)

// screenerOptions selects the optional collaborators of a CLI screener.
type screenerOptions struct {
	save        bool
	progress    bool
	concurrency int
}

// newScreener wires a pipeline.Screener for a command. The returned cleanup
// closes the database connection when one was opened.
func (a *app) newScreener(ctx context.Context, cmd *cobra.Command, o screenerOptions) (*pipeline.Screener, func(), error) {
	opts := []pipeline.Option{
		pipeline.WithLogger(a.log),
		pipeline.WithFetcher(a.fetcher()),
	}
	if o.concurrency > 0 {
		opts = append(opts, pipeline.WithConcurrency(o.concurrency))
	}
	if o.progress {
		errOut := cmd.ErrOrStderr()
		opts = append(opts, pipeline.WithProgress(func(event pipeline.ProgressEvent) {
			_, _ = fmt.Fprintf(errOut, "[%s] %s\n", event.Step, event.Message)
		}))
	}

	cleanup := func() {}
	if o.save {
		database, err := a.connectDB(ctx)
		if err != nil {
			return nil, nil, err
		}
		opts = append(opts, pipeline.WithStore(database))
		cleanup = database.Close
	}

	return pipeline.NewScreener(a.cfg.Screening, opts...), cleanup, nil
}

func newScreenCmd(a *app) *cobra.Command {
	var (
		req      types.ScreeningRequest
		file     string
		required string
		o        screenerOptions
	)

	cmd := &cobra.Command{
		Use:   "screen",
		Short: "Screen one application end to end",
		Long: "Load a resume from a local file or a URL, extract candidate facts, score them against " +
			"the job's required skills and optionally save the screening record.",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			if file != "" {
				doc, err := readDocument(file, req.MediaType)
				if err != nil {
					return err
				}
				req.Document = doc
			}
			req.RequiredSkills = splitList(required)

			screener, cleanup, err := a.newScreener(ctx, cmd, o)
			if err != nil {
				return err
			}
			defer cleanup()

			screening, err := screener.Screen(ctx, req)
			if err != nil {
				return fmt.Errorf("screening failed: %w", err)
			}
			if err := schemas.Validate(schemas.Screening, screening); err != nil {
				return fmt.Errorf("screening does not validate against schema: %w", err)
			}

			if a.jsonOut {
				return a.printJSON(cmd, screening)
			}
			a.printer(cmd).PrintScreening(screening)
			return nil
		},
	}

	cmd.Flags().StringVar(&file, "file", "", "Path to a local resume file")
	cmd.Flags().StringVar(&req.ResumeURL, "url", "", "URL of the resume in the document store")
	cmd.Flags().StringVar(&req.JobID, "job", "", "Job ID (required)")
	cmd.Flags().StringVar(&req.CandidateID, "candidate", "", "Candidate ID (required)")
	cmd.Flags().StringVar(&required, "required", "", "Comma-separated required skills of the job")
	cmd.Flags().StringVar(&req.ApplicantName, "name", "", "Applicant account name, used when none is found in the resume")
	cmd.Flags().StringVar(&req.ApplicantEmail, "email", "", "Applicant account email, used when none is found in the resume")
	cmd.Flags().StringVar(&req.MediaType, "media-type", "", "Declared media type of the resume")
	cmd.Flags().BoolVar(&o.save, "save", false, "Save the screening to the database")
	cmd.Flags().BoolVar(&o.progress, "progress", false, "Print pipeline steps to stderr")

	_ = cmd.MarkFlagRequired("job")
	_ = cmd.MarkFlagRequired("candidate")
	cmd.MarkFlagsMutuallyExclusive("file", "url")
	cmd.MarkFlagsOneRequired("file", "url")
	return cmd
}
