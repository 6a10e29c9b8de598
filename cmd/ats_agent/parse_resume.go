package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/SanthoshkumarGudi/ATS-SW/internal/ingestion"
	"github.com/SanthoshkumarGudi/ATS-SW/internal/parsing"
	"github.com/SanthoshkumarGudi/ATS-SW/internal/schemas"
	"github.com/SanthoshkumarGudi/ATS-SW/internal/types"
)

// parseResumeOutput is the JSON shape of parse-resume.
type parseResumeOutput struct {
	Facts    types.CandidateFacts `json:"parsed_data"`
	Document *ingestion.Metadata  `json:"document"`
}

func newParseResumeCmd(a *app) *cobra.Command {
	var mediaType string

	cmd := &cobra.Command{
		Use:   "parse-resume <file>",
		Short: "Extract candidate facts from a resume file",
		Long:  "Extract the text layer of a PDF resume and derive name, email, phone, location and skills.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := args[0]
			doc, err := readDocument(path, mediaType)
			if err != nil {
				return err
			}

			text, meta, err := ingestion.ExtractTextWithMetadata(*doc, path)
			if err != nil {
				return fmt.Errorf("failed to extract text from %s: %w", path, err)
			}
			a.log.Debug("extracted resume text",
				zap.String("file", path),
				zap.Int("pages", meta.Pages),
				zap.Int("lines", len(text.Lines)))

			facts := parsing.NewExtractor(a.cfg.Screening).ExtractFacts(text)
			if err := schemas.Validate(schemas.CandidateFacts, facts); err != nil {
				return fmt.Errorf("parsed facts do not validate against schema: %w", err)
			}

			if a.jsonOut {
				return a.printJSON(cmd, parseResumeOutput{Facts: facts, Document: meta})
			}
			a.printer(cmd).PrintCandidateFacts(&facts)
			return nil
		},
	}

	cmd.Flags().StringVar(&mediaType, "media-type", "", "Declared media type (detected from the file when empty)")
	return cmd
}
