package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/SanthoshkumarGudi/ATS-SW/internal/matching"
	"github.com/SanthoshkumarGudi/ATS-SW/internal/schemas"
)

func newScoreCmd(a *app) *cobra.Command {
	var skills, required string

	cmd := &cobra.Command{
		Use:     "score",
		Short:   "Score candidate skills against required skills",
		Example: `  ats_agent score --skills "react,nodejs" --required "React,Node.js,AWS"`,
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			result := matching.NewMatcher(a.cfg.Screening).Score(splitList(skills), splitList(required))
			if err := schemas.Validate(schemas.SkillMatch, result); err != nil {
				return fmt.Errorf("match result does not validate against schema: %w", err)
			}

			if a.jsonOut {
				return a.printJSON(cmd, result)
			}
			a.printer(cmd).PrintSkillMatch(&result)
			return nil
		},
	}

	cmd.Flags().StringVar(&skills, "skills", "", "Comma-separated candidate skills")
	cmd.Flags().StringVar(&required, "required", "", "Comma-separated required skills of the job")
	return cmd
}
