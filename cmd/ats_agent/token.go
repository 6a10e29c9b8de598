package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/SanthoshkumarGudi/ATS-SW/internal/config"
	"github.com/SanthoshkumarGudi/ATS-SW/internal/server"
)

// tokenOutput is the JSON shape of the token command.
type tokenOutput struct {
	Token     string    `json:"token"`
	ClientID  string    `json:"client_id"`
	ExpiresAt time.Time `json:"expires_at"`
}

func newTokenCmd(a *app) *cobra.Command {
	var clientID string

	cmd := &cobra.Command{
		Use:   "token",
		Short: "Issue an API bearer token for a client application",
		Long:  "Issue a JWT signed with JWT_SECRET that a client application presents to the REST API.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			jwtConfig, err := config.NewJWTConfig()
			if err != nil {
				return fmt.Errorf("failed to create JWT config: %w", err)
			}

			issuedAt := time.Now()
			token, err := server.NewJWTService(jwtConfig).GenerateToken(clientID)
			if err != nil {
				return err
			}

			if a.jsonOut {
				return a.printJSON(cmd, tokenOutput{
					Token:     token,
					ClientID:  clientID,
					ExpiresAt: issuedAt.Add(time.Duration(jwtConfig.ExpirationHours) * time.Hour).UTC().Truncate(time.Second),
				})
			}
			_, _ = fmt.Fprintln(cmd.OutOrStdout(), token)
			return nil
		},
	}

	cmd.Flags().StringVar(&clientID, "client", "", "Client application ID (required)")
	_ = cmd.MarkFlagRequired("client")
	return cmd
}
