package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/osse101/NutriFind_Go/internal/config"
	"github.com/osse101/NutriFind_Go/internal/identity"
)

var tokenOpts struct {
	subject string
	email   string
	name    string
	ttl     time.Duration
}

var tokenCmd = &cobra.Command{
	Use:   "token",
	Short: "Issue a sign-in credential for local testing",
	Long: `Issue a credential signed with IDENTITY_SIGNING_KEY. Post it to
/api/v1/session/credential to sign in without an external identity provider.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		verifier := identity.NewVerifier(
			envOr(config.EnvIdentitySigningKey, config.DefaultIdentitySigningKey),
			envOr(config.EnvIdentityIssuer, config.DefaultIdentityIssuer),
		)
		token, err := verifier.Issue(tokenOpts.subject, tokenOpts.email, tokenOpts.name, tokenOpts.ttl)
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(cmd.OutOrStdout(), token)
		return err
	},
}

func init() {
	tokenCmd.Flags().StringVar(&tokenOpts.subject, "subject", "", "user id carried as the token subject")
	tokenCmd.Flags().StringVar(&tokenOpts.email, "email", "", "email address")
	tokenCmd.Flags().StringVar(&tokenOpts.name, "name", "", "display name")
	tokenCmd.Flags().DurationVar(&tokenOpts.ttl, "ttl", identity.DefaultTokenTTL, "token lifetime")
	_ = tokenCmd.MarkFlagRequired("subject")
}
