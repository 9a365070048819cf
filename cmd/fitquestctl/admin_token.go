package main

import (
	"fmt"

	"github.com/2beens/fitquest/internal/auth"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var adminTokenCmd = &cobra.Command{
	Use:   "admin-token [token]",
	Short: "Create an admin token and the hash the service expects",
	Long: `Print a bcrypt hash for FITQUEST_ADMIN_TOKEN_HASH. Without an argument a
random token is generated and printed once; store it, it cannot be recovered
from the hash.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		out := cmd.OutOrStdout()
		faint := color.New(color.Faint)

		if len(args) == 1 {
			hash, err := auth.HashAdminToken(args[0])
			if err != nil {
				return err
			}
			fmt.Fprintf(out, "%s %s\n", faint.Sprint("FITQUEST_ADMIN_TOKEN_HASH="), hash)
			return nil
		}

		token, hash, err := auth.NewAdminToken()
		if err != nil {
			return err
		}
		color.New(color.FgYellow, color.Bold).Fprintf(out, "token: %s\n", token)
		fmt.Fprintf(out, "%s %s\n", faint.Sprint("FITQUEST_ADMIN_TOKEN_HASH="), hash)
		return nil
	},
}
