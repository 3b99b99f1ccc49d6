package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/bnema/vidqa/internal/service"
)

var tokenCmd = &cobra.Command{
	Use:   "token",
	Short: "Generate an API token and the hash to configure",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		token, err := service.GenerateToken()
		if err != nil {
			return err
		}
		hash, err := service.HashToken(token)
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "token:          %s\n", token)
		fmt.Fprintf(out, "API_TOKEN_HASH=%s\n", hash)
		return nil
	},
}
