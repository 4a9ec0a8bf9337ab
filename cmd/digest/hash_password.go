package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vfg2006/weekly-rank-digest/internal/usecases/authenticating"
)

func hashPasswordCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "hash-password <senha>",
		Short: "Gera o hash bcrypt para LOGIN_PASSWORD_HASH",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			hash, err := authenticating.HashPassword(args[0])
			if err != nil {
				return &exitError{code: 1, err: err}
			}

			fmt.Fprintf(os.Stdout, "LOGIN_PASSWORD_HASH=%s\n", hash)
			fmt.Fprintln(os.Stdout)
			fmt.Fprintf(os.Stdout, "export LOGIN_PASSWORD_HASH=%q\n", hash)
			return nil
		},
	}
}
