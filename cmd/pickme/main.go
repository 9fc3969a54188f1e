package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/rasu25115/pickme/internal/interfaces/cli/migrate"
	"github.com/rasu25115/pickme/internal/interfaces/cli/server"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "pickme",
		Short: "Pickme admin backend",
		Long:  "Admin backend for the data reselling platform: API catalog, provider keys and rate plans",
	}

	rootCmd.AddCommand(server.NewCommand())
	rootCmd.AddCommand(migrate.NewCommand())

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
