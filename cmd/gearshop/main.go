package main

import (
	"os"

	"github.com/spf13/cobra"

	"gearshop/internal/interfaces/cli/migrate"
	"gearshop/internal/interfaces/cli/server"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "gearshop",
		Short: "Gearshop - vehicle repair shop API",
		Long:  `Gearshop is a vehicle repair shop service with built-in HTTP server and migration tools.`,
	}

	rootCmd.AddCommand(
		server.NewCommand(),
		migrate.NewCommand(),
	)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
