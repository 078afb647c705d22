package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/inmobiliaria-ica/api-go/config"
	"github.com/inmobiliaria-ica/api-go/seed"
)

func main() {
	_ = godotenv.Load()

	rootCmd := &cobra.Command{
		Use:   "seedctl",
		Short: "Reference data and fixture loader",
	}

	rootCmd.AddCommand(initDataCmd(), initVenezuelaCmd(), importCasasCmd())

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func initDataCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "init-data",
		Short: "Load base states, roles, property types, features and the admin user",
		RunE: func(cmd *cobra.Command, args []string) error {
			return seed.InitData(config.InitDB())
		},
	}
}

func initVenezuelaCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "init-venezuela",
		Short: "Load the full Venezuela geography",
		RunE: func(cmd *cobra.Command, args []string) error {
			return seed.InitVenezuela(config.InitDB())
		},
	}
}

func importCasasCmd() *cobra.Command {
	var file string

	cmd := &cobra.Command{
		Use:   "import-casas",
		Short: "Import properties from a casas.json fixture",
		RunE: func(cmd *cobra.Command, args []string) error {
			_, err := seed.ImportCasas(config.InitDB(), file)
			return err
		},
	}
	cmd.Flags().StringVar(&file, "file", "casas.json", "path to the fixture file")
	return cmd
}
