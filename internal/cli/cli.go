//-------------------------------------------------------------------------
//
// FMCG Warehouse Generator
//
// Copyright (c) 2025 - 2026, FMCG Labs
// This software is released under The PostgreSQL License
//
//-------------------------------------------------------------------------

// Package cli implements the command-line interface for warehousegen.
package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/fmcglabs/warehousegen/internal/config"
	"github.com/fmcglabs/warehousegen/internal/logging"
	"github.com/fmcglabs/warehousegen/internal/store"
	"github.com/fmcglabs/warehousegen/pkg/version"
)

var (
	// Global flags
	cfgFile    string
	connection string
	dataset    string
	logLevel   string

	// Global config
	cfg *config.Config

	rootCmd = &cobra.Command{
		Use:   "warehousegen",
		Short: "Synthetic FMCG dimensional warehouse generator",
		Long: `warehousegen populates an analytical PostgreSQL schema with a synthetic
FMCG (fast-moving consumer goods) star schema: dimensions for products,
employees, retailers and campaigns, plus sales, wages, inventory and cost
facts.

A 'seed' run performs the initial historical backfill; 'append' runs add
one day of incremental facts and can be scheduled daily. Appends are safe
to retry: rows whose keys already exist are filtered before loading.`,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return initConfig()
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}
)

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	// Global flags
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "",
		"config file (default: ./warehousegen.yaml)")
	rootCmd.PersistentFlags().StringVar(&connection, "connection", "",
		"PostgreSQL connection string")
	rootCmd.PersistentFlags().StringVar(&dataset, "dataset", "",
		"destination schema that holds the generated tables")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "",
		"log level (debug, info, warn, error)")

	// Add subcommands
	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(seedCmd)
	rootCmd.AddCommand(appendCmd)
	rootCmd.AddCommand(tablesCmd)
}

func initConfig() error {
	var err error
	cfg, err = config.Load(cfgFile)
	if err != nil {
		return err
	}

	// Override with CLI flags
	if connection != "" {
		cfg.Connection = connection
	}
	if dataset != "" {
		cfg.Dataset = dataset
	}
	if logLevel != "" {
		cfg.LogLevel = logLevel
	}

	// Reinitialize logger with config
	logging.Init(logging.Config{
		Level:  cfg.LogLevel,
		Pretty: true,
	})

	return nil
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		cmd.Println(version.Info())
	},
}

var tablesCmd = &cobra.Command{
	Use:   "tables",
	Short: "List the destination tables",
	Long: `List every table the generator maintains in the destination dataset,
in load order (dimensions first).`,
	Run: func(cmd *cobra.Command, args []string) {
		cmd.Println("Destination tables:")
		cmd.Println()
		for _, table := range store.Tables() {
			schema, _ := store.SchemaFor(table)
			cmd.Println(fmt.Sprintf("  %-22s %3d columns, key %s",
				table, len(schema), schema[0].Name))
		}
	},
}
