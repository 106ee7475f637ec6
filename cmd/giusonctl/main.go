package main

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"time"

	"github.com/anz-davar/giuson/internal/config"
	"github.com/anz-davar/giuson/internal/database"
	"github.com/fatih/color"
	_ "github.com/lib/pq"
	"github.com/spf13/cobra"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var (
	dbConnString string
	verbose      bool
)

func init() {
	rootCmd.PersistentFlags().StringVarP(&dbConnString, "dsn", "d", "", "Postgres connection string (overrides the configured database)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output")

	rootCmd.AddCommand(migrateCmd)
	rootCmd.AddCommand(createHRCmd)
	rootCmd.AddCommand(jobsCmd)
	rootCmd.AddCommand(exportCmd)
}

var rootCmd = &cobra.Command{
	Use:           "giusonctl",
	Short:         "giusonctl administers a giuson deployment",
	Long:          `giusonctl migrates the database, bootstraps HR accounts and inspects jobs and applications.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Create or update the database schema",
	RunE: func(cmd *cobra.Command, args []string) error {
		db, err := openDatabase()
		if err != nil {
			return err
		}
		defer database.Close(db)

		ctx, cancel := context.WithTimeout(cmd.Context(), 2*time.Minute)
		defer cancel()
		if err := database.Migrate(ctx, db); err != nil {
			return err
		}

		color.Green("Schema is up to date")
		return nil
	},
}

// openDatabase connects through lib/pq when --dsn is given and through the
// configured driver otherwise.
func openDatabase() (*gorm.DB, error) {
	level := logger.Silent
	if verbose {
		level = logger.Info
	}

	if dbConnString != "" {
		sqlDB, err := sql.Open("postgres", dbConnString)
		if err != nil {
			return nil, fmt.Errorf("opening database: %w", err)
		}
		return database.FromSQL(sqlDB, level)
	}

	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}
	return database.Open(cfg, level)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		color.New(color.FgRed).Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
