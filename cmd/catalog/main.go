// Command catalog manages the Postgres copy of the search catalog.
package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"gorm.io/gorm"

	"github.com/justsurfingit/job-portal-search/internal/catalog"
	"github.com/justsurfingit/job-portal-search/internal/database"
	"github.com/justsurfingit/job-portal-search/internal/models"
)

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

type options struct {
	databaseURL string
	verbose     bool
}

func newRootCmd() *cobra.Command {
	opts := &options{}
	root := &cobra.Command{
		Use:           "catalog",
		Short:         "Manage the search catalog",
		Long:          "Create the catalog table and manage the entries stored in it.",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVar(&opts.databaseURL, "database-url", os.Getenv("DATABASE_URL"), "Postgres connection URL (defaults to $DATABASE_URL)")
	root.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "Log progress")

	root.AddCommand(newMigrateCmd(opts), newSeedCmd(opts), newListCmd(opts), newCheckCmd())
	return root
}

func (o *options) logger() *slog.Logger {
	level := slog.LevelWarn
	if o.verbose {
		level = slog.LevelInfo
	}
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
}

func (o *options) connect() (*gorm.DB, error) {
	return database.Connect(o.databaseURL, o.logger())
}

// loadSets reads a seed file, or the embedded seed when path is empty.
func loadSets(path string) (models.Sets, error) {
	if path == "" {
		return catalog.LoadSeed()
	}
	return catalog.LoadSeedFile(path)
}
