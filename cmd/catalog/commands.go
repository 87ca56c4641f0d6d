package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/justsurfingit/job-portal-search/internal/database"
	"github.com/justsurfingit/job-portal-search/internal/models"
)

func newMigrateCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Create or update the catalog table",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			db, err := opts.connect()
			if err != nil {
				return err
			}
			defer func() { _ = database.Close(db) }()

			fmt.Fprintln(cmd.OutOrStdout(), "✅ catalog table is up to date")
			return nil
		},
	}
}

func newSeedCmd(opts *options) *cobra.Command {
	var file string
	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Replace stored categories with the contents of a seed file",
		Long: `Load a TOML seed file (the embedded seed when --file is omitted) and
rewrite every category it lists. Categories absent from the file are cleared too.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			sets, err := loadSets(file)
			if err != nil {
				return err
			}
			db, err := opts.connect()
			if err != nil {
				return err
			}
			defer func() { _ = database.Close(db) }()

			n, err := database.NewStore(db).Seed(cmd.Context(), sets)
			if err != nil {
				return fmt.Errorf("failed to seed catalog: %w", err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "✅ seeded %d entries across %d categories\n", n, len(sets))
			return nil
		},
	}
	cmd.Flags().StringVarP(&file, "file", "f", "", "Path to a TOML seed file")
	return cmd
}

func newListCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "Show how many entries each category holds",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			db, err := opts.connect()
			if err != nil {
				return err
			}
			defer func() { _ = database.Close(db) }()

			counts, err := database.NewStore(db).Counts(cmd.Context())
			if err != nil {
				return err
			}
			total := int64(0)
			for _, n := range counts {
				total += n
			}
			return printCounts(cmd, counts, total)
		},
	}
}

func newCheckCmd() *cobra.Command {
	var file string
	cmd := &cobra.Command{
		Use:   "check",
		Short: "Validate a seed file without touching the database",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			sets, err := loadSets(file)
			if err != nil {
				return err
			}
			counts := make(map[models.Category]int64, len(sets))
			for c, set := range sets {
				counts[c] = int64(set.Len())
			}
			return printCounts(cmd, counts, int64(sets.Total()))
		},
	}
	cmd.Flags().StringVarP(&file, "file", "f", "", "Path to a TOML seed file")
	return cmd
}

// printCounts writes one row per category in display order.
func printCounts(cmd *cobra.Command, counts map[models.Category]int64, total int64) error {
	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "CATEGORY\tLABEL\tENTRIES")
	for _, c := range models.Categories() {
		fmt.Fprintf(w, "%s\t%s\t%d\n", c, c.Label(), counts[c])
	}
	fmt.Fprintf(w, "all\tAll\t%d\n", total)
	return w.Flush()
}
