package commands

import (
	"errors"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/rpupo63/portfolio-site-backend/config"
	"github.com/rpupo63/portfolio-site-backend/models"
)

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Create or update the content tables",
	RunE: func(cmd *cobra.Command, args []string) error {
		db, err := connect(cmd.Context(), config.New())
		if err != nil {
			return err
		}

		if err := db.Migrate(cmd.Context()); err != nil {
			return err
		}
		color.Green("Migration complete: %d tables", len(models.All()))
		return nil
	},
}

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Migrate and generate gorm/gen query helpers",
	RunE: func(cmd *cobra.Command, args []string) error {
		outPath, err := cmd.Flags().GetString("out")
		if err != nil {
			return err
		}

		db, err := connect(cmd.Context(), config.New())
		if err != nil {
			return err
		}

		if err := models.GenerateModels(db.GetDB(), outPath); err != nil {
			return err
		}
		color.Green("Query helpers written to %s", outPath)
		return nil
	},
}

var columnsCmd = &cobra.Command{
	Use:   "columns",
	Short: "Report table columns that no model field maps",
	Long: `Compare the live columns of every content table with the model structs and
list the columns the models do not account for.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		strict, err := cmd.Flags().GetBool("strict")
		if err != nil {
			return err
		}

		db, err := connect(cmd.Context(), config.New())
		if err != nil {
			return err
		}

		mismatches, err := models.GenerateColumnMismatchReport(db.GetDB())
		if err != nil {
			return err
		}
		if mismatches == 0 {
			color.Green("No mismatched columns")
			return nil
		}

		color.Yellow("%d mismatched columns", mismatches)
		if strict {
			return errMismatchedColumns
		}
		return nil
	},
}

var errMismatchedColumns = errors.New("tables have columns the models do not map")

func init() {
	generateCmd.Flags().String("out", "./query", "Output directory for generated query helpers")
	columnsCmd.Flags().Bool("strict", false, "Exit with an error when any column is unmapped")
}
