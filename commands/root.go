package commands

import (
	"context"
	"fmt"
	"strings"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/rpupo63/portfolio-site-backend/config"
	"github.com/rpupo63/portfolio-site-backend/database"
	"github.com/rpupo63/portfolio-site-backend/services"
)

var rootCmd = &cobra.Command{
	Use:   "portfolio",
	Short: "Portfolio site content backend",
	Long: `portfolio serves the projects, skills, experience and education sections of
the portfolio site from Postgres, falling back to bundled content when a
section is empty, and stores contact form messages.

Run without a subcommand to start the HTTP server.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return setLogLevel(config.GetString(config.New(), "LOG_LEVEL", "info"))
	},
	RunE: runServe,
}

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	addServeFlags(rootCmd)

	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(migrateCmd)
	rootCmd.AddCommand(generateCmd)
	rootCmd.AddCommand(columnsCmd)
	rootCmd.AddCommand(contentCmd)
}

func setLogLevel(raw string) error {
	level, err := zerolog.ParseLevel(strings.ToLower(strings.TrimSpace(raw)))
	if err != nil {
		return fmt.Errorf("invalid LOG_LEVEL %q: %w", raw, err)
	}
	if level == zerolog.NoLevel {
		level = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(level)
	return nil
}

// connect opens the store described by c and checks that it answers.
func connect(ctx context.Context, c map[string]string) (database.Database, error) {
	opts, err := database.OptionsFromConfig(c)
	if err != nil {
		return database.Database{}, err
	}

	log.Info().
		Str("host", opts.Host).
		Str("database", opts.Name).
		Int("replicas", len(opts.ReplicaHosts)).
		Msg("Connecting to Supabase database...")

	gormDB, err := database.Open(opts)
	if err != nil {
		return database.Database{}, err
	}

	db := database.New(gormDB)
	if err := db.Ping(ctx); err != nil {
		return database.Database{}, fmt.Errorf("error testing database connection: %w", err)
	}
	return db, nil
}

func storesFor(db database.Database) services.Stores {
	return services.Stores{
		Projects:        db.Projects(),
		Skills:          db.Skills(),
		Experience:      db.Experience(),
		Education:       db.Education(),
		ContactMessages: db.ContactMessages(),
	}
}
