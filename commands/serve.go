package commands

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/rpupo63/portfolio-site-backend/api"
	"github.com/rpupo63/portfolio-site-backend/config"
	"github.com/rpupo63/portfolio-site-backend/services"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP server",
	Long:  `Connect to the store, mount every content section and serve it over HTTP until interrupted.`,
	RunE:  runServe,
}

func init() {
	addServeFlags(serveCmd)
}

func addServeFlags(cmd *cobra.Command) {
	cmd.Flags().Duration("shutdown-timeout", 30*time.Second, "How long to wait for in-flight requests on shutdown")
}

func runServe(cmd *cobra.Command, args []string) error {
	shutdownTimeout, err := cmd.Flags().GetDuration("shutdown-timeout")
	if err != nil {
		return err
	}

	c := config.New()
	db, err := connect(cmd.Context(), c)
	if err != nil {
		return err
	}

	stores := storesFor(db)
	content := services.NewContent(stores)
	content.Mount(context.Background())
	defer content.Close()

	deps := api.Dependencies{
		Content:         content,
		Admin:           services.NewAdmin(stores, content),
		ContactMessages: stores.ContactMessages,
	}
	if notifier := services.NewResendNotifierFromConfig(c); notifier != nil {
		deps.Notifier = notifier
	} else {
		log.Info().Msg("Contact notifications disabled: Resend is not configured")
	}

	server, err := api.NewServer(c, deps)
	if err != nil {
		return fmt.Errorf("error initializing server: %w", err)
	}

	// Buffered so the server goroutine can still report after shutdown.
	errChannel := make(chan error, 2)

	go server.Start(errChannel)

	// Listen for interrupt signals to gracefully shutdown the server
	go listenToInterrupt(errChannel)

	fatalErr := <-errChannel
	log.Info().Msgf("Closing server: %v", fatalErr)

	server.ShutdownGracefully(shutdownTimeout)
	return nil
}

// listenToInterrupt waits for SIGINT or SIGTERM and then sends an error to the error channel.
func listenToInterrupt(errChannel chan<- error) {
	c := make(chan os.Signal, 1)
	signal.Notify(c, syscall.SIGINT, syscall.SIGTERM)
	errChannel <- fmt.Errorf("%s", <-c)
}
