package cmd

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/websh-dev/websh/core/logger"
	"github.com/websh-dev/websh/core/server"
)

var servePort int

// serveCmd represents the serve command
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the shell over a JSON HTTP API on a local port.",
	Args:  cobra.ExactArgs(0),
	RunE: func(cmd *cobra.Command, args []string) error {
		cmd.SilenceUsage = true
		log.Println("Initializing server...")

		configuration, err := loadConfig()
		if err != nil {
			return err
		}

		port := configuration.HTTP.Port
		if cmd.Flags().Changed("port") {
			port = servePort
		}

		eventLog, closer, err := openEventLog(configuration)
		if err != nil {
			return err
		}
		defer closer.Close()

		engine := newEngine(configuration, eventLog)
		session := engine.Session()
		eventLog.LogSessionStart(logger.SessionStart{
			User:     session.User(),
			Hostname: session.Hostname(),
		})

		srv := server.New(server.Params{
			Engine:            engine,
			Log:               eventLog,
			RequestsPerSecond: configuration.HTTP.RequestsPerSecond,
			Burst:             configuration.HTTP.Burst,
		})

		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		addr := fmt.Sprintf(":%d", port)
		log.Printf("Serving on %s", addr)
		if err := srv.ListenAndServe(ctx, addr); err != nil {
			return err
		}
		log.Print("Server exited")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
	serveCmd.Flags().IntVar(&servePort, "port", 5000, "port to listen on")
}
