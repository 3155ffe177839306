package commands

import (
	"context"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pagesift/pagesift/internal/logger"
	"github.com/pagesift/pagesift/internal/server"
	"github.com/pagesift/pagesift/pkg/pagesift"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the extraction HTTP API",
	Long: `Start the HTTP API.

The single endpoint is:

  GET /api/extract?url=<url>&output_format=<html|markdown|text>

plus /healthz and /version for operations.`,
	RunE: runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)

	flags := serveCmd.Flags()
	flags.String("host", "127.0.0.1", "listen host")
	flags.IntP("port", "p", 8080, "listen port")
	flags.Duration("timeout", 30*time.Second, "outbound fetch timeout")
	flags.String("user-agent", "", "outbound User-Agent header")

	_ = viper.BindPFlag("host", flags.Lookup("host"))
	_ = viper.BindPFlag("port", flags.Lookup("port"))
	_ = viper.BindPFlag("timeout", flags.Lookup("timeout"))
	_ = viper.BindPFlag("user_agent", flags.Lookup("user-agent"))
}

func runServe(cmd *cobra.Command, args []string) error {
	logger.Init(logger.Options{
		Debug: viper.GetBool("debug"),
		Quiet: viper.GetBool("quiet"),
		JSON:  viper.GetBool("log_json"),
	})

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	var opts []pagesift.Option
	if ua := viper.GetString("user_agent"); ua != "" {
		opts = append(opts, pagesift.WithUserAgent(ua))
	}
	if timeout := viper.GetDuration("timeout"); timeout > 0 {
		opts = append(opts, pagesift.WithTimeout(timeout))
	}

	cfg := server.DefaultConfig()
	cfg.Host = viper.GetString("host")
	cfg.Port = viper.GetInt("port")

	srv, err := server.New(cfg, pagesift.New(opts...))
	if err != nil {
		logError("%v", err)
		return err
	}

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.Start()
	}()

	select {
	case err := <-errCh:
		if err != nil {
			logError("%v", err)
		}
		return err
	case <-ctx.Done():
		logger.Info("shutting down")
		if err := srv.Shutdown(context.Background()); err != nil {
			logError("shutdown: %v", err)
			return err
		}
	}
	return nil
}
