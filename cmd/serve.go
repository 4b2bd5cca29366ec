package cmd

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/exec"
	"os/signal"
	"runtime"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"linkforge/internal/preview"
)

var (
	serveHost  string
	servePort  int
	serveWatch bool
	serveOpen  bool
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Preview the page locally with live reload",
	Long: `Serves the rendered page on a local port. Every request re-reads the
profile document, and with --watch connected browsers reload
automatically when it changes on disk.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}

		host := cfg.Serve.Host
		if cmd.Flags().Changed("host") {
			host = serveHost
		}
		port := cfg.Serve.Port
		if cmd.Flags().Changed("port") {
			port = servePort
		}
		watch := cfg.Serve.Watch
		if cmd.Flags().Changed("watch") {
			watch = serveWatch
		}
		open := cfg.Serve.Open
		if cmd.Flags().Changed("open") {
			open = serveOpen
		}

		srv := preview.New(preview.Config{
			Host:        host,
			Port:        port,
			ProfilePath: cfg.ProfilePath,
			Watch:       watch,
		})

		if open {
			go openBrowser(fmt.Sprintf("http://%s:%d", host, port))
		}

		stop := make(chan os.Signal, 1)
		signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

		errCh := make(chan error, 1)
		go func() { errCh <- srv.Start() }()

		select {
		case err := <-errCh:
			if errors.Is(err, http.ErrServerClosed) {
				return nil
			}
			return err
		case <-stop:
			fmt.Println("\nShutting down")
			ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			return srv.Shutdown(ctx)
		}
	},
}

// openBrowser points the default browser at the preview. Best effort;
// failures are not worth surfacing.
func openBrowser(url string) {
	var cmd *exec.Cmd
	switch runtime.GOOS {
	case "darwin":
		cmd = exec.Command("open", url)
	case "windows":
		cmd = exec.Command("rundll32", "url.dll,FileProtocolHandler", url)
	default:
		cmd = exec.Command("xdg-open", url)
	}
	_ = cmd.Start()
}

func init() {
	serveCmd.Flags().StringVar(&serveHost, "host", "127.0.0.1", "host to bind")
	serveCmd.Flags().IntVarP(&servePort, "port", "p", 4173, "port to listen on")
	serveCmd.Flags().BoolVar(&serveWatch, "watch", true, "reload browsers when the profile changes")
	serveCmd.Flags().BoolVar(&serveOpen, "open", false, "open the page in the default browser")
	rootCmd.AddCommand(serveCmd)
}
