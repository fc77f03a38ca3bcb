package cmd

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/exec"
	"os/signal"
	"runtime"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/arumugaprakash-t/blogs/internal/server"
	"github.com/arumugaprakash-t/blogs/internal/site"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Build the site and serve it locally with live reload",
	Long:  `Builds the site, serves it on a local port, and rebuilds whenever the content or static directories change, reloading any open browser tabs.`,
	RunE:  runServe,
}

func init() {
	serveCmd.Flags().Int("port", 0, "port to listen on (overrides config)")
	serveCmd.Flags().Bool("watch", true, "rebuild when content changes")
	serveCmd.Flags().Bool("open", false, "open the browser automatically")
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	if port, _ := cmd.Flags().GetInt("port"); port != 0 {
		cfg.Server.Port = port
	}
	watch, _ := cmd.Flags().GetBool("watch")
	openFlag, _ := cmd.Flags().GetBool("open")

	gen := site.New(cfg)
	gen.LiveReload = watch

	rebuild := func() error {
		_, err := gen.Generate()
		return err
	}
	if err := rebuild(); err != nil {
		return fmt.Errorf("building site: %w", err)
	}

	srv := server.New(cfg)

	if watch {
		watcher, err := server.NewWatcher(server.Watched{
			Dirs:    []string{cfg.ContentDir, cfg.StaticDir},
			Rebuild: rebuild,
			Hub:     srv.LiveReloadHub(),
		})
		if err != nil {
			return fmt.Errorf("starting watcher: %w", err)
		}
		defer watcher.Stop()
		go watcher.Run()
	}

	// Graceful shutdown.
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go func() {
		<-ctx.Done()
		fmt.Fprintln(os.Stderr, "\nShutting down...")
		srv.Shutdown(context.Background())
	}()

	url := fmt.Sprintf("http://localhost:%d", cfg.Server.Port)
	fmt.Printf("Serving at %s — press Ctrl+C to stop\n", url)
	if openFlag {
		go openBrowser(url)
	}

	if err := srv.Start(); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}

// openBrowser opens the given URL in the default browser.
func openBrowser(url string) {
	var cmd *exec.Cmd
	switch runtime.GOOS {
	case "windows":
		cmd = exec.Command("cmd", "/c", "start", url)
	case "darwin":
		cmd = exec.Command("open", url)
	default:
		cmd = exec.Command("xdg-open", url)
	}
	_ = cmd.Start()
}
