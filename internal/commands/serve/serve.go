package serve

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"strconv"
	"time"

	cfg "github.com/thomas-vilte/frontend-edit-agent/internal/config"
	"github.com/thomas-vilte/frontend-edit-agent/internal/i18n"
	"github.com/thomas-vilte/frontend-edit-agent/internal/logger"
	"github.com/thomas-vilte/frontend-edit-agent/internal/server"
	"github.com/urfave/cli/v3"
)

const shutdownTimeout = 10 * time.Second

// Runner serves srv until ctx is done.
type Runner func(ctx context.Context, srv *http.Server) error

type ServeCommand struct {
	processor server.EditProcessor
	run       Runner
}

func NewServeCommand(processor server.EditProcessor, run Runner) *ServeCommand {
	if run == nil {
		run = ListenAndServe
	}
	return &ServeCommand{
		processor: processor,
		run:       run,
	}
}

func (c *ServeCommand) CreateCommand(t *i18n.Translations, config *cfg.Config) *cli.Command {
	return &cli.Command{
		Name:    "serve",
		Aliases: []string{"s"},
		Usage:   t.GetMessage("serve.usage", 0, nil),
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "host",
				Usage: t.GetMessage("serve.flag_host", 0, nil),
				Value: config.Host,
			},
			&cli.IntFlag{
				Name:    "port",
				Aliases: []string{"p"},
				Usage:   t.GetMessage("serve.flag_port", 0, nil),
				Value:   int64(config.Port),
			},
			&cli.StringFlag{
				Name:  "static-dir",
				Usage: t.GetMessage("serve.flag_static_dir", 0, nil),
				Value: config.StaticDir,
			},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			log := logger.FromContext(ctx)

			port := int(cmd.Int("port"))
			if port <= 0 || port > 65535 {
				return fmt.Errorf("invalid port %d", port)
			}
			addr := net.JoinHostPort(cmd.String("host"), strconv.Itoa(port))

			handler := server.NewServer(c.processor, t, server.Options{
				StaticDir:      cmd.String("static-dir"),
				RequestTimeout: time.Duration(config.RequestTimeoutSeconds) * time.Second,
				AllowedOrigins: config.CORSAllowedOrigins,
				Logger:         log,
			})

			srv := &http.Server{
				Addr:              addr,
				Handler:           handler,
				ReadHeaderTimeout: 10 * time.Second,
			}

			log.Info(t.GetMessage("serve.starting", 0, map[string]interface{}{"Addr": addr}),
				"static_dir", cmd.String("static-dir"),
				"language", config.Language)
			if config.GitHubToken != "" {
				log.Info(t.GetMessage("serve.lookup_enabled", 0, nil))
			}

			return c.run(ctx, srv)
		},
	}
}

// ListenAndServe runs srv and shuts it down gracefully once ctx is cancelled.
func ListenAndServe(ctx context.Context, srv *http.Server) error {
	errCh := make(chan error, 1)
	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	logger.Info(ctx, "shutting down server")
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("error shutting down server: %w", err)
	}
	return <-errCh
}
