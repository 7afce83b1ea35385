package analyze

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"time"

	"github.com/fatih/color"
	cfg "github.com/thomas-vilte/frontend-edit-agent/internal/config"
	"github.com/thomas-vilte/frontend-edit-agent/internal/i18n"
	"github.com/thomas-vilte/frontend-edit-agent/internal/logger"
	"github.com/thomas-vilte/frontend-edit-agent/internal/models"
	"github.com/thomas-vilte/frontend-edit-agent/internal/vcs/github"
	"github.com/urfave/cli/v3"
)

// EditProcessor is a minimal interface for testing purposes
type EditProcessor interface {
	Process(ctx context.Context, req models.ProcessRequest) (models.ProcessResult, error)
}

type AnalyzeCommand struct {
	processor EditProcessor
	out       io.Writer
}

// NewAnalyzeCommand writes results to out. Failures are returned to the
// caller, which reports them once.
func NewAnalyzeCommand(processor EditProcessor, out io.Writer) *AnalyzeCommand {
	return &AnalyzeCommand{
		processor: processor,
		out:       out,
	}
}

func (c *AnalyzeCommand) CreateCommand(t *i18n.Translations, _ *cfg.Config) *cli.Command {
	return &cli.Command{
		Name:    "analyze",
		Aliases: []string{"a"},
		Usage:   t.GetMessage("analyze.usage", 0, nil),
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "request",
				Aliases: []string{"r"},
				Usage:   t.GetMessage("analyze.flag_request", 0, nil),
			},
			&cli.StringFlag{
				Name:    "repo-url",
				Aliases: []string{"u"},
				Usage:   t.GetMessage("analyze.flag_repo_url", 0, nil),
			},
			&cli.BoolFlag{
				Name:  "pretty",
				Usage: t.GetMessage("analyze.flag_pretty", 0, nil),
				Value: true,
			},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			log := logger.FromContext(ctx)
			start := time.Now()

			req := models.ProcessRequest{
				Request: cmd.String("request"),
				RepoURL: cmd.String("repo-url"),
			}

			result, err := c.processor.Process(ctx, req)
			if err != nil {
				log.Debug("analysis failed",
					"error", err,
					"duration_ms", time.Since(start).Milliseconds())
				return err
			}

			if repo, ok := github.ParseRepoURL(req.RepoURL); ok {
				header := t.GetMessage("analyze.result_header", 0, map[string]interface{}{"Repo": repo.FullName()})
				if _, err := fmt.Fprintln(c.out, color.CyanString(header)); err != nil {
					return err
				}
			}

			enc := json.NewEncoder(c.out)
			if cmd.Bool("pretty") {
				enc.SetIndent("", "  ")
			}
			return enc.Encode(result)
		},
	}
}
