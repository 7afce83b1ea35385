package config

import (
	"context"
	"encoding/json"
	"fmt"
	"io"

	cfg "github.com/thomas-vilte/frontend-edit-agent/internal/config"
	"github.com/thomas-vilte/frontend-edit-agent/internal/i18n"
	"github.com/urfave/cli/v3"
)

type ConfigCommandFactory struct {
	out io.Writer
}

func NewConfigCommandFactory(out io.Writer) *ConfigCommandFactory {
	return &ConfigCommandFactory{out: out}
}

func (f *ConfigCommandFactory) CreateCommand(t *i18n.Translations, config *cfg.Config) *cli.Command {
	return &cli.Command{
		Name:  "config",
		Usage: t.GetMessage("config.usage", 0, nil),
		Commands: []*cli.Command{
			f.newShowCommand(t, config),
		},
	}
}

func (f *ConfigCommandFactory) newShowCommand(t *i18n.Translations, config *cfg.Config) *cli.Command {
	return &cli.Command{
		Name:  "show",
		Usage: t.GetMessage("config.show_usage", 0, nil),
		Action: func(ctx context.Context, cmd *cli.Command) error {
			if config.PathFile != "" {
				if _, err := fmt.Fprintln(f.out, t.GetMessage("config.path", 0, map[string]interface{}{"Path": config.PathFile})); err != nil {
					return err
				}
			}

			data, err := json.MarshalIndent(config.Masked(), "", "  ")
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(f.out, string(data))
			return err
		},
	}
}
