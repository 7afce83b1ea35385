package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/fatih/color"
	"github.com/thomas-vilte/frontend-edit-agent/internal/commands/analyze"
	configcmd "github.com/thomas-vilte/frontend-edit-agent/internal/commands/config"
	"github.com/thomas-vilte/frontend-edit-agent/internal/commands/registry"
	"github.com/thomas-vilte/frontend-edit-agent/internal/commands/serve"
	cfg "github.com/thomas-vilte/frontend-edit-agent/internal/config"
	"github.com/thomas-vilte/frontend-edit-agent/internal/i18n"
	"github.com/thomas-vilte/frontend-edit-agent/internal/logger"
	"github.com/thomas-vilte/frontend-edit-agent/internal/services"
	"github.com/thomas-vilte/frontend-edit-agent/internal/ui"
	"github.com/thomas-vilte/frontend-edit-agent/internal/vcs"
	"github.com/thomas-vilte/frontend-edit-agent/internal/vcs/github"
	"github.com/thomas-vilte/frontend-edit-agent/internal/version"
	"github.com/urfave/cli/v3"
)

func main() {
	app, translations, err := initializeApp()
	if err != nil {
		log.Fatalf("Error starting the cli: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := app.Run(ctx, os.Args); err != nil {
		stop()
		ui.PrintAppError(os.Stderr, err, translations)
		os.Exit(1)
	}
}

func initializeApp() (*cli.Command, *i18n.Translations, error) {
	configPath := os.Getenv("FRONTEND_EDIT_AGENT_CONFIG")
	if configPath == "" {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return nil, nil, fmt.Errorf("could not resolve the user home directory: %w", err)
		}
		configPath = homeDir
	}

	cfgApp, err := cfg.LoadConfig(configPath)
	if err != nil {
		return nil, nil, err
	}

	logger.Initialize(logger.Options{
		Debug:   cfgApp.Debug,
		Verbose: true,
		Pretty:  !color.NoColor,
	})

	translations, err := i18n.NewTranslations(cfgApp.Language, os.Getenv("FRONTEND_EDIT_AGENT_LOCALES"))
	if err != nil {
		return nil, nil, fmt.Errorf("error loading translations: %w", err)
	}

	var lookup vcs.RepositoryLookup
	if cfgApp.GitHubToken != "" {
		lookup = github.NewGitHubClient(cfgApp.GitHubToken)
	}

	editService := services.NewEditService(
		services.NewRequestClassifier(),
		services.NewChangeSynthesizer(),
		services.NewPRDescriptorGenerator(services.WithPRNumber(cfgApp.PRNumber)),
		lookup,
	)

	registerCommand := registry.NewRegistry(cfgApp, translations)

	if err := registerCommand.Register("serve", serve.NewServeCommand(editService, nil)); err != nil {
		return nil, nil, err
	}
	if err := registerCommand.Register("analyze", analyze.NewAnalyzeCommand(editService, os.Stdout)); err != nil {
		return nil, nil, err
	}
	if err := registerCommand.Register("config", configcmd.NewConfigCommandFactory(os.Stdout)); err != nil {
		return nil, nil, err
	}

	return &cli.Command{
		Name:                  "frontend-edit-agent",
		Usage:                 translations.GetMessage("app.usage", 0, nil),
		Version:               version.FullVersion(),
		Description:           translations.GetMessage("app.description", 0, nil),
		Commands:              registerCommand.CreateCommands(),
		EnableShellCompletion: true,
	}, translations, nil
}
