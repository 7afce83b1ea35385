package registry

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	cfg "github.com/thomas-vilte/frontend-edit-agent/internal/config"
	"github.com/thomas-vilte/frontend-edit-agent/internal/i18n"
	"github.com/urfave/cli/v3"
)

type stubFactory struct {
	name string
}

func (f stubFactory) CreateCommand(_ *i18n.Translations, _ *cfg.Config) *cli.Command {
	return &cli.Command{Name: f.name}
}

func setupRegistryTest(t *testing.T) *Registry {
	translations, err := i18n.NewTranslations("en", "")
	require.NoError(t, err)
	return NewRegistry(cfg.Default(), translations)
}

func TestRegistry(t *testing.T) {
	t.Run("should create commands in registration order", func(t *testing.T) {
		r := setupRegistryTest(t)

		require.NoError(t, r.Register("serve", stubFactory{"serve"}))
		require.NoError(t, r.Register("analyze", stubFactory{"analyze"}))
		require.NoError(t, r.Register("config", stubFactory{"config"}))

		commands := r.CreateCommands()

		require.Len(t, commands, 3)
		assert.Equal(t, "serve", commands[0].Name)
		assert.Equal(t, "analyze", commands[1].Name)
		assert.Equal(t, "config", commands[2].Name)
	})

	t.Run("should reject duplicate names", func(t *testing.T) {
		r := setupRegistryTest(t)
		require.NoError(t, r.Register("serve", stubFactory{"serve"}))

		err := r.Register("serve", stubFactory{"serve"})

		require.Error(t, err)
		assert.Equal(t, "Command 'serve' is already registered", err.Error())
	})
}
