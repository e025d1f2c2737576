package config_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/urfave/cli/v3"

	"github.com/lwmacct/251219-go-pkg-parser/internal/config"
)

func TestLoad_DefaultsWhenNoFile(t *testing.T) {
	cfg, err := config.Load(config.DefaultConfig(),
		config.WithConfigPaths(filepath.Join(t.TempDir(), "nonexistent.yaml")),
	)
	require.NoError(t, err)
	assert.Equal(t, config.DefaultConfig(), *cfg)
}

func TestLoad_FileEnvAndFlags(t *testing.T) {
	t.Setenv("CFG_TEST_CLOSE", "}}")
	t.Setenv("PARSERTEST_RENDER_EXCLUDE", "token, secret")
	t.Setenv("PARSERTEST_RENDER_STRICT", "true")

	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
render:
  open: "{{"
  close: "${CFG_TEST_CLOSE}"
  values: values.yaml
log:
  level: debug
`), 0o600))

	var cfg *config.Config
	cmd := &cli.Command{
		Name: "test",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "render-values"},
			&cli.StringFlag{Name: "render-aliases"},
		},
		Action: func(_ context.Context, cmd *cli.Command) error {
			var err error
			cfg, err = config.Load(config.DefaultConfig(),
				config.WithConfigPaths(filepath.Join(dir, "missing.yaml"), path),
				config.WithEnvPrefix("PARSERTEST_"),
				config.WithCommand(cmd),
			)
			return err
		},
	}
	require.NoError(t, cmd.Run(context.Background(), []string{"test", "--render-values", "override.json"}))

	require.NotNil(t, cfg)
	assert.Equal(t, "{{", cfg.Render.Open)
	assert.Equal(t, "}}", cfg.Render.Close)
	assert.Equal(t, "override.json", cfg.Render.Values, "flags have the highest priority")
	assert.Empty(t, cfg.Render.Aliases, "unset flags must not override")
	assert.Equal(t, []string{"token", "secret"}, cfg.Render.Exclude)
	assert.True(t, cfg.Render.Strict)
	assert.True(t, cfg.Render.EnvExpand, "defaults survive when not overridden")
	assert.Equal(t, "debug", cfg.Log.Level)
}

func TestLoad_WithoutExpansion(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"render": {"open": "${OPEN}"}}`), 0o600))

	cfg, err := config.Load(config.DefaultConfig(),
		config.WithConfigPaths(path),
		config.WithoutExpansion(),
	)
	require.NoError(t, err)
	assert.Equal(t, "${OPEN}", cfg.Render.Open)
	assert.Equal(t, "]", cfg.Render.Close)
}

func TestLoad_Errors(t *testing.T) {
	dir := t.TempDir()
	bad := filepath.Join(dir, "bad.yaml")
	require.NoError(t, os.WriteFile(bad, []byte("- a\n- b\n"), 0o600))

	_, err := config.Load(config.DefaultConfig(), config.WithConfigPaths(bad))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "config root must be object")

	required := filepath.Join(dir, "required.yaml")
	require.NoError(t, os.WriteFile(required, []byte("render:\n  open: ${CFG_TEST_MISSING:?open tag required}\n"), 0o600))

	_, err = config.Load(config.DefaultConfig(), config.WithConfigPaths(required))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "open tag required")

	assert.Panics(t, func() {
		config.MustLoad(config.DefaultConfig(), config.WithConfigPaths(bad))
	})
}

func TestDefaultPaths(t *testing.T) {
	paths := config.DefaultPaths()
	require.NotEmpty(t, paths)
	assert.Equal(t, ".parser.yaml", paths[0])
	assert.Equal(t, "config.yaml", paths[len(paths)-1])
}
