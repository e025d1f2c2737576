package render_test

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/urfave/cli/v3"

	"github.com/lwmacct/251219-go-pkg-parser/internal/command/render"
)

func run(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()

	var out bytes.Buffer
	app := &cli.Command{
		Name:      "parser",
		Reader:    strings.NewReader(stdin),
		Writer:    &out,
		ErrWriter: &bytes.Buffer{},
		Commands:  []*cli.Command{render.New()},
	}
	err := app.Run(context.Background(), append([]string{"parser", "render", "--config", "none.yaml"}, args...))

	return out.String(), err
}

func TestRender_Stdin(t *testing.T) {
	dir := t.TempDir()
	values := filepath.Join(dir, "values.yaml")
	require.NoError(t, os.WriteFile(values, []byte("first_name: Foo\nlast_name: bar\ntoken: '123456'\n"), 0o600))
	aliases := filepath.Join(dir, "aliases.json")
	require.NoError(t, os.WriteFile(aliases, []byte(`{"voornaam": "first_name", "token_alias": "token"}`), 0o600))

	out, err := run(t, "[first_name] [last_name] = [voornaam] [token] [token_alias] [extra]",
		"-f", values,
		"-a", aliases,
		"-x", "token",
		"--set", "extra=yes",
		"--alias", "achternaam=last_name",
	)
	require.NoError(t, err)
	assert.Equal(t, "Foo bar = Foo [token] [token_alias] yes", out)
}

func TestRender_CustomTagsAndOutputFile(t *testing.T) {
	dir := t.TempDir()
	tpl := filepath.Join(dir, "tpl.txt")
	require.NoError(t, os.WriteFile(tpl, []byte("Name is: %name}"), 0o600))
	dst := filepath.Join(dir, "out.txt")

	out, err := run(t, "", "-t", tpl, "-o", dst, "--render-open", "%", "--render-close", "}", "--set", "name=Foobar")
	require.NoError(t, err)
	assert.Empty(t, out)

	content, err := os.ReadFile(dst)
	require.NoError(t, err)
	assert.Equal(t, "Name is: Foobar", string(content))
}

func TestRender_Strict(t *testing.T) {
	out, err := run(t, "[name] [missing]", "--set", "name=Foo")
	require.NoError(t, err)
	assert.Equal(t, "Foo [missing]", out)

	_, err = run(t, "[name] [missing]", "--set", "name=Foo", "--render-strict")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unresolved tokens: missing")
}

func TestRender_Errors(t *testing.T) {
	_, err := run(t, "[a]", "--set", "novalue")
	require.Error(t, err)

	_, err = run(t, "[a]", "-f", filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "loading values")
}
