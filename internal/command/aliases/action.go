package aliases

import (
	"context"
	"fmt"

	"github.com/goccy/go-json"
	"github.com/urfave/cli/v3"
	yamlv3 "go.yaml.in/yaml/v3"

	"github.com/lwmacct/251219-go-pkg-parser/internal/command"
)

func action(_ context.Context, cmd *cli.Command) error {
	cfg, err := command.LoadConfig(cmd)
	if err != nil {
		return err
	}

	p, err := command.NewParser(cmd, cfg, "")
	if err != nil {
		return err
	}
	mapped := p.MapAliases()

	var out []byte
	switch format := cmd.String("format"); format {
	case "json":
		out, err = json.MarshalIndent(mapped, "", "  ")
		out = append(out, '\n')
	case "yaml", "yml":
		out, err = yamlv3.Marshal(mapped)
	default:
		return fmt.Errorf("aliases: unsupported format %q", format)
	}
	if err != nil {
		return fmt.Errorf("aliases: encode: %w", err)
	}

	_, err = cmd.Root().Writer.Write(out)

	return err
}
