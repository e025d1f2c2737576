package tokens

import (
	"context"
	"fmt"

	"github.com/urfave/cli/v3"

	"github.com/lwmacct/251219-go-pkg-parser/internal/command"
	"github.com/lwmacct/251219-go-pkg-parser/internal/input"
	"github.com/lwmacct/251219-go-pkg-parser/pkg/parser"
)

func action(_ context.Context, cmd *cli.Command) error {
	cfg, err := command.LoadConfig(cmd)
	if err != nil {
		return err
	}

	text, err := input.ReadTemplate(cmd.Args().First(), cmd.Root().Reader)
	if err != nil {
		return err
	}

	for _, key := range parser.Text(text).Tags(cfg.Render.Open, cfg.Render.Close).Tokens() {
		if _, err := fmt.Fprintln(cmd.Root().Writer, key); err != nil {
			return err
		}
	}

	return nil
}
