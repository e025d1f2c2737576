package render

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/urfave/cli/v3"

	"github.com/lwmacct/251219-go-pkg-parser/internal/command"
	"github.com/lwmacct/251219-go-pkg-parser/internal/input"
)

func action(_ context.Context, cmd *cli.Command) error {
	// 加载配置：默认值 → 配置文件 → 环境变量 → CLI flags
	cfg, err := command.LoadConfig(cmd)
	if err != nil {
		return err
	}

	text, err := input.ReadTemplate(cmd.String("template"), cmd.Root().Reader)
	if err != nil {
		return err
	}

	p, err := command.NewParser(cmd, cfg, text)
	if err != nil {
		return err
	}

	out, left, err := p.ParseUnresolved()
	if err != nil {
		return fmt.Errorf("render: %w", err)
	}
	if len(left) > 0 {
		slog.Debug("Unresolved tokens", "tokens", left)
		if cfg.Render.Strict {
			return fmt.Errorf("render: unresolved tokens: %s", strings.Join(left, ", "))
		}
	}

	if path := cmd.String("output"); path != "" {
		if err := os.WriteFile(path, []byte(out), 0o644); err != nil { //nolint:gosec // output is not sensitive
			return fmt.Errorf("render: write output: %w", err)
		}
		slog.Info("Rendered template", "output", path, "bytes", len(out))

		return nil
	}

	_, err = fmt.Fprint(cmd.Root().Writer, out)

	return err
}
