// Package aliases 提供别名解析命令。
package aliases

import (
	"slices"

	"github.com/urfave/cli/v3"

	"github.com/lwmacct/251219-go-pkg-parser/internal/command"
)

// New 创建 aliases 命令。
func New() *cli.Command {
	return &cli.Command{
		Name:   "aliases",
		Usage:  "输出解析后的别名 (别名 → 值)",
		Action: action,
		Flags: slices.Concat(
			[]cli.Flag{
				&cli.StringFlag{
					Name:  "format",
					Value: "json",
					Usage: "输出格式 (json/yaml)",
				},
			},
			command.ValueFlags(),
			command.ConfigFlags(),
		),
	}
}

// Command aliases 命令
var Command = New()
