// Package tokens 提供列出模板 token 的命令。
package tokens

import (
	"slices"

	"github.com/urfave/cli/v3"

	"github.com/lwmacct/251219-go-pkg-parser/internal/command"
)

// New 创建 tokens 命令。
func New() *cli.Command {
	return &cli.Command{
		Name:      "tokens",
		Usage:     "列出模板中出现的 token key",
		ArgsUsage: "[template]",
		Action:    action,
		Flags:     slices.Concat(command.TagFlags(), command.ConfigFlags()),
	}
}

// Command tokens 命令
var Command = New()
