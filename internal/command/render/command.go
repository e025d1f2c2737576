// Package render 提供模板渲染命令。
package render

import (
	"slices"

	"github.com/urfave/cli/v3"

	"github.com/lwmacct/251219-go-pkg-parser/internal/command"
)

// New 创建 render 命令。
func New() *cli.Command {
	flags := []cli.Flag{
		&cli.StringFlag{
			Name:    "template",
			Aliases: []string{"t"},
			Usage:   "模板文件，为空或 - 时读取 stdin",
		},
		&cli.StringFlag{
			Name:    "output",
			Aliases: []string{"o"},
			Usage:   "输出文件，为空时写到 stdout",
		},
		&cli.BoolFlag{
			Name:  "render-strict",
			Value: command.Defaults.Render.Strict,
			Usage: "存在未替换的 token 时返回错误",
		},
	}

	return &cli.Command{
		Name:   "render",
		Usage:  "替换模板中的 token",
		Action: action,
		Flags: slices.Concat(
			flags,
			command.TagFlags(),
			command.ValueFlags(),
			command.ConfigFlags(),
		),
	}
}

// Command 渲染命令
var Command = New()
