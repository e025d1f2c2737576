// Package version 提供版本信息命令。
package version

import (
	"context"
	"fmt"
	"runtime"

	"github.com/urfave/cli/v3"
)

// 通过 -ldflags "-X" 注入。
var (
	AppRawName = "parser"
	Version    = "dev"
	Commit     = "unknown"
)

// GetVersion 返回版本号。
func GetVersion() string {
	return Version
}

// Command 版本命令
var Command = &cli.Command{
	Name:  "version",
	Usage: "显示版本信息",
	Action: func(_ context.Context, cmd *cli.Command) error {
		_, err := fmt.Fprintf(cmd.Root().Writer, "%s %s (commit %s, %s)\n",
			AppRawName, Version, Commit, runtime.Version())

		return err
	},
}
