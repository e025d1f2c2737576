package main

import (
	"context"
	"fmt"
	"os"

	"github.com/urfave/cli/v3"

	"github.com/lwmacct/251219-go-pkg-parser/internal/command/aliases"
	"github.com/lwmacct/251219-go-pkg-parser/internal/command/render"
	"github.com/lwmacct/251219-go-pkg-parser/internal/command/tokens"
	"github.com/lwmacct/251219-go-pkg-parser/internal/command/version"
)

func main() {
	app := &cli.Command{
		Name:    version.AppRawName,
		Usage:   "基于标签的文本占位符替换工具",
		Version: version.GetVersion(),
		Commands: []*cli.Command{
			version.Command,
			render.Command,
			tokens.Command,
			aliases.Command,
		},
	}

	if err := app.Run(context.Background(), os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
