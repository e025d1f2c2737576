// Package command 提供各子命令共享的 flags 与构建逻辑。
package command

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/urfave/cli/v3"

	"github.com/lwmacct/251219-go-pkg-parser/internal/config"
	"github.com/lwmacct/251219-go-pkg-parser/internal/input"
	"github.com/lwmacct/251219-go-pkg-parser/pkg/parser"
)

// Defaults 为默认配置的单一来源。
var Defaults = config.DefaultConfig()

// ConfigFlags 返回配置文件与日志相关的 flags。
func ConfigFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:    "config",
			Aliases: []string{"c"},
			Usage:   "配置文件路径（默认搜索 .parser.yaml 等）",
		},
		&cli.StringFlag{
			Name:  "log-level",
			Value: Defaults.Log.Level,
			Usage: "日志级别 (debug/info/warn/error)",
		},
	}
}

// TagFlags 返回起止标签 flags。
func TagFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:  "render-open",
			Value: Defaults.Render.Open,
			Usage: "起始标签",
		},
		&cli.StringFlag{
			Name:  "render-close",
			Value: Defaults.Render.Close,
			Usage: "结束标签",
		},
	}
}

// ValueFlags 返回 values / aliases / exclude 相关 flags。
func ValueFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:    "render-values",
			Aliases: []string{"f"},
			Usage:   "values 文件 (YAML/JSON)",
		},
		&cli.StringSliceFlag{
			Name:  "set",
			Usage: "追加 value，格式 key=value，可重复",
		},
		&cli.StringFlag{
			Name:    "render-aliases",
			Aliases: []string{"a"},
			Usage:   "aliases 文件 (YAML/JSON)，别名 → 目标 key",
		},
		&cli.StringSliceFlag{
			Name:  "alias",
			Usage: "追加别名，格式 alias=target，可重复",
		},
		&cli.StringSliceFlag{
			Name:    "render-exclude",
			Aliases: []string{"x"},
			Usage:   "不参与替换的 key，可重复",
		},
		&cli.BoolFlag{
			Name:  "render-env-expand",
			Value: Defaults.Render.EnvExpand,
			Usage: "解析 values/aliases 前展开 ${VAR}",
		},
	}
}

// LoadConfig 按 默认值 → 配置文件 → 环境变量 → CLI flags 加载配置，并初始化日志。
func LoadConfig(cmd *cli.Command) (*config.Config, error) {
	opts := []config.Option{
		config.WithEnvPrefix(config.EnvPrefix),
		config.WithCommand(cmd),
	}
	if path := cmd.String("config"); path != "" {
		opts = append(opts, config.WithConfigPaths(path))
	}

	cfg, err := config.Load(config.DefaultConfig(), opts...)
	if err != nil {
		return nil, err
	}
	if err := SetupLogging(cfg.Log.Level, cmd.Root().ErrWriter); err != nil {
		return nil, err
	}

	return cfg, nil
}

// SetupLogging 设置默认 slog handler。
func SetupLogging(level string, w io.Writer) error {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(level)); err != nil {
		return fmt.Errorf("invalid log level %q: %w", level, err)
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: lvl})))

	return nil
}

// NewParser 根据配置与 flags 构建 Parser。
//
// values 文件先加载，--set 追加或覆盖；aliases 同理。
func NewParser(cmd *cli.Command, cfg *config.Config, text string) (*parser.Parser, error) {
	values := parser.NewMap[any]()
	if cfg.Render.Values != "" {
		loaded, err := input.LoadValues(cfg.Render.Values, cfg.Render.EnvExpand)
		if err != nil {
			return nil, err
		}
		values = loaded
	}
	pairs, err := input.ParsePairs(cmd.StringSlice("set"))
	if err != nil {
		return nil, err
	}
	pairs.Range(func(k string, v any) bool {
		values.Set(k, v)
		return true
	})

	aliases := parser.NewMap[string]()
	if cfg.Render.Aliases != "" {
		loaded, err := input.LoadAliases(cfg.Render.Aliases, cfg.Render.EnvExpand)
		if err != nil {
			return nil, err
		}
		aliases = loaded
	}
	extra, err := input.ParsePairs(cmd.StringSlice("alias"))
	if err != nil {
		return nil, err
	}
	extra.Range(func(k string, v any) bool {
		aliases.Set(k, v.(string))
		return true
	})

	slog.Debug("Built parser",
		"values", values.Len(),
		"aliases", aliases.Len(),
		"exclude", cfg.Render.Exclude,
		"open", cfg.Render.Open,
		"close", cfg.Render.Close,
	)

	return parser.Text(text).
		OrderedValues(values).
		OrderedAliases(aliases).
		Exclude(cfg.Render.Exclude...).
		Tags(cfg.Render.Open, cfg.Render.Close), nil
}
