// Package config 提供应用配置管理。
//
// 配置加载优先级 (从低到高)：
//  1. 默认值 - DefaultConfig() 函数中定义
//  2. 配置文件 - 见 [DefaultPaths]，命中首个文件即停止
//  3. 环境变量 - 前缀 PARSER_，如 PARSER_RENDER_OPEN
//  4. CLI flags - 仅用户显式设置的 flag，如 --render-open
package config

// AppName 应用名称，用于生成配置文件路径。
const AppName = "parser"

// EnvPrefix 环境变量前缀。
const EnvPrefix = "PARSER_"

// Config 应用配置。
type Config struct {
	Render RenderConfig `json:"render" desc:"渲染配置"`
	Log    LogConfig    `json:"log" desc:"日志配置"`
}

// RenderConfig 渲染配置。
type RenderConfig struct {
	Open      string   `json:"open" desc:"起始标签"`
	Close     string   `json:"close" desc:"结束标签"`
	Values    string   `json:"values" desc:"values 文件路径 (YAML/JSON)"`
	Aliases   string   `json:"aliases" desc:"aliases 文件路径 (YAML/JSON)"`
	Exclude   []string `json:"exclude" desc:"不参与替换的 key"`
	EnvExpand bool     `json:"env-expand" desc:"解析 values/aliases 前展开 ${VAR}"`
	Strict    bool     `json:"strict" desc:"存在未替换的 token 时返回错误"`
}

// LogConfig 日志配置。
type LogConfig struct {
	Level string `json:"level" desc:"日志级别 (debug/info/warn/error)"`
}

// DefaultConfig 返回默认配置。
// 注意：internal/command/command.go 中的 Defaults 变量引用此函数以实现单一配置来源。
func DefaultConfig() Config {
	return Config{
		Render: RenderConfig{
			Open:      "[",
			Close:     "]",
			EnvExpand: true,
		},
		Log: LogConfig{
			Level: "info",
		},
	}
}
