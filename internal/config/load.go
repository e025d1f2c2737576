package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"time"

	"github.com/go-viper/mapstructure/v2"
	"github.com/goccy/go-json"
	"github.com/urfave/cli/v3"
	yamlv3 "go.yaml.in/yaml/v3"

	"github.com/lwmacct/251219-go-pkg-parser/pkg/envexp"
)

// options 配置加载选项。
type options struct {
	cmd         *cli.Command
	configPaths []string
	envPrefix   string
	noExpand    bool // 是否禁用配置文件的 ${...} 展开（默认启用）
}

// Option 配置加载选项函数。
type Option func(*options)

// WithCommand 绑定 CLI 命令，读取显式设置的 flags 以覆盖配置（最高优先级）。
func WithCommand(cmd *cli.Command) Option {
	return func(o *options) {
		o.cmd = cmd
	}
}

// WithConfigPaths 设置配置文件搜索路径，按顺序查找，命中首个文件即停止。
func WithConfigPaths(paths ...string) Option {
	return func(o *options) {
		o.configPaths = paths
	}
}

// WithEnvPrefix 启用环境变量前缀解析。
//
// key 中的 "." 和 "-" 转为 "_" 并大写，例如前缀 PARSER_ 时
// render.env-expand → PARSER_RENDER_ENV_EXPAND。
func WithEnvPrefix(prefix string) Option {
	return func(o *options) {
		o.envPrefix = prefix
	}
}

// WithoutExpansion 禁用配置文件的 ${...} 展开。
func WithoutExpansion() Option {
	return func(o *options) {
		o.noExpand = true
	}
}

// DefaultPaths 返回默认配置文件的搜索顺序，先命中的文件生效。
//
//  1. ./.parser.yaml
//  2. ~/.parser.yaml
//  3. /etc/parser/config.yaml
//  4. config.yaml
func DefaultPaths() []string {
	paths := []string{"." + AppName + ".yaml"}
	if home, err := os.UserHomeDir(); err == nil {
		paths = append(paths, filepath.Join(home, "."+AppName+".yaml"))
	}

	return append(paths, "/etc/"+AppName+"/config.yaml", "config.yaml")
}

// Load 读取配置并按优先级合并：默认值 → 配置文件 → 环境变量 → CLI flags。
//
// 配置 key 由 json tag 定义，YAML 与 JSON 共享同一套 key。
func Load[T any](defaultConfig T, opts ...Option) (*T, error) {
	o := &options{}
	for _, opt := range opts {
		opt(o)
	}
	if o.configPaths == nil {
		o.configPaths = DefaultPaths()
	}

	configMap := structToMap(defaultConfig)

	for _, path := range o.configPaths {
		content, err := os.ReadFile(path) //nolint:gosec // path is from trusted config
		if err != nil {
			continue
		}
		if !o.noExpand {
			expanded, err := envexp.Expand(string(content))
			if err != nil {
				return nil, fmt.Errorf("expand config %s: %w", path, err)
			}
			content = []byte(expanded)
		}

		fileMap, err := parseConfigBytes(path, content)
		if err != nil {
			return nil, fmt.Errorf("parse config file %s: %w", path, err)
		}
		mergeMaps(configMap, fileMap)
		slog.Debug("Loaded config from file", "path", path)

		break
	}

	keys := collectKeys(reflect.TypeOf(defaultConfig), "")

	if o.envPrefix != "" {
		replacer := strings.NewReplacer(".", "_", "-", "_")
		for path, typ := range keys {
			envKey := o.envPrefix + strings.ToUpper(replacer.Replace(path))
			if val, ok := os.LookupEnv(envKey); ok && val != "" {
				setByPath(configMap, path, envValue(val, typ))
				slog.Debug("Loaded env binding", "env", envKey, "path", path)
			}
		}
	}

	if o.cmd != nil {
		for path, typ := range keys {
			flag := strings.ReplaceAll(path, ".", "-")
			if !o.cmd.IsSet(flag) {
				continue
			}
			if val, ok := flagValue(o.cmd, flag, typ); ok {
				setByPath(configMap, path, val)
			}
		}
	}

	var cfg T
	if err := decodeConfigMap(configMap, &cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	return &cfg, nil
}

// MustLoad 调用 [Load] 并在失败时 panic，适合启动阶段。
func MustLoad[T any](defaultConfig T, opts ...Option) *T {
	cfg, err := Load(defaultConfig, opts...)
	if err != nil {
		panic(fmt.Sprintf("config: failed to load config: %v", err))
	}

	return cfg
}

// ═══════════════════════════════════════════════════════════════════════════
// 反射辅助
// ═══════════════════════════════════════════════════════════════════════════

var durationType = reflect.TypeFor[time.Duration]()

func tagName(field reflect.StructField) string {
	name, _, _ := strings.Cut(field.Tag.Get("json"), ",")
	if name == "-" {
		return ""
	}

	return name
}

func isNested(typ reflect.Type) bool {
	return typ.Kind() == reflect.Struct && typ != durationType
}

// collectKeys 收集叶子 key（如 render.open）及其类型。
func collectKeys(typ reflect.Type, prefix string) map[string]reflect.Type {
	keys := make(map[string]reflect.Type)
	if typ.Kind() != reflect.Struct {
		return keys
	}

	for i := range typ.NumField() {
		field := typ.Field(i)
		name := tagName(field)
		if name == "" || !field.IsExported() {
			continue
		}
		if prefix != "" {
			name = prefix + "." + name
		}
		if isNested(field.Type) {
			for k, v := range collectKeys(field.Type, name) {
				keys[k] = v
			}
			continue
		}
		keys[name] = field.Type
	}

	return keys
}

func structToMap(cfg any) map[string]any {
	val := reflect.ValueOf(cfg)
	out := make(map[string]any)
	if val.Kind() != reflect.Struct {
		return out
	}

	typ := val.Type()
	for i := range typ.NumField() {
		field := typ.Field(i)
		name := tagName(field)
		if name == "" || !field.IsExported() {
			continue
		}
		if isNested(field.Type) {
			out[name] = structToMap(val.Field(i).Interface())
			continue
		}
		out[name] = val.Field(i).Interface()
	}

	return out
}

// envValue 环境变量中的切片用逗号分隔。
func envValue(val string, typ reflect.Type) any {
	if typ.Kind() == reflect.Slice && typ.Elem().Kind() == reflect.String {
		parts := strings.Split(val, ",")
		for i := range parts {
			parts[i] = strings.TrimSpace(parts[i])
		}
		return parts
	}

	return val
}

// flagValue 按字段类型读取 CLI 值，不支持的类型返回 false。
func flagValue(cmd *cli.Command, flag string, typ reflect.Type) (any, bool) {
	if typ == durationType {
		return cmd.Duration(flag), true
	}

	switch typ.Kind() {
	case reflect.String:
		return cmd.String(flag), true
	case reflect.Bool:
		return cmd.Bool(flag), true
	case reflect.Int:
		return cmd.Int(flag), true
	case reflect.Slice:
		if typ.Elem().Kind() == reflect.String {
			return cmd.StringSlice(flag), true
		}
	}

	return nil, false
}

func parseConfigBytes(path string, content []byte) (map[string]any, error) {
	var raw any
	var err error
	if strings.EqualFold(filepath.Ext(path), ".json") {
		err = json.Unmarshal(content, &raw)
	} else {
		err = yamlv3.Unmarshal(content, &raw)
	}
	if err != nil {
		return nil, err
	}
	if raw == nil {
		return map[string]any{}, nil
	}

	configMap, ok := raw.(map[string]any)
	if !ok {
		return nil, errors.New("config root must be object")
	}

	return configMap, nil
}

func mergeMaps(dst, src map[string]any) {
	for key, value := range src {
		if valueMap, ok := value.(map[string]any); ok {
			if dstMap, ok := dst[key].(map[string]any); ok {
				mergeMaps(dstMap, valueMap)
				continue
			}
		}
		dst[key] = value
	}
}

func setByPath(dst map[string]any, path string, value any) {
	parts := strings.Split(path, ".")
	current := dst
	for _, part := range parts[:len(parts)-1] {
		next, ok := current[part].(map[string]any)
		if !ok {
			next = make(map[string]any)
			current[part] = next
		}
		current = next
	}
	current[parts[len(parts)-1]] = value
}

func decodeConfigMap(data map[string]any, out any) error {
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		DecodeHook: mapstructure.ComposeDecodeHookFunc(
			mapstructure.StringToTimeDurationHookFunc(),
			mapstructure.StringToSliceHookFunc(","),
		),
		Result:           out,
		WeaklyTypedInput: true,
		TagName:          "json",
	})
	if err != nil {
		return err
	}

	return decoder.Decode(data)
}
