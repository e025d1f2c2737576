// Package input 负责读取模板、values 与 aliases 文件。
//
// values / aliases 支持 YAML 与 JSON，按扩展名选择解析器，并保留文件中的 key 顺序。
package input

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/goccy/go-json"
	yamlv3 "go.yaml.in/yaml/v3"

	"github.com/lwmacct/251219-go-pkg-parser/pkg/envexp"
	"github.com/lwmacct/251219-go-pkg-parser/pkg/parser"
)

// ErrRootNotObject 文件根节点不是对象。
var ErrRootNotObject = errors.New("root must be object")

// ReadTemplate 读取模板，path 为空或 "-" 时从 stdin 读取。
func ReadTemplate(path string, stdin io.Reader) (string, error) {
	const errCtx = "reading template"

	if path == "" || path == "-" {
		content, err := io.ReadAll(stdin)
		if err != nil {
			return "", fmt.Errorf("%s: reading stdin: %w", errCtx, err)
		}

		return string(content), nil
	}

	content, err := os.ReadFile(path) //nolint:gosec // path is from CLI flags
	if err != nil {
		return "", fmt.Errorf("%s: %w", errCtx, err)
	}

	return string(content), nil
}

// LoadValues 读取 values 文件。expand 为 true 时先执行 ${...} 环境变量展开。
func LoadValues(path string, expand bool) (*parser.Map[any], error) {
	content, err := readSource(path, expand)
	if err != nil {
		return nil, fmt.Errorf("loading values %s: %w", path, err)
	}

	values, err := DecodeValues(path, content)
	if err != nil {
		return nil, fmt.Errorf("loading values %s: %w", path, err)
	}

	return values, nil
}

// LoadAliases 读取 aliases 文件（别名 → 目标 key），目标必须是字符串。
func LoadAliases(path string, expand bool) (*parser.Map[string], error) {
	content, err := readSource(path, expand)
	if err != nil {
		return nil, fmt.Errorf("loading aliases %s: %w", path, err)
	}

	values, err := DecodeValues(path, content)
	if err != nil {
		return nil, fmt.Errorf("loading aliases %s: %w", path, err)
	}

	aliases := parser.NewMap[string]()
	var bad string
	values.Range(func(alias string, target any) bool {
		s, ok := target.(string)
		if !ok {
			bad = alias
			return false
		}
		aliases.Set(alias, s)

		return true
	})
	if bad != "" {
		return nil, fmt.Errorf("loading aliases %s: alias %q: target must be a string", path, bad)
	}

	return aliases, nil
}

// DecodeValues 按 path 的扩展名解析内容，.json 使用 JSON，其余按 YAML。
func DecodeValues(path string, content []byte) (*parser.Map[any], error) {
	var (
		root any
		err  error
	)
	if isJSONPath(path) {
		root, err = decodeJSON(content)
	} else {
		root, err = decodeYAML(content)
	}
	if err != nil {
		return nil, err
	}

	switch m := root.(type) {
	case nil:
		return parser.NewMap[any](), nil
	case *parser.Map[any]:
		return m, nil
	default:
		return nil, ErrRootNotObject
	}
}

// ParsePairs 解析 key=value 形式的参数。
func ParsePairs(pairs []string) (*parser.Map[any], error) {
	out := parser.NewMap[any]()
	for _, pair := range pairs {
		key, val, ok := strings.Cut(pair, "=")
		if !ok || key == "" {
			return nil, fmt.Errorf("parsing pairs: must be KEY=value, got %q", pair)
		}
		out.Set(key, val)
	}

	return out, nil
}

func readSource(path string, expand bool) ([]byte, error) {
	content, err := os.ReadFile(path) //nolint:gosec // path is from CLI flags
	if err != nil {
		return nil, err
	}
	if !expand {
		return content, nil
	}

	expanded, err := envexp.Expand(string(content))
	if err != nil {
		return nil, fmt.Errorf("expand env: %w", err)
	}

	return []byte(expanded), nil
}

func isJSONPath(path string) bool {
	return strings.EqualFold(filepath.Ext(path), ".json")
}

// ═══════════════════════════════════════════════════════════════════════════
// JSON
// ═══════════════════════════════════════════════════════════════════════════

func decodeJSON(content []byte) (any, error) {
	if len(bytes.TrimSpace(content)) == 0 {
		return nil, nil
	}

	dec := json.NewDecoder(bytes.NewReader(content))
	dec.UseNumber()

	return decodeJSONValue(dec)
}

// decodeJSONValue 逐 token 解码，对象转为有序映射，数字保留为 json.Number。
func decodeJSONValue(dec *json.Decoder) (any, error) {
	tok, err := dec.Token()
	if err != nil {
		return nil, err
	}

	delim, ok := tok.(json.Delim)
	if !ok {
		return tok, nil
	}

	switch delim {
	case '{':
		m := parser.NewMap[any]()
		for dec.More() {
			keyTok, err := dec.Token()
			if err != nil {
				return nil, err
			}
			key, ok := keyTok.(string)
			if !ok {
				return nil, fmt.Errorf("unexpected object key %v", keyTok)
			}
			val, err := decodeJSONValue(dec)
			if err != nil {
				return nil, err
			}
			m.Set(key, val)
		}
		if _, err := dec.Token(); err != nil {
			return nil, err
		}

		return m, nil
	case '[':
		list := []any{}
		for dec.More() {
			val, err := decodeJSONValue(dec)
			if err != nil {
				return nil, err
			}
			list = append(list, val)
		}
		if _, err := dec.Token(); err != nil {
			return nil, err
		}

		return list, nil
	default:
		return nil, fmt.Errorf("unexpected delimiter %v", delim)
	}
}

// ═══════════════════════════════════════════════════════════════════════════
// YAML
// ═══════════════════════════════════════════════════════════════════════════

func decodeYAML(content []byte) (any, error) {
	var doc yamlv3.Node
	if err := yamlv3.Unmarshal(content, &doc); err != nil {
		return nil, err
	}
	if doc.Kind == 0 {
		return nil, nil
	}

	return yamlNodeValue(&doc)
}

// yamlNodeValue 将 yaml.Node 转为值，映射节点转为有序映射。
func yamlNodeValue(node *yamlv3.Node) (any, error) {
	switch node.Kind {
	case yamlv3.DocumentNode:
		if len(node.Content) == 0 {
			return nil, nil
		}
		return yamlNodeValue(node.Content[0])
	case yamlv3.AliasNode:
		return yamlNodeValue(node.Alias)
	case yamlv3.MappingNode:
		m := parser.NewMap[any]()
		for i := 0; i+1 < len(node.Content); i += 2 {
			val, err := yamlNodeValue(node.Content[i+1])
			if err != nil {
				return nil, err
			}
			m.Set(node.Content[i].Value, val)
		}

		return m, nil
	case yamlv3.SequenceNode:
		list := make([]any, 0, len(node.Content))
		for _, item := range node.Content {
			val, err := yamlNodeValue(item)
			if err != nil {
				return nil, err
			}
			list = append(list, val)
		}

		return list, nil
	default:
		// 时间戳保留原文，与 JSON 输入一致
		if node.ShortTag() == "!!timestamp" {
			return node.Value, nil
		}
		var val any
		if err := node.Decode(&val); err != nil {
			return nil, err
		}

		return val, nil
	}
}
