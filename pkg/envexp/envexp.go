package envexp

import (
	"fmt"
	"os"
	"strings"
)

// Expander 对文本执行 ${...} 展开。
//
// Lookup 为空时使用 os.LookupEnv。
type Expander struct {
	Lookup func(name string) (string, bool)
}

// Expand 使用环境变量展开 text，等价于 (&Expander{}).Expand(text)。
func Expand(text string) (string, error) {
	return (&Expander{}).Expand(text)
}

// Expand 展开 text 中的 ${...} 表达式。
//
// 仅在必填校验 (:? / ?) 失败时返回 error，无法识别的表达式原样保留。
func (e *Expander) Expand(text string) (string, error) {
	if !strings.Contains(text, "$") {
		return text, nil
	}

	var buf strings.Builder
	buf.Grow(len(text))

	rest := text
	for {
		i := strings.IndexByte(rest, '$')
		if i < 0 || i == len(rest)-1 {
			buf.WriteString(rest)
			break
		}
		buf.WriteString(rest[:i])

		switch rest[i+1] {
		case '$':
			buf.WriteByte('$')
			rest = rest[i+2:]
			continue
		case '{':
		default:
			buf.WriteByte('$')
			rest = rest[i+1:]
			continue
		}

		end := closingBrace(rest, i+2)
		if end < 0 {
			buf.WriteString(rest[i:])
			break
		}

		expanded, ok, err := e.expression(rest[i+2 : end])
		if err != nil {
			return "", err
		}
		if ok {
			buf.WriteString(expanded)
		} else {
			buf.WriteString(rest[i : end+1])
		}
		rest = rest[end+1:]
	}

	return buf.String(), nil
}

func (e *Expander) lookup(name string) (string, bool) {
	if e.Lookup != nil {
		return e.Lookup(name)
	}

	return os.LookupEnv(name)
}

// expression 处理花括号内的表达式，ok 为 false 表示无法识别。
func (e *Expander) expression(expr string) (string, bool, error) {
	name, op, word := splitExpression(expr)
	if name == "" {
		return "", false, nil
	}

	val, set := e.lookup(name)
	empty := !set || val == ""

	switch op {
	case "":
		return val, true, nil
	case ":-", "-":
		if (op == ":-" && empty) || (op == "-" && !set) {
			out, err := e.Expand(word)
			return out, err == nil, err
		}
		return val, true, nil
	case ":+", "+":
		if (op == ":+" && !empty) || (op == "+" && set) {
			out, err := e.Expand(word)
			return out, err == nil, err
		}
		return "", true, nil
	case ":?", "?":
		if (op == ":?" && empty) || (op == "?" && !set) {
			if word == "" {
				word = "parameter null or not set"
			}
			return "", false, fmt.Errorf("envexp: %s: %s", name, word)
		}
		return val, true, nil
	}

	return "", false, nil
}

// splitExpression 拆分 NAME[op word]，NAME 非法时返回空字符串。
func splitExpression(expr string) (name, op, word string) {
	i := 0
	for i < len(expr) && isNameChar(expr[i], i == 0) {
		i++
	}
	if i == 0 {
		return "", "", ""
	}

	name, rest := expr[:i], expr[i:]
	switch {
	case rest == "":
		return name, "", ""
	case len(rest) >= 2 && rest[0] == ':' && strings.ContainsRune("-+?", rune(rest[1])):
		return name, rest[:2], rest[2:]
	case strings.ContainsRune("-+?", rune(rest[0])):
		return name, rest[:1], rest[1:]
	}

	return "", "", ""
}

func isNameChar(ch byte, first bool) bool {
	if ch == '_' || (ch >= 'A' && ch <= 'Z') || (ch >= 'a' && ch <= 'z') {
		return true
	}

	return !first && ch >= '0' && ch <= '9'
}

// closingBrace 从 start 开始查找与 "${" 匹配的 "}"，支持嵌套。
func closingBrace(text string, start int) int {
	depth := 0
	for i := start; i < len(text); i++ {
		switch {
		case text[i] == '$' && i+1 < len(text) && text[i+1] == '{':
			depth++
			i++
		case text[i] == '}' && depth == 0:
			return i
		case text[i] == '}':
			depth--
		}
	}

	return -1
}
