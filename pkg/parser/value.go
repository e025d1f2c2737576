package parser

import (
	"encoding/json"
	"strconv"
	"strings"
)

// PathSep 嵌套 key 的路径分隔符，例如 user.name.first_name。
const PathSep = "."

// Lazy 延迟计算的值，在替换到对应 key 时才会调用，且每次解析最多调用一次。
//
// 返回值可以是标量、嵌套映射或另一个 Lazy。
type Lazy func() any

// valueKind 值的分类结果。
type valueKind int

const (
	kindInvalid valueKind = iota
	kindScalar
	kindNested
)

// force 展开 Lazy 值，直到得到非延迟值。
func force(val any) any {
	for {
		switch fn := val.(type) {
		case Lazy:
			val = fn()
		case func() any:
			val = fn()
		case func() string:
			return fn()
		default:
			return val
		}
	}
}

// classify 判断已展开的值是否可替换，可替换时返回其文本形式。
//
// 布尔值按 true → "1"、false → "" 渲染。
func classify(val any) (valueKind, string) {
	switch v := val.(type) {
	case string:
		return kindScalar, v
	case bool:
		if v {
			return kindScalar, "1"
		}
		return kindScalar, ""
	case int:
		return kindScalar, strconv.FormatInt(int64(v), 10)
	case int8:
		return kindScalar, strconv.FormatInt(int64(v), 10)
	case int16:
		return kindScalar, strconv.FormatInt(int64(v), 10)
	case int32:
		return kindScalar, strconv.FormatInt(int64(v), 10)
	case int64:
		return kindScalar, strconv.FormatInt(v, 10)
	case uint:
		return kindScalar, strconv.FormatUint(uint64(v), 10)
	case uint8:
		return kindScalar, strconv.FormatUint(uint64(v), 10)
	case uint16:
		return kindScalar, strconv.FormatUint(uint64(v), 10)
	case uint32:
		return kindScalar, strconv.FormatUint(uint64(v), 10)
	case uint64:
		return kindScalar, strconv.FormatUint(v, 10)
	case float32:
		return kindScalar, strconv.FormatFloat(float64(v), 'f', -1, 32)
	case float64:
		return kindScalar, strconv.FormatFloat(v, 'f', -1, 64)
	case json.Number:
		return kindScalar, v.String()
	case map[string]any, *Map[any]:
		return kindNested, ""
	default:
		return kindInvalid, ""
	}
}

// child 在嵌套映射中查找一级 key，不调用 Lazy。
func child(container any, key string) (any, bool) {
	switch m := container.(type) {
	case map[string]any:
		v, ok := m[key]
		return v, ok
	case *Map[any]:
		return m.Get(key)
	default:
		return nil, false
	}
}

// resolve 按点号路径在 values 中查找原始值，并返回命中值所在的路径。
//
// 先尝试整个 key 的直接匹配，再按 PathSep 逐级下钻。
// 路径中间遇到 Lazy 或非映射值时视为不存在。
// 直接匹配时路径只有一段（即使 key 含点号），下钻时每级一段。
func resolve(values *Map[any], key string) (any, []string, bool) {
	if val, ok := values.Get(key); ok {
		return val, []string{key}, true
	}
	if !strings.Contains(key, PathSep) {
		return nil, nil, false
	}

	segs := strings.Split(key, PathSep)
	var current any = values
	for _, seg := range segs {
		next, ok := child(current, seg)
		if !ok {
			return nil, nil, false
		}
		current = next
	}

	return current, segs, true
}

// pathKey 将路径编码为 memo 的 key，区分 "a.b" 单段与 a → b 两段。
func pathKey(path []string) string {
	return strings.Join(path, "\x00")
}

// rangeNested 按顺序遍历嵌套映射的子项。普通 map 按 key 排序遍历。
func rangeNested(val any, fn func(key string, val any)) {
	switch m := val.(type) {
	case *Map[any]:
		m.Range(func(k string, v any) bool {
			fn(k, v)
			return true
		})
	case map[string]any:
		MapOf(m).Range(func(k string, v any) bool {
			fn(k, v)
			return true
		})
	}
}
