package parser

import "sort"

// Map 保留插入顺序的字符串键映射。
//
// 替换顺序与 Lazy 值的调用顺序都由迭代顺序决定，因此不能直接使用 Go 的 map。
// 对已存在的 key 调用 Set 会覆盖值，但保留原有位置。
type Map[V any] struct {
	keys  []string
	items map[string]V
}

// NewMap 创建空的有序映射。
func NewMap[V any]() *Map[V] {
	return &Map[V]{items: make(map[string]V)}
}

// MapOf 将普通 map 转为有序映射，key 按字典序排列以保证结果确定。
func MapOf[V any](m map[string]V) *Map[V] {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	out := &Map[V]{keys: keys, items: make(map[string]V, len(m))}
	for _, k := range keys {
		out.items[k] = m[k]
	}

	return out
}

// Set 写入 key，返回自身以便链式调用。
func (m *Map[V]) Set(key string, val V) *Map[V] {
	if m.items == nil {
		m.items = make(map[string]V)
	}
	if _, ok := m.items[key]; !ok {
		m.keys = append(m.keys, key)
	}
	m.items[key] = val

	return m
}

// Get 读取 key 对应的值。
func (m *Map[V]) Get(key string) (V, bool) {
	if m == nil {
		var zero V
		return zero, false
	}
	val, ok := m.items[key]

	return val, ok
}

// Has 判断 key 是否存在。
func (m *Map[V]) Has(key string) bool {
	_, ok := m.Get(key)
	return ok
}

// Len 返回条目数量。
func (m *Map[V]) Len() int {
	if m == nil {
		return 0
	}

	return len(m.keys)
}

// Keys 按插入顺序返回 key 的副本。
func (m *Map[V]) Keys() []string {
	if m == nil {
		return nil
	}

	return append([]string(nil), m.keys...)
}

// Range 按插入顺序遍历，fn 返回 false 时停止。
func (m *Map[V]) Range(fn func(key string, val V) bool) {
	if m == nil {
		return
	}
	for _, k := range m.keys {
		if !fn(k, m.items[k]) {
			return
		}
	}
}

// Clone 返回浅拷贝。
func (m *Map[V]) Clone() *Map[V] {
	out := NewMap[V]()
	m.Range(func(k string, v V) bool {
		out.Set(k, v)
		return true
	})

	return out
}

// ToMap 转为普通 map（丢失顺序）。
func (m *Map[V]) ToMap() map[string]V {
	out := make(map[string]V, m.Len())
	m.Range(func(k string, v V) bool {
		out[k] = v
		return true
	})

	return out
}
