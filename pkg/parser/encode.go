package parser

import (
	"bytes"

	"github.com/goccy/go-json"
	yamlv3 "go.yaml.in/yaml/v3"
)

// MarshalJSON 按插入顺序输出 JSON 对象。
func (m *Map[V]) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')

	var err error
	i := 0
	m.Range(func(k string, v V) bool {
		var key, val []byte
		if key, err = json.Marshal(k); err != nil {
			return false
		}
		if val, err = json.Marshal(v); err != nil {
			return false
		}
		if i > 0 {
			buf.WriteByte(',')
		}
		buf.Write(key)
		buf.WriteByte(':')
		buf.Write(val)
		i++

		return true
	})
	if err != nil {
		return nil, err
	}
	buf.WriteByte('}')

	return buf.Bytes(), nil
}

// MarshalYAML 按插入顺序输出 YAML 映射。
func (m *Map[V]) MarshalYAML() (any, error) {
	node := &yamlv3.Node{Kind: yamlv3.MappingNode}

	var err error
	m.Range(func(k string, v V) bool {
		val := &yamlv3.Node{}
		if err = val.Encode(v); err != nil {
			return false
		}
		node.Content = append(node.Content,
			&yamlv3.Node{Kind: yamlv3.ScalarNode, Tag: "!!str", Value: k},
			val,
		)

		return true
	})
	if err != nil {
		return nil, err
	}

	return node, nil
}
