package parser_test

import (
	"testing"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	yamlv3 "go.yaml.in/yaml/v3"

	"github.com/lwmacct/251219-go-pkg-parser/pkg/parser"
)

func TestMap_MarshalJSONKeepsOrder(t *testing.T) {
	m := parser.NewMap[any]().
		Set("z", "last").
		Set("a", 1).
		Set("nested", parser.NewMap[any]().Set("y", true).Set("b", nil))

	out, err := json.Marshal(m)
	require.NoError(t, err)
	assert.Equal(t, `{"z":"last","a":1,"nested":{"y":true,"b":null}}`, string(out))

	empty, err := json.Marshal(parser.NewMap[string]())
	require.NoError(t, err)
	assert.Equal(t, `{}`, string(empty))
}

func TestMap_MarshalJSONUnsupportedValue(t *testing.T) {
	m := parser.NewMap[any]().Set("ch", make(chan int))

	_, err := json.Marshal(m)
	require.Error(t, err)
}

func TestMap_MarshalYAMLKeepsOrder(t *testing.T) {
	m := parser.NewMap[any]().
		Set("voornaam", "Foo").
		Set("achternaam", "bar").
		Set("user", parser.NewMap[any]().Set("email", "example@example.com"))

	out, err := yamlv3.Marshal(m)
	require.NoError(t, err)
	assert.Equal(t, "voornaam: Foo\nachternaam: bar\nuser:\n    email: example@example.com\n", string(out))
}
