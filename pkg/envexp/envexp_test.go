package envexp_test

import (
	"testing"

	"github.com/lwmacct/251219-go-pkg-parser/pkg/envexp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExpand(t *testing.T) {
	t.Setenv("ENVEXP_SET", "set-value")
	t.Setenv("ENVEXP_EMPTY", "")

	tests := []struct {
		name     string
		template string
		want     string
		wantErr  bool
		errMsg   string
	}{
		{name: "no dollar", template: "plain [name]", want: "plain [name]"},
		{name: "basic expansion", template: "prefix-${ENVEXP_SET}-suffix", want: "prefix-set-value-suffix"},
		{name: "missing expands to empty", template: "x=${ENVEXP_MISSING}", want: "x="},
		{name: "fallback with colon treats empty as unset", template: "${ENVEXP_EMPTY:-fallback}", want: "fallback"},
		{name: "fallback without colon keeps empty", template: "x=${ENVEXP_EMPTY-fallback}", want: "x="},
		{name: "alternate with colon", template: "${ENVEXP_SET:+alt}", want: "alt"},
		{name: "alternate on missing", template: "x=${ENVEXP_MISSING+alt}", want: "x="},
		{name: "nested fallback", template: "${ENVEXP_MISSING:-${ENVEXP_SET}}", want: "set-value"},
		{name: "literal dollar", template: "$$${ENVEXP_SET}", want: "$set-value"},
		{name: "bare dollar kept", template: "cost $5 and $", want: "cost $5 and $"},
		{name: "unknown expression kept", template: "${1abc} ${A:=b}", want: "${1abc} ${A:=b}"},
		{name: "unterminated kept", template: "x ${ENVEXP_SET", want: "x ${ENVEXP_SET"},
		{name: "required var triggers error", template: "${ENVEXP_MISSING:?missing}", wantErr: true, errMsg: "missing"},
		{name: "required default message", template: "${ENVEXP_MISSING?}", wantErr: true, errMsg: "parameter null or not set"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := envexp.Expand(tt.template)
			if tt.wantErr {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.errMsg)

				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestExpander_CustomLookup(t *testing.T) {
	e := &envexp.Expander{Lookup: func(name string) (string, bool) {
		if name == "NAME" {
			return "Foobar", true
		}
		return "", false
	}}

	got, err := e.Expand("name: ${NAME}, city: ${CITY:-Amsterdam}")
	require.NoError(t, err)
	assert.Equal(t, "name: Foobar, city: Amsterdam", got)
}
