package output

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPrint_Compact(t *testing.T) {
	var buf bytes.Buffer
	err := Print(&buf, []byte("{\n  \"id\": 42,\n  \"name\": \"demo\"\n}"), false)
	require.NoError(t, err)
	assert.Equal(t, `{"id":42,"name":"demo"}`+"\n", buf.String())
}

func TestPrint_Pretty(t *testing.T) {
	var buf bytes.Buffer
	err := Print(&buf, []byte(`{"id":42,"name":"demo"}`), true)
	require.NoError(t, err)
	out := buf.String()
	assert.True(t, strings.HasSuffix(out, "\n"), "output must end with a newline")
	assert.Contains(t, out, "\n  ", "pretty output should be indented")
}

func TestPrint_RoundTrip(t *testing.T) {
	// Encoding then decoding reproduces the structure in both modes.
	original := `{"id":42,"tags":["a","b"],"nested":{"x":1.5,"ok":true},"none":null}`
	var want interface{}
	require.NoError(t, json.Unmarshal([]byte(original), &want))

	for _, indent := range []bool{false, true} {
		var buf bytes.Buffer
		require.NoError(t, Print(&buf, []byte(original), indent))

		var got interface{}
		require.NoError(t, json.Unmarshal(buf.Bytes(), &got))
		assert.Equal(t, want, got, "indent=%v", indent)
	}
}

func TestPrint_InvalidJSONPassesThrough(t *testing.T) {
	var buf bytes.Buffer
	err := Print(&buf, []byte("not json at all"), true)
	require.NoError(t, err)
	assert.Equal(t, "not json at all\n", buf.String())
}

func TestPrint_ArrayCompact(t *testing.T) {
	var buf bytes.Buffer
	err := Print(&buf, []byte("[ {\"id\": 1},\n {\"id\": 2} ]"), false)
	require.NoError(t, err)
	assert.Equal(t, `[{"id":1},{"id":2}]`+"\n", buf.String())
}
