package logging

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		input   string
		want    int
		wantErr bool
	}{
		{"none", None, false},
		{"error", Error, false},
		{"warn", Warn, false},
		{"warning", Warn, false},
		{"info", Info, false},
		{"debug", Debug, false},
		{"DEBUG", Debug, false},
		{"bogus", Info, true},
	}
	for _, tc := range tests {
		t.Run(tc.input, func(t *testing.T) {
			got, err := ParseLevel(tc.input)
			if tc.wantErr {
				require.Error(t, err)
			} else {
				require.NoError(t, err)
			}
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestFromFlags(t *testing.T) {
	tests := []struct {
		name        string
		verbose     bool
		quiet       bool
		configLevel string
		want        int
	}{
		{"Verbose Wins", true, true, "warn", Debug},
		{"Quiet", false, true, "debug", Error},
		{"Config Level", false, false, "warn", Warn},
		{"Invalid Config Level Defaults", false, false, "bogus", Info},
		{"Nothing Set", false, false, "", Info},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, FromFlags(tc.verbose, tc.quiet, tc.configLevel))
		})
	}
}

func TestSetGetLevel(t *testing.T) {
	original := GetLevel()
	t.Cleanup(func() { SetLevel(original) })

	SetLevel(Debug)
	assert.Equal(t, Debug, GetLevel())
	SetLevel(Error)
	assert.Equal(t, Error, GetLevel())
}
