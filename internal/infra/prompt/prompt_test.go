package prompt

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClient_Confirm(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  bool
	}{
		{"lowercase y", "y\n", true},
		{"yes", "yes\n", true},
		{"uppercase", "YES\n", true},
		{"padded", "  y  \n", true},
		{"no", "n\n", false},
		{"empty line", "\n", false},
		{"garbage", "sure\n", false},
		{"eof", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var out bytes.Buffer
			client := NewWithIO(strings.NewReader(tt.input), &out)

			ok, err := client.Confirm("Proceed?")
			require.NoError(t, err)
			assert.Equal(t, tt.want, ok)
			assert.Contains(t, out.String(), "Proceed? [y/N]")
		})
	}
}

func TestClient_Ask(t *testing.T) {
	var out bytes.Buffer
	client := NewWithIO(strings.NewReader("  T-99  \n"), &out)

	answer, err := client.Ask("Ticket reference:")
	require.NoError(t, err)
	assert.Equal(t, "T-99", answer)
	assert.Contains(t, out.String(), "Ticket reference:")
}
