package categorize

import (
	"io"
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"lrocha/extrato-csv/cmd/root"
)

func captureStdout(t *testing.T, fn func() error) (string, error) {
	t.Helper()
	orig := os.Stdout
	r, w, err := os.Pipe()
	require.NoError(t, err)
	os.Stdout = w
	defer func() { os.Stdout = orig }()

	fnErr := fn()
	require.NoError(t, w.Close())

	out, err := io.ReadAll(r)
	require.NoError(t, err)
	return string(out), fnErr
}

func withProfile(t *testing.T, profile string) {
	t.Helper()
	orig := root.SharedFlags
	root.SharedFlags.Profile = profile
	t.Cleanup(func() { root.SharedFlags = orig })
}

func TestCategorizeCommand(t *testing.T) {
	tests := []struct {
		name        string
		profile     string
		description string
		expected    string
	}{
		{name: "personal food", profile: "personal", description: "Ifood Delivery", expected: "Alimentação"},
		{name: "personal transport", profile: "personal", description: "uber trip", expected: "Transporte"},
		{name: "personal fallback", profile: "personal", description: "compra misteriosa", expected: "Outros"},
		{name: "business taxes", profile: "business", description: "DAS simples nacional", expected: "Impostos"},
		{name: "business fallback", profile: "business", description: "compra misteriosa", expected: "Outros Custos"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			withProfile(t, tt.profile)
			description = tt.description

			out, err := captureStdout(t, func() error {
				return categorizeFunc(Cmd, nil)
			})
			require.NoError(t, err)
			assert.Equal(t, tt.expected, strings.TrimSpace(out))
		})
	}
}

func TestCategorizeCommandUnknownProfile(t *testing.T) {
	withProfile(t, "nope")
	description = "anything"

	err := categorizeFunc(Cmd, nil)
	assert.ErrorContains(t, err, "unknown profile")
}
