package commands

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/fx"
)

func runRoot(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	root := NewRootCmd()
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs(args)
	err := root.Execute()
	return out.String(), err
}

func TestThemeCommand(t *testing.T) {
	tests := []struct {
		hour string
		name string
		orb  string
	}{
		{"5", "dawn", "#F59E0B"},
		{"9", "dawn", "#F59E0B"},
		{"10", "day", "#60A5FA"},
		{"17", "dusk", "#D4AF37"},
		{"20", "night", "#818CF8"},
		{"0", "night", "#818CF8"},
	}

	for _, tt := range tests {
		t.Run(tt.hour, func(t *testing.T) {
			out, err := runRoot(t, "theme", "--hour", tt.hour)
			require.NoError(t, err)
			assert.Contains(t, out, "theme: "+tt.name)
			assert.Contains(t, out, "orb:   "+tt.orb)
		})
	}
}

func TestThemeCommandRejectsBadHour(t *testing.T) {
	_, err := runRoot(t, "theme", "--hour", "24")
	assert.ErrorContains(t, err, "between 0 and 23")
}

func TestThemeCommandByName(t *testing.T) {
	out, err := runRoot(t, "theme", "--name", "dusk")
	require.NoError(t, err)
	assert.Contains(t, out, "theme: dusk")
	assert.Contains(t, out, "grid:  #C084FC")

	_, err = runRoot(t, "theme", "--name", "eclipse")
	assert.ErrorContains(t, err, `unknown theme "eclipse"`)

	_, err = runRoot(t, "theme", "--name", "dusk", "--hour", "3")
	assert.Error(t, err)
}

func TestThemeCommandCurrentHour(t *testing.T) {
	t.Setenv("SITE_TIMEZONE", "UTC")

	out, err := runRoot(t, "theme")
	require.NoError(t, err)
	assert.Contains(t, out, "theme: ")
}

func TestAppGraph(t *testing.T) {
	require.NoError(t, fx.ValidateApp(modules()))
}
