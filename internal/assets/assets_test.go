package assets

import (
	"io/fs"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatic(t *testing.T) {
	static := Static()

	for _, name := range []string{
		"styles.css",
		"js/entry.js",
		"js/join.js",
		"js/tailwind.config.js",
		"images/favicon.svg",
		"images/hero-prairie.svg",
		"images/og-image.svg",
	} {
		t.Run(name, func(t *testing.T) {
			info, err := fs.Stat(static, name)
			require.NoError(t, err)
			assert.Positive(t, info.Size())
		})
	}
}

// The entry script falls back to local timers when the socket drops.
// Both fallbacks must pick up where the server left off.
func TestEntryScriptFallbacks(t *testing.T) {
	src, err := fs.ReadFile(Static(), "js/entry.js")
	require.NoError(t, err)
	script := string(src)

	t.Run("close during exit still navigates", func(t *testing.T) {
		assert.Contains(t, script, `if (exiting) {
      setTimeout(() => navigate(target), exitDelay);`)
	})

	t.Run("late fallback subtracts elapsed time", func(t *testing.T) {
		assert.Contains(t, script, "startedAt = performance.now();")
		assert.Contains(t, script, "Math.max(0, step.delay - elapsed)")
	})
}
