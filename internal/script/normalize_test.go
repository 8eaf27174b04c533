package script

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		rel  string
		want string
	}{
		{"main.ts", "main.js"},
		{"main.tsx", "main.js"},
		{"main.js", "main.js"},
		{"utils/helper.ts", "/utils/helper.js"},
		{"/utils/helper.ts", "/utils/helper.js"},
		{"lib/deep/thing.tsx", "/lib/deep/thing.js"},
		{"notes.txt", "notes.txt"},
		{"legacy/hack.script", "/legacy/hack.script"},
		{"types.d.ts", "types.d.js"},
		{"my.ts.backup.ts", "my.ts.backup.js"},
		{"ts/file.js", "/ts/file.js"},
	}

	for _, tt := range tests {
		t.Run(tt.rel, func(t *testing.T) {
			got, err := Normalize(tt.rel)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestNormalize_RejectsSpaces(t *testing.T) {
	for _, rel := range []string{"my file.ts", "dir name/file.js", " lead.js", "trail.js "} {
		t.Run(rel, func(t *testing.T) {
			name, err := Normalize(rel)
			assert.ErrorIs(t, err, ErrInvalidName)
			assert.Empty(t, name)
		})
	}
}

func TestNormalize_Properties(t *testing.T) {
	paths := []string{"a/b.ts", "a/b/c.tsx", "x/y.js", "x/y/z.txt", "q/r.ns"}

	for _, rel := range paths {
		got, err := Normalize(rel)
		require.NoError(t, err)
		assert.True(t, strings.HasPrefix(got, "/"), "%s should become root-absolute", rel)

		stem := strings.TrimSuffix(strings.TrimSuffix(rel, ".tsx"), ".ts")
		if stem != rel {
			assert.Equal(t, "/"+stem+".js", got)
		}
	}
}

func TestAllowed(t *testing.T) {
	tests := []struct {
		name string
		want bool
	}{
		{"main.js", true},
		{"/lib/x.js", true},
		{"old.script", true},
		{"old.ns", true},
		{"notes.txt", true},
		{"main.ts", false},
		{"data.json", false},
		{"README", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Allowed(tt.name))
		})
	}
}
