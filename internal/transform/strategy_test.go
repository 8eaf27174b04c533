package transform

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    Strategy
	}{
		{"plain", "export const x = 1;", StrategySingle},
		{"bundle", "// @bundlefile\nimport { a } from './a.ts';", StrategyNativeBundle},
		{"esbundle", "// @esbundlefile\nimport { a } from './a.ts';", StrategyEsbuildBundle},
		{"both, esbundle first", "// @esbundlefile\n// @bundlefile\n", StrategyEsbuildBundle},
		{"both, bundle first", "// @bundlefile\n// @esbundlefile\n", StrategyEsbuildBundle},
		{"marker in string", `const s = "// @bundlefile";`, StrategyNativeBundle},
		{"marker mid file", "export {};\n// @bundlefile\n", StrategyNativeBundle},
		{"near miss", "//@bundlefile", StrategySingle},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Classify(tt.content))
		})
	}
}

func TestStrategy_String(t *testing.T) {
	assert.Equal(t, "single", StrategySingle.String())
	assert.Equal(t, "bundle", StrategyNativeBundle.String())
	assert.Equal(t, "esbundle", StrategyEsbuildBundle.String())
	assert.Equal(t, "unknown", Strategy(42).String())

	assert.False(t, StrategySingle.Bundles())
	assert.True(t, StrategyNativeBundle.Bundles())
	assert.True(t, StrategyEsbuildBundle.Bundles())
}

func TestSet_For(t *testing.T) {
	set := NewSet([]string{"deno", "bundle"}, 0)

	assert.IsType(t, Single{}, set.For(StrategySingle))
	assert.IsType(t, &NativeBundler{}, set.For(StrategyNativeBundle))
	assert.IsType(t, EsbuildBundler{}, set.For(StrategyEsbuildBundle))
}
