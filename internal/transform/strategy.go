package transform

import "strings"

const (
	BundleMarker   = "// @bundlefile"
	EsbundleMarker = "// @esbundlefile"
)

type Strategy int

const (
	StrategySingle Strategy = iota
	StrategyNativeBundle
	StrategyEsbuildBundle
)

func (s Strategy) String() string {
	switch s {
	case StrategySingle:
		return "single"
	case StrategyNativeBundle:
		return "bundle"
	case StrategyEsbuildBundle:
		return "esbundle"
	default:
		return "unknown"
	}
}

func (s Strategy) Bundles() bool {
	return s == StrategyNativeBundle || s == StrategyEsbuildBundle
}

// Classify picks a strategy from marker comments in the file. Markers are
// found by plain substring search, so a marker inside a string literal
// counts too. @esbundlefile takes precedence over @bundlefile.
func Classify(content string) Strategy {
	switch {
	case strings.Contains(content, EsbundleMarker):
		return StrategyEsbuildBundle
	case strings.Contains(content, BundleMarker):
		return StrategyNativeBundle
	default:
		return StrategySingle
	}
}
