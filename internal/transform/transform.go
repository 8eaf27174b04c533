// Package transform turns a watched source file into plain JavaScript the
// game can run, either file by file or by bundling its import graph.
package transform

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/evanw/esbuild/pkg/api"
)

type Transformer interface {
	Transform(ctx context.Context, path, content string) (string, error)
}

// Set holds one Transformer per strategy.
type Set struct {
	Single  Transformer
	Native  Transformer
	Esbuild Transformer
}

func NewSet(bundleCommand []string, bundleTimeout time.Duration) Set {
	return Set{
		Single:  Single{},
		Native:  NewNativeBundler(bundleCommand, bundleTimeout),
		Esbuild: EsbuildBundler{},
	}
}

func (s Set) For(strategy Strategy) Transformer {
	switch strategy {
	case StrategyNativeBundle:
		return s.Native
	case StrategyEsbuildBundle:
		return s.Esbuild
	default:
		return s.Single
	}
}

func formatErrors(msgs []api.Message) string {
	lines := api.FormatMessages(msgs, api.FormatMessagesOptions{
		Kind: api.ErrorMessage,
	})

	return strings.TrimSpace(strings.Join(lines, ""))
}

func esbuildError(action string, msgs []api.Message) error {
	return fmt.Errorf("%s failed: %s", action, formatErrors(msgs))
}
