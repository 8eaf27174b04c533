package transform

import (
	"context"
	"path/filepath"
	"strings"

	"github.com/evanw/esbuild/pkg/api"
)

// Single transpiles one file without following its imports.
type Single struct{}

func (Single) Transform(_ context.Context, path, content string) (string, error) {
	loader, ok := loaderFor(path)
	if !ok {
		return content, nil
	}

	result := api.Transform(content, api.TransformOptions{
		Loader:     loader,
		Target:     api.ES2021,
		Sourcefile: filepath.Base(path),
		Charset:    api.CharsetUTF8,
	})
	if len(result.Errors) > 0 {
		return "", esbuildError("transform", result.Errors)
	}

	return string(result.Code), nil
}

// loaderFor returns false for files that are uploaded as-is. Game scripts
// commonly carry type annotations whatever their extension, so everything but
// plain .ts is parsed as TSX; .ts keeps the TS loader so `<T>` stays a generic.
func loaderFor(path string) (api.Loader, bool) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".ts", ".mts":
		return api.LoaderTS, true
	case ".txt":
		return api.LoaderNone, false
	default:
		return api.LoaderTSX, true
	}
}
