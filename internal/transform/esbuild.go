package transform

import (
	"bbsync/internal/util"
	"context"
	"path/filepath"

	"github.com/evanw/esbuild/pkg/api"
	"github.com/google/uuid"
)

// EsbuildBundler bundles the entry file's import graph in-process. The bundle
// goes through a temp file which is always removed.
type EsbuildBundler struct{}

func (EsbuildBundler) Transform(_ context.Context, path, _ string) (string, error) {
	outfile := filepath.Join(util.TempDir(), uuid.NewString()+".js")

	result := api.Build(api.BuildOptions{
		EntryPoints:   []string{path},
		Outfile:       outfile,
		Bundle:        true,
		Write:         true,
		Format:        api.FormatESModule,
		Target:        api.ES2020,
		AbsWorkingDir: filepath.Dir(path),
		LogLevel:      api.LogLevelSilent,
	})
	if len(result.Errors) > 0 {
		_ = util.RemoveIfExists(outfile)
		return "", esbuildError("esbuild bundle", result.Errors)
	}

	data, err := util.ReadAndRemove(outfile)
	if err != nil {
		return "", err
	}

	return string(data), nil
}
