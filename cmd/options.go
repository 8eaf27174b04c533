package cmd

import (
	"bbsync/internal/client"
	"bbsync/internal/config"
	"bbsync/internal/metrics"
	"bbsync/internal/pipeline"
	"bbsync/internal/syncer"
	"bbsync/internal/transform"
	"errors"
	"fmt"

	"github.com/spf13/cobra"
)

var (
	watchDir string
	token    string
)

func addTargetFlags(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&watchDir, "dir", "d", "", "Directory to watch")
	cmd.Flags().StringVarP(&token, "token", "t", "", "API token (default TOKEN from .env)")
	cmd.Flags().String("host", config.Default.Host, "Game API host")
	cmd.Flags().IntP("port", "p", config.Default.Port, "Game API port")
	_ = cmd.MarkFlagRequired("dir")
}

// loadOptions builds the session options from flags, .env and config. A
// missing token is reported to the user and yields ok=false without an
// error.
func loadOptions() (opts config.Options, ok bool, err error) {
	resolved, err := config.ResolveToken(token, ".env", cfg.Token)
	if err != nil {
		return opts, false, err
	}

	opts, err = config.NewOptions(watchDir, cfg.Host, cfg.Port, resolved)
	if errors.Is(err, config.ErrMissingToken) {
		fmt.Println(err)
		return opts, false, nil
	}
	if err != nil {
		return opts, false, err
	}

	if err := config.DirExists(opts.WatchDir); err != nil {
		return opts, false, err
	}

	return opts, true, nil
}

func newSyncer(opts config.Options, checksums *pipeline.ChecksumFilter, m *metrics.Metrics) *syncer.Syncer {
	return syncer.New(opts, syncer.Deps{
		Transformers: transform.NewSet(cfg.BundleCommand, cfg.BundleTimeout),
		Uploader:     client.New(opts.APIURL(), opts.APIToken, nil),
		Checksums:    checksums,
		Metrics:      m,
		IgnoreList:   cfg.IgnoreList,
	})
}
