package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"

	"github.com/joho/godotenv"
)

var ErrMissingToken = errors.New("token must be present as option (--token <token>) or in a .env file (TOKEN=<token>)")

// Options is the per-session sync configuration. It is built once at startup
// and passed by value to every pipeline stage.
type Options struct {
	WatchDir string
	APIHost  string
	APIPort  int
	APIToken string
}

func NewOptions(watchDir, host string, port int, token string) (Options, error) {
	absDir, err := filepath.Abs(watchDir)
	if err != nil {
		return Options{}, fmt.Errorf("invalid watch dir: %w", err)
	}

	if token == "" {
		return Options{}, ErrMissingToken
	}

	return Options{
		WatchDir: absDir,
		APIHost:  host,
		APIPort:  port,
		APIToken: token,
	}, nil
}

func (o Options) APIAddr() string {
	return o.APIHost + ":" + strconv.Itoa(o.APIPort)
}

func (o Options) APIURL() string {
	return "http://" + o.APIAddr() + "/"
}

// ResolveToken picks the explicit token when set, then TOKEN from envFile,
// then fallback.
func ResolveToken(explicit, envFile, fallback string) (string, error) {
	if explicit != "" {
		return explicit, nil
	}

	env, err := godotenv.Read(envFile)
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return "", fmt.Errorf("failed to read %s: %w", envFile, err)
	}

	if token := env["TOKEN"]; token != "" {
		return token, nil
	}

	return fallback, nil
}

func DirExists(dir string) error {
	info, err := os.Stat(dir)
	if err != nil {
		return fmt.Errorf("watch directory not found: %w", err)
	}

	if !info.IsDir() {
		return fmt.Errorf("%s is not a directory", dir)
	}

	return nil
}
