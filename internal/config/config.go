package config

import "os"

const (
	// DefaultOutDir is where artifacts land when nothing else is configured.
	DefaultOutDir = "data"

	// OutDirEnv overrides the default output directory, e.g. in CI.
	OutDirEnv = "ASIDATA_OUT"
)

type Config struct {
	OutDir string
}

// Load resolves the output directory: explicit flag, then environment,
// then the default.
func Load(outFlag string) *Config {
	cfg := &Config{OutDir: DefaultOutDir}

	if env := os.Getenv(OutDirEnv); env != "" {
		cfg.OutDir = env
	}
	if outFlag != "" {
		cfg.OutDir = outFlag
	}

	return cfg
}
