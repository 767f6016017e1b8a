package userconfig

import (
	"os"
	"path/filepath"

	"github.com/sirupsen/logrus"
)

const (
	// EnvConfig overrides the user config location. It may hold several
	// paths separated by os.PathListSeparator.
	EnvConfig = "TROVE_CONFIG"

	appDirName     = "trove"
	repoConfigDir  = ".trove"
	repoConfigFile = "config.toml"
)

var userConfigFiles = []string{"config.toml", "config.yaml", "config.yml"}

func userConfigPaths() []string {
	if env, ok := os.LookupEnv(EnvConfig); ok && env != "" {
		var paths []string
		for _, p := range filepath.SplitList(env) {
			if p != "" {
				paths = append(paths, p)
			}
		}
		return paths
	}

	dir, err := os.UserConfigDir()
	if err != nil {
		logrus.WithError(err).Debug("no user config directory, skipping user config")
		return nil
	}
	paths := make([]string, len(userConfigFiles))
	for i, name := range userConfigFiles {
		paths[i] = filepath.Join(dir, appDirName, name)
	}
	return paths
}

// findRepoConfig looks for .trove/config.toml in dir and its parents.
func findRepoConfig(dir string) (string, bool) {
	if dir == "" {
		return "", false
	}
	dir, err := filepath.Abs(dir)
	if err != nil {
		return "", false
	}
	for {
		candidate := filepath.Join(dir, repoConfigDir, repoConfigFile)
		if info, err := os.Stat(candidate); err == nil && !info.IsDir() {
			return candidate, true
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return "", false
		}
		dir = parent
	}
}
