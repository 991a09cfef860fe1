package config

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"

	pkgerrors "github.com/pkg/errors"
	"github.com/spf13/afero"
	"github.com/tauraamui/xerror"

	"github.com/SreenikethanI/mp4-recovery-experience/pkg/configdef"
	"github.com/SreenikethanI/mp4-recovery-experience/pkg/log"
)

var fs afero.Fs = afero.NewOsFs()

// load reads the config file over the defaults. A missing file leaves the
// defaults as they are, every key the file sets replaces its default.
func load() (configdef.Values, error) {
	values := configdef.Defaults()

	configPath, err := resolveConfigPath()
	if err != nil {
		return configdef.Values{}, err
	}

	log.Debug("Resolved config file location: %s", configPath)
	file, err := readConfigFile(configPath)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			log.Debug("No config file found at %s, using defaults", configPath)
			return values, nil
		}
		return configdef.Values{}, xerror.Errorf("unable to read config file %s: %w", configPath, err)
	}

	if err := unmarshal(file, &values); err != nil {
		return configdef.Values{}, err
	}

	return values, nil
}

var readConfigFile = func(path string) ([]byte, error) {
	return afero.ReadFile(fs, path)
}

func unmarshal(content []byte, values *configdef.Values) error {
	err := json.Unmarshal(content, values)
	if err != nil {
		return pkgerrors.Errorf("parsing configuration error: %v", err)
	}
	return nil
}

func resolveConfigPath() (string, error) {
	configPath := os.Getenv(configPathEnv)
	if len(configPath) > 0 {
		return configPath, nil
	}

	configParentDir, err := userConfigDir()
	if err != nil {
		return "", xerror.Errorf("unable to resolve %s location: %w", configFileName, err)
	}

	return filepath.Join(
		configParentDir,
		vendorName,
		appName,
		configFileName), nil
}

var userConfigDir = func() (string, error) {
	return os.UserConfigDir()
}
