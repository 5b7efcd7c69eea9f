package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/founderhub/founderhub-cli/pkg/constants"
	"gopkg.in/yaml.v3"
)

const ConfigFilename = "config.yaml"

var ErrFileExists = fmt.Errorf("file %s exists, not overwriting (specify '--force' to overwrite)", ConfigFilename)

// Config is the on-disk CLI configuration. Keys match the flag names so
// viper resolves them directly. The client secret is deliberately absent;
// it is supplied per invocation via flag or LINKEDIN_CLIENT_SECRET.
type Config struct {
	ClientID    string `yaml:"client-id"`
	RedirectURL string `yaml:"redirect-url"`
	Author      string `yaml:"author"`
}

// Path returns the config file location under the user's home directory.
func Path() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(homeDir, ".founderhub", ConfigFilename), nil
}

// Generate writes a default config file and returns its path.
func Generate(forceWrite bool) (string, error) {
	configFile, err := Path()
	if err != nil {
		return "", err
	}

	// check to see if the config file already exists
	_, err = os.Stat(configFile)
	if (err == nil) && !forceWrite {
		return "", ErrFileExists
	}

	defaultConfig := Config{
		RedirectURL: constants.DefaultRedirectURL,
	}

	cfgYaml, err := yaml.Marshal(defaultConfig)
	if err != nil {
		return "", fmt.Errorf("error marshaling default config yaml: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(configFile), 0700); err != nil {
		return "", err
	}

	if err := os.WriteFile(configFile, cfgYaml, 0600); err != nil {
		return "", err
	}

	return configFile, nil
}
