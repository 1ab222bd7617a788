package config

import (
	"os"

	"github.com/kelseyhightower/envconfig"
)

// settings taken from the process environment
type environment struct {
	// path to a YAML configuration file (DefaultConfig is used if empty)
	ConfigFile string `envconfig:"TRIOVCF_CONFIG"`
	// bearer token for the Terra API (application default credentials are
	// used if empty)
	AccessToken string `envconfig:"TRIOVCF_ACCESS_TOKEN"`
	// enables debug logging
	Debug bool `envconfig:"TRIOVCF_DEBUG"`
}

var Env environment

// Reads settings from the environment into Env.
func ReadEnvironment() error {
	var env environment
	err := envconfig.Process("", &env)
	if err != nil {
		return err
	}
	Env = env
	return nil
}

// Returns the YAML configuration data selected by the environment: the
// contents of the TRIOVCF_CONFIG file, or DefaultConfig.
func ConfigData() ([]byte, error) {
	if Env.ConfigFile == "" {
		return []byte(DefaultConfig), nil
	}
	return os.ReadFile(Env.ConfigFile)
}
