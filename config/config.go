package config

import (
	"fmt"
	"log"
	"net/url"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/gregor-consortium/triovcf/core"
)

// names of the data tables consulted in each workspace
type tablesConfig struct {
	// table relating participants to HPO terms
	Phenotype string `yaml:"phenotype"`
	// table holding participants and their family structure
	Participant string `yaml:"participant"`
	// table holding variant call files for aligned sample sets
	Variants string `yaml:"variants"`
}

// a type with parameters for the Terra data table service
type terraConfig struct {
	// base URL of the Terra (FireCloud) orchestration API
	URL string `yaml:"url"`
	// HTTP request timeout (seconds)
	Timeout int `yaml:"timeout"`
	// table names
	Tables tablesConfig `yaml:"tables"`
}

// global config variables
var Terra terraConfig
var Workspaces []core.Workspace

// This struct performs the unmarshalling from the YAML config file and then
// copies its fields to the globals above.
type configFile struct {
	Terra      terraConfig      `yaml:"terra"`
	Workspaces []core.Workspace `yaml:"workspaces"`
}

// The configuration used when no configuration file is given. It searches
// the GREGOR consortium workspaces.
const DefaultConfig string = `
terra:
  url: https://api.firecloud.org
  timeout: 60
  tables:
    phenotype: phenotype
    participant: participant
    variants: called_variants_dna_short_read
workspaces:
  - namespace: gregor-ga4k
    name: GREGOR_GA4K1
    label: GA4K
  - namespace: gregor-dcc
    name: GREGOR_COMBINED_CONSORTIUM_U12
    label: DCC
`

// This helper reads configuration data, returning an error indicating
// success or failure. All environment variables of the form ${ENV_VAR} are
// expanded.
func readConfig(bytes []byte) error {
	// Before we do anything else, expand any provided environment variables.
	bytes = []byte(os.ExpandEnv(string(bytes)))

	var conf configFile
	conf.Terra.URL = "https://api.firecloud.org"
	conf.Terra.Timeout = 60
	conf.Terra.Tables = tablesConfig{
		Phenotype:   "phenotype",
		Participant: "participant",
		Variants:    "called_variants_dna_short_read",
	}
	err := yaml.Unmarshal(bytes, &conf)
	if err != nil {
		log.Printf("Couldn't parse configuration data: %s\n", err)
		return err
	}

	// copy the config data into place
	Terra = conf.Terra
	Workspaces = conf.Workspaces

	return err
}

// This helper validates the given Terra parameters, returning an error
// indicating success or failure.
func validateTerraParameters(params terraConfig) error {
	u, err := url.Parse(params.URL)
	if err != nil {
		return fmt.Errorf("Invalid Terra URL: %s (%s)", params.URL, err.Error())
	}
	if u.Scheme == "" || u.Host == "" {
		return fmt.Errorf("Invalid Terra URL: %s (needs a scheme and host)", params.URL)
	}
	if params.Timeout <= 0 {
		return fmt.Errorf("Invalid timeout: %d (must be positive)", params.Timeout)
	}
	tables := params.Tables
	if tables.Phenotype == "" || tables.Participant == "" || tables.Variants == "" {
		return fmt.Errorf("Phenotype, participant, and variants tables must all be named")
	}
	return nil
}

// This helper validates the configuration, returning an error that indicates
// success or failure.
func validateConfig() error {
	err := validateTerraParameters(Terra)
	if err != nil {
		return err
	}

	// Were we given any workspaces?
	if len(Workspaces) == 0 {
		return fmt.Errorf("No workspaces were provided!")
	}
	for i, ws := range Workspaces {
		if ws.Namespace == "" || ws.Name == "" {
			return fmt.Errorf("Workspace %d needs both a namespace and a name", i)
		}
		if ws.Label == "" {
			return fmt.Errorf("Workspace %s has no label", ws.String())
		}
	}
	return nil
}

// Initializes the configuration using the given YAML byte data.
func Init(yamlData []byte) error {

	// Read the configuration from our YAML data.
	err := readConfig(yamlData)
	if err != nil {
		return err
	}

	// Validate the configuration.
	err = validateConfig()
	return err
}
