package config

// These tests verify that we can properly configure the trio search with
// YAML input.
import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/stretchr/testify/assert"
	"testing"
)

// a valid terra config entry
const VALID_TERRA string = `
terra:
  url: https://api.firecloud.org
  timeout: 30
  tables:
    phenotype: phenotype
    participant: participant
    variants: called_variants_dna_short_read
`

// a valid workspaces config entry
const VALID_WORKSPACES string = `
workspaces:
  - namespace: gregor-ga4k
    name: GREGOR_GA4K1
    label: GA4K
`

// tests whether config.Init reports an error for blank input
func TestInitRejectsBlankInput(t *testing.T) {
	b := []byte("")
	err := Init(b)
	assert.NotNil(t, err, "Blank config didn't trigger an error.")
}

// tests whether config.Init reports an error for a bad Terra URL
func TestInitRejectsBadURL(t *testing.T) {
	yaml := "terra:\n  url: hahahahahahaha\n\n" + VALID_WORKSPACES
	err := Init([]byte(yaml))
	assert.NotNil(t, err, "Config with bad URL didn't trigger an error.")
}

// tests whether config.Init reports an error for a nonpositive timeout
func TestInitRejectsBadTimeout(t *testing.T) {
	yaml := "terra:\n  timeout: 0\n\n" + VALID_WORKSPACES
	err := Init([]byte(yaml))
	assert.NotNil(t, err, "Config with bad timeout didn't trigger an error.")
	yaml = "terra:\n  timeout: -5\n\n" + VALID_WORKSPACES
	err = Init([]byte(yaml))
	assert.NotNil(t, err, "Config with bad timeout didn't trigger an error.")
}

// tests whether config.Init rejects a blank table name
func TestInitRejectsBlankTable(t *testing.T) {
	yaml := "terra:\n  tables:\n    participant: \"\"\n\n" + VALID_WORKSPACES
	err := Init([]byte(yaml))
	assert.NotNil(t, err, "Config with blank table name didn't trigger an error.")
}

// tests whether config.Init rejects a configuration with no workspaces
func TestInitRejectsNoWorkspacesDefined(t *testing.T) {
	err := Init([]byte(VALID_TERRA))
	assert.NotNil(t, err, "Config with no workspaces didn't trigger an error.")
}

// tests whether config.Init rejects incomplete workspaces
func TestInitRejectsIncompleteWorkspace(t *testing.T) {
	yaml := VALID_TERRA + "workspaces:\n  - namespace: ns\n    label: X\n"
	err := Init([]byte(yaml))
	assert.NotNil(t, err, "Workspace with no name didn't trigger an error.")
	yaml = VALID_TERRA + "workspaces:\n  - namespace: ns\n    name: ws\n"
	err = Init([]byte(yaml))
	assert.NotNil(t, err, "Workspace with no label didn't trigger an error.")
}

// Tests whether config.Init returns no error for a valid configuration.
func TestInitAcceptsValidInput(t *testing.T) {
	yaml := VALID_TERRA + VALID_WORKSPACES
	err := Init([]byte(yaml))
	assert.Nil(t, err, fmt.Sprintf("Valid YAML input produced an error: %s", err))
}

// Tests whether config.Init properly initializes its globals for valid input.
func TestInitProperlySetsGlobals(t *testing.T) {
	yaml := VALID_TERRA + VALID_WORKSPACES
	err := Init([]byte(yaml))
	assert.Nil(t, err, fmt.Sprintf("Valid YAML input produced an error: %s", err))

	assert.Equal(t, "https://api.firecloud.org", Terra.URL)
	assert.Equal(t, 30, Terra.Timeout)
	assert.Equal(t, "called_variants_dna_short_read", Terra.Tables.Variants)
	assert.Equal(t, 1, len(Workspaces))
	assert.Equal(t, "GA4K", Workspaces[0].Label)
}

// Tests whether omitted Terra settings fall back to their defaults.
func TestInitUsesTerraDefaults(t *testing.T) {
	err := Init([]byte(VALID_WORKSPACES))
	assert.Nil(t, err)
	assert.Equal(t, "https://api.firecloud.org", Terra.URL)
	assert.Equal(t, 60, Terra.Timeout)
	assert.Equal(t, "phenotype", Terra.Tables.Phenotype)
	assert.Equal(t, "participant", Terra.Tables.Participant)
}

// Tests whether environment variables are expanded in configuration data.
func TestInitExpandsEnvironmentVariables(t *testing.T) {
	t.Setenv("TRIOVCF_TEST_NAMESPACE", "expanded-ns")
	yaml := VALID_TERRA + "workspaces:\n  - namespace: ${TRIOVCF_TEST_NAMESPACE}\n    name: ws\n    label: X\n"
	err := Init([]byte(yaml))
	assert.Nil(t, err)
	assert.Equal(t, "expanded-ns", Workspaces[0].Namespace)
}

// Tests the built-in configuration.
func TestDefaultConfig(t *testing.T) {
	err := Init([]byte(DefaultConfig))
	assert.Nil(t, err)
	assert.Equal(t, 2, len(Workspaces))
	assert.Equal(t, "gregor-ga4k", Workspaces[0].Namespace)
	assert.Equal(t, "GREGOR_GA4K1", Workspaces[0].Name)
	assert.Equal(t, "GA4K", Workspaces[0].Label)
	assert.Equal(t, "gregor-dcc", Workspaces[1].Namespace)
	assert.Equal(t, "GREGOR_COMBINED_CONSORTIUM_U12", Workspaces[1].Name)
	assert.Equal(t, "DCC", Workspaces[1].Label)
}

// Tests reading settings from the environment.
func TestReadEnvironment(t *testing.T) {
	t.Setenv("TRIOVCF_CONFIG", "")
	t.Setenv("TRIOVCF_ACCESS_TOKEN", "ya29.token")
	t.Setenv("TRIOVCF_DEBUG", "true")
	err := ReadEnvironment()
	assert.Nil(t, err)
	assert.Equal(t, "ya29.token", Env.AccessToken)
	assert.True(t, Env.Debug)

	data, err := ConfigData()
	assert.Nil(t, err)
	assert.Equal(t, DefaultConfig, string(data))

	t.Setenv("TRIOVCF_DEBUG", "not-a-bool")
	err = ReadEnvironment()
	assert.NotNil(t, err, "Bad boolean didn't trigger an error.")
}

// Tests reading configuration data from a file named in the environment.
func TestConfigDataFromFile(t *testing.T) {
	filename := filepath.Join(t.TempDir(), "triovcf.yaml")
	err := os.WriteFile(filename, []byte(VALID_TERRA+VALID_WORKSPACES), 0644)
	assert.Nil(t, err)

	t.Setenv("TRIOVCF_CONFIG", filename)
	err = ReadEnvironment()
	assert.Nil(t, err)
	data, err := ConfigData()
	assert.Nil(t, err)
	assert.Nil(t, Init(data))
	assert.Equal(t, 30, Terra.Timeout)

	t.Setenv("TRIOVCF_CONFIG", filepath.Join(t.TempDir(), "missing.yaml"))
	err = ReadEnvironment()
	assert.Nil(t, err)
	_, err = ConfigData()
	assert.NotNil(t, err, "Missing config file didn't trigger an error.")
}

// this function gets called at the begіnning of a test session
func setup() {
}

// this function gets called after all tests have been run
func breakdown() {
}

// This runs setup, runs all tests, and does breakdown.
func TestMain(m *testing.M) {
	var status int
	setup()
	status = m.Run()
	breakdown()
	os.Exit(status)
}
