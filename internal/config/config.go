package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Config holds all configuration for the application
type Config struct {
	// Project settings
	ProjectPath string
	TestPath    string

	// Output settings
	OutputJSONFile string
	OutputJSONDir  string

	// Discovery settings
	PathsToIgnore []string
	NamePatterns  []string

	// Engine settings
	AcceptedExitCodes []int
	UseListContent    bool
	ExtraArgs         []string

	// Command flags
	Flags Flags
}

// Flags holds command-line flags
type Flags struct {
	TestPath   string
	NameFilter string
	FailFast   bool
	OnlyFailed bool
	OpenFaills bool
	SkipProbe  bool
	ExtraArgs  []string
}

// fileConfig is the shape of the optional btp.yaml project file.
type fileConfig struct {
	TestPath          string   `yaml:"test_path"`
	Output            string   `yaml:"output"`
	Ignore            []string `yaml:"ignore"`
	NamePatterns      []string `yaml:"name_patterns"`
	AcceptedExitCodes []int    `yaml:"accepted_exit_codes"`
	UseListContent    *bool    `yaml:"use_list_content"`
	ExtraArgs         []string `yaml:"extra_args"`
}

// New creates a new Config with defaults
func New() *Config {
	cfg := &Config{
		ProjectPath:    DefaultProjectPath,
		TestPath:       DefaultTestPath,
		OutputJSONFile: DefaultOutputJSONFile,
		OutputJSONDir:  DefaultOutputJSONDir,
	}
	cfg.PathsToIgnore = append(cfg.PathsToIgnore, DefaultPathsToIgnore...)
	cfg.NamePatterns = append(cfg.NamePatterns, DefaultNamePatterns...)
	cfg.AcceptedExitCodes = append(cfg.AcceptedExitCodes, DefaultAcceptedExitCodes...)
	return cfg
}

// Load creates a config with defaults, applies the project's btp.yaml and env
// overrides, then the flags.
func Load(flags Flags) (*Config, error) {
	cfg := New()
	if err := cfg.LoadProjectFile(); err != nil {
		return nil, err
	}
	cfg.loadEnv()
	cfg.Flags = flags
	if len(flags.ExtraArgs) > 0 {
		cfg.ExtraArgs = append(cfg.ExtraArgs, flags.ExtraArgs...)
	}
	return cfg, nil
}

// LoadProjectFile merges the optional btp.yaml from the project directory.
// A missing file is fine; a malformed one is an error.
func (c *Config) LoadProjectFile() error {
	path := filepath.Join(c.ProjectPath, DefaultConfigFile)
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("read config file: %w", err)
	}

	var fc fileConfig
	if err := yaml.Unmarshal(data, &fc); err != nil {
		return fmt.Errorf("parse %s: %w", DefaultConfigFile, err)
	}

	if fc.TestPath != "" {
		c.TestPath = fc.TestPath
	}
	if fc.Output != "" {
		c.OutputJSONDir = filepath.Dir(fc.Output)
		c.OutputJSONFile = filepath.Base(fc.Output)
	}
	if len(fc.Ignore) > 0 {
		c.PathsToIgnore = fc.Ignore
	}
	if len(fc.NamePatterns) > 0 {
		c.NamePatterns = fc.NamePatterns
	}
	if len(fc.AcceptedExitCodes) > 0 {
		c.AcceptedExitCodes = fc.AcceptedExitCodes
	}
	if fc.UseListContent != nil {
		c.UseListContent = *fc.UseListContent
	}
	if len(fc.ExtraArgs) > 0 {
		c.ExtraArgs = append(c.ExtraArgs, fc.ExtraArgs...)
	}
	return nil
}

// loadEnv applies .env (if present) and BTP_* environment overrides.
func (c *Config) loadEnv() {
	envPath := filepath.Join(c.ProjectPath, ".env")
	if err := godotenv.Load(envPath); err != nil {
		// .env file might not exist, that's okay - use environment variables
		_ = err
	}

	if v := os.Getenv("BTP_TEST_PATH"); v != "" {
		c.TestPath = v
	}
	if v := os.Getenv("BTP_USE_LIST_CONTENT"); v != "" {
		c.UseListContent = v == "1" || v == "true" || v == "yes"
	}
}

// GetTestPath returns the test path, using flag if provided
func (c *Config) GetTestPath() string {
	if c.Flags.TestPath != "" {
		// If TestPath is provided, make it relative to the project path if it's not absolute
		if filepath.IsAbs(c.Flags.TestPath) {
			return c.Flags.TestPath
		}
		return filepath.Join(c.ProjectPath, c.Flags.TestPath)
	}

	// Default: combine project path and test path
	return filepath.Join(c.ProjectPath, c.TestPath)
}

// GetOutputPath returns the full path to the output JSON file (under the
// project so run and faills use the same file). Resolves to an absolute path
// so both always read/write the same file regardless of cwd.
func (c *Config) GetOutputPath() string {
	p := filepath.Join(c.ProjectPath, c.OutputJSONDir, c.OutputJSONFile)
	if abs, err := filepath.Abs(p); err == nil {
		return abs
	}
	return p
}
