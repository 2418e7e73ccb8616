package config

import (
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"github.com/nikogura/resume-builder/pkg/export"
	"github.com/nikogura/resume-builder/pkg/llm"
	"github.com/pkg/errors"
	"github.com/rs/zerolog"
)

const (
	// DirName is the per-user configuration directory under $HOME.
	DirName = ".resume-builder"
	// FileName is the configuration file inside DirName.
	FileName = "config.json"
	// DefaultAddr is where `serve` listens when nothing else is configured.
	DefaultAddr = ":8080"
	// DefaultOutputDir receives previews and exports.
	DefaultOutputDir = "./output"
)

// Config represents the application configuration.
type Config struct {
	Provider        string        `json:"provider,omitempty"`
	AnthropicAPIKey string        `json:"anthropic_api_key,omitempty"`
	GoogleAPIKey    string        `json:"google_api_key,omitempty"`
	Models          ModelsConfig  `json:"models,omitempty"`
	LogLevel        string        `json:"log_level,omitempty"`
	Pandoc          PandocConfig  `json:"pandoc"`
	Defaults        DefaultConfig `json:"defaults"`
	Server          ServerConfig  `json:"server"`
	S3              S3Config      `json:"s3,omitempty"`
}

// ModelsConfig holds model selection per provider.
type ModelsConfig struct {
	Anthropic string `json:"anthropic,omitempty"`
	Gemini    string `json:"gemini,omitempty"`
}

// PandocConfig holds pandoc-related configuration. Every field is optional.
type PandocConfig struct {
	TemplatePath string `json:"template_path,omitempty"`
	ClassFile    string `json:"class_file,omitempty"`
	Engine       string `json:"engine,omitempty"`
	MainFont     string `json:"main_font,omitempty"`
}

// DefaultConfig holds default values for commands.
type DefaultConfig struct {
	OutputDir string `json:"output_dir"`
}

// ServerConfig holds HTTP API settings.
type ServerConfig struct {
	Addr string `json:"addr"`
}

// S3Config describes the optional upload target for exports.
type S3Config struct {
	Bucket    string `json:"bucket,omitempty"`
	Region    string `json:"region,omitempty"`
	Prefix    string `json:"prefix,omitempty"`
	Endpoint  string `json:"endpoint,omitempty"`
	AccessKey string `json:"access_key,omitempty"`
	SecretKey string `json:"secret_key,omitempty"`
}

// DefaultPath returns ~/.resume-builder/config.json.
func DefaultPath() (path string, err error) {
	var homeDir string
	homeDir, err = os.UserHomeDir()
	if err != nil {
		err = errors.Wrap(err, "failed to get user home directory")
		return path, err
	}
	path = filepath.Join(homeDir, DirName, FileName)
	return path, err
}

// Default returns the configuration used when no file exists.
func Default() (cfg Config) {
	cfg = Config{
		Provider: llm.ProviderAnthropic,
		LogLevel: zerolog.LevelInfoValue,
		Defaults: DefaultConfig{OutputDir: DefaultOutputDir},
		Server:   ServerConfig{Addr: DefaultAddr},
	}
	return cfg
}

// LoadDotEnv loads KEY=value pairs from env files into the process environment.
// Variables already set win, and missing files are ignored.
func LoadDotEnv(paths ...string) (err error) {
	if len(paths) == 0 {
		paths = []string{".env"}
	}

	for _, path := range paths {
		_, err = os.Stat(path)
		if os.IsNotExist(err) {
			err = nil
			continue
		}

		err = godotenv.Load(path)
		if err != nil {
			err = errors.Wrapf(err, "failed to load env file: %s", path)
			return err
		}
	}

	return err
}

// Load reads configuration from file with environment variable overrides.
// An empty configPath means the default location, which may be absent.
func Load(configPath string) (cfg Config, err error) {
	path := configPath
	if path == "" {
		path, err = DefaultPath()
		if err != nil {
			return cfg, err
		}
	}

	cfg = Default()

	var data []byte
	data, err = os.ReadFile(path)
	switch {
	case err == nil:
		err = json.Unmarshal(data, &cfg)
		if err != nil {
			err = errors.Wrapf(err, "failed to parse config file: %s", path)
			return cfg, err
		}
	case os.IsNotExist(err) && configPath == "":
		err = nil
	case os.IsNotExist(err):
		err = errors.Errorf("config file not found: %s (run 'resume-builder init' to create)", path)
		return cfg, err
	default:
		err = errors.Wrapf(err, "failed to read config file: %s", path)
		return cfg, err
	}

	cfg.applyEnv()
	cfg.applyDefaults()

	err = cfg.Validate()
	if err != nil {
		err = errors.Wrap(err, "config validation failed")
		return cfg, err
	}

	return cfg, err
}

func (c *Config) applyEnv() {
	overrides := []struct {
		name   string
		target *string
	}{
		{"ANTHROPIC_API_KEY", &c.AnthropicAPIKey},
		{"GOOGLE_API_KEY", &c.GoogleAPIKey},
		{"RESUME_BUILDER_PROVIDER", &c.Provider},
		{"RESUME_BUILDER_LOG_LEVEL", &c.LogLevel},
		{"RESUME_BUILDER_ADDR", &c.Server.Addr},
		{"RESUME_BUILDER_S3_BUCKET", &c.S3.Bucket},
		{"AWS_REGION", &c.S3.Region},
	}
	for _, o := range overrides {
		if v := os.Getenv(o.name); v != "" {
			*o.target = v
		}
	}
}

func (c *Config) applyDefaults() {
	if c.Provider == "" {
		c.Provider = llm.ProviderAnthropic
	}
	if c.LogLevel == "" {
		c.LogLevel = zerolog.LevelInfoValue
	}
	if c.Defaults.OutputDir == "" {
		c.Defaults.OutputDir = DefaultOutputDir
	}
	if c.Server.Addr == "" {
		c.Server.Addr = DefaultAddr
	}
}

// Validate checks the settings every command depends on.
func (c *Config) Validate() (err error) {
	switch c.Provider {
	case llm.ProviderAnthropic, llm.ProviderGemini:
	default:
		err = errors.Errorf("provider must be %q or %q, got %q", llm.ProviderAnthropic, llm.ProviderGemini, c.Provider)
		return err
	}

	_, err = zerolog.ParseLevel(c.LogLevel)
	if err != nil {
		err = errors.Wrapf(err, "invalid log_level %q", c.LogLevel)
		return err
	}

	if c.Server.Addr == "" {
		err = errors.New("server.addr is required")
		return err
	}

	return err
}

// ValidateEnhancer checks that the selected provider has credentials.
func (c *Config) ValidateEnhancer() (err error) {
	if c.EnhancerOptions().APIKey != "" {
		return err
	}

	switch c.Provider {
	case llm.ProviderGemini:
		err = errors.New("google_api_key is required for the gemini provider (set in config or GOOGLE_API_KEY env var)")
	default:
		err = errors.New("anthropic_api_key is required (set in config or ANTHROPIC_API_KEY env var)")
	}
	return err
}

// ValidateS3 checks that an upload target is configured.
func (c *Config) ValidateS3() (err error) {
	if c.S3.Bucket == "" {
		err = errors.New("s3.bucket is required for uploads (set in config or RESUME_BUILDER_S3_BUCKET env var)")
		return err
	}
	if c.S3.Region == "" {
		err = errors.New("s3.region is required for uploads (set in config or AWS_REGION env var)")
		return err
	}
	return err
}

// EnhancerOptions returns the provider settings for llm.NewEnhancer.
func (c *Config) EnhancerOptions() (opts llm.Options) {
	opts = llm.Options{Provider: c.Provider}
	switch c.Provider {
	case llm.ProviderGemini:
		opts.APIKey = c.GoogleAPIKey
		opts.Model = c.Models.Gemini
	default:
		opts.APIKey = c.AnthropicAPIKey
		opts.Model = c.Models.Anthropic
	}
	return opts
}

// S3Options returns the upload settings for export.NewS3Destination.
func (c *Config) S3Options() (opts export.S3Options) {
	opts = export.S3Options{
		Bucket:    c.S3.Bucket,
		Region:    c.S3.Region,
		Prefix:    c.S3.Prefix,
		Endpoint:  c.S3.Endpoint,
		AccessKey: c.S3.AccessKey,
		SecretKey: c.S3.SecretKey,
	}
	return opts
}

// InitConfig creates a default configuration file.
func InitConfig(configPath string) (path string, err error) {
	path = configPath
	if path == "" {
		path, err = DefaultPath()
		if err != nil {
			return path, err
		}
	}

	dir := filepath.Dir(path)
	err = os.MkdirAll(dir, 0750)
	if err != nil {
		err = errors.Wrapf(err, "failed to create config directory: %s", dir)
		return path, err
	}

	_, err = os.Stat(path)
	if err == nil {
		err = errors.Errorf("config file already exists: %s", path)
		return path, err
	}

	defaultConfig := Default()
	defaultConfig.Models.Anthropic = llm.ClaudeModel
	defaultConfig.Models.Gemini = llm.GeminiModel
	defaultConfig.Pandoc.Engine = "lualatex"

	var data []byte
	data, err = json.MarshalIndent(defaultConfig, "", "  ")
	if err != nil {
		err = errors.Wrap(err, "failed to marshal default config")
		return path, err
	}

	err = os.WriteFile(path, data, 0600)
	if err != nil {
		err = errors.Wrapf(err, "failed to write config file: %s", path)
		return path, err
	}

	return path, err
}
