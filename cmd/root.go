package cmd

import (
	"os"

	"github.com/nikogura/resume-builder/pkg/config"
	"github.com/nikogura/resume-builder/pkg/logging"
	"github.com/pkg/errors"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

//nolint:gochecknoglobals // Cobra boilerplate
var verbose bool

//nolint:gochecknoglobals // Cobra boilerplate
var configFile string

//nolint:gochecknoglobals // Cobra boilerplate
var logLevel string

//nolint:gochecknoglobals // set once per invocation by loadConfig
var logger = logging.Nop()

//nolint:gochecknoglobals // Cobra boilerplate
var rootCmd = &cobra.Command{
	Use:   "resume-builder",
	Short: "Build Japanese résumés from questionnaire answers",
	Long: `resume-builder turns questionnaire answers into a 履歴書 and 職務経歴書.

It derives school and employment years from an age, sorts free-text answers
into résumé sections, renders markdown or PDF previews, exports Excel or CSV,
and can ask an LLM to polish individual sections.

Run 'resume-builder serve' to expose the same operations to the browser form.`,
	SilenceUsage: true,
}

// Execute runs the root command.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

//nolint:gochecknoinits // Cobra boilerplate
func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Verbose output")
	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "config file (default is $HOME/.resume-builder/config.json)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "log level: debug, info, warn, error (default from config)")
}

// getVerbose returns the verbose flag value.
func getVerbose() (result bool) {
	result = verbose
	return result
}

// getConfigFile returns the config file path.
func getConfigFile() (result string) {
	result = configFile
	return result
}

// loadConfig reads .env and the config file, then builds the logger from the result.
func loadConfig() (cfg config.Config, err error) {
	err = config.LoadDotEnv()
	if err != nil {
		return cfg, err
	}

	cfg, err = config.Load(getConfigFile())
	if err != nil {
		err = errors.Wrap(err, "failed to load config")
		return cfg, err
	}

	logger, err = newLogger(cfg)
	if err != nil {
		return cfg, err
	}

	logger.Debug().Str("provider", cfg.Provider).Str("output_dir", cfg.Defaults.OutputDir).Msg("configuration loaded")
	return cfg, err
}

// newLogger picks the level from --log-level, then --verbose, then the config file.
func newLogger(cfg config.Config) (l zerolog.Logger, err error) {
	level := cfg.LogLevel
	if getVerbose() {
		level = zerolog.LevelDebugValue
	}
	if logLevel != "" {
		level = logLevel
	}

	l, err = logging.New(logging.Options{
		Level:   level,
		Console: isTerminal(os.Stderr),
	})
	return l, err
}

func isTerminal(f *os.File) (ok bool) {
	info, err := f.Stat()
	if err != nil {
		return ok
	}
	ok = info.Mode()&os.ModeCharDevice != 0
	return ok
}

// getOutputDir prefers the flag over the configured default.
func getOutputDir(flagValue, configValue string) (outDir string) {
	outDir = flagValue
	if outDir == "" {
		outDir = configValue
	}
	return outDir
}
