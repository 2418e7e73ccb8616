package cmd

import (
	"fmt"

	"github.com/nikogura/resume-builder/pkg/config"
	"github.com/spf13/cobra"
)

//nolint:gochecknoglobals // Cobra boilerplate
var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Write a default configuration file",
	Long: `Write a default configuration file to $HOME/.resume-builder/config.json,
or to the path given with --config. An existing file is never overwritten.

Edit the file afterwards to add your API key, or set ANTHROPIC_API_KEY /
GOOGLE_API_KEY in the environment or a .env file.`,
	Args: cobra.NoArgs,
	RunE: runInit,
}

//nolint:gochecknoinits // Cobra boilerplate
func init() {
	rootCmd.AddCommand(initCmd)
}

func runInit(cmd *cobra.Command, args []string) (err error) {
	var path string
	path, err = config.InitConfig(getConfigFile())
	if err != nil {
		return err
	}

	fmt.Printf("Created config file: %s\n", path)
	fmt.Println("Add \"anthropic_api_key\" there or export ANTHROPIC_API_KEY to enable 'enhance' and the AI endpoint of 'serve'.")
	return err
}
