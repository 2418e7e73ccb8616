package cmd

import (
	"fmt"
	"time"

	"github.com/nikogura/resume-builder/pkg/resume"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

//nolint:gochecknoglobals // Cobra boilerplate
var prefillAge int

//nolint:gochecknoglobals // Cobra boilerplate
var prefillCmd = &cobra.Command{
	Use:   "prefill <form-file>",
	Short: "Write a form file seeded with the years derived from an age",
	Long: `Write a YAML form file whose education and experience rows already carry
the graduation and first-job years for the given age. Fill in the rest and
pass the file to 'preview' or 'export'.

Example:
  resume-builder prefill --age 30 me.yaml`,
	Args: cobra.ExactArgs(1),
	RunE: runPrefill,
}

//nolint:gochecknoinits // Cobra boilerplate
func init() {
	rootCmd.AddCommand(prefillCmd)
	prefillCmd.Flags().IntVar(&prefillAge, "age", 0, "Age in years")
	_ = prefillCmd.MarkFlagRequired("age")
}

func runPrefill(cmd *cobra.Command, args []string) (err error) {
	if prefillAge <= 0 {
		err = errors.New("--age must be positive")
		return err
	}

	form := resume.Prefill(prefillAge, time.Now().Year())
	err = resume.Save(args[0], form)
	if err != nil {
		return err
	}

	fmt.Printf("Form written: %s\n", args[0])
	return err
}
