package cmd

import (
	"encoding/json"
	"fmt"

	"github.com/nikogura/resume-builder/pkg/classifier"
	"github.com/nikogura/resume-builder/pkg/resume"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

//nolint:gochecknoglobals // Cobra boilerplate
var classifyCmd = &cobra.Command{
	Use:   "classify <answers-file>",
	Short: "Sort free-text answers into résumé sections",
	Long: `Read a YAML or JSON list of {key, text} answers and print the résumé record
they classify into.

Example answers file:
  - key: "1"
    text: 名前は山田太郎
  - key: "2"
    text: 090-1234-5678`,
	Args: cobra.ExactArgs(1),
	RunE: runClassify,
}

//nolint:gochecknoinits // Cobra boilerplate
func init() {
	rootCmd.AddCommand(classifyCmd)
}

func runClassify(cmd *cobra.Command, args []string) (err error) {
	var answers []resume.Answer
	answers, err = resume.LoadAnswers(args[0])
	if err != nil {
		return err
	}

	record := classifier.Classify(answers)

	var data []byte
	data, err = json.MarshalIndent(record, "", "  ")
	if err != nil {
		err = errors.Wrap(err, "failed to encode record")
		return err
	}

	fmt.Println(string(data))
	return err
}

// submitForm loads a form file and classifies its answers.
func submitForm(path string, referenceYear int) (form resume.Form, record resume.Record, err error) {
	form, err = resume.Load(path)
	if err != nil {
		return form, record, err
	}

	answers := form.Answers(referenceYear)
	logger.Debug().Str("form", path).Int("answers", len(answers)).Msg("form submitted")

	record = classifier.Classify(answers)
	return form, record, err
}
