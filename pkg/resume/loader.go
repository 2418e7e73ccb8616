package resume

import (
	"os"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// Load reads a form from a YAML (or JSON) file and validates it.
func Load(path string) (form Form, err error) {
	var fileData []byte
	fileData, err = os.ReadFile(path)
	if err != nil {
		err = errors.Wrapf(err, "failed to read form file: %s", path)
		return form, err
	}

	err = yaml.Unmarshal(fileData, &form)
	if err != nil {
		err = errors.Wrapf(err, "failed to parse form file: %s", path)
		return form, err
	}

	err = form.Validate()
	if err != nil {
		err = errors.Wrapf(err, "form validation failed: %s", path)
		return form, err
	}

	return form, err
}

// LoadAnswers reads a raw answer list, as a sequence of {key, text} items.
func LoadAnswers(path string) (answers []Answer, err error) {
	var fileData []byte
	fileData, err = os.ReadFile(path)
	if err != nil {
		err = errors.Wrapf(err, "failed to read answers file: %s", path)
		return answers, err
	}

	err = yaml.Unmarshal(fileData, &answers)
	if err != nil {
		err = errors.Wrapf(err, "failed to parse answers file: %s", path)
		return answers, err
	}

	for i, a := range answers {
		if a.Key == "" {
			err = errors.Errorf("answer at index %d missing key", i)
			return answers, err
		}
	}

	return answers, err
}

// Save writes the form as YAML.
func Save(path string, form Form) (err error) {
	var data []byte
	data, err = yaml.Marshal(form)
	if err != nil {
		err = errors.Wrap(err, "failed to encode form")
		return err
	}

	err = os.WriteFile(path, data, 0600)
	if err != nil {
		err = errors.Wrapf(err, "failed to write form file: %s", path)
		return err
	}

	return err
}
