package export

import (
	"strings"
	"time"
	"unicode"

	"github.com/nikogura/resume-builder/pkg/resume"
)

// FilePrefix starts every exported file name.
const FilePrefix = "履歴書"

// BaseName returns 履歴書_<name>_<YYYY-MM-DD>, using the UTC date of now.
func BaseName(name string, now time.Time) (base string) {
	name = sanitizeName(name)
	if name == "" {
		name = resume.Placeholder
	}
	base = FilePrefix + "_" + name + "_" + now.UTC().Format("2006-01-02")
	return base
}

// FileName returns BaseName with the format's extension.
func FileName(name string, now time.Time, format Format) (fileName string) {
	fileName = BaseName(name, now) + "." + string(format)
	return fileName
}

// sanitizeName keeps the name readable but safe as a single path element.
func sanitizeName(name string) (sanitized string) {
	sanitized = strings.Map(func(r rune) (result rune) {
		switch {
		case r == '/' || r == '\\' || r == ':' || r == '*' || r == '?' || r == '"' || r == '<' || r == '>' || r == '|':
			result = '_'
		case unicode.IsControl(r):
			result = -1
		case unicode.IsSpace(r):
			result = ' '
		default:
			result = r
		}
		return result
	}, name)

	sanitized = strings.Join(strings.Fields(sanitized), " ")
	sanitized = strings.Trim(sanitized, ".")
	return sanitized
}
