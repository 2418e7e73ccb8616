package resume

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/nikogura/resume-builder/pkg/milestones"
	"golang.org/x/text/width"
)

// Form is what the questionnaire collects before the answers are classified.
type Form struct {
	Name           string            `json:"name" yaml:"name" validate:"required,max=100"`
	Age            int               `json:"age,omitempty" yaml:"age,omitempty" validate:"omitempty,min=18,max=80"`
	BirthDate      string            `json:"birthDate,omitempty" yaml:"birthDate,omitempty" validate:"max=100"`
	Address        string            `json:"address,omitempty" yaml:"address,omitempty" validate:"max=200"`
	Phone          string            `json:"phone,omitempty" yaml:"phone,omitempty" validate:"omitempty,jp_phone"`
	Email          string            `json:"email,omitempty" yaml:"email,omitempty" validate:"omitempty,email"`
	Education      []EducationEntry  `json:"education,omitempty" yaml:"education,omitempty" validate:"dive"`
	Experience     []ExperienceEntry `json:"experience,omitempty" yaml:"experience,omitempty" validate:"dive"`
	Qualifications string            `json:"qualifications,omitempty" yaml:"qualifications,omitempty"`
	Skills         string            `json:"skills,omitempty" yaml:"skills,omitempty"`
	Summary        string            `json:"summary,omitempty" yaml:"summary,omitempty"`
}

// EducationEntry is one row of the education table.
type EducationEntry struct {
	Year       int    `json:"year,omitempty" yaml:"year,omitempty" validate:"omitempty,min=1900,max=2200"`
	School     string `json:"school" yaml:"school" validate:"max=100"`
	Department string `json:"department,omitempty" yaml:"department,omitempty" validate:"max=100"`
}

// ExperienceEntry is one row of the work-history table. A zero EndYear means the position is current.
type ExperienceEntry struct {
	StartYear   int    `json:"startYear,omitempty" yaml:"startYear,omitempty" validate:"omitempty,min=1900,max=2200"`
	EndYear     int    `json:"endYear,omitempty" yaml:"endYear,omitempty" validate:"omitempty,gtefield=StartYear,max=2200"`
	Company     string `json:"company" yaml:"company" validate:"max=100"`
	Position    string `json:"position,omitempty" yaml:"position,omitempty" validate:"max=100"`
	Description string `json:"description,omitempty" yaml:"description,omitempty" validate:"max=2000"`
}

// Text renders the entry as a single education line, or "" when the school is missing.
func (e EducationEntry) Text() (text string) {
	school := strings.TrimSpace(e.School)
	if school == "" {
		return text
	}

	parts := make([]string, 0, 4)
	if e.Year != 0 {
		parts = append(parts, strconv.Itoa(e.Year)+"年")
	}
	parts = append(parts, school)
	if dept := strings.TrimSpace(e.Department); dept != "" {
		parts = append(parts, dept)
	}
	parts = append(parts, "卒業")

	text = strings.Join(parts, " ")
	return text
}

// Text renders the entry as a single work-history line, or "" when the company is missing.
func (e ExperienceEntry) Text() (text string) {
	company := strings.TrimSpace(e.Company)
	if company == "" {
		return text
	}

	var period string
	switch {
	case e.StartYear != 0 && e.EndYear != 0:
		period = fmt.Sprintf("%d年〜%d年", e.StartYear, e.EndYear)
	case e.StartYear != 0:
		period = fmt.Sprintf("%d年〜現在", e.StartYear)
	}

	parts := make([]string, 0, 4)
	if period != "" {
		parts = append(parts, period)
	}
	parts = append(parts, company, "勤務")

	position := strings.TrimSpace(e.Position)
	description := strings.TrimSpace(e.Description)
	switch {
	case position != "" && description != "":
		parts = append(parts, position+": "+description)
	case position != "":
		parts = append(parts, position)
	case description != "":
		parts = append(parts, description)
	}

	text = strings.Join(parts, " ")
	return text
}

// Normalize folds full-width digits and symbols in the machine-readable fields to half-width.
func (f Form) Normalize() (normalized Form) {
	normalized = f
	normalized.Phone = normalizePhone(f.Phone)
	normalized.Email = strings.TrimSpace(width.Fold.String(f.Email))
	normalized.Name = strings.TrimSpace(f.Name)
	normalized.Address = strings.TrimSpace(f.Address)
	return normalized
}

// Answers turns the form into the ordered answer list the classifier consumes.
// The name is always the first answer so the first-question key identifies it.
func (f Form) Answers(referenceYear int) (answers []Answer) {
	f = f.Normalize()

	texts := make([]string, 0, 8+len(f.Education)+len(f.Experience))
	texts = append(texts, "名前は"+f.Name)

	birthDate := strings.TrimSpace(f.BirthDate)
	if birthDate == "" && f.Age > 0 {
		birthDate = milestones.BirthDateLabel(f.Age, milestones.Compute(f.Age, referenceYear))
	}
	if birthDate != "" {
		if !isFullDate(birthDate) {
			birthDate = BirthDateMarker + birthDate
		}
		texts = append(texts, birthDate)
	}

	if f.Address != "" {
		texts = append(texts, "住所は"+f.Address)
	}
	if f.Phone != "" {
		texts = append(texts, f.Phone)
	}
	if f.Email != "" {
		texts = append(texts, f.Email)
	}

	for _, entry := range f.Education {
		if text := entry.Text(); text != "" {
			texts = append(texts, text)
		}
	}
	for _, entry := range f.Experience {
		if text := entry.Text(); text != "" {
			texts = append(texts, text)
		}
	}

	for _, line := range splitLines(f.Qualifications) {
		texts = append(texts, "資格: "+line)
	}
	for _, line := range splitLines(f.Skills) {
		texts = append(texts, "スキル: "+line)
	}

	answers = make([]Answer, len(texts))
	for i, text := range texts {
		answers[i] = Answer{Key: strconv.Itoa(i + 1), Text: text}
	}
	return answers
}

// Prefill seeds a form with the graduation and first-job years implied by age.
func Prefill(age, referenceYear int) (f Form) {
	if age <= 0 {
		return f
	}

	m := milestones.Compute(age, referenceYear)
	f = Form{
		Age: age,
		Education: []EducationEntry{
			{Year: m.HighSchoolGradYear},
			{Year: m.UniversityGradYear},
		},
		Experience: []ExperienceEntry{
			{StartYear: m.EmploymentStartYear},
		},
	}
	return f
}

func isFullDate(text string) (ok bool) {
	ok = strings.Contains(text, "年") && strings.Contains(text, "月") && strings.Contains(text, "日")
	return ok
}

// splitLines splits free text on newlines and list bullets, dropping blanks.
func splitLines(text string) (lines []string) {
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		line = strings.TrimLeft(line, "・-* ")
		line = strings.TrimSpace(line)
		if line != "" {
			lines = append(lines, line)
		}
	}
	return lines
}

//nolint:gochecknoglobals // read-only replacement table
var phoneDashes = strings.NewReplacer("ー", "-", "−", "-", "‐", "-", "‑", "-", "–", "-", " ", "")

// normalizePhone folds to half-width, unifies dashes, and hyphenates bare 10 and 11 digit numbers.
func normalizePhone(phone string) (normalized string) {
	normalized = phoneDashes.Replace(strings.TrimSpace(width.Fold.String(phone)))
	if !isDigits(normalized) {
		return normalized
	}

	switch {
	case len(normalized) == 11:
		normalized = normalized[:3] + "-" + normalized[3:7] + "-" + normalized[7:]
	case len(normalized) == 10 && (strings.HasPrefix(normalized, "03") || strings.HasPrefix(normalized, "06")):
		normalized = normalized[:2] + "-" + normalized[2:6] + "-" + normalized[6:]
	case len(normalized) == 10:
		normalized = normalized[:3] + "-" + normalized[3:6] + "-" + normalized[6:]
	}
	return normalized
}

func isDigits(s string) (ok bool) {
	if s == "" {
		return ok
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return ok
		}
	}
	ok = true
	return ok
}
