package milestones

import "fmt"

const (
	graduationSpan = 10
	employmentSpan = 15
)

// Option is a selectable year, optionally annotated with what usually happens in it.
type Option struct {
	Year int    `json:"year"`
	Note string `json:"note,omitempty"`
}

// String renders the option the way the year pickers show it, e.g. "2012年（大学）".
func (o Option) String() (s string) {
	if o.Note == "" {
		s = fmt.Sprintf("%d年", o.Year)
		return s
	}
	s = fmt.Sprintf("%d年（%s）", o.Year, o.Note)
	return s
}

// GraduationOptions lists the choices for an education entry's graduation year.
func GraduationOptions(m Milestones) (options []Option) {
	options = make([]Option, 0, 3+graduationSpan)
	options = append(options,
		Option{Year: m.HighSchoolGradYear, Note: "高校"},
		Option{Year: m.UniversityGradYear, Note: "大学"},
		Option{Year: m.GraduateStartYear, Note: "大学院"},
	)
	first := m.UniversityGradYear - 5
	for i := 0; i < graduationSpan; i++ {
		options = append(options, Option{Year: first + i})
	}
	return options
}

// StartYearOptions lists the choices for an experience entry's start year.
func StartYearOptions(m Milestones) (options []Option) {
	options = make([]Option, 0, 2+employmentSpan)
	options = append(options,
		Option{Year: m.EmploymentStartYear, Note: "新卒"},
		Option{Year: m.AlternateStartYear},
	)
	for i := 0; i < employmentSpan; i++ {
		options = append(options, Option{Year: m.EmploymentStartYear + i})
	}
	return options
}

// EndYearOptions lists the choices for an experience entry's end year.
// An unset end year means the position is current and is not part of the list.
func EndYearOptions(m Milestones) (options []Option) {
	options = make([]Option, 0, employmentSpan)
	for i := 1; i <= employmentSpan; i++ {
		options = append(options, Option{Year: m.EmploymentStartYear + i})
	}
	return options
}

// BirthDateLabel is the birth-date text filled in when only the age is known.
func BirthDateLabel(age int, m Milestones) (label string) {
	label = fmt.Sprintf("%d年生まれ（%d歳）", m.BirthYear, age)
	return label
}
