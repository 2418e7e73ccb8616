// Package milestones derives the school and employment years a Japanese résumé
// asks for from a person's age.
//
// The timeline is fixed: high school ends at 18, university at 22 with work
// starting the same year, and the two common delays (one extra year, or a
// two-year master's) start work at 23 and 24.
package milestones

const (
	highSchoolGradOffset  = 18
	universityGradOffset  = 22
	employmentStartOffset = 22
	alternateStartOffset  = 23
	graduateStartOffset   = 24
)

// Milestones holds the derived years. Every field is BirthYear plus a fixed offset.
type Milestones struct {
	BirthYear           int `json:"birthYear"`
	HighSchoolGradYear  int `json:"highSchoolGradYear"`
	UniversityGradYear  int `json:"universityGradYear"`
	EmploymentStartYear int `json:"employmentStartYear"`
	AlternateStartYear  int `json:"alternateStartYear"`
	GraduateStartYear   int `json:"graduateStartYear"`
}

// Compute derives milestones for someone who is age years old in referenceYear.
// Any integer is accepted, including zero and negative ages; month and day are ignored.
func Compute(age, referenceYear int) (m Milestones) {
	birthYear := referenceYear - age
	m = Milestones{
		BirthYear:           birthYear,
		HighSchoolGradYear:  birthYear + highSchoolGradOffset,
		UniversityGradYear:  birthYear + universityGradOffset,
		EmploymentStartYear: birthYear + employmentStartOffset,
		AlternateStartYear:  birthYear + alternateStartOffset,
		GraduateStartYear:   birthYear + graduateStartOffset,
	}
	return m
}
