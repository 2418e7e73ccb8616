package milestones

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCompute(t *testing.T) {
	tests := []struct {
		name          string
		age           int
		referenceYear int
		expected      Milestones
	}{
		{
			name:          "typical age",
			age:           36,
			referenceYear: 2025,
			expected: Milestones{
				BirthYear:           1989,
				HighSchoolGradYear:  2007,
				UniversityGradYear:  2011,
				EmploymentStartYear: 2011,
				AlternateStartYear:  2012,
				GraduateStartYear:   2013,
			},
		},
		{
			name:          "zero age",
			age:           0,
			referenceYear: 2025,
			expected: Milestones{
				BirthYear:           2025,
				HighSchoolGradYear:  2043,
				UniversityGradYear:  2047,
				EmploymentStartYear: 2047,
				AlternateStartYear:  2048,
				GraduateStartYear:   2049,
			},
		},
		{
			name:          "negative age",
			age:           -5,
			referenceYear: 2000,
			expected: Milestones{
				BirthYear:           2005,
				HighSchoolGradYear:  2023,
				UniversityGradYear:  2027,
				EmploymentStartYear: 2027,
				AlternateStartYear:  2028,
				GraduateStartYear:   2029,
			},
		},
		{
			name:          "above the form range",
			age:           120,
			referenceYear: 2025,
			expected: Milestones{
				BirthYear:           1905,
				HighSchoolGradYear:  1923,
				UniversityGradYear:  1927,
				EmploymentStartYear: 1927,
				AlternateStartYear:  1928,
				GraduateStartYear:   1929,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Compute(tt.age, tt.referenceYear))
		})
	}
}

func TestComputeOffsetsAndOrdering(t *testing.T) {
	for _, referenceYear := range []int{-100, 0, 1999, 2025, 3000} {
		for age := -50; age <= 150; age += 7 {
			m := Compute(age, referenceYear)

			require.Equal(t, referenceYear-age, m.BirthYear)
			assert.Equal(t, m.BirthYear+18, m.HighSchoolGradYear)
			assert.Equal(t, m.BirthYear+22, m.UniversityGradYear)
			assert.Equal(t, m.BirthYear+22, m.EmploymentStartYear)
			assert.Equal(t, m.BirthYear+23, m.AlternateStartYear)
			assert.Equal(t, m.BirthYear+24, m.GraduateStartYear)

			assert.Less(t, m.HighSchoolGradYear, m.UniversityGradYear)
			assert.Equal(t, m.UniversityGradYear, m.EmploymentStartYear)
			assert.Less(t, m.EmploymentStartYear, m.AlternateStartYear)
			assert.Less(t, m.AlternateStartYear, m.GraduateStartYear)
		}
	}
}

func TestComputeIsDeterministic(t *testing.T) {
	assert.Equal(t, Compute(42, 2030), Compute(42, 2030))
}

func TestGraduationOptions(t *testing.T) {
	m := Compute(36, 2025)
	options := GraduationOptions(m)

	require.Len(t, options, 13)
	assert.Equal(t, Option{Year: 2007, Note: "高校"}, options[0])
	assert.Equal(t, Option{Year: 2011, Note: "大学"}, options[1])
	assert.Equal(t, Option{Year: 2013, Note: "大学院"}, options[2])
	assert.Equal(t, 2006, options[3].Year)
	assert.Equal(t, 2015, options[12].Year)
}

func TestStartAndEndYearOptions(t *testing.T) {
	m := Compute(30, 2025)

	start := StartYearOptions(m)
	require.Len(t, start, 17)
	assert.Equal(t, Option{Year: 2017, Note: "新卒"}, start[0])
	assert.Equal(t, Option{Year: 2018}, start[1])
	assert.Equal(t, 2017, start[2].Year)
	assert.Equal(t, 2031, start[16].Year)

	end := EndYearOptions(m)
	require.Len(t, end, 15)
	assert.Equal(t, 2018, end[0].Year)
	assert.Equal(t, 2032, end[14].Year)
}

func TestOptionString(t *testing.T) {
	assert.Equal(t, "2012年（大学）", Option{Year: 2012, Note: "大学"}.String())
	assert.Equal(t, "2012年", Option{Year: 2012}.String())
}

func TestBirthDateLabel(t *testing.T) {
	assert.Equal(t, "1989年生まれ（36歳）", BirthDateLabel(36, Compute(36, 2025)))
}
