package cmd

import (
	"fmt"
	"strings"
	"time"

	"github.com/nikogura/resume-builder/pkg/milestones"
	"github.com/spf13/cobra"
)

//nolint:gochecknoglobals // Cobra boilerplate
var milestonesAge int

//nolint:gochecknoglobals // Cobra boilerplate
var milestonesYear int

//nolint:gochecknoglobals // Cobra boilerplate
var milestonesCmd = &cobra.Command{
	Use:   "milestones",
	Short: "Show the school and employment years for an age",
	Long: `Show the birth year, graduation years, and first-job years derived from an
age, along with the year choices the form offers.

Example:
  resume-builder milestones --age 30
  resume-builder milestones --age 30 --year 2024`,
	Args: cobra.NoArgs,
	RunE: runMilestones,
}

//nolint:gochecknoinits // Cobra boilerplate
func init() {
	rootCmd.AddCommand(milestonesCmd)
	milestonesCmd.Flags().IntVar(&milestonesAge, "age", 0, "Age in years")
	milestonesCmd.Flags().IntVar(&milestonesYear, "year", 0, "Reference year (default current year)")
	_ = milestonesCmd.MarkFlagRequired("age")
}

func runMilestones(cmd *cobra.Command, args []string) (err error) {
	year := milestonesYear
	if year == 0 {
		year = time.Now().Year()
	}

	m := milestones.Compute(milestonesAge, year)

	fmt.Printf("生年月日:       %s\n", milestones.BirthDateLabel(milestonesAge, m))
	fmt.Printf("高校卒業:       %d年\n", m.HighSchoolGradYear)
	fmt.Printf("大学卒業:       %d年\n", m.UniversityGradYear)
	fmt.Printf("就職:           %d年\n", m.EmploymentStartYear)
	fmt.Printf("就職（浪人等）: %d年\n", m.AlternateStartYear)
	fmt.Printf("就職（大学院）: %d年\n", m.GraduateStartYear)
	fmt.Println()
	fmt.Printf("卒業年の候補: %s\n", joinOptions(milestones.GraduationOptions(m)))
	fmt.Printf("入社年の候補: %s\n", joinOptions(milestones.StartYearOptions(m)))
	fmt.Printf("退社年の候補: %s\n", joinOptions(milestones.EndYearOptions(m)))

	return err
}

func joinOptions(options []milestones.Option) (joined string) {
	parts := make([]string, 0, len(options))
	for _, o := range options {
		parts = append(parts, o.String())
	}
	joined = strings.Join(parts, ", ")
	return joined
}
