// Package classifier files free-text answers under résumé fields by keyword.
//
// Every rule is checked against every answer, so one answer can land in several
// fields. Answers that match nothing are dropped; callers that need the raw text
// must keep the answer list themselves.
package classifier

import (
	"github.com/nikogura/resume-builder/pkg/resume"
)

// Classifier applies an ordered rule table to answer sets.
type Classifier struct {
	rules []Rule
}

// New creates a classifier over the given rules. With no rules it uses DefaultRules.
func New(rules ...Rule) (c Classifier) {
	if len(rules) == 0 {
		rules = DefaultRules()
	}
	c = Classifier{rules: rules}
	return c
}

// Classify builds a record from answers using the default rules.
func Classify(answers []resume.Answer) (record resume.Record) {
	record = New().Classify(answers)
	return record
}

// Classify builds a record from answers, scanning them in order.
func (c Classifier) Classify(answers []resume.Answer) (record resume.Record) {
	for _, answer := range answers {
		for _, rule := range c.rules {
			if rule.Match == nil || !rule.Match(answer) {
				continue
			}

			value := answer.Text
			if rule.Transform != nil {
				value = rule.Transform(value)
			}

			switch rule.Merge {
			case MergeAppend:
				appendTo(&record, rule.Category, value)
			default:
				assign(&record, rule.Category, value)
			}
		}
	}
	return record
}

func assign(record *resume.Record, category resume.Category, value string) {
	switch category {
	case resume.CategoryName:
		record.Name = value
	case resume.CategoryBirthDate:
		record.BirthDate = value
	case resume.CategoryAddress:
		record.Address = value
	case resume.CategoryPhone:
		record.Phone = value
	case resume.CategoryEmail:
		record.Email = value
	}
}

func appendTo(record *resume.Record, category resume.Category, value string) {
	switch category {
	case resume.CategoryEducation:
		record.Education = append(record.Education, value)
	case resume.CategoryExperience:
		record.Experience = append(record.Experience, value)
	case resume.CategoryQualifications:
		record.Qualifications = append(record.Qualifications, value)
	case resume.CategorySkills:
		record.Skills = append(record.Skills, value)
	}
}
