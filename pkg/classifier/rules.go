package classifier

import (
	"regexp"
	"strings"

	"github.com/nikogura/resume-builder/pkg/resume"
)

// FirstQuestionKey identifies the answer to the opening question, which always asks for the name.
const FirstQuestionKey = "1"

// Merge says how a matched answer is folded into the record.
type Merge int

const (
	// MergeReplace overwrites the field; the last matching answer wins.
	MergeReplace Merge = iota
	// MergeAppend adds the answer to the field's list in scan order.
	MergeAppend
)

// Rule files answers that satisfy Match under Category.
type Rule struct {
	Category  resume.Category
	Match     func(answer resume.Answer) bool
	Merge     Merge
	Transform func(text string) string
}

var (
	namePrefix    = regexp.MustCompile(`名前は?`)
	addressPrefix = regexp.MustCompile(`住所は?`)
	phonePattern  = regexp.MustCompile(`[0-9]{2,4}-[0-9]{2,4}-[0-9]{4}`)
)

// DefaultRules returns the keyword table used by Classify, in evaluation order.
func DefaultRules() (rules []Rule) {
	rules = []Rule{
		{
			Category: resume.CategoryName,
			Match: func(a resume.Answer) bool {
				return strings.Contains(a.Text, "名前") || a.Key == FirstQuestionKey
			},
			Merge:     MergeReplace,
			Transform: stripPattern(namePrefix),
		},
		{
			Category: resume.CategoryBirthDate,
			Match:    containsAll("年", "月", "日"),
			Merge:    MergeReplace,
		},
		{
			Category:  resume.CategoryAddress,
			Match:     containsAny("住所", "県", "市"),
			Merge:     MergeReplace,
			Transform: stripPattern(addressPrefix),
		},
		{
			Category: resume.CategoryPhone,
			Match: func(a resume.Answer) bool {
				return phonePattern.MatchString(a.Text)
			},
			Merge: MergeReplace,
		},
		{
			Category: resume.CategoryEmail,
			Match:    containsAny("@"),
			Merge:    MergeReplace,
		},
		{
			Category: resume.CategoryEducation,
			Match:    containsAny("大学", "学校", "卒業"),
			Merge:    MergeAppend,
		},
		{
			Category: resume.CategoryExperience,
			Match:    containsAny("会社", "勤務", "職歴"),
			Merge:    MergeAppend,
		},
		{
			Category: resume.CategoryQualifications,
			Match:    containsAny("資格", "検定", "免許"),
			Merge:    MergeAppend,
		},
		{
			Category: resume.CategorySkills,
			Match:    containsAny("スキル", "技術", "得意"),
			Merge:    MergeAppend,
		},
	}
	return rules
}

func containsAny(keywords ...string) func(resume.Answer) bool {
	return func(a resume.Answer) bool {
		for _, k := range keywords {
			if strings.Contains(a.Text, k) {
				return true
			}
		}
		return false
	}
}

func containsAll(keywords ...string) func(resume.Answer) bool {
	return func(a resume.Answer) bool {
		for _, k := range keywords {
			if !strings.Contains(a.Text, k) {
				return false
			}
		}
		return true
	}
}

func stripPattern(pattern *regexp.Regexp) func(string) string {
	return func(text string) string {
		return strings.TrimSpace(pattern.ReplaceAllString(text, ""))
	}
}
