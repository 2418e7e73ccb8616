package resume

import "strings"

// Placeholder is shown wherever a scalar field was never filled in.
const Placeholder = "未入力"

// BirthDateMarker prefixes a birth date that lacks 年, 月 or 日 so the classifier still files it.
const BirthDateMarker = "生年月日: "

// Category is one of the résumé fields an answer can be filed under.
type Category string

const (
	CategoryName           Category = "name"
	CategoryBirthDate      Category = "birthDate"
	CategoryAddress        Category = "address"
	CategoryPhone          Category = "phone"
	CategoryEmail          Category = "email"
	CategoryEducation      Category = "education"
	CategoryExperience     Category = "experience"
	CategoryQualifications Category = "qualifications"
	CategorySkills         Category = "skills"
)

// Categories returns every category in classification order.
func Categories() (categories []Category) {
	categories = []Category{
		CategoryName,
		CategoryBirthDate,
		CategoryAddress,
		CategoryPhone,
		CategoryEmail,
		CategoryEducation,
		CategoryExperience,
		CategoryQualifications,
		CategorySkills,
	}
	return categories
}

// IsList reports whether the category accumulates entries instead of holding one value.
func (c Category) IsList() (list bool) {
	switch c {
	case CategoryEducation, CategoryExperience, CategoryQualifications, CategorySkills:
		list = true
	}
	return list
}

// Label returns the heading used for the category on the printed résumé.
func (c Category) Label() (label string) {
	switch c {
	case CategoryName:
		label = "氏名"
	case CategoryBirthDate:
		label = "生年月日"
	case CategoryAddress:
		label = "住所"
	case CategoryPhone:
		label = "電話番号"
	case CategoryEmail:
		label = "メールアドレス"
	case CategoryEducation:
		label = "学歴"
	case CategoryExperience:
		label = "職歴"
	case CategoryQualifications:
		label = "資格・免許"
	case CategorySkills:
		label = "スキル・特技"
	default:
		label = string(c)
	}
	return label
}

// Answer is one free-text response, keyed by the question that produced it.
type Answer struct {
	Key  string `json:"key" yaml:"key"`
	Text string `json:"text" yaml:"text"`
}

// Record is the structured résumé assembled from a full set of answers.
type Record struct {
	Name           string   `json:"name,omitempty" yaml:"name,omitempty"`
	BirthDate      string   `json:"birthDate,omitempty" yaml:"birthDate,omitempty"`
	Address        string   `json:"address,omitempty" yaml:"address,omitempty"`
	Phone          string   `json:"phone,omitempty" yaml:"phone,omitempty"`
	Email          string   `json:"email,omitempty" yaml:"email,omitempty"`
	Education      []string `json:"education,omitempty" yaml:"education,omitempty"`
	Experience     []string `json:"experience,omitempty" yaml:"experience,omitempty"`
	Qualifications []string `json:"qualifications,omitempty" yaml:"qualifications,omitempty"`
	Skills         []string `json:"skills,omitempty" yaml:"skills,omitempty"`
}

// Scalar returns the value of a single-valued category, or "" for list categories.
func (r Record) Scalar(c Category) (value string) {
	switch c {
	case CategoryName:
		value = r.Name
	case CategoryBirthDate:
		value = r.BirthDate
	case CategoryAddress:
		value = r.Address
	case CategoryPhone:
		value = r.Phone
	case CategoryEmail:
		value = r.Email
	}
	return value
}

// ScalarOr returns the scalar value for display, or placeholder when it is empty.
// The birth date is returned without its BirthDateMarker.
func (r Record) ScalarOr(c Category, placeholder string) (value string) {
	value = r.Scalar(c)
	if c == CategoryBirthDate {
		value = strings.TrimSpace(strings.TrimPrefix(value, BirthDateMarker))
	}
	if value == "" {
		value = placeholder
	}
	return value
}

// List returns the entries of a list category, or nil for scalar categories.
func (r Record) List(c Category) (entries []string) {
	switch c {
	case CategoryEducation:
		entries = r.Education
	case CategoryExperience:
		entries = r.Experience
	case CategoryQualifications:
		entries = r.Qualifications
	case CategorySkills:
		entries = r.Skills
	}
	return entries
}

// Has reports whether the category was populated by at least one answer.
func (r Record) Has(c Category) (ok bool) {
	if c.IsList() {
		ok = len(r.List(c)) > 0
		return ok
	}
	ok = r.Scalar(c) != ""
	return ok
}

// IsEmpty reports whether no category is populated.
func (r Record) IsEmpty() (empty bool) {
	for _, c := range Categories() {
		if r.Has(c) {
			return empty
		}
	}
	empty = true
	return empty
}
