package export

import (
	"strconv"

	"github.com/nikogura/resume-builder/pkg/resume"
)

const (
	ResumeSheetName = "履歴書"
	CareerSheetName = "職務経歴書"
)

func scalar(r resume.Record, c resume.Category) (value string) {
	value = r.ScalarOr(c, resume.Placeholder)
	return value
}

// numbered returns one row per entry, labelled prefix1, prefix2, ...
func numbered(prefix string, entries []string) (rows []Row) {
	for i, entry := range entries {
		rows = append(rows, Row{prefix + strconv.Itoa(i+1), entry})
	}
	return rows
}

// ResumeSheet lays out the 履歴書 worksheet.
func ResumeSheet(r resume.Record) (sheet Sheet) {
	rows := []Row{
		{ResumeSheetName},
		{""},
		{"基本情報"},
	}
	for _, c := range []resume.Category{
		resume.CategoryName,
		resume.CategoryBirthDate,
		resume.CategoryAddress,
		resume.CategoryPhone,
		resume.CategoryEmail,
	} {
		rows = append(rows, Row{c.Label(), scalar(r, c)})
	}

	for _, c := range []resume.Category{
		resume.CategoryEducation,
		resume.CategoryExperience,
		resume.CategoryQualifications,
		resume.CategorySkills,
	} {
		rows = append(rows, Row{""}, Row{c.Label()})
		rows = append(rows, numbered("", r.List(c))...)
	}

	sheet = Sheet{Name: ResumeSheetName, Rows: rows}
	return sheet
}

// CareerSheet lays out the 職務経歴書 worksheet.
func CareerSheet(r resume.Record) (sheet Sheet) {
	rows := []Row{
		{CareerSheetName},
		{""},
		{"基本情報"},
		{resume.CategoryName.Label(), scalar(r, resume.CategoryName)},
		{resume.CategoryBirthDate.Label(), scalar(r, resume.CategoryBirthDate)},
		{"連絡先", scalar(r, resume.CategoryPhone)},
		{resume.CategoryEmail.Label(), scalar(r, resume.CategoryEmail)},
		{""},
		{"職務経歴"},
	}
	rows = append(rows, numbered("職歴", r.Experience)...)
	rows = append(rows, Row{""}, Row{"保有スキル・技術"})
	rows = append(rows, numbered("スキル", r.Skills)...)
	rows = append(rows, Row{""}, Row{"保有資格"})
	rows = append(rows, numbered("資格", r.Qualifications)...)

	sheet = Sheet{Name: CareerSheetName, Rows: rows}
	return sheet
}

// CSVSheet lays out the single-table CSV export.
func CSVSheet(r resume.Record) (sheet Sheet) {
	rows := []Row{{"項目", "内容"}}
	for _, c := range []resume.Category{
		resume.CategoryName,
		resume.CategoryBirthDate,
		resume.CategoryAddress,
		resume.CategoryPhone,
		resume.CategoryEmail,
	} {
		rows = append(rows, Row{c.Label(), scalar(r, c)})
	}

	sections := []struct {
		category resume.Category
		prefix   string
	}{
		{resume.CategoryEducation, "学歴"},
		{resume.CategoryExperience, "職歴"},
		{resume.CategoryQualifications, "資格"},
		{resume.CategorySkills, "スキル"},
	}
	for _, s := range sections {
		rows = append(rows, Row{""}, Row{s.category.Label(), ""})
		rows = append(rows, numbered(s.prefix, r.List(s.category))...)
	}

	sheet = Sheet{Name: ResumeSheetName, Rows: rows}
	return sheet
}
