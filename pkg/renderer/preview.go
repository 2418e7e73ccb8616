package renderer

import (
	"strings"

	"github.com/nikogura/resume-builder/pkg/resume"
)

// PageBreak separates the two documents in combined markdown; pandoc's LaTeX writer honours it.
const PageBreak = "\n\\newpage\n\n"

// PreviewOptions holds content that is not part of the classified record.
type PreviewOptions struct {
	Summary string
}

// Preview is the rendered pair of documents.
type Preview struct {
	Resume string `json:"resume"`
	Career string `json:"career"`
}

// Markdown joins both documents into one file.
func (p Preview) Markdown() (md string) {
	md = p.Resume + PageBreak + p.Career
	return md
}

// RenderPreview renders the 履歴書 and 職務経歴書 markdown for record.
func RenderPreview(record resume.Record, opts PreviewOptions) (preview Preview) {
	preview = Preview{
		Resume: renderResume(record),
		Career: renderCareer(record, opts),
	}
	return preview
}

func missing(c resume.Category) (text string) {
	text = c.Label() + resume.Placeholder
	return text
}

func renderResume(r resume.Record) (md string) {
	var b strings.Builder

	b.WriteString("# 履歴書\n\n")
	b.WriteString("## " + r.ScalarOr(resume.CategoryName, missing(resume.CategoryName)) + "\n\n")

	for _, c := range []resume.Category{
		resume.CategoryBirthDate,
		resume.CategoryAddress,
		resume.CategoryPhone,
		resume.CategoryEmail,
	} {
		b.WriteString("- **" + c.Label() + "**: " + r.ScalarOr(c, missing(c)) + "\n")
	}
	b.WriteString("\n")

	writeSection(&b, "###", resume.CategoryEducation.Label(), r.Education, missing(resume.CategoryEducation))
	writeSection(&b, "###", resume.CategoryExperience.Label(), r.Experience, missing(resume.CategoryExperience))

	if r.Has(resume.CategoryQualifications) {
		writeSection(&b, "###", resume.CategoryQualifications.Label(), r.Qualifications, "")
	}
	if r.Has(resume.CategorySkills) {
		writeSection(&b, "###", resume.CategorySkills.Label(), r.Skills, "")
	}

	md = b.String()
	return md
}

func renderCareer(r resume.Record, opts PreviewOptions) (md string) {
	var b strings.Builder

	b.WriteString("# 職務経歴書\n\n")
	b.WriteString("## " + r.ScalarOr(resume.CategoryName, missing(resume.CategoryName)) + "\n\n")
	b.WriteString(r.ScalarOr(resume.CategoryEmail, missing(resume.CategoryEmail)) +
		" | " + r.ScalarOr(resume.CategoryPhone, missing(resume.CategoryPhone)) + "\n\n")

	if summary := strings.TrimSpace(opts.Summary); summary != "" {
		b.WriteString("### 自己PR\n\n" + summary + "\n\n")
	}

	writeSection(&b, "###", "職歴・経験", r.Experience, missing(resume.CategoryExperience))

	if r.Has(resume.CategorySkills) || r.Has(resume.CategoryQualifications) {
		b.WriteString("### 保有スキル\n\n")
		if r.Has(resume.CategorySkills) {
			writeSection(&b, "####", "技術・スキル", r.Skills, "")
		}
		if r.Has(resume.CategoryQualifications) {
			writeSection(&b, "####", resume.CategoryQualifications.Label(), r.Qualifications, "")
		}
	}

	writeSection(&b, "###", resume.CategoryEducation.Label(), r.Education, missing(resume.CategoryEducation))

	md = b.String()
	return md
}

// writeSection writes a heading and one bullet per non-blank line of entries, or placeholder when there are none.
func writeSection(b *strings.Builder, level, title string, entries []string, placeholder string) {
	b.WriteString(level + " " + title + "\n\n")

	lines := splitEntries(entries)
	if len(lines) == 0 {
		b.WriteString(placeholder + "\n\n")
		return
	}

	for _, line := range lines {
		b.WriteString("- " + line + "\n")
	}
	b.WriteString("\n")
}

func splitEntries(entries []string) (lines []string) {
	for _, entry := range entries {
		for _, line := range strings.Split(entry, "\n") {
			if line = strings.TrimSpace(line); line != "" {
				lines = append(lines, line)
			}
		}
	}
	return lines
}
