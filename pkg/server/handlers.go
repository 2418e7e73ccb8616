package server

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/nikogura/resume-builder/pkg/classifier"
	"github.com/nikogura/resume-builder/pkg/export"
	"github.com/nikogura/resume-builder/pkg/llm"
	"github.com/nikogura/resume-builder/pkg/milestones"
	"github.com/nikogura/resume-builder/pkg/renderer"
	"github.com/nikogura/resume-builder/pkg/resume"
	"github.com/pkg/errors"
)

const (
	msgInvalidRequest = "Invalid request"
	msgInvalidType    = "Invalid type"
	msgEnhanceFailed  = "AI処理でエラーが発生しました"
	msgNotConfigured  = "AI機能が設定されていません"
	msgInvalidForm    = "入力内容に誤りがあります"
	msgExportFailed   = "エクスポートに失敗しました"
)

// MilestonesResponse is the body of GET /api/milestones.
type MilestonesResponse struct {
	Age               int                   `json:"age"`
	ReferenceYear     int                   `json:"referenceYear"`
	Milestones        milestones.Milestones `json:"milestones"`
	GraduationOptions []milestones.Option   `json:"graduationOptions"`
	StartYearOptions  []milestones.Option   `json:"startYearOptions"`
	EndYearOptions    []milestones.Option   `json:"endYearOptions"`
	BirthDateLabel    string                `json:"birthDateLabel"`
}

// PrefillRequest is the body of POST /api/prefill.
type PrefillRequest struct {
	Age int `json:"age"`
}

// ClassifyRequest is the body of POST /api/classify.
type ClassifyRequest struct {
	Answers []resume.Answer `json:"answers"`
}

// FormResponse is the body of a successful POST /api/form.
type FormResponse struct {
	Answers []resume.Answer `json:"answers"`
	Record  resume.Record   `json:"record"`
}

// PreviewRequest is the body of POST /api/preview.
type PreviewRequest struct {
	Record  resume.Record `json:"record"`
	Summary string        `json:"summary"`
}

// PreviewResponse is the body of a successful POST /api/preview.
type PreviewResponse struct {
	Resume   string `json:"resume"`
	Career   string `json:"career"`
	Markdown string `json:"markdown"`
}

// EnhanceResponse is the body of a successful POST /api/enhance.
type EnhanceResponse struct {
	Enhanced string `json:"enhanced"`
	Success  bool   `json:"success"`
}

// ExportRequest is the body of POST /api/export.
type ExportRequest struct {
	Record resume.Record `json:"record"`
}

func (s *Server) referenceYear() (year int) {
	year = s.now().Year()
	return year
}

func (s *Server) milestones(c *gin.Context) {
	age, err := strconv.Atoi(c.Query("age"))
	if err != nil {
		abort(c, http.StatusBadRequest, ErrorResponse{Error: msgInvalidRequest, Details: "age must be an integer"})
		return
	}

	year := s.referenceYear()
	if raw := c.Query("year"); raw != "" {
		year, err = strconv.Atoi(raw)
		if err != nil {
			abort(c, http.StatusBadRequest, ErrorResponse{Error: msgInvalidRequest, Details: "year must be an integer"})
			return
		}
	}

	m := milestones.Compute(age, year)
	c.JSON(http.StatusOK, MilestonesResponse{
		Age:               age,
		ReferenceYear:     year,
		Milestones:        m,
		GraduationOptions: milestones.GraduationOptions(m),
		StartYearOptions:  milestones.StartYearOptions(m),
		EndYearOptions:    milestones.EndYearOptions(m),
		BirthDateLabel:    milestones.BirthDateLabel(age, m),
	})
}

func (s *Server) prefill(c *gin.Context) {
	var req PrefillRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abort(c, http.StatusBadRequest, ErrorResponse{Error: msgInvalidRequest, Details: err.Error()})
		return
	}

	c.JSON(http.StatusOK, resume.Prefill(req.Age, s.referenceYear()))
}

func (s *Server) classify(c *gin.Context) {
	var req ClassifyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abort(c, http.StatusBadRequest, ErrorResponse{Error: msgInvalidRequest, Details: err.Error()})
		return
	}

	c.JSON(http.StatusOK, classifier.Classify(req.Answers))
}

func (s *Server) submitForm(c *gin.Context) {
	var form resume.Form
	if err := c.ShouldBindJSON(&form); err != nil {
		abort(c, http.StatusBadRequest, ErrorResponse{Error: msgInvalidRequest, Details: err.Error()})
		return
	}

	if err := form.Validate(); err != nil {
		abort(c, http.StatusBadRequest, ErrorResponse{Error: msgInvalidForm, Fields: resume.FieldErrors(err)})
		return
	}

	answers := form.Answers(s.referenceYear())
	c.JSON(http.StatusOK, FormResponse{
		Answers: answers,
		Record:  classifier.Classify(answers),
	})
}

func (s *Server) preview(c *gin.Context) {
	var req PreviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abort(c, http.StatusBadRequest, ErrorResponse{Error: msgInvalidRequest, Details: err.Error()})
		return
	}

	p := renderer.RenderPreview(req.Record, renderer.PreviewOptions{Summary: req.Summary})
	c.JSON(http.StatusOK, PreviewResponse{
		Resume:   p.Resume,
		Career:   p.Career,
		Markdown: p.Markdown(),
	})
}

func (s *Server) enhance(c *gin.Context) {
	var req llm.Request
	if err := c.ShouldBindJSON(&req); err != nil {
		abort(c, http.StatusBadRequest, ErrorResponse{Error: msgInvalidRequest, Details: err.Error()})
		return
	}

	if _, err := llm.ParseKind(string(req.Kind)); err != nil {
		abort(c, http.StatusBadRequest, ErrorResponse{Error: msgInvalidType})
		return
	}

	if s.enhancer == nil {
		abort(c, http.StatusServiceUnavailable, ErrorResponse{Error: msgNotConfigured})
		return
	}

	enhanced, err := s.enhancer.Enhance(c.Request.Context(), req)
	switch {
	case errors.Is(err, llm.ErrInvalidKind):
		abort(c, http.StatusBadRequest, ErrorResponse{Error: msgInvalidType})
		return
	case err != nil:
		_ = c.Error(err)
		abort(c, http.StatusInternalServerError, ErrorResponse{Error: msgEnhanceFailed, Details: err.Error()})
		return
	}

	c.JSON(http.StatusOK, EnhanceResponse{Enhanced: enhanced, Success: true})
}

func (s *Server) export(c *gin.Context) {
	format := export.FormatXLSX
	if raw := c.Query("format"); raw != "" {
		var err error
		format, err = export.ParseFormat(raw)
		if err != nil {
			abort(c, http.StatusBadRequest, ErrorResponse{Error: msgInvalidRequest, Details: err.Error()})
			return
		}
	}

	var req ExportRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abort(c, http.StatusBadRequest, ErrorResponse{Error: msgInvalidRequest, Details: err.Error()})
		return
	}

	artifact, err := s.exporter.Export(c.Request.Context(), req.Record, format)
	if err != nil {
		_ = c.Error(err)
		abort(c, http.StatusInternalServerError, ErrorResponse{Error: msgExportFailed, Details: err.Error()})
		return
	}

	c.Header("Content-Disposition", ContentDisposition(artifact.FileName))
	c.Data(http.StatusOK, artifact.ContentType, artifact.Data)
}

// ContentDisposition builds an attachment header that survives non-ASCII file names.
func ContentDisposition(fileName string) (header string) {
	header = "attachment; filename*=UTF-8''" + encodeExtValue(fileName)
	return header
}

// encodeExtValue percent-encodes every byte outside the RFC 5987 attr-char set.
func encodeExtValue(value string) (encoded string) {
	const hex = "0123456789ABCDEF"

	var b strings.Builder
	for i := 0; i < len(value); i++ {
		c := value[i]
		if isAttrChar(c) {
			b.WriteByte(c)
			continue
		}
		b.WriteByte('%')
		b.WriteByte(hex[c>>4])
		b.WriteByte(hex[c&0x0f])
	}
	encoded = b.String()
	return encoded
}

func isAttrChar(c byte) (ok bool) {
	switch {
	case 'a' <= c && c <= 'z', 'A' <= c && c <= 'Z', '0' <= c && c <= '9':
		ok = true
	default:
		ok = strings.IndexByte("!#$&+-.^_`|~", c) >= 0
	}
	return ok
}
