package server

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/nikogura/resume-builder/pkg/export"
	"github.com/nikogura/resume-builder/pkg/llm"
	"github.com/nikogura/resume-builder/pkg/milestones"
	"github.com/nikogura/resume-builder/pkg/resume"
	"github.com/pkg/errors"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type mockEnhancer struct {
	mock.Mock
}

func (m *mockEnhancer) Enhance(ctx context.Context, req llm.Request) (string, error) {
	args := m.Called(ctx, req)
	return args.String(0), args.Error(1)
}

func fixedNow() time.Time {
	return time.Date(2025, time.June, 1, 9, 0, 0, 0, time.UTC)
}

func newTestRouter(enhancer llm.Enhancer) *gin.Engine {
	gin.SetMode(gin.TestMode)

	exporter := export.NewExporter()
	exporter.Now = fixedNow

	s := New(Deps{
		Enhancer: enhancer,
		Exporter: exporter,
		Logger:   zerolog.Nop(),
		Now:      fixedNow,
	})
	return s.Router()
}

func doJSON(t *testing.T, r http.Handler, method, target string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}

	req := httptest.NewRequest(method, target, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decode(t *testing.T, w *httptest.ResponseRecorder, v interface{}) {
	t.Helper()
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), v))
}

func TestHealthz(t *testing.T) {
	r := newTestRouter(nil)

	w := doJSON(t, r, http.MethodGet, "/healthz", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"status":"ok"}`, w.Body.String())
	assert.NotEmpty(t, w.Header().Get(RequestIDHeader))
}

func TestRequestIDIsEchoed(t *testing.T) {
	r := newTestRouter(nil)

	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	req.Header.Set(RequestIDHeader, "abc-123")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, "abc-123", w.Header().Get(RequestIDHeader))
}

func TestMilestones(t *testing.T) {
	r := newTestRouter(nil)

	w := doJSON(t, r, http.MethodGet, "/api/milestones?age=30", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var resp MilestonesResponse
	decode(t, w, &resp)

	assert.Equal(t, 2025, resp.ReferenceYear)
	assert.Equal(t, milestones.Compute(30, 2025), resp.Milestones)
	assert.Equal(t, 1995, resp.Milestones.BirthYear)
	assert.Equal(t, "1995年生まれ（30歳）", resp.BirthDateLabel)
	assert.Len(t, resp.GraduationOptions, 13)
	assert.Len(t, resp.StartYearOptions, 17)
	assert.Len(t, resp.EndYearOptions, 15)
	assert.Equal(t, milestones.Option{Year: 2017, Note: "大学"}, resp.GraduationOptions[1])
}

func TestMilestonesExplicitYear(t *testing.T) {
	r := newTestRouter(nil)

	w := doJSON(t, r, http.MethodGet, "/api/milestones?age=25&year=2030", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var resp MilestonesResponse
	decode(t, w, &resp)
	assert.Equal(t, 2005, resp.Milestones.BirthYear)
}

func TestMilestonesInvalidInput(t *testing.T) {
	r := newTestRouter(nil)

	for _, target := range []string{
		"/api/milestones",
		"/api/milestones?age=abc",
		"/api/milestones?age=30&year=next",
	} {
		w := doJSON(t, r, http.MethodGet, target, nil)
		assert.Equal(t, http.StatusBadRequest, w.Code, target)
	}
}

func TestPrefill(t *testing.T) {
	r := newTestRouter(nil)

	w := doJSON(t, r, http.MethodPost, "/api/prefill", PrefillRequest{Age: 30})
	require.Equal(t, http.StatusOK, w.Code)

	var form resume.Form
	decode(t, w, &form)
	assert.Equal(t, resume.Prefill(30, 2025), form)
}

func TestClassify(t *testing.T) {
	r := newTestRouter(nil)

	w := doJSON(t, r, http.MethodPost, "/api/classify", ClassifyRequest{Answers: []resume.Answer{
		{Key: "1", Text: "名前は山田太郎"},
		{Key: "2", Text: "090-1234-5678"},
	}})
	require.Equal(t, http.StatusOK, w.Code)

	var record resume.Record
	decode(t, w, &record)
	assert.Equal(t, "山田太郎", record.Name)
	assert.Equal(t, "090-1234-5678", record.Phone)
}

func TestClassifyMalformedBody(t *testing.T) {
	r := newTestRouter(nil)

	req := httptest.NewRequest(http.MethodPost, "/api/classify", bytes.NewBufferString("{"))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)

	var resp ErrorResponse
	decode(t, w, &resp)
	assert.Equal(t, msgInvalidRequest, resp.Error)
	assert.NotEmpty(t, resp.RequestID)
}

func TestSubmitForm(t *testing.T) {
	r := newTestRouter(nil)

	w := doJSON(t, r, http.MethodPost, "/api/form", resume.Form{
		Name:       "山田太郎",
		Age:        36,
		Phone:      "０６－１２３４－５６７８",
		Education:  []resume.EducationEntry{{Year: 2011, School: "○○大学"}},
		Experience: []resume.ExperienceEntry{{StartYear: 2011, Company: "株式会社A"}},
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var resp FormResponse
	decode(t, w, &resp)
	assert.Equal(t, "名前は山田太郎", resp.Answers[0].Text)
	assert.Equal(t, "山田太郎", resp.Record.Name)
	assert.Equal(t, "生年月日: 1989年生まれ（36歳）", resp.Record.BirthDate)
	assert.Equal(t, "06-1234-5678", resp.Record.Phone)
	assert.Equal(t, []string{"2011年 ○○大学 卒業"}, resp.Record.Education)
	assert.Equal(t, []string{"2011年〜現在 株式会社A 勤務"}, resp.Record.Experience)
}

func TestSubmitFormValidationFailure(t *testing.T) {
	r := newTestRouter(nil)

	w := doJSON(t, r, http.MethodPost, "/api/form", resume.Form{
		Email:      "not-an-email",
		Experience: []resume.ExperienceEntry{{StartYear: 2015, EndYear: 2010, Company: "株式会社A"}},
	})
	require.Equal(t, http.StatusBadRequest, w.Code)

	var resp ErrorResponse
	decode(t, w, &resp)
	assert.Equal(t, msgInvalidForm, resp.Error)
	assert.Equal(t, "required", resp.Fields["Name"])
	assert.Equal(t, "email", resp.Fields["Email"])
	assert.Equal(t, "gtefield", resp.Fields["Experience[0].EndYear"])
}

func TestPreview(t *testing.T) {
	r := newTestRouter(nil)

	w := doJSON(t, r, http.MethodPost, "/api/preview", PreviewRequest{
		Record:  resume.Record{Name: "山田太郎"},
		Summary: "営業一筋",
	})
	require.Equal(t, http.StatusOK, w.Code)

	var resp PreviewResponse
	decode(t, w, &resp)
	assert.Contains(t, resp.Resume, "## 山田太郎")
	assert.Contains(t, resp.Career, "### 自己PR\n\n営業一筋\n")
	assert.Equal(t, resp.Resume+"\n\\newpage\n\n"+resp.Career, resp.Markdown)
}

func TestEnhance(t *testing.T) {
	enhancer := &mockEnhancer{}
	req := llm.Request{
		Kind:  llm.KindSuggestSkills,
		Input: "営業",
		Hints: llm.Hints{Age: 30, Experience: "法人営業"},
	}
	enhancer.On("Enhance", mock.Anything, req).Return("・交渉力", nil)

	r := newTestRouter(enhancer)
	w := doJSON(t, r, http.MethodPost, "/api/enhance", map[string]interface{}{
		"type":     "suggest_skills",
		"input":    "営業",
		"userInfo": map[string]interface{}{"age": 30, "experience": "法人営業"},
	})

	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"enhanced":"・交渉力","success":true}`, w.Body.String())
	enhancer.AssertExpectations(t)
}

func TestEnhanceInvalidType(t *testing.T) {
	enhancer := &mockEnhancer{}
	r := newTestRouter(enhancer)

	w := doJSON(t, r, http.MethodPost, "/api/enhance", map[string]string{"type": "translate", "input": "x"})

	assert.Equal(t, http.StatusBadRequest, w.Code)
	var resp ErrorResponse
	decode(t, w, &resp)
	assert.Equal(t, "Invalid type", resp.Error)
	enhancer.AssertNotCalled(t, "Enhance", mock.Anything, mock.Anything)
}

func TestEnhanceFailure(t *testing.T) {
	enhancer := &mockEnhancer{}
	enhancer.On("Enhance", mock.Anything, mock.Anything).Return("", errors.New("upstream timeout"))

	r := newTestRouter(enhancer)
	w := doJSON(t, r, http.MethodPost, "/api/enhance", map[string]string{"type": "generate_summary", "input": "x"})

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	var resp ErrorResponse
	decode(t, w, &resp)
	assert.Equal(t, "AI処理でエラーが発生しました", resp.Error)
	assert.Equal(t, "upstream timeout", resp.Details)
}

func TestEnhanceNotConfigured(t *testing.T) {
	r := newTestRouter(nil)

	w := doJSON(t, r, http.MethodPost, "/api/enhance", map[string]string{"type": "generate_summary", "input": "x"})

	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
}

func TestExportCSV(t *testing.T) {
	r := newTestRouter(nil)

	w := doJSON(t, r, http.MethodPost, "/api/export?format=csv", ExportRequest{Record: resume.Record{Name: "山田太郎"}})
	require.Equal(t, http.StatusOK, w.Code)

	assert.Equal(t, export.ContentTypeCSV, w.Header().Get("Content-Type"))
	assert.Equal(t,
		"attachment; filename*=UTF-8''"+encodeExtValue("履歴書_山田太郎_2025-06-01.csv"),
		w.Header().Get("Content-Disposition"))
	assert.Contains(t, w.Body.String(), `"山田太郎"`)
}

func TestExportDefaultsToExcel(t *testing.T) {
	r := newTestRouter(nil)

	w := doJSON(t, r, http.MethodPost, "/api/export", ExportRequest{Record: resume.Record{Name: "山田太郎"}})
	require.Equal(t, http.StatusOK, w.Code)

	assert.Equal(t, export.ContentTypeXLSX, w.Header().Get("Content-Type"))
	assert.Contains(t, w.Header().Get("Content-Disposition"), ".xlsx")
	assert.Equal(t, "PK", w.Body.String()[:2])
}

func TestExportUnsupportedFormat(t *testing.T) {
	r := newTestRouter(nil)

	w := doJSON(t, r, http.MethodPost, "/api/export?format=pdf", ExportRequest{})

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestContentDisposition(t *testing.T) {
	tests := []struct {
		name     string
		fileName string
		expected string
	}{
		{"japanese and space", "履歴書_a b.csv", "%E5%B1%A5%E6%AD%B4%E6%9B%B8_a%20b.csv"},
		{"equals and at sign", "a=b@c.xlsx", "a%3Db%40c.xlsx"},
		{"attr chars kept", "a!#$&+-.^_`|~z", "a!#$&+-.^_`|~z"},
		{"separators and quotes", `a;b,"c"'d(e).csv`, "a%3Bb%2C%22c%22%27d%28e%29.csv"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, "attachment; filename*=UTF-8''"+tt.expected, ContentDisposition(tt.fileName))
		})
	}
}
