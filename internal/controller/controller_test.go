package controller

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"mime/multipart"
	"net/http/httptest"
	"strings"
	"testing"

	"ai-interview-be/internal/dto"
	"ai-interview-be/internal/pkg/serverutils"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeInterviewService struct {
	created *dto.CreateInterviewRequest
	updated *dto.UpdateInterviewRequest
	query   *dto.ListInterviewsQuery
}

func (f *fakeInterviewService) Create(_ context.Context, req *dto.CreateInterviewRequest) (*dto.InterviewResponse, error) {
	f.created = req
	return &dto.InterviewResponse{Id: uuid.New(), SessionType: req.SessionType, Status: "created"}, nil
}

func (f *fakeInterviewService) GetAll(_ context.Context, query *dto.ListInterviewsQuery) ([]*dto.InterviewListItem, error) {
	f.query = query
	return []*dto.InterviewListItem{}, nil
}

func (f *fakeInterviewService) Show(_ context.Context, id uuid.UUID) (*dto.InterviewResponse, error) {
	return nil, serverutils.NewNotFoundError("Session not found")
}

func (f *fakeInterviewService) Update(_ context.Context, req *dto.UpdateInterviewRequest) (*dto.InterviewResponse, error) {
	f.updated = req
	return &dto.InterviewResponse{Id: req.Id, Status: *req.Status}, nil
}

func (f *fakeInterviewService) GetEmotions(_ context.Context, id uuid.UUID) ([]*dto.EmotionSnapshotResponse, error) {
	return []*dto.EmotionSnapshotResponse{}, nil
}

type fakeResumeService struct {
	filename string
	size     int
}

func (f *fakeResumeService) Upload(_ context.Context, filename string, data []byte) (*dto.ResumeAnalysisResponse, error) {
	f.filename = filename
	f.size = len(data)
	return &dto.ResumeAnalysisResponse{RawText: "text"}, nil
}

func (f *fakeResumeService) Analyze(_ context.Context, req *dto.AnalyzeResumeRequest) (*dto.AnalyzeResumeResponse, error) {
	return &dto.AnalyzeResumeResponse{JobTitle: req.JobTitle, Ready: true}, nil
}

func newTestApp(register ...func(fiber.Router)) *fiber.App {
	app := fiber.New()
	app.Use(serverutils.ErrorHandlerMiddleware())
	api := app.Group("/api")
	for _, r := range register {
		r(api)
	}
	return app
}

func decode(t *testing.T, body io.Reader) serverutils.BaseResponse[json.RawMessage] {
	t.Helper()
	raw, err := io.ReadAll(body)
	require.NoError(t, err)
	var res serverutils.BaseResponse[json.RawMessage]
	require.NoError(t, json.Unmarshal(raw, &res))
	return res
}

func TestCreateInterview(t *testing.T) {
	svc := &fakeInterviewService{}
	app := newTestApp(NewInterviewController(svc).RegisterRoutes)

	req := httptest.NewRequest("POST", "/api/interviews", strings.NewReader(`{"session_type":"topic","difficulty":"advanced"}`))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	require.NoError(t, err)

	assert.Equal(t, fiber.StatusCreated, resp.StatusCode)
	require.NotNil(t, svc.created)
	assert.Equal(t, "advanced", svc.created.Difficulty)
	assert.True(t, decode(t, resp.Body).Success)
}

func TestCreateInterviewRejectsUnknownType(t *testing.T) {
	svc := &fakeInterviewService{}
	app := newTestApp(NewInterviewController(svc).RegisterRoutes)

	req := httptest.NewRequest("POST", "/api/interviews", strings.NewReader(`{"session_type":"panel"}`))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	require.NoError(t, err)

	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	assert.Nil(t, svc.created)
}

func TestListInterviewsParsesQuery(t *testing.T) {
	svc := &fakeInterviewService{}
	app := newTestApp(NewInterviewController(svc).RegisterRoutes)

	resp, err := app.Test(httptest.NewRequest("GET", "/api/interviews?status=completed&limit=5&page=2", nil))
	require.NoError(t, err)

	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	require.NotNil(t, svc.query)
	assert.Equal(t, "completed", svc.query.Status)
	assert.Equal(t, 5, svc.query.Limit)
	assert.Equal(t, 2, svc.query.Page)
}

func TestShowInterviewNotFound(t *testing.T) {
	app := newTestApp(NewInterviewController(&fakeInterviewService{}).RegisterRoutes)

	for _, path := range []string{"/api/interviews/not-a-uuid", "/api/interviews/" + uuid.NewString()} {
		resp, err := app.Test(httptest.NewRequest("GET", path, nil))
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusNotFound, resp.StatusCode, path)
		assert.Equal(t, "Session not found", decode(t, resp.Body).Message)
	}
}

func TestUpdateInterviewUsesPathID(t *testing.T) {
	svc := &fakeInterviewService{}
	app := newTestApp(NewInterviewController(svc).RegisterRoutes)
	id := uuid.New()

	req := httptest.NewRequest("PATCH", "/api/interviews/"+id.String(), strings.NewReader(`{"status":"completed"}`))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	require.NoError(t, err)

	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	require.NotNil(t, svc.updated)
	assert.Equal(t, id, svc.updated.Id)
	assert.Equal(t, "completed", *svc.updated.Status)
	assert.Nil(t, svc.updated.Transcript)
}

func TestResumeUpload(t *testing.T) {
	svc := &fakeResumeService{}
	app := newTestApp(NewResumeController(svc).RegisterRoutes)

	var body bytes.Buffer
	w := multipart.NewWriter(&body)
	part, err := w.CreateFormFile("file", "cv.pdf")
	require.NoError(t, err)
	_, _ = part.Write([]byte("%PDF-1.4 fake"))
	require.NoError(t, w.Close())

	req := httptest.NewRequest("POST", "/api/resume/upload", &body)
	req.Header.Set("Content-Type", w.FormDataContentType())
	resp, err := app.Test(req)
	require.NoError(t, err)

	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Equal(t, "cv.pdf", svc.filename)
	assert.Equal(t, len("%PDF-1.4 fake"), svc.size)
}

func TestResumeUploadWithoutFile(t *testing.T) {
	app := newTestApp(NewResumeController(&fakeResumeService{}).RegisterRoutes)

	resp, err := app.Test(httptest.NewRequest("POST", "/api/resume/upload", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}

func TestCodeLanguages(t *testing.T) {
	app := newTestApp(NewCodeController(nil).RegisterRoutes)

	resp, err := app.Test(httptest.NewRequest("GET", "/api/code/languages", nil))
	require.NoError(t, err)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	var langs []string
	require.NoError(t, json.Unmarshal(decode(t, resp.Body).Data, &langs))
	assert.Contains(t, langs, "python")
	assert.Contains(t, langs, "typescript")
}

func TestHealthWithoutDatabase(t *testing.T) {
	app := newTestApp(NewHealthController(nil, true, false).RegisterRoutes)

	resp, err := app.Test(httptest.NewRequest("GET", "/api/health", nil))
	require.NoError(t, err)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	var res dto.HealthResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&res))
	assert.Equal(t, "ok", res.Status)
	assert.True(t, res.GeminiConfigured)
	assert.Equal(t, "unavailable", res.Database)
}
