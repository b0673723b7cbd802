package service

import (
	"context"
	"errors"
	"path/filepath"
	"strings"

	"ai-interview-be/internal/constant"
	"ai-interview-be/internal/dto"
	"ai-interview-be/internal/pkg/serverutils"
	"ai-interview-be/pkg/resume"
)

type IResumeService interface {
	Upload(ctx context.Context, filename string, data []byte) (*dto.ResumeAnalysisResponse, error)
	Analyze(ctx context.Context, req *dto.AnalyzeResumeRequest) (*dto.AnalyzeResumeResponse, error)
}

type resumeService struct {
	parser   *resume.Parser
	maxBytes int
}

// NewResumeService accepts a nil parser when no text model is configured;
// every call then fails with 503.
func NewResumeService(parser *resume.Parser, maxBytes int) IResumeService {
	return &resumeService{parser: parser, maxBytes: maxBytes}
}

func (s *resumeService) Upload(ctx context.Context, filename string, data []byte) (*dto.ResumeAnalysisResponse, error) {
	if !strings.EqualFold(filepath.Ext(filename), ".pdf") {
		return nil, serverutils.NewBadRequestError(constant.ErrOnlyPDF)
	}
	if s.maxBytes > 0 && len(data) > s.maxBytes {
		return nil, serverutils.NewBadRequestError(constant.ErrFileTooLarge)
	}

	text, err := resume.ExtractText(data)
	if err != nil {
		if errors.Is(err, resume.ErrEmptyDocument) {
			return nil, serverutils.NewBadRequestError(constant.ErrNoResumeText)
		}
		return nil, serverutils.NewBadRequestError(err.Error())
	}

	structured, err := s.parse(ctx, text)
	if err != nil {
		return nil, err
	}
	return &dto.ResumeAnalysisResponse{RawText: text, Structured: structured}, nil
}

func (s *resumeService) Analyze(ctx context.Context, req *dto.AnalyzeResumeRequest) (*dto.AnalyzeResumeResponse, error) {
	if strings.TrimSpace(req.ResumeText) == "" {
		return nil, serverutils.NewBadRequestError(constant.ErrResumeRequired)
	}
	if strings.TrimSpace(req.JobDescription) == "" {
		return nil, serverutils.NewBadRequestError(constant.ErrJobDescRequired)
	}

	structured, err := s.parse(ctx, req.ResumeText)
	if err != nil {
		return nil, err
	}

	jobTitle := strings.TrimSpace(req.JobTitle)
	if jobTitle == "" {
		jobTitle = constant.DefaultCustomJobTitle
	}
	return &dto.AnalyzeResumeResponse{
		ResumeStructured: structured,
		JobTitle:         jobTitle,
		Ready:            true,
	}, nil
}

func (s *resumeService) parse(ctx context.Context, text string) (*resume.Structured, error) {
	if s.parser == nil {
		return nil, serverutils.NewServiceUnavailableError(constant.ErrAIUnavailable)
	}
	structured, err := s.parser.Parse(ctx, text)
	if err != nil {
		return nil, err
	}
	return structured, nil
}
