package service

import (
	"context"
	"errors"

	"ai-interview-be/internal/dto"
	"ai-interview-be/internal/pkg/serverutils"
	"ai-interview-be/pkg/coderunner"
)

type ICodeService interface {
	Run(ctx context.Context, req *dto.RunCodeRequest) (*dto.RunCodeResponse, error)
}

type codeService struct {
	runner coderunner.Runner
}

func NewCodeService(runner coderunner.Runner) ICodeService {
	return &codeService{runner: runner}
}

func (s *codeService) Run(ctx context.Context, req *dto.RunCodeRequest) (*dto.RunCodeResponse, error) {
	result, err := s.runner.Run(ctx, coderunner.Submission{
		SourceCode: req.SourceCode,
		Language:   req.Language,
		Stdin:      req.Stdin,
	})
	if err != nil {
		var unsupported *coderunner.UnsupportedLanguageError
		if errors.As(err, &unsupported) {
			return nil, serverutils.NewBadRequestError(unsupported.Error())
		}
		return nil, serverutils.NewServiceUnavailableError(err.Error())
	}

	return &dto.RunCodeResponse{
		Stdout:        result.Stdout,
		Stderr:        result.Stderr,
		CompileOutput: result.CompileOutput,
		Status:        result.Status,
		Time:          result.Time,
		Memory:        result.Memory,
	}, nil
}
