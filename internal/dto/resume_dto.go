package dto

import "ai-interview-be/pkg/resume"

type ResumeAnalysisResponse struct {
	RawText    string             `json:"raw_text"`
	Structured *resume.Structured `json:"structured"`
}

type AnalyzeResumeRequest struct {
	ResumeText     string `json:"resume_text" validate:"required"`
	JobDescription string `json:"job_description" validate:"required"`
	JobTitle       string `json:"job_title"`
}

type AnalyzeResumeResponse struct {
	ResumeStructured *resume.Structured `json:"resume_structured"`
	JobTitle         string             `json:"job_title"`
	Ready            bool               `json:"ready"`
}
