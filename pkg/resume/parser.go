package resume

import (
	"context"
	"encoding/json"
	"fmt"

	"ai-interview-be/pkg/llm"
)

const parserSystem = `You are a resume parser. Extract structured information from resume text.
Return ONLY valid JSON with no markdown formatting, no code blocks, just raw JSON.`

const parserPromptFmt = `Parse this resume text and return a JSON object with these fields:
- "name": candidate's full name (string)
- "email": email if found (string)
- "skills": list of technical/professional skills (array of strings)
- "projects": list of projects, each with "name" and "description" (array of objects)
- "experience": list of experiences, each with "title", "company", and "description" (array of objects)
- "education": education summary (string)

Resume text:
---
%s
---

Return ONLY the JSON object, no extra text.`

// Parser structures raw resume text with a text model.
type Parser struct {
	provider llm.LLMProvider
}

func NewParser(provider llm.LLMProvider) *Parser {
	return &Parser{provider: provider}
}

// Parse returns an error only when the model call itself fails. Output that
// is not valid JSON yields Fallback with the raw answer attached.
func (p *Parser) Parse(ctx context.Context, rawText string) (*Structured, error) {
	out, err := p.provider.Generate(ctx, fmt.Sprintf(parserPromptFmt, rawText),
		llm.WithSystemInstruction(parserSystem),
		llm.WithJSON(),
	)
	if err != nil {
		return nil, fmt.Errorf("parse resume: %w", err)
	}
	return Decode(out), nil
}

// Decode reads a model answer into Structured, tolerating code fences.
func Decode(out string) *Structured {
	cleaned := llm.StripCodeFence(out)

	var s Structured
	if err := json.Unmarshal([]byte(cleaned), &s); err != nil {
		return Fallback(cleaned)
	}
	if s.Skills == nil {
		s.Skills = []string{}
	}
	if s.Projects == nil {
		s.Projects = []Project{}
	}
	if s.Experience == nil {
		s.Experience = []Experience{}
	}
	return &s
}
