package mapper

import (
	"encoding/json"

	"ai-interview-be/internal/entity"
	"ai-interview-be/internal/model"
	"ai-interview-be/pkg/resume"
	"ai-interview-be/pkg/transcript"

	"gorm.io/datatypes"
)

type InterviewMapper struct{}

func NewInterviewMapper() *InterviewMapper {
	return &InterviewMapper{}
}

// Session Mappers

func (m *InterviewMapper) SessionToEntity(s *model.InterviewSession) *entity.InterviewSession {
	if s == nil {
		return nil
	}

	e := &entity.InterviewSession{
		Id:              s.Id,
		SessionType:     entity.SessionType(s.SessionType),
		TopicId:         s.TopicId,
		Difficulty:      s.Difficulty,
		ResumeText:      s.ResumeText,
		JobDescription:  s.JobDescription,
		JobTitle:        s.JobTitle,
		Status:          entity.InterviewStatus(s.Status),
		CreatedAt:       s.CreatedAt,
		StartedAt:       s.StartedAt,
		EndedAt:         s.EndedAt,
		DurationSeconds: s.DurationSeconds,
		OverallScore:    s.OverallScore,
		Transcript:      []transcript.Entry{},
		Feedback:        map[string]interface{}{},
	}

	if len(s.ResumeStructured) > 0 && string(s.ResumeStructured) != "null" {
		var r resume.Structured
		if json.Unmarshal(s.ResumeStructured, &r) == nil {
			e.ResumeStructured = &r
		}
	}
	if len(s.Transcript) > 0 {
		_ = json.Unmarshal(s.Transcript, &e.Transcript)
		if e.Transcript == nil {
			e.Transcript = []transcript.Entry{}
		}
	}
	if len(s.Feedback) > 0 {
		_ = json.Unmarshal(s.Feedback, &e.Feedback)
		if e.Feedback == nil {
			e.Feedback = map[string]interface{}{}
		}
	}
	if s.Topic != nil {
		name := s.Topic.Name
		e.TopicName = &name
	}

	return e
}

func (m *InterviewMapper) SessionToModel(s *entity.InterviewSession) *model.InterviewSession {
	if s == nil {
		return nil
	}

	entries := s.Transcript
	if entries == nil {
		entries = []transcript.Entry{}
	}
	feedback := s.Feedback
	if feedback == nil {
		feedback = map[string]interface{}{}
	}

	return &model.InterviewSession{
		Id:               s.Id,
		SessionType:      string(s.SessionType),
		TopicId:          s.TopicId,
		Difficulty:       s.Difficulty,
		ResumeText:       s.ResumeText,
		ResumeStructured: toJSON(s.ResumeStructured),
		JobDescription:   s.JobDescription,
		JobTitle:         s.JobTitle,
		Status:           string(s.Status),
		CreatedAt:        s.CreatedAt,
		StartedAt:        s.StartedAt,
		EndedAt:          s.EndedAt,
		DurationSeconds:  s.DurationSeconds,
		Transcript:       toJSON(entries),
		OverallScore:     s.OverallScore,
		Feedback:         toJSON(feedback),
	}
}

// Topic Mappers

func (m *InterviewMapper) TopicToEntity(t *model.InterviewTopic) *entity.InterviewTopic {
	if t == nil {
		return nil
	}

	e := &entity.InterviewTopic{
		Id:               t.Id,
		Name:             t.Name,
		Category:         t.Category,
		Icon:             t.Icon,
		Description:      t.Description,
		Subtopics:        []string{},
		DifficultyLevels: []string{},
		CreatedAt:        t.CreatedAt,
	}
	_ = json.Unmarshal(t.Subtopics, &e.Subtopics)
	_ = json.Unmarshal(t.DifficultyLevels, &e.DifficultyLevels)
	return e
}

func (m *InterviewMapper) TopicToModel(t *entity.InterviewTopic) *model.InterviewTopic {
	if t == nil {
		return nil
	}
	return &model.InterviewTopic{
		Id:               t.Id,
		Name:             t.Name,
		Category:         t.Category,
		Icon:             t.Icon,
		Description:      t.Description,
		Subtopics:        toJSON(t.Subtopics),
		DifficultyLevels: toJSON(t.DifficultyLevels),
		CreatedAt:        t.CreatedAt,
	}
}

// Emotion Mappers

func (m *InterviewMapper) EmotionToEntity(s *model.EmotionSnapshot) *entity.EmotionSnapshot {
	if s == nil {
		return nil
	}

	e := &entity.EmotionSnapshot{
		Id:              s.Id,
		SessionId:       s.SessionId,
		Timestamp:       s.Timestamp,
		Source:          s.Source,
		Emotions:        map[string]float64{},
		DominantEmotion: s.DominantEmotion,
		StressScore:     s.StressScore,
		ConfidenceScore: s.ConfidenceScore,
		CreatedAt:       s.CreatedAt,
	}
	_ = json.Unmarshal(s.Emotions, &e.Emotions)
	return e
}

func (m *InterviewMapper) EmotionToModel(s *entity.EmotionSnapshot) *model.EmotionSnapshot {
	if s == nil {
		return nil
	}
	return &model.EmotionSnapshot{
		Id:              s.Id,
		SessionId:       s.SessionId,
		Timestamp:       s.Timestamp,
		Source:          s.Source,
		Emotions:        toJSON(s.Emotions),
		DominantEmotion: s.DominantEmotion,
		StressScore:     s.StressScore,
		ConfidenceScore: s.ConfidenceScore,
		CreatedAt:       s.CreatedAt,
	}
}

func toJSON(v interface{}) datatypes.JSON {
	b, err := json.Marshal(v)
	if err != nil {
		return datatypes.JSON("null")
	}
	return datatypes.JSON(b)
}
