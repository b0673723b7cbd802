package service

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"
	"time"

	"ai-interview-be/internal/constant"
	"ai-interview-be/internal/dto"
	"ai-interview-be/internal/entity"
	"ai-interview-be/internal/pkg/logger"
	"ai-interview-be/internal/pkg/serverutils"
	"ai-interview-be/pkg/coderunner"
	"ai-interview-be/pkg/events"
	"ai-interview-be/pkg/llm"
	"ai-interview-be/pkg/resume"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubProvider struct {
	answer string
	err    error
}

func (s *stubProvider) Chat(ctx context.Context, history []llm.Message, options ...llm.Option) (string, error) {
	return s.answer, s.err
}

func (s *stubProvider) Generate(ctx context.Context, prompt string, options ...llm.Option) (string, error) {
	return s.answer, s.err
}

type stubRunner struct {
	result *coderunner.Result
	err    error
}

func (s *stubRunner) Run(ctx context.Context, sub coderunner.Submission) (*coderunner.Result, error) {
	return s.result, s.err
}

type recordingScheduler struct {
	ids chan uuid.UUID
	err error
}

func (r *recordingScheduler) EnqueueFeedback(ctx context.Context, id uuid.UUID) error {
	if r.err != nil {
		return r.err
	}
	r.ids <- id
	return nil
}

type stubFeedbackService struct {
	calls chan uuid.UUID
	err   error
}

func (s *stubFeedbackService) Generate(ctx context.Context, id uuid.UUID) (map[string]interface{}, error) {
	s.calls <- id
	return map[string]interface{}{}, s.err
}

func (s *stubFeedbackService) Get(ctx context.Context, id uuid.UUID) (map[string]interface{}, error) {
	return nil, nil
}

func TestResumeUploadRejectsNonPDF(t *testing.T) {
	svc := NewResumeService(resume.NewParser(&stubProvider{}), 1024)

	_, err := svc.Upload(context.Background(), "cv.docx", []byte("data"))
	require.Error(t, err)
	assert.Equal(t, 400, serverutils.StatusOf(err))
	assert.Equal(t, constant.ErrOnlyPDF, err.Error())
}

func TestResumeUploadRejectsLargeFile(t *testing.T) {
	svc := NewResumeService(resume.NewParser(&stubProvider{}), 4)

	_, err := svc.Upload(context.Background(), "CV.PDF", []byte("too large"))
	require.Error(t, err)
	assert.Equal(t, constant.ErrFileTooLarge, err.Error())
}

func TestResumeUploadRejectsUnreadablePDF(t *testing.T) {
	svc := NewResumeService(resume.NewParser(&stubProvider{}), 1024)

	_, err := svc.Upload(context.Background(), "cv.pdf", []byte("not a pdf"))
	require.Error(t, err)
	assert.Equal(t, 400, serverutils.StatusOf(err))
}

func TestResumeAnalyzeDefaultsJobTitle(t *testing.T) {
	provider := &stubProvider{answer: `{"name":"Ada","skills":["Go"]}`}
	svc := NewResumeService(resume.NewParser(provider), 1024)

	res, err := svc.Analyze(context.Background(), &dto.AnalyzeResumeRequest{
		ResumeText:     "Ada Lovelace, Go developer",
		JobDescription: "Backend role",
	})
	require.NoError(t, err)
	assert.Equal(t, constant.DefaultCustomJobTitle, res.JobTitle)
	assert.True(t, res.Ready)
	assert.Equal(t, "Ada", res.ResumeStructured.Name)
}

func TestResumeAnalyzeRequiresInputs(t *testing.T) {
	svc := NewResumeService(resume.NewParser(&stubProvider{}), 1024)

	_, err := svc.Analyze(context.Background(), &dto.AnalyzeResumeRequest{JobDescription: "x"})
	assert.EqualError(t, err, constant.ErrResumeRequired)

	_, err = svc.Analyze(context.Background(), &dto.AnalyzeResumeRequest{ResumeText: "x", JobDescription: "  "})
	assert.EqualError(t, err, constant.ErrJobDescRequired)
}

func TestResumeAnalyzeWithoutModel(t *testing.T) {
	svc := NewResumeService(nil, 1024)

	_, err := svc.Analyze(context.Background(), &dto.AnalyzeResumeRequest{ResumeText: "x", JobDescription: "y"})
	require.Error(t, err)
	assert.Equal(t, 503, serverutils.StatusOf(err))
}

func TestCodeServiceMapsUnsupportedLanguage(t *testing.T) {
	svc := NewCodeService(&stubRunner{err: &coderunner.UnsupportedLanguageError{Language: "cobol"}})

	_, err := svc.Run(context.Background(), &dto.RunCodeRequest{SourceCode: "x", Language: "cobol"})
	require.Error(t, err)
	assert.Equal(t, 400, serverutils.StatusOf(err))
	assert.Contains(t, err.Error(), "cobol")
}

func TestCodeServiceReturnsResult(t *testing.T) {
	elapsed := "0.01"
	svc := NewCodeService(&stubRunner{result: &coderunner.Result{Stdout: "42\n", Status: "Accepted", Time: &elapsed}})

	res, err := svc.Run(context.Background(), &dto.RunCodeRequest{SourceCode: "print(42)", Language: "python"})
	require.NoError(t, err)
	assert.Equal(t, "42\n", res.Stdout)
	assert.Equal(t, "Accepted", res.Status)
	assert.Equal(t, &elapsed, res.Time)
}

func TestCodeServiceRunnerFailure(t *testing.T) {
	svc := NewCodeService(&stubRunner{err: errors.New("judge0 down")})

	_, err := svc.Run(context.Background(), &dto.RunCodeRequest{SourceCode: "x", Language: "python"})
	require.Error(t, err)
	assert.Equal(t, 503, serverutils.StatusOf(err))
}

func TestBuildFeedbackContextForTopic(t *testing.T) {
	session := &entity.InterviewSession{Difficulty: "advanced", DurationSeconds: 312.4}
	topic := &entity.InterviewTopic{Name: "Operating Systems", Category: "Software Engineering", Subtopics: []string{"Paging", "Deadlocks"}}

	got := buildFeedbackContext(session, topic)
	assert.Contains(t, got, "Topic: Operating Systems (Software Engineering)")
	assert.Contains(t, got, "Subtopics: Paging, Deadlocks")
	assert.Contains(t, got, "Difficulty: advanced")
	assert.Contains(t, got, "Duration: 312 seconds")
}

func TestBuildFeedbackContextForCustomTrimsJobDescription(t *testing.T) {
	session := &entity.InterviewSession{
		SessionType:    entity.SessionTypeCustom,
		JobDescription: strings.Repeat("é", jobDescriptionContextLimit+50),
		Difficulty:     "intermediate",
	}

	got := buildFeedbackContext(session, nil)
	assert.Contains(t, got, "Job Title: "+constant.DefaultCustomJobTitle)
	assert.Contains(t, got, "Job Description: "+strings.Repeat("é", jobDescriptionContextLimit)+"\n")
}

func TestTopicSeedCatalogue(t *testing.T) {
	require.Len(t, defaultTopics, 10)

	names := map[string]bool{}
	for _, topic := range defaultTopics {
		assert.NotEmpty(t, topic.Subtopics, topic.Name)
		names[topic.Name] = true
	}
	assert.Len(t, names, 10)
	assert.True(t, names["Behavioral Interview"])
	assert.True(t, names["Data Structures & Algorithms"])
}

func TestLifecycleSchedulesFeedback(t *testing.T) {
	sched := &recordingScheduler{ids: make(chan uuid.UUID, 1)}
	svc := NewLifecycleService(nil, sched, logger.NewNopLogger())
	id := uuid.New()

	err := svc.HandleCompleted(context.Background(), events.New(events.InterviewCompleted, map[string]interface{}{
		"session_id": id.String(),
		"entries":    float64(4),
	}))
	require.NoError(t, err)
	assert.Equal(t, id, <-sched.ids)
}

func TestLifecycleSkipsEmptyAndMalformedEvents(t *testing.T) {
	sched := &recordingScheduler{ids: make(chan uuid.UUID, 1)}
	svc := NewLifecycleService(nil, sched, logger.NewNopLogger())

	require.NoError(t, svc.HandleCompleted(context.Background(), events.New(events.InterviewCompleted, map[string]interface{}{
		"session_id": uuid.NewString(),
		"entries":    float64(0),
	})))
	require.NoError(t, svc.HandleCompleted(context.Background(), events.New(events.InterviewCompleted, map[string]interface{}{
		"session_id": "nope",
	})))
	assert.Len(t, sched.ids, 0)
}

func TestLifecycleReturnsEnqueueErrorForRedelivery(t *testing.T) {
	sched := &recordingScheduler{err: errors.New("queue closed")}
	svc := NewLifecycleService(nil, sched, logger.NewNopLogger())

	err := svc.HandleCompleted(context.Background(), events.New(events.InterviewCompleted, map[string]interface{}{
		"session_id": uuid.NewString(),
	}))
	assert.Error(t, err)
}

func TestLifecycleStartWithoutSubscriber(t *testing.T) {
	svc := NewLifecycleService(nil, &recordingScheduler{}, logger.NewNopLogger())
	assert.Error(t, svc.Start(context.Background()))
}

func TestFeedbackJobRoundTrip(t *testing.T) {
	pubSub := gochannel.NewGoChannel(gochannel.Config{}, watermill.NopLogger{})
	defer pubSub.Close()

	feedbackSvc := &stubFeedbackService{calls: make(chan uuid.UUID, 2)}
	consumer := NewConsumerService(pubSub, "feedback-test", feedbackSvc, logger.NewNopLogger())
	publisher := NewPublisherService(pubSub, "feedback-test")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	require.NoError(t, consumer.Consume(ctx))

	id := uuid.New()
	require.NoError(t, publisher.EnqueueFeedback(ctx, id))

	select {
	case got := <-feedbackSvc.calls:
		assert.Equal(t, id, got)
	case <-time.After(2 * time.Second):
		t.Fatal("feedback job was not consumed")
	}
}

func TestFeedbackJobSkipsMalformedPayload(t *testing.T) {
	pubSub := gochannel.NewGoChannel(gochannel.Config{}, watermill.NopLogger{})
	defer pubSub.Close()

	feedbackSvc := &stubFeedbackService{calls: make(chan uuid.UUID, 2)}
	consumer := NewConsumerService(pubSub, "feedback-test", feedbackSvc, logger.NewNopLogger())
	publisher := NewPublisherService(pubSub, "feedback-test")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	require.NoError(t, consumer.Consume(ctx))

	require.NoError(t, publisher.Publish(ctx, []byte("{not json")))
	id := uuid.New()
	payload, _ := json.Marshal(dto.GenerateFeedbackMessage{SessionId: id})
	require.NoError(t, publisher.Publish(ctx, payload))

	select {
	case got := <-feedbackSvc.calls:
		assert.Equal(t, id, got)
	case <-time.After(2 * time.Second):
		t.Fatal("valid job after a malformed one was not consumed")
	}
}
