package bootstrap

import (
	"context"
	"log"
	"time"

	"ai-interview-be/internal/config"
	"ai-interview-be/internal/controller"
	"ai-interview-be/internal/handler"
	"ai-interview-be/internal/pkg/logger"
	"ai-interview-be/internal/relay"
	"ai-interview-be/internal/repository/contract"
	"ai-interview-be/internal/repository/memory"
	"ai-interview-be/internal/repository/redisstore"
	"ai-interview-be/internal/repository/unitofwork"
	"ai-interview-be/internal/service"
	"ai-interview-be/pkg/coderunner"
	"ai-interview-be/pkg/emotion"
	"ai-interview-be/pkg/feedback"
	"ai-interview-be/pkg/live"
	"ai-interview-be/pkg/llm/factory"
	pktNats "ai-interview-be/pkg/nats"
	"ai-interview-be/pkg/resume"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

type Container struct {
	// Controllers
	InterviewController controller.IInterviewController
	TopicController     controller.ITopicController
	ResumeController    controller.IResumeController
	FeedbackController  controller.IFeedbackController
	CodeController      controller.ICodeController
	HealthController    controller.IHealthController

	// Live interview socket
	InterviewHandler *handler.InterviewHandler

	// Background Services (Exposed for main.go to run)
	TopicService     service.ITopicService
	ConsumerService  service.IConsumerService
	LifecycleService service.ILifecycleService // nil without NATS or auto feedback

	Logger logger.ILogger

	closers []func()
}

func NewContainer(db *gorm.DB, cfg *config.Config) *Container {
	ctx := context.Background()

	// 1. Core Facades
	uowFactory := unitofwork.NewRepositoryFactory(db)
	sysLogger := logger.NewZapLogger(cfg.App.LogFilePath, cfg.IsProduction())
	relayLogger := logger.NewIsolatedLogger(cfg.App.RelayLogFilePath)

	c := &Container{Logger: sysLogger}

	// 2. Event Bus
	watermillLogger := watermill.NewStdLogger(false, false)
	pubSub := gochannel.NewGoChannel(
		gochannel.Config{},
		watermillLogger,
	)
	c.closers = append(c.closers, func() { pubSub.Close() })

	var eventPublisher relay.EventPublisher
	var natsPub *pktNats.Publisher
	var natsSub *pktNats.Subscriber
	if cfg.App.NatsURL != "" {
		var err error
		natsPub, err = pktNats.NewPublisher(cfg.App.NatsURL)
		if err != nil {
			log.Printf("[WARN] Failed to connect to NATS Publisher: %v", err)
		} else {
			eventPublisher = natsPub
			c.closers = append(c.closers, natsPub.Close)
		}
		natsSub, err = pktNats.NewSubscriber(cfg.App.NatsURL)
		if err != nil {
			log.Printf("[WARN] Failed to connect to NATS Subscriber: %v", err)
			natsSub = nil
		} else {
			c.closers = append(c.closers, natsSub.Close)
		}
	}

	// 3. Session leases
	leases := newLeaseRepository(ctx, cfg.App.RedisURL)

	// 4. AI Providers
	apiKey := cfg.Keys.GoogleGemini
	if cfg.Ai.UseVertex {
		apiKey = ""
	}

	model := cfg.Ai.TextModel
	if cfg.Ai.LLMProvider == "ollama" {
		model = cfg.Ai.OllamaModel
	}
	llmProvider, err := factory.NewLLMProvider(ctx, factory.Config{
		Provider: cfg.Ai.LLMProvider,
		Model:    model,
		BaseURL:  cfg.Ai.OllamaBaseURL,
		APIKey:   apiKey,
		Project:  cfg.Ai.CloudProject,
		Location: cfg.Ai.CloudLocation,
	})
	var resumeParser *resume.Parser
	var feedbackGenerator *feedback.Generator
	if err != nil {
		log.Printf("[WARN] Failed to initialize LLM Provider: %v. Resume parsing and feedback are disabled", err)
	} else {
		log.Printf("[INFO] Using LLM Provider: %s (%s)", cfg.Ai.LLMProvider, model)
		resumeParser = resume.NewParser(llmProvider)
		feedbackGenerator = feedback.NewGenerator(llmProvider)
	}

	dialer, err := live.NewGeminiDialer(ctx, live.GeminiConfig{
		APIKey:     cfg.Keys.GoogleGemini,
		UseVertex:  cfg.Ai.UseVertex,
		Project:    cfg.Ai.CloudProject,
		Location:   cfg.Ai.CloudLocation,
		Model:      cfg.Ai.LiveModel,
		Voice:      cfg.Ai.Voice,
		SampleRate: cfg.Relay.InputSampleRate,
	})
	var liveDialer live.Dialer
	if err != nil {
		log.Printf("[WARN] Failed to initialize Gemini Live: %v. Interviews will report the interviewer as unavailable", err)
		dialErr := err
		liveDialer = live.DialerFunc(func(context.Context, string) (live.Conn, error) {
			return nil, dialErr
		})
	} else {
		liveDialer = dialer
	}

	var classifier emotion.Classifier
	if cfg.Services.EmotionURL != "" {
		classifier = emotion.NewHTTPClassifier(cfg.Services.EmotionURL, time.Duration(cfg.Ai.EmotionTimeout)*time.Second)
	} else {
		log.Printf("[INFO] EMOTION_SERVICE_URL not set, webcam frames get neutral scores")
	}
	emotionAnalyzer := emotion.NewAnalyzer(classifier, relayLogger)

	codeRunner := coderunner.NewJudge0Client(cfg.Services.Judge0URL, cfg.Services.Judge0APIKey)

	// 5. Services
	publisherService := service.NewPublisherService(pubSub, cfg.Ai.FeedbackTopic)

	var feedbackEvents service.EventPublisher
	if natsPub != nil {
		feedbackEvents = natsPub
	}

	interviewService := service.NewInterviewService(uowFactory)
	topicService := service.NewTopicService(uowFactory)
	resumeService := service.NewResumeService(resumeParser, cfg.App.UploadMaxBytes)
	feedbackService := service.NewFeedbackService(uowFactory, feedbackGenerator, feedbackEvents, sysLogger)
	codeService := service.NewCodeService(codeRunner)
	sessionStore := service.NewSessionStore(uowFactory)

	c.TopicService = topicService
	c.ConsumerService = service.NewConsumerService(pubSub, cfg.Ai.FeedbackTopic, feedbackService, sysLogger)

	// Completed interviews reach the feedback queue through the event bus
	// when one is configured, otherwise straight from the relay.
	var feedbackQueue relay.FeedbackQueue
	if cfg.Relay.AutoFeedback {
		if natsSub != nil && eventPublisher != nil {
			c.LifecycleService = service.NewLifecycleService(natsSub, publisherService, sysLogger)
		} else {
			feedbackQueue = publisherService
		}
	}

	// 6. Live relay
	relayCfg := relay.DefaultConfig()
	if cfg.Relay.SilenceTimeoutSeconds > 0 {
		relayCfg.SilenceTimeout = time.Duration(cfg.Relay.SilenceTimeoutSeconds * float64(time.Second))
	}
	relayCfg.SpeechRMS = cfg.Relay.SpeechRMS
	if cfg.Relay.LeaseTTLMinutes > 0 {
		relayCfg.LeaseTTL = time.Duration(cfg.Relay.LeaseTTLMinutes) * time.Minute
	}
	if cfg.Ai.EmotionTimeout > 0 {
		relayCfg.FrameTimeout = time.Duration(cfg.Ai.EmotionTimeout) * time.Second
	}

	relayFactory := relay.NewFactory(relay.Deps{
		Store:    sessionStore,
		Dialer:   liveDialer,
		Emotions: emotionAnalyzer,
		Leases:   leases,
		Events:   eventPublisher,
		Feedback: feedbackQueue,
		Logger:   relayLogger,
	}, relayCfg)

	// 7. Controllers
	c.InterviewController = controller.NewInterviewController(interviewService)
	c.TopicController = controller.NewTopicController(topicService)
	c.ResumeController = controller.NewResumeController(resumeService)
	c.FeedbackController = controller.NewFeedbackController(feedbackService)
	c.CodeController = controller.NewCodeController(codeService)
	c.HealthController = controller.NewHealthController(db, cfg.Keys.GoogleGemini != "" || cfg.Ai.UseVertex, eventPublisher != nil)
	c.InterviewHandler = handler.NewInterviewHandler(relayFactory, relayLogger)

	return c
}

// Close releases the event bus connections.
func (c *Container) Close() {
	for i := len(c.closers) - 1; i >= 0; i-- {
		c.closers[i]()
	}
}

func newLeaseRepository(ctx context.Context, redisURL string) contract.SessionLeaseRepository {
	if redisURL == "" {
		log.Printf("[INFO] REDIS_URL not set, using in-memory session leases")
		return memory.NewSessionLeaseRepository()
	}

	opt, err := redis.ParseURL(redisURL)
	if err != nil {
		log.Printf("[WARN] Failed to parse Redis URL: %v. Using direct Addr", err)
		opt = &redis.Options{
			Addr: redisURL,
		}
	}
	rdb := redis.NewClient(opt)
	if _, err := rdb.Ping(ctx).Result(); err != nil {
		log.Printf("[WARN] Failed to connect to Redis: %v. Using in-memory session leases", err)
		rdb.Close()
		return memory.NewSessionLeaseRepository()
	}
	return redisstore.NewSessionLeaseRepository(rdb)
}
