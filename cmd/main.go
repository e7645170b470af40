package main

import (
	"fmt"

	"ads-video-pipeline/application/services"
	"ads-video-pipeline/config"
	"ads-video-pipeline/infrastructure/adapters"
	"ads-video-pipeline/infrastructure/gin_interface/controllers"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/dynamodb"
	"github.com/aws/aws-sdk-go/service/s3"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/panjf2000/ants/v2"
	"github.com/rs/zerolog/log"
)

func main() {
	// A missing .env is fine in deployed environments; configuration comes
	// from real environment variables there.
	_ = godotenv.Load()

	generationConfig, err := config.GetGenerationConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to get generation config")
	}

	transcriberConfig, err := config.GetTranscriberConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to get transcriber config")
	}

	cutterConfig, err := config.GetCutterConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to get cutter config")
	}

	s3Config, err := config.GetS3Config()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to get s3 config")
	}

	dynamoConfig, err := config.GetDynamoConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to get dynamo config")
	}

	zeroLogger := adapters.NewZerologWrapper()

	panicHandler := func(p interface{}) {
		zeroLogger.Error(fmt.Errorf("%v", p), "Panic in worker pool")
	}

	workerPool, err := ants.NewPool(120, ants.WithPanicHandler(panicHandler))
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to create worker pool")
	}
	defer workerPool.Release()

	sess := session.Must(session.NewSessionWithOptions(session.Options{
		SharedConfigState: session.SharedConfigEnable,
	}))

	s3Client := s3.New(sess)
	dynamoClient := dynamodb.New(sess)

	contentFetcher := adapters.NewContentFetcher(zeroLogger)

	sessionStore := adapters.NewDynamoSessionStore(zeroLogger, dynamoClient, dynamoConfig)
	mediaStore := adapters.NewS3MediaStore(s3Client, s3Config, zeroLogger)

	generationService := adapters.NewVeoGenerationService(contentFetcher, generationConfig, zeroLogger)
	transcriber := adapters.NewWhisperTranscriber(contentFetcher, transcriberConfig, zeroLogger)
	mediaCutter := adapters.NewFfmpegMediaCutter(contentFetcher, cutterConfig, mediaStore, zeroLogger)

	eventBroker := adapters.NewSSEEventBroker(zeroLogger)

	sessionManager := services.NewSessionManager(zeroLogger, sessionStore)
	mappingEngine := services.NewMappingEngine(zeroLogger, sessionStore)
	batchSubmitter := services.NewBatchSubmitter(zeroLogger, generationService, sessionStore)
	statusPoller := services.NewStatusPoller(zeroLogger, generationService, sessionStore, eventBroker, workerPool)
	cutPointService := services.NewCutPointService(zeroLogger, sessionStore, transcriber)
	reviewService := services.NewReviewService(zeroLogger, sessionStore, cutPointService, batchSubmitter, statusPoller, workerPool)
	mergeOrchestrator := services.NewMergeOrchestrator(zeroLogger, sessionStore, mediaCutter, workerPool)
	finalAssembler := services.NewFinalAssembler(zeroLogger, sessionStore, mediaCutter)

	sessionsController := controllers.NewSessionsController(zeroLogger, sessionManager, mappingEngine, batchSubmitter, statusPoller)
	reviewController := controllers.NewReviewController(zeroLogger, reviewService, cutPointService)
	mergeController := controllers.NewMergeController(zeroLogger, mergeOrchestrator, finalAssembler)
	eventsController := controllers.NewEventsController(zeroLogger, eventBroker, workerPool)

	router := gin.Default()

	err = router.SetTrustedProxies(nil)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to set trusted proxies!")
	}

	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	sessionsController.RegisterRoutes(router)
	reviewController.RegisterRoutes(router)
	mergeController.RegisterRoutes(router)
	eventsController.RegisterRoutes(router)

	err = router.Run(":8080")
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to start server!")
	}
}
