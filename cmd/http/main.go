package main

import (
	"context"
	"medassist-service/internal/app/config"
	"medassist-service/internal/app/delivery/http/middlewares"
	"medassist-service/internal/app/delivery/http/routers"
	"medassist-service/internal/app/drivers/database"
	"medassist-service/internal/app/drivers/logger"
	"medassist-service/internal/app/drivers/messaging"
	"medassist-service/internal/app/services/core/diagnoses"
	"medassist-service/internal/app/services/core/knowledge"
	"medassist-service/internal/app/services/core/patients"
	"medassist-service/internal/app/services/nlp"
	"medassist-service/internal/app/services/shared/connectivity"
	"medassist-service/internal/app/services/shared/ratelimiter"
	sharedRedis "medassist-service/internal/app/services/shared/redis"
	"medassist-service/internal/app/services/shared/signals"
	"medassist-service/internal/app/services/shared/snapshot"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/sirupsen/logrus"
)

const connectivityProbeInterval = 30 * time.Second

func main() {
	driverConfig := config.NewDriverConfig()
	internalConfig := config.NewInternalConfig()

	log := logger.NewZapLogger(driverConfig, internalConfig)

	location, err := time.LoadLocation(internalConfig.App.Timezone)
	if err != nil {
		log.Sugar().Fatalf("Error loading location: %v", err)
	}
	time.Local = location

	mongoDB := database.NewMongoDB(driverConfig)
	redisClient := database.NewRedisClient(driverConfig)
	rabbitMQ := messaging.NewRabbitMQ(driverConfig)
	chiRouter := chi.NewRouter()

	bootstrap := config.Bootstrap{
		Router:         chiRouter,
		MongoDB:        mongoDB,
		Redis:          redisClient,
		RabbitMQ:       rabbitMQ,
		Logger:         log,
		DriverConfig:   driverConfig,
		InternalConfig: internalConfig,
	}

	probeCtx, stopProbe := context.WithCancel(context.Background())
	defer stopProbe()

	bootstrapingTheApp(bootstrap, probeCtx)

	server := &http.Server{
		Addr:    internalConfig.App.Port,
		Handler: chiRouter,
	}

	go func() {
		err := server.ListenAndServe()
		if err != nil && err != http.ErrServerClosed {
			log.Sugar().Fatalf("Server failed to start: %v", err)
		}
	}()

	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	<-c

	logrus.Println("Waiting for pending requests that already received by server to be processed..")

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		time.Second*time.Duration(internalConfig.App.ShutdownTimeout),
	)
	defer cancel()

	stopProbe()

	err = server.Shutdown(shutdownCtx)
	if err != nil {
		log.Sugar().Fatalf("Server forced to shutdown: %v", err)
	}

	if err := bootstrap.Shutdown(shutdownCtx); err != nil {
		log.Sugar().Errorf("Error closing application resources: %v", err)
	}

	logrus.Println("Server exiting")
}

func bootstrapingTheApp(bootstrap config.Bootstrap, probeCtx context.Context) {
	// Shared
	redisRepository := sharedRedis.NewRedisRepository(bootstrap.Redis)
	snapshotStore := snapshot.NewSnapshotService(redisRepository, bootstrap.InternalConfig)
	resourceLimiter := ratelimiter.NewResourceLimiter(redisRepository, bootstrap.Logger)
	oracle := connectivity.NewConnectivityOracle()
	signalPublisher := signals.NewTrainingSignalPublisher(bootstrap.RabbitMQ, bootstrap.InternalConfig, bootstrap.Logger)

	// Diagnosis backends
	remoteBackend := nlp.NewRemoteNLPClient(bootstrap.InternalConfig)
	localBackend := nlp.NewLocalNLPClient(bootstrap.InternalConfig)

	probe := connectivity.NewProbe(oracle, bootstrap.InternalConfig.NLP.RemoteBaseUrl, connectivityProbeInterval, bootstrap.Logger)
	go probe.Run(probeCtx)

	// Middlewares
	middlewares := middlewares.NewMiddlewares(bootstrap.Logger, bootstrap.InternalConfig)

	// Patient
	patientMongoRepository := patients.NewPatientMongoRepository(
		bootstrap.MongoDB,
		bootstrap.DriverConfig.MongoDB.DbName,
	)
	patientUsecase := patients.NewPatientUsecase(patientMongoRepository, snapshotStore, bootstrap.Logger)
	patientController := patients.NewPatientController(bootstrap.Logger, patientUsecase)

	// Knowledge
	knowledgeMongoRepository := knowledge.NewKnowledgeMongoRepository(
		bootstrap.MongoDB,
		bootstrap.DriverConfig.MongoDB.DbName,
	)
	knowledgeUsecase := knowledge.NewKnowledgeUsecase(knowledgeMongoRepository, signalPublisher, bootstrap.Logger)
	knowledgeController := knowledge.NewKnowledgeController(bootstrap.Logger, knowledgeUsecase)

	// Diagnosis
	diagnosisMongoRepository := diagnoses.NewDiagnosisMongoRepository(
		bootstrap.MongoDB,
		bootstrap.DriverConfig.MongoDB.DbName,
	)
	diagnosisUsecase := diagnoses.NewDiagnosisUsecase(
		diagnosisMongoRepository,
		patientMongoRepository,
		knowledgeUsecase,
		snapshotStore,
		oracle,
		remoteBackend,
		localBackend,
		resourceLimiter,
		bootstrap.InternalConfig,
		bootstrap.Logger,
	)
	diagnosisController := diagnoses.NewDiagnosisController(bootstrap.Logger, diagnosisUsecase)

	// Admin
	snapshotController := snapshot.NewSnapshotController(bootstrap.Logger, snapshotStore)

	requestLog := logrus.New()

	routers.SetupRoutes(
		bootstrap.Router,
		bootstrap.InternalConfig,
		middlewares,
		requestLog,
		patientController,
		diagnosisController,
		knowledgeController,
		snapshotController,
	)
}
