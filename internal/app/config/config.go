package config

import (
	"medassist-service/internal/pkg/utils"

	"github.com/joho/godotenv"
)

func init() {
	godotenv.Load()
}

func NewDriverConfig() *DriverConfig {
	return &DriverConfig{
		MongoDB: MongoDB{
			Port:     utils.GetEnvString("MONGODB_PORT", "27017"),
			Host:     utils.GetEnvString("MONGODB_HOST", "localhost"),
			DbName:   utils.GetEnvString("MONGODB_DB_NAME", "medassist"),
			Username: utils.GetEnvString("MONGODB_USERNAME", "defaultUsername"),
			Password: utils.GetEnvString("MONGODB_PASSWORD", "defaultPassword"),
		},
		Redis: Redis{
			Host:     utils.GetEnvString("REDIS_HOST", "localhost"),
			Port:     utils.GetEnvString("REDIS_PORT", "6379"),
			Password: utils.GetEnvString("REDIS_PASSWORD", ""),
		},
		RabbitMQ: RabbitMQ{
			Port:     utils.GetEnvString("RABBITMQ_PORT", "5672"),
			Host:     utils.GetEnvString("RABBITMQ_HOST", "localhost"),
			Username: utils.GetEnvString("RABBITMQ_USERNAME", "defaultUsername"),
			Password: utils.GetEnvString("RABBITMQ_PASSWORD", "defaultPassword"),
		},
		Logger: Logger{
			Level:               utils.GetEnvString("LOGGER_LEVEL", "debug"),
			OutputFileName:      utils.GetEnvString("LOGGER_OUTPUT_FILENAME", "logger.log"),
			OutputErrorFileName: utils.GetEnvString("LOGGER_OUTPUT_ERROR_FILENAME", "logger_error.log"),
		},
	}
}

func NewInternalConfig() *InternalConfig {
	return &InternalConfig{
		App: App{
			Env:             utils.GetEnvString("APP_ENV", "development"),
			Port:            utils.GetEnvString("APP_PORT", ":8080"),
			Version:         utils.GetEnvString("APP_VERSION", "v1"),
			Timezone:        utils.GetEnvString("APP_TIMEZONE", "Asia/Kolkata"),
			EndpointPrefix:  utils.GetEnvString("APP_ENDPOINT_PREFIX", "api"),
			MaxRequests:     utils.GetEnvInt("APP_MAX_REQUEST", 50),
			ShutdownTimeout: utils.GetEnvInt("APP_SHUTDOWN_TIMEOUT", 10),
			ServiceAPIKey:   utils.GetEnvString("APP_SERVICE_API_KEY", ""),
		},
		NLP: NLP{
			RemoteBaseUrl:              utils.GetEnvString("NLP_REMOTE_BASE_URL", "https://api.medassist-nlp.example.com"),
			RemoteTimeoutInSeconds:     utils.GetEnvInt("NLP_REMOTE_TIMEOUT_IN_SECONDS", 28),
			RemoteMaxRequestsPerSecond: utils.GetEnvInt("NLP_REMOTE_MAX_REQUESTS_PER_SECOND", 5),
			LocalBaseUrl:               utils.GetEnvString("NLP_LOCAL_BASE_URL", "http://localhost:8000"),
			LocalTimeoutInSeconds:      utils.GetEnvInt("NLP_LOCAL_TIMEOUT_IN_SECONDS", 10),
		},
		Snapshot: Snapshot{
			TTLInHours: utils.GetEnvInt("SNAPSHOT_TTL_IN_HOURS", 0),
		},
		Signals: Signals{
			TrainingQueue: utils.GetEnvString("SIGNALS_TRAINING_QUEUE", "medassist.training-signals"),
		},
		Limiter: Limiter{
			AnalyzeWindowInSeconds: utils.GetEnvInt("LIMITER_ANALYZE_WINDOW_IN_SECONDS", 60),
			AnalyzeMaxPerWindow:    utils.GetEnvInt("LIMITER_ANALYZE_MAX_PER_WINDOW", 10),
		},
	}
}
