package config

type (
	DriverConfig struct {
		MongoDB  MongoDB
		Redis    Redis
		RabbitMQ RabbitMQ
		Logger   Logger
	}
	MongoDB struct {
		Port     string
		Host     string
		DbName   string
		Username string
		Password string
	}
	Redis struct {
		Host     string
		Port     string
		Password string
	}
	RabbitMQ struct {
		Port     string
		Host     string
		Username string
		Password string
	}
	Logger struct {
		Level               string
		OutputFileName      string
		OutputErrorFileName string
	}
)

type (
	InternalConfig struct {
		App      App
		NLP      NLP
		Snapshot Snapshot
		Signals  Signals
		Limiter  Limiter
	}

	App struct {
		Env             string
		Port            string
		Version         string
		Timezone        string
		EndpointPrefix  string
		MaxRequests     int
		ShutdownTimeout int
		ServiceAPIKey   string
	}

	// NLP points at the two diagnosis backends. Remote is the preferred
	// network service, Local the on-premise fallback.
	NLP struct {
		RemoteBaseUrl              string
		RemoteTimeoutInSeconds     int
		RemoteMaxRequestsPerSecond int
		LocalBaseUrl               string
		LocalTimeoutInSeconds      int
	}

	Snapshot struct {
		TTLInHours int
	}

	Signals struct {
		TrainingQueue string
	}

	Limiter struct {
		AnalyzeWindowInSeconds int
		AnalyzeMaxPerWindow    int
	}
)
