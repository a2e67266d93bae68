package constvars

var CustomValidationErrorMessages = map[string]string{
	"required":       "is required",
	"min":            "must be at least %s characters long",
	"max":            "maximum at %s characters long",
	"gte":            "must be greater than or equal to %s",
	"lte":            "must be less than or equal to %s",
	"gt":             "must be greater than %s",
	"oneof":          "must be one of [%s]",
	"dive":           "contains an invalid element",
	"language_code":  "must be one of the supported language codes (en, hi, ta, te, bn)",
	"gender":         "must be one of male, female or other",
	"blood_pressure": "must look like systolic/diastolic, e.g. 120/80",
}

var TagsWithParams = map[string]bool{
	"min":   true,
	"max":   true,
	"gte":   true,
	"lte":   true,
	"gt":    true,
	"oneof": true,
}

// Error messages for clients
const (
	ErrClientCannotProcessRequest          = "failed to process your request"
	ErrClientSomethingWrongWithApplication = "there is something wrong with the application"
	ErrClientServerLongRespond             = "the app taking too long to respond"
	ErrClientNotAuthorized                 = "you can't access this feature"
	ErrClientPatientNotExist               = "patient not found"
	ErrClientDiagnosisNotExist             = "diagnosis not found"
	ErrClientAnalyzeQuotaExceeded          = "too many analysis requests for this patient, please retry shortly"
)

// Error messages for developers
const (
	ErrDevValidationFailed           = "VALIDATION_FAILED"
	ErrDevInvalidInput               = "INVALID_INPUT"
	ErrDevURLParamIDValidationFailed = "URL_PARAM_%s_VALIDATION_FAILED"
	ErrDevCannotParseJSON            = "CANNOT_PARSE_JSON"
	ErrDevCannotMarshalJSON          = "CANNOT_MARSHAL_JSON"
	ErrDevServerDeadlineExceeded     = "SERVER_DEADLINE_EXCEEDED"
	ErrDevServerProcess              = "SERVER_FAILED_TO_PROCESS"

	ErrDevAPIKeyRequired = "API_KEY_REQUIRED"
	ErrDevInvalidAPIKey  = "INVALID_API_KEY"

	ErrDevPatientNotExists    = "PATIENT_NOT_EXISTS"
	ErrDevDiagnosisNotExists  = "DIAGNOSIS_NOT_EXISTS"
	ErrDevAnalyzeRateLimited  = "ANALYZE_RATE_LIMITED"
	ErrDevSymptomListRequired = "SYMPTOM_LIST_REQUIRED"

	ErrDevDBFailedToFindDocument     = "DB_FAILED_TO_FIND_DOCUMENT"
	ErrDevDBFailedToInsertDocument   = "DB_FAILED_TO_INSERT_DOCUMENT"
	ErrDevDBFailedToIterateDocuments = "DB_FAILED_TO_ITERATE_DOCUMENTS"
	ErrDevDBStringNotObjectID        = "DB_STRING_NOT_OBJECT_ID"

	ErrDevRedisGetData    = "REDIS_FAILED_TO_GET_DATA"
	ErrDevRedisSetData    = "REDIS_FAILED_TO_SET_DATA"
	ErrDevRedisDeleteData = "REDIS_FAILED_TO_DELETE_DATA"
	ErrDevRedisIncrement  = "REDIS_FAILED_TO_INCREMENT_VALUE"

	ErrDevRabbitMQPublish = "RABBITMQ_FAILED_TO_PUBLISH_MESSAGE"

	ErrDevCreateHTTPRequest = "FAILED_TO_CREATE_HTTP_REQUEST"
	ErrDevSendHTTPRequest   = "FAILED_TO_SEND_HTTP_REQUEST"

	ErrDevNLPBackendStatus   = "NLP_BACKEND_%s_RETURNED_STATUS_%d"
	ErrDevNLPDecodeResponse  = "NLP_BACKEND_%s_DECODE_RESPONSE_FAILED"
	ErrDevNLPBackendThrottle = "NLP_BACKEND_OUTBOUND_THROTTLE_FAILED"
)
