package nlp

import (
	"context"
	"medassist-service/internal/app/config"
	"medassist-service/internal/app/contracts"
	"medassist-service/internal/pkg/dto/requests"
	"medassist-service/internal/pkg/dto/responses"
	"net/http"
	"time"
)

type localNLPClient struct {
	baseUrl string
	client  *http.Client
}

// NewLocalNLPClient talks to the on-premise fallback service. It shares the
// request/response contract with the remote backend and may additionally
// return knowledge snippets for supplementary display.
func NewLocalNLPClient(internalConfig *config.InternalConfig) contracts.DiagnosisBackend {
	return &localNLPClient{
		baseUrl: internalConfig.NLP.LocalBaseUrl,
		client: &http.Client{
			Timeout: time.Duration(internalConfig.NLP.LocalTimeoutInSeconds) * time.Second,
		},
	}
}

func (c *localNLPClient) Name() string {
	return BackendNameLocal
}

func (c *localNLPClient) Analyze(ctx context.Context, request *requests.SymptomAnalysis) (*responses.NLPDiagnosis, error) {
	return postAnalyze(ctx, c.client, c.baseUrl, c.Name(), request)
}
