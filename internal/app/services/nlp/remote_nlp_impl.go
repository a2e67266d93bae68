package nlp

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"medassist-service/internal/app/config"
	"medassist-service/internal/app/contracts"
	"medassist-service/internal/pkg/constvars"
	"medassist-service/internal/pkg/dto/requests"
	"medassist-service/internal/pkg/dto/responses"
	"net/http"
	"time"

	"golang.org/x/time/rate"
)

const (
	BackendNameRemote = "remote"
	BackendNameLocal  = "local"

	analyzePath = "/analyze"
)

type remoteNLPClient struct {
	baseUrl string
	client  *http.Client
	limiter *rate.Limiter
}

// NewRemoteNLPClient talks to the network diagnosis service. The limiter
// throttles outbound calls so a burst of intakes cannot stampede the paid
// API; the HTTP timeout bounds each attempt.
func NewRemoteNLPClient(internalConfig *config.InternalConfig) contracts.DiagnosisBackend {
	maxPerSecond := internalConfig.NLP.RemoteMaxRequestsPerSecond
	if maxPerSecond <= 0 {
		maxPerSecond = 1
	}
	return &remoteNLPClient{
		baseUrl: internalConfig.NLP.RemoteBaseUrl,
		client: &http.Client{
			Timeout: time.Duration(internalConfig.NLP.RemoteTimeoutInSeconds) * time.Second,
		},
		limiter: rate.NewLimiter(rate.Limit(maxPerSecond), maxPerSecond),
	}
}

func (c *remoteNLPClient) Name() string {
	return BackendNameRemote
}

func (c *remoteNLPClient) Analyze(ctx context.Context, request *requests.SymptomAnalysis) (*responses.NLPDiagnosis, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return nil, err
	}
	return postAnalyze(ctx, c.client, c.baseUrl, c.Name(), request)
}

func postAnalyze(ctx context.Context, client *http.Client, baseUrl, backend string, request *requests.SymptomAnalysis) (*responses.NLPDiagnosis, error) {
	requestJSON, err := json.Marshal(request)
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, constvars.MethodPost, baseUrl+analyzePath, bytes.NewBuffer(requestJSON))
	if err != nil {
		return nil, err
	}
	req.Header.Set(constvars.HeaderContentType, constvars.MIMEApplicationJSON)

	resp, err := client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != constvars.StatusOK {
		return nil, fmt.Errorf("%s diagnosis backend returned status %d", backend, resp.StatusCode)
	}

	diagnosis := new(responses.NLPDiagnosis)
	err = json.NewDecoder(resp.Body).Decode(&diagnosis)
	if err != nil {
		return nil, err
	}
	return diagnosis, nil
}
