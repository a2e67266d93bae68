package connectivity

import (
	"context"
	"medassist-service/internal/app/contracts"
	"medassist-service/internal/pkg/constvars"
	"net/http"
	"time"

	"go.uber.org/zap"
)

const healthPath = "/health"

// Probe pings the remote diagnosis service's health endpoint while the oracle
// reports offline, flipping it back online on the first successful response.
// Failures observed by the resolver push the oracle offline; the probe is the
// only recovery path, since an offline oracle keeps the resolver away from the
// remote backend entirely.
type Probe struct {
	oracle   contracts.ConnectivityOracle
	baseUrl  string
	interval time.Duration
	client   *http.Client
	log      *zap.Logger
}

func NewProbe(oracle contracts.ConnectivityOracle, baseUrl string, interval time.Duration, log *zap.Logger) *Probe {
	return &Probe{
		oracle:   oracle,
		baseUrl:  baseUrl,
		interval: interval,
		client:   &http.Client{Timeout: 5 * time.Second},
		log:      log,
	}
}

// Run blocks until ctx is cancelled. Call it in its own goroutine.
func (p *Probe) Run(ctx context.Context) {
	ticker := time.NewTicker(p.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if p.oracle.IsOnline() {
				continue
			}
			if p.check(ctx) {
				p.log.Info("remote diagnosis service reachable again, back online")
				p.oracle.Set(true)
			}
		}
	}
}

func (p *Probe) check(ctx context.Context) bool {
	req, err := http.NewRequestWithContext(ctx, constvars.MethodGet, p.baseUrl+healthPath, nil)
	if err != nil {
		return false
	}
	resp, err := p.client.Do(req)
	if err != nil {
		return false
	}
	defer resp.Body.Close()
	return resp.StatusCode == constvars.StatusOK
}
