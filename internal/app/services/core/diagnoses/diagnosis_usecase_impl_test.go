package diagnoses

import (
	"context"
	"errors"
	"medassist-service/internal/app/config"
	"medassist-service/internal/app/contracts"
	"medassist-service/internal/app/models"
	"medassist-service/internal/app/services/shared/connectivity"
	"medassist-service/internal/app/services/shared/ratelimiter"
	"medassist-service/internal/pkg/constvars"
	"medassist-service/internal/pkg/dto/requests"
	"medassist-service/internal/pkg/dto/responses"
	"medassist-service/internal/pkg/exceptions"
	"net/url"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type fakeBackend struct {
	name     string
	response *responses.NLPDiagnosis
	err      error
	calls    int
}

func (b *fakeBackend) Name() string { return b.name }

func (b *fakeBackend) Analyze(ctx context.Context, request *requests.SymptomAnalysis) (*responses.NLPDiagnosis, error) {
	b.calls++
	if b.err != nil {
		return nil, b.err
	}
	return b.response, nil
}

type fakeDiagnosisRepository struct {
	created   []*models.Diagnosis
	diagnoses map[string]*models.Diagnosis
	findErr   error
}

func newFakeDiagnosisRepository() *fakeDiagnosisRepository {
	return &fakeDiagnosisRepository{diagnoses: make(map[string]*models.Diagnosis)}
}

func (r *fakeDiagnosisRepository) CreateDiagnosis(ctx context.Context, diagnosis *models.Diagnosis) (string, error) {
	r.created = append(r.created, diagnosis)
	id := "diag-1"
	r.diagnoses[id] = diagnosis
	return id, nil
}

func (r *fakeDiagnosisRepository) FindByID(ctx context.Context, diagnosisID string) (*models.Diagnosis, error) {
	return r.diagnoses[diagnosisID], nil
}

func (r *fakeDiagnosisRepository) FindAll(ctx context.Context) ([]models.Diagnosis, error) {
	if r.findErr != nil {
		return nil, r.findErr
	}
	var out []models.Diagnosis
	for _, d := range r.diagnoses {
		out = append(out, *d)
	}
	return out, nil
}

func (r *fakeDiagnosisRepository) FindByPatientID(ctx context.Context, patientID string) ([]models.Diagnosis, error) {
	var out []models.Diagnosis
	for _, d := range r.diagnoses {
		if d.PatientID == patientID {
			out = append(out, *d)
		}
	}
	return out, nil
}

type fakePatientRepository struct {
	patients map[string]*models.Patient
}

func (r *fakePatientRepository) CreatePatient(ctx context.Context, patient *models.Patient) (string, error) {
	return "", errors.New("not implemented")
}

func (r *fakePatientRepository) FindByID(ctx context.Context, patientID string) (*models.Patient, error) {
	return r.patients[patientID], nil
}

func (r *fakePatientRepository) FindAll(ctx context.Context) ([]models.Patient, error) {
	return nil, nil
}

type fakeKnowledgeUsecase struct {
	accumulated []*models.Diagnosis
	err         error
}

func (uc *fakeKnowledgeUsecase) AccumulateFromDiagnosis(ctx context.Context, diagnosis *models.Diagnosis, patientAge int, patientGender string) (*models.KnowledgeBaseEntry, error) {
	if uc.err != nil {
		return nil, uc.err
	}
	uc.accumulated = append(uc.accumulated, diagnosis)
	return &models.KnowledgeBaseEntry{}, nil
}

func (uc *fakeKnowledgeUsecase) SearchKnowledge(ctx context.Context, request *requests.SearchKnowledge) ([]responses.KnowledgeBaseEntry, error) {
	return nil, nil
}

type fakeSnapshotStore struct {
	mu    sync.Mutex
	saved map[string]interface{}
}

func newFakeSnapshotStore() *fakeSnapshotStore {
	return &fakeSnapshotStore{saved: make(map[string]interface{})}
}

func (s *fakeSnapshotStore) Save(ctx context.Context, collection string, items interface{}) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.saved[collection] = items
	return nil
}

func (s *fakeSnapshotStore) Get(ctx context.Context, collection string, out interface{}) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	items, ok := s.saved[collection]
	if !ok {
		return false, nil
	}
	if target, ok := out.(*[]responses.Diagnosis); ok {
		*target = items.([]responses.Diagnosis)
	}
	return true, nil
}

func (s *fakeSnapshotStore) LastSync(ctx context.Context) (time.Time, bool, error) {
	return time.Time{}, false, nil
}

func (s *fakeSnapshotStore) ClearAll(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.saved = make(map[string]interface{})
	return nil
}

type fakeRedisRepository struct {
	counters map[string]int64
}

func newFakeRedisRepository() *fakeRedisRepository {
	return &fakeRedisRepository{counters: make(map[string]int64)}
}

func (r *fakeRedisRepository) Delete(ctx context.Context, key string) error { return nil }

func (r *fakeRedisRepository) Set(ctx context.Context, key string, value interface{}, exp time.Duration) error {
	return nil
}

func (r *fakeRedisRepository) Get(ctx context.Context, key string) (string, error) { return "", nil }

func (r *fakeRedisRepository) IncrementWithExpiry(ctx context.Context, key string, exp time.Duration) (int64, error) {
	r.counters[key]++
	return r.counters[key], nil
}

func (r *fakeRedisRepository) TTL(ctx context.Context, key string) (time.Duration, error) {
	return 30 * time.Second, nil
}

func analyzeRequest() *requests.SymptomAnalysis {
	return &requests.SymptomAnalysis{
		PatientID:     "patient-1",
		Symptoms:      []string{"fever", "cough"},
		PatientAge:    34,
		PatientGender: constvars.GenderFemale,
		Language:      constvars.LanguageEnglish,
	}
}

func backendDiagnosis() *responses.NLPDiagnosis {
	return &responses.NLPDiagnosis{
		PrimaryDiagnosis: "Viral upper respiratory infection",
		DifferentialDiagnoses: []responses.DifferentialDiagnosis{
			{Condition: "Influenza", Confidence: 72},
			{Condition: "Common cold", Confidence: 55},
		},
		RequiresReferral: false,
	}
}

type usecaseFixture struct {
	usecase       contracts.DiagnosisUsecase
	diagnosisRepo *fakeDiagnosisRepository
	knowledge     *fakeKnowledgeUsecase
	oracle        contracts.ConnectivityOracle
	remote        *fakeBackend
	local         *fakeBackend
	snapshots     *fakeSnapshotStore
}

func newUsecaseFixture(remote, local *fakeBackend, maxPerWindow int) *usecaseFixture {
	logger := zap.NewNop()
	diagnosisRepo := newFakeDiagnosisRepository()
	patientRepo := &fakePatientRepository{patients: map[string]*models.Patient{
		"patient-1": {ID: "patient-1", Name: "Asha", Age: 34, Gender: constvars.GenderFemale},
	}}
	knowledgeUsecase := &fakeKnowledgeUsecase{}
	snapshots := newFakeSnapshotStore()
	oracle := connectivity.NewConnectivityOracle()
	limiter := ratelimiter.NewResourceLimiter(newFakeRedisRepository(), logger)
	internalConfig := &config.InternalConfig{
		Limiter: config.Limiter{
			AnalyzeWindowInSeconds: 60,
			AnalyzeMaxPerWindow:    maxPerWindow,
		},
	}

	usecase := NewDiagnosisUsecase(
		diagnosisRepo,
		patientRepo,
		knowledgeUsecase,
		snapshots,
		oracle,
		remote,
		local,
		limiter,
		internalConfig,
		logger,
	)
	return &usecaseFixture{
		usecase:       usecase,
		diagnosisRepo: diagnosisRepo,
		knowledge:     knowledgeUsecase,
		oracle:        oracle,
		remote:        remote,
		local:         local,
		snapshots:     snapshots,
	}
}

func TestAnalyze_RemoteSuccess(t *testing.T) {
	remote := &fakeBackend{name: "remote", response: backendDiagnosis()}
	local := &fakeBackend{name: "local", response: backendDiagnosis()}
	fixture := newUsecaseFixture(remote, local, 10)

	result, err := fixture.usecase.Analyze(context.Background(), analyzeRequest())
	require.NoError(t, err)

	assert.Equal(t, constvars.ProvenanceOnline, result.Provenance)
	assert.Equal(t, "diag-1", result.DiagnosisID)
	assert.Equal(t, 1, remote.calls, "remote backend should be called once")
	assert.Equal(t, 0, local.calls, "local backend should not be called on remote success")
	assert.Len(t, fixture.diagnosisRepo.created, 1, "diagnosis should be persisted")
	assert.Len(t, fixture.knowledge.accumulated, 1, "exactly one knowledge entry should be accumulated")
	assert.True(t, fixture.oracle.IsOnline())
}

func TestAnalyze_RemoteTransportFailureFallsBackOnce(t *testing.T) {
	remote := &fakeBackend{name: "remote", err: &url.Error{Op: "Post", URL: "https://remote/analyze", Err: errors.New("connection refused")}}
	local := &fakeBackend{name: "local", response: backendDiagnosis()}
	fixture := newUsecaseFixture(remote, local, 10)

	result, err := fixture.usecase.Analyze(context.Background(), analyzeRequest())
	require.NoError(t, err)

	assert.Equal(t, constvars.ProvenanceOffline, result.Provenance)
	assert.Equal(t, 1, remote.calls)
	assert.Equal(t, 1, local.calls, "local fallback should be attempted exactly once")
	assert.False(t, fixture.oracle.IsOnline(), "transport failure should flip the oracle offline")
	assert.Len(t, fixture.knowledge.accumulated, 1)
}

func TestAnalyze_RemoteStatusFailureKeepsOracleOnline(t *testing.T) {
	remote := &fakeBackend{name: "remote", err: errors.New("remote diagnosis backend returned status 500")}
	local := &fakeBackend{name: "local", response: backendDiagnosis()}
	fixture := newUsecaseFixture(remote, local, 10)

	result, err := fixture.usecase.Analyze(context.Background(), analyzeRequest())
	require.NoError(t, err)

	assert.Equal(t, constvars.ProvenanceOffline, result.Provenance)
	assert.Equal(t, 1, local.calls)
	assert.True(t, fixture.oracle.IsOnline(), "application-level failure should not flip the oracle")
}

func TestAnalyze_OfflineSkipsRemote(t *testing.T) {
	remote := &fakeBackend{name: "remote", response: backendDiagnosis()}
	local := &fakeBackend{name: "local", response: backendDiagnosis()}
	fixture := newUsecaseFixture(remote, local, 10)
	fixture.oracle.Set(false)

	result, err := fixture.usecase.Analyze(context.Background(), analyzeRequest())
	require.NoError(t, err)

	assert.Equal(t, constvars.ProvenanceOffline, result.Provenance)
	assert.Equal(t, 0, remote.calls, "remote backend must not be tried while offline")
	assert.Equal(t, 1, local.calls)
}

func TestAnalyze_BothBackendsFailReturnsDegradedResult(t *testing.T) {
	remote := &fakeBackend{name: "remote", err: &url.Error{Op: "Post", URL: "https://remote/analyze", Err: errors.New("timeout")}}
	local := &fakeBackend{name: "local", err: errors.New("local diagnosis backend returned status 503")}
	fixture := newUsecaseFixture(remote, local, 10)

	result, err := fixture.usecase.Analyze(context.Background(), analyzeRequest())
	require.NoError(t, err, "degraded result is still a success")

	assert.Equal(t, constvars.DegradedPrimaryDiagnosis, result.PrimaryDiagnosis)
	assert.Equal(t, constvars.DegradedReferralReason, result.ReferralReason)
	assert.False(t, result.RequiresReferral, "degraded sentinel is informational, not a referral")
	assert.Equal(t, constvars.ProvenanceOffline, result.Provenance)
	assert.Empty(t, result.DiagnosisID)
	assert.Empty(t, fixture.diagnosisRepo.created, "degraded result must not be persisted")
	assert.Empty(t, fixture.knowledge.accumulated, "degraded result must not feed the knowledge base")
}

func TestAnalyze_UnknownPatient(t *testing.T) {
	remote := &fakeBackend{name: "remote", response: backendDiagnosis()}
	local := &fakeBackend{name: "local", response: backendDiagnosis()}
	fixture := newUsecaseFixture(remote, local, 10)

	request := analyzeRequest()
	request.PatientID = "missing-patient"

	_, err := fixture.usecase.Analyze(context.Background(), request)
	require.Error(t, err)

	var customErr *exceptions.CustomError
	require.ErrorAs(t, err, &customErr)
	assert.Equal(t, constvars.StatusNotFound, customErr.StatusCode)
	assert.Equal(t, 0, remote.calls, "no backend call before the patient check passes")
}

func TestAnalyze_EmptySymptoms(t *testing.T) {
	remote := &fakeBackend{name: "remote", response: backendDiagnosis()}
	local := &fakeBackend{name: "local", response: backendDiagnosis()}
	fixture := newUsecaseFixture(remote, local, 10)

	request := analyzeRequest()
	request.Symptoms = nil

	_, err := fixture.usecase.Analyze(context.Background(), request)
	require.Error(t, err)

	var customErr *exceptions.CustomError
	require.ErrorAs(t, err, &customErr)
	assert.Equal(t, constvars.StatusBadRequest, customErr.StatusCode)
}

func TestAnalyze_RateLimited(t *testing.T) {
	remote := &fakeBackend{name: "remote", response: backendDiagnosis()}
	local := &fakeBackend{name: "local", response: backendDiagnosis()}
	fixture := newUsecaseFixture(remote, local, 2)

	for i := 0; i < 2; i++ {
		_, err := fixture.usecase.Analyze(context.Background(), analyzeRequest())
		require.NoError(t, err)
	}

	_, err := fixture.usecase.Analyze(context.Background(), analyzeRequest())
	require.Error(t, err)

	var customErr *exceptions.CustomError
	require.ErrorAs(t, err, &customErr)
	assert.Equal(t, constvars.StatusTooManyRequests, customErr.StatusCode)
	assert.Greater(t, customErr.RetryAfterSecs, 0, "429 should carry a retry-after hint")
	assert.Equal(t, 2, remote.calls, "rejected request must not reach the backends")
}

func TestAnalyze_KnowledgeFailureDoesNotFailRequest(t *testing.T) {
	remote := &fakeBackend{name: "remote", response: backendDiagnosis()}
	local := &fakeBackend{name: "local", response: backendDiagnosis()}
	fixture := newUsecaseFixture(remote, local, 10)
	fixture.knowledge.err = errors.New("knowledge store down")

	result, err := fixture.usecase.Analyze(context.Background(), analyzeRequest())
	require.NoError(t, err, "knowledge accumulation is best effort")
	assert.Equal(t, "diag-1", result.DiagnosisID)
}

func TestGetDiagnosisByID_NotFound(t *testing.T) {
	remote := &fakeBackend{name: "remote", response: backendDiagnosis()}
	local := &fakeBackend{name: "local", response: backendDiagnosis()}
	fixture := newUsecaseFixture(remote, local, 10)

	_, err := fixture.usecase.GetDiagnosisByID(context.Background(), "missing")
	require.Error(t, err)

	var customErr *exceptions.CustomError
	require.ErrorAs(t, err, &customErr)
	assert.Equal(t, constvars.StatusNotFound, customErr.StatusCode)
}

func TestListDiagnoses_SnapshotFallback(t *testing.T) {
	remote := &fakeBackend{name: "remote", response: backendDiagnosis()}
	local := &fakeBackend{name: "local", response: backendDiagnosis()}
	fixture := newUsecaseFixture(remote, local, 10)

	_, err := fixture.usecase.Analyze(context.Background(), analyzeRequest())
	require.NoError(t, err)

	live, err := fixture.usecase.ListDiagnoses(context.Background())
	require.NoError(t, err)
	require.Len(t, live, 1)

	fixture.diagnosisRepo.findErr = errors.New("mongo down")

	cached, err := fixture.usecase.ListDiagnoses(context.Background())
	require.NoError(t, err, "snapshot should cover a live read failure")
	assert.Equal(t, live, cached)
}

func TestListDiagnosesByPatient_UnknownPatient(t *testing.T) {
	remote := &fakeBackend{name: "remote", response: backendDiagnosis()}
	local := &fakeBackend{name: "local", response: backendDiagnosis()}
	fixture := newUsecaseFixture(remote, local, 10)

	_, err := fixture.usecase.ListDiagnosesByPatient(context.Background(), "missing-patient")
	require.Error(t, err)

	var customErr *exceptions.CustomError
	require.ErrorAs(t, err, &customErr)
	assert.Equal(t, constvars.StatusNotFound, customErr.StatusCode)
}
