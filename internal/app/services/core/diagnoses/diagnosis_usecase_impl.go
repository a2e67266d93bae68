package diagnoses

import (
	"context"
	"errors"
	"medassist-service/internal/app/config"
	"medassist-service/internal/app/contracts"
	"medassist-service/internal/app/models"
	"medassist-service/internal/app/services/shared/ratelimiter"
	"medassist-service/internal/pkg/constvars"
	"medassist-service/internal/pkg/dto/requests"
	"medassist-service/internal/pkg/dto/responses"
	"medassist-service/internal/pkg/exceptions"
	"medassist-service/internal/pkg/utils"
	"net/url"
	"time"

	"go.uber.org/zap"
)

const analyzeLimiterGroup = "analyze"

type diagnosisUsecase struct {
	DiagnosisRepository contracts.DiagnosisRepository
	PatientRepository   contracts.PatientRepository
	KnowledgeUsecase    contracts.KnowledgeUsecase
	SnapshotStore       contracts.SnapshotStore
	Oracle              contracts.ConnectivityOracle
	RemoteBackend       contracts.DiagnosisBackend
	LocalBackend        contracts.DiagnosisBackend
	Limiter             *ratelimiter.ResourceLimiter
	InternalConfig      *config.InternalConfig
	Log                 *zap.Logger
}

func NewDiagnosisUsecase(
	diagnosisMongoRepository contracts.DiagnosisRepository,
	patientMongoRepository contracts.PatientRepository,
	knowledgeUsecase contracts.KnowledgeUsecase,
	snapshotStore contracts.SnapshotStore,
	oracle contracts.ConnectivityOracle,
	remoteBackend contracts.DiagnosisBackend,
	localBackend contracts.DiagnosisBackend,
	limiter *ratelimiter.ResourceLimiter,
	internalConfig *config.InternalConfig,
	log *zap.Logger,
) contracts.DiagnosisUsecase {
	return &diagnosisUsecase{
		DiagnosisRepository: diagnosisMongoRepository,
		PatientRepository:   patientMongoRepository,
		KnowledgeUsecase:    knowledgeUsecase,
		SnapshotStore:       snapshotStore,
		Oracle:              oracle,
		RemoteBackend:       remoteBackend,
		LocalBackend:        localBackend,
		Limiter:             limiter,
		InternalConfig:      internalConfig,
		Log:                 log,
	}
}

// Analyze resolves a diagnosis for the intake request. The remote backend is
// preferred while the oracle reports online; any remote failure falls back to
// the local backend exactly once. When both backends are unreachable a
// degraded placeholder result is returned as a success so the intake flow can
// finish, and nothing is persisted.
func (uc *diagnosisUsecase) Analyze(ctx context.Context, request *requests.SymptomAnalysis) (*responses.DiagnosisResult, error) {
	if len(request.Symptoms) == 0 {
		return nil, exceptions.ErrSymptomListRequired(nil)
	}
	language := request.Language
	if language == "" {
		language = constvars.LanguageDefault
	}

	patient, err := uc.PatientRepository.FindByID(ctx, request.PatientID)
	if err != nil {
		return nil, err
	}
	if patient == nil {
		return nil, exceptions.ErrPatientNotExist(nil)
	}

	limiterResult, err := uc.Limiter.ApplyResourceLimiter(ctx, &ratelimiter.ApplyResourceLimiterInput{
		ResourceName:      request.PatientID,
		LimiterGroupName:  analyzeLimiterGroup,
		WindowDurationSec: uc.InternalConfig.Limiter.AnalyzeWindowInSeconds,
		MaxQuota:          uc.InternalConfig.Limiter.AnalyzeMaxPerWindow,
	})
	if err != nil {
		return nil, err
	}
	if !limiterResult.Allowed {
		return nil, exceptions.ErrAnalyzeRateLimited(nil, limiterResult.RetryAfterSecs)
	}

	nlpDiagnosis, provenance := uc.resolve(ctx, request)
	if nlpDiagnosis == nil {
		return &responses.DiagnosisResult{
			PatientID:             request.PatientID,
			Symptoms:              request.Symptoms,
			PrimaryDiagnosis:      constvars.DegradedPrimaryDiagnosis,
			DifferentialDiagnoses: []responses.DifferentialDiagnosis{},
			ReferralReason:        constvars.DegradedReferralReason,
			Language:              language,
			Provenance:            constvars.ProvenanceOffline,
		}, nil
	}

	for i := range nlpDiagnosis.DifferentialDiagnoses {
		nlpDiagnosis.DifferentialDiagnoses[i].Confidence = utils.ClampConfidence(nlpDiagnosis.DifferentialDiagnoses[i].Confidence)
	}

	diagnosisModel := buildDiagnosisModel(request, nlpDiagnosis, language, provenance)
	diagnosisID, err := uc.DiagnosisRepository.CreateDiagnosis(ctx, diagnosisModel)
	if err != nil {
		return nil, err
	}
	diagnosisModel.ID = diagnosisID

	if _, err := uc.KnowledgeUsecase.AccumulateFromDiagnosis(ctx, diagnosisModel, request.PatientAge, request.PatientGender); err != nil {
		uc.Log.Warn("failed to accumulate knowledge entry",
			zap.String("diagnosis_id", diagnosisID),
			zap.Error(err),
		)
	}
	if _, err := uc.ListDiagnoses(ctx); err != nil {
		uc.Log.Warn("failed to refresh diagnosis snapshot after analyze", zap.Error(err))
	}

	return &responses.DiagnosisResult{
		DiagnosisID:           diagnosisID,
		PatientID:             request.PatientID,
		Symptoms:              request.Symptoms,
		PrimaryDiagnosis:      nlpDiagnosis.PrimaryDiagnosis,
		DifferentialDiagnoses: nlpDiagnosis.DifferentialDiagnoses,
		TreatmentProtocol:     nlpDiagnosis.TreatmentProtocol,
		RequiresReferral:      nlpDiagnosis.RequiresReferral,
		ReferralReason:        nlpDiagnosis.ReferralReason,
		KnowledgeSnippets:     nlpDiagnosis.KnowledgeSnippets,
		Language:              language,
		Provenance:            provenance,
		CreatedAt:             diagnosisModel.CreatedAt.Format(time.RFC3339),
	}, nil
}

// resolve runs the backend selection. A nil diagnosis means both backends
// failed and the caller must degrade.
func (uc *diagnosisUsecase) resolve(ctx context.Context, request *requests.SymptomAnalysis) (*responses.NLPDiagnosis, string) {
	if uc.Oracle.IsOnline() {
		nlpDiagnosis, err := uc.RemoteBackend.Analyze(ctx, request)
		if err == nil {
			uc.Oracle.Set(true)
			return nlpDiagnosis, constvars.ProvenanceOnline
		}
		if isTransportError(err) {
			uc.Oracle.Set(false)
		}
		uc.Log.Warn("remote diagnosis backend failed, falling back to local",
			zap.String("backend", uc.RemoteBackend.Name()),
			zap.Error(err),
		)
	}

	nlpDiagnosis, err := uc.LocalBackend.Analyze(ctx, request)
	if err != nil {
		uc.Log.Warn("local diagnosis backend failed",
			zap.String("backend", uc.LocalBackend.Name()),
			zap.Error(err),
		)
		return nil, constvars.ProvenanceOffline
	}
	return nlpDiagnosis, constvars.ProvenanceOffline
}

// isTransportError separates connectivity problems, which flip the oracle
// offline, from application-level failures such as a 5xx body, which do not.
func isTransportError(err error) bool {
	var urlErr *url.Error
	if errors.As(err, &urlErr) {
		return true
	}
	return errors.Is(err, context.DeadlineExceeded)
}

func (uc *diagnosisUsecase) GetDiagnosisByID(ctx context.Context, diagnosisID string) (*responses.Diagnosis, error) {
	diagnosis, err := uc.DiagnosisRepository.FindByID(ctx, diagnosisID)
	if err != nil {
		return nil, err
	}
	if diagnosis == nil {
		return nil, exceptions.ErrDiagnosisNotExist(nil)
	}
	return diagnosis.ToResponse(), nil
}

// ListDiagnoses mirrors the patient list: live read written through to the
// snapshot store, snapshot served when the live read fails.
func (uc *diagnosisUsecase) ListDiagnoses(ctx context.Context) ([]responses.Diagnosis, error) {
	diagnoses, err := uc.DiagnosisRepository.FindAll(ctx)
	if err != nil {
		var cached []responses.Diagnosis
		found, snapErr := uc.SnapshotStore.Get(ctx, constvars.SnapshotCollectionDiagnoses, &cached)
		if snapErr == nil && found {
			uc.Log.Warn("serving diagnosis list from snapshot, live read failed",
				zap.Error(err),
			)
			return cached, nil
		}
		return nil, err
	}

	result := make([]responses.Diagnosis, 0, len(diagnoses))
	for i := range diagnoses {
		result = append(result, *diagnoses[i].ToResponse())
	}

	if err := uc.SnapshotStore.Save(ctx, constvars.SnapshotCollectionDiagnoses, result); err != nil {
		uc.Log.Warn("failed to refresh diagnosis snapshot", zap.Error(err))
	}
	return result, nil
}

func (uc *diagnosisUsecase) ListDiagnosesByPatient(ctx context.Context, patientID string) ([]responses.Diagnosis, error) {
	patient, err := uc.PatientRepository.FindByID(ctx, patientID)
	if err != nil {
		return nil, err
	}
	if patient == nil {
		return nil, exceptions.ErrPatientNotExist(nil)
	}

	diagnoses, err := uc.DiagnosisRepository.FindByPatientID(ctx, patientID)
	if err != nil {
		return nil, err
	}
	result := make([]responses.Diagnosis, 0, len(diagnoses))
	for i := range diagnoses {
		result = append(result, *diagnoses[i].ToResponse())
	}
	return result, nil
}

func buildDiagnosisModel(request *requests.SymptomAnalysis, nlpDiagnosis *responses.NLPDiagnosis, language, provenance string) *models.Diagnosis {
	diagnosisModel := &models.Diagnosis{
		PatientID:        request.PatientID,
		Symptoms:         request.Symptoms,
		PrimaryDiagnosis: nlpDiagnosis.PrimaryDiagnosis,
		RequiresReferral: nlpDiagnosis.RequiresReferral,
		ReferralReason:   nlpDiagnosis.ReferralReason,
		Language:         language,
		Provenance:       provenance,
		TimeModel: models.TimeModel{
			CreatedAt: time.Now().UTC(),
		},
	}
	if request.VitalSigns != nil {
		diagnosisModel.VitalSigns = &models.VitalSigns{
			Temperature:      request.VitalSigns.Temperature,
			BloodPressure:    request.VitalSigns.BloodPressure,
			HeartRate:        request.VitalSigns.HeartRate,
			RespiratoryRate:  request.VitalSigns.RespiratoryRate,
			OxygenSaturation: request.VitalSigns.OxygenSaturation,
		}
	}
	diagnosisModel.DifferentialDiagnoses = make([]models.DifferentialDiagnosis, 0, len(nlpDiagnosis.DifferentialDiagnoses))
	for _, diff := range nlpDiagnosis.DifferentialDiagnoses {
		diagnosisModel.DifferentialDiagnoses = append(diagnosisModel.DifferentialDiagnoses, models.DifferentialDiagnosis{
			Condition:  diff.Condition,
			Confidence: diff.Confidence,
			Reasoning:  diff.Reasoning,
		})
	}
	if nlpDiagnosis.TreatmentProtocol != nil {
		protocol := &models.TreatmentProtocol{
			Procedures: nlpDiagnosis.TreatmentProtocol.Procedures,
			Lifestyle:  nlpDiagnosis.TreatmentProtocol.Lifestyle,
		}
		for _, med := range nlpDiagnosis.TreatmentProtocol.Medications {
			protocol.Medications = append(protocol.Medications, models.TreatmentMedication{
				Name:      med.Name,
				Dosage:    med.Dosage,
				Frequency: med.Frequency,
				Duration:  med.Duration,
			})
		}
		diagnosisModel.TreatmentProtocol = protocol
	}
	return diagnosisModel
}
