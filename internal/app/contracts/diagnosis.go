package contracts

import (
	"context"
	"medassist-service/internal/app/models"
	"medassist-service/internal/pkg/dto/requests"
	"medassist-service/internal/pkg/dto/responses"
)

type DiagnosisUsecase interface {
	Analyze(ctx context.Context, request *requests.SymptomAnalysis) (*responses.DiagnosisResult, error)
	GetDiagnosisByID(ctx context.Context, diagnosisID string) (*responses.Diagnosis, error)
	ListDiagnoses(ctx context.Context) ([]responses.Diagnosis, error)
	ListDiagnosesByPatient(ctx context.Context, patientID string) ([]responses.Diagnosis, error)
}

type DiagnosisRepository interface {
	CreateDiagnosis(ctx context.Context, diagnosis *models.Diagnosis) (string, error)
	FindByID(ctx context.Context, diagnosisID string) (*models.Diagnosis, error)
	FindAll(ctx context.Context) ([]models.Diagnosis, error)
	FindByPatientID(ctx context.Context, patientID string) ([]models.Diagnosis, error)
}

// DiagnosisBackend is an opaque diagnosis-generation collaborator. Both the
// remote and the local fallback service satisfy it.
type DiagnosisBackend interface {
	Name() string
	Analyze(ctx context.Context, request *requests.SymptomAnalysis) (*responses.NLPDiagnosis, error)
}
