package contracts

import (
	"context"
	"medassist-service/internal/app/models"
	"medassist-service/internal/pkg/dto/requests"
	"medassist-service/internal/pkg/dto/responses"
)

type KnowledgeUsecase interface {
	// AccumulateFromDiagnosis derives and stores the anonymized knowledge
	// entry for a stored diagnosis. Best-effort by contract: callers log
	// the returned error, they never fail on it.
	AccumulateFromDiagnosis(ctx context.Context, diagnosis *models.Diagnosis, patientAge int, patientGender string) (*models.KnowledgeBaseEntry, error)
	SearchKnowledge(ctx context.Context, request *requests.SearchKnowledge) ([]responses.KnowledgeBaseEntry, error)
}

type KnowledgeRepository interface {
	AddEntry(ctx context.Context, entry *models.KnowledgeBaseEntry) (string, error)
	Search(ctx context.Context, symptoms []string, ageGroup, gender string) ([]models.KnowledgeBaseEntry, error)
}
