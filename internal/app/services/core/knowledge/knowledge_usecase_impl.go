package knowledge

import (
	"context"
	"medassist-service/internal/app/contracts"
	"medassist-service/internal/app/models"
	"medassist-service/internal/pkg/constvars"
	"medassist-service/internal/pkg/dto/requests"
	"medassist-service/internal/pkg/dto/responses"
	"medassist-service/internal/pkg/utils"
	"time"

	"go.uber.org/zap"
)

type knowledgeUsecase struct {
	KnowledgeRepository contracts.KnowledgeRepository
	SignalPublisher     contracts.TrainingSignalPublisher
	Log                 *zap.Logger
}

func NewKnowledgeUsecase(
	knowledgeMongoRepository contracts.KnowledgeRepository,
	signalPublisher contracts.TrainingSignalPublisher,
	log *zap.Logger,
) contracts.KnowledgeUsecase {
	return &knowledgeUsecase{
		KnowledgeRepository: knowledgeMongoRepository,
		SignalPublisher:     signalPublisher,
		Log:                 log,
	}
}

// AgeGroupForAge buckets an age for knowledge-base indexing: child below 18,
// senior from 60, adult in between. Not used for any clinical logic.
func AgeGroupForAge(age int) string {
	switch {
	case age < constvars.AgeAdultMin:
		return constvars.AgeGroupChild
	case age >= constvars.AgeSeniorMin:
		return constvars.AgeGroupSenior
	default:
		return constvars.AgeGroupAdult
	}
}

// AccumulateFromDiagnosis derives the anonymized entry for a stored
// diagnosis: canonical symptoms, age bucket, gender, the primary diagnosis
// and the top differential's confidence (100 when there is none). The entry
// carries no patient identity.
func (uc *knowledgeUsecase) AccumulateFromDiagnosis(ctx context.Context, diagnosis *models.Diagnosis, patientAge int, patientGender string) (*models.KnowledgeBaseEntry, error) {
	confidence := 100
	if len(diagnosis.DifferentialDiagnoses) > 0 {
		confidence = utils.ClampConfidence(diagnosis.DifferentialDiagnoses[0].Confidence)
	}

	entry := &models.KnowledgeBaseEntry{
		Symptoms:   NormalizeSymptoms(diagnosis.Symptoms, diagnosis.Language),
		AgeGroup:   AgeGroupForAge(patientAge),
		Gender:     patientGender,
		Diagnosis:  diagnosis.PrimaryDiagnosis,
		Confidence: confidence,
		TimeModel: models.TimeModel{
			CreatedAt: time.Now().UTC(),
		},
	}

	entryID, err := uc.KnowledgeRepository.AddEntry(ctx, entry)
	if err != nil {
		return nil, err
	}
	entry.ID = entryID

	if uc.SignalPublisher != nil {
		if err := uc.SignalPublisher.PublishKnowledgeEntry(ctx, entry); err != nil {
			uc.Log.Warn("failed to publish training signal", zap.Error(err))
		}
	}
	return entry, nil
}

func (uc *knowledgeUsecase) SearchKnowledge(ctx context.Context, request *requests.SearchKnowledge) ([]responses.KnowledgeBaseEntry, error) {
	language := request.Language
	if language == "" {
		language = constvars.LanguageDefault
	}
	symptoms := NormalizeSymptoms(request.Symptoms, language)

	entries, err := uc.KnowledgeRepository.Search(ctx, symptoms, request.AgeGroup, request.Gender)
	if err != nil {
		return nil, err
	}

	result := make([]responses.KnowledgeBaseEntry, 0, len(entries))
	for i := range entries {
		result = append(result, *entries[i].ToResponse())
	}
	return result, nil
}
