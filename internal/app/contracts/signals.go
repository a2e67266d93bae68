package contracts

import (
	"context"
	"medassist-service/internal/app/models"
)

// TrainingSignalPublisher forwards anonymized knowledge entries to the
// model-training queue. Publishing is best-effort.
type TrainingSignalPublisher interface {
	PublishKnowledgeEntry(ctx context.Context, entry *models.KnowledgeBaseEntry) error
}
