package models

import (
	"medassist-service/internal/pkg/dto/responses"
	"time"
)

// KnowledgeBaseEntry is the anonymized training signal derived from every
// successful diagnosis. No patient identity crosses into this collection.
type KnowledgeBaseEntry struct {
	ID         string   `bson:"_id,omitempty"`
	Symptoms   []string `bson:"symptoms"`
	AgeGroup   string   `bson:"ageGroup"`
	Gender     string   `bson:"gender"`
	Diagnosis  string   `bson:"diagnosis"`
	Confidence int      `bson:"confidence"`
	// Outcome is reserved for a future feedback loop; nothing writes it yet.
	Outcome   string `bson:"outcome,omitempty"`
	TimeModel `bson:",inline"`
}

func (e *KnowledgeBaseEntry) ToResponse() *responses.KnowledgeBaseEntry {
	return &responses.KnowledgeBaseEntry{
		ID:         e.ID,
		Symptoms:   e.Symptoms,
		AgeGroup:   e.AgeGroup,
		Gender:     e.Gender,
		Diagnosis:  e.Diagnosis,
		Confidence: e.Confidence,
		Outcome:    e.Outcome,
		CreatedAt:  e.CreatedAt.Format(time.RFC3339),
	}
}
