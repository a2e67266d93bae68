package responses

type KnowledgeBaseEntry struct {
	ID         string   `json:"id"`
	Symptoms   []string `json:"symptoms"`
	AgeGroup   string   `json:"ageGroup"`
	Gender     string   `json:"gender"`
	Diagnosis  string   `json:"diagnosis"`
	Confidence int      `json:"confidence"`
	Outcome    string   `json:"outcome,omitempty"`
	CreatedAt  string   `json:"createdAt"`
}

type SnapshotLastSync struct {
	LastSync string `json:"lastSync,omitempty"`
}
