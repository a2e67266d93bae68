package responses

// Wire shapes shared with the diagnosis backends. Field names follow the
// backend contract, not Go conventions.

type DifferentialDiagnosis struct {
	Condition  string `json:"condition"`
	Confidence int    `json:"confidence"`
	Reasoning  string `json:"reasoning,omitempty"`
}

type TreatmentMedication struct {
	Name      string `json:"name"`
	Dosage    string `json:"dosage"`
	Frequency string `json:"frequency"`
	Duration  string `json:"duration"`
}

type TreatmentProtocol struct {
	Medications []TreatmentMedication `json:"medications,omitempty"`
	Procedures  []string              `json:"procedures,omitempty"`
	Lifestyle   []string              `json:"lifestyle,omitempty"`
}

type KnowledgeSnippet struct {
	ID      string `json:"id"`
	Title   string `json:"title"`
	Content string `json:"content"`
	Source  string `json:"source,omitempty"`
}

// NLPDiagnosis is the raw response of either backend. The local service may
// attach KnowledgeSnippets; the remote one never does.
type NLPDiagnosis struct {
	PrimaryDiagnosis      string                  `json:"primaryDiagnosis"`
	DifferentialDiagnoses []DifferentialDiagnosis `json:"differentialDiagnoses"`
	TreatmentProtocol     *TreatmentProtocol      `json:"treatmentProtocol,omitempty"`
	RequiresReferral      bool                    `json:"requiresReferral"`
	ReferralReason        string                  `json:"referralReason,omitempty"`
	KnowledgeSnippets     []KnowledgeSnippet      `json:"knowledgeSnippets,omitempty"`
}

// DiagnosisResult is the normalized analyze response returned to the UI.
type DiagnosisResult struct {
	DiagnosisID           string                  `json:"diagnosisId,omitempty"`
	PatientID             string                  `json:"patientId"`
	Symptoms              []string                `json:"symptoms"`
	PrimaryDiagnosis      string                  `json:"primaryDiagnosis"`
	DifferentialDiagnoses []DifferentialDiagnosis `json:"differentialDiagnoses"`
	TreatmentProtocol     *TreatmentProtocol      `json:"treatmentProtocol,omitempty"`
	RequiresReferral      bool                    `json:"requiresReferral"`
	ReferralReason        string                  `json:"referralReason,omitempty"`
	KnowledgeSnippets     []KnowledgeSnippet      `json:"knowledgeSnippets,omitempty"`
	Language              string                  `json:"language"`
	Provenance            string                  `json:"provenance"`
	CreatedAt             string                  `json:"createdAt,omitempty"`
}

type Diagnosis struct {
	ID                    string                  `json:"id"`
	PatientID             string                  `json:"patientId"`
	Symptoms              []string                `json:"symptoms"`
	VitalSigns            interface{}             `json:"vitalSigns,omitempty"`
	PrimaryDiagnosis      string                  `json:"primaryDiagnosis"`
	DifferentialDiagnoses []DifferentialDiagnosis `json:"differentialDiagnoses"`
	TreatmentProtocol     *TreatmentProtocol      `json:"treatmentProtocol,omitempty"`
	RequiresReferral      bool                    `json:"requiresReferral"`
	ReferralReason        string                  `json:"referralReason,omitempty"`
	Language              string                  `json:"language"`
	Provenance            string                  `json:"provenance"`
	CreatedAt             string                  `json:"createdAt"`
}
