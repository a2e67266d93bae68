package constvars

const (
	// Generic messages
	ResponseUnknown = "unknown"
	ResponseSuccess = "success"
	ResponseError   = "error"

	// Patient-related messages
	PatientCreatedSuccess = "patient created successfully"
	PatientGetSuccess     = "get patient successfully"
	PatientListSuccess    = "get patients successfully"

	// Diagnosis-related messages
	DiagnosisAnalyzeSuccess = "symptom analysis completed"
	DiagnosisGetSuccess     = "get diagnosis successfully"
	DiagnosisListSuccess    = "get diagnoses successfully"

	// Knowledge-base messages
	KnowledgeSearchSuccess = "knowledge base searched successfully"

	// Admin messages
	SnapshotClearedSuccess  = "snapshots cleared successfully"
	SnapshotLastSyncSuccess = "get last sync successfully"
)
