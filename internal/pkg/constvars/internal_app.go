package constvars

// Mongo collections
const (
	MongoCollectionPatients  = "patients"
	MongoCollectionDiagnoses = "diagnoses"
	MongoCollectionKnowledge = "knowledge_base"
)

// Supported request/storage language codes. LanguageDefault applies when the
// request omits the field.
const (
	LanguageEnglish = "en"
	LanguageHindi   = "hi"
	LanguageTamil   = "ta"
	LanguageTelugu  = "te"
	LanguageBengali = "bn"

	LanguageDefault = LanguageEnglish
)

var SupportedLanguages = []string{
	LanguageEnglish,
	LanguageHindi,
	LanguageTamil,
	LanguageTelugu,
	LanguageBengali,
}

// Gender values. GenderOther doubles as the wildcard in knowledge search.
const (
	GenderMale   = "male"
	GenderFemale = "female"
	GenderOther  = "other"
)

// Age buckets used for knowledge-base indexing only.
const (
	AgeGroupChild  = "child"
	AgeGroupAdult  = "adult"
	AgeGroupSenior = "senior"

	AgeAdultMin  = 18
	AgeSeniorMin = 60
)

// Provenance tags on a diagnosis result.
const (
	ProvenanceOnline  = "online"
	ProvenanceOffline = "offline"
)

// Snapshot store collections and key layout.
const (
	SnapshotCollectionPatients  = "patients"
	SnapshotCollectionDiagnoses = "diagnoses"

	SnapshotKeyPrefix   = "snapshot:"
	SnapshotLastSyncKey = "snapshot:last_sync"
)

// Degraded result returned when both diagnosis backends are unreachable.
// Still a 200 to the caller so the intake flow never hard-fails.
const (
	DegradedPrimaryDiagnosis = "Diagnosis service unavailable"
	DegradedReferralReason   = "Automated analysis could not be completed. Please consult a clinician directly or retry when connectivity is restored."
)

const (
	TrainingSignalEventType = "knowledge_entry.created"
)
