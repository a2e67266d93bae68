package knowledge

import (
	"medassist-service/internal/pkg/constvars"
	"strings"
)

// Per-language symptom label to canonical English key. The knowledge base
// accumulates and is searched with canonical keys only, so entries written
// from a Hindi intake still match a Tamil query for the same symptom.
var symptomNormalization = map[string]map[string]string{
	constvars.LanguageEnglish: {
		"fever":               "fever",
		"cough":               "cough",
		"headache":            "headache",
		"body ache":           "body ache",
		"bodyache":            "body ache",
		"body pain":           "body ache",
		"nausea":              "nausea",
		"vomiting":            "vomiting",
		"diarrhea":            "diarrhea",
		"loose stools":        "diarrhea",
		"stomach pain":        "abdominal pain",
		"abdominal pain":      "abdominal pain",
		"chest pain":          "chest pain",
		"shortness of breath": "shortness of breath",
		"breathlessness":      "shortness of breath",
		"fatigue":             "fatigue",
		"tiredness":           "fatigue",
		"dizziness":           "dizziness",
		"giddiness":           "dizziness",
		"rash":                "rash",
		"skin rash":           "rash",
		"sore throat":         "sore throat",
		"throat pain":         "sore throat",
		"runny nose":          "runny nose",
		"cold":                "runny nose",
	},
	constvars.LanguageHindi: {
		"बुखार":           "fever",
		"खांसी":           "cough",
		"सिरदर्द":         "headache",
		"शरीर दर्द":       "body ache",
		"मतली":            "nausea",
		"उल्टी":           "vomiting",
		"दस्त":            "diarrhea",
		"पेट दर्द":        "abdominal pain",
		"सीने में दर्द":   "chest pain",
		"सांस की तकलीफ":   "shortness of breath",
		"थकान":            "fatigue",
		"चक्कर आना":       "dizziness",
		"चकत्ते":          "rash",
		"गले में खराश":    "sore throat",
		"बहती नाक":        "runny nose",
	},
	constvars.LanguageTamil: {
		"காய்ச்சல்":           "fever",
		"இருமல்":              "cough",
		"தலைவலி":              "headache",
		"உடல் வலி":            "body ache",
		"குமட்டல்":            "nausea",
		"வாந்தி":              "vomiting",
		"வயிற்றுப்போக்கு":     "diarrhea",
		"வயிற்று வலி":         "abdominal pain",
		"மார்பு வலி":          "chest pain",
		"மூச்சுத் திணறல்":     "shortness of breath",
		"சோர்வு":              "fatigue",
		"தலைச்சுற்றல்":        "dizziness",
		"தடிப்பு":             "rash",
		"தொண்டை வலி":          "sore throat",
		"மூக்கு ஒழுகுதல்":     "runny nose",
	},
	constvars.LanguageTelugu: {
		"జ్వరం":                              "fever",
		"దగ్గు":                              "cough",
		"తలనొప్పి":                           "headache",
		"శరీర నొప్పి":                        "body ache",
		"వికారం":                             "nausea",
		"వాంతులు":                            "vomiting",
		"విరేచనాలు":                          "diarrhea",
		"పొట్ట నొప్పి":                       "abdominal pain",
		"ఛాతీ నొప్పి":                        "chest pain",
		"ఊపిరి పీల్చుకోవడంలో ఇబ్బంది":        "shortness of breath",
		"అలసట":                               "fatigue",
		"తలతిరగడం":                           "dizziness",
		"దద్దుర్లు":                          "rash",
		"గొంతు నొప్పి":                       "sore throat",
		"ముక్కు కారడం":                       "runny nose",
	},
	constvars.LanguageBengali: {
		"জ্বর":                  "fever",
		"কাশি":                  "cough",
		"মাথাব্যথা":             "headache",
		"শরীর ব্যথা":            "body ache",
		"বমি বমি ভাব":           "nausea",
		"বমি":                   "vomiting",
		"ডায়রিয়া":             "diarrhea",
		"পেট ব্যথা":             "abdominal pain",
		"বুকে ব্যথা":            "chest pain",
		"শ্বাসকষ্ট":             "shortness of breath",
		"ক্লান্তি":              "fatigue",
		"মাথা ঘোরা":             "dizziness",
		"ফুসকুড়ি":              "rash",
		"গলা ব্যথা":             "sore throat",
		"নাক দিয়ে পানি পড়া":   "runny nose",
	},
}

// NormalizeSymptom maps a visible symptom label to its canonical English
// key. Unknown labels pass through lowercased so they are still searchable.
func NormalizeSymptom(symptom, language string) string {
	s := strings.ToLower(strings.TrimSpace(symptom))
	if langMap, ok := symptomNormalization[language]; ok {
		if canonical, ok := langMap[s]; ok {
			return canonical
		}
	}
	if canonical, ok := symptomNormalization[constvars.LanguageEnglish][s]; ok {
		return canonical
	}
	return s
}

func NormalizeSymptoms(symptoms []string, language string) []string {
	normalized := make([]string, 0, len(symptoms))
	for _, symptom := range symptoms {
		normalized = append(normalized, NormalizeSymptom(symptom, language))
	}
	return normalized
}
