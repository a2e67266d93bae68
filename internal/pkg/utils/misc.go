package utils

// ClampConfidence bounds a confidence score to [0,100]. Backend responses are
// trusted for ordering but not for range.
func ClampConfidence(confidence int) int {
	if confidence < 0 {
		return 0
	}
	if confidence > 100 {
		return 100
	}
	return confidence
}
