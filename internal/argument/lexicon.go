package argument

// Sentiment and structure lexicons used by the feature extractor.
// Each slice is owned by this package and never mutated.

func positiveWords() []string {
	return []string{
		"effective", "strong", "good", "excellent", "compelling", "clear",
		"comprehensive", "robust", "thorough", "well", "successful",
		"beneficial", "credible", "sound",
	}
}

func negativeWords() []string {
	return []string{
		"weak", "poor", "lacking", "insufficient", "vague", "unclear",
		"incomplete", "questionable", "problematic", "flawed", "inadequate",
		"limited",
	}
}

func introMarkers() []string {
	return []string{"introduction", "overview", "summary", "this document", "the pitch"}
}

func conclusionMarkers() []string {
	return []string{"conclusion", "summary", "therefore", "in conclusion", "overall"}
}
