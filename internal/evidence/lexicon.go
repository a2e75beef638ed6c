package evidence

// Keyword lexicons for the heuristic judge dimensions.

func judgePositiveWords() []string {
	return []string{"good", "strong", "effective", "successful", "beneficial", "positive"}
}

func judgeNegativeWords() []string {
	return []string{"bad", "weak", "ineffective", "unsuccessful", "harmful", "negative"}
}

func factualIndicators() []string {
	return []string{"study", "research", "data", "according", "found"}
}

func connectorWords() []string {
	return []string{"however", "moreover", "furthermore", "additionally", "therefore", "consequently"}
}

func subjectiveWords() []string {
	return []string{"amazing", "terrible", "obviously", "clearly", "must", "should", "awful", "fantastic"}
}
