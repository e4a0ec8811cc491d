package internal

import "regexp"

// Urgency markers checked strictly before deferral markers, so a phrase
// carrying both classifies high.
var (
	urgencyPattern = regexp.MustCompile(`(?i)\b(?:urgent(?:ly)?|asap|immediately|critical|emergency|right away)\b|!{2,}`)

	deferralPattern = regexp.MustCompile(`(?i)\b(?:eventually|someday|later|no rush|whenever)\b|\bwhen\s+(?:you|i)\s+(?:have|get)\s+(?:time|a\s+chance)\b`)
)

// ClassifyPriority assigns a priority to an extracted phrase. The
// surrounding message context participates in the check so urgency stated
// outside the phrase itself still counts. Default is medium.
func ClassifyPriority(phrase, context string) Priority {
	combined := phrase + " " + context

	if urgencyPattern.MatchString(combined) {
		return PriorityHigh
	}
	if deferralPattern.MatchString(combined) {
		return PriorityLow
	}
	return PriorityMedium
}
