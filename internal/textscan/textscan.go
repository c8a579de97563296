package textscan

import (
	"fmt"
	"regexp"
	"strings"
)

var (
	signaturePattern  = regexp.MustCompile(`(?i)(?:Regards|Thanks|Best regards|Sincerely|Cheers),?\s*(.*?)(?:\n|$)`)
	fromPattern       = regexp.MustCompile(`(?i)From:\s*(.*?)(?:\n|$)`)
	salutationPattern = regexp.MustCompile(`(?i)^(?:Hi|Hello|Dear).*?(?:,|\.)\s*(.*?)(?:\n|$)`)
	honorificPattern  = regexp.MustCompile(`(?i)^(?:Mr\.|Mrs\.|Ms\.|Dr\.|Prof\.)\s+`)

	subjectPattern = regexp.MustCompile(`(?i)Subject:\s*(.*?)(?:\n|$)`)

	deadlinePatterns = []*regexp.Regexp{
		regexp.MustCompile(`by (?:today|tomorrow|this afternoon)`),
		regexp.MustCompile(`within \d+ (?:hour|minute|day)`),
		regexp.MustCompile(`need.*by.*\d{1,2}(?::\d{2})?\s*(?:am|pm)`),
	}

	highImpactPatterns = []*regexp.Regexp{
		regexp.MustCompile(`(?:affecting|impacting).*(?:revenue|sales|customers|clients|users)`),
		regexp.MustCompile(`(?:down|unavailable|not working).*(?:production|live|customer-facing)`),
		regexp.MustCompile(`(?:unable to|can't|cannot).*(?:process|complete|finish).*(?:payroll|payment|transaction|order)`),
		regexp.MustCompile(`(?:blocking|preventing).*(?:work|progress|delivery|deployment)`),
		regexp.MustCompile(`(?:lost|losing).*(?:money|revenue|sales|customers)`),
	}

	mediumImpactPatterns = []*regexp.Regexp{
		regexp.MustCompile(`(?:delaying|slowing).*(?:work|progress|process)`),
		regexp.MustCompile(`(?:workaround|alternative).*(?:available|possible|exists)`),
		regexp.MustCompile(`(?:internal|team).*(?:affected|impacted)`),
		regexp.MustCompile(`(?:inconvenient|difficult|challenging)`),
	}
)

var urgencyVocabulary = []string{
	"urgent", "asap", "emergency", "immediately", "critical",
	"as soon as possible", "quickly", "right away",
	"highest priority", "deadline", "sos", "time sensitive",
}

var vipImpactRoles = []string{
	"ceo", "cfo", "cto", "director", "vp", "vice president", "head of", "chief",
}

var (
	negativeWords = []string{"cannot", "issue", "problem", "error", "fail", "bug", "broken", "urgent", "bad", "wrong"}
	positiveWords = []string{"thank", "please", "appreciate", "good", "great", "working"}
)

// CustomerName pulls a customer display name out of ticket text, trying a
// closing signature, a From: field, and an opening salutation in that order.
// Returns "Customer" when nothing matches.
func CustomerName(text string) string {
	patterns := []*regexp.Regexp{signaturePattern, fromPattern, salutationPattern}
	for _, p := range patterns {
		m := p.FindStringSubmatch(text)
		if m == nil {
			continue
		}
		name := strings.TrimSpace(m[1])
		return honorificPattern.ReplaceAllString(name, "")
	}
	return "Customer"
}

// Subject extracts an explicit "Subject:" line, falling back to the first
// body line when it is short enough to be a plausible subject.
func Subject(text string) string {
	if m := subjectPattern.FindStringSubmatch(text); m != nil {
		return strings.TrimSpace(m[1])
	}
	lines := strings.Split(strings.TrimSpace(text), "\n")
	if len(lines[0]) < 100 {
		return lines[0]
	}
	return ""
}

// UrgencyIndicators returns every urgency signal found in the text: vocabulary
// words, tight-deadline phrases, and repeated exclamation marks.
func UrgencyIndicators(text string) []string {
	var indicators []string
	lower := strings.ToLower(text)

	for _, word := range urgencyVocabulary {
		if strings.Contains(lower, word) {
			indicators = append(indicators, word)
		}
	}

	for _, p := range deadlinePatterns {
		indicators = append(indicators, p.FindAllString(lower, -1)...)
	}

	if strings.Contains(text, "!!") {
		indicators = append(indicators, "multiple exclamation marks")
	}

	return indicators
}

// BusinessImpact classifies the operational impact described in the text.
// High-impact patterns win over medium-impact ones; when neither matches, a
// VIP customer role still yields a potential-impact label.
func BusinessImpact(text string, customerRole string) string {
	lower := strings.ToLower(text)

	for _, p := range highImpactPatterns {
		if m := p.FindString(lower); m != "" {
			return fmt.Sprintf("High impact: %s", m)
		}
	}

	for _, p := range mediumImpactPatterns {
		if m := p.FindString(lower); m != "" {
			return fmt.Sprintf("Medium impact: %s", m)
		}
	}

	if customerRole != "" {
		lowerRole := strings.ToLower(customerRole)
		for _, role := range vipImpactRoles {
			if strings.Contains(lowerRole, role) {
				return fmt.Sprintf("Potential high impact based on customer role: %s", customerRole)
			}
		}
	}

	return ""
}

// SentimentScore computes a crude lexicon sentiment in [-1, 1]. Each
// vocabulary word counts at most once, matched by substring containment.
// Returns 0 when the text hits neither lexicon.
func SentimentScore(text string) float64 {
	lower := strings.ToLower(text)

	var negative, positive int
	for _, word := range negativeWords {
		if strings.Contains(lower, word) {
			negative++
		}
	}
	for _, word := range positiveWords {
		if strings.Contains(lower, word) {
			positive++
		}
	}

	total := negative + positive
	if total == 0 {
		return 0.0
	}
	return float64(positive-negative) / float64(total)
}
