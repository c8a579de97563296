package triage

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/baguette-hq/triage-server/internal/templates"
)

// ErrNoTemplates is returned when response generation is attempted with an
// empty template set.
var ErrNoTemplates = errors.New("no templates configured")

const (
	baseConfidence           = 0.8
	vagueTicketPenalty       = 0.2
	negativeSentimentPenalty = 0.1
	minConfidence            = 0.1
	maxConfidence            = 1.0
)

const accessResolutionSteps = `Please try the following steps:
1. Clear your browser cache and cookies
2. Try accessing from an incognito/private window
3. Ensure you're using the correct admin credentials

If these steps don't resolve the issue, our technical team will need to investigate your account permissions.`

const billingCycleExplanation = `Our system bills from the 15th of each month. When you sign up on a date other than the 15th, we pro-rate your first invoice for the partial period.

For example, if you signed up on the 20th, your first invoice includes a pro-rated amount for the period from the 20th to the 14th of the following month. Subsequent invoices will cover the full period from the 15th to the 14th of the next month.`

const billingGenericExplanation = `Our billing system processes payments on a monthly basis, with the billing cycle starting on the 15th of each month. Your plan charges are calculated based on your subscription level and any additional usage fees that may apply.`

const billingNextSteps = `If you would like to:
1. Receive a detailed breakdown of your charges, we can provide that by email
2. Change your billing date to align with your signup date, we can arrange this for you
3. Discuss other billing options, please let us know your preferences`

const featureFeedbackFormat = `Thank you for your suggestion about %s. We appreciate customer feedback as it helps us improve our product.

We regularly review feature requests and prioritize them based on customer demand, alignment with our roadmap, and technical feasibility.`

const featureTimeline = `While I can't provide a specific timeline for implementation at this moment, I've logged your request in our product management system. Our product team will review it during our next planning cycle.

We'll be sure to notify you if this feature is added in a future update.`

const technicalTroubleshooting = `To help us resolve this issue efficiently, could you please provide the following information if you haven't already:

1. The exact error message you're seeing (or a screenshot)
2. Which browser and operating system you're using
3. The steps you were taking when the issue occurred
4. Whether this is a new issue or has happened before`

const technicalSolution = `Once we have this information, our technical team will investigate the issue. In the meantime, you might try:

1. Clearing your browser cache and cookies
2. Trying a different browser
3. Restarting your device

These simple steps sometimes resolve technical issues without further intervention.`

// TemplateResponder drafts replies by selecting a template, synthesizing its
// fields from the analysis, and filling placeholders with a soft-fail pass.
type TemplateResponder struct {
	logger *zap.Logger
}

// NewTemplateResponder creates the template-based responder.
func NewTemplateResponder(logger *zap.Logger) *TemplateResponder {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &TemplateResponder{logger: logger.Named("responder")}
}

// Generate renders a response suggestion. Template selection falls back from
// the suggested response type to the category name to the first template in
// the set's defined order; only an empty set is an error.
func (r *TemplateResponder) Generate(ctx context.Context, analysis Analysis, set *templates.Set, tctx TicketContext) (ResponseSuggestion, error) {
	template, err := selectTemplate(analysis, set)
	if err != nil {
		return ResponseSuggestion{}, err
	}

	vars := map[string]string{"name": tctx.CustomerName()}
	var actions []string

	switch analysis.Category {
	case CategoryAccess:
		mergeVars(vars, accessVars(analysis))
		actions = []string{
			"Verify user permissions in the admin system",
			"Check for recent security updates that might affect access",
		}
		if analysis.Priority >= PriorityHigh {
			actions = append(actions, "Escalate to access control team if not resolved within 1 hour")
		}

	case CategoryBilling:
		mergeVars(vars, billingVars(analysis))
		actions = []string{
			"Verify billing records",
			"Consider offering billing adjustments if appropriate",
		}

	case CategoryFeature:
		mergeVars(vars, featureVars(analysis))
		actions = []string{
			"Log feature request in product backlog",
			"Check with product team about similar planned features",
		}

	default:
		mergeVars(vars, technicalVars(analysis))
		actions = []string{
			"Document the issue in internal knowledge base",
			"Check for similar recent technical issues",
		}
		if analysis.Priority >= PriorityHigh {
			actions = append(actions, "Escalate to technical specialists if not resolved within 2 hours")
		}
	}

	requiresApproval := analysis.Priority == PriorityUrgent
	if requiresApproval {
		actions = append(actions, "Supervisory review required due to priority")
	}

	confidence := baseConfidence
	if len(analysis.KeyPoints) <= 1 {
		confidence -= vagueTicketPenalty
	}
	if analysis.Sentiment < -0.5 {
		confidence -= negativeSentimentPenalty
		actions = append(actions, "Follow up personally due to customer sentiment")
	}

	suggestion := ResponseSuggestion{
		ResponseText:     templates.Render(template, vars),
		ConfidenceScore:  clamp(confidence, minConfidence, maxConfidence),
		RequiresApproval: requiresApproval,
		SuggestedActions: actions,
	}

	r.logger.Debug("response generated",
		zap.String("category", string(analysis.Category)),
		zap.Float64("confidence", suggestion.ConfidenceScore),
		zap.Bool("requires_approval", suggestion.RequiresApproval))

	return suggestion, nil
}

func selectTemplate(analysis Analysis, set *templates.Set) (string, error) {
	if set.Len() == 0 {
		return "", ErrNoTemplates
	}
	if text, ok := set.Lookup(analysis.SuggestedResponseType); ok {
		return text, nil
	}
	if text, ok := set.Lookup(string(analysis.Category)); ok {
		return text, nil
	}
	first, _ := set.First()
	return first.Text, nil
}

func accessVars(a Analysis) map[string]string {
	vars := make(map[string]string)

	switch {
	case a.hasKeyPointContaining("dashboard"):
		vars["feature"] = "admin dashboard"
	case a.hasKeyPointContaining("login"):
		vars["feature"] = "login system"
	default:
		vars["feature"] = "system"
	}

	if a.hasKeyPointContaining("403") {
		vars["diagnosis"] = "It appears you're encountering a 403 error, which typically indicates a permissions issue. This could be due to recent security updates or account changes."
	} else {
		vars["diagnosis"] = "Based on your description, it appears to be an access control issue that might be related to your account permissions."
	}

	vars["resolution_steps"] = accessResolutionSteps

	if a.Priority >= PriorityHigh {
		vars["priority_level"] = "HIGH"
		vars["eta"] = "Today (within 2-3 hours)"
	} else {
		vars["priority_level"] = "MEDIUM"
		vars["eta"] = "Within 24 hours"
	}

	return vars
}

func billingVars(a Analysis) map[string]string {
	vars := make(map[string]string)

	switch {
	case a.hasKeyPointContaining("cycle"):
		vars["billing_topic"] = "billing cycle"
	case a.hasKeyPointContaining("invoice"):
		vars["billing_topic"] = "invoice"
	case a.hasKeyPointContaining("payment"):
		vars["billing_topic"] = "payment"
	default:
		vars["billing_topic"] = "billing inquiry"
	}

	if vars["billing_topic"] == "billing cycle" {
		vars["explanation"] = billingCycleExplanation
	} else {
		vars["explanation"] = billingGenericExplanation
	}

	vars["next_steps"] = billingNextSteps

	return vars
}

func featureVars(a Analysis) map[string]string {
	vars := make(map[string]string)

	featureName := "the requested functionality"
	for _, point := range a.KeyPoints {
		lower := strings.ToLower(point)
		if strings.Contains(lower, "feature") || strings.Contains(lower, "request") {
			featureName = strings.ReplaceAll(point, "Feature request: ", "")
			featureName = strings.ReplaceAll(featureName, "Addition request: ", "")
			break
		}
	}

	vars["feature_name"] = featureName
	vars["feedback"] = fmt.Sprintf(featureFeedbackFormat, featureName)
	vars["timeline"] = featureTimeline

	return vars
}

func technicalVars(a Analysis) map[string]string {
	vars := make(map[string]string)

	switch {
	case a.hasKeyPointContaining("error"):
		vars["issue_description"] = "the error you encountered"
	case a.hasKeyPointContaining("crash"):
		vars["issue_description"] = "the system crash"
	case a.hasKeyPointContaining("slow"):
		vars["issue_description"] = "the performance issue"
	default:
		vars["issue_description"] = "the technical issue you reported"
	}

	vars["troubleshooting"] = technicalTroubleshooting
	vars["solution"] = technicalSolution

	if a.Priority >= PriorityHigh {
		vars["priority_level"] = "HIGH"
	} else {
		vars["priority_level"] = "STANDARD"
	}

	return vars
}

func (a Analysis) hasKeyPointContaining(marker string) bool {
	for _, point := range a.KeyPoints {
		if strings.Contains(strings.ToLower(point), marker) {
			return true
		}
	}
	return false
}

func mergeVars(dst, src map[string]string) {
	for k, v := range src {
		dst[k] = v
	}
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
