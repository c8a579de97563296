package triage

import (
	"context"
	"strings"

	"go.uber.org/zap"

	"github.com/baguette-hq/triage-server/internal/templates"
)

// CannedAnalyzer is a scripted Analyzer that returns fixed analyses keyed on
// simple content checks. It stands in for a remote scoring backend during
// demos and exercises the Analyzer contract with a second implementation.
type CannedAnalyzer struct {
	logger *zap.Logger
}

// NewCannedAnalyzer creates the scripted analyzer.
func NewCannedAnalyzer(logger *zap.Logger) *CannedAnalyzer {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &CannedAnalyzer{logger: logger.Named("canned-analyzer")}
}

// Analyze routes on a handful of content keywords and returns the matching
// canned analysis. Unrecognized content falls back to a generic technical
// analysis, so this implementation never fails either.
func (a *CannedAnalyzer) Analyze(ctx context.Context, body string, attrs map[string]string) (Analysis, error) {
	content := strings.ToLower(body)

	var analysis Analysis
	switch {
	case containsAny(content, []string{"access", "dashboard", "403"}):
		analysis = Analysis{
			Category:              CategoryAccess,
			Priority:              PriorityHigh,
			KeyPoints:             []string{"Cannot access admin dashboard", "Getting 403 error", "Needs to process payroll"},
			RequiredExpertise:     []string{"access control", "permissions", "admin systems"},
			Sentiment:             -0.5,
			UrgencyIndicators:     []string{"ASAP", "today"},
			BusinessImpact:        "Blocking payroll processing",
			SuggestedResponseType: templates.KeyAccessIssue,
		}
	case containsAny(content, []string{"billing", "invoice"}):
		analysis = Analysis{
			Category:              CategoryBilling,
			Priority:              PriorityMedium,
			KeyPoints:             []string{"Question about billing cycle", "Pro-rating confusion", "Invoice date discrepancy"},
			RequiredExpertise:     []string{"billing", "finance", "customer accounts"},
			Sentiment:             -0.1,
			BusinessImpact:        "Minimal, requesting clarification",
			SuggestedResponseType: templates.KeyBillingInquiry,
		}
	case containsAny(content, []string{"feature", "request"}):
		analysis = Analysis{
			Category:              CategoryFeature,
			Priority:              PriorityLow,
			KeyPoints:             []string{"Requesting CSV export", "Currently manual process", "Time-consuming"},
			RequiredExpertise:     []string{"product management", "development"},
			Sentiment:             0.2,
			BusinessImpact:        "Efficiency improvement opportunity",
			SuggestedResponseType: templates.KeyFeatureRequest,
		}
	default:
		analysis = Analysis{
			Category:              CategoryTechnical,
			Priority:              PriorityMedium,
			KeyPoints:             []string{"System not working", "Unspecified issue", "Needs troubleshooting"},
			RequiredExpertise:     []string{"technical support", "troubleshooting"},
			Sentiment:             -0.4,
			UrgencyIndicators:     []string{"help"},
			BusinessImpact:        "User blocked from normal operation",
			SuggestedResponseType: templates.KeyTechnicalIssue,
		}
	}

	a.logger.Debug("canned analysis selected",
		zap.String("category", string(analysis.Category)),
		zap.Stringer("priority", analysis.Priority))

	return analysis, nil
}
