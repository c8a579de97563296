package triage

import (
	"context"
	"strings"

	"go.uber.org/zap"

	"github.com/baguette-hq/triage-server/internal/templates"
	"github.com/baguette-hq/triage-server/internal/textscan"
)

// categoryRule binds a keyword set to the category it selects, along with the
// expertise tags and response template key that category implies.
type categoryRule struct {
	category  Category
	keywords  []string
	expertise []string
	response  string
}

// classificationRules are evaluated top to bottom and the first rule with a
// matching keyword wins. The order is a documented contract: access before
// billing before feature, with technical as the fallback.
var classificationRules = []categoryRule{
	{
		category:  CategoryAccess,
		keywords:  []string{"access", "login", "permission", "403", "dashboard"},
		expertise: []string{"access control", "permissions", "authentication"},
		response:  templates.KeyAccessIssue,
	},
	{
		category:  CategoryBilling,
		keywords:  []string{"bill", "invoice", "payment", "charge", "pricing", "cost", "subscription"},
		expertise: []string{"billing", "accounting", "finance"},
		response:  templates.KeyBillingInquiry,
	},
	{
		category:  CategoryFeature,
		keywords:  []string{"feature", "enhancement", "improvement", "add", "suggestion", "roadmap"},
		expertise: []string{"product management", "development"},
		response:  templates.KeyFeatureRequest,
	},
}

// technicalRule is the fallback when no classification keyword matches.
var technicalRule = categoryRule{
	category:  CategoryTechnical,
	expertise: []string{"technical support", "troubleshooting"},
	response:  templates.KeyTechnicalIssue,
}

// keyPointMarker emits a key point when any of its markers appears in the
// lowercased ticket content.
type keyPointMarker struct {
	markers []string
	point   string
}

var keyPointRules = map[Category][]keyPointMarker{
	CategoryAccess: {
		{markers: []string{"dashboard"}, point: "Cannot access dashboard"},
		{markers: []string{"403"}, point: "Receiving 403 error"},
		{markers: []string{"password"}, point: "Password issue"},
		{markers: []string{"login"}, point: "Login problem"},
		{markers: []string{"permission"}, point: "Permission problem"},
	},
	CategoryBilling: {
		{markers: []string{"invoice"}, point: "Invoice question"},
		{markers: []string{"payment"}, point: "Payment issue"},
		{markers: []string{"charge"}, point: "Charge inquiry"},
		{markers: []string{"refund"}, point: "Refund request"},
		{markers: []string{"cycle", "pro-rat"}, point: "Billing cycle question"},
	},
	CategoryFeature: {
		{markers: []string{"request"}, point: "Feature request"},
		{markers: []string{"suggest"}, point: "Feature suggestion"},
		{markers: []string{"add"}, point: "Addition request"},
		{markers: []string{"improve"}, point: "Improvement suggestion"},
		{markers: []string{"roadmap"}, point: "Roadmap inquiry"},
	},
	CategoryTechnical: {
		{markers: []string{"error"}, point: "Error reported"},
		{markers: []string{"crash"}, point: "System crash"},
		{markers: []string{"bug"}, point: "Bug report"},
		{markers: []string{"slow"}, point: "Performance issue"},
		{markers: []string{"not working"}, point: "Functionality issue"},
	},
}

var fallbackKeyPoints = map[Category]string{
	CategoryAccess:    "General access issue",
	CategoryBilling:   "General billing question",
	CategoryFeature:   "General feature request",
	CategoryTechnical: "Technical issue",
}

// vipPriorityRoles escalate priority when found in the customer role. This is
// a wider vocabulary than the one the impact assessor uses.
var vipPriorityRoles = []string{
	"ceo", "cfo", "cto", "director", "vp", "vice president",
	"president", "head", "chief", "manager",
}

// RuleAnalyzer is the default Analyzer: ordered keyword rules for category,
// escalation-only rules for priority, and the text extractors for the rest.
type RuleAnalyzer struct {
	logger *zap.Logger
}

// NewRuleAnalyzer creates the rule-based analyzer.
func NewRuleAnalyzer(logger *zap.Logger) *RuleAnalyzer {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &RuleAnalyzer{logger: logger.Named("rule-analyzer")}
}

// Analyze applies the classification and prioritization rules. It never
// fails: unmatched text degrades to the technical category with a generic
// key point.
func (a *RuleAnalyzer) Analyze(ctx context.Context, body string, attrs map[string]string) (Analysis, error) {
	content := strings.ToLower(body)

	rule := classify(content)

	analysis := Analysis{
		Category:              rule.category,
		Priority:              PriorityMedium,
		KeyPoints:             extractKeyPoints(rule.category, content),
		RequiredExpertise:     rule.expertise,
		Sentiment:             textscan.SentimentScore(body),
		UrgencyIndicators:     textscan.UrgencyIndicators(body),
		BusinessImpact:        textscan.BusinessImpact(body, attrs[AttrRole]),
		SuggestedResponseType: rule.response,
	}

	// Priority only ever moves up from here, rule by rule.
	if len(analysis.UrgencyIndicators) > 0 {
		analysis.Priority = analysis.Priority.AtLeast(PriorityHigh)
	}

	if strings.Contains(content, "payroll") || strings.Contains(content, "revenue") || strings.Contains(content, "cannot work") {
		analysis.Priority = PriorityUrgent
		analysis.BusinessImpact = "Critical business function impacted"
	}

	if containsAny(strings.ToLower(attrs[AttrRole]), vipPriorityRoles) {
		analysis.Priority = analysis.Priority.AtLeast(PriorityHigh)
	}

	if attrs[AttrPlan] == "Enterprise" {
		analysis.Priority = analysis.Priority.AtLeast(PriorityMedium)
	}

	a.logger.Debug("ticket analyzed",
		zap.String("category", string(analysis.Category)),
		zap.Stringer("priority", analysis.Priority),
		zap.Int("key_points", len(analysis.KeyPoints)))

	return analysis, nil
}

func classify(content string) categoryRule {
	for _, rule := range classificationRules {
		if containsAny(content, rule.keywords) {
			return rule
		}
	}
	return technicalRule
}

func extractKeyPoints(category Category, content string) []string {
	var points []string
	for _, rule := range keyPointRules[category] {
		for _, marker := range rule.markers {
			if strings.Contains(content, marker) {
				points = append(points, rule.point)
				break
			}
		}
	}
	if len(points) == 0 {
		points = append(points, fallbackKeyPoints[category])
	}
	return points
}

func containsAny(s string, subs []string) bool {
	for _, sub := range subs {
		if strings.Contains(s, sub) {
			return true
		}
	}
	return false
}
