package recommendation

import (
	"fmt"
	"sort"

	"github.com/de-tools/factory-atlas/pkg/models/domain"
	"github.com/google/uuid"
)

// IDGenerator assigns the id of the recommendation at position index of the
// final, sorted list.
type IDGenerator func(index int, r domain.Recommendation) string

// RandomIDs assigns random UUIDs.
func RandomIDs(_ int, _ domain.Recommendation) string {
	return uuid.NewString()
}

// SequentialIDs assigns ids derived from the position in the report only, so
// the same input always yields the same ids.
func SequentialIDs(prefix string) IDGenerator {
	return func(index int, _ domain.Recommendation) string {
		return fmt.Sprintf("%s-%03d", prefix, index+1)
	}
}

// Engine turns efficiency metrics, bottlenecks and the low stock snapshot into
// a prioritised list of recommendations.
type Engine interface {
	Generate(
		metrics domain.EfficiencyMetrics,
		bottlenecks domain.BottleneckAnalysis,
		lowStock []domain.InventoryItem,
	) domain.RecommendationReport
}

type engine struct {
	settings Settings
	ids      IDGenerator
}

// NewEngine creates an engine. A nil generator falls back to RandomIDs.
func NewEngine(settings Settings, ids IDGenerator) Engine {
	if ids == nil {
		ids = RandomIDs
	}
	return &engine{
		settings: settings,
		ids:      ids,
	}
}

type rule func(
	metrics domain.EfficiencyMetrics,
	bottlenecks domain.BottleneckAnalysis,
	lowStock []domain.InventoryItem,
) []domain.Recommendation

// Generate evaluates every rule, orders the results by priority and keeps the
// rule order among recommendations of equal priority.
func (e *engine) Generate(
	metrics domain.EfficiencyMetrics,
	bottlenecks domain.BottleneckAnalysis,
	lowStock []domain.InventoryItem,
) domain.RecommendationReport {
	rules := []rule{
		e.productionRules,
		e.capacityRules,
		e.costRules,
		e.leadTimeRules,
		e.stageRules,
		e.productRules,
		e.supplierRules,
		e.inventoryRules,
	}

	recommendations := make([]domain.Recommendation, 0)
	for _, r := range rules {
		recommendations = append(recommendations, r(metrics, bottlenecks, lowStock)...)
	}

	sort.SliceStable(recommendations, func(i, j int) bool {
		return recommendations[i].Priority.Rank() < recommendations[j].Priority.Rank()
	})

	for i := range recommendations {
		recommendations[i].ID = e.ids(i, recommendations[i])
	}

	return domain.RecommendationReport{
		Period:          metrics.Period,
		Recommendations: recommendations,
		Summary:         e.summarize(recommendations),
	}
}

func (e *engine) summarize(recommendations []domain.Recommendation) domain.RecommendationSummary {
	critical, high := 0, 0
	for _, r := range recommendations {
		switch r.Priority {
		case domain.PriorityCritical:
			critical++
		case domain.PriorityHigh:
			high++
		}
	}

	return domain.RecommendationSummary{
		TotalRecommendations: len(recommendations),
		CriticalCount:        critical,
		HighPriorityCount:    high,
		EstimatedImpact:      e.impactNarrative(critical, high),
	}
}

func (e *engine) impactNarrative(critical, high int) string {
	s := e.settings
	switch {
	case critical >= s.ImmediateCriticalCount:
		return "Immediate action required: several critical issues are hurting operations right now"
	case critical >= s.PriorityCriticalCount || high >= s.PriorityHighCount:
		return "Priority attention needed: addressing these issues will noticeably improve performance"
	case high >= s.ImprovementHighCount:
		return "Improvement opportunities identified to further optimize operations"
	default:
		return "Operations are stable; keep monitoring the key indicators"
	}
}

func urgency(p domain.Priority) string {
	switch p {
	case domain.PriorityCritical:
		return "immediate"
	case domain.PriorityHigh:
		return "within 1 week"
	case domain.PriorityMedium:
		return "within 2 weeks"
	default:
		return "within 1 month"
	}
}
