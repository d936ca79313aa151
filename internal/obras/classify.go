package obras

import (
	"math"
	"time"
)

type ViabilityTier string

const (
	ViabilityHigh   ViabilityTier = "alta"
	ViabilityMedium ViabilityTier = "media"
	ViabilityLow    ViabilityTier = "baja"
)

// ViabilityTierFromLights classifies a project from its five traffic lights:
// any red means low viability, two or more yellows mean medium, otherwise
// high.
func ViabilityTierFromLights(lights []string) ViabilityTier {
	yellows := 0
	for _, l := range lights {
		switch l {
		case SemaphoreRed:
			return ViabilityLow
		case SemaphoreYellow:
			yellows++
		}
	}
	if yellows >= 2 {
		return ViabilityMedium
	}
	return ViabilityHigh
}

type Status string

const (
	StatusCompleted  Status = "completado"
	StatusAtRisk     Status = "en_riesgo"
	StatusDelayed    Status = "retrasado"
	StatusInProgress Status = "en_ejecucion"
	StatusPlanned    Status = "planificado"
)

// ProjectStatus derives the lifecycle state from physical progress, risk and
// the actual start date. The first matching rule wins.
func ProjectStatus(physicalPct float64, riskLevel int, actualStart *time.Time, today time.Time) Status {
	switch {
	case physicalPct >= 100:
		return StatusCompleted
	case riskLevel > 3:
		return StatusAtRisk
	case actualStart != nil && !actualStart.After(today) && physicalPct == 0:
		return StatusDelayed
	case physicalPct > 0:
		return StatusInProgress
	default:
		return StatusPlanned
	}
}

// UnifiedSemaphore condenses risk, progress, urgency and the technical and
// budget lights into one overall light.
func UnifiedSemaphore(riskLevel int, physicalPct float64, urgency int, technicalLight, budgetLight string) string {
	switch {
	case riskLevel >= 4:
		return SemaphoreRed
	case physicalPct < 20 && urgency >= 4:
		return SemaphoreRed
	case technicalLight == SemaphoreRed || budgetLight == SemaphoreRed:
		return SemaphoreRed
	case riskLevel == 3:
		return SemaphoreYellow
	default:
		return SemaphoreGreen
	}
}

// EffectiveBudget prefers the modified budget and falls back to the
// pre-project total when no modification was captured.
func EffectiveBudget(modified, preProject float64) float64 {
	if modified > 0 {
		return modified
	}
	return preProject
}

// ExecutedAmount applies the financial progress percentage to the effective
// budget, rounded to cents.
func ExecutedAmount(effective, financialPct float64) float64 {
	return math.Round(effective*financialPct) / 100
}
