package obras

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/stat"
)

// Criteria holds the seven 1-5 evaluation axes of a project. Zero values are
// treated as "not captured" and score as 1.
type Criteria struct {
	Alignment          int `json:"alineacion_estrategica"`
	SocialImpact       int `json:"impacto_social"`
	Urgency            int `json:"urgencia"`
	ExecutionViability int `json:"viabilidad_ejecucion"`
	Resources          int `json:"recursos_disponibles"`
	Risk               int `json:"nivel_riesgo"`
	Dependencies       int `json:"nivel_dependencia"`
}

// Clamp forces every criterion into [1,5], mapping missing values to the
// floor rather than rejecting the record.
func (c Criteria) Clamp() Criteria {
	c.Alignment = clampScale(c.Alignment)
	c.SocialImpact = clampScale(c.SocialImpact)
	c.Urgency = clampScale(c.Urgency)
	c.ExecutionViability = clampScale(c.ExecutionViability)
	c.Resources = clampScale(c.Resources)
	c.Risk = clampScale(c.Risk)
	c.Dependencies = clampScale(c.Dependencies)
	return c
}

func clampScale(v int) int {
	if v < 1 {
		return 1
	}
	if v > 5 {
		return 5
	}
	return v
}

// WeightedScore is the arithmetic mean of the seven criteria, rounded to two
// decimals. It is always recomputed locally; score columns in source files
// are ignored.
func (c Criteria) WeightedScore() float64 {
	c = c.Clamp()
	values := []float64{
		float64(c.Alignment),
		float64(c.SocialImpact),
		float64(c.Urgency),
		float64(c.ExecutionViability),
		float64(c.Resources),
		float64(c.Risk),
		float64(c.Dependencies),
	}
	return math.Round(stat.Mean(values, nil)*100) / 100
}

type Priority string

const (
	PriorityCritical Priority = "critica"
	PriorityVeryHigh Priority = "muy_alta"
	PriorityHigh     Priority = "alta"
	PriorityMedium   Priority = "media"
	PriorityLow      Priority = "baja"
)

// PriorityLabel buckets a weighted score into the five priority tiers.
func PriorityLabel(score float64) Priority {
	switch {
	case score >= 4.5:
		return PriorityCritical
	case score >= 3.5:
		return PriorityVeryHigh
	case score >= 2.5:
		return PriorityHigh
	case score >= 1.5:
		return PriorityMedium
	default:
		return PriorityLow
	}
}

var scaleNames = map[int]string{
	1: "Muy Bajo",
	2: "Bajo",
	3: "Regular",
	4: "Alto",
	5: "Muy Alto",
}

// ScaleText renders a 1-5 level as its display label, e.g. "4 - Alto".
func ScaleText(level int) string {
	name, ok := scaleNames[level]
	if !ok {
		name = "Definido"
	}
	return fmt.Sprintf("%d - %s", level, name)
}
