package dashboard

import (
	"math"
	"sort"
	"time"

	"github.com/obrascdmx/obras_tracker/internal/obras"
	"github.com/obrascdmx/obras_tracker/internal/obras/territory"
	"github.com/obrascdmx/obras_tracker/internal/store"
)

// Summary is the headline card of the dashboard.
type Summary struct {
	TotalProyectos    int     `json:"total_proyectos"`
	PresupuestoTotal  float64 `json:"presupuesto_total"`
	Beneficiarios     int64   `json:"beneficiarios"`
	AtencionRequerida int     `json:"atencion_requerida"`
	EnEjecucion       int     `json:"en_ejecucion"`
}

// BuildSummary aggregates the headline figures. A project requires attention
// when its risk is high, any of its legal, technical or budget lights is red,
// or it is urgent while barely started.
func BuildSummary(records []store.Obra) Summary {
	var s Summary
	s.TotalProyectos = len(records)
	for _, r := range records {
		s.PresupuestoTotal += obras.EffectiveBudget(r.PresupuestoModificado, r.TotalAnteproyecto)
		s.Beneficiarios += r.BeneficiariosDirectos
		if needsAttention(r) {
			s.AtencionRequerida++
		}
		if r.AvanceFinanciero > 0 {
			s.EnEjecucion++
		}
	}
	s.PresupuestoTotal = round2(s.PresupuestoTotal)
	return s
}

func needsAttention(r store.Obra) bool {
	if r.NivelRiesgo >= 4 {
		return true
	}
	if r.SemaforoTecnico == obras.SemaphoreRed ||
		r.SemaforoPresupuestal == obras.SemaphoreRed ||
		r.SemaforoJuridico == obras.SemaphoreRed {
		return true
	}
	return r.Urgencia >= 4 && r.AvanceFisico < 20
}

// DirectionBudget is one row of the budget-by-direction ranking.
type DirectionBudget struct {
	AreaResponsable string  `json:"area_responsable"`
	Presupuesto     float64 `json:"presupuesto"`
	Proyectos       int     `json:"proyectos"`
}

// BudgetByDirection groups the effective budget by responsible area, largest
// first.
func BudgetByDirection(records []store.Obra) []DirectionBudget {
	byArea := map[string]*DirectionBudget{}
	for _, r := range records {
		entry, ok := byArea[r.AreaResponsable]
		if !ok {
			entry = &DirectionBudget{AreaResponsable: r.AreaResponsable}
			byArea[r.AreaResponsable] = entry
		}
		entry.Presupuesto += obras.EffectiveBudget(r.PresupuestoModificado, r.TotalAnteproyecto)
		entry.Proyectos++
	}

	out := make([]DirectionBudget, 0, len(byArea))
	for _, entry := range byArea {
		entry.Presupuesto = round2(entry.Presupuesto)
		out = append(out, *entry)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Presupuesto != out[j].Presupuesto {
			return out[i].Presupuesto > out[j].Presupuesto
		}
		return out[i].AreaResponsable < out[j].AreaResponsable
	})
	return out
}

// KPIs carries the progress indicators and the status breakdown.
type KPIs struct {
	AvanceFisicoPromedio     float64        `json:"avance_fisico_promedio"`
	AvanceFinancieroPromedio float64        `json:"avance_financiero_promedio"`
	MontoEjecutado           float64        `json:"monto_ejecutado"`
	PorEstatus               map[string]int `json:"por_estatus"`
}

// BuildKPIs computes average progress and the derived status distribution.
func BuildKPIs(records []store.Obra, today time.Time) KPIs {
	kpis := KPIs{PorEstatus: map[string]int{}}
	if len(records) == 0 {
		return kpis
	}

	var fisico, financiero float64
	for _, r := range records {
		fisico += r.AvanceFisico
		financiero += r.AvanceFinanciero
		effective := obras.EffectiveBudget(r.PresupuestoModificado, r.TotalAnteproyecto)
		kpis.MontoEjecutado += obras.ExecutedAmount(effective, r.AvanceFinanciero)
		status := obras.ProjectStatus(r.AvanceFisico, r.NivelRiesgo, r.FechaInicioReal, today)
		kpis.PorEstatus[string(status)]++
	}
	n := float64(len(records))
	kpis.AvanceFisicoPromedio = round2(fisico / n)
	kpis.AvanceFinancieroPromedio = round2(financiero / n)
	kpis.MontoEjecutado = round2(kpis.MontoEjecutado)
	return kpis
}

// CriticalProject is one row of the critical projects list.
type CriticalProject struct {
	ID          int64   `json:"id"`
	Programa    string  `json:"programa"`
	Area        string  `json:"area_responsable"`
	Puntuacion  float64 `json:"puntuacion_ponderada"`
	Prioridad   string  `json:"prioridad"`
	Estatus     string  `json:"estatus"`
	NivelRiesgo int     `json:"nivel_riesgo"`
}

// CriticalProjects lists projects with critical priority or at-risk status,
// highest score first.
func CriticalProjects(records []store.Obra, today time.Time) []CriticalProject {
	out := []CriticalProject{}
	for _, r := range records {
		priority := obras.PriorityLabel(r.PuntuacionPonderada)
		status := obras.ProjectStatus(r.AvanceFisico, r.NivelRiesgo, r.FechaInicioReal, today)
		if priority != obras.PriorityCritical && status != obras.StatusAtRisk {
			continue
		}
		out = append(out, CriticalProject{
			ID:          r.ID,
			Programa:    r.Programa,
			Area:        r.AreaResponsable,
			Puntuacion:  r.PuntuacionPonderada,
			Prioridad:   string(priority),
			Estatus:     string(status),
			NivelRiesgo: r.NivelRiesgo,
		})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Puntuacion != out[j].Puntuacion {
			return out[i].Puntuacion > out[j].Puntuacion
		}
		return out[i].ID < out[j].ID
	})
	return out
}

// RiskAnalysis breaks projects down by risk level and surfaces the high-risk
// ones.
type RiskAnalysis struct {
	PorNivel   map[int]int       `json:"por_nivel"`
	AltoRiesgo []CriticalProject `json:"alto_riesgo"`
}

func BuildRiskAnalysis(records []store.Obra, today time.Time) RiskAnalysis {
	analysis := RiskAnalysis{PorNivel: map[int]int{1: 0, 2: 0, 3: 0, 4: 0, 5: 0}}
	for _, r := range records {
		if r.NivelRiesgo >= 1 && r.NivelRiesgo <= 5 {
			analysis.PorNivel[r.NivelRiesgo]++
		}
		if r.NivelRiesgo >= 4 {
			analysis.AltoRiesgo = append(analysis.AltoRiesgo, CriticalProject{
				ID:          r.ID,
				Programa:    r.Programa,
				Area:        r.AreaResponsable,
				Puntuacion:  r.PuntuacionPonderada,
				Prioridad:   string(obras.PriorityLabel(r.PuntuacionPonderada)),
				Estatus:     string(obras.ProjectStatus(r.AvanceFisico, r.NivelRiesgo, r.FechaInicioReal, today)),
				NivelRiesgo: r.NivelRiesgo,
			})
		}
	}
	sort.Slice(analysis.AltoRiesgo, func(i, j int) bool {
		if analysis.AltoRiesgo[i].NivelRiesgo != analysis.AltoRiesgo[j].NivelRiesgo {
			return analysis.AltoRiesgo[i].NivelRiesgo > analysis.AltoRiesgo[j].NivelRiesgo
		}
		return analysis.AltoRiesgo[i].Puntuacion > analysis.AltoRiesgo[j].Puntuacion
	})
	return analysis
}

// ActivityEntry is one row of the recent activity feed.
type ActivityEntry struct {
	ID                  int64      `json:"id"`
	Programa            string     `json:"programa"`
	Area                string     `json:"area_responsable"`
	UltimaActualizacion *time.Time `json:"ultima_actualizacion"`
	AvanceFisico        float64    `json:"avance_fisico"`
}

// RecentActivity returns the most recently updated projects. Records without
// an update date sort last.
func RecentActivity(records []store.Obra, limit int) []ActivityEntry {
	sorted := make([]store.Obra, len(records))
	copy(sorted, records)
	sort.SliceStable(sorted, func(i, j int) bool {
		a, b := sorted[i].UltimaActualizacion, sorted[j].UltimaActualizacion
		switch {
		case a == nil:
			return false
		case b == nil:
			return true
		default:
			return a.After(*b)
		}
	})

	if limit > 0 && limit < len(sorted) {
		sorted = sorted[:limit]
	}
	out := make([]ActivityEntry, 0, len(sorted))
	for _, r := range sorted {
		out = append(out, ActivityEntry{
			ID:                  r.ID,
			Programa:            r.Programa,
			Area:                r.AreaResponsable,
			UltimaActualizacion: r.UltimaActualizacion,
			AvanceFisico:        r.AvanceFisico,
		})
	}
	return out
}

// Territorial allocates every project across the city zones and shapes the
// result for the dashboard charts.
func Territorial(records []store.Obra, matcher *territory.Matcher) territory.ChartData {
	projects := make([]territory.Project, 0, len(records))
	for _, r := range records {
		projects = append(projects, territory.Project{
			ID:            r.ID,
			Location:      r.UbicacionEspecifica,
			Scope:         r.AlcanceTerritorial,
			Budget:        obras.EffectiveBudget(r.PresupuestoModificado, r.TotalAnteproyecto),
			Beneficiaries: r.BeneficiariosDirectos,
		})
	}
	return territory.FormatForCharts(matcher.Allocate(projects))
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
