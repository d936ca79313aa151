package territory

import (
	"math"
	"strings"
)

// PieSlice is one entry of the budget distribution pie chart.
type PieSlice struct {
	Name  string  `json:"name"`
	Value float64 `json:"value"`
}

// BarEntry is one entry of the per-zone bar chart.
type BarEntry struct {
	Name          string  `json:"name"`
	FullName      string  `json:"fullName"`
	Projects      int     `json:"proyectos"`
	Beneficiaries float64 `json:"beneficiarios"`
}

// ChartData packages zone statistics in the shape the dashboard charts
// consume.
type ChartData struct {
	Pie []PieSlice `json:"pie"`
	Bar []BarEntry `json:"bar"`
}

// FormatForCharts flattens allocation results into chart series. Zones keep
// their fixed order. The pie carries full zone names and only zones with
// budget; the bar chart uses short names and lists every zone. The Unassigned
// bucket appears in the pie only when it carries budget, and never in the bar
// chart.
func FormatForCharts(stats map[string]*ZoneStats) ChartData {
	data := ChartData{Pie: []PieSlice{}, Bar: []BarEntry{}}

	for _, zone := range ZoneOrder {
		zs, ok := stats[zone]
		if !ok {
			continue
		}
		if zs.Budget > 0 {
			data.Pie = append(data.Pie, PieSlice{
				Name:  zone,
				Value: round2(zs.Budget),
			})
		}
		data.Bar = append(data.Bar, BarEntry{
			Name:          shortZoneName(zone),
			FullName:      zone,
			Projects:      len(zs.ProjectIDs),
			Beneficiaries: math.Round(zs.Beneficiaries),
		})
	}

	if zs, ok := stats[Unassigned]; ok && zs.Budget > 0 {
		data.Pie = append(data.Pie, PieSlice{Name: Unassigned, Value: round2(zs.Budget)})
	}
	return data
}

func shortZoneName(zone string) string {
	if zone == "Centro Histórico" {
		return "Centro"
	}
	return strings.TrimPrefix(zone, "Zona ")
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
