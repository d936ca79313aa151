package territory

import (
	"strings"

	"github.com/obrascdmx/obras_tracker/internal/obras"
)

// Unassigned collects projects whose location matches no known municipality.
const Unassigned = "Sin Asignar"

// ZoneOrder fixes the presentation order of the five zones.
var ZoneOrder = []string{
	"Zona Norte",
	"Zona Sur",
	"Centro Histórico",
	"Zona Oriente",
	"Zona Poniente",
}

// ZoneMunicipalities maps each zone to the municipalities it covers.
var ZoneMunicipalities = map[string][]string{
	"Zona Norte":       {"Gustavo A. Madero", "Azcapotzalco", "Tláhuac", "Milpa Alta"},
	"Zona Sur":         {"Coyoacán", "Tlalpan", "Xochimilco", "La Magdalena Contreras"},
	"Centro Histórico": {"Cuauhtémoc", "Benito Juárez"},
	"Zona Oriente":     {"Iztapalapa", "Iztacalco", "Venustiano Carranza"},
	"Zona Poniente":    {"Miguel Hidalgo", "Cuajimalpa de Morelos", "Álvaro Obregón"},
}

// cityWideKeywords mark a project as spanning every zone.
var cityWideKeywords = []string{"todas", "16 alcaldias", "ciudad completa"}

// Project is the slice of an obra the allocator needs.
type Project struct {
	ID            int64
	Location      string
	Scope         string
	Budget        float64
	Beneficiaries int64
}

// ZoneStats accumulates the projects, budget and beneficiaries assigned to
// one zone. Budget and beneficiaries of multi-zone projects are split evenly
// so city totals are conserved.
type ZoneStats struct {
	ProjectIDs    map[int64]bool
	Budget        float64
	Beneficiaries float64
}

// Matcher resolves free-text locations against the municipality catalog. The
// catalog is normalized once at construction so matching is accent and case
// insensitive.
type Matcher struct {
	zoneByMunicipality []catalogEntry
}

type catalogEntry struct {
	normalized string
	zone       string
}

func NewMatcher() *Matcher {
	m := &Matcher{}
	for _, zone := range ZoneOrder {
		for _, municipality := range ZoneMunicipalities[zone] {
			m.zoneByMunicipality = append(m.zoneByMunicipality, catalogEntry{
				normalized: obras.Normalize(municipality),
				zone:       zone,
			})
		}
	}
	return m
}

// Match returns the zones a project belongs to. City-wide keywords in the
// location or scope assign it to every zone; otherwise each municipality
// mentioned in either field contributes its zone. No match yields the
// Unassigned bucket.
func (m *Matcher) Match(location, scope string) []string {
	normalizedLocation := obras.Normalize(location)
	normalizedScope := obras.Normalize(scope)

	for _, keyword := range cityWideKeywords {
		if strings.Contains(normalizedLocation, keyword) || strings.Contains(normalizedScope, keyword) {
			return append([]string{}, ZoneOrder...)
		}
	}

	seen := map[string]bool{}
	zones := []string{}
	for _, entry := range m.zoneByMunicipality {
		if seen[entry.zone] {
			continue
		}
		if strings.Contains(normalizedLocation, entry.normalized) || strings.Contains(normalizedScope, entry.normalized) {
			seen[entry.zone] = true
			zones = append(zones, entry.zone)
		}
	}

	if len(zones) == 0 {
		return []string{Unassigned}
	}
	return zones
}

// Allocate distributes every project across zones. A project matched to n
// zones contributes budget/n and beneficiaries/n to each, so summing over
// zones reproduces the city totals.
func (m *Matcher) Allocate(projects []Project) map[string]*ZoneStats {
	stats := make(map[string]*ZoneStats, len(ZoneOrder)+1)
	for _, zone := range append(append([]string{}, ZoneOrder...), Unassigned) {
		stats[zone] = &ZoneStats{ProjectIDs: map[int64]bool{}}
	}

	for _, project := range projects {
		zones := m.Match(project.Location, project.Scope)
		share := 1.0 / float64(len(zones))
		for _, zone := range zones {
			zs := stats[zone]
			zs.ProjectIDs[project.ID] = true
			zs.Budget += project.Budget * share
			zs.Beneficiaries += float64(project.Beneficiaries) * share
		}
	}
	return stats
}
