package main

import (
	"net/http"
	"time"

	"github.com/obrascdmx/obras_tracker/internal/dashboard"
	"github.com/obrascdmx/obras_tracker/internal/obras/territory"
	"github.com/obrascdmx/obras_tracker/internal/response"
	"github.com/obrascdmx/obras_tracker/internal/store"
)

type SummaryResponse = response.APIResponse[dashboard.Summary]
type TerritorialResponse = response.APIResponse[territory.ChartData]
type BudgetByDirectionResponse = response.APIResponse[[]dashboard.DirectionBudget]
type KPIsResponse = response.APIResponse[dashboard.KPIs]
type CriticalProjectsResponse = response.APIResponse[[]dashboard.CriticalProject]
type RiskAnalysisResponse = response.APIResponse[dashboard.RiskAnalysis]
type RecentActivityResponse = response.APIResponse[[]dashboard.ActivityEntry]

// loadRecords fetches the full dataset once per dashboard request. The
// dataset is small (hundreds of projects), so aggregation happens in memory.
func (app *application) loadRecords(w http.ResponseWriter, r *http.Request) ([]store.Obra, bool) {
	records, err := app.store.Obras.List(r.Context())
	if err != nil {
		writeJSONError(w, http.StatusInternalServerError, "failed to load obras: "+err.Error())
		return nil, false
	}
	return records, true
}

func (app *application) handleDashboardSummary(w http.ResponseWriter, r *http.Request) {
	records, ok := app.loadRecords(w, r)
	if !ok {
		return
	}
	resp := &SummaryResponse{Success: true, Data: dashboard.BuildSummary(records)}
	if err := writeJSON(w, http.StatusOK, resp); err != nil {
		writeJSONError(w, http.StatusInternalServerError, "failed to write response")
	}
}

func (app *application) handleDashboardTerritorial(w http.ResponseWriter, r *http.Request) {
	records, ok := app.loadRecords(w, r)
	if !ok {
		return
	}
	resp := &TerritorialResponse{Success: true, Data: dashboard.Territorial(records, app.matcher)}
	if err := writeJSON(w, http.StatusOK, resp); err != nil {
		writeJSONError(w, http.StatusInternalServerError, "failed to write response")
	}
}

func (app *application) handleBudgetByDirection(w http.ResponseWriter, r *http.Request) {
	records, ok := app.loadRecords(w, r)
	if !ok {
		return
	}
	resp := &BudgetByDirectionResponse{Success: true, Data: dashboard.BudgetByDirection(records)}
	if err := writeJSON(w, http.StatusOK, resp); err != nil {
		writeJSONError(w, http.StatusInternalServerError, "failed to write response")
	}
}

func (app *application) handleDashboardKPIs(w http.ResponseWriter, r *http.Request) {
	records, ok := app.loadRecords(w, r)
	if !ok {
		return
	}
	resp := &KPIsResponse{Success: true, Data: dashboard.BuildKPIs(records, time.Now())}
	if err := writeJSON(w, http.StatusOK, resp); err != nil {
		writeJSONError(w, http.StatusInternalServerError, "failed to write response")
	}
}

func (app *application) handleCriticalProjects(w http.ResponseWriter, r *http.Request) {
	records, ok := app.loadRecords(w, r)
	if !ok {
		return
	}
	resp := &CriticalProjectsResponse{Success: true, Data: dashboard.CriticalProjects(records, time.Now())}
	if err := writeJSON(w, http.StatusOK, resp); err != nil {
		writeJSONError(w, http.StatusInternalServerError, "failed to write response")
	}
}

func (app *application) handleRiskAnalysis(w http.ResponseWriter, r *http.Request) {
	records, ok := app.loadRecords(w, r)
	if !ok {
		return
	}
	resp := &RiskAnalysisResponse{Success: true, Data: dashboard.BuildRiskAnalysis(records, time.Now())}
	if err := writeJSON(w, http.StatusOK, resp); err != nil {
		writeJSONError(w, http.StatusInternalServerError, "failed to write response")
	}
}

func (app *application) handleRecentActivity(w http.ResponseWriter, r *http.Request) {
	records, ok := app.loadRecords(w, r)
	if !ok {
		return
	}
	limit := queryInt(r, "limit", 10)
	resp := &RecentActivityResponse{Success: true, Data: dashboard.RecentActivity(records, limit)}
	if err := writeJSON(w, http.StatusOK, resp); err != nil {
		writeJSONError(w, http.StatusInternalServerError, "failed to write response")
	}
}
