package main

import (
	"errors"
	"net/http"
	"time"

	"github.com/obrascdmx/obras_tracker/internal/obras"
	"github.com/obrascdmx/obras_tracker/internal/response"
	"github.com/obrascdmx/obras_tracker/internal/store"
)

type ListObrasResponse = response.APIResponse[[]ObraView]
type GetObraResponse = response.APIResponse[ObraView]

// ObraView is a stored record plus the fields derived from it at read time.
// Derived fields are never persisted, so edits can not leave them stale.
type ObraView struct {
	store.Obra
	Estatus            string  `json:"estatus"`
	Prioridad          string  `json:"prioridad"`
	Viabilidad         string  `json:"viabilidad"`
	Semaforo           string  `json:"semaforo"`
	PresupuestoFinal   float64 `json:"presupuesto_final"`
	MontoEjecutado     float64 `json:"monto_ejecutado"`
	UrgenciaTexto      string  `json:"urgencia_texto"`
	NivelRiesgoTexto   string  `json:"nivel_riesgo_texto"`
	ImpactoSocialTexto string  `json:"impacto_social_texto"`
}

func newObraView(record store.Obra, today time.Time) ObraView {
	effective := obras.EffectiveBudget(record.PresupuestoModificado, record.TotalAnteproyecto)
	return ObraView{
		Obra:      record,
		Estatus:   string(obras.ProjectStatus(record.AvanceFisico, record.NivelRiesgo, record.FechaInicioReal, today)),
		Prioridad: string(obras.PriorityLabel(record.PuntuacionPonderada)),
		Viabilidad: string(obras.ViabilityTierFromLights([]string{
			record.SemaforoTecnico,
			record.SemaforoPresupuestal,
			record.SemaforoJuridico,
			record.SemaforoCronograma,
			record.SemaforoAdministrativo,
		})),
		Semaforo: obras.UnifiedSemaphore(
			record.NivelRiesgo,
			record.AvanceFisico,
			record.Urgencia,
			record.SemaforoTecnico,
			record.SemaforoPresupuestal,
		),
		PresupuestoFinal:   effective,
		MontoEjecutado:     obras.ExecutedAmount(effective, record.AvanceFinanciero),
		UrgenciaTexto:      obras.ScaleText(record.Urgencia),
		NivelRiesgoTexto:   obras.ScaleText(record.NivelRiesgo),
		ImpactoSocialTexto: obras.ScaleText(record.ImpactoSocial),
	}
}

// normalizeRecord applies the same invariants the importer enforces, so
// records created through the API can not drift from imported ones.
func normalizeRecord(record *store.Obra) {
	criteria := obras.Criteria{
		Alignment:          record.AlineacionEstrategica,
		SocialImpact:       record.ImpactoSocial,
		Urgency:            record.Urgencia,
		ExecutionViability: record.ViabilidadEjecucion,
		Resources:          record.RecursosDisponibles,
		Risk:               record.NivelRiesgo,
		Dependencies:       record.NivelDependencia,
	}.Clamp()

	record.AlineacionEstrategica = criteria.Alignment
	record.ImpactoSocial = criteria.SocialImpact
	record.Urgencia = criteria.Urgency
	record.ViabilidadEjecucion = criteria.ExecutionViability
	record.RecursosDisponibles = criteria.Resources
	record.NivelRiesgo = criteria.Risk
	record.NivelDependencia = criteria.Dependencies
	record.PuntuacionPonderada = criteria.WeightedScore()

	record.SemaforoTecnico = obras.CleanSemaphore(record.SemaforoTecnico)
	record.SemaforoPresupuestal = obras.CleanSemaphore(record.SemaforoPresupuestal)
	record.SemaforoJuridico = obras.CleanSemaphore(record.SemaforoJuridico)
	record.SemaforoCronograma = obras.CleanSemaphore(record.SemaforoCronograma)
	record.SemaforoAdministrativo = obras.CleanSemaphore(record.SemaforoAdministrativo)

	record.AvanceFisico = obras.CleanPercentage(record.AvanceFisico)
	record.AvanceFinanciero = obras.CleanPercentage(record.AvanceFinanciero)
}

func (app *application) handleListObras(w http.ResponseWriter, r *http.Request) {
	records, err := app.store.Obras.List(r.Context())
	if err != nil {
		writeJSONError(w, http.StatusInternalServerError, "failed to list obras: "+err.Error())
		return
	}

	today := time.Now()
	views := make([]ObraView, 0, len(records))
	for _, record := range records {
		views = append(views, newObraView(record, today))
	}

	resp := &ListObrasResponse{
		Success: true,
		Data:    views,
		Message: "Successfully retrieved obras",
	}
	if err := writeJSON(w, http.StatusOK, resp); err != nil {
		writeJSONError(w, http.StatusInternalServerError, "failed to write response")
	}
}

func (app *application) handleGetObra(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		writeJSONError(w, http.StatusBadRequest, "invalid id")
		return
	}

	record, err := app.store.Obras.GetByID(r.Context(), id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			writeJSONError(w, http.StatusNotFound, "obra not found")
			return
		}
		writeJSONError(w, http.StatusInternalServerError, "failed to get obra: "+err.Error())
		return
	}

	resp := &GetObraResponse{
		Success: true,
		Data:    newObraView(*record, time.Now()),
	}
	if err := writeJSON(w, http.StatusOK, resp); err != nil {
		writeJSONError(w, http.StatusInternalServerError, "failed to write response")
	}
}

func (app *application) handleCreateObra(w http.ResponseWriter, r *http.Request) {
	var record store.Obra
	if err := readJSON(w, r, &record); err != nil {
		return
	}
	if record.Programa == "" {
		writeJSONError(w, http.StatusBadRequest, "programa is required")
		return
	}

	normalizeRecord(&record)

	if err := app.store.Obras.Create(r.Context(), &record); err != nil {
		writeJSONError(w, http.StatusInternalServerError, "failed to create obra: "+err.Error())
		return
	}

	resp := &GetObraResponse{
		Success: true,
		Data:    newObraView(record, time.Now()),
		Message: "Obra created",
	}
	if err := writeJSON(w, http.StatusCreated, resp); err != nil {
		writeJSONError(w, http.StatusInternalServerError, "failed to write response")
	}
}

func (app *application) handleUpdateObra(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		writeJSONError(w, http.StatusBadRequest, "invalid id")
		return
	}

	existing, err := app.store.Obras.GetByID(r.Context(), id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			writeJSONError(w, http.StatusNotFound, "obra not found")
			return
		}
		writeJSONError(w, http.StatusInternalServerError, "failed to get obra: "+err.Error())
		return
	}

	record := *existing
	if err := readJSON(w, r, &record); err != nil {
		return
	}
	record.ID = id
	record.InsertedAt = existing.InsertedAt

	normalizeRecord(&record)

	if err := app.store.Obras.Update(r.Context(), &record); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			writeJSONError(w, http.StatusNotFound, "obra not found")
			return
		}
		writeJSONError(w, http.StatusInternalServerError, "failed to update obra: "+err.Error())
		return
	}

	resp := &GetObraResponse{
		Success: true,
		Data:    newObraView(record, time.Now()),
		Message: "Obra updated",
	}
	if err := writeJSON(w, http.StatusOK, resp); err != nil {
		writeJSONError(w, http.StatusInternalServerError, "failed to write response")
	}
}

func (app *application) handleDeleteObra(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		writeJSONError(w, http.StatusBadRequest, "invalid id")
		return
	}

	if err := app.store.Obras.Delete(r.Context(), id); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			writeJSONError(w, http.StatusNotFound, "obra not found")
			return
		}
		writeJSONError(w, http.StatusInternalServerError, "failed to delete obra: "+err.Error())
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
