package main

import (
	"net/http"
	"path/filepath"

	"github.com/obrascdmx/obras_tracker/internal/obras"
	"github.com/obrascdmx/obras_tracker/internal/response"
	"github.com/obrascdmx/obras_tracker/internal/store"
)

type GetImportHistoryResponse = response.APIResponse[[]store.ImportHistory]
type TriggerImportResponse = response.APIResponse[*store.ImportHistory]

func (app *application) handleGetImportHistory(w http.ResponseWriter, r *http.Request) {
	limit := queryInt(r, "limit", 10)

	data, err := app.store.ImportHistory.GetLatest(r.Context(), limit)
	if err != nil {
		writeJSONError(w, http.StatusInternalServerError, "failed to get import history: "+err.Error())
		return
	}

	resp := &GetImportHistoryResponse{
		Success: true,
		Data:    data,
		Message: "Successfully retrieved latest import records",
	}
	if err := writeJSON(w, http.StatusOK, resp); err != nil {
		writeJSONError(w, http.StatusInternalServerError, "failed to write response")
	}
}

// handleTriggerImport runs the full import pipeline against the configured
// data directory and replaces the dataset atomically.
func (app *application) handleTriggerImport(w http.ResponseWriter, r *http.Request) {
	var input struct {
		SourceFile string `json:"source_file"`
		Latin1     bool   `json:"latin1"`
	}
	if r.ContentLength > 0 {
		if err := readJSON(w, r, &input); err != nil {
			return
		}
	}

	ctx := r.Context()

	path := input.SourceFile
	if path == "" {
		located, err := obras.LocateSourceFile(app.config.dataDir)
		if err != nil {
			writeJSONError(w, http.StatusBadRequest, "no source file available: "+err.Error())
			return
		}
		path = located
	} else {
		path = filepath.Join(app.config.dataDir, filepath.Base(path))
	}

	history := &store.ImportHistory{
		SourceFile:  filepath.Base(path),
		TriggerType: store.TriggerTypeUpload,
		Status:      store.ImportStatusInProgress,
	}
	if err := app.store.ImportHistory.Insert(ctx, history); err != nil {
		writeJSONError(w, http.StatusInternalServerError, "failed to record import: "+err.Error())
		return
	}

	result, err := obras.RunImport(ctx, path, input.Latin1, app.store.Obras)
	if err != nil {
		app.store.ImportHistory.UpdateStatus(ctx, history.ID, store.ImportStatusFailure, 0, 0)
		writeJSONError(w, http.StatusInternalServerError, "import failed: "+err.Error())
		return
	}

	if err := app.store.ImportHistory.UpdateStatus(ctx, history.ID, store.ImportStatusSuccess, result.Imported, result.Skipped); err != nil {
		writeJSONError(w, http.StatusInternalServerError, "failed to update import status: "+err.Error())
		return
	}
	history.Status = store.ImportStatusSuccess
	history.RowsImported = result.Imported
	history.RowsSkipped = result.Skipped

	resp := &TriggerImportResponse{
		Success: true,
		Data:    history,
		Message: "Import completed",
	}
	if err := writeJSON(w, http.StatusCreated, resp); err != nil {
		writeJSONError(w, http.StatusInternalServerError, "failed to write response")
	}
}
