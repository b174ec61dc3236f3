package web

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/rosterdesk/rosterdesk/internal/core"
)

// xlsxContentType is the MIME type for xlsx downloads.
const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// handleListDatasets returns display info for every registered dataset with
// its current record count.
func (s *Server) handleListDatasets(w http.ResponseWriter, r *http.Request) {
	type datasetInfo struct {
		core.Info
		Count int `json:"count"`
	}

	stats := s.service.Stats()
	infos := s.service.Datasets()

	out := make([]datasetInfo, len(infos))
	for i, info := range infos {
		out[i] = datasetInfo{Info: info, Count: stats[info.Key]}
	}
	writeJSON(w, out)
}

// handleImport ingests an uploaded spreadsheet into the dataset's store.
//
// A rejected import (missing required columns) is a 200 with the missing
// column list in the body: the transport succeeded, the file did not. Only
// an unreadable container or an unknown dataset is an HTTP error.
func (s *Server) handleImport(w http.ResponseWriter, r *http.Request) {
	key := chi.URLParam(r, "datasetKey")

	r.Body = http.MaxBytesReader(w, r.Body, s.cfg.Import.MaxFileSize)
	if err := r.ParseMultipartForm(s.cfg.Import.MaxFileSize); err != nil {
		writeError(w, http.StatusRequestEntityTooLarge,
			fmt.Sprintf("upload exceeds %d byte limit", s.cfg.Import.MaxFileSize))
		return
	}

	file, _, err := r.FormFile("file")
	if err != nil {
		writeError(w, http.StatusBadRequest, "missing file field")
		return
	}
	defer file.Close()

	result, err := s.service.Import(r.Context(), key, file)
	if err != nil {
		writeError(w, statusFor(err), err.Error())
		return
	}

	writeJSON(w, result)
}

// handleExport serializes the dataset's current records to an xlsx download.
func (s *Server) handleExport(w http.ResponseWriter, r *http.Request) {
	key := chi.URLParam(r, "datasetKey")

	data, err := s.service.Export(key)
	if err != nil {
		writeError(w, statusFor(err), err.Error())
		return
	}

	serveWorkbook(w, key+"_export.xlsx", data)
}

// handleTemplate serves a blank import template for the dataset.
func (s *Server) handleTemplate(w http.ResponseWriter, r *http.Request) {
	key := chi.URLParam(r, "datasetKey")

	data, err := s.service.Template(key)
	if err != nil {
		writeError(w, statusFor(err), err.Error())
		return
	}

	serveWorkbook(w, key+"_template.xlsx", data)
}

// handleListRecords returns a snapshot of the dataset's records.
func (s *Server) handleListRecords(w http.ResponseWriter, r *http.Request) {
	key := chi.URLParam(r, "datasetKey")

	records, err := s.service.Records(key)
	if err != nil {
		writeError(w, statusFor(err), err.Error())
		return
	}

	writeJSON(w, map[string]any{
		"records": records,
		"count":   len(records),
	})
}

// recordRequest is the JSON body for add and update operations: raw field
// text keyed by canonical field name, coerced server-side like a
// spreadsheet row.
type recordRequest struct {
	Fields map[string]string `json:"fields"`
}

// handleAddRecord appends a record under the next identifier.
func (s *Server) handleAddRecord(w http.ResponseWriter, r *http.Request) {
	key := chi.URLParam(r, "datasetKey")

	var req recordRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	rec, err := s.service.Add(r.Context(), key, req.Fields)
	if err != nil {
		writeError(w, statusFor(err), err.Error())
		return
	}

	w.WriteHeader(http.StatusCreated)
	writeJSON(w, rec)
}

// handleUpdateRecord replaces a record wholesale by identifier.
func (s *Server) handleUpdateRecord(w http.ResponseWriter, r *http.Request) {
	key := chi.URLParam(r, "datasetKey")

	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil || id <= 0 {
		writeError(w, http.StatusBadRequest, "invalid record id")
		return
	}

	var req recordRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	rec, err := s.service.Update(r.Context(), key, id, req.Fields)
	if err != nil {
		writeError(w, statusFor(err), err.Error())
		return
	}

	writeJSON(w, rec)
}

// handleDeleteRecord removes a record by identifier.
func (s *Server) handleDeleteRecord(w http.ResponseWriter, r *http.Request) {
	key := chi.URLParam(r, "datasetKey")

	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil || id <= 0 {
		writeError(w, http.StatusBadRequest, "invalid record id")
		return
	}

	if err := s.service.Delete(r.Context(), key, id); err != nil {
		writeError(w, statusFor(err), err.Error())
		return
	}

	writeJSON(w, map[string]bool{"deleted": true})
}

// handleClear empties the dataset.
func (s *Server) handleClear(w http.ResponseWriter, r *http.Request) {
	key := chi.URLParam(r, "datasetKey")

	if err := s.service.Clear(r.Context(), key); err != nil {
		writeError(w, statusFor(err), err.Error())
		return
	}

	writeJSON(w, map[string]bool{"cleared": true})
}

// handleEvents streams the dataset's change notifications as server-sent
// events, so UIs know when to re-read.
func (s *Server) handleEvents(w http.ResponseWriter, r *http.Request) {
	key := chi.URLParam(r, "datasetKey")

	flusher, ok := w.(http.Flusher)
	if !ok {
		writeError(w, http.StatusInternalServerError, "streaming unsupported")
		return
	}

	// The subscriber callback must not block the mutating goroutine; a
	// slow client just misses intermediate events.
	events := make(chan core.Change, 16)
	cancel, err := s.service.Subscribe(key, func(c core.Change) {
		select {
		case events <- c:
		default:
		}
	})
	if err != nil {
		writeError(w, statusFor(err), err.Error())
		return
	}
	defer cancel()

	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")
	flusher.Flush()

	for {
		select {
		case <-r.Context().Done():
			return
		case c := <-events:
			payload, err := json.Marshal(c)
			if err != nil {
				continue
			}
			fmt.Fprintf(w, "event: change\ndata: %s\n\n", payload)
			flusher.Flush()
		}
	}
}

// serveWorkbook writes xlsx bytes as an attachment download.
func serveWorkbook(w http.ResponseWriter, filename string, data []byte) {
	w.Header().Set("Content-Type", xlsxContentType)
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	w.Header().Set("Content-Length", strconv.Itoa(len(data)))
	w.Write(data)
}

// statusFor maps service errors to HTTP status codes.
func statusFor(err error) int {
	switch {
	case errors.Is(err, core.ErrUnknownDataset), errors.Is(err, core.ErrNotFound):
		return http.StatusNotFound
	default:
		return http.StatusBadRequest
	}
}
