package api

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"

	"github.com/mmrzaf/dataforge/internal/app"
	"github.com/mmrzaf/dataforge/internal/domain"
)

type Handler struct {
	service *app.GenerateService
}

func NewHandler(service *app.GenerateService) *Handler {
	return &Handler{service: service}
}

func (h *Handler) ListColumns(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, h.service.Columns())
}

func (h *Handler) ListFormats(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, h.service.Formats())
}

func (h *Handler) ListPresets(w http.ResponseWriter, r *http.Request) {
	list, err := h.service.Presets()
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	writeJSON(w, list)
}

func (h *Handler) GetPreset(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	p, err := h.service.Preset(id)
	if err != nil {
		http.Error(w, err.Error(), http.StatusNotFound)
		return
	}
	writeJSON(w, p)
}

// Generate handles the JSON API: a GenerateRequest in, a file download out.
func (h *Handler) Generate(w http.ResponseWriter, r *http.Request) {
	var req domain.GenerateRequest
	if err := decodeJSONStrict(r, &req); err != nil {
		http.Error(w, "invalid json", http.StatusBadRequest)
		return
	}
	h.serve(w, &req)
}

// GenerateForm handles the HTML form submission: recordCount, outputFormat
// and a columns checkbox per selected column.
func (h *Handler) GenerateForm(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "invalid form", http.StatusBadRequest)
		return
	}

	// Non-numeric counts fall through as 0 and pick up the default.
	count, _ := strconv.Atoi(r.FormValue("recordCount"))
	req := &domain.GenerateRequest{
		RecordCount: count,
		Columns:     r.Form["columns"],
		Format:      domain.Format(r.FormValue("outputFormat")),
		PresetID:    r.FormValue("preset"),
	}
	h.serve(w, req)
}

func (h *Handler) serve(w http.ResponseWriter, req *domain.GenerateRequest) {
	payload, err := h.service.Generate(req)
	if err != nil {
		status := http.StatusInternalServerError
		if domain.IsBadRequest(err) {
			status = http.StatusBadRequest
		}
		http.Error(w, err.Error(), status)
		return
	}

	w.Header().Set("Content-Type", payload.MIMEType)
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%s", payload.Filename))
	_, _ = w.Write(payload.Data)
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(v)
}

func decodeJSONStrict(r *http.Request, out any) error {
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	return dec.Decode(out)
}
