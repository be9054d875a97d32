// internal/server/handlers.go
package server

import (
	"encoding/json"
	"log"
	"net/http"
	"strings"

	"github.com/tamzrod/diag-panel/internal/bitfield"
	"github.com/tamzrod/diag-panel/internal/parse"
	"github.com/tamzrod/diag-panel/internal/telemetry"
)

// Every response carries a top-level error string alongside its data.
// Callers must check it independently of the data: partial records and
// a non-empty error are not mutually exclusive.

type hrModeRequest struct {
	Mode string `json:"mode"`
}

type radioRequest struct {
	Mode string `json:"mode"`
}

type downloadRequest struct {
	DeviceID string `json:"device_id"`
	Sessions []int  `json:"sessions"`
}

type analysisRequest struct {
	File string `json:"file"`
}

type commandResponse struct {
	Log   string `json:"log"`
	Error string `json:"error,omitempty"`
}

type bitsResponse struct {
	DeviceID string         `json:"device_id"`
	Bits     bitfield.Table `json:"bits"`
	Error    string         `json:"error,omitempty"`
}

type batteryResponse struct {
	Summary telemetry.BatterySummary `json:"summary"`
	Points  []parse.BatteryPoint     `json:"points"`
	Error   string                   `json:"error,omitempty"`
}

type orientationResponse struct {
	Summary telemetry.OrientationSummary `json:"summary"`
	Error   string                       `json:"error,omitempty"`
}

// POST /api/scan — rescan every category and return the new snapshot.
func (s *Server) handleScan(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	st := s.facade.Refresh()
	s.replaceState(st)
	writeJSON(w, st)
}

// GET /api/state — current snapshot; may be stale until the next scan.
func (s *Server) handleState(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	writeJSON(w, s.currentState())
}

// GET /api/devices/{id}/bits — the full 64-entry bit table of one
// scanned device.
func (s *Server) handleDeviceBits(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	rest := strings.TrimPrefix(r.URL.Path, "/api/devices/")
	id := strings.TrimSuffix(rest, "/bits")
	if id == "" || id == rest {
		http.Error(w, "not found", http.StatusNotFound)
		return
	}

	for _, dev := range s.currentState().Devices {
		if dev.ID == id {
			writeJSON(w, bitsResponse{DeviceID: id, Bits: dev.Bits})
			return
		}
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusNotFound)
	if err := json.NewEncoder(w).Encode(bitsResponse{DeviceID: id, Error: "device not in last scan"}); err != nil {
		log.Printf("response encode failed: %v", err)
	}
}

// POST /api/hr-mode — run the command sequence for one HR mode.
func (s *Server) handleHRMode(w http.ResponseWriter, r *http.Request) {
	var req hrModeRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	out, err := s.facade.SetHRMode(bitfield.HRMode(req.Mode))
	writeJSON(w, commandResponse{Log: out, Error: errText(err)})
}

// POST /api/radio — write one of the two known radio configurations.
func (s *Server) handleRadio(w http.ResponseWriter, r *http.Request) {
	var req radioRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	out, err := s.facade.SetRadioConfig(parse.RadioClass(req.Mode))
	writeJSON(w, commandResponse{Log: out, Error: errText(err)})
}

// POST /api/downloads — download the named sessions for one device.
func (s *Server) handleDownloads(w http.ResponseWriter, r *http.Request) {
	var req downloadRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	if req.DeviceID == "" || len(req.Sessions) == 0 {
		http.Error(w, "device_id and sessions are required", http.StatusBadRequest)
		return
	}

	out, err := s.facade.DownloadSessions(req.DeviceID, req.Sessions, s.downloadDir)
	writeJSON(w, commandResponse{Log: out, Error: errText(err)})
}

// POST /api/analysis/battery — battery degradation of one raw file.
func (s *Server) handleBatteryAnalysis(w http.ResponseWriter, r *http.Request) {
	var req analysisRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	points, summary, errLog := s.facade.AnalyzeBattery(req.File)
	writeJSON(w, batteryResponse{Summary: summary, Points: points, Error: errLog})
}

// POST /api/analysis/orientation — orientation accuracy of one raw file.
func (s *Server) handleOrientationAnalysis(w http.ResponseWriter, r *http.Request) {
	var req analysisRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	summary, errLog := s.facade.AnalyzeOrientation(req.File)
	writeJSON(w, orientationResponse{Summary: summary, Error: errLog})
}

// ---- HELPERS ----

func decodeJSON(w http.ResponseWriter, r *http.Request, dst any) bool {
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return false
	}
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return false
	}
	return true
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Printf("response encode failed: %v", err)
	}
}

func errText(err error) string {
	if err == nil {
		return ""
	}
	return err.Error()
}
