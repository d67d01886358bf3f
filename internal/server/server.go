// Package server exposes the repayment simulator over HTTP along with a small
// embedded web UI for interactive use.
package server

import (
	"bytes"
	"embed"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"net/http"
	"strings"
	"time"

	"github.com/iwvelando/mortgage-planner/internal/config"
	"github.com/iwvelando/mortgage-planner/internal/simulation"
	"github.com/iwvelando/mortgage-planner/pkg/constants"
	"github.com/iwvelando/mortgage-planner/pkg/output"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"
)

//go:embed static/*
var staticFiles embed.FS

type handler struct {
	logger        *zap.Logger
	maxUploadSize int64
	version       string
}

// NewHandler constructs the HTTP handler that serves the web UI and simulation API.
func NewHandler(logger *zap.Logger, maxUploadSize int64, version string) http.Handler {
	if logger == nil {
		logger = zap.NewNop()
	}

	if maxUploadSize <= 0 {
		maxUploadSize = constants.DefaultMaxUploadSizeBytes
	}

	trimmedVersion := strings.TrimSpace(version)
	if trimmedVersion == "" {
		trimmedVersion = "dev"
	}

	h := &handler{logger: logger, maxUploadSize: maxUploadSize, version: trimmedVersion}

	mux := http.NewServeMux()

	// Simulation API endpoint (JSON parameters or YAML scenario upload)
	mux.HandleFunc("/api/simulate", h.handleSimulate)

	// Version endpoint for UI metadata
	mux.HandleFunc("/api/version", h.handleVersion)

	// Static assets (web UI)
	sub, err := fs.Sub(staticFiles, "static")
	if err != nil {
		panic(fmt.Sprintf("failed to prepare embedded static files: %v", err))
	}
	fileServer := http.FileServer(http.FS(sub))
	mux.Handle("/", fileServer)

	return mux
}

type simulateResponse struct {
	Summary  summaryPayload `json:"summary"`
	Rows     []rowPayload   `json:"rows"`
	CSV      string         `json:"csv"`
	Warnings []string       `json:"warnings,omitempty"`
	Duration string         `json:"duration"`

	// Error is set on a divergent scenario, alongside the truncated trajectory.
	Error string `json:"error,omitempty"`
}

type summaryPayload struct {
	MonthsToZeroPrincipal int     `json:"monthsToZeroPrincipal"`
	TotalMonthsSimulated  int     `json:"totalMonthsSimulated"`
	DurationLabel         string  `json:"durationLabel"`
	TotalInterestPaid     float64 `json:"totalInterestPaid"`
	FinalSavings          float64 `json:"finalSavings"`
	PaidOff               bool    `json:"paidOff"`
}

type rowPayload struct {
	Date               string  `json:"date"`
	PrincipalRemaining float64 `json:"principalRemaining"`
	Savings            float64 `json:"savings"`
	InterestPaid       float64 `json:"interestPaid"`
	TotalPaid          float64 `json:"totalPaid"`
}

type errorResponse struct {
	Error string `json:"error"`
}

func (h *handler) handleSimulate(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, http.StatusText(http.StatusMethodNotAllowed), http.StatusMethodNotAllowed)
		return
	}

	start := time.Now()
	if h.maxUploadSize > 0 {
		r.Body = http.MaxBytesReader(w, r.Body, h.maxUploadSize)
	}

	var conf config.Configuration
	contentType := r.Header.Get("Content-Type")
	if strings.HasPrefix(contentType, "multipart/form-data") {
		if !h.decodeScenarioUpload(w, r, &conf) {
			return
		}
	} else {
		if err := json.NewDecoder(r.Body).Decode(&conf); err != nil {
			h.respondError(w, http.StatusBadRequest, fmt.Sprintf("failed to decode scenario: %v", err))
			return
		}
	}

	conf.ApplyEarlyRepaymentMode()
	warnings := conf.ValidateConfiguration()

	params, err := conf.Parameters()
	if err != nil {
		h.respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	status := http.StatusOK
	divergence := ""
	result, err := simulation.Simulate(h.logger, params)
	if err != nil {
		var invalid *simulation.InvalidParameterError
		if errors.As(err, &invalid) {
			h.respondError(w, http.StatusBadRequest, invalid.Error())
			return
		}
		var divergent *simulation.DivergentScenarioError
		if !errors.As(err, &divergent) {
			h.logger.Error("simulation failed",
				zap.String("op", "server.handleSimulate"),
				zap.Error(err),
			)
			h.respondError(w, http.StatusInternalServerError, "simulation failed")
			return
		}
		// The truncated trajectory is still worth rendering client-side.
		status = http.StatusUnprocessableEntity
		divergence = divergent.Error()
	}

	summary := output.Summarize(result)
	resp := simulateResponse{
		Summary: summaryPayload{
			MonthsToZeroPrincipal: summary.MonthsToZeroPrincipal,
			TotalMonthsSimulated:  summary.TotalMonthsSimulated,
			DurationLabel:         summary.Duration,
			TotalInterestPaid:     summary.TotalInterestPaid,
			FinalSavings:          summary.FinalSavings,
			PaidOff:               summary.PaidOff,
		},
		Rows:     historyRows(result.History),
		CSV:      output.CsvString(result.History),
		Warnings: warnings,
		Duration: time.Since(start).String(),
		Error:    divergence,
	}

	h.writeJSON(w, status, resp)
}

// decodeScenarioUpload reads a YAML scenario out of a multipart form. It
// writes the error response itself and reports success via the return value.
func (h *handler) decodeScenarioUpload(w http.ResponseWriter, r *http.Request, conf *config.Configuration) bool {
	if err := r.ParseMultipartForm(h.maxUploadSize); err != nil {
		var maxBytesErr *http.MaxBytesError
		if errors.As(err, &maxBytesErr) {
			h.respondError(w, http.StatusRequestEntityTooLarge,
				fmt.Sprintf("upload exceeds limit of %d bytes", h.maxUploadSize))
			return false
		}
		h.respondError(w, http.StatusBadRequest, fmt.Sprintf("failed to parse upload: %v", err))
		return false
	}

	file, _, err := r.FormFile("file")
	if err != nil {
		h.respondError(w, http.StatusBadRequest, "missing scenario file")
		return false
	}
	defer func() {
		if closeErr := file.Close(); closeErr != nil {
			h.logger.Warn("failed to close uploaded file",
				zap.String("op", "server.decodeScenarioUpload"),
				zap.Error(closeErr),
			)
		}
	}()

	var buf bytes.Buffer
	if _, err := io.Copy(&buf, file); err != nil {
		h.respondError(w, http.StatusInternalServerError, fmt.Sprintf("failed to read scenario: %v", err))
		return false
	}

	if err := yaml.Unmarshal(buf.Bytes(), conf); err != nil {
		h.respondError(w, http.StatusBadRequest, fmt.Sprintf("error reading scenario data, %v", err))
		return false
	}
	return true
}

func (h *handler) handleVersion(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, http.StatusText(http.StatusMethodNotAllowed), http.StatusMethodNotAllowed)
		return
	}

	h.writeJSON(w, http.StatusOK, map[string]string{
		"version": h.version,
	})
}

func historyRows(history []simulation.HistoryRecord) []rowPayload {
	rows := make([]rowPayload, len(history))
	for i, record := range history {
		rows[i] = rowPayload{
			Date:               record.Date.Format(constants.DateTimeLayout),
			PrincipalRemaining: record.PrincipalRemaining,
			Savings:            record.SavingsBalance,
			InterestPaid:       record.CumulativeInterestPaid,
			TotalPaid:          record.CumulativeTotalPaid,
		}
	}
	return rows
}

func (h *handler) respondError(w http.ResponseWriter, status int, message string) {
	h.writeJSON(w, status, errorResponse{Error: message})
}

func (h *handler) writeJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		h.logger.Warn("failed to encode response",
			zap.String("op", "server.writeJSON"),
			zap.Error(err),
		)
	}
}
