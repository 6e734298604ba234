package main

import (
	"encoding/json"
	"errors"
	"math"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/compositeml/predictor/composite"
	"github.com/compositeml/predictor/internal/metrics"
)

// Defaults applied when a request omits a field, matching the documented
// API contract.
const (
	defaultFiber          = composite.FiberCarbon
	defaultMatrix         = composite.MatrixEpoxy
	defaultLayup          = composite.LayupUD0
	defaultProcess        = composite.ProcessAutoclave
	defaultVolumeFraction = composite.ReferenceVolumeFraction
)

func (s *Server) handleInfo(w http.ResponseWriter, r *http.Request) {
	opts := s.engine.Options()

	respondJSON(w, http.StatusOK, map[string]any{
		"name":        "Composite Materials Property Prediction API",
		"version":     apiVersion,
		"status":      "active",
		"method":      "Empirical formulas with rule of mixtures",
		"description": "Predicts mechanical properties of fiber-reinforced composites",
		"dataset": map[string]int{
			"fiber_types":             len(opts.Fibers),
			"matrix_types":            len(opts.Matrices),
			"total_combinations":      len(s.engine.Database()),
			"layup_configs":           len(opts.Layups),
			"manufacturing_processes": len(opts.Processes),
		},
		"endpoints": map[string]string{
			"GET /health":             "Health check",
			"GET /api":                "API information",
			"POST /api/predict":       "Single material prediction",
			"POST /api/predict/batch": "Batch predictions",
			"GET /api/materials":      "Material database",
			"GET /api/options":        "Available options",
			"GET /metrics":            "Prometheus metrics",
		},
	})
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	count := len(s.engine.Database())
	status := http.StatusOK
	state := "healthy"

	// The table is populated at startup; an incomplete table means the
	// enumerated domains and the database drifted apart.
	if count != 25 {
		status = http.StatusServiceUnavailable
		state = "unhealthy"
	}

	respondJSON(w, status, map[string]any{
		"status":          state,
		"version":         apiVersion,
		"method":          "empirical_formulas",
		"materials_count": count,
		"uptime":          time.Since(s.started).String(),
		"timestamp":       time.Now().Format(time.RFC3339),
	})
}

func (s *Server) handlePredict(w http.ResponseWriter, r *http.Request) {
	var body predictionInput
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}

	req, input, err := resolveRequest(body)
	if err != nil {
		metrics.PredictionsTotal.WithLabelValues(metrics.OutcomeInvalidInput).Inc()
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	result, err := s.engine.Predict(req)
	if err != nil {
		respondError(w, statusFor(err), err.Error())
		metrics.PredictionsTotal.WithLabelValues(outcomeFor(err)).Inc()
		return
	}
	metrics.PredictionsTotal.WithLabelValues(metrics.OutcomeOK).Inc()

	respondJSON(w, http.StatusOK, predictResponse{
		Success:      true,
		PredictionID: uuid.NewString(),
		Method:       "empirical_formulas",
		Input:        input,
		Predictions:  rounded(result),
		Factors:      result.Factors,
		Units:        predictionUnits,
	})
}

func (s *Server) handlePredictBatch(w http.ResponseWriter, r *http.Request) {
	var body batchRequest
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}
	if len(body.Samples) == 0 {
		respondError(w, http.StatusBadRequest, "no samples provided")
		return
	}
	metrics.BatchSize.Observe(float64(len(body.Samples)))

	// Resolve every sample first so a malformed element occupies its own
	// result slot instead of failing the whole batch.
	items := make([]batchItem, len(body.Samples))
	reqs := make([]composite.PredictionRequest, len(body.Samples))
	inputs := make([]resolvedInput, len(body.Samples))

	for i, sample := range body.Samples {
		req, input, err := resolveRequest(sample)
		if err != nil {
			metrics.PredictionsTotal.WithLabelValues(metrics.OutcomeInvalidInput).Inc()
			items[i] = batchItem{Index: i, Input: sample, Error: err.Error()}
			continue
		}
		reqs[i] = req
		inputs[i] = input
		items[i] = batchItem{Index: i, Success: true}
	}

	for i, res := range s.engine.PredictBatch(reqs) {
		if !items[i].Success {
			continue // already failed at the validation boundary
		}
		if res.Err != nil {
			metrics.PredictionsTotal.WithLabelValues(outcomeFor(res.Err)).Inc()
			items[i] = batchItem{Index: i, Input: body.Samples[i], Error: res.Err.Error()}
			continue
		}
		metrics.PredictionsTotal.WithLabelValues(metrics.OutcomeOK).Inc()
		p := rounded(res.Result)
		f := res.Result.Factors
		items[i] = batchItem{
			Index:       i,
			Input:       inputs[i],
			Success:     true,
			Predictions: &p,
			Factors:     &f,
		}
	}

	respondJSON(w, http.StatusOK, batchResponse{
		Success: true,
		Method:  "empirical_formulas",
		Count:   len(items),
		Results: items,
	})
}

func (s *Server) handleMaterials(w http.ResponseWriter, r *http.Request) {
	records := s.engine.Database()

	respondJSON(w, http.StatusOK, materialsResponse{
		Success:   true,
		Note:      "Base values at fiber volume fraction = 0.6",
		Count:     len(records),
		Materials: records,
		Units:     materialUnits,
	})
}

func (s *Server) handleOptions(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, optionsResponse{
		Success: true,
		Options: s.engine.Options(),
		Factors: factorTables{
			Layup:         composite.LayupFactors(),
			Manufacturing: composite.ManufacturingFactors(),
		},
	})
}

// resolveRequest fills defaults for omitted fields and converts the
// loosely-typed body into a typed engine request. Unrecognized strings are
// rejected here, before the engine sees them.
func resolveRequest(body predictionInput) (composite.PredictionRequest, resolvedInput, error) {
	req := composite.PredictionRequest{
		Fiber:          defaultFiber,
		Matrix:         defaultMatrix,
		VolumeFraction: defaultVolumeFraction,
		Layup:          defaultLayup,
		Process:        defaultProcess,
	}

	var err error
	if body.FiberType != nil {
		if req.Fiber, err = composite.ParseFiberType(*body.FiberType); err != nil {
			return req, resolvedInput{}, err
		}
	}
	if body.MatrixType != nil {
		if req.Matrix, err = composite.ParseMatrixType(*body.MatrixType); err != nil {
			return req, resolvedInput{}, err
		}
	}
	if body.Layup != nil {
		if req.Layup, err = composite.ParseLayupConfig(*body.Layup); err != nil {
			return req, resolvedInput{}, err
		}
	}
	if body.Manufacturing != nil {
		if req.Process, err = composite.ParseManufacturingProcess(*body.Manufacturing); err != nil {
			return req, resolvedInput{}, err
		}
	}
	if body.FiberVolumeFraction != nil {
		req.VolumeFraction = *body.FiberVolumeFraction
	}

	return req, resolvedInput{
		FiberType:           req.Fiber,
		MatrixType:          req.Matrix,
		FiberVolumeFraction: req.VolumeFraction,
		Layup:               req.Layup,
		Manufacturing:       req.Process,
	}, nil
}

func statusFor(err error) int {
	var notFound *composite.NotFoundError
	if errors.As(err, &notFound) {
		return http.StatusNotFound
	}
	return http.StatusBadRequest
}

func outcomeFor(err error) string {
	var notFound *composite.NotFoundError
	if errors.As(err, &notFound) {
		return metrics.OutcomeNotFound
	}
	return metrics.OutcomeInvalidInput
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}

func rounded(r *composite.PredictionResult) predictions {
	return predictions{
		TensileStrength:     round1(r.TensileStrength),
		TensileModulus:      round1(r.TensileModulus),
		CompressiveStrength: round1(r.CompressiveStrength),
		FlexuralStrength:    round1(r.FlexuralStrength),
		FlexuralModulus:     round1(r.FlexuralModulus),
		ILSS:                round1(r.ILSS),
		ImpactEnergy:        round1(r.ImpactEnergy),
	}
}

func respondJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, errorResponse{Success: false, Error: message})
}
