package handler

import (
	"encoding/json"
	"net/http"

	"hfenv/config"
	"hfenv/manager"
)

// HTTPHandler serves the settings API. Every request must take a worker slot
// before it is handled.
type HTTPHandler struct {
	Settings *config.Settings
	Workers  *manager.WorkerPool
}

// NewHTTPHandler creates a new instance of HTTPHandler.
func NewHTTPHandler(settings *config.Settings, workers *manager.WorkerPool) *HTTPHandler {
	return &HTTPHandler{
		Settings: settings,
		Workers:  workers,
	}
}

// ServeHTTP implements the http.Handler interface for HTTPHandler.
func (h *HTTPHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	release, ok := h.Workers.Acquire()
	if !ok {
		logAndReturnError(w, "Service Unavailable: all workers busy", http.StatusServiceUnavailable)
		return
	}
	defer release()

	if r.Method != http.MethodGet {
		logAndReturnError(w, "Method Not Allowed", http.StatusMethodNotAllowed)
		return
	}

	switch r.URL.Path {
	case "/health":
		h.writeJSON(w, r, HealthResponse{Status: "ok"})
	case "/v1/settings":
		h.writeJSON(w, r, settingsResponse(h.Settings))
	default:
		logAndReturnError(w, "Not Found", http.StatusNotFound)
	}
}

func (h *HTTPHandler) writeJSON(w http.ResponseWriter, r *http.Request, body any) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(body); err != nil {
		log.Errorf("Failed to encode response: %v", err)
		return
	}
	logRequest(r, http.StatusOK)
}

func settingsResponse(s *config.Settings) SettingsResponse {
	return SettingsResponse{
		Env:         s.Env,
		Debug:       s.Debug,
		LogLevel:    s.LogLevel,
		HubTokenSet: s.HubToken != "",
		HubHome:     s.HubHome,
		Model: ModelResponse{
			DefaultModel: s.Model.DefaultModel,
			CacheDir:     s.Model.CacheDir,
			Device:       s.Model.Device,
			MaxLength:    s.Model.MaxLength,
			BatchSize:    s.Model.BatchSize,
			Precision:    s.Model.Precision,
		},
		Training: TrainingResponse{
			LearningRate: s.Training.LearningRate,
			NumEpochs:    s.Training.NumEpochs,
			WarmupSteps:  s.Training.WarmupSteps,
			WeightDecay:  s.Training.WeightDecay,
			LoggingSteps: s.Training.LoggingSteps,
			SaveSteps:    s.Training.SaveSteps,
			EvalSteps:    s.Training.EvalSteps,
			OutputDir:    s.Training.OutputDir,
		},
		Data: DataResponse{
			DataDir:         s.Data.DataDir,
			DatasetName:     s.Data.DatasetName,
			TrainSplit:      s.Data.TrainSplit,
			ValidationSplit: s.Data.ValidationSplit,
			TestSplit:       s.Data.TestSplit,
			MaxSamples:      s.Data.MaxSamples,
		},
		APIHost:    s.APIHost,
		APIPort:    s.APIPort,
		NumWorkers: s.NumWorkers,
	}
}
