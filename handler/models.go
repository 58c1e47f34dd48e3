package handler

// HealthResponse is the reply body for /health.
type HealthResponse struct {
	Status string `json:"status"`
}

// SettingsResponse is the reply body for /v1/settings. The hub token is
// never echoed back; only its presence is reported.
type SettingsResponse struct {
	Env         string           `json:"env"`
	Debug       bool             `json:"debug"`
	LogLevel    string           `json:"log_level"`
	HubTokenSet bool             `json:"hub_token_set"`
	HubHome     string           `json:"hub_home"`
	Model       ModelResponse    `json:"model"`
	Training    TrainingResponse `json:"training"`
	Data        DataResponse     `json:"data"`
	APIHost     string           `json:"api_host"`
	APIPort     int              `json:"api_port"`
	NumWorkers  int              `json:"num_workers"`
}

type ModelResponse struct {
	DefaultModel string `json:"default_model"`
	CacheDir     string `json:"cache_dir"`
	Device       string `json:"device"`
	MaxLength    int    `json:"max_length"`
	BatchSize    int    `json:"batch_size"`
	Precision    string `json:"precision"`
}

type TrainingResponse struct {
	LearningRate float64 `json:"learning_rate"`
	NumEpochs    int     `json:"num_epochs"`
	WarmupSteps  int     `json:"warmup_steps"`
	WeightDecay  float64 `json:"weight_decay"`
	LoggingSteps int     `json:"logging_steps"`
	SaveSteps    int     `json:"save_steps"`
	EvalSteps    int     `json:"eval_steps"`
	OutputDir    string  `json:"output_dir"`
}

type DataResponse struct {
	DataDir         string `json:"data_dir"`
	DatasetName     string `json:"dataset_name,omitempty"`
	TrainSplit      string `json:"train_split"`
	ValidationSplit string `json:"validation_split"`
	TestSplit       string `json:"test_split"`
	MaxSamples      int    `json:"max_samples,omitempty"`
}
