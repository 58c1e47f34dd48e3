package config

// Fixed defaults for the settings records. Values not overridden at
// construction time and not found in the environment fall back to these.
const (
	defaultModelID    = "meta-llama/Llama-2-7b-hf"
	defaultDevice     = "mps" // Apple Silicon (M-series)
	defaultMaxLength  = 512
	defaultBatchSize  = 8
	defaultPrecision  = "float16"
	defaultLearnRate  = 2e-5
	defaultNumEpochs  = 3
	defaultWarmup     = 500
	defaultDecay      = 0.01
	defaultLogSteps   = 100
	defaultSaveSteps  = 1000
	defaultEvalSteps  = 500
	defaultOutputDir  = "./outputs"
	defaultDataDir    = "./data"
	defaultTrainSplit = "train"
	defaultValSplit   = "validation"
	defaultTestSplit  = "test"
)

// ModelSettings holds model-serving defaults and overrides.
type ModelSettings struct {
	DefaultModel string
	CacheDir     string
	Device       string
	MaxLength    int
	BatchSize    int
	Precision    string
}

// TrainingSettings holds hyperparameters and output-path bookkeeping for a
// training run.
type TrainingSettings struct {
	LearningRate float64
	NumEpochs    int
	WarmupSteps  int
	WeightDecay  float64
	LoggingSteps int
	SaveSteps    int
	EvalSteps    int
	OutputDir    string
}

// DataSettings holds the dataset location and split naming. DatasetName and
// MaxSamples are optional; their zero values mean "unset".
type DataSettings struct {
	DataDir         string
	DatasetName     string
	TrainSplit      string
	ValidationSplit string
	TestSplit       string
	MaxSamples      int
}

// Settings is the top-level application settings record. It exclusively owns
// its three sub-records and is never mutated after construction.
type Settings struct {
	Env      string
	Debug    bool
	LogLevel string

	// Hugging Face Hub
	HubToken string
	HubHome  string

	Model    *ModelSettings
	Training *TrainingSettings
	Data     *DataSettings

	APIHost    string
	APIPort    int
	NumWorkers int
}
