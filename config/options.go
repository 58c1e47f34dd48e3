package config

// builder collects construction inputs for New before resolution happens.
// supplied tracks which fields the options set, so env resolution can skip
// them entirely.
type builder struct {
	environ   map[string]string
	overrides []func(*Settings)
	supplied  map[string]bool
}

// Option overrides a top-level Settings field or supplies a construction
// input. Overrides take precedence over environment-derived values.
type Option func(*builder)

// WithEnviron makes construction read the given snapshot instead of the
// process environment. Keys are the environment variable names (ENVIRONMENT,
// DEBUG, ...). A nil map means "use the process environment"; an empty map
// means "no environment at all".
func WithEnviron(environ map[string]string) Option {
	return func(b *builder) { b.environ = environ }
}

func override(field string, f func(*Settings)) Option {
	return func(b *builder) {
		b.supplied[field] = true
		b.overrides = append(b.overrides, f)
	}
}

// WithEnvironment overrides the environment name (development, production, ...).
func WithEnvironment(env string) Option {
	return override(keyEnvironment, func(s *Settings) { s.Env = env })
}

// WithDebug overrides the debug flag.
func WithDebug(debug bool) Option {
	return override(keyDebug, func(s *Settings) { s.Debug = debug })
}

// WithLogLevel overrides the log level name.
func WithLogLevel(level string) Option {
	return override(keyLogLevel, func(s *Settings) { s.LogLevel = level })
}

// WithHubToken overrides the Hugging Face Hub token.
func WithHubToken(token string) Option {
	return override(keyHubToken, func(s *Settings) { s.HubToken = token })
}

// WithHubHome overrides the Hugging Face Hub cache directory.
func WithHubHome(dir string) Option {
	return override(keyHubHome, func(s *Settings) { s.HubHome = dir })
}

// WithAPIHost overrides the API bind address.
func WithAPIHost(host string) Option {
	return override(keyAPIHost, func(s *Settings) { s.APIHost = host })
}

// WithAPIPort overrides the API port.
func WithAPIPort(port int) Option {
	return override(keyAPIPort, func(s *Settings) { s.APIPort = port })
}

// WithNumWorkers overrides the worker count.
func WithNumWorkers(n int) Option {
	return override(keyNumWorkers, func(s *Settings) { s.NumWorkers = n })
}

// WithModel supplies a pre-built model settings record.
func WithModel(m *ModelSettings) Option {
	return override("model", func(s *Settings) { s.Model = m })
}

// WithTraining supplies a pre-built training settings record.
func WithTraining(t *TrainingSettings) Option {
	return override("training", func(s *Settings) { s.Training = t })
}

// WithData supplies a pre-built data settings record.
func WithData(d *DataSettings) Option {
	return override("data", func(s *Settings) { s.Data = d })
}

// ModelOption overrides a ModelSettings field.
type ModelOption func(*ModelSettings)

// WithDefaultModel overrides the default model identifier.
func WithDefaultModel(name string) ModelOption {
	return func(m *ModelSettings) { m.DefaultModel = name }
}

// WithCacheDir overrides the model cache directory. The directory is not
// created when supplied explicitly.
func WithCacheDir(dir string) ModelOption {
	return func(m *ModelSettings) { m.CacheDir = dir }
}

// WithDevice overrides the compute device tag.
func WithDevice(device string) ModelOption {
	return func(m *ModelSettings) { m.Device = device }
}

// WithMaxLength overrides the sequence-length limit.
func WithMaxLength(n int) ModelOption {
	return func(m *ModelSettings) { m.MaxLength = n }
}

// WithBatchSize overrides the batch size.
func WithBatchSize(n int) ModelOption {
	return func(m *ModelSettings) { m.BatchSize = n }
}

// WithPrecision overrides the numeric precision tag.
func WithPrecision(p string) ModelOption {
	return func(m *ModelSettings) { m.Precision = p }
}

// TrainingOption overrides a TrainingSettings field.
type TrainingOption func(*TrainingSettings)

// WithLearningRate overrides the learning rate.
func WithLearningRate(lr float64) TrainingOption {
	return func(t *TrainingSettings) { t.LearningRate = lr }
}

// WithNumEpochs overrides the epoch count.
func WithNumEpochs(n int) TrainingOption {
	return func(t *TrainingSettings) { t.NumEpochs = n }
}

// WithWarmupSteps overrides the warmup step count.
func WithWarmupSteps(n int) TrainingOption {
	return func(t *TrainingSettings) { t.WarmupSteps = n }
}

// WithWeightDecay overrides the weight decay.
func WithWeightDecay(wd float64) TrainingOption {
	return func(t *TrainingSettings) { t.WeightDecay = wd }
}

// WithLoggingSteps overrides the logging interval.
func WithLoggingSteps(n int) TrainingOption {
	return func(t *TrainingSettings) { t.LoggingSteps = n }
}

// WithSaveSteps overrides the checkpoint interval.
func WithSaveSteps(n int) TrainingOption {
	return func(t *TrainingSettings) { t.SaveSteps = n }
}

// WithEvalSteps overrides the evaluation interval.
func WithEvalSteps(n int) TrainingOption {
	return func(t *TrainingSettings) { t.EvalSteps = n }
}

// WithOutputDir overrides the training output directory.
func WithOutputDir(dir string) TrainingOption {
	return func(t *TrainingSettings) { t.OutputDir = dir }
}

// DataOption overrides a DataSettings field.
type DataOption func(*DataSettings)

// WithDataDir overrides the dataset directory.
func WithDataDir(dir string) DataOption {
	return func(d *DataSettings) { d.DataDir = dir }
}

// WithDatasetName sets the optional dataset name.
func WithDatasetName(name string) DataOption {
	return func(d *DataSettings) { d.DatasetName = name }
}

// WithSplits overrides the train/validation/test split names.
func WithSplits(train, validation, test string) DataOption {
	return func(d *DataSettings) {
		d.TrainSplit = train
		d.ValidationSplit = validation
		d.TestSplit = test
	}
}

// WithMaxSamples sets the optional sample cap.
func WithMaxSamples(n int) DataOption {
	return func(d *DataSettings) { d.MaxSamples = n }
}
