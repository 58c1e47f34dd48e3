// Package config assembles the application settings from environment
// variables and fixed defaults. Construction creates the configured
// directories as a side effect; propagation of resolved hub values back into
// the process environment is the separate ExportEnv step.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cast"
	"github.com/spf13/viper"
)

// Environment variables consumed during construction, keyed by the viper key
// they are bound to.
var envBindings = map[string]string{
	keyEnvironment: "ENVIRONMENT",
	keyDebug:       "DEBUG",
	keyLogLevel:    "LOG_LEVEL",
	keyHubToken:    "HF_TOKEN",
	keyHubHome:     "HF_HOME",
	keyAPIHost:     "API_HOST",
	keyAPIPort:     "API_PORT",
	keyNumWorkers:  "NUM_WORKERS",
}

const (
	keyEnvironment = "environment"
	keyDebug       = "debug"
	keyLogLevel    = "log_level"
	keyHubToken    = "hf_token"
	keyHubHome     = "hf_home"
	keyAPIHost     = "api_host"
	keyAPIPort     = "api_port"
	keyNumWorkers  = "num_workers"
)

// NewModelSettings builds a ModelSettings record. When no cache dir override
// is given, the default Hugging Face cache under the user's home directory is
// used and created on disk. An explicitly supplied cache dir is left as-is.
func NewModelSettings(opts ...ModelOption) (*ModelSettings, error) {
	m := &ModelSettings{
		DefaultModel: defaultModelID,
		Device:       defaultDevice,
		MaxLength:    defaultMaxLength,
		BatchSize:    defaultBatchSize,
		Precision:    defaultPrecision,
	}
	for _, opt := range opts {
		opt(m)
	}

	if m.CacheDir == "" {
		dir, err := defaultHubCache()
		if err != nil {
			return nil, err
		}
		m.CacheDir = dir
		if err := os.MkdirAll(m.CacheDir, 0o755); err != nil {
			return nil, fmt.Errorf("create model cache dir: %w", err)
		}
	} else {
		m.CacheDir = filepath.Clean(m.CacheDir)
	}
	return m, nil
}

// NewTrainingSettings builds a TrainingSettings record and ensures the output
// directory exists.
func NewTrainingSettings(opts ...TrainingOption) (*TrainingSettings, error) {
	t := &TrainingSettings{
		LearningRate: defaultLearnRate,
		NumEpochs:    defaultNumEpochs,
		WarmupSteps:  defaultWarmup,
		WeightDecay:  defaultDecay,
		LoggingSteps: defaultLogSteps,
		SaveSteps:    defaultSaveSteps,
		EvalSteps:    defaultEvalSteps,
		OutputDir:    defaultOutputDir,
	}
	for _, opt := range opts {
		opt(t)
	}

	t.OutputDir = filepath.Clean(t.OutputDir)
	if err := os.MkdirAll(t.OutputDir, 0o755); err != nil {
		return nil, fmt.Errorf("create output dir: %w", err)
	}
	return t, nil
}

// NewDataSettings builds a DataSettings record and ensures the data directory
// exists.
func NewDataSettings(opts ...DataOption) (*DataSettings, error) {
	d := &DataSettings{
		DataDir:         defaultDataDir,
		TrainSplit:      defaultTrainSplit,
		ValidationSplit: defaultValSplit,
		TestSplit:       defaultTestSplit,
	}
	for _, opt := range opts {
		opt(d)
	}

	d.DataDir = filepath.Clean(d.DataDir)
	if err := os.MkdirAll(d.DataDir, 0o755); err != nil {
		return nil, fmt.Errorf("create data dir: %w", err)
	}
	return d, nil
}

// New builds the top-level Settings record. Scalar fields not overridden via
// options are resolved from the environment with fixed fallback defaults;
// an overridden field never consults the environment at all. Sub-records not
// supplied are constructed fresh with their own defaults. The hub home
// directory is created on disk. New never writes the process environment;
// call ExportEnv for that.
func New(opts ...Option) (*Settings, error) {
	b := &builder{supplied: make(map[string]bool)}
	for _, opt := range opts {
		opt(b)
	}

	v := viper.New()
	v.SetDefault(keyEnvironment, "development")
	v.SetDefault(keyDebug, "false")
	v.SetDefault(keyLogLevel, "INFO")
	v.SetDefault(keyAPIHost, "0.0.0.0")
	v.SetDefault(keyAPIPort, "8000")
	v.SetDefault(keyNumWorkers, "4")

	if b.environ != nil {
		// Explicit snapshot: the process environment is not consulted.
		for name, value := range b.environ {
			v.Set(strings.ToLower(name), value)
		}
	} else {
		for key, name := range envBindings {
			if err := v.BindEnv(key, name); err != nil {
				return nil, fmt.Errorf("bind %s: %w", name, err)
			}
		}
	}

	s := &Settings{}
	for _, apply := range b.overrides {
		apply(s)
	}

	if !b.supplied[keyEnvironment] {
		s.Env = v.GetString(keyEnvironment)
	}
	if !b.supplied[keyDebug] {
		s.Debug = strings.EqualFold(v.GetString(keyDebug), "true")
	}
	if !b.supplied[keyLogLevel] {
		s.LogLevel = v.GetString(keyLogLevel)
	}
	if !b.supplied[keyHubToken] {
		s.HubToken = v.GetString(keyHubToken)
	}
	if !b.supplied[keyAPIHost] {
		s.APIHost = v.GetString(keyAPIHost)
	}

	// Parse failures for the integer-valued variables are fatal rather than
	// silently defaulted.
	if !b.supplied[keyAPIPort] {
		port, err := cast.ToIntE(v.GetString(keyAPIPort))
		if err != nil {
			return nil, fmt.Errorf("parse API_PORT: %w", err)
		}
		s.APIPort = port
	}
	if !b.supplied[keyNumWorkers] {
		workers, err := cast.ToIntE(v.GetString(keyNumWorkers))
		if err != nil {
			return nil, fmt.Errorf("parse NUM_WORKERS: %w", err)
		}
		s.NumWorkers = workers
	}

	if !b.supplied[keyHubHome] {
		s.HubHome = v.GetString(keyHubHome)
		if s.HubHome == "" {
			home, err := defaultHubCache()
			if err != nil {
				return nil, err
			}
			s.HubHome = home
		}
	}

	var err error
	if s.Model == nil {
		if s.Model, err = NewModelSettings(); err != nil {
			return nil, err
		}
	}
	if s.Training == nil {
		if s.Training, err = NewTrainingSettings(); err != nil {
			return nil, err
		}
	}
	if s.Data == nil {
		if s.Data, err = NewDataSettings(); err != nil {
			return nil, err
		}
	}

	s.HubHome = filepath.Clean(s.HubHome)
	if err := os.MkdirAll(s.HubHome, 0o755); err != nil {
		return nil, fmt.Errorf("create hub home: %w", err)
	}
	return s, nil
}

// ExportEnv propagates the resolved hub values into the process environment
// for downstream Hugging Face tooling (transformers, datasets). HF_HOME is
// always written; HF_TOKEN only when a token is present.
func (s *Settings) ExportEnv() error {
	if err := os.Setenv("HF_HOME", s.HubHome); err != nil {
		return fmt.Errorf("set HF_HOME: %w", err)
	}
	if s.HubToken != "" {
		if err := os.Setenv("HF_TOKEN", s.HubToken); err != nil {
			return fmt.Errorf("set HF_TOKEN: %w", err)
		}
	}
	return nil
}

// defaultHubCache returns the standard Hugging Face cache location under the
// user's home directory.
func defaultHubCache() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("resolve home dir: %w", err)
	}
	return filepath.Join(home, ".cache", "huggingface"), nil
}
