package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// isolateEnv points HOME at a temp dir, moves the working directory to a temp
// dir (the default output/data dirs are relative), and clears every settings
// variable. t.Setenv registers restoration of the original values.
func isolateEnv(t *testing.T) string {
	t.Helper()
	home := t.TempDir()
	t.Setenv("HOME", home)
	// os.Chdir with a cleanup stands in for t.Chdir (Go 1.24+ only).
	prevWD, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(t.TempDir()))
	t.Cleanup(func() { os.Chdir(prevWD) })
	for _, name := range envBindings {
		t.Setenv(name, "")
		os.Unsetenv(name)
	}
	return home
}

func TestNewModelSettings_Defaults(t *testing.T) {
	home := isolateEnv(t)

	m, err := NewModelSettings()
	require.NoError(t, err)

	assert.Equal(t, "meta-llama/Llama-2-7b-hf", m.DefaultModel)
	assert.Equal(t, "mps", m.Device)
	assert.Equal(t, 512, m.MaxLength)
	assert.Equal(t, 8, m.BatchSize)
	assert.Equal(t, "float16", m.Precision)
	assert.Equal(t, filepath.Join(home, ".cache", "huggingface"), m.CacheDir)
	assert.DirExists(t, m.CacheDir)
}

func TestNewModelSettings_ExplicitCacheDirNotCreated(t *testing.T) {
	isolateEnv(t)

	dir := filepath.Join(t.TempDir(), "custom-cache")
	m, err := NewModelSettings(WithCacheDir(dir))
	require.NoError(t, err)

	assert.Equal(t, dir, m.CacheDir)
	assert.NoDirExists(t, dir)
}

func TestNewTrainingSettings_Defaults(t *testing.T) {
	isolateEnv(t)

	tr, err := NewTrainingSettings()
	require.NoError(t, err)

	assert.Equal(t, 2e-5, tr.LearningRate)
	assert.Equal(t, 3, tr.NumEpochs)
	assert.Equal(t, 500, tr.WarmupSteps)
	assert.Equal(t, 0.01, tr.WeightDecay)
	assert.Equal(t, 100, tr.LoggingSteps)
	assert.Equal(t, 1000, tr.SaveSteps)
	assert.Equal(t, 500, tr.EvalSteps)
	assert.DirExists(t, tr.OutputDir)
}

func TestNewTrainingSettings_OutputDirOverride(t *testing.T) {
	isolateEnv(t)

	dir := filepath.Join(t.TempDir(), "runs", "exp-1")
	tr, err := NewTrainingSettings(WithOutputDir(dir), WithNumEpochs(10))
	require.NoError(t, err)

	assert.Equal(t, dir, tr.OutputDir)
	assert.DirExists(t, dir)
	assert.Equal(t, 10, tr.NumEpochs)
}

func TestNewDataSettings_Defaults(t *testing.T) {
	isolateEnv(t)

	d, err := NewDataSettings()
	require.NoError(t, err)

	assert.Equal(t, "train", d.TrainSplit)
	assert.Equal(t, "validation", d.ValidationSplit)
	assert.Equal(t, "test", d.TestSplit)
	assert.Empty(t, d.DatasetName)
	assert.Zero(t, d.MaxSamples)
	assert.DirExists(t, d.DataDir)
}

func TestNew_EnvDefaults(t *testing.T) {
	home := isolateEnv(t)

	s, err := New()
	require.NoError(t, err)

	assert.Equal(t, "development", s.Env)
	assert.False(t, s.Debug)
	assert.Equal(t, "INFO", s.LogLevel)
	assert.Empty(t, s.HubToken)
	assert.Equal(t, filepath.Join(home, ".cache", "huggingface"), s.HubHome)
	assert.DirExists(t, s.HubHome)
	assert.Equal(t, "0.0.0.0", s.APIHost)
	assert.Equal(t, 8000, s.APIPort)
	assert.Equal(t, 4, s.NumWorkers)
}

func TestNew_EnvOverrides(t *testing.T) {
	isolateEnv(t)
	t.Setenv("ENVIRONMENT", "production")
	t.Setenv("LOG_LEVEL", "ERROR")
	t.Setenv("API_HOST", "127.0.0.1")
	t.Setenv("API_PORT", "9000")
	t.Setenv("NUM_WORKERS", "16")

	s, err := New()
	require.NoError(t, err)

	assert.Equal(t, "production", s.Env)
	assert.Equal(t, "ERROR", s.LogLevel)
	assert.Equal(t, "127.0.0.1", s.APIHost)
	assert.Equal(t, 9000, s.APIPort)
	assert.Equal(t, 16, s.NumWorkers)
}

func TestNew_DebugParsing(t *testing.T) {
	tests := []struct {
		value string
		want  bool
	}{
		{"true", true},
		{"TRUE", true},
		{"True", true},
		{"false", false},
		{"1", false},
		{"yes", false},
		{"", false},
	}

	for _, tt := range tests {
		t.Run("DEBUG="+tt.value, func(t *testing.T) {
			isolateEnv(t)
			if tt.value != "" {
				t.Setenv("DEBUG", tt.value)
			}

			s, err := New()
			require.NoError(t, err)
			assert.Equal(t, tt.want, s.Debug)
		})
	}
}

func TestNew_BadIntegerIsFatal(t *testing.T) {
	for _, name := range []string{"API_PORT", "NUM_WORKERS"} {
		t.Run(name, func(t *testing.T) {
			isolateEnv(t)
			t.Setenv(name, "not-a-number")

			_, err := New()
			require.Error(t, err)
			assert.Contains(t, err.Error(), name)
		})
	}
}

func TestNew_OptionsBeatEnvironment(t *testing.T) {
	isolateEnv(t)
	t.Setenv("ENVIRONMENT", "production")
	t.Setenv("API_PORT", "9000")

	s, err := New(WithEnvironment("staging"), WithAPIPort(7000))
	require.NoError(t, err)

	assert.Equal(t, "staging", s.Env)
	assert.Equal(t, 7000, s.APIPort)
}

func TestNew_OverrideSkipsEnvParsing(t *testing.T) {
	isolateEnv(t)
	// Unparseable env values must not matter for explicitly supplied fields.
	t.Setenv("API_PORT", "not-a-number")
	t.Setenv("NUM_WORKERS", "also-not-a-number")

	s, err := New(WithAPIPort(7000), WithNumWorkers(2))
	require.NoError(t, err)

	assert.Equal(t, 7000, s.APIPort)
	assert.Equal(t, 2, s.NumWorkers)
}

func TestNew_HubHomeOverrideSkipsHomeLookup(t *testing.T) {
	isolateEnv(t)
	// With no home directory resolvable, a supplied hub home must still work.
	t.Setenv("HOME", "")
	os.Unsetenv("HOME")

	tmp := t.TempDir()
	model, err := NewModelSettings(WithCacheDir(filepath.Join(tmp, "cache")))
	require.NoError(t, err)

	hub := filepath.Join(tmp, "hub")
	s, err := New(WithHubHome(hub), WithModel(model))
	require.NoError(t, err)

	assert.Equal(t, hub, s.HubHome)
	assert.DirExists(t, hub)
}

func TestNew_EnvironSnapshot(t *testing.T) {
	isolateEnv(t)
	// Process environment must be ignored when a snapshot is supplied.
	t.Setenv("API_PORT", "7777")
	t.Setenv("LOG_LEVEL", "ERROR")

	s, err := New(WithEnviron(map[string]string{
		"ENVIRONMENT": "production",
		"API_PORT":    "9001",
	}))
	require.NoError(t, err)

	assert.Equal(t, "production", s.Env)
	assert.Equal(t, 9001, s.APIPort)
	assert.Equal(t, "INFO", s.LogLevel, "keys missing from the snapshot take defaults, not process env")
}

func TestNew_HubHomeFromEnv(t *testing.T) {
	isolateEnv(t)
	hub := filepath.Join(t.TempDir(), "hub")
	t.Setenv("HF_HOME", hub)

	s, err := New()
	require.NoError(t, err)

	assert.Equal(t, hub, s.HubHome)
	assert.DirExists(t, hub)
}

func TestNew_FreshSubRecordsPerInstance(t *testing.T) {
	isolateEnv(t)

	a, err := New()
	require.NoError(t, err)
	b, err := New()
	require.NoError(t, err)

	assert.NotSame(t, a.Model, b.Model)
	assert.NotSame(t, a.Training, b.Training)
	assert.NotSame(t, a.Data, b.Data)
}

func TestExportEnv(t *testing.T) {
	isolateEnv(t)
	hub := filepath.Join(t.TempDir(), "hub")

	s, err := New(WithHubHome(hub), WithHubToken("abc123"))
	require.NoError(t, err)

	// New alone must not touch the process environment.
	assert.Empty(t, os.Getenv("HF_HOME"))
	assert.Empty(t, os.Getenv("HF_TOKEN"))

	require.NoError(t, s.ExportEnv())
	assert.Equal(t, hub, os.Getenv("HF_HOME"))
	assert.Equal(t, "abc123", os.Getenv("HF_TOKEN"))
}

func TestExportEnv_NoTokenLeavesVarAlone(t *testing.T) {
	isolateEnv(t)

	s, err := New(WithHubHome(filepath.Join(t.TempDir(), "hub")))
	require.NoError(t, err)

	require.NoError(t, s.ExportEnv())
	_, present := os.LookupEnv("HF_TOKEN")
	assert.False(t, present)
}
