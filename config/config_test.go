package config_test

import (
	"bytes"
	"net/netip"
	"os"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/YaCodeDev/GoYaCliUtils/config"
	"github.com/YaCodeDev/GoYaCliUtils/valueparser"
	"github.com/YaCodeDev/GoYaCliUtils/yalogger"
)

type nestedStruct struct {
	IntNoDefault       int
	IntNoDefaultDotEnv int
	LogLevel           yalogger.Level `default:"info"`
}

type testStruct struct {
	String       string                       `default:"Ya_Code"`
	Int          int                          `default:"42"`
	Int8         int8                         `default:"-128"`
	Uint16       uint16                       `default:"+65535"`
	Float32      float32                      `default:"1.618"`
	Float64      float64                      `default:"2.718"`
	Bool         bool                         `default:"1"`
	Char         valueparser.Char             `default:"ж"`
	Kind         valueparser.Kind             `default:"double"`
	Timeout      time.Duration                `default:"1500"`
	Bytes        []byte                       `default:"1,2,3"`
	IntSlice     []int                        `default:"1, 2, 3"`
	StringSlice  []string                     `default:"Ya_Code,Skalse,Oleksandr"`
	LevelSlice   []yalogger.Level             `default:"debug,warn"`
	MapStringInt map[string]int               `default:"yashluha:1,anzhelchikk:2"`
	MapInt8Bool  map[int8]bool                `default:"-1:true,2:false"`
	MapKindFloat map[valueparser.Kind]float64 `default:"float:0.5"`
	Addr         netip.Addr                   `default:"127.0.0.1"`
	Optional     string                       `default:""`
	FromEnv      uint32
	Existing     string
	NestedStruct nestedStruct
}

var expected = testStruct{
	String:       "Ya_Code",
	Int:          42,
	Int8:         -128,
	Uint16:       65535,
	Float32:      1.618,
	Float64:      2.718,
	Bool:         true,
	Char:         'ж',
	Kind:         valueparser.KindFloat64,
	Timeout:      1500,
	Bytes:        []byte{1, 2, 3},
	IntSlice:     []int{1, 2, 3},
	StringSlice:  []string{"Ya_Code", "Skalse", "Oleksandr"},
	LevelSlice:   []yalogger.Level{yalogger.DebugLevel, yalogger.WarnLevel},
	MapStringInt: map[string]int{"yashluha": 1, "anzhelchikk": 2},
	MapInt8Bool:  map[int8]bool{-1: true, 2: false},
	MapKindFloat: map[valueparser.Kind]float64{valueparser.KindFloat32: 0.5},
	Addr:         netip.AddrFrom4([4]byte{127, 0, 0, 1}),
	FromEnv:      7,
	Existing:     "kept",
	NestedStruct: nestedStruct{
		IntNoDefault:       100,
		IntNoDefaultDotEnv: 200,
		LogLevel:           yalogger.InfoLevel,
	},
}

var compareAddr = cmp.Comparer(func(a, b netip.Addr) bool { return a == b })

func newBufferLogger(buf *bytes.Buffer) yalogger.Logger {
	return yalogger.NewBaseLogger(&yalogger.Config{
		Level:            yalogger.TraceLevel,
		DisableTimestamp: true,
		Output:           buf,
	}).NewLogger()
}

func writeDotEnv(t *testing.T, content string) {
	t.Helper()

	t.Chdir(t.TempDir())

	require.NoError(t, os.WriteFile(config.DotEnvFile, []byte(content), 0o600))
}

func unsetEnv(t *testing.T, keys ...string) {
	t.Helper()

	for _, key := range keys {
		t.Setenv(key, "")
		require.NoError(t, os.Unsetenv(key))
	}
}

func TestConfigLoader(t *testing.T) {
	unsetEnv(t,
		"STRING", "INT", "INT8", "UINT16", "FLOAT32", "FLOAT64", "BOOL", "CHAR", "KIND",
		"TIMEOUT", "BYTES", "INT_SLICE", "STRING_SLICE", "LEVEL_SLICE", "MAP_STRING_INT",
		"MAP_INT8_BOOL", "MAP_KIND_FLOAT", "ADDR", "OPTIONAL", "EXISTING",
		"NESTED_STRUCT_INT_NO_DEFAULT_DOT_ENV", "NESTED_STRUCT_LOG_LEVEL",
	)
	t.Setenv("NESTED_STRUCT_INT_NO_DEFAULT", "100")
	t.Setenv("FROM_ENV", "7")

	writeDotEnv(t, "NESTED_STRUCT_INT_NO_DEFAULT_DOT_ENV=200\n")

	configInstance := testStruct{Existing: "kept"}

	err := config.LoadConfigStructFromEnvHandlingError(&configInstance, nil)
	require.NoError(t, err)

	if diff := cmp.Diff(expected, configInstance, compareAddr); diff != "" {
		t.Errorf("config mismatch (-want +got):\n%s", diff)
	}
}

func TestConfigLoader_EnvOverridesDefault(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("YA_CLI_TEST_LEVEL", "trace")
	t.Setenv("YA_CLI_TEST_PORTS", "80, 443")

	var cfg struct {
		YaCliTestLevel yalogger.Level `default:"info"`
		YaCliTestPorts []uint16       `default:"8080"`
	}

	require.NoError(t, config.LoadConfigStructFromEnvHandlingError(&cfg, nil))
	assert.Equal(t, yalogger.TraceLevel, cfg.YaCliTestLevel)
	assert.Equal(t, []uint16{80, 443}, cfg.YaCliTestPorts)
}

func TestConfigLoader_RejectsMalformedValue(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("YA_CLI_TEST_PORT", "80x")

	var buf bytes.Buffer

	var cfg struct {
		YaCliTestPort uint16 `default:"80"`
	}

	err := config.LoadConfigStructFromEnvHandlingError(&cfg, newBufferLogger(&buf))
	require.Error(t, err)
	assert.ErrorIs(t, err, valueparser.ErrBadConversion)
	assert.Contains(t, err.Error(), "YA_CLI_TEST_PORT")
	assert.Contains(t, buf.String(), "YA_CLI_TEST_PORT")
}

func TestConfigLoader_RejectsMalformedDefault(t *testing.T) {
	t.Chdir(t.TempDir())

	var cfg struct {
		YaCliTestRatio float32 `default:"1e39"`
	}

	err := config.LoadConfigStructFromEnvHandlingError(&cfg, nil)
	require.Error(t, err)
	assert.ErrorIs(t, err, valueparser.ErrBadConversion)
	assert.Contains(t, err.Error(), "YaCliTestRatio default")
}

func TestConfigLoader_Required(t *testing.T) {
	t.Chdir(t.TempDir())

	var cfg struct {
		YaCliTestRequired int
	}

	err := config.LoadConfigStructFromEnvHandlingError(&cfg, nil)
	require.Error(t, err)
	assert.ErrorIs(t, err, config.ErrValueIsRequired)
	assert.Contains(t, err.Error(), "YA_CLI_TEST_REQUIRED")
}

func TestConfigLoader_MustBeStruct(t *testing.T) {
	t.Chdir(t.TempDir())

	var notAStruct int

	err := config.LoadConfigStructFromEnvHandlingError(&notAStruct, nil)
	assert.ErrorIs(t, err, config.ErrConfigStructMustBeStruct)

	err = config.LoadConfigStructFromEnvHandlingError[testStruct](nil, nil)
	assert.ErrorIs(t, err, config.ErrConfigStructMustBeStruct)
}

func TestConfigLoader_DotEnv(t *testing.T) {
	t.Setenv("YA_CLI_TEST_PRESET", "from process")

	writeDotEnv(t, `
# comment
export YA_CLI_TEST_QUOTED="with spaces"
YA_CLI_TEST_SINGLE='single'
YA_CLI_TEST_PRESET=from file
YA_CLI_TEST_EQUALS=a=b
`)

	var cfg struct {
		YaCliTestQuoted string
		YaCliTestSingle string
		YaCliTestPreset string
		YaCliTestEquals string
	}

	require.NoError(t, config.LoadConfigStructFromEnvHandlingError(&cfg, nil))
	assert.Equal(t, "with spaces", cfg.YaCliTestQuoted)
	assert.Equal(t, "single", cfg.YaCliTestSingle)
	assert.Equal(t, "from process", cfg.YaCliTestPreset)
	assert.Equal(t, "a=b", cfg.YaCliTestEquals)
}

func TestConfigLoader_InvalidDotEnvIsAWarning(t *testing.T) {
	t.Setenv("YA_CLI_TEST_NAME", "set")

	writeDotEnv(t, "NOT A PAIR\n")

	var buf bytes.Buffer

	var cfg struct {
		YaCliTestName string
	}

	require.NoError(t, config.LoadConfigStructFromEnvHandlingError(&cfg, newBufferLogger(&buf)))
	assert.Equal(t, "set", cfg.YaCliTestName)
	assert.Contains(t, buf.String(), config.ErrInvalidDotEnvFileFormat.Error())
	assert.Contains(t, buf.String(), "line 1")
}

func TestGetEnv(t *testing.T) {
	t.Setenv("YA_CLI_TEST_INT", "-12")
	t.Setenv("YA_CLI_TEST_BAD", "12abc")

	var buf bytes.Buffer

	log := newBufferLogger(&buf)

	assert.Equal(t, int16(-12), config.GetEnv[int16]("YA_CLI_TEST_INT", 5, false, log))
	assert.Equal(t, int16(5), config.GetEnv[int16]("YA_CLI_TEST_BAD", 5, false, log))
	assert.Equal(t, "fallback", config.GetEnv("YA_CLI_TEST_UNSET", "fallback", false, nil))

	assert.Contains(t, buf.String(), "Failed to parse environment variable YA_CLI_TEST_BAD")
}

func TestGetEnvArray(t *testing.T) {
	t.Setenv("YA_CLI_TEST_KINDS", "int8;char")

	separator := ";"

	got := config.GetEnvArray[valueparser.Kind]("YA_CLI_TEST_KINDS", nil, &separator, false, nil)
	assert.Equal(t, []valueparser.Kind{valueparser.KindInt8, valueparser.KindChar}, got)

	fallback := []int{1}
	assert.Equal(t, fallback, config.GetEnvArray("YA_CLI_TEST_UNSET", fallback, nil, false, nil))
}

func TestGetEnvMap(t *testing.T) {
	t.Setenv("YA_CLI_TEST_WEIGHTS", "a:1.5,b:-2")
	t.Setenv("YA_CLI_TEST_BROKEN", "a:1:2")

	got := config.GetEnvMap[string, float64]("YA_CLI_TEST_WEIGHTS", nil, false, nil, nil, nil)
	assert.Equal(t, map[string]float64{"a": 1.5, "b": -2}, got)

	fallback := map[string]float64{"x": 1}
	assert.Equal(t, fallback, config.GetEnvMap("YA_CLI_TEST_BROKEN", fallback, false, nil, nil, nil))
}
