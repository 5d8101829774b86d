package elp

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/go-kit/log"
	"github.com/spf13/viper"
)

// ErrInvalidPrecision is returned when the configured precision is negative.
var ErrInvalidPrecision = errors.New("precision must not be negative")

// ConfigEnv is the environment variable naming the directory of elp.toml.
const ConfigEnv = "ELP_CONFIG"

// Config is the configuration of the evaluator and of its tools.
type Config struct {
	DataDir   string  // directory of ELP1..ELP36, empty for the built-in tables
	Precision float64 // default truncation precision
	Parallel  bool    // evaluate the series concurrently
	Workers   int     // ephemeris worker pool size, 0 for GOMAXPROCS

	ServerAddr     string
	ServerRate     float64 // requests per second per client
	ServerBurst    int
	StreamInterval time.Duration
}

func newViper() *viper.Viper {
	v := viper.New()
	v.SetDefault("theory.directory", "")
	v.SetDefault("theory.precision", DefaultPrecision)
	v.SetDefault("theory.parallel", false)
	v.SetDefault("ephemeris.workers", 0)
	v.SetDefault("server.address", ":8080")
	v.SetDefault("server.rate", 10.0)
	v.SetDefault("server.burst", 20)
	v.SetDefault("server.stream_interval", "1s")
	v.SetEnvPrefix("ELP")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	return v
}

// LoadConfig reads the configuration file at path. An empty path looks for
// elp.toml in the directory named by ELP_CONFIG; if that is unset too, only
// defaults and ELP_* environment variables apply.
func LoadConfig(path string) (Config, error) {
	v := newViper()
	switch {
	case path != "":
		v.SetConfigFile(path)
	case os.Getenv(ConfigEnv) != "":
		v.SetConfigName("elp")
		v.SetConfigType("toml")
		v.AddConfigPath(os.Getenv(ConfigEnv))
	}
	if path != "" || os.Getenv(ConfigEnv) != "" {
		if err := v.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("reading configuration: %w", err)
		}
	}
	return configFrom(v)
}

func configFrom(v *viper.Viper) (Config, error) {
	conf := Config{
		DataDir:        v.GetString("theory.directory"),
		Precision:      v.GetFloat64("theory.precision"),
		Parallel:       v.GetBool("theory.parallel"),
		Workers:        v.GetInt("ephemeris.workers"),
		ServerAddr:     v.GetString("server.address"),
		ServerRate:     v.GetFloat64("server.rate"),
		ServerBurst:    v.GetInt("server.burst"),
		StreamInterval: v.GetDuration("server.stream_interval"),
	}
	if conf.Precision < 0 {
		return Config{}, ErrInvalidPrecision
	}
	return conf, nil
}

// Theory returns the theory described by the configuration: the data files
// if a directory is set, the built-in tables otherwise.
func (c Config) Theory(logger log.Logger) (*Theory, error) {
	th := Builtin()
	if c.DataDir != "" {
		var err error
		if th, err = LoadTheory(c.DataDir, logger); err != nil {
			return nil, err
		}
	}
	if c.Parallel {
		th = th.Parallel()
	}
	return th, nil
}

// Sampler returns an ephemeris sampler configured for the theory.
func (c Config) Sampler(th *Theory, logger log.Logger) *Sampler {
	return &Sampler{Theory: th, Precision: c.Precision, Workers: c.Workers, Logger: logger}
}
