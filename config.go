package eventlog

import (
	"os"
	"strings"

	"github.com/Station-Manager/errors"
	"gopkg.in/yaml.v3"
)

// Config holds the two values the sink needs: the base directory and the file-name
// extension appended after the distinction name.
type Config struct {
	// LogPath is the directory holding one file per distinction (log_path).
	LogPath string `yaml:"log_path" json:"log_path" validate:"required"`
	// FormatExtension is the suffix after the distinction name, without any dot
	// (log_format_extension).
	FormatExtension string `yaml:"log_format_extension" json:"log_format_extension" validate:"required,excludesall=/\\."`
}

// DefaultConfig returns logs/ with the "log" extension.
func DefaultConfig() Config {
	return Config{
		LogPath:         DefaultLogPath,
		FormatExtension: DefaultFormatExtension,
	}
}

// LoadConfig reads a YAML file on top of DefaultConfig, then applies the
// EVENTLOG_LOG_PATH and EVENTLOG_LOG_FORMAT_EXTENSION overrides. An empty path
// skips the file. The result is validated.
func LoadConfig(path string) (Config, error) {
	const op errors.Op = "eventlog.LoadConfig"
	cfg := DefaultConfig()

	if path != emptyString {
		data, err := os.ReadFile(path)
		if err != nil {
			return Config{}, errors.New(op).Err(err).Msg(errMsgConfigRead)
		}
		if err = yaml.Unmarshal(data, &cfg); err != nil {
			return Config{}, errors.New(op).Err(err).Msg(errMsgConfigParse)
		}
	}

	cfg.applyEnv()

	if err := validateConfig(&cfg); err != nil {
		return Config{}, errors.New(op).Err(err).Msg(errMsgConfigInvalid)
	}
	return cfg, nil
}

// Validate checks that both values are set and the extension holds no path
// separator and no dot.
func (c Config) Validate() error {
	return validateConfig(&c)
}

func (c *Config) applyEnv() {
	if v := strings.TrimSpace(os.Getenv(EnvLogPath)); v != emptyString {
		c.LogPath = v
	}
	if v := strings.TrimSpace(os.Getenv(EnvFormatExtension)); v != emptyString {
		c.FormatExtension = strings.TrimPrefix(v, ".")
	}
}
