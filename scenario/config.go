package scenario

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Parse decodes a YAML scenario and checks its steps.
// Fleet size and capacity are left to dispatcher.New to validate.
func Parse(data []byte) (Config, error) {
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("scenario: parse: %w", err)
	}
	if err := cfg.validateSteps(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// Load reads and parses the scenario file at path.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("scenario: load %q: %w", path, err)
	}

	cfg, err := Parse(data)
	if err != nil {
		return Config{}, fmt.Errorf("scenario: load %q: %w", path, err)
	}

	return cfg, nil
}

// ApplyEnv overrides Elevators, Capacity and Verify from the given .env files
// and then from the process environment, which takes precedence. Keys that are
// absent or empty leave the config untouched.
func ApplyEnv(cfg *Config, files ...string) error {
	env := map[string]string{}
	if len(files) > 0 {
		read, err := godotenv.Read(files...)
		if err != nil {
			return fmt.Errorf("scenario: read env files: %w", err)
		}
		env = read
	}
	for _, key := range []string{EnvElevators, EnvCapacity, EnvVerify} {
		if v := os.Getenv(key); v != "" {
			env[key] = v
		}
	}

	if v := env[EnvElevators]; v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("%w: %s=%q: %w", ErrBadEnv, EnvElevators, v, err)
		}
		cfg.Elevators = n
	}
	if v := env[EnvCapacity]; v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("%w: %s=%q: %w", ErrBadEnv, EnvCapacity, v, err)
		}
		cfg.Capacity = n
	}
	if v := env[EnvVerify]; v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("%w: %s=%q: %w", ErrBadEnv, EnvVerify, v, err)
		}
		cfg.Verify = b
	}

	return nil
}

func (c Config) validateSteps() error {
	if len(c.Steps) == 0 {
		return ErrEmptyScenario
	}
	for i, s := range c.Steps {
		hasRequest := s.Request != nil
		hasTicks := s.Ticks != 0
		if hasRequest == hasTicks || s.Ticks < 0 {
			return fmt.Errorf("%w: step %d", ErrBadStep, i)
		}
	}

	return nil
}
