package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/SirTuppy/route-setter-scheduler/internal/shared/connection"
	"github.com/SirTuppy/route-setter-scheduler/internal/shared/dateutil"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

const DefaultFileName = "scheduler.yaml"

// Config is everything a binary needs: secrets and addresses from the
// environment, scheduling settings from the YAML file.
type Config struct {
	Env         string
	Port        string
	DB          connection.DBConfig
	RedisAddr   string
	KafkaBroker string
	JWTSecret   string

	Scheduler Scheduler
}

type Scheduler struct {
	Presence Presence           `yaml:"presence"`
	Realtime Realtime           `yaml:"realtime"`
	Holidays []dateutil.Holiday `yaml:"holidays" validate:"dive"`
	Gyms     []GymSeed          `yaml:"gyms" validate:"dive"`
}

type Presence struct {
	ActivityTimeout time.Duration `yaml:"activityTimeout"`
	Heartbeat       time.Duration `yaml:"heartbeat"`
	KeyTTL          time.Duration `yaml:"keyTTL"`
}

type Realtime struct {
	Debounce     time.Duration `yaml:"debounce"`
	PollInterval time.Duration `yaml:"pollInterval"`
}

type GymSeed struct {
	ID          string     `yaml:"id" validate:"required"`
	Name        string     `yaml:"name" validate:"required"`
	Location    string     `yaml:"location"`
	PairedGymID string     `yaml:"pairedGymID,omitempty"`
	Walls       []WallSeed `yaml:"walls" validate:"dive"`
}

type WallSeed struct {
	Name            string  `yaml:"name" validate:"required"`
	Type            string  `yaml:"type" validate:"required,oneof=boulder rope"`
	Difficulty      float64 `yaml:"difficulty" validate:"min=0,max=5.2"`
	ClimbsPerSetter float64 `yaml:"climbsPerSetter" validate:"gte=0"`
	Angle           string  `yaml:"angle,omitempty" validate:"omitempty,oneof=Slab Vert Overhang Steep"`
}

var validate *validator.Validate

func init() {
	validate = validator.New()
}

// Load reads the environment and then the YAML file named by
// SCHEDULER_CONFIG, falling back to scheduler.yaml in the working or home
// directory. A missing file leaves scheduling settings at their defaults.
func Load() (*Config, error) {
	cfg := FromEnv()

	path := os.Getenv("SCHEDULER_CONFIG")
	if path == "" {
		found, err := findConfigFile()
		if err != nil {
			cfg.Scheduler.applyDefaults()
			return cfg, nil
		}
		path = found
	}

	sched, err := LoadSchedulerFromPath(path)
	if err != nil {
		return nil, err
	}
	cfg.Scheduler = *sched
	return cfg, nil
}

func FromEnv() *Config {
	return &Config{
		Env:  getenv("APP_ENV", "development"),
		Port: getenv("PORT", "3000"),
		DB: connection.DBConfig{
			Host:     os.Getenv("DB_HOST"),
			User:     os.Getenv("DB_USER"),
			Password: os.Getenv("DB_PASSWORD"),
			Name:     os.Getenv("DB_NAME"),
			Port:     getenv("DB_PORT", "5432"),
			SSLMode:  getenv("DB_SSLMODE", "disable"),
		},
		RedisAddr:   getenv("REDIS_ADDR", "localhost:6379"),
		KafkaBroker: os.Getenv("KAFKA_BROKER"),
		JWTSecret:   os.Getenv("JWT_SECRET"),
	}
}

func LoadSchedulerFromPath(path string) (*Scheduler, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var s Scheduler
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	if err := Validate(&s); err != nil {
		return nil, err
	}
	s.applyDefaults()

	return &s, nil
}

func Validate(s *Scheduler) error {
	if err := validate.Struct(s); err != nil {
		return fmt.Errorf("config validation failed: %w", err)
	}

	seen := make(map[string]bool, len(s.Gyms))
	for i, g := range s.Gyms {
		if seen[g.ID] {
			return fmt.Errorf("duplicate gym id in gyms[%d]: %s", i, g.ID)
		}
		seen[g.ID] = true
	}
	for i, g := range s.Gyms {
		if g.PairedGymID != "" && !seen[g.PairedGymID] {
			return fmt.Errorf("gyms[%d] pairs with unknown gym %q", i, g.PairedGymID)
		}
	}

	return nil
}

func (s *Scheduler) applyDefaults() {
	if s.Presence.ActivityTimeout <= 0 {
		s.Presence.ActivityTimeout = 60 * time.Second
	}
	if s.Presence.Heartbeat <= 0 {
		s.Presence.Heartbeat = s.Presence.ActivityTimeout / 2
	}
	if s.Presence.KeyTTL <= 0 {
		s.Presence.KeyTTL = 2 * s.Presence.ActivityTimeout
	}
	if s.Realtime.Debounce <= 0 {
		s.Realtime.Debounce = 500 * time.Millisecond
	}
	if s.Realtime.PollInterval <= 0 {
		s.Realtime.PollInterval = 3 * time.Second
	}
}

func findConfigFile() (string, error) {
	if _, err := os.Stat(DefaultFileName); err == nil {
		return DefaultFileName, nil
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}

	homeConfigPath := filepath.Join(homeDir, DefaultFileName)
	if _, err := os.Stat(homeConfigPath); err == nil {
		return homeConfigPath, nil
	}

	return "", fmt.Errorf("config file not found in current directory or home directory")
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
