package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// DashboardConfig - настройки консольного клиента дашборда
type DashboardConfig struct {
	APIURL   string        `yaml:"api_url"`
	APIKey   string        `yaml:"api_key"`
	Timeout  time.Duration `yaml:"timeout"`
	LogLevel string        `yaml:"log_level"`

	// Начальное состояние таблицы
	SortField     string `yaml:"sort_field"`
	SortDirection string `yaml:"sort_direction"`

	// Фильтры по умолчанию
	Filters DashboardFilters `yaml:"filters"`
}

type DashboardFilters struct {
	DroneID       string `yaml:"drone_id"`
	Date          string `yaml:"date"`
	ViolationType string `yaml:"violation_type"`
}

// DefaultDashboardConfig возвращает конфигурацию клиента по умолчанию
func DefaultDashboardConfig() *DashboardConfig {
	return &DashboardConfig{
		APIURL:        "http://localhost:8000",
		Timeout:       10 * time.Second,
		LogLevel:      "warn",
		SortField:     "date",
		SortDirection: "desc",
	}
}

// LoadDashboardConfig читает YAML файл поверх значений по умолчанию.
// Отсутствующий файл не считается ошибкой.
func LoadDashboardConfig(path string) (*DashboardConfig, error) {
	cfg := DefaultDashboardConfig()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return nil, fmt.Errorf("failed to read dashboard config: %w", err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse dashboard config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("dashboard config validation failed: %w", err)
	}
	return cfg, nil
}

// Validate проверяет согласованность настроек клиента
func (c *DashboardConfig) Validate() error {
	if c.APIURL == "" {
		return errors.New("api_url is required")
	}
	if c.Timeout <= 0 {
		return fmt.Errorf("timeout must be positive, got %s", c.Timeout)
	}
	switch c.SortDirection {
	case "asc", "desc":
	default:
		return fmt.Errorf("sort_direction must be asc or desc, got %q", c.SortDirection)
	}
	return nil
}
