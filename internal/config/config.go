package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/m04kA/SMC-ClinicReservationService/internal/domain"
	"github.com/m04kA/SMC-ClinicReservationService/pkg/types"
)

// ErrInvalidConfig возвращается, если значения конфигурации некорректны
var ErrInvalidConfig = errors.New("config: invalid configuration")

const (
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite3"

	NotificationDriverOutbox = "outbox"
	NotificationDriverAMQP   = "amqp"
	NotificationDriverLog    = "log"
)

// Config корневая конфигурация сервиса
type Config struct {
	Server          ServerConfig        `toml:"server"`
	Database        DatabaseConfig      `toml:"database"`
	Logs            LogsConfig          `toml:"logs"`
	Metrics         MetricsConfig       `toml:"metrics"`
	CORS            CORSConfig          `toml:"cors"`
	IdentityService ClientConfig        `toml:"identity_service"`
	AnimalService   ClientConfig        `toml:"animal_service"`
	Scheduling      SchedulingConfig    `toml:"scheduling"`
	Notifications   NotificationsConfig `toml:"notifications"`
}

// ServerConfig настройки HTTP сервера (таймауты в секундах)
type ServerConfig struct {
	HTTPPort        int `toml:"http_port"`
	ReadTimeout     int `toml:"read_timeout"`
	WriteTimeout    int `toml:"write_timeout"`
	IdleTimeout     int `toml:"idle_timeout"`
	ShutdownTimeout int `toml:"shutdown_timeout"`
}

// DatabaseConfig настройки подключения к БД
type DatabaseConfig struct {
	Driver          string `toml:"driver"`
	Host            string `toml:"host"`
	Port            int    `toml:"port"`
	User            string `toml:"user"`
	Password        string `toml:"password"`
	DBName          string `toml:"dbname"`
	SSLMode         string `toml:"sslmode"`
	Path            string `toml:"path"`
	MaxOpenConns    int    `toml:"max_open_conns"`
	MaxIdleConns    int    `toml:"max_idle_conns"`
	ConnMaxLifetime int    `toml:"conn_max_lifetime"`
	AutoMigrate     bool   `toml:"auto_migrate"`
}

// DSN строка подключения для выбранного драйвера
func (c DatabaseConfig) DSN() string {
	if c.Driver == DriverSQLite {
		return c.Path
	}
	return fmt.Sprintf(
		"host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.User, c.Password, c.DBName, c.SSLMode,
	)
}

// LogsConfig настройки логирования
type LogsConfig struct {
	File  string `toml:"file"`
	Level string `toml:"level"`
}

// MetricsConfig настройки prometheus
type MetricsConfig struct {
	Enabled     bool   `toml:"enabled"`
	Path        string `toml:"path"`
	ServiceName string `toml:"service_name"`
}

// CORSConfig настройки CORS
type CORSConfig struct {
	AllowedOrigins []string `toml:"allowed_origins"`
	AllowedMethods []string `toml:"allowed_methods"`
	AllowedHeaders []string `toml:"allowed_headers"`
	MaxAge         int      `toml:"max_age"`
}

// ClientConfig настройки HTTP клиента внешнего сервиса (timeout в секундах)
type ClientConfig struct {
	URL     string `toml:"url"`
	Timeout int    `toml:"timeout"`
}

// SchedulingConfig параметры расписания клиники
type SchedulingConfig struct {
	OpenTime               string `toml:"open_time"`
	CloseTime              string `toml:"close_time"`
	Weekdays               []int  `toml:"weekdays"`
	ConflictBufferMinutes  int    `toml:"conflict_buffer_minutes"`
	SlotGranularityMinutes int    `toml:"slot_granularity_minutes"`
	NotificationFailure    string `toml:"notification_failure"`
}

// NotificationsConfig выбор отправителя уведомлений
type NotificationsConfig struct {
	Driver   string `toml:"driver"`
	AMQPURL  string `toml:"amqp_url"`
	Exchange string `toml:"exchange"`
}

// Load читает конфигурацию из TOML файла, применяет значения по умолчанию и валидирует
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config: read %s: %w", path, err)
	}
	return Parse(string(data))
}

// Parse разбирает конфигурацию из строки
func Parse(data string) (*Config, error) {
	var cfg Config
	if _, err := toml.Decode(data, &cfg); err != nil {
		return nil, fmt.Errorf("config: decode: %w", err)
	}

	cfg.applyDefaults()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func (c *Config) applyDefaults() {
	if c.Server.HTTPPort == 0 {
		c.Server.HTTPPort = 8080
	}
	if c.Server.ReadTimeout == 0 {
		c.Server.ReadTimeout = 15
	}
	if c.Server.WriteTimeout == 0 {
		c.Server.WriteTimeout = 15
	}
	if c.Server.IdleTimeout == 0 {
		c.Server.IdleTimeout = 60
	}
	if c.Server.ShutdownTimeout == 0 {
		c.Server.ShutdownTimeout = 10
	}

	if c.Database.Driver == "" {
		c.Database.Driver = DriverPostgres
	}
	if c.Database.SSLMode == "" {
		c.Database.SSLMode = "disable"
	}
	if c.Database.Driver == DriverSQLite {
		if c.Database.Path == "" {
			c.Database.Path = "file:clinic.db?_foreign_keys=on"
		}
		// sqlite сериализует писателей только на одном соединении
		c.Database.MaxOpenConns = 1
		c.Database.MaxIdleConns = 1
	}
	if c.Database.MaxOpenConns == 0 {
		c.Database.MaxOpenConns = 25
	}
	if c.Database.MaxIdleConns == 0 {
		c.Database.MaxIdleConns = 5
	}
	if c.Database.ConnMaxLifetime == 0 {
		c.Database.ConnMaxLifetime = 300
	}

	if c.Logs.Level == "" {
		c.Logs.Level = "info"
	}

	if c.Metrics.Path == "" {
		c.Metrics.Path = "/metrics"
	}
	if c.Metrics.ServiceName == "" {
		c.Metrics.ServiceName = "clinic-reservation-service"
	}

	if len(c.CORS.AllowedMethods) == 0 {
		c.CORS.AllowedMethods = []string{"GET", "POST", "PATCH", "OPTIONS"}
	}
	if len(c.CORS.AllowedHeaders) == 0 {
		c.CORS.AllowedHeaders = []string{"Content-Type", "X-User-ID"}
	}

	if c.IdentityService.Timeout == 0 {
		c.IdentityService.Timeout = 5
	}
	if c.AnimalService.Timeout == 0 {
		c.AnimalService.Timeout = 5
	}

	if c.Scheduling.OpenTime == "" {
		c.Scheduling.OpenTime = "07:00"
	}
	if c.Scheduling.CloseTime == "" {
		c.Scheduling.CloseTime = "20:00"
	}
	if len(c.Scheduling.Weekdays) == 0 {
		c.Scheduling.Weekdays = []int{1, 2, 3, 4, 5}
	}
	if c.Scheduling.ConflictBufferMinutes == 0 {
		c.Scheduling.ConflictBufferMinutes = domain.DefaultConflictBufferMinutes
	}
	if c.Scheduling.SlotGranularityMinutes == 0 {
		c.Scheduling.SlotGranularityMinutes = domain.DefaultSlotGranularityMinutes
	}
	if c.Scheduling.NotificationFailure == "" {
		c.Scheduling.NotificationFailure = string(domain.NotificationFailurePropagate)
	}

	if c.Notifications.Driver == "" {
		c.Notifications.Driver = NotificationDriverOutbox
	}
	if c.Notifications.Exchange == "" {
		c.Notifications.Exchange = "clinic.reservations"
	}
}

// Validate проверяет согласованность значений
func (c *Config) Validate() error {
	var problems []string

	switch c.Database.Driver {
	case DriverPostgres, DriverSQLite:
	default:
		problems = append(problems, fmt.Sprintf("database.driver %q is not supported", c.Database.Driver))
	}

	if c.IdentityService.URL == "" {
		problems = append(problems, "identity_service.url is required")
	}
	if c.AnimalService.URL == "" {
		problems = append(problems, "animal_service.url is required")
	}

	if _, err := c.Scheduling.ToPolicy(); err != nil {
		problems = append(problems, err.Error())
	}

	switch c.Notifications.Driver {
	case NotificationDriverOutbox, NotificationDriverLog:
	case NotificationDriverAMQP:
		if c.Notifications.AMQPURL == "" {
			problems = append(problems, "notifications.amqp_url is required for the amqp driver")
		}
	default:
		problems = append(problems, fmt.Sprintf("notifications.driver %q is not supported", c.Notifications.Driver))
	}

	if len(problems) > 0 {
		return fmt.Errorf("%w: %s", ErrInvalidConfig, strings.Join(problems, "; "))
	}
	return nil
}

// ToPolicy собирает domain.SchedulingPolicy из секции [scheduling]
func (s SchedulingConfig) ToPolicy() (domain.SchedulingPolicy, error) {
	open, err := types.NewTimeStringFromString(s.OpenTime)
	if err != nil {
		return domain.SchedulingPolicy{}, fmt.Errorf("scheduling.open_time: %v", err)
	}
	closeTime, err := types.NewTimeStringFromString(s.CloseTime)
	if err != nil {
		return domain.SchedulingPolicy{}, fmt.Errorf("scheduling.close_time: %v", err)
	}

	hours, err := domain.NewBusinessHours(open, closeTime, s.Weekdays)
	if err != nil {
		return domain.SchedulingPolicy{}, fmt.Errorf("scheduling: %v", err)
	}

	mode, err := domain.ParseNotificationFailureMode(s.NotificationFailure)
	if err != nil {
		return domain.SchedulingPolicy{}, fmt.Errorf("scheduling.notification_failure: %v", err)
	}

	policy := domain.SchedulingPolicy{
		Hours:                  hours,
		ConflictBufferMinutes:  s.ConflictBufferMinutes,
		SlotGranularityMinutes: s.SlotGranularityMinutes,
		NotificationFailure:    mode,
	}
	if err := policy.Validate(); err != nil {
		return domain.SchedulingPolicy{}, fmt.Errorf("scheduling: %v", err)
	}

	return policy, nil
}
