package config

import (
	"fmt"
	"time"

	"github.com/BurntSushi/toml"

	"github.com/royal-barbershop/booking-service/internal/domain"
	"github.com/royal-barbershop/booking-service/pkg/types"
)

// Config конфигурация сервиса, загружается из config.toml
type Config struct {
	Server   ServerConfig   `toml:"server"`
	Database DatabaseConfig `toml:"database"`
	Logs     LogsConfig     `toml:"logs"`
	Metrics  MetricsConfig  `toml:"metrics"`
	Notifier NotifierConfig `toml:"notifier"`
	Booking  BookingConfig  `toml:"booking"`
}

// ServerConfig настройки HTTP сервера
type ServerConfig struct {
	HTTPPort        int `toml:"http_port"`
	ReadTimeout     int `toml:"read_timeout"`
	WriteTimeout    int `toml:"write_timeout"`
	IdleTimeout     int `toml:"idle_timeout"`
	ShutdownTimeout int `toml:"shutdown_timeout"`
}

// DatabaseConfig настройки подключения к PostgreSQL
type DatabaseConfig struct {
	Host            string `toml:"host"`
	Port            int    `toml:"port"`
	User            string `toml:"user"`
	Password        string `toml:"password"`
	DBName          string `toml:"dbname"`
	SSLMode         string `toml:"sslmode"`
	MaxOpenConns    int    `toml:"max_open_conns"`
	MaxIdleConns    int    `toml:"max_idle_conns"`
	ConnMaxLifetime int    `toml:"conn_max_lifetime"`
}

// DSN возвращает строку подключения PostgreSQL
func (d DatabaseConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		d.Host, d.Port, d.User, d.Password, d.DBName, d.SSLMode)
}

// LogsConfig настройки логирования
type LogsConfig struct {
	File  string `toml:"file"`
	Level string `toml:"level"`
}

// MetricsConfig настройки метрик Prometheus
type MetricsConfig struct {
	Enabled     bool   `toml:"enabled"`
	ServiceName string `toml:"service_name"`
	Path        string `toml:"path"`
}

// NotifierConfig настройки уведомления владельца
type NotifierConfig struct {
	Enabled     bool   `toml:"enabled"`
	SMTPHost    string `toml:"smtp_host"`
	SMTPPort    int    `toml:"smtp_port"`
	From        string `toml:"from"`
	OwnerEmail  string `toml:"owner_email"`
	ShopName    string `toml:"shop_name"`
	ShopAddress string `toml:"shop_address"`
}

// BookingConfig политика бронирования: шаг слотов, расписание, каталог услуг.
// Единый источник правды, из него собираются domain.Catalog и domain.WeekSchedule.
type BookingConfig struct {
	SlotStepMinutes  int             `toml:"slot_step_minutes"`
	MinNoticeMinutes int             `toml:"min_notice_minutes"`
	Timezone         string          `toml:"timezone"`
	Schedule         []DayConfig     `toml:"schedule"`
	Services         []ServiceConfig `toml:"services"`
}

// DayConfig рабочие часы одного дня недели
type DayConfig struct {
	Day   string `toml:"day"` // monday .. sunday
	Open  string `toml:"open"`
	Close string `toml:"close"`
}

// ServiceConfig описание услуги в каталоге
type ServiceConfig struct {
	ID              string  `toml:"id"`
	Name            string  `toml:"name"`
	Price           float64 `toml:"price"`
	DurationMinutes int     `toml:"duration_minutes"`
}

// Load загружает конфигурацию из TOML файла
func Load(path string) (*Config, error) {
	var cfg Config
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return nil, fmt.Errorf("config: decode %s: %w", path, err)
	}

	cfg.applyDefaults()
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
	if c.Database.SSLMode == "" {
		c.Database.SSLMode = "disable"
	}
	if c.Database.MaxOpenConns == 0 {
		c.Database.MaxOpenConns = 10
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
		c.Metrics.ServiceName = "booking-service"
	}
	if c.Booking.SlotStepMinutes == 0 {
		c.Booking.SlotStepMinutes = domain.DefaultSlotStepMinutes
	}
	if c.Booking.Timezone == "" {
		c.Booking.Timezone = "Europe/Sarajevo"
	}
}

// Catalog собирает каталог услуг.
// При отсутствии секции services используется канонический каталог.
func (b BookingConfig) Catalog() (domain.Catalog, error) {
	if len(b.Services) == 0 {
		return domain.DefaultCatalog(), nil
	}

	services := make([]domain.Service, len(b.Services))
	for i, s := range b.Services {
		services[i] = domain.Service{
			ID:              domain.ServiceID(s.ID),
			Name:            s.Name,
			Price:           s.Price,
			DurationMinutes: s.DurationMinutes,
		}
	}
	return domain.NewCatalog(services)
}

// WeekSchedule собирает недельное расписание.
// При отсутствии секции schedule используется принятая политика по умолчанию.
func (b BookingConfig) WeekSchedule() (domain.WeekSchedule, error) {
	if len(b.Schedule) == 0 {
		return domain.DefaultWeekSchedule(), nil
	}

	days := make(map[time.Weekday]domain.DaySchedule, len(b.Schedule))
	for _, d := range b.Schedule {
		weekday, err := parseWeekday(d.Day)
		if err != nil {
			return domain.WeekSchedule{}, err
		}
		days[weekday] = domain.DaySchedule{
			IsOpen:    true,
			OpenTime:  types.TimeString(d.Open),
			CloseTime: types.TimeString(d.Close),
		}
	}
	return domain.NewWeekSchedule(days)
}

// Location возвращает часовой пояс заведения
func (b BookingConfig) Location() (*time.Location, error) {
	loc, err := time.LoadLocation(b.Timezone)
	if err != nil {
		return nil, fmt.Errorf("config: load timezone %q: %w", b.Timezone, err)
	}
	return loc, nil
}

func parseWeekday(s string) (time.Weekday, error) {
	switch s {
	case "monday":
		return time.Monday, nil
	case "tuesday":
		return time.Tuesday, nil
	case "wednesday":
		return time.Wednesday, nil
	case "thursday":
		return time.Thursday, nil
	case "friday":
		return time.Friday, nil
	case "saturday":
		return time.Saturday, nil
	case "sunday":
		return time.Sunday, nil
	default:
		return 0, fmt.Errorf("config: unknown weekday %q", s)
	}
}
