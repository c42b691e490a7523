package config

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"

	"github.com/kumbila/reservation-service/internal/domain"
)

// Config configuração completa do serviço, carregada do config.toml
type Config struct {
	Server        ServerConfig        `toml:"server"`
	Database      DatabaseConfig      `toml:"database"`
	Logs          LogsConfig          `toml:"logs"`
	Metrics       MetricsConfig       `toml:"metrics"`
	Lifecycle     LifecycleConfig     `toml:"lifecycle"`
	Notifications NotificationsConfig `toml:"notifications"`
}

type ServerConfig struct {
	HTTPPort        int `toml:"http_port"`
	ReadTimeout     int `toml:"read_timeout"`
	WriteTimeout    int `toml:"write_timeout"`
	IdleTimeout     int `toml:"idle_timeout"`
	ShutdownTimeout int `toml:"shutdown_timeout"`
}

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

// DSN constrói a connection string do Postgres
func (d DatabaseConfig) DSN() string {
	return fmt.Sprintf(
		"host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		d.Host, d.Port, d.User, d.Password, d.DBName, d.SSLMode,
	)
}

type LogsConfig struct {
	File  string `toml:"file"`
	Level string `toml:"level"`
}

type MetricsConfig struct {
	Enabled     bool   `toml:"enabled"`
	Path        string `toml:"path"`
	ServiceName string `toml:"service_name"`
}

// LifecycleConfig pontos de configuração do motor de ciclo de vida
type LifecycleConfig struct {
	// Minutos antes do início da janela em que o check-in já é aceite
	CheckinGraceMinutes int `toml:"checkin_grace_minutes"`

	// Se o check-in manual do dono dispensa o pagamento liquidado
	OwnerCheckinBypassesPayment bool `toml:"owner_checkin_bypasses_payment"`
}

type NotificationsConfig struct {
	Enabled  bool   `toml:"enabled"`
	URL      string `toml:"url"`
	Exchange string `toml:"exchange"`
}

// Load carrega a configuração do ficheiro TOML indicado. Segredos podem
// ser sobrepostos por variáveis de ambiente (opcionalmente de um .env),
// para o config.toml poder ir para o repositório sem credenciais.
func Load(path string) (*Config, error) {
	// .env é opcional; em produção as variáveis vêm do ambiente
	_ = godotenv.Load()

	// Valores por omissão; o ficheiro só precisa de os declarar
	// quando divergem
	cfg := Config{
		Lifecycle: LifecycleConfig{
			CheckinGraceMinutes:         domain.DefaultCheckinGraceMinutes,
			OwnerCheckinBypassesPayment: domain.DefaultOwnerBypassesPaymentGate,
		},
	}
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return nil, fmt.Errorf("config: failed to decode %s: %w", path, err)
	}

	applyEnvOverrides(&cfg)

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func applyEnvOverrides(cfg *Config) {
	if v := os.Getenv("KUMBILA_DB_HOST"); v != "" {
		cfg.Database.Host = v
	}
	if v := os.Getenv("KUMBILA_DB_PASSWORD"); v != "" {
		cfg.Database.Password = v
	}
	if v := os.Getenv("KUMBILA_AMQP_URL"); v != "" {
		cfg.Notifications.URL = v
	}
}

func (c *Config) validate() error {
	if c.Server.HTTPPort <= 0 {
		return fmt.Errorf("config: server.http_port must be positive")
	}
	if c.Database.Host == "" || c.Database.DBName == "" {
		return fmt.Errorf("config: database.host and database.dbname are required")
	}
	if c.Lifecycle.CheckinGraceMinutes < 0 {
		return fmt.Errorf("config: lifecycle.checkin_grace_minutes must not be negative")
	}
	if c.Notifications.Enabled && c.Notifications.URL == "" {
		return fmt.Errorf("config: notifications.url is required when notifications are enabled")
	}
	return nil
}
