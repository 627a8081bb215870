package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	Server    ServerConfig
	Database  DatabaseConfig
	Redis     RedisConfig
	Cache     CacheConfig
	Log       LogConfig
	Catalog   CatalogConfig
	Share     ShareConfig
	Emergency EmergencyConfig
	Ingest    IngestConfig
}

type ServerConfig struct {
	Host string
	Port int
	Env  string
}

type DatabaseConfig struct {
	Host            string
	Port            int
	User            string
	Password        string
	DBName          string
	SSLMode         string
	MaxConns        int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
	ConnMaxIdleTime time.Duration
}

type RedisConfig struct {
	Host     string
	Port     int
	Password string
	DB       int
}

type CacheConfig struct {
	QueryCacheTTL time.Duration
}

type LogConfig struct {
	Level string
}

type CatalogConfig struct {
	// PortsFile optionally overrides the embedded port list.
	PortsFile string
}

type ShareConfig struct {
	// PublicBaseURL is the frontend URL encoded into share QR codes.
	PublicBaseURL string
	HistoryTTL    time.Duration
	QRSize        int
}

type EmergencyConfig struct {
	Phone   string
	Contact string
}

type IngestConfig struct {
	FTPHost     string
	FTPRootPath string
	DataDir     string
	Workers     int
	FTPTimeout  time.Duration
}

func Load() (*Config, error) {
	viper.SetConfigFile(".env")
	viper.AutomaticEnv()

	// A missing .env is fine when everything comes from the environment.
	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok && !strings.Contains(err.Error(), "no such file") {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
	}

	cfg := &Config{
		Server: ServerConfig{
			Host: viper.GetString("API_HOST"),
			Port: viper.GetInt("API_PORT"),
			Env:  viper.GetString("API_ENV"),
		},
		Database: DatabaseConfig{
			Host:            viper.GetString("DB_HOST"),
			Port:            viper.GetInt("DB_PORT"),
			User:            viper.GetString("DB_USER"),
			Password:        viper.GetString("DB_PASSWORD"),
			DBName:          viper.GetString("DB_NAME"),
			SSLMode:         viper.GetString("DB_SSLMODE"),
			MaxConns:        viper.GetInt("DB_MAX_CONNS"),
			MaxIdleConns:    viper.GetInt("DB_MAX_IDLE_CONNS"),
			ConnMaxLifetime: time.Duration(viper.GetInt("DB_CONN_MAX_LIFETIME")) * time.Second,
			ConnMaxIdleTime: time.Duration(viper.GetInt("DB_CONN_MAX_IDLE_TIME")) * time.Second,
		},
		Redis: RedisConfig{
			Host:     viper.GetString("REDIS_HOST"),
			Port:     viper.GetInt("REDIS_PORT"),
			Password: viper.GetString("REDIS_PASSWORD"),
			DB:       viper.GetInt("REDIS_DB"),
		},
		Cache: CacheConfig{
			QueryCacheTTL: time.Duration(viper.GetInt("QUERY_CACHE_TTL")) * time.Second,
		},
		Log: LogConfig{
			Level: viper.GetString("LOG_LEVEL"),
		},
		Catalog: CatalogConfig{
			PortsFile: viper.GetString("PORT_CATALOG_FILE"),
		},
		Share: ShareConfig{
			PublicBaseURL: viper.GetString("SHARE_PUBLIC_BASE_URL"),
			HistoryTTL:    time.Duration(viper.GetInt("SHARE_HISTORY_TTL")) * time.Second,
			QRSize:        viper.GetInt("SHARE_QR_SIZE"),
		},
		Emergency: EmergencyConfig{
			Phone:   viper.GetString("EMERGENCY_PHONE"),
			Contact: viper.GetString("EMERGENCY_CONTACT"),
		},
		Ingest: IngestConfig{
			FTPHost:     viper.GetString("INGEST_FTP_HOST"),
			FTPRootPath: viper.GetString("INGEST_FTP_ROOT"),
			DataDir:     viper.GetString("INGEST_DATA_DIR"),
			Workers:     viper.GetInt("INGEST_WORKERS"),
			FTPTimeout:  time.Duration(viper.GetInt("INGEST_FTP_TIMEOUT")) * time.Second,
		},
	}

	// Set default values if not provided
	if cfg.Server.Port == 0 {
		cfg.Server.Port = 8080
	}
	if cfg.Cache.QueryCacheTTL == 0 {
		cfg.Cache.QueryCacheTTL = 5 * time.Minute
	}
	if cfg.Share.PublicBaseURL == "" {
		cfg.Share.PublicBaseURL = "http://localhost:8501"
	}
	if cfg.Share.HistoryTTL == 0 {
		cfg.Share.HistoryTTL = 7 * 24 * time.Hour
	}
	if cfg.Share.QRSize == 0 {
		cfg.Share.QRSize = 256
	}
	if cfg.Emergency.Phone == "" {
		cfg.Emergency.Phone = "+919380474652"
	}
	if cfg.Emergency.Contact == "" {
		cfg.Emergency.Contact = "Global Maritime Rescue"
	}
	if cfg.Ingest.FTPHost == "" {
		cfg.Ingest.FTPHost = "ftp.ifremer.fr:21"
	}
	if cfg.Ingest.FTPRootPath == "" {
		cfg.Ingest.FTPRootPath = "/ifremer/argo/dac/incois/"
	}
	if cfg.Ingest.DataDir == "" {
		cfg.Ingest.DataDir = "argo_data"
	}
	if cfg.Ingest.Workers == 0 {
		cfg.Ingest.Workers = 4
	}
	if cfg.Ingest.FTPTimeout == 0 {
		cfg.Ingest.FTPTimeout = 30 * time.Second
	}

	return cfg, nil
}

func (c *Config) GetServerAddr() string {
	return fmt.Sprintf("%s:%d", c.Server.Host, c.Server.Port)
}

func (c *Config) GetDatabaseDSN() string {
	return fmt.Sprintf(
		"host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		c.Database.Host,
		c.Database.Port,
		c.Database.User,
		c.Database.Password,
		c.Database.DBName,
		c.Database.SSLMode,
	)
}

func (c *Config) GetRedisAddr() string {
	return fmt.Sprintf("%s:%d", c.Redis.Host, c.Redis.Port)
}
