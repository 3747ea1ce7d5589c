// Package config loads and holds the application configuration.
// The file format is TOML, looked up in a list of candidate paths.
package config

import (
	"fmt"
	"time"

	"github.com/BurntSushi/toml"
)

// MainConfig basic server settings
type MainConfig struct {
	AppName string `toml:"appName"` // used in log lines
	Host    string `toml:"host"`    // listen address, e.g. "0.0.0.0"
	Port    int    `toml:"port"`    // listen port, 8080 by default
	Mode    string `toml:"mode"`    // "dev" or "release"
}

// MysqlConfig MySQL connection settings
type MysqlConfig struct {
	Host         string `toml:"host"`
	Port         int    `toml:"port"`
	User         string `toml:"user"`
	Password     string `toml:"password"`
	DatabaseName string `toml:"databaseName"`
}

// RedisConfig Redis connection settings
type RedisConfig struct {
	Host     string `toml:"host"`
	Port     int    `toml:"port"`
	Password string `toml:"password"` // empty when no auth
	Db       int    `toml:"db"`
}

// LogConfig log file settings, rotated by lumberjack
type LogConfig struct {
	LogPath    string `toml:"logPath"`    // directory for log files
	FileName   string `toml:"fileName"`   // log file name
	MaxSize    int    `toml:"maxSize"`    // MB per file
	MaxBackups int    `toml:"maxBackups"` // rotated files to keep
	MaxAge     int    `toml:"maxAge"`     // days to keep rotated files
	Level      string `toml:"level"`      // debug, info, warn, error
}

// KafkaConfig registration event publishing
type KafkaConfig struct {
	MessageMode   string        `toml:"messageMode"`   // "channel" (log only) or "kafka"
	HostPort      string        `toml:"hostPort"`      // e.g. "localhost:9092"
	CadastroTopic string        `toml:"cadastroTopic"` // topic for usuario events
	Partition     int           `toml:"partition"`
	Timeout       time.Duration `toml:"timeout"` // seconds
}

// JWTConfig token signing settings
type JWTConfig struct {
	Secret      string `toml:"secret"`      // HS256 key, at least 32 bytes
	Issuer      string `toml:"issuer"`      // iss claim
	ExpiryHours int    `toml:"expiryHours"` // token lifetime
}

// TLSConfig optional HTTP -> HTTPS redirect
type TLSConfig struct {
	Enable bool   `toml:"enable"`
	Host   string `toml:"host"`
	Port   int    `toml:"port"`
}

// FormConfig registration form client settings
type FormConfig struct {
	Endpoint string `toml:"endpoint"` // where the form posts to
}

// I18nConfig validation message language
type I18nConfig struct {
	Locale string `toml:"locale"` // "pt_BR" or "en"
}

// Config aggregates every section.
type Config struct {
	MainConfig  `toml:"mainConfig"`
	MysqlConfig `toml:"mysqlConfig"`
	RedisConfig `toml:"redisConfig"`
	LogConfig   `toml:"logConfig"`
	KafkaConfig `toml:"kafkaConfig"`
	JWTConfig   `toml:"jwtConfig"`
	TLSConfig   `toml:"tlsConfig"`
	FormConfig  `toml:"formConfig"`
	I18nConfig  `toml:"i18nConfig"`
}

// config lazily loaded singleton
var config *Config

// searchPaths candidate config files, first hit wins
var searchPaths = []string{
	"configs/config_local.toml",
	"configs/config.toml",
	"../../configs/config_local.toml", // when run from cmd/<binary>
	"../../configs/config.toml",
}

// Default returns a Config filled with the built-in defaults.
func Default() *Config {
	return &Config{
		MainConfig: MainConfig{
			AppName: "cadastro_api",
			Host:    "0.0.0.0",
			Port:    8080,
			Mode:    "dev",
		},
		MysqlConfig: MysqlConfig{
			Host:         "127.0.0.1",
			Port:         3306,
			User:         "root",
			DatabaseName: "cadastro",
		},
		RedisConfig: RedisConfig{
			Host: "127.0.0.1",
			Port: 6379,
		},
		LogConfig: LogConfig{
			LogPath: "logs",
			Level:   "info",
		},
		KafkaConfig: KafkaConfig{
			MessageMode:   "channel",
			HostPort:      "localhost:9092",
			CadastroTopic: "cadastro",
			Partition:     1,
			Timeout:       1,
		},
		JWTConfig: JWTConfig{
			Issuer:      "DevNice",
			ExpiryHours: 12,
		},
		FormConfig: FormConfig{
			Endpoint: "http://localhost:8080/cadastro",
		},
		I18nConfig: I18nConfig{
			Locale: "pt_BR",
		},
	}
}

// Load decodes the file at path on top of the defaults.
func Load(path string) (*Config, error) {
	conf := Default()
	if _, err := toml.DecodeFile(path, conf); err != nil {
		return nil, fmt.Errorf("decode config %s: %w", path, err)
	}
	return conf, nil
}

// LoadConfig tries every search path and keeps the first file that decodes.
func LoadConfig() error {
	for _, path := range searchPaths {
		if conf, err := Load(path); err == nil {
			config = conf
			return nil
		}
	}
	return fmt.Errorf("could not find configuration file in any of the search paths")
}

// GetConfig returns the global configuration, loading it on first use.
// When no file is found the defaults are used.
func GetConfig() *Config {
	if config == nil {
		if err := LoadConfig(); err != nil {
			config = Default()
		}
	}
	return config
}

// SetConfig replaces the global configuration, e.g. after an explicit -config flag.
func SetConfig(conf *Config) {
	config = conf
}
