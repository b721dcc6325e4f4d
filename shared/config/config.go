package config

import (
	"fmt"
	"os"
	"path"
	"time"

	"gopkg.in/yaml.v2"
)

type Config struct {
	Public  Public
	Private Private
}

type Public struct {
	HttpAddr         string        `yaml:"http_addr"`
	ThreadsOnBoard   int           `yaml:"threads_on_board"`   // threads shown by the board listing
	RepliesInPreview int           `yaml:"replies_in_preview"` // last replies kept per thread in the board listing
	DeletedReplyText string        `yaml:"deleted_reply_text"`
	RequestTimeout   time.Duration `yaml:"request_timeout"`

	LogLevel string `yaml:"log_level"`
	LogJSON  bool   `yaml:"log_json"`

	AllowedOrigins     []string `yaml:"allowed_origins"`
	SecureHeadersHTTPS bool     `yaml:"secure_headers_https"`

	PgMaxOpenConns int `yaml:"pg_max_open_conns"`
}

type Pg struct {
	Host     string `yaml:"host"`
	Port     int    `yaml:"port"`
	User     string `yaml:"user"`
	Password string `yaml:"password"`
	Dbname   string `yaml:"dbname"`
}

type Private struct {
	Pg Pg `yaml:"pg"`
}

const (
	defaultHttpAddr         = ":8080"
	defaultDeletedReplyText = "[deleted]"
	defaultRequestTimeout   = 10 * time.Second
	defaultPgMaxOpenConns   = 25
)

func mustLoadPath(configPath string, output interface{}) {
	// check if file exists
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		panic("config file does not exist: " + configPath)
	}
	configFile, err := os.ReadFile(configPath)
	if err != nil {
		panic("can't read config file")
	}

	err = yaml.UnmarshalStrict(configFile, output)
	if err != nil {
		panic("can't unmarshal config file: " + err.Error())
	}
}

// MustLoad reads public.yaml and private.yaml from configFolder.
// It panics if a file is missing, malformed or lacks a required field.
func MustLoad(configFolder string) *Config {
	var public Public
	mustLoadPath(path.Join(configFolder, "public.yaml"), &public)

	var private Private
	mustLoadPath(path.Join(configFolder, "private.yaml"), &private)

	cfg := &Config{public, private}
	cfg.applyDefaults()
	if err := cfg.validate(); err != nil {
		panic(err.Error())
	}
	if port := os.Getenv("PORT"); port != "" {
		cfg.Public.HttpAddr = ":" + port
	}
	return cfg
}

func (c *Config) applyDefaults() {
	if c.Public.HttpAddr == "" {
		c.Public.HttpAddr = defaultHttpAddr
	}
	if c.Public.DeletedReplyText == "" {
		c.Public.DeletedReplyText = defaultDeletedReplyText
	}
	if c.Public.RequestTimeout == 0 {
		c.Public.RequestTimeout = defaultRequestTimeout
	}
	if c.Public.PgMaxOpenConns == 0 {
		c.Public.PgMaxOpenConns = defaultPgMaxOpenConns
	}
	if c.Public.LogLevel == "" {
		c.Public.LogLevel = "info"
	}
}

func (c *Config) validate() error {
	if c.Public.ThreadsOnBoard <= 0 {
		return fmt.Errorf("config: threads_on_board is required and must be positive")
	}
	if c.Public.RepliesInPreview <= 0 {
		return fmt.Errorf("config: replies_in_preview is required and must be positive")
	}
	if c.Private.Pg.Host == "" || c.Private.Pg.Port == 0 || c.Private.Pg.Dbname == "" {
		return fmt.Errorf("config: pg host, port and dbname are required")
	}
	return nil
}
