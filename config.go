package main

import (
	"os"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
)

// Config is read from the environment, optionally seeded from a .env file.
type Config struct {
	WebListen    string
	APIKey       string
	MetricsPath  string
	LogLevel     string
	LokiURL      string
	LokiUsername string
	LokiPassword string
	// ProxyProtocol expects a PROXY protocol header (HAProxy) on every
	// connection to WebListen.
	ProxyProtocol bool
}

func loadConfig() Config {
	if err := godotenv.Load(); err != nil {
		logf := LoggingFormat{Type: LogType.Startup, Level: logrus.DebugLevel}
		logf.Message = "No .env file loaded, using existing environment variables"
		logf.Print()
	}

	cfg := Config{
		WebListen:    os.Getenv("WEB_LISTEN"),
		APIKey:       os.Getenv("API_KEY"),
		MetricsPath:  os.Getenv("METRICS_PATH"),
		LogLevel:     os.Getenv("LOG_LEVEL"),
		LokiURL:      os.Getenv("LOKI_URL"),
		LokiUsername: os.Getenv("LOKI_USERNAME"),
		LokiPassword: os.Getenv("LOKI_PASSWORD"),

		ProxyProtocol: os.Getenv("HAPROXY_PROXY_PROTOCOL") == "true",
	}
	if cfg.WebListen == "" {
		cfg.WebListen = "0.0.0.0:3000"
	}
	if cfg.MetricsPath == "" {
		cfg.MetricsPath = "/metrics"
	}
	return cfg
}
