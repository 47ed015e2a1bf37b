package main

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
)

var LogType = struct {
	Startup string
	Web     string
	Auth    string
	CLI     string
}{
	Startup: "startup",
	Web:     "web",
	Auth:    "middleware_auth",
	CLI:     "cli",
}

// LoggingFormat collects the pieces of one log line before it is printed.
type LoggingFormat struct {
	Type     string
	Path     string
	Function string
	Level    logrus.Level
	Message  string
	Error    error
	fields   logrus.Fields
}

func (lf *LoggingFormat) AddField(key string, value interface{}) {
	if lf.fields == nil {
		lf.fields = logrus.Fields{}
	}
	lf.fields[key] = value
}

func (lf *LoggingFormat) entry() *logrus.Entry {
	fields := logrus.Fields{}
	for k, v := range lf.fields {
		fields[k] = v
	}
	if lf.Type != "" {
		fields["type"] = lf.Type
	}
	if lf.Path != "" {
		fields["path"] = lf.Path
	}
	if lf.Function != "" {
		fields["function"] = lf.Function
	}
	entry := logrus.WithFields(fields)
	if lf.Error != nil {
		entry = entry.WithError(lf.Error)
	}
	return entry
}

// Print writes the entry at its level. An unset level logs at info.
func (lf *LoggingFormat) Print() {
	level := lf.Level
	if level == logrus.PanicLevel {
		level = logrus.InfoLevel
	}
	lf.entry().Log(level, lf.Message)
}

// ToError turns the entry into an error, wrapping Error when set.
func (lf *LoggingFormat) ToError() error {
	if lf.Error != nil {
		return fmt.Errorf("%s: %w", lf.Message, lf.Error)
	}
	return errors.New(lf.Message)
}

// setupLogging configures the global logrus logger from cfg.
func setupLogging(cfg Config) error {
	logrus.SetOutput(os.Stdout)
	logrus.SetFormatter(&logrus.JSONFormatter{TimestampFormat: time.RFC3339Nano})

	level := logrus.InfoLevel
	if cfg.LogLevel != "" {
		parsed, err := logrus.ParseLevel(cfg.LogLevel)
		if err != nil {
			return fmt.Errorf("invalid LOG_LEVEL %q: %w", cfg.LogLevel, err)
		}
		level = parsed
	}
	logrus.SetLevel(level)

	if cfg.LokiURL != "" {
		logrus.AddHook(NewLokiHook(NewLokiClient(cfg.LokiURL, cfg.LokiUsername, cfg.LokiPassword)))
	}
	return nil
}

// LokiClient holds the configuration for the Loki client.
type LokiClient struct {
	PushURL  string // URL to Loki's push API
	Username string // Username for basic auth
	Password string // Password for basic auth
	client   *http.Client
}

type LogEntry struct {
	Timestamp time.Time
	Line      string
}

// LokiPushData represents the data structure required by Loki's push API.
type LokiPushData struct {
	Streams []LokiStream `json:"streams"`
}

// LokiStream represents a stream of logs with the same labels in Loki.
type LokiStream struct {
	Stream map[string]string `json:"stream"`
	Values [][2]string       `json:"values"` // Array of [timestamp, line] tuples
}

// NewLokiClient creates a new client to interact with Loki.
func NewLokiClient(pushURL, username, password string) *LokiClient {
	return &LokiClient{
		PushURL:  pushURL,
		Username: username,
		Password: password,
		client:   &http.Client{Timeout: 5 * time.Second},
	}
}

// PushLog sends a log entry to Loki.
func (c *LokiClient) PushLog(labels map[string]string, entry LogEntry) error {
	payload := LokiPushData{
		Streams: []LokiStream{
			{
				Stream: labels,
				Values: [][2]string{{strconv.FormatInt(entry.Timestamp.UnixNano(), 10), entry.Line}},
			},
		},
	}

	jsonPayload, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("error marshaling json: %w", err)
	}

	req, err := http.NewRequest(http.MethodPost, c.PushURL, bytes.NewBuffer(jsonPayload))
	if err != nil {
		return fmt.Errorf("error creating request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	if c.Username != "" && c.Password != "" {
		req.SetBasicAuth(c.Username, c.Password)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return fmt.Errorf("error sending request to Loki: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusNoContent && resp.StatusCode != http.StatusOK {
		return fmt.Errorf("received unexpected response status: %d", resp.StatusCode)
	}

	return nil
}

// LokiHook ships every logrus entry to Loki, labelled with job and level.
type LokiHook struct {
	client *LokiClient
	job    string
}

func NewLokiHook(client *LokiClient) *LokiHook {
	return &LokiHook{client: client, job: "smsseg"}
}

func (h *LokiHook) Levels() []logrus.Level {
	return logrus.AllLevels
}

func (h *LokiHook) Fire(entry *logrus.Entry) error {
	line, err := entry.String()
	if err != nil {
		return err
	}
	labels := map[string]string{"job": h.job, "level": entry.Level.String()}
	return h.client.PushLog(labels, LogEntry{
		Timestamp: entry.Time,
		Line:      strings.TrimRight(line, "\n"),
	})
}
