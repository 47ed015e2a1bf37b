package main

import (
	"crypto/subtle"
	"errors"
	"net"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/kataras/iris/v12"
	"github.com/pires/go-proxyproto"
	"github.com/sirupsen/logrus"

	"smsseg/coding"
)

// WebServer exposes the coding operations over JSON.
type WebServer struct {
	cfg     Config
	metrics *Metrics
}

func NewWebServer(cfg Config, metrics *Metrics) *WebServer {
	return &WebServer{cfg: cfg, metrics: metrics}
}

// App builds the iris application with every route registered.
func (s *WebServer) App() *iris.Application {
	app := iris.New()
	app.Logger().SetLevel("disable")
	app.Use(requestLogger)

	app.Get("/health", webHealthCheck)
	app.Get(s.cfg.MetricsPath, iris.FromStd(s.metrics.Handler()))

	api := app.Party("/api/v1", s.basicAuthMiddleware)
	api.Post("/split", s.webSplit)
	api.Post("/count", s.webCount)
	api.Post("/encoding", s.webEncoding)
	api.Post("/normalize", s.webNormalize)
	api.Post("/sanitize", s.webSanitize)

	return app
}

// Start serves the API on cfg.WebListen until the listener fails.
func (s *WebServer) Start() error {
	logf := LoggingFormat{Type: LogType.Startup, Path: "web_server", Function: "Start"}
	logf.Level = logrus.InfoLevel
	logf.Message = "Starting web server"
	logf.AddField("listen", s.cfg.WebListen)
	logf.AddField("auth", s.cfg.APIKey != "")
	logf.AddField("proxy_protocol", s.cfg.ProxyProtocol)
	logf.Print()

	listener, err := s.listen()
	if err != nil {
		return err
	}
	return s.App().Run(iris.Listener(listener))
}

// listen opens WebListen, reading client addresses from PROXY protocol
// headers when the server sits behind HAProxy.
func (s *WebServer) listen() (net.Listener, error) {
	listener, err := net.Listen("tcp", s.cfg.WebListen)
	if err != nil {
		return nil, err
	}
	if s.cfg.ProxyProtocol {
		listener = &proxyproto.Listener{Listener: listener}
	}
	return listener, nil
}

// requestLogger tags each request with an ID and logs it once served.
func requestLogger(ctx iris.Context) {
	start := time.Now()
	requestID := uuid.New().String()
	ctx.Values().Set("request_id", requestID)
	ctx.Header("X-Request-ID", requestID)

	ctx.Next()

	logf := LoggingFormat{Type: LogType.Web, Level: logrus.InfoLevel, Message: "Request served"}
	logf.AddField("request_id", requestID)
	logf.AddField("method", ctx.Method())
	logf.AddField("path", ctx.Path())
	logf.AddField("status", ctx.GetStatusCode())
	logf.AddField("duration_ms", time.Since(start).Milliseconds())
	logf.AddField("client_ip", ctx.RemoteAddr())
	logf.Print()
}

// basicAuthMiddleware requires the API key as the Basic auth password when
// one is configured.
func (s *WebServer) basicAuthMiddleware(ctx iris.Context) {
	if s.cfg.APIKey == "" {
		ctx.Next()
		return
	}

	_, apiKey, ok := ctx.Request().BasicAuth()
	if !ok {
		unauthorized(ctx, "Authorization header missing or malformed")
		return
	}

	if subtle.ConstantTimeCompare([]byte(apiKey), []byte(s.cfg.APIKey)) != 1 {
		unauthorized(ctx, "Invalid API key")
		return
	}

	ctx.Next()
}

// unauthorized responds with a 401 status and a WWW-Authenticate header
func unauthorized(ctx iris.Context, message string) {
	logf := LoggingFormat{
		Type:    LogType.Auth,
		Level:   logrus.WarnLevel,
		Message: message,
	}
	logf.AddField("client_ip", ctx.RemoteAddr())
	logf.AddField("request_id", ctx.Values().GetString("request_id"))
	logf.Print()

	ctx.Header("WWW-Authenticate", `Basic realm="Restricted"`)
	ctx.StopWithJSON(http.StatusUnauthorized, ErrorResponse{Error: "unauthorized"})
}

// readText decodes the request body; on failure it has already answered.
func (s *WebServer) readText(ctx iris.Context, operation string) (TextRequest, bool) {
	var req TextRequest
	if err := ctx.ReadJSON(&req); err != nil {
		s.fail(ctx, operation, http.StatusBadRequest, err)
		return req, false
	}
	return req, true
}

func (s *WebServer) fail(ctx iris.Context, operation string, status int, err error) {
	logf := LoggingFormat{Type: LogType.Web, Function: operation, Level: logrus.WarnLevel}
	if status >= http.StatusInternalServerError {
		logf.Level = logrus.ErrorLevel
	}
	logf.Message = "Request rejected"
	logf.Error = err
	logf.AddField("request_id", ctx.Values().GetString("request_id"))
	logf.Print()

	s.metrics.observeRequest(operation, status)
	ctx.StopWithJSON(status, ErrorResponse{Error: err.Error()})
}

func (s *WebServer) reply(ctx iris.Context, operation string, body interface{}) {
	s.metrics.observeRequest(operation, http.StatusOK)
	ctx.StatusCode(http.StatusOK)
	ctx.JSON(body)
}

// errorStatus maps coding errors to HTTP statuses.
func errorStatus(err error) int {
	switch {
	case errors.Is(err, coding.ErrNullInput):
		return http.StatusBadRequest
	case errors.Is(err, coding.ErrInvalidCharacter):
		return http.StatusUnprocessableEntity
	default:
		return http.StatusInternalServerError
	}
}

func (s *WebServer) webSplit(ctx iris.Context) {
	req, ok := s.readText(ctx, "split")
	if !ok {
		return
	}

	text := req.Text
	if ctx.URLParamBoolDefault("normalize", false) {
		text = coding.NormalizeNewlinesPtr(text)
	}

	result := coding.SplitWithWordWrap(text)
	resp := SplitResponse{Encoding: result.Encoding, Parts: result.Parts}
	if ctx.URLParamBoolDefault("payload", false) {
		payloads, err := partPayloads(result)
		if err != nil {
			s.fail(ctx, "split", errorStatus(err), err)
			return
		}
		resp.Payloads = payloads
	}

	s.metrics.observeSplit(result)
	s.reply(ctx, "split", resp)
}

func (s *WebServer) webCount(ctx iris.Context) {
	req, ok := s.readText(ctx, "count")
	if !ok {
		return
	}

	parts, err := coding.CountParts(req.Text)
	if err != nil {
		s.fail(ctx, "count", errorStatus(err), err)
		return
	}
	s.reply(ctx, "count", CountResponse{Parts: parts})
}

func (s *WebServer) webEncoding(ctx iris.Context) {
	req, ok := s.readText(ctx, "encoding")
	if !ok {
		return
	}

	enc, err := coding.DetectEncoding(req.Text)
	if err != nil {
		s.fail(ctx, "encoding", errorStatus(err), err)
		return
	}
	s.reply(ctx, "encoding", EncodingResponse{Encoding: enc})
}

func (s *WebServer) webNormalize(ctx iris.Context) {
	req, ok := s.readText(ctx, "normalize")
	if !ok {
		return
	}
	s.reply(ctx, "normalize", TextResponse{Text: coding.NormalizeNewlinesPtr(req.Text)})
}

func (s *WebServer) webSanitize(ctx iris.Context) {
	req, ok := s.readText(ctx, "sanitize")
	if !ok {
		return
	}
	if req.Text == nil {
		s.fail(ctx, "sanitize", http.StatusBadRequest, coding.ErrNullInput)
		return
	}

	sanitized := coding.Sanitize(*req.Text)
	s.reply(ctx, "sanitize", TextResponse{Text: &sanitized})
}

func webHealthCheck(ctx iris.Context) {
	ctx.StatusCode(http.StatusOK)
	ctx.WriteString("OK")
}
