// Package client provides the process-facing facade for the argus-pep
// library: a Client holds endpoint configuration, transport settings,
// and a log sink, and serializes concurrent Authorize calls.
package client

import (
	"context"
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/argus-pep/argus-pep-go/dispatch"
	"github.com/argus-pep/argus-pep-go/errs"
	"github.com/argus-pep/argus-pep-go/marshal"
	"github.com/argus-pep/argus-pep-go/model"
	"github.com/argus-pep/argus-pep-go/transport"
)

// Level identifies the severity of a log line passed to a LogHandler.
type Level int

const (
	LevelError Level = iota
	LevelWarn
	LevelInfo
	LevelDebug
)

func (l Level) String() string {
	switch l {
	case LevelError:
		return "error"
	case LevelWarn:
		return "warn"
	case LevelInfo:
		return "info"
	case LevelDebug:
		return "debug"
	default:
		return "unknown"
	}
}

// LogHandler receives one log line per notable event. It is called
// synchronously from whatever goroutine triggered the event.
type LogHandler func(level Level, message string)

const defaultEndpointTimeout = 30 * time.Second

// Client is the process-facing handle for submitting Authorize calls
// against one or more PDP endpoints. There is no package-level singleton
// state: every configuration knob lives on the Client value, and
// distinct Clients are fully independent.
type Client struct {
	mu sync.Mutex

	endpoints       []string
	endpointTimeout time.Duration
	sslValidation   bool
	clientCertPath  string
	clientKeyPath   string
	clientKeyPass   string
	serverCAPath    string

	logLevel Level
	logFn    LogHandler

	transport transport.Transport
	closed    bool
}

// New creates a Client with default settings: no endpoints configured,
// a 30s per-endpoint timeout, SSL validation enabled, and log level WARN
// with no sink (log lines that pass the level are written through the
// standard library log package until SetOption("log_handler", ...) is
// called).
func New() *Client {
	return &Client{
		endpointTimeout: defaultEndpointTimeout,
		sslValidation:   true,
		logLevel:        LevelWarn,
	}
}

// SetOption sets a single named configuration option. Recognized keys:
// log_handler, log_level, endpoint_url, endpoint_timeout,
// endpoint_ssl_validation, endpoint_client_cert, endpoint_client_key,
// endpoint_client_keypassword, endpoint_server_capath.
func (c *Client) SetOption(key string, value any) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.closed {
		return errs.New(errs.OptionInvalid, "client is closed")
	}

	switch key {
	case "log_handler":
		fn, ok := value.(LogHandler)
		if !ok {
			return errs.Newf(errs.OptionInvalid, "log_handler must be a LogHandler, got %T", value)
		}
		c.logFn = fn

	case "log_level":
		lvl, ok := value.(Level)
		if !ok {
			return errs.Newf(errs.OptionInvalid, "log_level must be a Level, got %T", value)
		}
		c.logLevel = lvl

	case "endpoint_url":
		url, ok := value.(string)
		if !ok || url == "" {
			return errs.New(errs.EndpointURL, "endpoint_url must be a non-empty string")
		}
		c.endpoints = append(c.endpoints, url)

	case "endpoint_timeout":
		d, ok := value.(time.Duration)
		if !ok || d <= 0 {
			return errs.Newf(errs.OptionInvalid, "endpoint_timeout must be a positive time.Duration, got %T", value)
		}
		c.endpointTimeout = d

	case "endpoint_ssl_validation":
		enabled, ok := value.(bool)
		if !ok {
			return errs.Newf(errs.OptionInvalid, "endpoint_ssl_validation must be a bool, got %T", value)
		}
		c.sslValidation = enabled

	case "endpoint_client_cert":
		path, ok := value.(string)
		if !ok {
			return errs.Newf(errs.OptionInvalid, "endpoint_client_cert must be a string, got %T", value)
		}
		c.clientCertPath = path

	case "endpoint_client_key":
		path, ok := value.(string)
		if !ok {
			return errs.Newf(errs.OptionInvalid, "endpoint_client_key must be a string, got %T", value)
		}
		c.clientKeyPath = path

	case "endpoint_client_keypassword":
		pass, ok := value.(string)
		if !ok {
			return errs.Newf(errs.OptionInvalid, "endpoint_client_keypassword must be a string, got %T", value)
		}
		c.clientKeyPass = pass

	case "endpoint_server_capath":
		path, ok := value.(string)
		if !ok {
			return errs.Newf(errs.OptionInvalid, "endpoint_server_capath must be a string, got %T", value)
		}
		c.serverCAPath = path

	default:
		return errs.Newf(errs.OptionInvalid, "unknown option %q", key)
	}

	c.transport = nil // force re-build of the transport on next Authorize

	return nil
}

// Authorize marshals req, dispatches it to the configured endpoints in
// order with failover, and returns the decoded Response. A single Client
// serializes concurrent Authorize calls; independent Clients run fully
// independently.
func (c *Client) Authorize(ctx context.Context, req *model.Request) (*model.Response, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.closed {
		return nil, errs.New(errs.OptionInvalid, "client is closed")
	}

	if err := req.Validate(); err != nil {
		return nil, err
	}

	marshal.Warnf = func(format string, args ...any) {
		c.logf(LevelWarn, 0, format, args...)
	}

	tr, err := c.transportLocked()
	if err != nil {
		return nil, err
	}

	opts := dispatch.Options{
		Transport: tr,
		Timeout:   c.endpointTimeout,
		Log: func(correlationID uint64, format string, args ...any) {
			c.logf(LevelInfo, correlationID, format, args...)
		},
	}

	return dispatch.Authorize(ctx, req, c.endpoints, opts)
}

// Close marks the Client unusable and drops its transport; subsequent
// calls to Authorize or SetOption return an error rather than silently
// misbehaving. It does not explicitly close the dropped transport's idle
// HTTP connections.
func (c *Client) Close() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.closed = true
	c.transport = nil
}

func (c *Client) transportLocked() (transport.Transport, error) {
	if c.transport != nil {
		return c.transport, nil
	}

	opts := []transport.Option{transport.WithSSLValidation(c.sslValidation)}
	if c.clientCertPath != "" && c.clientKeyPath != "" {
		opts = append(opts, transport.WithClientCertificate(c.clientCertPath, c.clientKeyPath, c.clientKeyPass))
	}
	if c.serverCAPath != "" {
		opts = append(opts, transport.WithServerCAPath(c.serverCAPath))
	}

	tr, err := transport.NewHTTPTransport(opts...)
	if err != nil {
		return nil, err
	}

	c.transport = tr

	return tr, nil
}

func (c *Client) logf(level Level, correlationID uint64, format string, args ...any) {
	if level > c.logLevel {
		return
	}

	message := sprintfCorrelated(correlationID, format, args...)

	if c.logFn != nil {
		c.logFn(level, message)

		return
	}

	log.Printf("[%s] %s", level, message)
}

func sprintfCorrelated(correlationID uint64, format string, args ...any) string {
	return fmt.Sprintf("correlation=%x %s", correlationID, fmt.Sprintf(format, args...))
}
