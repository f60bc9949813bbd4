// Package pep is the top-level convenience package for the argus-pep
// client library. It re-exports the client package's primary types so
// that common usage only needs a single import.
package pep

import (
	"context"

	"github.com/argus-pep/argus-pep-go/client"
	"github.com/argus-pep/argus-pep-go/model"
)

// Client submits Authorize requests to one or more PDP endpoints. See
// package client for the full option set.
type Client = client.Client

// Level is a log severity accepted by SetOption("log_level", ...).
type Level = client.Level

const (
	LevelError = client.LevelError
	LevelWarn  = client.LevelWarn
	LevelInfo  = client.LevelInfo
	LevelDebug = client.LevelDebug
)

// LogHandler is the callback type accepted by
// SetOption("log_handler", ...).
type LogHandler = client.LogHandler

// Request, Response and the rest of the object model live in package
// model; re-exported here for single-import convenience.
type (
	Request              = model.Request
	Response             = model.Response
	Subject              = model.Subject
	Resource             = model.Resource
	Action               = model.Action
	Environment          = model.Environment
	Attribute            = model.Attribute
	AttributeAssignment  = model.AttributeAssignment
	Obligation           = model.Obligation
	Status               = model.Status
	StatusCode           = model.StatusCode
	Result               = model.Result
	Decision             = model.Decision
	FulfillOn            = model.FulfillOn
)

const (
	Deny          = model.Deny
	Permit        = model.Permit
	Indeterminate = model.Indeterminate
	NotApplicable = model.NotApplicable
)

// New creates a Client with default settings (no endpoints configured,
// 30s per-endpoint timeout, SSL validation enabled).
func New() *Client {
	return client.New()
}

// NewRequest creates an empty Request ready to be populated.
func NewRequest() *Request {
	return model.NewRequest()
}

// Authorize is a convenience wrapper equivalent to c.Authorize(ctx, req).
func Authorize(ctx context.Context, c *Client, req *Request) (*Response, error) {
	return c.Authorize(ctx, req)
}
