// Package dispatch implements the ordered-endpoint failover algorithm
// that turns a Request into a Response by trying each configured PDP
// endpoint in turn until one succeeds.
package dispatch

import (
	"context"
	"time"

	"github.com/cespare/xxhash/v2"

	"github.com/argus-pep/argus-pep-go/errs"
	"github.com/argus-pep/argus-pep-go/internal/pool"
	"github.com/argus-pep/argus-pep-go/marshal"
	"github.com/argus-pep/argus-pep-go/model"
	"github.com/argus-pep/argus-pep-go/tagfmt"
	"github.com/argus-pep/argus-pep-go/transport"
)

// LogFunc receives structured log lines tagged with a correlation ID: one
// before each endpoint attempt and one reporting its outcome. It is never
// required; a nil LogFunc disables logging.
type LogFunc func(correlationID uint64, format string, args ...any)

// Options configures a single Authorize call.
type Options struct {
	// Transport performs the actual HTTP exchange. Required.
	Transport transport.Transport

	// Timeout bounds each individual endpoint attempt.
	Timeout time.Duration

	// Nonce perturbs the correlation ID so repeated identical requests
	// don't share a log tag; it is never used as a cache key (spec's
	// non-goal: no decision caching).
	Nonce uint64

	// Log receives a call before each endpoint attempt and one with its
	// outcome, for diagnostics only.
	Log LogFunc
}

// Authorize marshals req once and POSTs it to each endpoint in order,
// returning the first successfully decoded Response. Any transport or
// decode failure for an endpoint is recorded and failover continues to
// the next one; cancelling ctx aborts the loop immediately.
func Authorize(ctx context.Context, req *model.Request, endpoints []string, opts Options) (*model.Response, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	body, err := marshalRequest(req)
	if err != nil {
		return nil, err
	}

	correlationID := xxhash.Sum64(body) ^ opts.Nonce

	var lastErr error
	for i, endpoint := range endpoints {
		if ctx.Err() != nil {
			return nil, errs.Wrap(errs.Cancelled, "authorize cancelled before contacting endpoint", ctx.Err())
		}

		opts.logf(correlationID, "attempting endpoint %d/%d: %s", i+1, len(endpoints), endpoint)

		resp, err := tryEndpoint(ctx, endpoint, body, opts)
		if err == nil {
			opts.logf(correlationID, "endpoint %s succeeded", endpoint)

			return resp, nil
		}

		if ctx.Err() != nil {
			return nil, errs.Wrap(errs.Cancelled, "authorize cancelled during endpoint attempt", ctx.Err())
		}

		opts.logf(correlationID, "endpoint %s failed: %v", endpoint, err)
		lastErr = err
	}

	if lastErr == nil {
		return nil, errs.New(errs.EndpointExhausted, "no endpoints configured")
	}

	return nil, errs.Wrap(errs.EndpointExhausted, "all endpoints failed", lastErr)
}

func tryEndpoint(ctx context.Context, endpoint string, body []byte, opts Options) (*model.Response, error) {
	respBytes, err := opts.Transport.Post(ctx, endpoint, body, transport.PostOptions{Timeout: opts.Timeout})
	if err != nil {
		return nil, err
	}

	dec := tagfmt.NewDecoderFromBytes(respBytes)
	val, err := dec.Decode()
	if err != nil {
		return nil, err
	}

	return marshal.ResponseFromTagFmt(val)
}

func marshalRequest(req *model.Request) ([]byte, error) {
	buf := pool.GetBlobBuffer()
	defer pool.PutBlobBuffer(buf)

	enc := tagfmt.NewEncoder(buf)
	if err := enc.Encode(marshal.RequestToTagFmt(req)); err != nil {
		return nil, errs.Wrap(errs.Marshal, "failed to marshal request", err)
	}

	return append([]byte(nil), enc.Bytes()...), nil
}

func (o Options) logf(correlationID uint64, format string, args ...any) {
	if o.Log == nil {
		return
	}
	o.Log(correlationID, format, args...)
}
