package client

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/argus-pep/argus-pep-go/errs"
	"github.com/argus-pep/argus-pep-go/internal/pool"
	"github.com/argus-pep/argus-pep-go/marshal"
	"github.com/argus-pep/argus-pep-go/model"
	"github.com/argus-pep/argus-pep-go/tagfmt"
)

func TestNew_Defaults(t *testing.T) {
	c := New()
	require.Equal(t, defaultEndpointTimeout, c.endpointTimeout)
	require.True(t, c.sslValidation)
	require.Equal(t, LevelWarn, c.logLevel)
	require.Empty(t, c.endpoints)
}

func TestSetOption_UnknownKey(t *testing.T) {
	c := New()
	err := c.SetOption("not_a_real_option", "value")
	require.Error(t, err)
	require.Equal(t, errs.OptionInvalid, errs.KindOf(err))
}

func TestSetOption_EndpointURL(t *testing.T) {
	c := New()
	require.NoError(t, c.SetOption("endpoint_url", "https://pdp1.example.org/authz"))
	require.NoError(t, c.SetOption("endpoint_url", "https://pdp2.example.org/authz"))
	require.Equal(t, []string{"https://pdp1.example.org/authz", "https://pdp2.example.org/authz"}, c.endpoints)
}

func TestSetOption_EndpointURL_RejectsEmpty(t *testing.T) {
	c := New()
	err := c.SetOption("endpoint_url", "")
	require.Error(t, err)
	require.Equal(t, errs.EndpointURL, errs.KindOf(err))
}

func TestSetOption_WrongType(t *testing.T) {
	c := New()
	err := c.SetOption("endpoint_timeout", "not-a-duration")
	require.Error(t, err)
	require.Equal(t, errs.OptionInvalid, errs.KindOf(err))
}

func TestSetOption_AfterClose(t *testing.T) {
	c := New()
	c.Close()

	err := c.SetOption("endpoint_url", "https://pdp.example.org/authz")
	require.Error(t, err)
}

func TestClient_Authorize_AfterClose(t *testing.T) {
	c := New()
	c.Close()

	_, err := c.Authorize(context.Background(), model.NewRequest())
	require.Error(t, err)
}

func TestClient_Authorize_NilRequest(t *testing.T) {
	c := New()
	_, err := c.Authorize(context.Background(), nil)
	require.Error(t, err)
	require.Equal(t, errs.AuthzRequest, errs.KindOf(err))
}

func permitResponseBytes(t *testing.T) []byte {
	t.Helper()

	resp := model.NewResponse()
	result := model.NewResult(model.Permit)
	resp.AddResult(result)

	enc := tagfmt.NewEncoder(pool.NewByteBuffer(256))
	require.NoError(t, enc.Encode(marshal.ResponseToTagFmt(resp)))

	return enc.Bytes()
}

func TestClient_Authorize_EndToEnd(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write(permitResponseBytes(t))
	}))
	defer server.Close()

	c := New()
	require.NoError(t, c.SetOption("endpoint_url", server.URL))
	require.NoError(t, c.SetOption("endpoint_timeout", 2*time.Second))

	req := model.NewRequest()
	req.AddSubject(model.NewSubject())
	req.AddResource(model.NewResource())

	resp, err := c.Authorize(context.Background(), req)
	require.NoError(t, err)
	require.Len(t, resp.Results, 1)
	require.Equal(t, model.Permit, resp.Results[0].Decision)
}

func TestClient_SerializesConcurrentAuthorize(t *testing.T) {
	var mu sync.Mutex
	inFlight := 0
	maxInFlight := 0

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		mu.Lock()
		inFlight++
		if inFlight > maxInFlight {
			maxInFlight = inFlight
		}
		mu.Unlock()

		time.Sleep(20 * time.Millisecond)

		mu.Lock()
		inFlight--
		mu.Unlock()

		w.WriteHeader(http.StatusOK)
		_, _ = w.Write(permitResponseBytes(t))
	}))
	defer server.Close()

	c := New()
	require.NoError(t, c.SetOption("endpoint_url", server.URL))

	req := model.NewRequest()
	req.AddSubject(model.NewSubject())
	req.AddResource(model.NewResource())

	var wg sync.WaitGroup
	for i := 0; i < 5; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := c.Authorize(context.Background(), req)
			require.NoError(t, err)
		}()
	}
	wg.Wait()

	require.Equal(t, 1, maxInFlight, "a single Client must serialize concurrent Authorize calls")
}

func TestClient_LogHandlerReceivesMessages(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write(permitResponseBytes(t))
	}))
	defer server.Close()

	var received []string
	var mu sync.Mutex

	c := New()
	require.NoError(t, c.SetOption("endpoint_url", server.URL))
	require.NoError(t, c.SetOption("log_level", LevelDebug))
	require.NoError(t, c.SetOption("log_handler", LogHandler(func(level Level, message string) {
		mu.Lock()
		defer mu.Unlock()
		received = append(received, message)
	})))

	req := model.NewRequest()
	req.AddSubject(model.NewSubject())
	req.AddResource(model.NewResource())

	_, err := c.Authorize(context.Background(), req)
	require.NoError(t, err)

	mu.Lock()
	defer mu.Unlock()
	require.NotEmpty(t, received)
}
