package transport

import (
	"bytes"
	"context"
	"crypto/tls"
	"crypto/x509"
	"fmt"
	"io"
	"net/http"
	"os"
	"time"

	"github.com/argus-pep/argus-pep-go/compress"
	"github.com/argus-pep/argus-pep-go/errs"
	"github.com/argus-pep/argus-pep-go/internal/options"
)

const defaultContentType = "application/x-hessian"

// HTTPTransport implements Transport over net/http with a TLS
// configuration assembled once from functional options.
type HTTPTransport struct {
	client *http.Client
	codec  compress.Codec
}

// Option configures an HTTPTransport at construction time.
type Option = options.Option[*httpTransportConfig]

type httpTransportConfig struct {
	sslValidation   bool
	clientCertPath  string
	clientKeyPath   string
	clientKeyPass   string
	serverCAPath    string
	codec           compress.Codec
	tlsClientConfig *tls.Config
}

// WithSSLValidation enables or disables server certificate validation.
// Default is enabled; disabling it is an explicit, deliberate weakening
// of transport security (spec's Open Question resolved in favor of the
// secure default).
func WithSSLValidation(enabled bool) Option {
	return options.NoError(func(c *httpTransportConfig) {
		c.sslValidation = enabled
	})
}

// WithClientCertificate sets the PEM client certificate and key paths
// used for mutual TLS, plus an optional key passphrase. The passphrase is
// stored but not used: the key file is read as an unencrypted PEM key.
func WithClientCertificate(certPath, keyPath, keyPassword string) Option {
	return options.NoError(func(c *httpTransportConfig) {
		c.clientCertPath = certPath
		c.clientKeyPath = keyPath
		c.clientKeyPass = keyPassword
	})
}

// WithServerCAPath sets a PEM bundle of trusted CA certificates used to
// validate the PDP's server certificate, in place of the system pool.
func WithServerCAPath(path string) Option {
	return options.NoError(func(c *httpTransportConfig) {
		c.serverCAPath = path
	})
}

// WithBodyCompression sets the Codec used to compress POST bodies and
// transparently decompress response bodies carrying a matching
// Content-Encoding. The default is compress.NewNoOpCompressor, which
// preserves exact wire compatibility with a PDP that does not negotiate
// compression.
func WithBodyCompression(codec compress.Codec) Option {
	return options.NoError(func(c *httpTransportConfig) {
		c.codec = codec
	})
}

// NewHTTPTransport builds an HTTPTransport from opts. A client keypair
// (cert+key) is only loaded if both WithClientCertificate paths are set.
func NewHTTPTransport(opts ...Option) (*HTTPTransport, error) {
	cfg := &httpTransportConfig{
		sslValidation: true,
		codec:         compress.NewNoOpCompressor(),
	}
	if err := options.Apply(cfg, opts...); err != nil {
		return nil, errs.Wrap(errs.OptionInvalid, "invalid transport option", err)
	}

	tlsConfig, err := buildTLSConfig(cfg)
	if err != nil {
		return nil, err
	}

	return &HTTPTransport{
		client: &http.Client{
			Transport: &http.Transport{TLSClientConfig: tlsConfig},
		},
		codec: cfg.codec,
	}, nil
}

func buildTLSConfig(cfg *httpTransportConfig) (*tls.Config, error) {
	tlsConfig := &tls.Config{
		InsecureSkipVerify: !cfg.sslValidation, //nolint:gosec // explicit opt-in via WithSSLValidation(false)
	}

	if cfg.clientCertPath != "" && cfg.clientKeyPath != "" {
		cert, err := loadClientKeyPair(cfg.clientCertPath, cfg.clientKeyPath)
		if err != nil {
			return nil, errs.Wrap(errs.OptionInvalid, "failed to load client certificate", err)
		}
		tlsConfig.Certificates = []tls.Certificate{cert}
	}

	if cfg.serverCAPath != "" {
		pool, err := loadCAPool(cfg.serverCAPath)
		if err != nil {
			return nil, errs.Wrap(errs.OptionInvalid, "failed to load server CA bundle", err)
		}
		tlsConfig.RootCAs = pool
	}

	return tlsConfig, nil
}

// loadClientKeyPair loads a PEM certificate/key pair. Extracting a key
// from an encrypted PKCS#12 bundle or decrypting a passphrase-protected
// PEM key is out of scope (spec §1); callers must supply an
// already-decrypted PEM key file.
func loadClientKeyPair(certPath, keyPath string) (tls.Certificate, error) {
	return tls.LoadX509KeyPair(certPath, keyPath)
}

func loadCAPool(path string) (*x509.CertPool, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	pool := x509.NewCertPool()
	if !pool.AppendCertsFromPEM(data) {
		return nil, fmt.Errorf("no certificates found in %s", path)
	}

	return pool, nil
}

// Post implements Transport.
func (t *HTTPTransport) Post(ctx context.Context, url string, body []byte, opts PostOptions) ([]byte, error) {
	if opts.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, opts.Timeout)
		defer cancel()
	}

	encodedBody, err := t.codec.Compress(body)
	if err != nil {
		return nil, errs.Wrap(errs.Transport, "failed to compress request body", err)
	}

	contentType := opts.ContentType
	if contentType == "" {
		contentType = defaultContentType
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(encodedBody))
	if err != nil {
		return nil, errs.Wrap(errs.EndpointURL, "invalid endpoint URL", err)
	}
	req.Header.Set("Content-Type", contentType)
	if ce := contentEncodingOf(t.codec); ce != "" {
		req.Header.Set("Content-Encoding", ce)
		req.Header.Set("Accept-Encoding", ce)
	}

	resp, err := t.client.Do(req)
	if err != nil {
		if ctx.Err() != nil {
			return nil, errs.Wrap(errs.Timeout, "endpoint call timed out", err)
		}

		return nil, errs.Wrap(errs.Transport, "endpoint call failed", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, errs.Wrap(errs.Transport, "failed to read response body", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, errs.Newf(errs.Transport, "endpoint returned HTTP %d", resp.StatusCode)
	}

	if ce := resp.Header.Get("Content-Encoding"); ce != "" && ce == contentEncodingOf(t.codec) {
		respBody, err = t.codec.Decompress(respBody)
		if err != nil {
			return nil, errs.Wrap(errs.Transport, "failed to decompress response body", err)
		}
	}

	return respBody, nil
}

// contentEncodingOf returns the Content-Encoding token for codec, or ""
// for the no-op codec (no header is set, matching spec §6.1's default
// wire behavior).
func contentEncodingOf(codec compress.Codec) string {
	switch codec.(type) {
	case compress.NoOpCompressor:
		return ""
	case compress.ZstdCompressor:
		return "zstd"
	case compress.S2Compressor:
		return "s2"
	case compress.LZ4Compressor:
		return "lz4"
	default:
		return ""
	}
}
