package util

import (
	"bytes"
	"fmt"
	"io"
	"net/http"

	"github.com/rs/zerolog"
)

// LoggingTransport is an http.RoundTripper that logs requests and response
// bodies when the logger is at debug level. Credentials are never logged.
type LoggingTransport struct {
	Base http.RoundTripper
	Log  zerolog.Logger
}

func (t *LoggingTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	base := t.Base
	if base == nil {
		base = http.DefaultTransport
	}

	if t.Log.GetLevel() > zerolog.DebugLevel {
		return base.RoundTrip(req)
	}

	t.Log.Debug().
		Str("method", req.Method).
		Str("url", req.URL.String()).
		Bool("authorized", req.Header.Get("Authorization") != "").
		Msg("Outbound request")

	resp, err := base.RoundTrip(req)
	if err != nil {
		t.Log.Debug().Err(err).Str("url", req.URL.String()).Msg("Outbound request failed")
		return resp, err
	}

	respBody, err := io.ReadAll(resp.Body)
	resp.Body.Close()
	if err != nil {
		t.Log.Debug().Err(err).Str("url", req.URL.String()).Msg("Outbound response body unreadable")
		return nil, fmt.Errorf("failed to read response body: %w", err)
	}
	resp.Body = io.NopCloser(bytes.NewBuffer(respBody))

	evt := t.Log.Debug().
		Int("status", resp.StatusCode).
		Str("url", req.URL.String()).
		Int("body_bytes", len(respBody))
	if len(respBody) > 0 {
		evt = evt.Str("body", truncateBody(respBody))
	}
	evt.Msg("Outbound response")

	return resp, nil
}

const maxLoggedBody = 2048

func truncateBody(b []byte) string {
	if len(b) <= maxLoggedBody {
		return string(b)
	}
	return string(b[:maxLoggedBody]) + "...(truncated)"
}
