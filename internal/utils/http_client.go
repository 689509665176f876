package utils

import (
	"bytes"
	"io"
	"net/http"
	"time"

	"printlist-backend/pkg/logger"

	"go.uber.org/zap"
)

const maxLoggedBody = 2000

// LoggingTransport implements http.RoundTripper and logs outbound
// requests and responses through the application logger.
type LoggingTransport struct {
	Transport http.RoundTripper
}

func (t *LoggingTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	reqBody := peekBody(&req.Body)

	logger.Log.Info("outbound request",
		zap.String("method", req.Method),
		zap.String("url", req.URL.String()),
		zap.String("body", reqBody),
	)

	start := time.Now()

	transport := t.Transport
	if transport == nil {
		transport = http.DefaultTransport
	}
	resp, err := transport.RoundTrip(req)
	duration := time.Since(start)

	if err != nil {
		logger.Log.Error("outbound request failed",
			zap.String("method", req.Method),
			zap.String("url", req.URL.String()),
			zap.Duration("duration", duration),
			zap.Error(err),
		)
		return nil, err
	}

	respBody := peekBody(&resp.Body)

	logger.Log.Info("outbound response",
		zap.String("method", req.Method),
		zap.String("url", req.URL.String()),
		zap.String("status", resp.Status),
		zap.Duration("duration", duration),
		zap.String("body", respBody),
	)

	return resp, nil
}

// peekBody reads a body for logging and restores it for the caller.
func peekBody(body *io.ReadCloser) string {
	if body == nil || *body == nil {
		return ""
	}
	bodyBytes, _ := io.ReadAll(*body)
	*body = io.NopCloser(bytes.NewBuffer(bodyBytes))
	if len(bodyBytes) > maxLoggedBody {
		return string(bodyBytes[:maxLoggedBody]) + "...(truncated)"
	}
	return string(bodyBytes)
}

// NewHTTPClient returns a bounded http.Client with round-trip logging.
func NewHTTPClient(timeout time.Duration) *http.Client {
	return &http.Client{
		Timeout: timeout,
		Transport: &LoggingTransport{
			Transport: http.DefaultTransport,
		},
	}
}
