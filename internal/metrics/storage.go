package metrics

import (
	"strings"
	"time"
)

// RecordStorageOperation records media storage (S3) call metrics
func (m *Metrics) RecordStorageOperation(operation string, duration time.Duration, err error) {
	m.safeExecute("RecordStorageOperation", func() {
		status := "success"
		if err != nil {
			status = "error"
		}

		m.StorageRequestsTotal.WithLabelValues(operation, status).Inc()
		m.StorageRequestDuration.WithLabelValues(operation, status).Observe(duration.Seconds())

		if err != nil {
			m.StorageErrors.WithLabelValues(operation, storageErrorType(err)).Inc()
		}
	})
}

// storageErrorType categorizes storage errors by message
func storageErrorType(err error) string {
	msg := err.Error()

	switch {
	case strings.Contains(msg, "NoSuchKey") || strings.Contains(msg, "NotFound"):
		return "not_found"
	case strings.Contains(msg, "AccessDenied"):
		return "access_denied"
	case strings.Contains(msg, "connection refused"):
		return "connection_refused"
	case strings.Contains(msg, "no such host"):
		return "dns_error"
	case strings.Contains(msg, "timeout") || strings.Contains(msg, "deadline exceeded"):
		return "timeout"
	default:
		return "unknown"
	}
}
