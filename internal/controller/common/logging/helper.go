package logginghelper

import (
	"github.com/Egor213/LogBoard/internal/domain"
	log "github.com/sirupsen/logrus"
)

const (
	TransportHTTP = "http"
	TransportGRPC = "grpc"
)

func LogReceived(transport, operation string, fields log.Fields) {
	log.WithFields(fields).
		WithField("transport", transport).
		WithField("operation", operation).
		Debug("Request received")
}

func LogInvalid(transport, operation string, err error) {
	log.WithFields(log.Fields{
		"transport": transport,
		"operation": operation,
		"error":     err,
	}).Warn("Invalid request")
}

func LogSaved(entry *domain.LogEntry, operation string) {
	log.WithFields(log.Fields{
		"operation": operation,
		"id":        entry.Id,
		"source":    entry.Source,
		"severity":  entry.Severity,
	}).Info("Log saved successfully")
}

func LogError(transport, operation string, err error) {
	log.WithFields(log.Fields{
		"transport": transport,
		"operation": operation,
		"error":     err,
	}).Error("Request failed")
}
