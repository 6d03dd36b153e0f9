// Package middleware holds the HTTP middleware of the task service: request
// tracing with request-scoped loggers, and Prometheus request metrics.
package middleware
