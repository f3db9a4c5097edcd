// Package logger builds log/slog loggers for the service.
//
// New applies functional options on top of JSON/info defaults, and
// LogHandlerDecorator appends request-scoped attributes (such as the request
// id) taken from the context of each record. The attribute helpers in attr.go
// keep key names consistent across packages.
package logger
