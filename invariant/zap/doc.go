// Package zap provides a zap-backed violation logger for the invariant
// package.
//
// It builds environment-profiled zap loggers and adapts them to the
// invariant.Logger interface so violation reports land in the application's
// structured log stream.
package zap
