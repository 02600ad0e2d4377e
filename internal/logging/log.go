// Package logging wraps github.com/op/go-logging to give each subsystem its
// own preconfigured *logging.Logger with one line of call-site code.
package logging

import (
	"log"
	"os"

	"github.com/op/go-logging"

	"corvid/internal/config"
)

var (
	standardLog *logging.Logger
	searchLog   *logging.Logger
	uciLog      *logging.Logger

	standardFormat = logging.MustStringFormatter(
		`%{time:15:04:05.000} %{shortpkg:-8.8s}:%{shortfile:-14.14s} %{level:-7.7s}:  %{message}`)

	uciFormat = logging.MustStringFormatter(`%{time:15:04:05.000} UCI %{message}`)
)

func init() {
	standardLog = logging.MustGetLogger("standard")
	searchLog = logging.MustGetLogger("search")
	uciLog = logging.MustGetLogger("uci")
}

// GetLog returns the standard logger, writing to stdout at config.LogLevel.
func GetLog() *logging.Logger {
	backend := logging.NewLogBackend(os.Stdout, "", log.Lmsgprefix)
	formatted := logging.NewBackendFormatter(backend, standardFormat)
	leveled := logging.AddModuleLevel(formatted)
	leveled.SetLevel(logging.Level(config.LogLevel), "")
	standardLog.SetBackend(leveled)
	return standardLog
}

// GetSearchLog returns the "search" logger, with its own stdout backend but
// the same format and config.LogLevel as the standard logger. The search
// package does not call it.
func GetSearchLog() *logging.Logger {
	backend := logging.NewLogBackend(os.Stdout, "", log.Lmsgprefix)
	formatted := logging.NewBackendFormatter(backend, standardFormat)
	leveled := logging.AddModuleLevel(formatted)
	leveled.SetLevel(logging.Level(config.LogLevel), "")
	searchLog.SetBackend(leveled)
	return searchLog
}

// GetUciLog returns a logger dedicated to the raw UCI protocol stream (every
// line sent and received), always at DEBUG level regardless of the
// standard logger's configured level - this is the trace a GUI-integration
// bug report needs.
func GetUciLog() *logging.Logger {
	backend := logging.NewLogBackend(os.Stdout, "", log.Lmsgprefix)
	formatted := logging.NewBackendFormatter(backend, uciFormat)
	leveled := logging.AddModuleLevel(formatted)
	leveled.SetLevel(logging.DEBUG, "")
	uciLog.SetBackend(leveled)
	return uciLog
}
