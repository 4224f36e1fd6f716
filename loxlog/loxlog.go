// Package loxlog configures the structured logger the lox command writes
// its internal diagnostics to; the language packages themselves do not
// log. It is ambient infrastructure, not part of the language core:
// nothing here is observable from Lox source.
package loxlog

import (
	"io"
	"os"
	"strings"

	"github.com/sirupsen/logrus"
	easy "github.com/t-tomalak/logrus-easy-formatter"
)

// New returns a logger at level (default logrus.WarnLevel, raised to
// Debug by the --verbose CLI flag or a LOX_LOG=debug environment
// variable), formatted the way the rest of this module's diagnostics
// read: "LEVEL: message".
func New(out io.Writer) *logrus.Logger {
	if out == nil {
		out = os.Stderr
	}
	logger := logrus.New()
	logger.SetOutput(out)
	logger.SetFormatter(&easy.Formatter{
		LogFormat: "%lvl%: %msg%\n",
	})
	logger.SetLevel(levelFromEnv())
	return logger
}

// SetVerbose raises logger to debug level, used by the CLI's --verbose
// flag.
func SetVerbose(logger *logrus.Logger, verbose bool) {
	if verbose {
		logger.SetLevel(logrus.DebugLevel)
	}
}

func levelFromEnv() logrus.Level {
	switch strings.ToLower(os.Getenv("LOX_LOG")) {
	case "debug":
		return logrus.DebugLevel
	case "info":
		return logrus.InfoLevel
	case "error":
		return logrus.ErrorLevel
	default:
		return logrus.WarnLevel
	}
}
