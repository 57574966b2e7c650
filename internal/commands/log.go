package commands

import (
	"fmt"
	"os"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

// log writes diagnostics to stderr. Command output proper goes to stdout.
var log = logrus.New()

// initLogger sets the log level from --debug, falling back to the LOG_LEVEL
// env var.
func initLogger(cmd *cobra.Command, args []string) error {
	log.SetOutput(cmd.ErrOrStderr())
	log.SetFormatter(&logrus.TextFormatter{
		FullTimestamp: true,
	})

	if mustGetBoolFlag(cmd, "debug") {
		log.SetLevel(logrus.DebugLevel)
		return nil
	}

	switch level := strings.ToLower(os.Getenv("LOG_LEVEL")); level {
	case "debug":
		log.SetLevel(logrus.DebugLevel)
	case "info", "":
		log.SetLevel(logrus.InfoLevel)
	case "warn":
		log.SetLevel(logrus.WarnLevel)
	case "error":
		log.SetLevel(logrus.ErrorLevel)
	default:
		return fmt.Errorf("invalid LOG_LEVEL %q", level)
	}
	return nil
}
