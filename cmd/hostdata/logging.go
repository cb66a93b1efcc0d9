package main

import (
	"os"
	"time"

	log "github.com/sirupsen/logrus"
)

// configureLogging sets up the standard logger. Log output goes to stderr
// so it never mixes with converted data.
func configureLogging(level, formatter string) error {
	lvl, err := log.ParseLevel(level)
	if err != nil {
		return Error.Wrap(err)
	}

	log.SetLevel(lvl)
	log.SetOutput(os.Stderr)

	switch formatter {
	case "json":
		log.SetFormatter(&log.JSONFormatter{
			TimestampFormat: time.RFC3339Nano,
		})
	case "text", "":
		log.SetFormatter(&log.TextFormatter{
			TimestampFormat: time.RFC3339Nano,
		})
	default:
		return Error.New("unsupported logging formatter: %q", formatter)
	}

	log.Debugf("using %q logging formatter", formatter)

	return nil
}
