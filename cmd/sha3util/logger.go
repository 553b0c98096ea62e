package main

import (
	"os"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

// log writes diagnostics to stderr, keeping stdout for digests.
var log = logrus.New()

func init() {
	if x, exists := os.LookupEnv("LOG"); exists {
		if err := setLogLevel(x); err != nil {
			log.Warn(err)
		}
	}
}

// setLogLevel sets the level of log by name, e.g. "debug" or "WARN".
// The level is left unchanged if name is not recognized.
func setLogLevel(name string) error {
	level, err := logrus.ParseLevel(name)
	if err != nil {
		return errors.Wrap(err, "LOG")
	}
	log.SetLevel(level)
	return nil
}
