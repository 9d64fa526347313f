package main

import (
	"errors"
	"os"

	log "github.com/sirupsen/logrus"
)

func main() {
	log.SetOutput(os.Stderr)
	log.SetFormatter(&log.TextFormatter{DisableTimestamp: true})

	cmd := newRootCmd(defaultEnv())
	if err := cmd.Execute(); err != nil {
		var uerr *usageError
		if !errors.As(err, &uerr) {
			log.Errorf("Application error: %v", err)
		}
		os.Exit(1)
	}
}
