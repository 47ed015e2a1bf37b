package main

import (
	"os"

	"github.com/sirupsen/logrus"
)

func main() {
	if err := NewRootCommand().Execute(); err != nil {
		logf := LoggingFormat{Type: LogType.CLI, Level: logrus.ErrorLevel, Message: "Command failed", Error: err}
		logf.Print()
		os.Exit(1)
	}
}
