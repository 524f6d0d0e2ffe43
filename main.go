package main

import (
	"os"

	"github.com/sirupsen/logrus"

	"laptudirm.com/x/ruin/internal/ruin/cmd"
)

func main() {
	logrus.SetFormatter(&logrus.TextFormatter{
		DisableTimestamp: true,
		PadLevelText:     true,
	})
	logrus.SetLevel(logrus.InfoLevel)

	if err := ruin(); err != nil {
		logrus.Fatal(err)
	}
}

func ruin() error {
	root := cmd.Root()
	root.SetArgs(os.Args[1:])
	return root.Execute()
}
