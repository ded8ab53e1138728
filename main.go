package main

import (
	"os"

	"github.com/sirupsen/logrus"

	"laptudirm.com/x/pairer/internal/pairer/cmd"
	"laptudirm.com/x/pairer/pkg/common"
)

func main() {
	logrus.SetFormatter(&logrus.TextFormatter{
		DisableTimestamp: true,
		PadLevelText:     true,
	})
	logrus.SetLevel(logrus.InfoLevel)

	if err := pairer(); err != nil {
		logrus.Fatal(err)
	}
}

func pairer() error {
	config, err := common.LoadConfig()
	if err != nil {
		return err
	}

	level, err := config.Level()
	if err != nil {
		return err
	}
	logrus.SetLevel(level)

	root := cmd.Root(config)
	root.SetArgs(os.Args[1:])
	return root.Execute()
}
