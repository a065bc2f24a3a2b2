package main

import (
	"os"

	"github.com/sirupsen/logrus"

	"github.com/reoring/navskema/appnav"
	"github.com/reoring/navskema/cmd/navskema/cmd"
)

func main() {
	if err := cmd.NewRootCmd(appnav.Schema()).Execute(); err != nil {
		logrus.Errorf("navskema: %v", err)
		os.Exit(1)
	}
}
