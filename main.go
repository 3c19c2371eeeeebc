package main

import (
	"github.com/joho/godotenv"
	"github.com/jsphweid/chordlens/cmd"
	"github.com/sirupsen/logrus"
)

func main() {
	if err := godotenv.Load(); err != nil {
		logrus.Debug("no .env file found, using environment variables")
	}
	cmd.Execute()
}
