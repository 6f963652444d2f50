package main

import (
	"os"

	"poeconv/internal/app"

	"github.com/sirupsen/logrus"
)

// @title PoE currency converter API
// @version 1.0
// @description Basket conversion between game currencies priced in chaos orbs.
// @BasePath /api/v1
func main() {
	if err := app.Run(); err != nil {
		logrus.WithError(err).Error("Application stopped with error")
		os.Exit(1)
	}
}
