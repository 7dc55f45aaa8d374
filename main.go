package main

import (
	"github.com/noted-input/noted-analyze/cmd/app"
)

func main() {
	app.Run()
}
