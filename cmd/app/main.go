package main

import (
	"github.com/humanbelnik/screenlens/core/internal/app"
	"github.com/humanbelnik/screenlens/core/internal/config"
)

func main() {
	app.Go(config.Load())
}
