//go:build tinygo

package main

import (
	"keynav/app"
	"keynav/hal"
)

func main() {
	app.Run(hal.New(), app.DefaultConfig())
}
