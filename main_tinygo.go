//go:build tinygo

package main

import (
	"keymatrix/app"
	"keymatrix/hal"
)

func main() {
	app.Run(hal.New())
}
