//go:build tinygo

package main

import (
	"context"

	"obdash/app"
	"obdash/dash/sensefeed"
	"obdash/hal"
)

func main() {
	board := hal.NewBoard()
	sys := app.New(app.Platform{
		Flusher: board,
		Cycles:  hal.NewDWTCycles(),
		Buttons: board.Levels,
		LED:     board.LED(),
		Logger:  board.Logger(),
	})

	go sensefeed.RunUARTFeed(board.UART(), sys.Samples, sys.Logs)

	_ = sys.Pipeline.Run(context.Background())
}
