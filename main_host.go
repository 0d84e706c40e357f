//go:build !tinygo

package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"time"

	"obdash/app"
	"obdash/dash/sensefeed"
	"obdash/hal"
)

func main() {
	var (
		headless = flag.Bool("headless", false, "Run without a window.")
		frames   = flag.Uint64("frames", 0, "Stop after N frames in headless mode (0 = run forever).")
		device   = flag.String("serial", "", "Telemetry serial port; empty runs the demo sweep.")
		baud     = flag.Int("baud", 115200, "Telemetry baud rate.")
	)
	flag.Parse()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	logger := hal.NewHostLogger()
	keys := &hal.KeyState{}
	flusher := &hal.WindowFlusher{}

	platform := app.Platform{
		Flusher: flusher,
		Cycles:  hal.NewHostCycles(),
		Buttons: keys.Levels,
		Logger:  logger,
	}
	if *headless {
		platform.Flusher = hal.NullFlusher{}
	}
	sys := app.New(platform)

	if *device != "" {
		feed, err := sensefeed.OpenSerial(*device, *baud, sys.Samples, sys.Logs)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		defer feed.Close()
		go func() {
			if err := feed.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
				logger.WriteLineString("feed: " + err.Error())
			}
		}()
	} else {
		go sensefeed.RunDemo(ctx, sys.Samples, 50*time.Millisecond)
	}

	var err error
	if *headless {
		if *frames > 0 {
			err = sys.Pipeline.RunFrames(ctx, *frames)
		} else {
			err = sys.Pipeline.Run(ctx)
		}
	} else {
		err = hal.RunWindow(ctx, sys.Pipeline.Run, flusher, keys, "OBD Dashboard")
	}
	if err != nil && !errors.Is(err, context.Canceled) {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
