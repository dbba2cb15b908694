//go:build m5stack

// Command m5status shows the status bar on an M5Stack: the device name and
// an ESP-NOW peer address in the bar, battery state on the right.
//
//	tinygo flash -target=m5stack -ldflags="-X main.deviceName=node-1 -X main.peerMAC=24:6F:28:A1:B2:0C -X main.hideMAC=true" ./m5status
package main

import (
	"log/slog"
	"machine"
	"time"

	"github.com/harveysanders/m5statusbar/ip5306"
	"github.com/harveysanders/m5statusbar/statusbar"
)

// Set via linker flags.
var (
	deviceName string
	peerMAC    string
	hideMAC    string
)

const refreshInterval = time.Second

func main() {
	logger := slog.New(slog.NewTextHandler(machine.Serial, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))

	display, err := configureDisplay()
	if err != nil {
		printErrForever(logger, "configure display", slog.String("reason", err.Error()))
	}

	err = machine.I2C0.Configure(machine.I2CConfig{
		SDA: machine.SDA_PIN,
		SCL: machine.SCL_PIN,
	})
	if err != nil {
		printErrForever(logger, "configure I2C", slog.String("reason", err.Error()))
	}
	power := ip5306.NewPower(ip5306.New(machine.I2C0), logger)

	var bar *statusbar.Renderer
	if deviceName == "" {
		bar = statusbar.New(display, power, logger)
	} else {
		bar = statusbar.NewNamed(deviceName, display, power, logger)
	}

	title := bar.Name()
	if peerMAC != "" {
		mac, err := statusbar.ParseMAC(peerMAC)
		if err != nil {
			logger.Error("peer mac ignored", slog.String("reason", err.Error()))
		} else {
			title += " " + bar.MACAddressString(mac, hideMAC == "true")
		}
	}
	logger.Info("status bar ready", slog.String("title", title))

	ctx := statusbar.NewDrawContext()
	display.FillScreen(statusbar.Black.RGB())
	bar.DrawBar(ctx)
	bar.PrintInBar(ctx, title)
	for {
		bar.DrawBatteryState(ctx)
		time.Sleep(refreshInterval)
	}
}

// printErrForever prints to serial @ 1hz. It blocks forever, so that a
// late serial monitor still sees why bring-up stopped.
func printErrForever(logger *slog.Logger, msg string, args ...any) {
	for {
		logger.Error(msg, args...)
		time.Sleep(time.Second)
	}
}
