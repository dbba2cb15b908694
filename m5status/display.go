//go:build m5stack

package main

import (
	"machine"

	"github.com/harveysanders/m5statusbar/statusbar"
	"tinygo.org/x/drivers/ili9341"
)

// configureDisplay brings up the M5Stack's ILI9341 in landscape and turns
// on the backlight.
func configureDisplay() (*ili9341.Device, error) {
	err := machine.SPI2.Configure(machine.SPIConfig{
		SCK:       machine.LCD_SCK_PIN,
		SDO:       machine.LCD_SDO_PIN,
		SDI:       machine.LCD_SDI_PIN,
		Frequency: 40e6,
	})
	if err != nil {
		return nil, err
	}

	backlight := machine.LCD_BL_PIN
	backlight.Configure(machine.PinConfig{Mode: machine.PinOutput})

	display := ili9341.NewSPI(machine.SPI2, machine.LCD_DC_PIN, machine.LCD_SS_PIN, machine.LCD_RST_PIN)
	display.Configure(ili9341.Config{
		Width:            statusbar.ScreenWidth,
		Height:           statusbar.ScreenHeight,
		DisplayInversion: true,
	})
	backlight.High()
	return display, nil
}
