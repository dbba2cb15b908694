// Package ip5306 reads battery state from the IP5306 power management IC
// found on the M5Stack Basic/Gray, over I2C.
//
// The chip only reports the charge in 25% steps, and only while the
// M5Stack "I2C enabled" variant of the IC is fitted.
package ip5306

import (
	"errors"
	"io"
	"log/slog"

	"tinygo.org/x/drivers"
)

// Address is the 7-bit I2C address of the IP5306.
const Address = 0x75

const (
	regRead0 = 0x70 // charger status
	regRead1 = 0x71 // charge full status
	regRead4 = 0x78 // battery level, upper nibble

	chargeBit = 1 << 3
)

// Device wraps the IP5306 on an I2C bus.
type Device struct {
	bus     drivers.I2C
	Address uint16
	wbuf    [1]byte
	rbuf    [1]byte
}

// New returns a Device on bus at the default address.
func New(bus drivers.I2C) *Device {
	return &Device{
		bus:     bus,
		Address: Address,
	}
}

// ReadBatteryLevel returns the charge in percent: 0, 25, 50, 75 or 100.
func (d *Device) ReadBatteryLevel() (uint8, error) {
	v, err := d.readReg(regRead4)
	if err != nil {
		return 0, errors.New("ip5306 battery level:" + err.Error())
	}
	// The IC lights one LED per quarter; each lit LED clears one bit from
	// the top of the nibble.
	switch v & 0xF0 {
	case 0x00:
		return 100, nil
	case 0x80:
		return 75, nil
	case 0xC0:
		return 50, nil
	case 0xE0:
		return 25, nil
	default:
		return 0, nil
	}
}

// ReadCharging reports whether the charger is active.
func (d *Device) ReadCharging() (bool, error) {
	v, err := d.readReg(regRead0)
	if err != nil {
		return false, errors.New("ip5306 charging:" + err.Error())
	}
	return v&chargeBit != 0, nil
}

// ReadChargeFull reports whether charging has completed.
func (d *Device) ReadChargeFull() (bool, error) {
	v, err := d.readReg(regRead1)
	if err != nil {
		return false, errors.New("ip5306 charge full:" + err.Error())
	}
	return v&chargeBit != 0, nil
}

func (d *Device) readReg(reg uint8) (uint8, error) {
	d.wbuf[0] = reg
	err := d.bus.Tx(d.Address, d.wbuf[:], d.rbuf[:])
	if err != nil {
		return 0, err
	}
	return d.rbuf[0], nil
}

// Power adapts a Device to the status bar's power source. Read failures
// are logged and reported as an empty, idle battery.
type Power struct {
	dev    *Device
	logger *slog.Logger
}

// NewPower creates a Power reading from dev. logger may be nil.
func NewPower(dev *Device, logger *slog.Logger) *Power {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{
			Level: slog.Level(127),
		}))
	}
	return &Power{dev: dev, logger: logger}
}

func (p *Power) BatteryLevel() float32 {
	level, err := p.dev.ReadBatteryLevel()
	if err != nil {
		p.logger.Error("power:read-failed", slog.String("err", err.Error()))
		return 0
	}
	return float32(level)
}

func (p *Power) IsCharging() bool {
	charging, err := p.dev.ReadCharging()
	if err != nil {
		p.logger.Error("power:read-failed", slog.String("err", err.Error()))
		return false
	}
	return charging
}

func (p *Power) IsChargeFull() bool {
	full, err := p.dev.ReadChargeFull()
	if err != nil {
		p.logger.Error("power:read-failed", slog.String("err", err.Error()))
		return false
	}
	return full
}
