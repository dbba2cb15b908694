package statusbar

import "strconv"

// Battery glyph layout. The glyph sits at the right edge of the bar with
// its positive terminal on the left, so the fill drains from the left.
const (
	batteryWidth   int16 = 40
	batteryHeight  int16 = 20
	batteryMargin  int16 = 10 // gap between glyph and right screen edge
	terminalWidth  int16 = 4
	terminalHeight int16 = 10

	batteryX  int16 = ScreenWidth - batteryMargin - batteryWidth
	batteryY  int16 = 2
	terminalX int16 = batteryX - terminalWidth
	terminalY int16 = batteryY + (batteryHeight-terminalHeight)/2

	// Label is printed 60px left of the terminal, on the same row as PrintInBar.
	labelX int16 = terminalX - 60
	labelY int16 = barTextY

	// Levels strictly above this are drawn green.
	batteryGreenAbove = 26
)

// PowerSource reports the battery state. Implementations are expected to
// answer without blocking; read failures are reported as zero values.
type PowerSource interface {
	// BatteryLevel returns the charge in percent, 0 to 100.
	BatteryLevel() float32
	IsCharging() bool
	IsChargeFull() bool
}

// BatteryFillWidth returns the width in pixels of the charge fill for
// level, truncated toward zero.
func BatteryFillWidth(level float32) int16 {
	return int16(float32(batteryWidth) * level / 100)
}

// BatteryColor picks the fill color. A full charge always wins; otherwise
// there are only two tiers.
func BatteryColor(level float32, chargeFull bool) Color {
	switch {
	case chargeFull:
		return Orange
	case level > batteryGreenAbove:
		return Green
	default:
		return Yellow
	}
}

// appendBatteryLabel appends "<level> %" and, while charging, " C".
func appendBatteryLabel(buf []byte, level float32, charging bool) []byte {
	buf = strconv.AppendInt(buf, int64(level), 10)
	buf = append(buf, " %"...)
	if charging {
		buf = append(buf, " C"...)
	}
	return buf
}
