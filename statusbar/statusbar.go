// Package statusbar draws the M5Stack status bar: a navy strip across the
// top of the 320x240 LCD holding a battery glyph, its charge percentage and
// a line of caller text.
//
// Example usage:
//
//	ctx := statusbar.NewDrawContext()
//	bar := statusbar.NewNamed("node-1", display, power, logger)
//	bar.DrawBar(ctx)
//	bar.PrintInBar(ctx, bar.MACAddressString(peer, true))
//	bar.DrawBatteryState(ctx)
//
// Every call is synchronous and returns once the pixels have been handed to
// the display driver. Driver errors are logged at debug level and otherwise
// ignored.
package statusbar

import (
	"io"
	"log/slog"

	"tinygo.org/x/drivers"
	"tinygo.org/x/tinyfont"
	"tinygo.org/x/tinyfont/proggy"
)

// DefaultName is the name of a Renderer built with New.
const DefaultName = "default"

const (
	ScreenWidth  int16 = 320
	ScreenHeight int16 = 240
	BarHeight    int16 = 24

	barTextY int16 = 4 // top of the text row inside the bar
)

// Renderer draws into the status bar of a display.
type Renderer struct {
	name    string
	display drivers.Displayer
	power   PowerSource
	font    *tinyfont.Font
	logger  *slog.Logger
	buf     []byte // scratch for labels, so redraws don't allocate
}

// New creates a Renderer named DefaultName.
func New(display drivers.Displayer, power PowerSource, logger *slog.Logger) *Renderer {
	return NewNamed(DefaultName, display, power, logger)
}

// NewNamed creates a Renderer with the given name, stored as is.
func NewNamed(name string, display drivers.Displayer, power PowerSource, logger *slog.Logger) *Renderer {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{
			Level: slog.Level(127), // no logging
		}))
	}
	return &Renderer{
		name:    name,
		display: display,
		power:   power,
		font:    &proggy.TinySZ8pt7b,
		logger:  logger,
		buf:     make([]byte, 0, 16),
	}
}

// Name returns the label the Renderer was created with.
func (r *Renderer) Name() string {
	return r.name
}

// DrawBar paints the whole bar navy.
func (r *Renderer) DrawBar(ctx *DrawContext) {
	r.fillRect(0, 0, ScreenWidth, BarHeight, Navy)
	ctx.Reset()
	r.flush("draw-bar")
}

// DrawBatteryState redraws the battery glyph and its label from the
// current power state.
func (r *Renderer) DrawBatteryState(ctx *DrawContext) {
	level := r.power.BatteryLevel()
	charging := r.power.IsCharging()
	full := r.power.IsChargeFull()

	r.fillRect(batteryX, batteryY, batteryWidth, batteryHeight, Navy)

	fill := BatteryFillWidth(level)
	r.fillRect(batteryX+batteryWidth-fill, batteryY, fill, batteryHeight, BatteryColor(level, full))

	ctx.SetCursor(labelX, labelY)
	ctx.SetTextColor(White, Navy)
	r.buf = appendBatteryLabel(r.buf[:0], level, charging)
	r.writeText(ctx, string(r.buf))

	r.drawRect(batteryX, batteryY, batteryWidth, batteryHeight, White)
	r.fillRect(terminalX, terminalY, terminalWidth, terminalHeight, White)

	ctx.Reset()
	r.flush("draw-battery")
}

// MACAddressString formats mac for display. See FormatMAC.
func (r *Renderer) MACAddressString(mac MAC, hide bool) string {
	return FormatMAC(mac, hide)
}

// PrintInBar writes text at the left of the bar, white on navy. Text that
// does not fit is clipped by the display.
func (r *Renderer) PrintInBar(ctx *DrawContext, text string) {
	ctx.SetCursor(0, barTextY)
	ctx.SetTextColor(White, Navy)
	r.writeText(ctx, text)

	ctx.Reset()
	r.flush("print-in-bar")
}

// Print writes text at the cursor of ctx in its colors and advances the
// cursor past it.
func (r *Renderer) Print(ctx *DrawContext, text string) {
	r.writeText(ctx, text)
	r.flush("print")
}

// Println is Print followed by a move to the start of the next line.
func (r *Renderer) Println(ctx *DrawContext, text string) {
	r.writeText(ctx, text)
	ctx.SetCursor(0, ctx.Y+r.lineHeight())
	r.flush("print")
}

func (r *Renderer) flush(op string) {
	if err := r.display.Display(); err != nil {
		r.logger.Debug("statusbar:display", slog.String("op", op), slog.String("err", err.Error()))
	}
}
