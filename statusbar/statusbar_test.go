package statusbar

import (
	"errors"
	"image/color"
	"testing"
)

// frameBuffer is an in-memory display with a hardware rectangle fill.
type frameBuffer struct {
	pix      [ScreenHeight][ScreenWidth]color.RGBA
	flushes  int
	fillErr  error
	fillRuns int
}

func (fb *frameBuffer) Size() (x, y int16) {
	return ScreenWidth, ScreenHeight
}

func (fb *frameBuffer) SetPixel(x, y int16, c color.RGBA) {
	if x < 0 || y < 0 || x >= ScreenWidth || y >= ScreenHeight {
		return
	}
	fb.pix[y][x] = c
}

func (fb *frameBuffer) Display() error {
	fb.flushes++
	return nil
}

func (fb *frameBuffer) FillRectangle(x, y, width, height int16, c color.RGBA) error {
	fb.fillRuns++
	if fb.fillErr != nil {
		return fb.fillErr
	}
	for py := y; py < y+height; py++ {
		for px := x; px < x+width; px++ {
			fb.SetPixel(px, py, c)
		}
	}
	return nil
}

func (fb *frameBuffer) at(x, y int16) color.RGBA {
	return fb.pix[y][x]
}

// pixelOnly hides FillRectangle so drawing goes through tinydraw.
type pixelOnly struct {
	fb *frameBuffer
}

func (p pixelOnly) Size() (x, y int16) { return p.fb.Size() }
func (p pixelOnly) SetPixel(x, y int16, c color.RGBA) { p.fb.SetPixel(x, y, c) }
func (p pixelOnly) Display() error { return p.fb.Display() }

type fixedPower struct {
	level    float32
	charging bool
	full     bool
}

func (p fixedPower) BatteryLevel() float32 { return p.level }
func (p fixedPower) IsCharging() bool { return p.charging }
func (p fixedPower) IsChargeFull() bool { return p.full }

func TestNewName(t *testing.T) {
	if got := New(&frameBuffer{}, fixedPower{}, nil).Name(); got != "default" {
		t.Errorf("New: expected name %q, got %q", "default", got)
	}
	for _, name := range []string{"", "node-1", "ノード", "x\x00y"} {
		if got := NewNamed(name, &frameBuffer{}, fixedPower{}, nil).Name(); got != name {
			t.Errorf("NewNamed(%q): got name %q", name, got)
		}
	}
}

func TestDrawBar(t *testing.T) {
	fb := &frameBuffer{}
	r := New(fb, fixedPower{}, nil)
	ctx := &DrawContext{X: 100, Y: 100, Foreground: Green, Background: Orange}

	r.DrawBar(ctx)

	for _, p := range [][2]int16{{0, 0}, {ScreenWidth - 1, 0}, {0, BarHeight - 1}, {ScreenWidth - 1, BarHeight - 1}} {
		if got := fb.at(p[0], p[1]); got != Navy.RGB() {
			t.Errorf("pixel %v: expected navy, got %v", p, got)
		}
	}
	if got := fb.at(0, BarHeight); got != (color.RGBA{}) {
		t.Errorf("pixel below bar: expected untouched, got %v", got)
	}
	if !ctx.IsBaseline() {
		t.Errorf("context: expected baseline, got %+v", *ctx)
	}
	if fb.flushes != 1 {
		t.Errorf("flushes: expected 1, got %d", fb.flushes)
	}
}

func TestDrawBatteryStateFill(t *testing.T) {
	tests := []struct {
		name  string
		power fixedPower
		fill  int16
		color Color
	}{
		{"empty", fixedPower{level: 0}, 0, Yellow},
		{"low", fixedPower{level: 25}, 10, Yellow},
		{"half", fixedPower{level: 50}, 20, Green},
		{"charging", fixedPower{level: 75, charging: true}, 30, Green},
		{"full", fixedPower{level: 100, charging: true, full: true}, 40, Orange},
	}
	const midY = batteryY + batteryHeight/2
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fb := &frameBuffer{}
			r := New(fb, tt.power, nil)
			ctx := NewDrawContext()
			r.DrawBar(ctx)
			r.DrawBatteryState(ctx)

			// The outline covers the glyph's edge columns, so only the
			// interior shows the fill.
			for x := batteryX + 1; x < batteryX+batteryWidth-1; x++ {
				want := Navy
				if x >= batteryX+batteryWidth-tt.fill {
					want = tt.color
				}
				if got := fb.at(x, midY); got != want.RGB() {
					t.Fatalf("pixel (%d,%d): expected %v, got %v", x, midY, want, got)
				}
			}
			if got := fb.at(batteryX, midY); got != White.RGB() {
				t.Errorf("left outline: expected white, got %v", got)
			}
			if got := fb.at(batteryX+batteryWidth-1, batteryY); got != White.RGB() {
				t.Errorf("top right outline: expected white, got %v", got)
			}
			if got := fb.at(terminalX, terminalY); got != White.RGB() {
				t.Errorf("terminal: expected white, got %v", got)
			}
			if got := fb.at(terminalX, batteryY); got != Navy.RGB() {
				t.Errorf("above terminal: expected navy, got %v", got)
			}
			if !ctx.IsBaseline() {
				t.Errorf("context: expected baseline, got %+v", *ctx)
			}
		})
	}
}

func TestDrawBatteryStateClearsPreviousFill(t *testing.T) {
	fb := &frameBuffer{}
	power := &fixedPower{level: 100}
	r := New(fb, power, nil)
	ctx := NewDrawContext()
	r.DrawBar(ctx)
	r.DrawBatteryState(ctx)

	power.level = 10
	r.DrawBatteryState(ctx)

	if got := fb.at(batteryX+5, batteryY+5); got != Navy.RGB() {
		t.Errorf("drained pixel: expected navy, got %v", got)
	}
}

func TestDrawBatteryStateLabel(t *testing.T) {
	fb := &frameBuffer{}
	r := New(fb, fixedPower{level: 88, charging: true}, nil)
	ctx := NewDrawContext()
	r.DrawBar(ctx)
	r.DrawBatteryState(ctx)

	if n := countColor(fb, labelX, labelY, terminalX, BarHeight, White); n == 0 {
		t.Error("label: expected white glyph pixels left of the battery")
	}
	if n := countColor(fb, labelX, labelY, terminalX, BarHeight, Black); n != 0 {
		t.Errorf("label: expected navy background, found %d black pixels", n)
	}
}

func TestDrawingLeavesBaseline(t *testing.T) {
	ops := map[string]func(r *Renderer, ctx *DrawContext){
		"DrawBar":          func(r *Renderer, ctx *DrawContext) { r.DrawBar(ctx) },
		"DrawBatteryState": func(r *Renderer, ctx *DrawContext) { r.DrawBatteryState(ctx) },
		"PrintInBar":       func(r *Renderer, ctx *DrawContext) { r.PrintInBar(ctx, "hello") },
	}
	for name, op := range ops {
		t.Run(name, func(t *testing.T) {
			fb := &frameBuffer{}
			r := New(fb, fixedPower{level: 60, charging: true}, nil)
			ctx := NewDrawContext()
			ctx.SetCursor(123, 45)
			ctx.SetTextColor(Yellow, Green)

			op(r, ctx)
			if !ctx.IsBaseline() {
				t.Fatalf("first call: expected baseline, got %+v", *ctx)
			}
			first := fb.pix

			op(r, ctx)
			if !ctx.IsBaseline() {
				t.Fatalf("second call: expected baseline, got %+v", *ctx)
			}
			if fb.pix != first {
				t.Error("second call drew a different frame")
			}
		})
	}
}

func TestPrintInBar(t *testing.T) {
	fb := &frameBuffer{}
	r := New(fb, fixedPower{}, nil)
	ctx := NewDrawContext()
	r.DrawBar(ctx)
	r.PrintInBar(ctx, "HELLO")

	if n := countColor(fb, 0, barTextY, 80, BarHeight, White); n == 0 {
		t.Error("expected white text pixels in the bar")
	}
	if n := countColor(fb, 0, 0, ScreenWidth, BarHeight, Black); n != 0 {
		t.Errorf("expected bar to stay navy behind text, found %d black pixels", n)
	}
	if n := countColor(fb, 0, BarHeight, ScreenWidth, ScreenHeight, White); n != 0 {
		t.Errorf("expected nothing drawn below the bar, found %d white pixels", n)
	}
}

func TestPrintUsesContext(t *testing.T) {
	fb := &frameBuffer{}
	r := New(fb, fixedPower{}, nil)
	ctx := NewDrawContext()

	r.Print(ctx, "ab")
	if ctx.X <= 0 {
		t.Fatalf("cursor: expected to advance, got x=%d", ctx.X)
	}
	if ctx.Y != BarHeight {
		t.Errorf("cursor: expected y=%d, got %d", BarHeight, ctx.Y)
	}
	if n := countColor(fb, 0, BarHeight, ctx.X, BarHeight+r.lineHeight(), White); n == 0 {
		t.Error("expected white text below the bar")
	}

	r.Println(ctx, "c")
	if ctx.X != 0 || ctx.Y != BarHeight+r.lineHeight() {
		t.Errorf("Println cursor: expected (0,%d), got (%d,%d)", BarHeight+r.lineHeight(), ctx.X, ctx.Y)
	}

	before := fb.fillRuns
	r.Print(ctx, "")
	if fb.fillRuns != before {
		t.Error("empty print: expected no drawing")
	}
}

func TestDrawWithoutRectangleFill(t *testing.T) {
	fb := &frameBuffer{}
	r := New(pixelOnly{fb}, fixedPower{level: 50}, nil)
	ctx := NewDrawContext()
	r.DrawBar(ctx)
	r.DrawBatteryState(ctx)

	if fb.fillRuns != 0 {
		t.Errorf("FillRectangle: expected unused, called %d times", fb.fillRuns)
	}
	if got := fb.at(0, 0); got != Navy.RGB() {
		t.Errorf("bar: expected navy, got %v", got)
	}
	if got := fb.at(batteryX+batteryWidth-2, batteryY+batteryHeight/2); got != Green.RGB() {
		t.Errorf("fill: expected green, got %v", got)
	}
}

func TestDisplayErrorsAreNotFatal(t *testing.T) {
	fb := &frameBuffer{fillErr: errors.New("spi: bus fault")}
	r := New(fb, fixedPower{level: 50}, nil)
	ctx := NewDrawContext()

	r.DrawBar(ctx)
	r.DrawBatteryState(ctx)
	r.PrintInBar(ctx, "x")

	if !ctx.IsBaseline() {
		t.Errorf("context: expected baseline, got %+v", *ctx)
	}
	if fb.flushes != 3 {
		t.Errorf("flushes: expected 3, got %d", fb.flushes)
	}
}

func TestMACAddressString(t *testing.T) {
	r := New(&frameBuffer{}, fixedPower{}, nil)
	mac := MAC{0x0A, 0x1B, 0x2C, 0x3D, 0x4E, 0x5F}
	if got := r.MACAddressString(mac, false); got != "0A:1B:2C:3D:4E:5F" {
		t.Errorf("hide=false: got %q", got)
	}
	if got := r.MACAddressString(mac, true); got != "XX:XX:XX:XX:XX:5F" {
		t.Errorf("hide=true: got %q", got)
	}
}

func TestColorString(t *testing.T) {
	if got := Orange.String(); got != "orange" {
		t.Errorf("Orange: expected %q, got %q", "orange", got)
	}
	if got := Color(42).String(); got != "Color(42)" {
		t.Errorf("Color(42): expected %q, got %q", "Color(42)", got)
	}
	if got := Color(42).RGB(); got != Black.RGB() {
		t.Errorf("Color(42).RGB: expected black, got %v", got)
	}
}

// countColor counts pixels of c in [x0,x1) x [y0,y1).
func countColor(fb *frameBuffer, x0, y0, x1, y1 int16, c Color) int {
	want := c.RGB()
	n := 0
	for y := y0; y < y1; y++ {
		for x := x0; x < x1; x++ {
			if fb.at(x, y) == want {
				n++
			}
		}
	}
	return n
}
