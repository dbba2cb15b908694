package statusbar

// DrawContext is the cursor and text color state shared by every drawing
// call. Renderer operations that draw in the bar move the cursor and change
// colors while they work, and always hand the context back in its baseline
// state: cursor at the left edge just below the bar, white on black.
type DrawContext struct {
	X, Y       int16
	Foreground Color
	Background Color
}

// NewDrawContext returns a context in the baseline state.
func NewDrawContext() *DrawContext {
	ctx := &DrawContext{}
	ctx.Reset()
	return ctx
}

// Reset puts ctx back into the baseline state.
func (ctx *DrawContext) Reset() {
	ctx.SetCursor(0, BarHeight)
	ctx.SetTextColor(White, Black)
}

func (ctx *DrawContext) SetCursor(x, y int16) {
	ctx.X = x
	ctx.Y = y
}

func (ctx *DrawContext) SetTextColor(fg, bg Color) {
	ctx.Foreground = fg
	ctx.Background = bg
}

// IsBaseline reports whether ctx is in the state Reset leaves it in.
func (ctx *DrawContext) IsBaseline() bool {
	return *ctx == DrawContext{X: 0, Y: BarHeight, Foreground: White, Background: Black}
}
