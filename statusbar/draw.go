package statusbar

import (
	"image/color"
	"log/slog"

	"tinygo.org/x/tinydraw"
	"tinygo.org/x/tinyfont"
)

// rectFiller is implemented by drivers with a hardware rectangle fill,
// such as ili9341.
type rectFiller interface {
	FillRectangle(x, y, width, height int16, c color.RGBA) error
}

func (r *Renderer) fillRect(x, y, w, h int16, c Color) {
	if w <= 0 || h <= 0 {
		return
	}
	var err error
	if f, ok := r.display.(rectFiller); ok {
		err = f.FillRectangle(x, y, w, h, c.RGB())
	} else {
		err = tinydraw.FilledRectangle(r.display, x, y, w, h, c.RGB())
	}
	if err != nil {
		r.logger.Debug("statusbar:fill-rect",
			slog.Int("x", int(x)), slog.Int("y", int(y)),
			slog.String("err", err.Error()),
		)
	}
}

func (r *Renderer) drawRect(x, y, w, h int16, c Color) {
	err := tinydraw.Rectangle(r.display, x, y, w, h, c.RGB())
	if err != nil {
		r.logger.Debug("statusbar:draw-rect", slog.String("err", err.Error()))
	}
}

// writeText draws text at the cursor, background first so the run
// overwrites whatever was there, then moves the cursor to its end.
func (r *Renderer) writeText(ctx *DrawContext, text string) {
	if text == "" {
		return
	}
	_, outbox := tinyfont.LineWidth(r.font, text)
	width := int16(outbox)
	r.fillRect(ctx.X, ctx.Y, width, r.lineHeight(), ctx.Background)
	tinyfont.WriteLine(r.display, r.font, ctx.X, ctx.Y+r.ascent(), text, ctx.Foreground.RGB())
	ctx.X += width
}

func (r *Renderer) lineHeight() int16 {
	return int16(r.font.YAdvance)
}

// ascent is the distance from the top of a line to the baseline tinyfont
// draws on. Adafruit GFX fonts put roughly three quarters of the advance
// above the baseline.
func (r *Renderer) ascent() int16 {
	return int16(r.font.YAdvance) * 3 / 4
}
