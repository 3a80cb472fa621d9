package ui

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
)

// fadingText is a status line that fades its opacity in and out
type fadingText struct {
	text    *canvas.Text
	base    color.NRGBA
	visible bool
	anim    *fyne.Animation
}

func newFadingText(message string, base color.Color, visible bool) *fadingText {
	f := &fadingText{
		base:    toNRGBA(base),
		visible: visible,
	}
	f.text = canvas.NewText(message, f.withAlpha(0))
	f.text.TextSize = MessageTextSize
	f.text.Alignment = fyne.TextAlignCenter
	if visible {
		f.text.Color = f.withAlpha(1)
	}
	return f
}

// Visible reports whether the line is shown or fading in
func (f *fadingText) Visible() bool {
	return f.visible
}

// SetText replaces the message without touching the opacity
func (f *fadingText) SetText(message string) {
	f.text.Text = message
	f.text.Refresh()
}

// FadeIn animates the opacity to 1
func (f *fadingText) FadeIn() {
	if f.visible {
		return
	}
	f.visible = true
	f.animate(func(done float32) float32 { return done })
}

// FadeOut animates the opacity to 0
func (f *fadingText) FadeOut() {
	if !f.visible {
		return
	}
	f.visible = false
	f.animate(func(done float32) float32 { return 1 - done })
}

func (f *fadingText) animate(alpha func(float32) float32) {
	if f.anim != nil {
		f.anim.Stop()
	}
	f.anim = fyne.NewAnimation(FadeDuration, func(done float32) {
		f.text.Color = f.withAlpha(alpha(done))
		f.text.Refresh()
	})
	f.anim.Curve = fyne.AnimationLinear
	f.anim.Start()
}

func (f *fadingText) withAlpha(alpha float32) color.NRGBA {
	c := f.base
	c.A = uint8(float32(f.base.A) * alpha)
	return c
}

func toNRGBA(c color.Color) color.NRGBA {
	return color.NRGBAModel.Convert(c).(color.NRGBA)
}
