package render

import (
	"fmt"
	"math"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/sugar-pop/component"
	"github.com/lixenwraith/sugar-pop/constants"
	"github.com/lixenwraith/sugar-pop/core"
	"github.com/lixenwraith/sugar-pop/engine"
	"github.com/lixenwraith/sugar-pop/vmath"
)

// HUD is the per-frame status line content
type HUD struct {
	Level      int
	GrainsLeft int
	TimeLeft   time.Duration
	HasLimit   bool
	Paused     bool
	Drawing    bool
	ShowFPS    bool
	FPS        float64
}

// TerminalRenderer draws the session onto a tcell screen
type TerminalRenderer struct {
	screen   tcell.Screen
	viewport core.Viewport
	worldW   float64
	worldH   float64
	Messages *MessageBoard
}

// NewTerminalRenderer creates a renderer sized to the screen
func NewTerminalRenderer(screen tcell.Screen, worldW, worldH float64) *TerminalRenderer {
	w, h := screen.Size()
	return &TerminalRenderer{
		screen:   screen,
		viewport: core.NewViewport(worldW, worldH, w, h, constants.HUDRows),
		worldW:   worldW,
		worldH:   worldH,
		Messages: NewMessageBoard(),
	}
}

// Resize recomputes the world to cell mapping
func (r *TerminalRenderer) Resize(width, height int) {
	r.viewport = core.NewViewport(r.worldW, r.worldH, width, height, constants.HUDRows)
}

// Viewport returns the current world to cell mapping
func (r *TerminalRenderer) Viewport() core.Viewport {
	return r.viewport
}

// RenderFrame renders the entire game frame
func (r *TerminalRenderer) RenderFrame(ctx *engine.GameContext, hud HUD) {
	bg := tcell.StyleDefault.Background(RgbBackground.Tcell())
	r.screen.SetStyle(bg)
	r.screen.Clear()

	switch ctx.State.Phase {
	case engine.PhaseIntro:
		r.drawIntro(bg)
	case engine.PhaseGameWon:
		r.drawBanner(bg, "YOU WIN", "all levels cleared, press R to replay the last one or Esc to quit")
	default:
		if ctx.Level != nil {
			r.drawWorld(ctx, bg)
		}
		r.drawHUD(hud, bg)
	}

	if msg, ok := r.Messages.Current(ctx.Clock.Real()); ok {
		r.drawCentered(r.viewport.OffsetY+r.viewport.Rows/2, msg, bg.Foreground(RgbMessage.Tcell()).Bold(true))
	}
	r.screen.Show()
}

func (r *TerminalRenderer) drawWorld(ctx *engine.GameContext, bg tcell.Style) {
	reg := ctx.Registry
	world := reg.World()

	reg.Statics.Each(func(_ core.Entity, s *component.StaticComponent) bool {
		ch := '#'
		if s.LineWidth <= constants.BoundaryLineWidth {
			ch = '+'
		}
		r.drawSegment(s.A, s.B, ch, bg.Foreground(NamedColor(s.Color)))
		return true
	})

	lineStyle := bg.Foreground(NamedColor(constants.DrawnLineColor))
	reg.Lines.Each(func(_ core.Entity, l *component.DrawnLineComponent) bool {
		if len(l.Vertices) == 1 {
			cx, cy := r.viewport.ToCell(l.Vertices[0].X, l.Vertices[0].Y)
			r.screen.SetContent(cx, cy, '*', nil, lineStyle)
		}
		for i := 1; i < len(l.Vertices); i++ {
			r.drawSegment(l.Vertices[i-1], l.Vertices[i], '*', lineStyle)
		}
		return true
	})

	reg.Buckets.Each(func(_ core.Entity, b *component.BucketComponent) bool {
		if !b.Exploded {
			r.drawBucket(b, bg)
		}
		return true
	})

	grainStyle := bg.Foreground(RgbGrain.Tcell())
	reg.Grains.Each(func(_ core.Entity, g *component.GrainComponent) bool {
		if pos, ok := world.Position(g.Body); ok {
			cx, cy := r.viewport.ToCell(pos.X, pos.Y)
			r.screen.SetContent(cx, cy, '•', nil, grainStyle)
		}
		return true
	})

	sx, sy := r.viewport.ToCell(ctx.Level.SpoutX, ctx.Level.SpoutY)
	r.screen.SetContent(sx, sy, '▼', nil, bg.Foreground(RgbSpout.Tcell()))
}

// drawSegment rasterizes a world segment with a DDA walk over cells
func (r *TerminalRenderer) drawSegment(a, b vmath.Vec2, ch rune, style tcell.Style) {
	x0, y0 := r.viewport.ToCell(a.X, a.Y)
	x1, y1 := r.viewport.ToCell(b.X, b.Y)
	dx, dy := float64(x1-x0), float64(y1-y0)
	steps := int(math.Max(math.Abs(dx), math.Abs(dy)))
	if steps == 0 {
		r.screen.SetContent(x0, y0, ch, nil, style)
		return
	}
	sx, sy := dx/float64(steps), dy/float64(steps)
	x, y := float64(x0), float64(y0)
	for i := 0; i <= steps; i++ {
		r.screen.SetContent(int(math.Round(x)), int(math.Round(y)), ch, nil, style)
		x += sx
		y += sy
	}
}

func (r *TerminalRenderer) drawBucket(b *component.BucketComponent, bg tcell.Style) {
	style := bg.Foreground(RgbBucket.Tcell())
	left, top := r.viewport.ToCell(b.Bounds.Min.X, b.Bounds.Max.Y)
	right, bottom := r.viewport.ToCell(b.Bounds.Max.X, b.Bounds.Min.Y)

	for y := top; y < bottom; y++ {
		r.screen.SetContent(left, y, '│', nil, style)
		r.screen.SetContent(right, y, '│', nil, style)
	}
	for x := left + 1; x < right; x++ {
		r.screen.SetContent(x, bottom, '─', nil, style)
	}
	r.screen.SetContent(left, bottom, '└', nil, style)
	r.screen.SetContent(right, bottom, '┘', nil, style)

	label := fmt.Sprintf("%d/%d", b.Count, b.NeededSugar)
	row := bottom - 1
	if row < top {
		row = top
	}
	r.drawText((left+right+1-len(label))/2, row, label, bg.Foreground(RgbBucketText.Tcell()))
}

func (r *TerminalRenderer) drawHUD(hud HUD, bg tcell.Style) {
	style := bg.Foreground(RgbHUD.Tcell())
	text := fmt.Sprintf(" Level %d  Grains %d", hud.Level, hud.GrainsLeft)
	if hud.HasLimit {
		text += fmt.Sprintf("  Time %d", int(math.Ceil(hud.TimeLeft.Seconds())))
	}
	x := r.drawText(0, 0, text, style)
	if hud.Paused {
		x = r.drawText(x+2, 0, "PAUSED", bg.Foreground(RgbHUDWarn.Tcell()).Bold(true))
	}
	if hud.Drawing {
		x = r.drawText(x+2, 0, "DRAWING", bg.Foreground(NamedColor(constants.DrawnLineColor)))
	}
	if hud.ShowFPS {
		r.drawText(x+2, 0, fmt.Sprintf("FPS %.0f", hud.FPS), style)
	}
}

func (r *TerminalRenderer) drawIntro(bg tcell.Style) {
	r.drawBanner(bg, "SUGAR POP", "draw lines with the mouse to guide the sugar into the buckets")
	mid := r.viewport.OffsetY + r.viewport.Rows/2
	r.drawCentered(mid+3, "space pause   r restart   esc quit", bg.Foreground(RgbHUD.Tcell()))
}

func (r *TerminalRenderer) drawBanner(bg tcell.Style, title, subtitle string) {
	mid := r.viewport.OffsetY + r.viewport.Rows/2
	r.drawCentered(mid-2, title, bg.Foreground(RgbBanner.Tcell()).Bold(true))
	r.drawCentered(mid+1, subtitle, bg.Foreground(RgbHUD.Tcell()))
}

func (r *TerminalRenderer) drawCentered(y int, text string, style tcell.Style) {
	w, _ := r.screen.Size()
	n := len([]rune(text))
	r.drawText((w-n)/2, y, text, style)
}

// drawText writes text from x and returns the column after it
func (r *TerminalRenderer) drawText(x, y int, text string, style tcell.Style) int {
	for _, ch := range text {
		r.screen.SetContent(x, y, ch, nil, style)
		x++
	}
	return x
}
