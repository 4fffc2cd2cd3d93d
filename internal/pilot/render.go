package pilot

import (
	"fmt"
	"math"
	"strings"

	"github.com/vovakirdan/pixel-pilot/internal/core"
)

// Visual characters for rendering
const (
	ProjectileChar = '|'
	ThrustChar     = '*'
	ShieldLeft     = '('
	ShieldRight    = ')'
	LifeChar       = '▲'
)

// ShipGlyphs holds one arrow per 45° heading sector, clockwise from nose up.
var ShipGlyphs = [8]rune{'↑', '↗', '→', '↘', '↓', '↙', '←', '↖'}

// AsteroidGlyphs and AsteroidColors are indexed by asteroid variant.
var (
	AsteroidGlyphs = [AsteroidVariants]rune{'@', '#', '%'}
	AsteroidColors = [AsteroidVariants]core.Color{core.ColorOrange, core.ColorYellow, core.ColorGray}
)

// StarGlyphs is indexed by star variant.
var StarGlyphs = [StarVariants]rune{'.', '·', '+', '*'}

// Render draws a frame into dst, scaling the arena to the screen's cell grid.
func Render(v View, dst *core.Screen) {
	dst.Clear()
	if dst.Width() == 0 || dst.Height() == 0 {
		return
	}

	p := newProjection(dst)

	for _, s := range v.Stars {
		c := core.ColorGray
		if s.Size >= StarSizeMin+StarSizeRange-2 {
			c = core.ColorWhite
		}
		x, y := p.cell(float64(s.X), float64(s.Y))
		dst.SetColor(x, y, StarGlyphs[s.Variant%StarVariants], c)
	}

	for _, a := range v.Asteroids {
		drawAsteroid(dst, p, a)
	}

	for _, pr := range v.Projectiles {
		x, y := p.cell(pr.HitPoint().X, pr.HitPoint().Y)
		dst.SetColor(x, y, ProjectileChar, core.ColorBrightYellow)
	}

	drawShip(dst, p, v.Ship)
	drawHUD(dst, v)

	switch v.Phase {
	case PhasePaused:
		drawOverlay(dst, "PAUSED", "")
	case PhaseGameOver:
		drawOverlay(dst, "GAME OVER", fmt.Sprintf("Score: %d", v.Score))
	}
}

// projection maps arena pixels onto screen cells.
type projection struct {
	sx, sy float64 // Cells per arena pixel
}

func newProjection(dst *core.Screen) projection {
	return projection{
		sx: float64(dst.Width()) / ArenaWidth,
		sy: float64(dst.Height()) / ArenaHeight,
	}
}

func (p projection) cell(x, y float64) (int, int) {
	return int(math.Floor(x * p.sx)), int(math.Floor(y * p.sy))
}

// arena returns the arena point at the center of a cell.
func (p projection) arena(cx, cy int) core.Vec {
	return core.Vec{X: (float64(cx) + 0.5) / p.sx, Y: (float64(cy) + 0.5) / p.sy}
}

// drawAsteroid fills every cell whose center lies inside the hit circle.
// Asteroids smaller than a cell are drawn as a single glyph.
func drawAsteroid(dst *core.Screen, p projection, a Asteroid) {
	v := a.Variant % AsteroidVariants
	glyph, color := AsteroidGlyphs[v], AsteroidColors[v]

	circle := a.HitCircle()
	x0, y0 := p.cell(a.Pos.X, a.Pos.Y)
	x1, y1 := p.cell(a.Pos.X+a.Diameter, a.Pos.Y+a.Diameter)

	drawn := false
	for cy := y0; cy <= y1; cy++ {
		for cx := x0; cx <= x1; cx++ {
			if circle.Contains(p.arena(cx, cy)) {
				dst.SetColor(cx, cy, glyph, color)
				drawn = true
			}
		}
	}
	if !drawn {
		cx, cy := p.cell(circle.Center.X, circle.Center.Y)
		dst.SetColor(cx, cy, glyph, color)
	}
}

func drawShip(dst *core.Screen, p projection, s ShipView) {
	x, y := p.cell(s.Center.X, s.Center.Y)

	sector := int(math.Round(s.Heading/45)) % len(ShipGlyphs)

	if s.Thrust {
		// Exhaust one cell behind the nose direction
		r := core.Radians(s.Heading)
		bx := x - int(math.Round(math.Sin(r)))
		by := y + int(math.Round(math.Cos(r)))
		dst.SetColor(bx, by, ThrustChar, core.ColorOrange)
	}

	if s.Shield {
		dst.SetColor(x-1, y, ShieldLeft, core.ColorCyan)
		dst.SetColor(x+1, y, ShieldRight, core.ColorCyan)
	}

	color := core.ColorBrightCyan
	if s.Firing {
		color = core.ColorBrightWhite
	}
	dst.SetColor(x, y, ShipGlyphs[sector], color)
}

func drawHUD(dst *core.Screen, v View) {
	dst.DrawText(1, 0, fmt.Sprintf("Score: %d", v.Score), core.ColorCyan)

	lives := strings.Repeat(string(LifeChar), core.Max(v.Lives, 0))
	if v.Lives > 5 {
		lives = fmt.Sprintf("%c×%d", LifeChar, v.Lives)
	}
	n := len([]rune(lives))
	dst.DrawText(dst.Width()-n-1, dst.Height()-1, lives, core.ColorWhite)
}

// drawOverlay draws a boxed message in the middle of the screen.
func drawOverlay(dst *core.Screen, title, subtitle string) {
	w := core.Max(len([]rune(title)), len([]rune(subtitle))) + 6
	h := 3
	if subtitle != "" {
		h = 4
	}
	box := core.NewRect((dst.Width()-w)/2, (dst.Height()-h)/2, w, h)

	dst.DrawRect(box, ' ')
	dst.DrawBox(box, core.ColorWhite)
	dst.DrawTextCentered(box.Y+1, title, core.ColorBrightWhite)
	if subtitle != "" {
		dst.DrawTextCentered(box.Y+2, subtitle, core.ColorYellow)
	}
}
