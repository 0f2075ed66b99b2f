package dash

import (
	"fmt"
	"math"

	"github.com/vovakirdan/delhi-dash/internal/core"
)

// Visual characters for rendering
const (
	GroundChar   = '═'
	RoadChar     = '─'
	HeadChar     = 'O'
	BodyChar     = '█'
	SlideChar    = '▄'
	RickshawChar = '▓'
	WheelChar    = 'o'
	BarrierChar  = '#'
	PotholeChar  = '▒'
	CoinChar     = '●'
	PowerUpChar  = '◆'
	DustChar     = '·'
)

// hudRows is the number of screen rows reserved above the playfield.
const hudRows = 1

// popup is a short-lived floating label.
type popup struct {
	text  string
	x, y  float64 // World position
	ttl   int
	color core.Color
}

// effects holds the presentation state driven by simulation events.
type effects struct {
	popups     []popup
	dust       []popup
	flash      int
	flashColor core.Color
	shake      int
}

// step ages every effect by one tick.
func (fx *effects) step() {
	fx.popups = agePopups(fx.popups)
	fx.dust = agePopups(fx.dust)
	if fx.flash > 0 {
		fx.flash--
	}
	if fx.shake > 0 {
		fx.shake--
	}
}

func agePopups(ps []popup) []popup {
	live := ps[:0]
	for _, p := range ps {
		p.ttl--
		p.y -= 2
		if p.ttl > 0 {
			live = append(live, p)
		}
	}
	return live
}

// apply turns simulation events into visual effects.
func (fx *effects) apply(events []Event, tickRate int) {
	if tickRate <= 0 {
		tickRate = 60
	}
	// Durations below are in ticks
	short := tickRate / 3
	long := tickRate * 2 / 3

	for _, ev := range events {
		switch e := ev.(type) {
		case CoinCollectedEvent:
			fx.popups = append(fx.popups, popup{text: fmt.Sprintf("+%d", e.Amount), x: e.X, y: e.Y, ttl: short, color: core.ColorBrightYellow})
		case PowerUpCollectedEvent:
			fx.popups = append(fx.popups, popup{text: "SHIELD!", x: e.X, y: e.Y, ttl: long, color: core.ColorBrightGreen})
		case ShieldAbsorbedEvent:
			fx.flash = tickRate / 5
			fx.flashColor = core.ColorBrightGreen
		case GameOverEvent:
			fx.flash = tickRate / 3
			fx.flashColor = core.ColorBrightRed
			fx.shake = long
		case DustEvent:
			fx.dust = append(fx.dust, popup{text: string(DustChar), x: e.X, y: e.Y, ttl: short / 2, color: core.ColorGray})
		}
	}
}

// viewport maps world coordinates onto the screen.
type viewport struct {
	sx, sy float64
	offX   int
	top    int
}

func (g *Game) viewport(dst *core.Screen) viewport {
	world := g.cfg.World
	v := viewport{top: hudRows}
	if world.Width > 0 {
		v.sx = float64(dst.Width()) / world.Width
	}
	if world.Height > 0 {
		v.sy = float64(dst.Height()-hudRows) / world.Height
	}
	if g.fx.shake > 0 {
		v.offX = 1 - 2*(g.fx.shake%2)
	}
	return v
}

func (v viewport) col(x float64) int { return int(math.Floor(x*v.sx)) + v.offX }
func (v viewport) row(y float64) int { return v.top + int(math.Floor(y*v.sy)) }

// fill paints a world box, always covering at least one cell.
func (v viewport) fill(dst *core.Screen, b core.Box, r rune, c core.Color) {
	x0, y0 := v.col(b.X), v.row(b.Y)
	x1, y1 := v.col(b.Right()), v.row(b.Bottom())
	if x1 <= x0 {
		x1 = x0 + 1
	}
	if y1 <= y0 {
		y1 = y0 + 1
	}
	for y := y0; y < y1; y++ {
		for x := x0; x < x1; x++ {
			dst.SetColored(x, y, r, c)
		}
	}
}

// Render draws the current game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()
	if g.session == nil {
		return
	}
	snap := g.session.Snapshot()
	v := g.viewport(dst)

	g.drawRoad(dst, v, snap)
	for _, e := range snap.Entities {
		g.drawEntity(dst, v, e)
	}
	g.drawPlayer(dst, v, snap)
	for _, d := range g.fx.dust {
		dst.SetColored(v.col(d.x)-1, v.row(d.y)-1, DustChar, d.color)
		dst.SetColored(v.col(d.x)+1, v.row(d.y)-1, DustChar, d.color)
	}
	for _, p := range g.fx.popups {
		dst.SetPen(p.color)
		dst.DrawText(v.col(p.x)-len(p.text)/2, v.row(p.y), p.text)
		dst.SetPen(core.ColorDefault)
	}
	if g.fx.flash > 0 {
		dst.SetPen(g.fx.flashColor)
		dst.DrawBox(core.NewRect(0, hudRows, dst.Width(), dst.Height()-hudRows))
		dst.SetPen(core.ColorDefault)
	}

	g.drawHUD(dst, snap)

	switch {
	case g.paused:
		g.drawCenteredMessage(dst, "PAUSED", "Press P to resume")
	case g.summary != nil:
		g.drawSummary(dst, *g.summary)
	case snap.IsOver:
		g.drawCenteredMessage(dst, "GAME OVER", fmt.Sprintf("Score: %d", snap.Score))
	}
}

// drawRoad renders the ground line and scrolling lane markings.
func (g *Game) drawRoad(dst *core.Screen, v viewport, snap Snapshot) {
	groundRow := v.row(g.cfg.World.GroundY)
	dst.SetPen(core.ColorGray)
	dst.DrawHLine(0, groundRow, dst.Width(), GroundChar)

	// Lane dashes scroll with distance
	shift := int(snap.Distance*4) % 6
	for y := groundRow + 2; y < dst.Height(); y += 2 {
		for x := -shift; x < dst.Width(); x += 6 {
			dst.Set(x, y, RoadChar)
			dst.Set(x+1, y, RoadChar)
			dst.Set(x+2, y, RoadChar)
		}
	}
	dst.SetPen(core.ColorDefault)
}

// drawEntity renders one obstacle, coin or power-up.
func (g *Game) drawEntity(dst *core.Screen, v viewport, e EntitySnapshot) {
	switch e.Kind {
	case KindCoin:
		dst.SetColored(v.col(e.X), v.row(e.Y), CoinChar, core.ColorBrightYellow)
	case KindPowerUp:
		cx, cy := v.col(e.X), v.row(e.Y)
		dst.SetColored(cx, cy, PowerUpChar, core.ColorBrightGreen)
		if g.frame%20 < 10 {
			dst.SetColored(cx-1, cy, '(', core.ColorGreen)
			dst.SetColored(cx+1, cy, ')', core.ColorGreen)
		}
	case KindObstacle:
		switch e.Obstacle {
		case Rickshaw:
			v.fill(dst, e.Sprite, RickshawChar, core.ColorYellow)
			bottom := v.row(e.Sprite.Bottom()) - 1
			dst.SetColored(v.col(e.Sprite.X)+1, bottom, WheelChar, core.ColorGray)
			dst.SetColored(v.col(e.Sprite.Right())-2, bottom, WheelChar, core.ColorGray)
		case Barrier:
			v.fill(dst, e.Sprite, BarrierChar, core.ColorRed)
			// Stripe every other row white
			for y := v.row(e.Sprite.Y) + 1; y < v.row(e.Sprite.Bottom()); y += 2 {
				for x := v.col(e.Sprite.X); x < v.col(e.Sprite.Right()); x++ {
					dst.SetColored(x, y, BarrierChar, core.ColorWhite)
				}
			}
		case Pothole:
			v.fill(dst, e.Hitbox, PotholeChar, core.ColorGray)
		}
	}
}

// drawPlayer renders the runner in its current posture.
func (g *Game) drawPlayer(dst *core.Screen, v viewport, snap Snapshot) {
	color := core.ColorBrightWhite
	switch {
	case snap.IsOver:
		color = core.ColorBrightRed
	case snap.Shield:
		color = core.ColorBrightGreen
	}

	hb := snap.PlayerHitbox
	if snap.Posture == Sliding {
		v.fill(dst, hb, SlideChar, color)
		return
	}

	x0, x1 := v.col(hb.X), v.col(hb.Right())
	if x1 <= x0 {
		x1 = x0 + 1
	}
	top, bottom := v.row(hb.Y), v.row(hb.Bottom())
	if bottom <= top {
		bottom = top + 1
	}
	mid := (x0 + x1 - 1) / 2

	dst.SetColored(mid, top, HeadChar, color)
	for y := top + 1; y < bottom-1; y++ {
		for x := x0; x < x1; x++ {
			dst.SetColored(x, y, BodyChar, color)
		}
	}

	// Legs animate while running on the ground
	legs := bottom - 1
	if legs > top {
		left, right := '/', '\\'
		if snap.Grounded && !snap.IsOver && (g.frame/6)%2 == 1 {
			left, right = '|', '|'
		}
		dst.SetColored(x0, legs, left, color)
		dst.SetColored(x1-1, legs, right, color)
	}
}

// drawHUD renders score, coins, distance, speed and shield status.
func (g *Game) drawHUD(dst *core.Screen, snap Snapshot) {
	left := fmt.Sprintf(" Score: %d  Coins: %d  %dm ", snap.Score, snap.Coins, int(snap.Distance))
	dst.DrawText(1, 0, left)

	right := fmt.Sprintf(" %.1fx ", snap.Multiplier)
	if snap.Shield {
		shield := fmt.Sprintf(" SHIELD %.1fs ", snap.ShieldRemaining.Seconds())
		dst.SetPen(core.ColorBrightGreen)
		dst.DrawText(dst.Width()-len(right)-len(shield)-2, 0, shield)
		dst.SetPen(core.ColorDefault)
	}
	dst.DrawText(dst.Width()-len(right)-1, 0, right)
}

// drawSummary renders the end-of-run report.
func (g *Game) drawSummary(dst *core.Screen, s Summary) {
	lines := []string{
		fmt.Sprintf("Score:    %d", s.Score),
		fmt.Sprintf("Coins:    %d", s.Coins),
		fmt.Sprintf("Distance: %dm", s.Distance),
		fmt.Sprintf("Best:     %d", s.HighScore),
	}
	footer := "R: retry  |  B: menu  |  Q: quit"

	boxW := len(footer) + 4
	boxH := len(lines) + 6
	if s.IsNewHighScore {
		boxH++
	}
	boxX := (dst.Width() - boxW) / 2
	boxY := (dst.Height() - boxH) / 2

	rect := core.NewRect(boxX, boxY, boxW, boxH)
	dst.DrawRect(rect, ' ')
	dst.DrawBox(rect)

	y := boxY + 1
	title := "GAME OVER"
	dst.SetPen(core.ColorBrightRed)
	dst.DrawText(boxX+(boxW-len(title))/2, y, title)
	dst.SetPen(core.ColorDefault)
	y += 2

	if s.IsNewHighScore {
		banner := "NEW HIGH SCORE!"
		dst.SetPen(core.ColorBrightYellow)
		dst.DrawText(boxX+(boxW-len(banner))/2, y-1, banner)
		dst.SetPen(core.ColorDefault)
		y++
	}

	for _, line := range lines {
		dst.DrawText(boxX+4, y, line)
		y++
	}
	dst.DrawText(boxX+2, boxY+boxH-2, footer)
}

// drawCenteredMessage draws a message box in the center of the screen.
func (g *Game) drawCenteredMessage(dst *core.Screen, title, subtitle string) {
	w := dst.Width()
	h := dst.Height()

	boxW := core.Max(len(title), len(subtitle)) + 4
	boxH := 5
	boxX := (w - boxW) / 2
	boxY := (h - boxH) / 2

	dst.DrawRect(core.NewRect(boxX, boxY, boxW, boxH), ' ')
	dst.DrawBox(core.NewRect(boxX, boxY, boxW, boxH))

	titleX := boxX + (boxW-len(title))/2
	dst.DrawText(titleX, boxY+1, title)

	subtitleX := boxX + (boxW-len(subtitle))/2
	dst.DrawText(subtitleX, boxY+3, subtitle)
}
