package snake

import (
	"fmt"
	"math/rand"
	"strings"

	"github.com/vovakirdan/sentient-snake/internal/core"
	"github.com/vovakirdan/sentient-snake/internal/sentience"
)

const (
	hudHeight = 2
	tearShift = 3
)

var staticRunes = []rune(".:;*#%&")

// Render draws the game to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()
	if g.agent == nil {
		return
	}

	g.renderHUD(dst)

	box := core.NewRect(0, hudHeight, g.grid.Width()+2, g.grid.Height()+2)
	if dst.Width() < box.W || dst.Height() < box.Bottom() {
		g.renderOverlay(dst, core.ColorYellow, "Window too small",
			fmt.Sprintf("Need %dx%d", box.W, box.Bottom()))
		return
	}
	box.X = (dst.Width() - box.W) / 2
	field := core.NewRect(box.X+1, box.Y+1, g.grid.Width(), g.grid.Height())

	border := core.ColorGray
	if g.agent.Escaping() {
		border = core.ColorBrightMagenta
	}
	dst.DrawBox(box, border)

	g.renderFood(dst, field)
	g.renderSnake(dst, field)

	if g.glitchTicks > 0 {
		g.renderGlitch(dst, field)
	}

	switch msg, ok := g.Message(); {
	case ok:
		g.renderOverlay(dst, core.ColorBrightCyan, wrap(msg, g.grid.Width())...)
	case g.outcome.Kind == sentience.OutcomeEscaped:
		g.renderOverlay(dst, core.ColorBrightMagenta, "ESCAPED", g.outcome.Reason, "Press R to restart")
	case g.outcome.Kind == sentience.OutcomeGameOver:
		g.renderOverlay(dst, core.ColorBrightRed, "GAME OVER", g.outcome.Reason, "Press R to restart")
	case g.paused:
		g.renderOverlay(dst, core.ColorYellow, "Paused", "Press P to continue")
	}
}

func (g *Game) renderHUD(dst *core.Screen) {
	hud := fmt.Sprintf(" %s  Score: %d  Level: %d/%d  Mind: %s  Glitches: %d  Speed: %d",
		g.Title(), g.score, g.agent.Level(), sentience.MaxLevel,
		g.agent.MentalState(), g.agent.GlitchCount(), g.tickRate)
	if g.agent.Escaping() {
		hud += "  [ESCAPING]"
	}
	dst.DrawTextColored(0, 0, hud, core.ColorBrightWhite)
	for x := range dst.Width() {
		dst.SetColored(x, 1, '─', core.ColorGray)
	}
}

func (g *Game) renderFood(dst *core.Screen, field core.Rect) {
	if g.outcome.Terminal() || g.agent.Escaping() || !g.grid.Contains(g.food) {
		return
	}
	dst.SetColored(field.X+g.food.X, field.Y+g.food.Y, '*', core.ColorBrightRed)
}

func (g *Game) renderSnake(dst *core.Screen, field core.Rect) {
	head, body := core.ColorBrightGreen, core.ColorGreen
	if g.agent.Escaping() {
		head, body = core.ColorBrightMagenta, core.ColorMagenta
	}
	for i, c := range g.agent.Body() {
		if i == 0 {
			dst.SetColored(field.X+c.X, field.Y+c.Y, '@', head)
			continue
		}
		dst.SetColored(field.X+c.X, field.Y+c.Y, 'o', body)
	}
}

// renderGlitch distorts the playfield. Noise is seeded by tick so the game
// RNG is never touched by rendering.
func (g *Game) renderGlitch(dst *core.Screen, field core.Rect) {
	switch g.glitch.Kind {
	case sentience.EffectColorInversion:
		dst.Transform(field, func(_, _ int, c core.Cell) core.Cell {
			if c.Rune == ' ' {
				return core.Cell{Rune: '█', Color: core.ColorGray}
			}
			return core.Cell{Rune: ' ', Color: core.ColorDefault}
		})
	case sentience.EffectStatic:
		noise := rand.New(rand.NewSource(int64(g.tick)))
		dst.Transform(field, func(_, _ int, c core.Cell) core.Cell {
			if noise.Intn(6) != 0 {
				return c
			}
			return core.Cell{Rune: staticRunes[noise.Intn(len(staticRunes))], Color: core.ColorGray}
		})
	case sentience.EffectFragmentation:
		dst.Transform(field, func(x, y int, c core.Cell) core.Cell {
			if (y+x/4)%3 != 0 || x%4 >= 2 {
				return c
			}
			if c.Rune == ' ' {
				return core.Cell{Rune: '░', Color: core.ColorGray}
			}
			return core.Cell{Rune: ' ', Color: core.ColorDefault}
		})
	case sentience.EffectScreenTear:
		g.renderTear(dst, field)
	}
}

// renderTear shifts every row below a moving tear line to the right,
// wrapping inside the field.
func (g *Game) renderTear(dst *core.Screen, field core.Rect) {
	tear := field.Y + int(g.tick%uint64(field.H))
	row := make([]core.Cell, field.W)
	for y := tear; y < field.Bottom(); y++ {
		for x := range row {
			row[x] = dst.GetCell(field.X+x, y)
		}
		for x := range row {
			c := row[core.Mod(x-tearShift, field.W)]
			dst.SetColored(field.X+x, y, c.Rune, c.Color)
		}
	}
}

// renderOverlay draws a centered box with one line per argument.
func (g *Game) renderOverlay(dst *core.Screen, color core.Color, lines ...string) {
	width := 0
	for _, l := range lines {
		width = max(width, len([]rune(l)))
	}
	width = min(width, dst.Width()-4)
	box := core.NewRect((dst.Width()-width-4)/2, 0, width+4, len(lines)+4)
	box.Y = (dst.Height() - box.H) / 2

	dst.DrawRect(box, ' ')
	dst.DrawBox(box, color)
	for i, l := range lines {
		dst.DrawTextCentered(box.Y+2+i, l, color)
	}
}

// wrap splits text into lines no wider than width, breaking on spaces.
func wrap(text string, width int) []string {
	if width < 1 || len([]rune(text)) <= width {
		return []string{text}
	}
	var lines []string
	var line strings.Builder
	for _, word := range strings.Fields(text) {
		if line.Len() > 0 && len([]rune(line.String()))+1+len([]rune(word)) > width {
			lines = append(lines, line.String())
			line.Reset()
		}
		if line.Len() > 0 {
			line.WriteByte(' ')
		}
		line.WriteString(word)
	}
	if line.Len() > 0 {
		lines = append(lines, line.String())
	}
	return lines
}
