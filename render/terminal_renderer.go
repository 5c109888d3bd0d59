// Package render draws game frames to a tcell screen
package render

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
	"github.com/lixenwraith/eldritch-clicker/constants"
	"github.com/lixenwraith/eldritch-clicker/game"
)

// TerminalRenderer handles all terminal rendering
type TerminalRenderer struct {
	screen       tcell.Screen
	defaultStyle tcell.Style
}

// NewTerminalRenderer creates a renderer drawing to screen
func NewTerminalRenderer(screen tcell.Screen) *TerminalRenderer {
	style := tcell.StyleDefault.Background(RgbBackground).Foreground(RgbText)
	screen.SetStyle(style)
	return &TerminalRenderer{
		screen:       screen,
		defaultStyle: style,
	}
}

// Sync repaints the whole terminal, used after resize
func (r *TerminalRenderer) Sync() {
	r.screen.Sync()
}

// Draw renders one full frame for v
func (r *TerminalRenderer) Draw(v View) {
	r.screen.Clear()
	_, height := r.screen.Size()

	s := v.State
	switch s.Menu {
	case game.MenuBuildings:
		r.drawBuildings(s, height)
	case game.MenuUpgrades:
		r.drawUpgrades(s, height)
	default:
		r.drawMain(s)
	}

	r.drawNotice(v, height-2)
	r.drawFooter(v, height-1)

	r.screen.Show()
}

// drawText writes text starting at (x, y), returning the column after the last rune
func (r *TerminalRenderer) drawText(x, y int, text string, style tcell.Style) int {
	for _, ch := range text {
		r.screen.SetContent(x, y, ch, nil, style)
		x++
	}
	return x
}

func (r *TerminalRenderer) drawMain(s *game.State) {
	title := r.defaultStyle.Foreground(RgbTitle).Bold(true)
	points := r.defaultStyle.Foreground(RgbPoints)
	heading := r.defaultStyle.Foreground(RgbHeading)

	r.drawText(0, 0, constants.TitleMain, title)
	r.drawText(0, 2, "Followers: "+FormatCount(s.Points), points)
	r.drawText(0, 3, "Total Converts: "+FormatCount(s.Lifetime), r.defaultStyle)
	r.drawText(0, 4, fmt.Sprintf("Conversion Rate: %s followers/sec", FormatRate(s.ProductionPerSecond())), r.defaultStyle)
	r.drawText(0, 5, fmt.Sprintf("Influence Power: %s (tier x%s)", FormatCount(s.ClickPower()), FormatCount(s.ClickMultiplier)), r.defaultStyle)

	if next, ok := game.NextClickTier(s.Lifetime); ok {
		r.drawText(0, 6, fmt.Sprintf("Next Power (x%s) at %s total converts", FormatCount(next.Multiplier), FormatCount(next.Threshold)), r.defaultStyle)
	} else {
		r.drawText(0, 6, "Next Power: Maximum", r.defaultStyle)
	}
	r.drawText(0, 7, "Domination Progress: "+game.Rank(s.Lifetime), r.defaultStyle)

	r.drawText(0, 9, "Rituals:", heading)
	r.drawText(0, 10, "Press '.' to spread influence and gain followers", r.defaultStyle)
	r.drawText(0, 11, "Press '1' for Sanctum, '2' for Minions, '3' for Artifacts", r.defaultStyle)
	r.drawText(0, 12, "Press 's' to record in the Necronomicon", r.defaultStyle)
	r.drawText(0, 13, "Press Ctrl+C to return to mortal realm", r.defaultStyle)
}

// rowStyle colors a list entry by selection and affordability
func (r *TerminalRenderer) rowStyle(selected, affordable bool) tcell.Style {
	switch {
	case selected:
		return r.defaultStyle.Foreground(RgbSelected).Bold(true)
	case affordable:
		return r.defaultStyle.Foreground(RgbAffordable)
	default:
		return r.defaultStyle.Foreground(RgbLocked)
	}
}

func prefix(selected bool) string {
	if selected {
		return "> "
	}
	return "  "
}

func (r *TerminalRenderer) drawBuildings(s *game.State, height int) {
	r.drawText(0, 0, constants.TitleBuildings, r.defaultStyle.Foreground(RgbTitle).Bold(true))
	r.drawText(0, 1, "Followers: "+FormatCount(s.Points), r.defaultStyle.Foreground(RgbPoints))
	r.drawText(0, 2, fmt.Sprintf("Conversion Rate: %s followers/sec", FormatRate(s.ProductionPerSecond())), r.defaultStyle)

	for i, b := range s.Buildings {
		y := constants.ListTop + i
		selected := i == s.Selected
		cost := b.NextCost()

		r.drawText(0, y, prefix(selected), r.defaultStyle)
		r.drawText(2, y, b.Name, r.rowStyle(selected, s.Points >= cost))
		r.drawText(constants.ColumnOwned, y, fmt.Sprintf("x%d", b.Owned), r.defaultStyle)
		r.drawText(constants.ColumnCost, y, "Souls Required: "+FormatCount(cost), r.defaultStyle)
		r.drawText(constants.ColumnProduction, y, fmt.Sprintf("Converts: %s/sec", FormatRate(s.BuildingProduction(b))), r.defaultStyle)
	}

	r.drawText(0, height-3, "Use Up/Down to select, Enter to summon", r.defaultStyle)
}

func (r *TerminalRenderer) drawUpgrades(s *game.State, height int) {
	r.drawText(0, 0, constants.TitleUpgrades, r.defaultStyle.Foreground(RgbTitle).Bold(true))
	r.drawText(0, 1, "Followers: "+FormatCount(s.Points), r.defaultStyle.Foreground(RgbPoints))

	for i, u := range s.Upgrades {
		y := 3 + i*constants.UpgradeRowHeight
		selected := i == s.Selected

		var nameStyle tcell.Style
		if u.Purchased {
			nameStyle = r.defaultStyle.Foreground(RgbPurchased)
		} else {
			nameStyle = r.rowStyle(selected, s.Points >= u.Cost)
		}

		r.drawText(0, y, prefix(selected), r.defaultStyle)
		r.drawText(2, y, u.Name, nameStyle)
		r.drawText(constants.ColumnCost, y, "Souls Required: "+FormatCount(u.Cost), r.defaultStyle)
		if u.Purchased {
			r.drawText(constants.ColumnUpgradeStatus, y, "[PURCHASED]", r.defaultStyle.Foreground(RgbPurchased))
		}
		r.drawText(4, y+1, u.Description, r.defaultStyle.Foreground(RgbDimText))
	}

	r.drawText(0, height-3, "Use Up/Down to select, Enter to acquire", r.defaultStyle)
}

func (r *TerminalRenderer) drawNotice(v View, y int) {
	if !v.Notice.Active(v.Now) {
		return
	}
	bg := RgbNoticeInfoBg
	switch v.Notice.Level {
	case NoticeWarn:
		bg = RgbNoticeWarnBg
	case NoticeError:
		bg = RgbNoticeErrorBg
	}
	r.drawText(0, y, " "+v.Notice.Text+" ", r.defaultStyle.Background(bg).Foreground(RgbNoticeText))
}

func (r *TerminalRenderer) drawFooter(v View, y int) {
	var name string
	switch v.State.Menu {
	case game.MenuBuildings:
		name = constants.FooterBuildings
	case game.MenuUpgrades:
		name = constants.FooterUpgrades
	default:
		name = constants.FooterMain
	}
	x := r.drawText(0, y, name, r.defaultStyle.Foreground(RgbFooter))

	if !v.LastSave.IsZero() {
		r.drawText(x+2, y, "saved "+v.LastSave.Format("15:04:05"), r.defaultStyle.Foreground(RgbDimText))
	}
}
