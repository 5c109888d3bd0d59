package render

import "github.com/gdamore/tcell/v2"

var (
	RgbBackground = tcell.NewRGBColor(26, 27, 38)    // Tokyo Night background
	RgbText       = tcell.NewRGBColor(192, 202, 245) // Default foreground
	RgbTitle      = tcell.NewRGBColor(122, 162, 247) // Blue banner
	RgbPoints     = tcell.NewRGBColor(158, 206, 106) // Green counter
	RgbHeading    = tcell.NewRGBColor(224, 175, 104) // Yellow section heading
	RgbFooter     = tcell.NewRGBColor(125, 207, 255) // Cyan menu name
	RgbSelected   = tcell.NewRGBColor(255, 255, 0)   // Bright yellow highlighted row
	RgbAffordable = tcell.NewRGBColor(255, 255, 255) // White
	RgbLocked     = tcell.NewRGBColor(86, 95, 137)   // Dark gray, cannot afford
	RgbPurchased  = tcell.NewRGBColor(0, 200, 0)     // Green owned upgrade
	RgbDimText    = tcell.NewRGBColor(140, 140, 160) // Descriptions

	// Notice bar
	RgbNoticeInfoBg  = tcell.NewRGBColor(144, 238, 144) // Light grass green
	RgbNoticeWarnBg  = tcell.NewRGBColor(255, 165, 0)   // Orange
	RgbNoticeErrorBg = tcell.NewRGBColor(200, 50, 50)   // Red
	RgbNoticeText    = tcell.NewRGBColor(0, 0, 0)       // Dark text
)
