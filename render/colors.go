package render

import "github.com/gdamore/tcell/v2"

// RGB is a 24-bit color
type RGB struct {
	R, G, B uint8
}

// Tcell converts to a true-color tcell value
func (c RGB) Tcell() tcell.Color {
	return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
}

// Palette
var (
	RgbBackground = RGB{26, 27, 38}
	RgbHUD        = RGB{192, 202, 245}
	RgbHUDWarn    = RGB{247, 118, 142}
	RgbGrain      = RGB{255, 250, 240}
	RgbSpout      = RGB{255, 165, 144}
	RgbBucket     = RGB{224, 175, 104}
	RgbBucketText = RGB{158, 206, 106}
	RgbMessage    = RGB{255, 215, 0}
	RgbBanner     = RGB{187, 154, 247}
)

// NamedColor resolves a level color name ("red", "#ff8800") with white as fallback
func NamedColor(name string) tcell.Color {
	if c := tcell.GetColor(name); c != tcell.ColorDefault {
		return c
	}
	return tcell.ColorWhite
}
