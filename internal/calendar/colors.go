package calendar

import (
	"github.com/hilbertsen/teamcal/internal/models"
	"github.com/lucasb-eyer/go-colorful"
)

type Colors struct {
	Primary   string
	Secondary string
}

// DefaultColors is used for events without a team.
var DefaultColors = Colors{Primary: "#ffffff", Secondary: "#aaaaaa"}

// TeamColors returns the team's colors normalised to #rrggbb. Missing or
// unparsable colors fall back to DefaultColors.
func TeamColors(team *models.Team) Colors {
	if team == nil {
		return DefaultColors
	}
	return Colors{
		Primary:   normalize(team.PrimaryColor, DefaultColors.Primary),
		Secondary: normalize(team.SecondaryColor, DefaultColors.Secondary),
	}
}

func normalize(hex, fallback string) string {
	c, err := colorful.Hex(hex)
	if err != nil {
		return fallback
	}
	return c.Clamped().Hex()
}

// RGB returns the 8-bit channels of a hex color.
func RGB(hex string) (r, g, b uint8, ok bool) {
	c, err := colorful.Hex(hex)
	if err != nil {
		return 0, 0, 0, false
	}
	r, g, b = c.Clamped().RGB255()
	return r, g, b, true
}

// Readable returns black or white, whichever reads better on background.
func Readable(background string) string {
	c, err := colorful.Hex(background)
	if err != nil {
		return "#000000"
	}
	l, _, _ := c.Lab()
	if l > 0.6 {
		return "#000000"
	}
	return "#ffffff"
}
