package models

import "github.com/julianstephens/myday/internal/constants"

// Palette holds the fixed set of color roles every theme defines.
type Palette struct {
	Bg            string `json:"bg"`
	Surface       string `json:"surface"`
	Primary       string `json:"primary"`
	PrimaryHover  string `json:"primary_hover"`
	Secondary     string `json:"secondary"`
	TextPrimary   string `json:"text_primary"`
	TextSecondary string `json:"text_secondary"`
	Border        string `json:"border"`
}

// Theme is a named palette.
type Theme struct {
	Name   string
	Colors Palette
}

// ThemeNames lists theme keys in menu order.
var ThemeNames = []string{"blush-pink", "moon-night", "indigo", "pastel-dream", "floral-bliss", "cosmic-star"}

var Themes = map[string]Theme{
	"moon-night": {
		Name: "Moon Night",
		Colors: Palette{
			Bg: "#1A1A2E", Surface: "#16213E", Primary: "#9A86E4", PrimaryHover: "#B3A1F2",
			Secondary: "#F3D078", TextPrimary: "#E0E0E0", TextSecondary: "#A0A0A0", Border: "#2D3B5A",
		},
	},
	"blush-pink": {
		Name: "Blush Pink",
		Colors: Palette{
			Bg: "#FFF5F7", Surface: "#FFFFFF", Primary: "#E5A1AD", PrimaryHover: "#D98B9A",
			Secondary: "#FBC4AB", TextPrimary: "#6D435A", TextSecondary: "#9B7E8A", Border: "#F7E8EA",
		},
	},
	"indigo": {
		Name: "Indigo",
		Colors: Palette{
			Bg: "#f7f9fc", Surface: "#ffffff", Primary: "#4f46e5", PrimaryHover: "#4338ca",
			Secondary: "#10b981", TextPrimary: "#1f2937", TextSecondary: "#6b7280", Border: "#e5e7eb",
		},
	},
	"pastel-dream": {
		Name: "Pastel Dream",
		Colors: Palette{
			Bg: "#fdf0f7", Surface: "#ffffff", Primary: "#f4aadd", PrimaryHover: "#e785c8",
			Secondary: "#a2d2ff", TextPrimary: "#5e4d57", TextSecondary: "#8b7a84", Border: "#fce4f4",
		},
	},
	"floral-bliss": {
		Name: "Floral Bliss",
		Colors: Palette{
			Bg: "#fef6e4", Surface: "#fffcf5", Primary: "#f582ae", PrimaryHover: "#f26196",
			Secondary: "#8bd3dd", TextPrimary: "#564434", TextSecondary: "#8a7868", Border: "#fbeedb",
		},
	},
	"cosmic-star": {
		Name: "Cosmic Star",
		Colors: Palette{
			Bg: "#191825", Surface: "#232233", Primary: "#ffa3fd", PrimaryHover: "#ff79fa",
			Secondary: "#8696fe", TextPrimary: "#e0dff0", TextSecondary: "#a19fb9", Border: "#33314a",
		},
	},
}

// ThemeFor returns the named theme, falling back to the default palette.
func ThemeFor(name string) Theme {
	if t, ok := Themes[name]; ok {
		return t
	}
	return Themes[constants.DefaultTheme]
}
