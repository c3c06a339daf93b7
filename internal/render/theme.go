package render

// Palette maps semantic color roles to hex values for one theme.
type Palette struct {
	Bg              string
	Card            string
	CardLight       string
	Text            string
	TextLight       string
	Accent          string
	Highlight       string
	Border          string
	BorderGradient1 string
	BorderGradient2 string
	Success         string
	Warning         string
	Danger          string
	Orange          string
	Purple          string
	Yellow          string
}

// DefaultTheme is used whenever a requested theme name is unknown.
const DefaultTheme = "dark"

// themes is constructed once and never mutated.
var themes = map[string]Palette{
	"dark": {
		Bg:              "#0d1117",
		Card:            "#161b22",
		CardLight:       "#21262d",
		Text:            "#c9d1d9",
		TextLight:       "#8b949e",
		Accent:          "#30363d",
		Highlight:       "#58a6ff",
		Border:          "#30363d",
		BorderGradient1: "#58a6ff",
		BorderGradient2: "#3fb950",
		Success:         "#3fb950",
		Warning:         "#d29922",
		Danger:          "#f85149",
		Orange:          "#ff7b72",
		Purple:          "#bc8cff",
		Yellow:          "#f0c800",
	},
	"light": {
		Bg:              "#ffffff",
		Card:            "#f6f8fa",
		CardLight:       "#eaeef2",
		Text:            "#24292f",
		TextLight:       "#57606a",
		Accent:          "#d0d7de",
		Highlight:       "#0969da",
		Border:          "#d0d7de",
		BorderGradient1: "#0969da",
		BorderGradient2: "#1a7f37",
		Success:         "#1a7f37",
		Warning:         "#9e6a03",
		Danger:          "#d1242f",
		Orange:          "#d1242f",
		Purple:          "#8250df",
		Yellow:          "#bf8700",
	},
	"neon": {
		Bg:              "#0a0e27",
		Card:            "#1a1f3a",
		CardLight:       "#252d4d",
		Text:            "#00ff88",
		TextLight:       "#00cc66",
		Accent:          "#ff006e",
		Highlight:       "#00d9ff",
		Border:          "#ff006e",
		BorderGradient1: "#00d9ff",
		BorderGradient2: "#00ff88",
		Success:         "#00ff88",
		Warning:         "#ffaa00",
		Danger:          "#ff0055",
		Orange:          "#ff6600",
		Purple:          "#cc00ff",
		Yellow:          "#ffdd00",
	},
	"ocean": {
		Bg:              "#0c1e3a",
		Card:            "#1a3a52",
		CardLight:       "#244863",
		Text:            "#a8d8f0",
		TextLight:       "#7ab8d8",
		Accent:          "#2a6a8a",
		Highlight:       "#4db8ff",
		Border:          "#4db8ff",
		BorderGradient1: "#4db8ff",
		BorderGradient2: "#2dd4a4",
		Success:         "#2dd4a4",
		Warning:         "#ffa500",
		Danger:          "#ff6b6b",
		Orange:          "#ff8c42",
		Purple:          "#9b72ff",
		Yellow:          "#ffd700",
	},
	"tokyo": {
		Bg:              "#1a1b26",
		Card:            "#292e42",
		CardLight:       "#3e4451",
		Text:            "#9da5b4",
		TextLight:       "#7e8490",
		Accent:          "#3b4261",
		Highlight:       "#7aa2f7",
		Border:          "#3b4261",
		BorderGradient1: "#7aa2f7",
		BorderGradient2: "#9ece6a",
		Success:         "#9ece6a",
		Warning:         "#e0af68",
		Danger:          "#f7768e",
		Orange:          "#ff9e64",
		Purple:          "#bb9af7",
		Yellow:          "#e0af68",
	},
	"dracula": {
		Bg:              "#282a36",
		Card:            "#21222c",
		CardLight:       "#44475a",
		Text:            "#f8f8f2",
		TextLight:       "#bcc7d0",
		Accent:          "#44475a",
		Highlight:       "#ff79c6",
		Border:          "#44475a",
		BorderGradient1: "#ff79c6",
		BorderGradient2: "#50fa7b",
		Success:         "#50fa7b",
		Warning:         "#f1fa8c",
		Danger:          "#ff5555",
		Orange:          "#ffb86c",
		Purple:          "#bd93f9",
		Yellow:          "#f1fa8c",
	},
}

// ThemePalette resolves a theme name, falling back to the default for
// unknown names.
func ThemePalette(name string) Palette {
	if p, ok := themes[name]; ok {
		return p
	}
	return themes[DefaultTheme]
}

// ThemeNames lists the recognized theme identifiers.
func ThemeNames() []string {
	return []string{"dark", "light", "neon", "ocean", "tokyo", "dracula"}
}

// LanguageColor returns the swatch color for a language name. Well-known
// languages use their conventional colors (or a theme role); everything
// else falls back to the theme highlight.
func (p Palette) LanguageColor(language string) string {
	switch language {
	case "HTML":
		return p.Orange
	case "TypeScript":
		return p.Highlight
	case "JavaScript":
		return p.Yellow
	case "CSS":
		return p.Purple
	case "C++":
		return "#f54281"
	case "C":
		return p.TextLight
	case "Python":
		return "#3572A5"
	case "Java":
		return "#b07219"
	case "Go":
		return "#00ADD8"
	case "Rust":
		return "#dea584"
	default:
		return p.Highlight
	}
}
