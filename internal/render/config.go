package render

// Layout selects one of the two card presentations. Both consume the
// same Stats; they are alternate views, not stages.
type Layout string

const (
	LayoutAdvanced Layout = "advanced"
	LayoutCompact  Layout = "compact"
)

// DisplayOptions toggles individual card sections. Every option defaults
// to on; only an explicit "false" turns one off.
type DisplayOptions struct {
	ShowName          bool
	ShowRepositories  bool
	ShowFollowers     bool
	ShowStars         bool
	ShowLanguages     bool
	ShowLanguageChart bool
	ShowJoinDate      bool
	ShowLocation      bool
	ShowContributions bool
	ShowCharts        bool
	ShowStreak        bool
}

// CardConfig is immutable for the duration of one render call.
type CardConfig struct {
	Username       string
	Theme          string
	Layout         Layout
	DisplayOptions DisplayOptions
}

// BuildCardConfig constructs a config from request-shaped parameters.
// Absent keys mean "on"; an unknown theme silently resolves to the
// default palette. There is no error path: configuration is always
// constructible.
func BuildCardConfig(username, theme string, rawOptions map[string]string) CardConfig {
	if theme == "" {
		theme = DefaultTheme
	}
	if _, ok := themes[theme]; !ok {
		theme = DefaultTheme
	}

	on := func(key string) bool {
		return rawOptions[key] != "false"
	}

	layout := LayoutAdvanced
	if rawOptions["layout"] == string(LayoutCompact) {
		layout = LayoutCompact
	}

	return CardConfig{
		Username: username,
		Theme:    theme,
		Layout:   layout,
		DisplayOptions: DisplayOptions{
			ShowName:          on("showName"),
			ShowRepositories:  on("showRepositories"),
			ShowFollowers:     on("showFollowers"),
			ShowStars:         on("showStars"),
			ShowLanguages:     on("showLanguages"),
			ShowLanguageChart: on("showLanguageChart"),
			ShowJoinDate:      on("showJoinDate"),
			ShowLocation:      on("showLocation"),
			ShowContributions: on("showContributions"),
			ShowCharts:        on("showCharts"),
			ShowStreak:        on("showStreak"),
		},
	}
}
