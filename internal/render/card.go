package render

import (
	"github-insights/internal/domain"
)

// BuildScene composes the card scene for the selected layout. It is a
// pure function of its inputs: no network, no clock, no randomness.
// user may be nil; sections needing profile fields are simply omitted.
func BuildScene(stats *domain.Stats, cfg CardConfig, user *domain.User) *Scene {
	if cfg.Layout == LayoutCompact {
		return buildCompactScene(stats, cfg, user)
	}
	return buildAdvancedScene(stats, cfg, user)
}

// Render serializes the card scene to SVG text. Calling it twice with
// identical inputs produces byte-identical output.
func Render(stats *domain.Stats, cfg CardConfig, user *domain.User) string {
	return BuildScene(stats, cfg, user).SVG()
}
