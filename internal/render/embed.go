package render

import (
	"fmt"
	"strings"

	"github-insights/internal/domain"
)

// EmbedCode is the ready-to-paste snippet triple for one card.
type EmbedCode struct {
	Markdown string `json:"markdown"`
	HTML     string `json:"html"`
	SVG      string `json:"svg"`
}

// BuildEmbedCodes wraps the card's image URL in Markdown and HTML
// templates and includes the literal rendered SVG. The renderer is
// invoked exactly once.
func BuildEmbedCodes(stats *domain.Stats, cfg CardConfig, baseURL string, user *domain.User) EmbedCode {
	imageURL := fmt.Sprintf("%s/api/insights/%s?theme=%s",
		strings.TrimRight(baseURL, "/"), cfg.Username, cfg.Theme)

	markdown := fmt.Sprintf("<div align=\"center\">\n  <img src=%q alt=\"%s GitHub Stats\" />\n</div>",
		imageURL, cfg.Username)
	html := fmt.Sprintf("<div align=\"center\">\n  <img src=%q alt=\"%s GitHub Stats\" width=\"800\" />\n</div>",
		imageURL, cfg.Username)

	return EmbedCode{
		Markdown: markdown,
		HTML:     html,
		SVG:      Render(stats, cfg, user),
	}
}
