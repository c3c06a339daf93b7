package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"
	"time"

	"github-insights/internal/adapter/github"
	"github-insights/internal/render"
	"github-insights/internal/service"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
)

func main() {
	_ = godotenv.Load()

	var (
		user   string
		theme  string
		layout string
		format string
		output string
	)

	flag.StringVar(&user, "user", "", "GitHub username")
	flag.StringVar(&theme, "theme", "dark", "theme name: "+strings.Join(render.ThemeNames(), ", "))
	flag.StringVar(&layout, "layout", "advanced", "card layout: advanced or compact")
	flag.StringVar(&format, "format", "svg", "output format: svg or png")
	flag.StringVar(&output, "out", "", "output file path (default <user>.<format>)")
	flag.Parse()

	if user == "" {
		logrus.Fatal("missing required flag: -user")
	}
	if format != "svg" && format != "png" {
		logrus.Fatalf("unknown format %q, want svg or png", format)
	}
	if output == "" {
		output = user + "." + format
	}

	token := os.Getenv("GITHUB_TOKEN")
	if token == "" {
		logrus.Warn("GITHUB_TOKEN not set, using unauthenticated GitHub API (rate limited)")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
	defer cancel()

	provider := github.NewProvider(token)
	insights := service.NewInsightsService(provider)

	stats, profile, err := insights.Aggregate(ctx, user)
	if err != nil {
		logrus.WithError(err).Fatalf("failed to aggregate stats for %q", user)
	}

	cfg := render.BuildCardConfig(user, theme, map[string]string{"layout": layout})
	svg := render.Render(stats, cfg, profile)

	data := []byte(svg)
	if format == "png" {
		data, err = render.RenderPNG(svg)
		if err != nil {
			logrus.WithError(err).Fatal("failed to rasterize card")
		}
	}

	if err := os.WriteFile(output, data, 0o644); err != nil {
		logrus.WithError(err).Fatalf("failed to write %s", output)
	}

	fmt.Printf("wrote %s card for %q to %s (theme %s)\n", format, user, output, cfg.Theme)
}
