package analytics

import (
	"strings"

	"github.com/avelorn/chronline/internal/domain"
)

// CategoryRule maps an app-name substring to a category label. Rules are
// evaluated in slice order and the first match wins, so the position of a
// rule is part of the contract: an app name matching several patterns always
// resolves to the earliest one.
type CategoryRule struct {
	Pattern string
	Label   string
}

// DefaultRules returns the built-in rule table. The order is fixed: within a
// category the patterns keep their listed order, and categories are evaluated
// Social Media first through Education last.
func DefaultRules() []CategoryRule {
	groups := []struct {
		label    string
		patterns []string
	}{
		{domain.CategorySocialMedia, []string{
			"instagram", "facebook", "twitter", "x.com", "tiktok", "snapchat",
			"linkedin", "reddit", "pinterest", "whatsapp", "telegram", "discord",
			"youtube", "twitch", "messenger", "wechat", "line", "viber",
		}},
		{domain.CategoryProductivity, []string{
			"gmail", "outlook", "slack", "notion", "trello", "asana", "todoist",
			"calendar", "notes", "reminders", "evernote", "onenote", "google docs",
			"sheets", "drive", "dropbox", "zoom", "teams", "meet",
		}},
		{"Entertainment", []string{
			"netflix", "spotify", "apple music", "disney", "hulu", "prime video",
			"hbo", "paramount", "peacock", "crunchyroll", "plex", "vudu",
		}},
		{"Gaming", []string{
			"game", "play", "roblox", "minecraft", "fortnite", "pubg", "cod",
			"among us", "candy crush", "clash", "pokemon go",
		}},
		{"News", []string{
			"news", "cnn", "bbc", "reuters", "nytimes", "washington post",
			"the guardian", "bloomberg", "wsj", "economist",
		}},
		{"Shopping", []string{
			"amazon", "ebay", "etsy", "shopify", "wish", "alibaba", "target",
			"walmart", "best buy", "zara", "nike", "adidas",
		}},
		{"Health & Fitness", []string{
			"fitness", "workout", "myfitnesspal", "strava", "nike run", "fitbit",
			"apple health", "calm", "headspace", "meditation", "yoga",
		}},
		{"Education", []string{
			"coursera", "udemy", "khan academy", "duolingo", "quizlet", "ted",
			"skillshare", "masterclass", "edx",
		}},
	}

	var rules []CategoryRule
	for _, g := range groups {
		for _, p := range g.patterns {
			rules = append(rules, CategoryRule{Pattern: p, Label: g.label})
		}
	}
	return rules
}

// Categorize resolves the category for one entry. An explicit caller-supplied
// category always wins; otherwise the lowercased app name is matched against
// the rules in order, falling back to Other. Total: an empty app name simply
// matches nothing.
func Categorize(rules []CategoryRule, e domain.Entry) string {
	if e.Category != "" {
		return e.Category
	}
	app := strings.ToLower(e.App)
	for _, r := range rules {
		if strings.Contains(app, r.Pattern) {
			return r.Label
		}
	}
	return domain.CategoryOther
}
