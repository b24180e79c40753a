package condition

import (
	"sort"
	"strings"
)

// rule matches a condition text by case-insensitive substring. Lower priority values win.
type rule struct {
	priority int
	category Category
	keywords []string
}

var rules = []rule{
	{priority: 80, category: Clear, keywords: []string{"sunny", "clear"}},
	{priority: 60, category: Cloudy, keywords: []string{"cloudy"}},
	{priority: 50, category: PartlyCloudy, keywords: []string{"partly cloudy", "overcast"}},
	{priority: 30, category: Rain, keywords: []string{"rain", "drizzle", "shower"}},
	{priority: 20, category: Snow, keywords: []string{"snow", "blizzard", "flurries", "sleet", "hail", "ice pellets"}},
	{priority: 10, category: Thunder, keywords: []string{"thunder", "storm", "lightning"}},
	{priority: 40, category: Fog, keywords: []string{"fog", "mist", "haze", "smoke"}},
	{priority: 70, category: Windy, keywords: []string{"windy", "breezy"}},
}

func init() {
	sort.SliceStable(rules, func(i, j int) bool {
		return rules[i].priority < rules[j].priority
	})
}

// ByText classifies a free-text condition description.
//
// Precedence: thunder > snow/ice > rain > fog > partly cloudy/overcast > cloudy > windy > clear.
func ByText(text string) Category {
	text = strings.ToLower(strings.TrimSpace(text))
	if text == "" {
		return Unknown
	}
	for _, r := range rules {
		for _, keyword := range r.keywords {
			if strings.Contains(text, keyword) {
				return r.category
			}
		}
	}
	return Unknown
}
