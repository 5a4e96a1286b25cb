package components

import (
	"fmt"
	"strings"

	"github.com/mmcdole/todoadmin/internal/tui/styles"
)

// NavTab is one entry of the navbar
type NavTab struct {
	Key   string // Shortcut shown before the label
	Label string
	Count int // -1 when unknown
}

// RenderNavbar renders the screen tabs with the active one highlighted
func RenderNavbar(title string, tabs []NavTab, active int) string {
	parts := []string{styles.TitleStyle.Render(title)}

	for i, tab := range tabs {
		text := tab.Key + " " + tab.Label
		if tab.Count >= 0 {
			text += fmt.Sprintf(" (%d)", tab.Count)
		}
		if i == active {
			parts = append(parts, styles.NavActiveStyle.Render(text))
		} else {
			parts = append(parts, styles.NavInactiveStyle.Render(text))
		}
	}

	return strings.Join(parts, " ")
}
