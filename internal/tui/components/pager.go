package components

import (
	"fmt"

	"github.com/mmcdole/todoadmin/internal/listview"
	"github.com/mmcdole/todoadmin/internal/tui/styles"
)

// RenderPager renders the "‹ prev  Page n of m  next ›" footer.
// Hints are dimmed at the ends; the model itself does not clamp forward.
func RenderPager(meta listview.PageMeta) string {
	prev := styles.DimStyle.Render("‹ prev")
	if meta.HasPrevious {
		prev = styles.AccentStyle.Render("‹ prev")
	}

	next := styles.DimStyle.Render("next ›")
	if meta.HasNext {
		next = styles.AccentStyle.Render("next ›")
	}

	total := meta.TotalPages
	if total < 1 {
		total = 1
	}
	label := fmt.Sprintf("Page %d of %d", meta.CurrentPage, total)
	if meta.CurrentPage > total {
		label = fmt.Sprintf("Page %d (past end of %d)", meta.CurrentPage, total)
	}

	return prev + "  " + styles.SubtitleStyle.Render(label) + "  " + next
}
