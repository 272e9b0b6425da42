package viz

import (
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Styles are the lipgloss styles derived from a theme.
type Styles struct {
	Title    lipgloss.Style
	Label    lipgloss.Style
	Value    lipgloss.Style
	Selected lipgloss.Style
	Muted    lipgloss.Style
	KeyHint  lipgloss.Style
	Panel    lipgloss.Style
}

func NewStyles(t Theme) Styles {
	return Styles{
		Title: lipgloss.NewStyle().
			Bold(true).
			Foreground(t.Secondary),
		Label: lipgloss.NewStyle().
			Foreground(t.Muted),
		Value: lipgloss.NewStyle().
			Bold(true).
			Foreground(t.Secondary),
		Selected: lipgloss.NewStyle().
			Bold(true).
			Foreground(t.Primary),
		Muted: lipgloss.NewStyle().
			Foreground(t.Muted),
		KeyHint: lipgloss.NewStyle().
			Foreground(t.Muted).
			Italic(true),
		Panel: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(t.Border).
			Padding(0, 1),
	}
}

// Sparkline renders values as a row of block characters, sampled to width.
func Sparkline(values []float64, width int) string {
	if len(values) == 0 || width <= 0 {
		return strings.Repeat("─", max(width, 0))
	}

	chars := []rune{'▁', '▂', '▃', '▄', '▅', '▆', '▇', '█'}

	lo, hi := values[0], values[0]
	for _, v := range values {
		lo = min(lo, v)
		hi = max(hi, v)
	}
	rng := hi - lo
	if rng == 0 {
		rng = 1
	}

	n := min(width, len(values))
	var sb strings.Builder
	for i := 0; i < n; i++ {
		v := values[i*len(values)/n]
		idx := int(math.Round((v - lo) / rng * float64(len(chars)-1)))
		sb.WriteRune(chars[max(0, min(idx, len(chars)-1))])
	}
	return sb.String()
}

func Separator(width int, s Styles) string {
	mid := width / 2
	left := strings.Repeat("─", max(mid-3, 0))
	right := strings.Repeat("─", max(width-mid-3, 0))
	return s.Muted.Render(left + " ◆ " + right)
}
