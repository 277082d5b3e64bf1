package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

type FooterState struct {
	Mode string

	Category    string
	LastUpdated string

	Row       int
	TotalRows int

	StatusMessage string
	Legend        string
}

type FooterStyles struct {
	BarBG      lipgloss.Color
	StatusBG   lipgloss.Color
	ModePillBG lipgloss.Color
	ModePillFG lipgloss.Color
	CategoryFG lipgloss.Color
	TextFG     lipgloss.Color
	DimFG      lipgloss.Color
	StatusFG   lipgloss.Color
	LegendFG   lipgloss.Color
}

func DefaultFooterStyles() FooterStyles {
	return FooterStyles{
		BarBG:      lipgloss.Color("#2b2b2b"),
		StatusBG:   lipgloss.Color("#000000"),
		ModePillBG: lipgloss.Color("#ff9f1c"),
		ModePillFG: lipgloss.Color("#000000"),
		CategoryFG: lipgloss.Color("#e0e0e0"),
		TextFG:     lipgloss.Color("#cfcfcf"),
		DimFG:      lipgloss.Color("#a0a0a0"),
		StatusFG:   lipgloss.Color("#9a9a9a"),
		LegendFG:   lipgloss.Color("#b0b0b0"),
	}
}

func RenderFooter(width int, st FooterState, styles FooterStyles) string {
	if width <= 0 {
		return ""
	}
	if st.Mode == "" {
		st.Mode = "NORMAL"
	}
	if st.Row < 0 {
		st.Row = 0
	}
	if st.TotalRows < 0 {
		st.TotalRows = 0
	}

	return renderControlBar(width, st, styles) + "\n" + renderStatusBar(width, st, styles)
}

// renderControlBar: [MODE] ▸ category · last updated hh:mm:ss ......... Rows r/n
func renderControlBar(width int, st FooterState, styles FooterStyles) string {
	rightPlain := truncatePlain(fmt.Sprintf(" Rows %d/%d", st.Row, st.TotalRows), width)
	leftW := max(width-runeWidth(rightPlain), 0)

	pillPlain := truncatePlain(" "+st.Mode+" ", leftW)
	pillW := runeWidth(pillPlain)
	pill := ansiBg(styles.ModePillBG) + ansiFg(styles.ModePillFG) + pillPlain + ansiBg(styles.BarBG) + ansiFg(styles.TextFG)

	infoW := max(leftW-pillW, 0)
	catPlain := truncatePlain(" ▸ "+strings.TrimSpace(st.Category), infoW)
	updatedPlain := truncatePlain(" · last updated "+st.LastUpdated, infoW-runeWidth(catPlain))
	pad := strings.Repeat(" ", max(infoW-runeWidth(catPlain)-runeWidth(updatedPlain), 0))

	line := pill +
		applyFG(catPlain, styles.CategoryFG, styles.TextFG) +
		applyFG(updatedPlain, styles.DimFG, styles.TextFG) +
		pad + rightPlain
	return applyBar(line, styles.BarBG, styles.TextFG)
}

func renderStatusBar(width int, st FooterState, styles FooterStyles) string {
	legendPlain := truncatePlain(st.Legend, width)
	leftW := max(width-runeWidth(legendPlain), 0)

	msgPlain := padRightPlain(truncatePlain(st.StatusMessage, leftW), leftW)

	line := applyFG(msgPlain, styles.StatusFG, styles.StatusFG) + applyFG(legendPlain, styles.LegendFG, styles.StatusFG)
	return applyBar(line, styles.StatusBG, styles.StatusFG)
}

func applyBar(s string, bg lipgloss.Color, baseFG lipgloss.Color) string {
	return ansiBg(bg) + ansiFg(baseFG) + s + termenv.CSI + termenv.ResetSeq + "m"
}

func applyFG(s string, fg lipgloss.Color, resetFG lipgloss.Color) string {
	return ansiFg(fg) + s + ansiFg(resetFG)
}

func ansiFg(c lipgloss.Color) string {
	return ansiColor(false, c)
}

func ansiBg(c lipgloss.Color) string {
	return ansiColor(true, c)
}

// ansiColor degrades c to the terminal's profile. Colorless terminals get no
// sequence at all.
func ansiColor(isBg bool, c lipgloss.Color) string {
	if c == "" {
		if isBg {
			return termenv.CSI + "49m"
		}
		return termenv.CSI + "39m"
	}
	tc := lipgloss.ColorProfile().Color(string(c))
	if tc == nil {
		return ""
	}
	if _, ok := tc.(termenv.NoColor); ok {
		return ""
	}
	return termenv.CSI + tc.Sequence(isBg) + "m"
}

func padRightPlain(s string, w int) string {
	if w <= 0 {
		return ""
	}
	cur := runeWidth(s)
	if cur >= w {
		return s
	}
	return s + strings.Repeat(" ", w-cur)
}

func truncatePlain(s string, w int) string {
	if w <= 0 {
		return ""
	}
	r := []rune(s)
	if len(r) <= w {
		return s
	}
	return string(r[:w])
}

func runeWidth(s string) int {
	return len([]rune(s))
}
