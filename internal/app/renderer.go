package app

import (
	"fmt"
	"math"
	"sort"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/chmouel/floatbar/internal/searchbar"
	"github.com/chmouel/floatbar/internal/theme"
)

const (
	glyphHamburger = "☰"
	glyphArrow     = "←"
	glyphSearch    = "⌕"
	glyphClear     = "✕"
	glyphOverflow  = "⋮"

	drawerMaxWidth = 24
	eventRows      = 6
	barTop         = 1
)

// View renders the bar, the drawer and any open screen.
func (m *Model) View() string {
	if m.quitting {
		return ""
	}
	if m.width == 0 || m.height == 0 {
		return "Loading..."
	}

	sections := []string{"", m.renderBar(), m.renderStatus(), m.renderEvents()}
	base := lipgloss.JoinVertical(lipgloss.Left, sections...)
	base = padToHeight(base, m.height-1)
	base = lipgloss.JoinVertical(lipgloss.Left, base, m.renderFooter())

	if panel := m.renderDrawer(); panel != "" {
		base = overlayAt(base, panel, barTop+3, 0)
	}
	if m.screens.IsActive() {
		return m.overlayPopup(base, m.screens.Current().View(), 3)
	}
	return base
}

// segment is a piece of the bar row starting at a fixed column.
type segment struct {
	col  int
	text string
}

// renderBar draws the card: left slot, query input, clear button and menu.
func (m *Model) renderBar() string {
	w := m.barWidth()
	if w <= 0 {
		return ""
	}
	ctrl := m.s.ctrl
	vis := ctrl.Visual()
	style := ctrl.Style()
	drv := m.s.driver

	leftW := dpToColumns(searchbar.LeftActionWidthAndMarginDp)
	inputTx := round(drv.ValueOr(searchbar.TargetInputSection, searchbar.PropTranslationX, float64(vis.InputTranslationX)))
	start := min(w, max(0, leftW+inputTx))
	end := max(start, w-vis.InputPaddingRight)

	var segs []segment
	if left := m.renderLeftSlot(leftW); start > 0 {
		segs = append(segs, segment{col: 0, text: ansi.Truncate(left, start, "")})
	}
	segs = append(segs, segment{col: start, text: m.s.field.view(end - start)})

	if drv.Visibility(searchbar.TargetClearButton) == searchbar.Visible && vis.ClearButton == searchbar.Visible {
		clearW := dpToColumns(searchbar.ClearButtonWidthDp)
		tx := round(drv.ValueOr(searchbar.TargetClearButton, searchbar.PropTranslationX, float64(vis.ClearButtonTranslationX)))
		st := lipgloss.NewStyle().Foreground(theme.Lip(style.ClearButtonColor))
		if drv.ValueOr(searchbar.TargetClearButton, searchbar.PropAlpha, 1) < 0.5 {
			st = st.Faint(true)
		}
		segs = append(segs, segment{col: w - clearW + tx, text: fitWidth(" "+st.Render(glyphClear), clearW)})
	}

	if menu := m.renderMenu(); menu != "" {
		segs = append(segs, segment{col: w - lipgloss.Width(menu), text: menu})
	}

	row := composeRow(segs, w)
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(m.thm.Border).
		Background(theme.Lip(style.BackgroundColor)).
		MarginLeft(1).
		Render(row)
}

func (m *Model) renderLeftSlot(width int) string {
	ctrl := m.s.ctrl
	drv := m.s.driver
	style := ctrl.Style()

	if ctrl.State().ProgressShown {
		return fitWidth(" "+m.spinner.View(), width)
	}
	if drv.Visibility(searchbar.TargetLeftAction) != searchbar.Visible {
		return strings.Repeat(" ", width)
	}

	vis := ctrl.Visual()
	var glyph string
	switch vis.Icon {
	case searchbar.IconMenuArrow:
		glyph = glyphHamburger
		if drv.ValueOr(searchbar.TargetLeftAction, searchbar.PropProgress, vis.MorphProgress) >= 0.5 {
			glyph = glyphArrow
		}
	case searchbar.IconSearch:
		glyph = glyphSearch
	case searchbar.IconBackArrow:
		glyph = glyphArrow
	default:
		return strings.Repeat(" ", width)
	}

	st := lipgloss.NewStyle().Foreground(theme.Lip(style.LeftActionColor))
	alpha := drv.ValueOr(searchbar.TargetLeftAction, searchbar.PropAlpha, 1)
	scale := drv.ValueOr(searchbar.TargetLeftAction, searchbar.PropScale, 1)
	if alpha < 0.5 || scale < 0.75 {
		st = st.Faint(true)
	}
	if math.Abs(drv.ValueOr(searchbar.TargetLeftAction, searchbar.PropRotation, 0)) >= 22.5 {
		st = st.Italic(true)
	}
	shift := round(drv.ValueOr(searchbar.TargetLeftAction, searchbar.PropTranslationX, 0))
	pad := min(width-2, max(0, 1+shift))
	return fitWidth(strings.Repeat(" ", pad)+st.Render(glyph), width)
}

// renderMenu draws the action cells and the overflow button.
func (m *Model) renderMenu() string {
	mw := m.s.menu
	icon := lipgloss.NewStyle().Foreground(theme.Lip(mw.ActionIconColor()))
	var b strings.Builder
	for _, it := range mw.Actions() {
		glyph := it.Icon
		if glyph == "" {
			glyph = string([]rune(it.Title + "?")[0])
		}
		b.WriteString(fitWidth(" "+icon.Render(glyph), menuCellWidth))
	}
	if mw.HasOverflow() {
		over := lipgloss.NewStyle().Foreground(theme.Lip(mw.OverflowColor()))
		b.WriteString(fitWidth(" "+over.Render(glyphOverflow), menuCellWidth))
	}
	return b.String()
}

func (m *Model) renderStatus() string {
	ctrl := m.s.ctrl
	st := ctrl.State()
	parts := []string{"mode " + st.LeftActionMode.String()}
	if st.Focused {
		parts = append(parts, "focused")
	}
	if st.TitleMode {
		parts = append(parts, "title")
	}
	if st.MenuOpen {
		parts = append(parts, "menu open")
	}
	if m.rotations > 0 {
		parts = append(parts, fmt.Sprintf("recreated ×%d", m.rotations))
	}
	line := lipgloss.NewStyle().Foreground(m.thm.MutedFg).Render(strings.Join(parts, " · "))
	if m.status != "" {
		line += "  " + lipgloss.NewStyle().Foreground(m.thm.SuccessFg).Render(m.status)
	}
	return " " + fitWidth(line, max(0, m.width-1))
}

func (m *Model) renderEvents() string {
	entries := m.events.last(eventRows)
	if len(entries) == 0 {
		return ""
	}
	st := lipgloss.NewStyle().Foreground(m.thm.HintFg)
	lines := make([]string, 0, len(entries))
	for _, e := range entries {
		lines = append(lines, " "+st.Render(fitWidth(e, max(0, m.width-1))))
	}
	return strings.Join(lines, "\n")
}

func (m *Model) renderFooter() string {
	return " " + m.help.ShortHelpView(m.keys.ShortHelp())
}

// renderDrawer draws the part of the drawer panel slid into view.
func (m *Model) renderDrawer() string {
	off := m.s.drawer.Offset()
	if off <= 0 {
		return ""
	}
	full := min(drawerMaxWidth, m.width/2)
	shown := round(off * float64(full))
	if shown <= 0 {
		return ""
	}

	row := lipgloss.NewStyle().Width(full - 2).Foreground(m.thm.TextFg)
	sel := row.Foreground(m.thm.AccentFg).Background(m.thm.Accent)
	lines := make([]string, 0, len(m.s.drawer.items))
	for i, it := range m.s.drawer.items {
		text := " " + ansi.Truncate(it, full-3, "…")
		if i == m.s.drawer.cursor {
			lines = append(lines, sel.Render(text))
		} else {
			lines = append(lines, row.Render(text))
		}
	}
	panel := lipgloss.NewStyle().
		Border(lipgloss.NormalBorder(), false, true, false, false).
		BorderForeground(m.thm.Border).
		Render(strings.Join(lines, "\n"))

	if shown >= full {
		return panel
	}
	out := strings.Split(panel, "\n")
	for i, l := range out {
		out[i] = ansi.TruncateLeft(l, full-shown, "")
	}
	return strings.Join(out, "\n")
}

// overlayPopup centres popup over base starting at marginTop.
func (m *Model) overlayPopup(base, popup string, marginTop int) string {
	if base == "" || popup == "" {
		return base
	}
	baseWidth := lipgloss.Width(strings.SplitN(base, "\n", 2)[0])
	popupWidth := lipgloss.Width(strings.SplitN(popup, "\n", 2)[0])
	return overlayAt(base, popup, marginTop, max((max(baseWidth, m.width)-popupWidth)/2, 0))
}

// overlayAt draws popup over base with its top-left corner at (row, col),
// keeping what lies left and right of it.
func overlayAt(base, popup string, row, col int) string {
	baseLines := strings.Split(base, "\n")
	popupLines := strings.Split(popup, "\n")
	popupWidth := lipgloss.Width(popupLines[0])

	for i, line := range popupLines {
		r := row + i
		if r >= len(baseLines) {
			break
		}
		leftPart := ansi.Truncate(baseLines[r], col, "")
		if w := lipgloss.Width(leftPart); w < col {
			leftPart += strings.Repeat(" ", col-w)
		}
		rightPart := ansi.TruncateLeft(baseLines[r], col+popupWidth, "")
		baseLines[r] = leftPart + line + rightPart
	}
	return strings.Join(baseLines, "\n")
}

// composeRow lays segments out left to right in width columns. A segment
// starting inside the previous one is cut to fit.
func composeRow(segs []segment, width int) string {
	sort.SliceStable(segs, func(i, j int) bool { return segs[i].col < segs[j].col })
	var b strings.Builder
	pos := 0
	for i, s := range segs {
		if s.col >= width {
			break
		}
		if s.col > pos {
			b.WriteString(strings.Repeat(" ", s.col-pos))
			pos = s.col
		}
		text := s.text
		if s.col < pos {
			text = ansi.TruncateLeft(text, pos-s.col, "")
		}
		limit := width
		if i+1 < len(segs) && segs[i+1].col > pos {
			limit = min(width, segs[i+1].col)
		}
		text = ansi.Truncate(text, limit-pos, "")
		b.WriteString(text)
		pos += lipgloss.Width(text)
	}
	if pos < width {
		b.WriteString(strings.Repeat(" ", width-pos))
	}
	return b.String()
}

// fitWidth truncates or pads s to exactly width columns.
func fitWidth(s string, width int) string {
	if width <= 0 {
		return ""
	}
	s = ansi.Truncate(s, width, "")
	if w := lipgloss.Width(s); w < width {
		s += strings.Repeat(" ", width-w)
	}
	return s
}

// padToHeight truncates or pads s to exactly lines rows.
func padToHeight(s string, lines int) string {
	if lines <= 0 {
		return ""
	}
	rows := strings.Split(s, "\n")
	if len(rows) > lines {
		rows = rows[:lines]
	}
	for len(rows) < lines {
		rows = append(rows, "")
	}
	return strings.Join(rows, "\n")
}

func round(v float64) int {
	return int(math.Round(v))
}
