package cli

import (
	"fmt"
	"slices"
	"strconv"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/matzehuels/techradar/pkg/layout"
)

var (
	listDimStyle    = lipgloss.NewStyle().Foreground(colorDim)
	listDetailStyle = lipgloss.NewStyle().Foreground(colorGray).PaddingLeft(2)
)

// =============================================================================
// InspectModel - Interactive placement browser
// =============================================================================

// blipFilter selects which blips the inspector lists.
type blipFilter int

const (
	filterAll blipFilter = iota
	filterPlaced
	filterSkipped
)

func (f blipFilter) String() string {
	switch f {
	case filterPlaced:
		return "placed"
	case filterSkipped:
		return "skipped"
	default:
		return "all"
	}
}

// inspectRow is one blip outcome as listed by the inspector.
type inspectRow struct {
	ID      int
	Name    string
	Segment string
	Ring    string
	RingIdx int
	Placed  bool
	Detail  string
}

// InspectModel is the bubbletea model behind "techradar inspect".
type InspectModel struct {
	Title  string
	Rows   []inspectRow
	Filter blipFilter
	Cursor int
	Offset int
	Height int
}

// NewInspectModel lists the placed and skipped blips of doc by id.
func NewInspectModel(doc layout.Document) InspectModel {
	rings := ringOrder(doc)
	rows := make([]inspectRow, 0, len(doc.Blips)+len(doc.Skipped))
	for _, b := range doc.Blips {
		detail := fmt.Sprintf("x %.1f  y %.1f  ⌀ %.1f  %d attempts", b.X, b.Y, b.Diameter, b.Attempts)
		if b.Shrinks > 0 {
			detail += fmt.Sprintf("  %d shrinks", b.Shrinks)
		}
		rows = append(rows, inspectRow{
			ID:      b.ID,
			Name:    b.Name,
			Segment: segmentPath(b.Segment, b.SubSegment),
			Ring:    b.Ring,
			RingIdx: slices.Index(rings, b.Ring),
			Placed:  true,
			Detail:  detail,
		})
	}
	for _, s := range doc.Skipped {
		rows = append(rows, inspectRow{
			ID:      s.ID,
			Name:    s.Name,
			Segment: segmentPath(s.Segment, s.SubSegment),
			Ring:    s.Ring,
			RingIdx: slices.Index(rings, s.Ring),
			Detail:  "not placed: " + s.Reason,
		})
	}
	slices.SortFunc(rows, func(a, b inspectRow) int { return a.ID - b.ID })

	return InspectModel{Title: doc.Title, Rows: rows, Height: 15}
}

// ringOrder returns ring labels from the innermost band outwards.
func ringOrder(doc layout.Document) []string {
	var rings []string
	for _, r := range doc.Regions {
		if r.Kind == "ring" && !slices.Contains(rings, r.Label) {
			rings = append(rings, r.Label)
		}
	}
	return rings
}

func segmentPath(segment, sub string) string {
	if sub == "" {
		return segment
	}
	return segment + " / " + sub
}

// visible returns the rows matching the current filter.
func (m InspectModel) visible() []inspectRow {
	if m.Filter == filterAll {
		return m.Rows
	}
	var out []inspectRow
	for _, r := range m.Rows {
		if r.Placed == (m.Filter == filterPlaced) {
			out = append(out, r)
		}
	}
	return out
}

func (m InspectModel) Init() tea.Cmd {
	return nil
}

func (m InspectModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	n := len(m.visible())
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case "up", "k":
			if m.Cursor > 0 {
				m.Cursor--
			}
		case "down", "j":
			if m.Cursor < n-1 {
				m.Cursor++
			}
		case "home", "g":
			m.Cursor = 0
		case "end", "G":
			m.Cursor = max(n-1, 0)
		case "tab", "f":
			m.Filter = (m.Filter + 1) % 3
			m.Cursor, m.Offset = 0, 0
			return m, nil
		}
	case tea.WindowSizeMsg:
		m.Height = max(msg.Height-9, 5)
	}

	if m.Cursor < m.Offset {
		m.Offset = m.Cursor
	}
	if m.Cursor >= m.Offset+m.Height {
		m.Offset = m.Cursor - m.Height + 1
	}
	return m, nil
}

func (m InspectModel) View() string {
	var b strings.Builder

	title := "Radar"
	if m.Title != "" {
		title = m.Title
	}
	b.WriteString(StyleTitle.Render(title))
	b.WriteString("  ")
	b.WriteString(listDimStyle.Render("showing " + m.Filter.String()))
	b.WriteString("\n")
	b.WriteString(listDimStyle.Render("↑/↓ navigate  tab filter  q quit"))
	b.WriteString("\n\n")

	rows := m.visible()
	if len(rows) == 0 {
		b.WriteString(listDimStyle.Render("  no blips"))
		b.WriteString("\n")
		return b.String()
	}

	end := min(m.Offset+m.Height, len(rows))
	data := make([][]string, 0, end-m.Offset)
	for i := m.Offset; i < end; i++ {
		r := rows[i]
		cursor := "  "
		if i == m.Cursor {
			cursor = "▸ "
		}
		status := StyleSuccess.Render(iconSuccess)
		if !r.Placed {
			status = StyleWarning.Render(iconWarning)
		}
		data = append(data, []string{cursor, strconv.Itoa(r.ID), r.Name, r.Segment, r.Ring, status})
	}

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorDim)).
		Headers("", "ID", "Name", "Segment", "Ring", "").
		Rows(data...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return styleHeader
			}
			idx := m.Offset + row
			if idx >= len(rows) {
				return lipgloss.NewStyle()
			}
			r := rows[idx]
			base := lipgloss.NewStyle()
			if col == 4 {
				base = base.Foreground(ringColor(r.RingIdx))
			} else if !r.Placed {
				base = base.Foreground(colorDim)
			}
			if idx == m.Cursor {
				base = base.Bold(true)
				if col != 4 && r.Placed {
					base = base.Foreground(colorCyan)
				}
			}
			return base
		})

	b.WriteString(t.Render())
	b.WriteString("\n")
	b.WriteString(listDetailStyle.Render(rows[m.Cursor].Detail))
	b.WriteString("\n\n")
	b.WriteString(listDimStyle.Render(fmt.Sprintf("  [%d/%d]", m.Cursor+1, len(rows))))
	return b.String()
}
