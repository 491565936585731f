// Package tui implements the full-screen sequence viewer behind `seqtools
// view`: scrollable alignment area with a column ruler, per-residue
// coloring, and a help overlay.
package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/aalvaropc/seqtools/internal/domain"
)

const idColumnWidth = 12

type model struct {
	theme Theme
	deps  Deps
	keys  keyMap
	help  help.Model

	title string
	ids   []string
	seqs  []string
	ruler string

	maxLen int
	nseqs  int

	xscroll int
	yscroll int
	width   int
	height  int

	alphabet    Alphabet
	dark        bool
	showHelp    bool
	highlightBG bool
}

// Run shows the viewer over the given records and blocks until quit. The
// viewer is the one consumer that materializes the whole stream: scrolling
// both ways needs every record in memory.
func Run(deps Deps, title string, records []domain.Record) error {
	m := newModel(deps, title, records)
	if deps.Logger != nil {
		deps.Logger.Info("view.start", "title", title, "records", len(records))
	}
	_, err := tea.NewProgram(m, tea.WithAltScreen()).Run()
	return err
}

func newModel(deps Deps, title string, records []domain.Record) model {
	ids := make([]string, 0, len(records))
	seqs := make([]string, 0, len(records))
	maxLen := 0
	for _, rec := range records {
		ids = append(ids, rec.ID)
		seqs = append(seqs, string(rec.Sequence))
		if len(rec.Sequence) > maxLen {
			maxLen = len(rec.Sequence)
		}
	}

	return model{
		theme:       DefaultTheme(),
		deps:        deps,
		keys:        defaultKeyMap(),
		help:        help.New(),
		title:       title,
		ids:         ids,
		seqs:        seqs,
		ruler:       buildRuler(maxLen),
		maxLen:      maxLen,
		nseqs:       len(seqs),
		alphabet:    DetectAlphabet(seqs),
		dark:        true,
		highlightBG: true,
	}
}

// buildRuler marks every tenth column with its ordinal.
func buildRuler(maxLen int) string {
	var b strings.Builder
	b.WriteByte(' ')
	for i := 1; i <= maxLen; {
		if i%10 == 0 {
			label := fmt.Sprintf("%d", i)
			b.WriteString(label)
			i += len(label)
			continue
		}
		b.WriteByte(' ')
		i++
	}
	return b.String()
}

func (m model) Init() tea.Cmd { return nil }

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.help.Width = msg.Width
		m.clampScroll()
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, m.keys.Up):
			m.yscroll--
		case key.Matches(msg, m.keys.Down):
			m.yscroll++
		case key.Matches(msg, m.keys.Left):
			m.xscroll--
		case key.Matches(msg, m.keys.Right):
			m.xscroll++
		case key.Matches(msg, m.keys.Top):
			m.yscroll = 0
		case key.Matches(msg, m.keys.Bottom):
			m.yscroll = m.nseqs
		case key.Matches(msg, m.keys.LineStart):
			m.xscroll = 0
		case key.Matches(msg, m.keys.LineEnd):
			m.xscroll = m.maxLen
		case key.Matches(msg, m.keys.Theme):
			m.dark = !m.dark
		case key.Matches(msg, m.keys.Highlight):
			m.highlightBG = !m.highlightBG
		case key.Matches(msg, m.keys.Help):
			m.showHelp = !m.showHelp
			m.help.ShowAll = m.showHelp
		}
		m.clampScroll()
		return m, nil
	}
	return m, nil
}

func (m *model) clampScroll() {
	maxY := m.nseqs - m.bodyHeight()
	if maxY < 0 {
		maxY = 0
	}
	if m.yscroll > maxY {
		m.yscroll = maxY
	}
	if m.yscroll < 0 {
		m.yscroll = 0
	}

	maxX := m.maxLen - m.bodyWidth()
	if maxX < 0 {
		maxX = 0
	}
	if m.xscroll > maxX {
		m.xscroll = maxX
	}
	if m.xscroll < 0 {
		m.xscroll = 0
	}
}

// bodyHeight is the number of sequence rows that fit under the title and
// ruler, above the help line.
func (m model) bodyHeight() int {
	h := m.height - 6
	if h < 1 {
		h = 1
	}
	return h
}

func (m model) bodyWidth() int {
	w := m.width - idColumnWidth - 4
	if w < 1 {
		w = 1
	}
	return w
}

func (m model) View() string {
	header := m.theme.Title.Render(m.title) + "\n" +
		m.theme.Subtitle.Render(fmt.Sprintf("%d sequences, longest %d", m.nseqs, m.maxLen))

	var rows []string
	rows = append(rows, m.padID("")+" "+window(m.ruler, m.xscroll, m.bodyWidth()))

	end := m.yscroll + m.bodyHeight()
	if end > m.nseqs {
		end = m.nseqs
	}
	for i := m.yscroll; i < end; i++ {
		rows = append(rows, m.padID(m.ids[i])+" "+m.renderSeq(m.seqs[i]))
	}

	body := m.theme.Card.Render(strings.Join(rows, "\n"))

	var overlay string
	if m.showHelp {
		overlay = "\n" + m.theme.Card.Render(m.help.View(m.keys))
	}

	footer := m.theme.Help.Render("help: ? • quit: q")
	return lipgloss.JoinVertical(lipgloss.Left, header, body, overlay, footer)
}

// padID right-aligns the id into its fixed column, truncating long ids.
func (m model) padID(id string) string {
	if len(id) > idColumnWidth {
		id = id[:idColumnWidth-1] + "…"
	}
	return m.theme.IDColumn.Render(fmt.Sprintf("%*s", idColumnWidth, id))
}

func (m model) renderSeq(seq string) string {
	visible := window(seq, m.xscroll, m.bodyWidth())

	var b strings.Builder
	for _, c := range visible {
		color := m.alphabet.Colorize(c)
		style := lipgloss.NewStyle()
		if m.highlightBG {
			style = style.Background(color)
			if m.dark {
				style = style.Foreground(lipgloss.Color("0"))
			}
		} else {
			style = style.Foreground(color)
		}
		b.WriteString(style.Render(string(c)))
	}
	return b.String()
}

// window slices s to the visible column range, tolerating short rows.
func window(s string, from, width int) string {
	if from >= len(s) {
		return ""
	}
	s = s[from:]
	if len(s) > width {
		s = s[:width]
	}
	return s
}
