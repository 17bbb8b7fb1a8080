package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/mattn/go-runewidth"

	"github.com/pathu11/fingerspell/internal/convert"
	"github.com/pathu11/fingerspell/internal/sign"
	"github.com/pathu11/fingerspell/internal/tui/bigsign"
)

// mode selects what the main pane shows.
type mode int

const (
	modeWord mode = iota
	modeNumber
	modeBrowse
)

// Model is the TUI state: an input line, the last conversion, and a cursor
// over its sign sequence or the sign inventory.
type Model struct {
	conv *convert.Converter

	input     textinput.Model
	mode      mode
	result    *sign.ConversionResult
	selected  int
	inventory []sign.Sign
	invCursor int
	width     int
	height    int
}

// NewModel creates the TUI over a ready converter.
func NewModel(conv *convert.Converter) Model {
	ti := textinput.New()
	ti.Placeholder = "සිංහල වචනයක් ලියන්න..."
	ti.Focus()
	ti.CharLimit = 64
	ti.Width = 40

	return Model{
		conv:      conv,
		input:     ti,
		inventory: conv.Table().Inventory(),
	}
}

func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "esc":
			return m, tea.Quit
		case "tab":
			m.mode = (m.mode + 1) % 3
			m.selected = 0
			return m, nil
		case "enter":
			if m.mode == modeBrowse {
				return m, nil
			}
			text := m.input.Value()
			var result sign.ConversionResult
			if m.mode == modeNumber {
				result = m.conv.ConvertNumber(text)
			} else {
				result = m.conv.ConvertWord(text)
			}
			m.result = &result
			m.selected = 0
			return m, nil
		case "up":
			if m.mode == modeBrowse {
				if m.invCursor > 0 {
					m.invCursor--
				}
			} else if m.selected > 0 {
				m.selected--
			}
			return m, nil
		case "down":
			if m.mode == modeBrowse {
				if m.invCursor < len(m.inventory)-1 {
					m.invCursor++
				}
			} else if m.result != nil && m.selected < len(m.result.Signs)-1 {
				m.selected++
			}
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m Model) View() string {
	var b strings.Builder

	title := "Fingerspell"
	switch m.mode {
	case modeWord:
		title += " · word"
	case modeNumber:
		title += " · number"
	case modeBrowse:
		title += " · inventory"
	}
	b.WriteString(TitleStyle.Render(title))
	b.WriteString("\n\n")

	if m.mode == modeBrowse {
		b.WriteString(m.viewInventory())
	} else {
		b.WriteString(SearchBoxStyle.Render(m.input.View()))
		b.WriteString("\n\n")
		b.WriteString(m.viewResult())
	}

	b.WriteString("\n")
	b.WriteString(HelpStyle.Render("enter convert · tab mode · ↑/↓ select · esc quit"))
	return b.String()
}

// viewResult renders the sign sequence of the last conversion.
func (m Model) viewResult() string {
	if m.result == nil {
		return HelpStyle.Render("no conversion yet")
	}

	var b strings.Builder
	for i, res := range m.result.Resolutions {
		row := fmt.Sprintf("%2d  %s  %s  %s",
			i+1,
			padSign(res.Sign.ID, 8),
			padCell(string(res.Sign.Kind), 14),
			videoCell(res),
		)
		if i == m.selected {
			b.WriteString(SignRowActiveStyle.Render(row))
		} else {
			b.WriteString(SignRowStyle.Render(row))
		}
		b.WriteString("\n")
	}
	for _, f := range m.result.Flags {
		b.WriteString(FlagStyle.Render(
			fmt.Sprintf("  ! %s at %d (%s)", f.Rune, f.Pos, f.Reason)))
		b.WriteString("\n")
	}

	sum := m.result.Summary
	b.WriteString(SubtitleStyle.Render(
		fmt.Sprintf("%d signs · %d videos · %d missing",
			sum.Signs, sum.VideosFound, sum.VideosMissing)))

	if m.selected < len(m.result.Signs) {
		if art := bigsign.GetCached(m.result.Signs[m.selected].ID, 24, 8); art != "" {
			b.WriteString("\n")
			b.WriteString(SignLargeStyle.Render(art))
		}
	}
	return b.String()
}

// viewInventory renders a scrolling window over the base sign inventory.
func (m Model) viewInventory() string {
	window := 14
	if m.height > 0 && m.height-8 < window {
		window = max(m.height-8, 4)
	}
	start := 0
	if m.invCursor >= window {
		start = m.invCursor - window + 1
	}
	end := min(start+window, len(m.inventory))

	var b strings.Builder
	for i := start; i < end; i++ {
		s := m.inventory[i]
		_, mapped := m.conv.Index().Resolve(s.ID)
		row := fmt.Sprintf("%s  %s  %s",
			padSign(s.ID, 8),
			padCell(string(s.Kind), 14),
			coverageCell(mapped),
		)
		if i == m.invCursor {
			b.WriteString(SignRowActiveStyle.Render(row))
		} else {
			b.WriteString(SignRowStyle.Render(row))
		}
		b.WriteString("\n")
	}
	b.WriteString(SubtitleStyle.Render(
		fmt.Sprintf("%d/%d signs", m.invCursor+1, len(m.inventory))))

	if m.invCursor < len(m.inventory) {
		if art := bigsign.GetCached(m.inventory[m.invCursor].ID, 24, 8); art != "" {
			b.WriteString("\n")
			b.WriteString(SignLargeStyle.Render(art))
		}
	}
	return b.String()
}

func videoCell(res sign.Resolution) string {
	if res.Found {
		return VideoFoundStyle.Render("▶ " + res.Video)
	}
	return VideoMissingStyle.Render("no video")
}

func coverageCell(mapped bool) string {
	if mapped {
		return VideoFoundStyle.Render("✓")
	}
	return VideoMissingStyle.Render("·")
}

// padSign pads a Sinhala string to a fixed display width. Sinhala combining
// marks render at uneven widths, so measure with runewidth, not len.
func padSign(s string, width int) string {
	w := runewidth.StringWidth(s)
	if w >= width {
		return s
	}
	return s + strings.Repeat(" ", width-w)
}

func padCell(s string, width int) string {
	return runewidth.FillRight(s, width)
}

// Run starts the TUI program in conversion mode.
func Run(conv *convert.Converter) error {
	return run(NewModel(conv))
}

// RunBrowse starts the TUI program on the inventory browser.
func RunBrowse(conv *convert.Converter) error {
	m := NewModel(conv)
	m.mode = modeBrowse
	return run(m)
}

func run(m Model) error {
	p := tea.NewProgram(m, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("running TUI: %w", err)
	}
	return nil
}
