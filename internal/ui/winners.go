package ui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/muralfm/muralcli/internal/contest"
)

// WinnersModel is the Bubble Tea model for the past-winners view. Rounds are
// shown newest first, the way the gateway returns them.
type WinnersModel struct {
	fetch func() ([]contest.ContestResult, error)

	results  []contest.ContestResult
	loaded   bool
	cursor   int // index into the flattened winner list
	status   string
	errMsg   string
	quitting bool
}

type winnersFetchedMsg []contest.ContestResult
type winnersErrorMsg string

// NewWinners creates a Bubble Tea program for the winners view.
func NewWinners(fetch func() ([]contest.ContestResult, error)) *tea.Program {
	return tea.NewProgram(WinnersModel{fetch: fetch})
}

func (m WinnersModel) Init() tea.Cmd {
	return m.fetchCmd()
}

func (m WinnersModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			m.quitting = true
			return m, tea.Quit

		case "r":
			m.errMsg = ""
			m.status = ""
			return m, m.fetchCmd()

		case "up", "k":
			if m.cursor > 0 {
				m.cursor--
			}

		case "down", "j":
			if m.cursor < m.winnerCount()-1 {
				m.cursor++
			}

		case "o", "enter":
			if w, ok := m.selected(); ok {
				OpenBrowser(w.MusicURL)
				m.status = "Opened " + w.MusicURL
			}
		}

	case winnersFetchedMsg:
		m.results = []contest.ContestResult(msg)
		m.loaded = true
		m.errMsg = ""
		if m.cursor >= m.winnerCount() {
			m.cursor = 0
		}

	case winnersErrorMsg:
		m.errMsg = string(msg)
	}

	return m, nil
}

func (m WinnersModel) View() string {
	if m.quitting {
		return ""
	}

	var sb strings.Builder
	sb.WriteString(StyleTitle.Render("🏆 Past Winners") + "\n")

	if m.errMsg != "" {
		sb.WriteString(StyleBorder.Render(Err(m.errMsg)+"\n"+Meta("Press r to reload")) + "\n")
		return sb.String()
	}

	if !m.loaded {
		sb.WriteString(Meta("Loading winners…") + "\n")
		return sb.String()
	}

	if len(m.results) == 0 {
		sb.WriteString(StyleBorder.Render(StyleWarning.Render("No winners yet")+"\n"+Meta("The first round has not closed.")) + "\n")
		return sb.String()
	}

	flatIdx := 0
	for _, res := range m.results {
		header := Theme(res.Theme) + "  " + Meta(FormatDate(res.Timestamp)) +
			"  " + Meta("voter share "+FormatAmount(res.VoterShare)+" ETH")
		sb.WriteString(header + "\n")

		t := NewTable([]Column{
			{Title: "Artist", Width: 14},
			{Title: "Votes", Width: 6, Right: true},
			{Title: "Payout", Width: 12, Right: true},
			{Title: "Track", Width: 40},
		})
		for _, w := range res.Winners {
			if flatIdx == m.cursor {
				t.Cursor = len(t.Rows)
			}
			t.AddRow(Row{
				TruncateAddr(w.Submitter),
				fmt.Sprintf("%d", w.Votes),
				FormatAmount(w.Payout) + " ETH",
				w.MusicURL,
			})
			flatIdx++
		}
		sb.WriteString(t.Render())
		sb.WriteString("\n")
	}

	if m.status != "" {
		sb.WriteString(StyleWarning.Render(m.status) + "\n")
	}
	sb.WriteString(Meta("↑/↓ select · enter open track · r reload · q quit") + "\n")
	return sb.String()
}

func (m WinnersModel) winnerCount() int {
	n := 0
	for _, r := range m.results {
		n += len(r.Winners)
	}
	return n
}

func (m WinnersModel) selected() (contest.WinnerRecord, bool) {
	idx := m.cursor
	for _, r := range m.results {
		if idx < len(r.Winners) {
			return r.Winners[idx], true
		}
		idx -= len(r.Winners)
	}
	return contest.WinnerRecord{}, false
}

func (m WinnersModel) fetchCmd() tea.Cmd {
	return func() tea.Msg {
		results, err := m.fetch()
		if err != nil {
			return winnersErrorMsg(err.Error())
		}
		return winnersFetchedMsg(results)
	}
}
