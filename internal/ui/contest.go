package ui

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/muralfm/muralcli/internal/contest"
)

// ContestData is everything the contest screen shows, fetched in one pass so
// the view never renders a half-updated round.
type ContestData struct {
	Theme    string
	Fee      string // wei, decimal string
	Funds    string // wei, decimal string
	Snapshot contest.ContestSnapshot
}

// ContestModel is the Bubble Tea model for the live contest view.
type ContestModel struct {
	account string
	fetch   func() (ContestData, error)
	vote    func(index uint64) (string, error)

	data     ContestData
	loaded   bool
	cursor   int
	now      time.Time
	voting   bool
	frame    int
	status   string
	errMsg   string
	quitting bool
}

type tickMsg time.Time
type contestFetchedMsg ContestData
type contestErrorMsg string
type voteSentMsg string
type voteFailedMsg string

var spinFrames = []string{"⠋", "⠙", "⠹", "⠸", "⠼", "⠴", "⠦", "⠧", "⠇", "⠏"}

// NewContest creates a Bubble Tea program for the contest view. vote submits
// a vote for the submission at the given index and returns the tx hash.
func NewContest(account string, fetch func() (ContestData, error), vote func(index uint64) (string, error)) *tea.Program {
	m := ContestModel{
		account: account,
		fetch:   fetch,
		vote:    vote,
		now:     time.Now(),
	}
	return tea.NewProgram(m)
}

func (m ContestModel) Init() tea.Cmd {
	return tea.Batch(m.fetchCmd(), tick(time.Second))
}

func (m ContestModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			m.quitting = true
			return m, tea.Quit

		case "r":
			// Reload is the only recovery path after a fetch error.
			m.errMsg = ""
			m.status = ""
			return m, m.fetchCmd()

		case "up", "k":
			if m.cursor > 0 {
				m.cursor--
			}

		case "down", "j":
			if m.cursor < len(m.data.Snapshot.Submissions)-1 {
				m.cursor++
			}

		case "o":
			if s, ok := m.selected(); ok {
				OpenBrowser(s.MusicURL)
				m.status = "Opened " + s.MusicURL
			}

		case "enter", "v":
			if m.voting || m.errMsg != "" {
				break
			}
			if _, ok := m.selected(); !ok {
				break
			}
			if ok, reason := CanVote(m.account, m.data.Snapshot); !ok {
				m.status = reason
				break
			}
			m.voting = true
			m.status = ""
			return m, m.voteCmd(uint64(m.cursor))
		}

	case tickMsg:
		m.now = time.Time(msg)
		m.frame = (m.frame + 1) % len(spinFrames)
		return m, tick(time.Second)

	case contestFetchedMsg:
		m.data = ContestData(msg)
		m.loaded = true
		m.errMsg = ""
		if m.cursor >= len(m.data.Snapshot.Submissions) {
			m.cursor = 0
		}

	case contestErrorMsg:
		m.errMsg = string(msg)

	case voteSentMsg:
		m.voting = false
		m.status = "Vote confirmed in " + string(msg)
		return m, m.fetchCmd()

	case voteFailedMsg:
		m.voting = false
		m.status = ""
		m.errMsg = string(msg)
	}

	return m, nil
}

func (m ContestModel) View() string {
	if m.quitting {
		return ""
	}

	var sb strings.Builder
	sb.WriteString(StyleTitle.Render("♪ Mural Contest") + "\n")

	if m.errMsg != "" {
		sb.WriteString(StyleBorder.Render(Err(m.errMsg)+"\n"+Meta("Press r to reload")) + "\n")
		return sb.String()
	}

	if !m.loaded {
		sb.WriteString(StyleTheme.Render(spinFrames[m.frame]) + Meta("  Loading contest…") + "\n")
		return sb.String()
	}

	sb.WriteString(KeyValueBlock("", [][2]string{
		{"Theme", m.data.Theme},
		{"Ends in", FormatCountdown(m.now, m.data.Snapshot.EndTime())},
		{"Entry fee", FormatAmount(m.data.Fee) + " ETH"},
		{"Prize pool", FormatAmount(m.data.Funds) + " ETH"},
		{"Total votes", fmt.Sprintf("%d", m.data.Snapshot.TotalVotes)},
	}))
	sb.WriteString("\n")

	if len(m.data.Snapshot.Submissions) == 0 {
		sb.WriteString(StyleBorder.Render(StyleWarning.Render("No Submissions Yet!")+"\n"+Meta("Be the first: muralcli submit")) + "\n")
	} else {
		t := NewTable([]Column{
			{Title: "#", Width: 3, Right: true},
			{Title: "Artist", Width: 14},
			{Title: "Theme", Width: 24},
			{Title: "Track", Width: 40},
		})
		t.Cursor = m.cursor
		for i, s := range m.data.Snapshot.Submissions {
			t.AddRow(Row{
				fmt.Sprintf("%d", i+1),
				TruncateAddr(s.Submitter),
				s.Theme,
				s.MusicURL,
			})
		}
		sb.WriteString(t.Render())
	}

	if m.voting {
		sb.WriteString("\n" + StyleTheme.Render(spinFrames[m.frame]) + Meta("  Sending vote…"))
	} else if m.status != "" {
		sb.WriteString("\n" + StyleWarning.Render(m.status))
	}

	help := "↑/↓ select · enter vote · o open track · r reload · q quit"
	sb.WriteString("\n" + Meta(help) + "\n")
	return sb.String()
}

func (m ContestModel) selected() (contest.Submission, bool) {
	if m.cursor < 0 || m.cursor >= len(m.data.Snapshot.Submissions) {
		return contest.Submission{}, false
	}
	return m.data.Snapshot.Submissions[m.cursor], true
}

func (m ContestModel) fetchCmd() tea.Cmd {
	return func() tea.Msg {
		data, err := m.fetch()
		if err != nil {
			return contestErrorMsg(err.Error())
		}
		return contestFetchedMsg(data)
	}
}

func (m ContestModel) voteCmd(index uint64) tea.Cmd {
	return func() tea.Msg {
		hash, err := m.vote(index)
		if err != nil {
			return voteFailedMsg(err.Error())
		}
		return voteSentMsg(hash)
	}
}

// CanVote reports whether account may vote in the current round, with a
// user-facing reason when it may not.
func CanVote(account string, snap contest.ContestSnapshot) (bool, string) {
	if account == "" {
		return false, "Connect a wallet to vote."
	}
	if snap.HasVoted(account) {
		return false, "You can only vote once per Mural contest."
	}
	return true, ""
}

func tick(d time.Duration) tea.Cmd {
	return tea.Tick(d, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}
