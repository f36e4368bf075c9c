package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/alexanderramin/studyweek/internal/cli/formatter"
	"github.com/alexanderramin/studyweek/internal/contract"
	"github.com/alexanderramin/studyweek/internal/domain"
	"github.com/alexanderramin/studyweek/internal/service"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

type weekKeyMap struct {
	PrevDay key.Binding
	NextDay key.Binding
	Up      key.Binding
	Down    key.Binding
	Toggle  key.Binding
	Help    key.Binding
	Quit    key.Binding
}

func defaultWeekKeyMap() weekKeyMap {
	return weekKeyMap{
		PrevDay: key.NewBinding(key.WithKeys("left", "h"), key.WithHelp("←/h", "prev day")),
		NextDay: key.NewBinding(key.WithKeys("right", "l"), key.WithHelp("→/l", "next day")),
		Up:      key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
		Down:    key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
		Toggle:  key.NewBinding(key.WithKeys(" ", "space"), key.WithHelp("space", "toggle done")),
		Help:    key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "more")),
		Quit:    key.NewBinding(key.WithKeys("q", "esc", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

func (k weekKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.PrevDay, k.NextDay, k.Toggle, k.Help, k.Quit}
}

func (k weekKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.PrevDay, k.NextDay, k.Up, k.Down},
		{k.Toggle, k.Help, k.Quit},
	}
}

// progressLoadedMsg carries the completed block ids after a load or toggle.
type progressLoadedMsg struct {
	done map[string]bool
	err  error
}

// weekModel browses one stored plan a day at a time and toggles block
// completion through the progress service.
type weekModel struct {
	progress service.ProgressService
	stored   *contract.StoredPlan
	done     map[string]bool
	day      int
	cursor   int
	keys     weekKeyMap
	help     help.Model
	err      error
}

func newWeekModel(stored *contract.StoredPlan, progress service.ProgressService, startDay int) *weekModel {
	if startDay < 0 || startDay >= len(stored.Plan.Week) {
		startDay = 0
	}
	h := help.New()
	h.Styles.ShortKey = formatter.StyleHeader
	h.Styles.FullKey = formatter.StyleHeader
	h.Styles.ShortDesc = formatter.StyleDim
	h.Styles.FullDesc = formatter.StyleDim
	return &weekModel{
		progress: progress,
		stored:   stored,
		done:     map[string]bool{},
		day:      startDay,
		keys:     defaultWeekKeyMap(),
		help:     h,
	}
}

func (m *weekModel) Init() tea.Cmd {
	return m.loadProgress()
}

func (m *weekModel) loadProgress() tea.Cmd {
	progress, planID := m.progress, m.stored.ID
	return func() tea.Msg {
		p, err := progress.Progress(context.Background(), planID)
		if err != nil {
			return progressLoadedMsg{err: err}
		}
		return progressLoadedMsg{done: p.CompletedIDs}
	}
}

func (m *weekModel) toggle(blockID string, done bool) tea.Cmd {
	progress, planID := m.progress, m.stored.ID
	return func() tea.Msg {
		ctx := context.Background()
		if err := progress.ToggleBlock(ctx, planID, blockID, done); err != nil {
			return progressLoadedMsg{err: err}
		}
		p, err := progress.Progress(ctx, planID)
		if err != nil {
			return progressLoadedMsg{err: err}
		}
		return progressLoadedMsg{done: p.CompletedIDs}
	}
}

func (m *weekModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.help.Width = msg.Width

	case progressLoadedMsg:
		m.err = msg.err
		if msg.err == nil {
			m.done = msg.done
			if m.done == nil {
				m.done = map[string]bool{}
			}
		}

	case tea.KeyMsg:
		days := len(m.stored.Plan.Week)
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, m.keys.PrevDay):
			m.day = (m.day + days - 1) % days
			m.cursor = 0
		case key.Matches(msg, m.keys.NextDay):
			m.day = (m.day + 1) % days
			m.cursor = 0
		case key.Matches(msg, m.keys.Up):
			if m.cursor > 0 {
				m.cursor--
			}
		case key.Matches(msg, m.keys.Down):
			if m.cursor < len(m.currentDay().Blocks)-1 {
				m.cursor++
			}
		case key.Matches(msg, m.keys.Toggle):
			if blk, ok := m.selectedBlock(); ok {
				return m, m.toggle(blk.ID, !m.done[blk.ID])
			}
		case key.Matches(msg, m.keys.Help):
			m.help.ShowAll = !m.help.ShowAll
		}
	}
	return m, nil
}

func (m *weekModel) currentDay() domain.DayBlock {
	return m.stored.Plan.Week[m.day]
}

func (m *weekModel) selectedBlock() (domain.StudyBlock, bool) {
	blocks := m.currentDay().Blocks
	if m.cursor < 0 || m.cursor >= len(blocks) {
		return domain.StudyBlock{}, false
	}
	return blocks[m.cursor], true
}

func (m *weekModel) View() string {
	var b strings.Builder

	b.WriteString(m.renderTabs() + "\n\n")
	b.WriteString(formatter.FormatDay(m.currentDay(), m.done, m.cursor))
	if blk, ok := m.selectedBlock(); ok {
		b.WriteString("\n" + formatter.FormatBlockDetail(blk))
	}

	total := m.stored.Plan.TotalBlocks()
	completed := 0
	for _, d := range m.stored.Plan.Week {
		for _, blk := range d.Blocks {
			if m.done[blk.ID] {
				completed++
			}
		}
	}
	b.WriteString("\n" + formatter.Dim(fmt.Sprintf("%d/%d blocks done", completed, total)) + "\n")
	if m.err != nil {
		b.WriteString(formatter.StyleRed.Render("Error: "+m.err.Error()) + "\n")
	}
	b.WriteString(m.help.View(m.keys))
	return b.String()
}

func (m *weekModel) renderTabs() string {
	tabs := make([]string, 0, len(m.stored.Plan.Week))
	for i, d := range m.stored.Plan.Week {
		label := d.Day
		if len(label) > 3 {
			label = label[:3]
		}
		if i == m.day {
			tabs = append(tabs, formatter.StyleHeader.Render("["+label+"]"))
		} else {
			tabs = append(tabs, formatter.Dim(" "+label+" "))
		}
	}
	return strings.Join(tabs, " ")
}

// dayIndexFor returns the index of the day whose date matches date, or 0.
func dayIndexFor(week []domain.DayBlock, date string) int {
	for i, d := range week {
		if d.Date == date {
			return i
		}
	}
	return 0
}
