package tui

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"shellgotchi/internal/game"
	"shellgotchi/internal/storage"
	"shellgotchi/internal/ui"
)

type boardModel struct {
	eng   *game.Engine
	store *storage.Store

	width  int
	height int

	st *storage.State

	lastLog string
	loading bool
	err     error
}

type loadedMsg struct {
	st  *storage.State
	err error
}

type actionMsg struct {
	log string
	err error
}

func newBoardModel(eng *game.Engine, store *storage.Store) boardModel {
	return boardModel{
		eng:     eng,
		store:   store,
		loading: true,
		lastLog: "Loaded.",
	}
}

func (m boardModel) Init() tea.Cmd {
	return m.loadCmd()
}

func (m boardModel) loadCmd() tea.Cmd {
	return func() tea.Msg {
		st, err := m.store.Load()
		return loadedMsg{st: st, err: err}
	}
}

// Actions reload, mutate and save their own copy of the document so the
// board never holds a half-persisted state.

func (m boardModel) feedCmd() tea.Cmd {
	return func() tea.Msg {
		st, err := m.store.Load()
		if err != nil {
			return actionMsg{err: err}
		}
		if st.User.Food <= 0 {
			return actionMsg{log: "No food! Run some commands first."}
		}
		if st.Pet.Hunger >= 100 {
			return actionMsg{log: st.Pet.Name + " is already full."}
		}
		res := m.eng.FeedPet(st)
		m.eng.CheckAchievements(st)
		if err := m.store.Save(st); err != nil {
			return actionMsg{err: err}
		}
		log := fmt.Sprintf("Fed %s: +%d EXP", st.Pet.Name, res.ExpGained)
		if res.LevelUp {
			log += fmt.Sprintf(" — reached level %d!", res.NewLevel)
		}
		return actionMsg{log: log}
	}
}

func (m boardModel) gachaCmd() tea.Cmd {
	return func() tea.Msg {
		st, err := m.store.Load()
		if err != nil {
			return actionMsg{err: err}
		}
		if st.User.Tickets <= 0 {
			return actionMsg{log: "No tickets."}
		}
		res := m.eng.PullGacha(st)
		m.eng.CheckAchievements(st)
		if err := m.store.Save(st); err != nil {
			return actionMsg{err: err}
		}
		log := fmt.Sprintf("Gacha: [%s] %s", res.Rarity, res.Item.Name)
		if res.IsNew {
			log += " (NEW)"
		}
		return actionMsg{log: log}
	}
}

func (m boardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil
	case loadedMsg:
		m.loading = false
		m.err = msg.err
		if msg.err != nil {
			m.lastLog = "Load failed: " + msg.err.Error()
			return m, nil
		}
		m.st = msg.st
		return m, nil
	case actionMsg:
		if msg.err != nil {
			m.lastLog = "Error: " + msg.err.Error()
			return m, nil
		}
		m.lastLog = msg.log
		return m, m.loadCmd()
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "q":
			return m, tea.Quit
		case "r":
			m.loading = true
			m.lastLog = fmt.Sprintf("Refreshed at %s.", time.Now().Format("15:04:05"))
			return m, m.loadCmd()
		case "f":
			return m, m.feedCmd()
		case "g":
			return m, m.gachaCmd()
		}
	}
	return m, nil
}

func (m boardModel) View() string {
	if m.loading || m.st == nil {
		return "Loading…"
	}
	if m.err != nil {
		return ui.Bad.Render("Error: " + m.err.Error())
	}

	st := m.st
	var b strings.Builder

	b.WriteString(ui.Heading(ui.IconPet, st.Pet.Name) + "  " +
		ui.Muted.Render(fmt.Sprintf("Lv.%d", st.Pet.Level)) + "\n")
	b.WriteString(ui.LabelValue("Hunger", ui.Bar(st.Pet.Hunger, 100, 14)) + "\n")
	if next := m.eng.ExpToNextLevel(&st.Pet); next > 0 {
		hi := m.eng.Tables.LevelThresholds[st.Pet.Level+1]
		lo := m.eng.Tables.LevelThresholds[st.Pet.Level]
		b.WriteString(ui.LabelValue("EXP", ui.Bar(float64(st.Pet.Exp-lo), float64(hi-lo), 14)) + "\n")
	} else {
		b.WriteString(ui.LabelValue("EXP", ui.Gold.Render("MAX")) + "\n")
	}
	b.WriteString(fmt.Sprintf("%s %d  %s %d  %s %d  %s %d\n",
		ui.IconFood, st.User.Food,
		ui.IconTicket, st.User.Tickets,
		ui.IconFragment, st.User.TicketFragments,
		ui.IconCoin, st.User.Coins))

	b.WriteString("\n" + ui.H2.Render(ui.IconCalendar+" Missions") + "\n")
	for _, v := range m.eng.MissionStatus(st) {
		var mark string
		switch {
		case v.Claimed:
			mark = ui.Muted.Render("claimed")
		case v.Completed:
			mark = ui.Good.Render("ready!")
		default:
			mark = ui.Muted.Render(fmt.Sprintf("%d/%d", v.Progress, v.Mission.Target))
		}
		b.WriteString(fmt.Sprintf("  %s %s\n", v.Mission.Name, mark))
	}

	b.WriteString("\n" + ui.Muted.Render("f: feed  g: gacha  r: refresh  q: quit") + "\n")
	b.WriteString(ui.Muted.Render(m.lastLog))

	return ui.Panel.Render(b.String())
}
