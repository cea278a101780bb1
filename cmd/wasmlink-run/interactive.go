package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"go.uber.org/zap"

	"github.com/wippyai/wasmlink/registry"
	"github.com/wippyai/wasmlink/resource"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4")).
			Padding(0, 1)

	moduleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#87CEEB"))

	eventStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#98FB98"))

	resultStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#90EE90"))

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF6B6B"))

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#666666"))
)

const eventLogSize = 8

type inspectorModel struct {
	reg    *registry.Registry
	input  textinput.Model
	events []string
	result string
	errMsg string
	fatal  bool
}

func newInspectorModel(verbose bool) *inspectorModel {
	if verbose {
		if logger, err := zap.NewDevelopment(); err == nil {
			registry.SetLogger(logger)
		}
	}

	ti := textinput.New()
	ti.Placeholder = "insert 0 42"
	ti.Prompt = "> "
	ti.Width = 40
	ti.Focus()

	m := &inspectorModel{
		reg:   registry.New(),
		input: ti,
	}
	m.reg.Subscribe(m)
	return m
}

// OnResourceEvent feeds the event log. Commands run inside Update, so the
// callback fires on the same goroutine and needs no locking.
func (m *inspectorModel) OnResourceEvent(e registry.Event) {
	line := fmt.Sprintf("module %d handle %d %s", e.ModuleID, e.Handle, e.Type)
	if e.Type == registry.EventReleased {
		line += fmt.Sprintf(" (value %d)", e.Value)
	}
	m.events = append(m.events, line)
	if len(m.events) > eventLogSize {
		m.events = m.events[len(m.events)-eventLogSize:]
	}
}

func (m *inspectorModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m *inspectorModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			return m, tea.Quit

		case "enter":
			if m.fatal {
				return m, tea.Quit
			}
			line := strings.TrimSpace(m.input.Value())
			m.input.SetValue("")
			if line == "q" || line == "quit" {
				return m, tea.Quit
			}
			if line != "" {
				m.runCommand(line)
			}
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// runCommand executes one boundary operation against the live registry. A
// panic here means the inspector itself broke the ownership contract (for
// example by removing a handle twice); the registry is then treated as
// corrupted and the session ends on the next keypress.
func (m *inspectorModel) runCommand(line string) {
	defer func() {
		if r := recover(); r != nil {
			m.fatal = true
			m.result = ""
			m.errMsg = fmt.Sprintf("fatal: %v", r)
		}
	}()

	m.result = ""
	m.errMsg = ""

	fields := strings.Fields(line)
	op := fields[0]
	nums := make([]uint32, 0, 2)
	for _, f := range fields[1:] {
		v, err := strconv.ParseUint(f, 10, 32)
		if err != nil {
			m.errMsg = fmt.Sprintf("bad argument %q", f)
			return
		}
		nums = append(nums, uint32(v))
	}

	if len(nums) != 2 {
		m.errMsg = "usage: insert|get|clone|remove <module> <value|handle>"
		return
	}

	switch op {
	case "insert":
		h := m.reg.Insert(nums[0], nums[1])
		m.result = fmt.Sprintf("handle %d", h)
	case "get":
		v := m.reg.Get(nums[0], resource.Handle(nums[1]))
		m.result = fmt.Sprintf("value %d", v)
	case "clone":
		h := m.reg.Clone(nums[0], resource.Handle(nums[1]))
		m.result = fmt.Sprintf("new handle %d", h)
	case "remove":
		res := m.reg.Remove(nums[0], resource.Handle(nums[1]))
		if res.Released {
			m.result = fmt.Sprintf("released value %d", res.Value)
		} else {
			m.result = "still referenced"
		}
	default:
		m.errMsg = fmt.Sprintf("unknown operation %q", op)
	}
}

func (m *inspectorModel) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("wasmlink inspector"))
	b.WriteString("\n\n")

	modules := m.reg.Modules()
	if modules == 0 {
		b.WriteString(helpStyle.Render("registry empty"))
		b.WriteString("\n")
	}
	for id := 0; id < modules; id++ {
		handles, resources := m.reg.Live(uint32(id))
		b.WriteString(moduleStyle.Render(fmt.Sprintf("module %d", id)))
		b.WriteString(fmt.Sprintf("  %d handle(s), %d resource(s)\n", handles, resources))
	}
	b.WriteString("\n")

	if len(m.events) > 0 {
		b.WriteString("Recent events:\n")
		for _, e := range m.events {
			b.WriteString("  ")
			b.WriteString(eventStyle.Render(e))
			b.WriteString("\n")
		}
		b.WriteString("\n")
	}

	if m.fatal {
		b.WriteString(errorStyle.Render(m.errMsg))
		b.WriteString("\n\n")
		b.WriteString(helpStyle.Render("registry state is corrupted • press enter to quit"))
		return b.String()
	}

	if m.result != "" {
		b.WriteString(resultStyle.Render(m.result))
		b.WriteString("\n")
	}
	if m.errMsg != "" {
		b.WriteString(errorStyle.Render(m.errMsg))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(m.input.View())
	b.WriteString("\n\n")
	b.WriteString(helpStyle.Render("insert|get|clone|remove <module> <value|handle> • q quit"))

	return b.String()
}

func runInteractive(verbose bool) error {
	p := tea.NewProgram(newInspectorModel(verbose), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
