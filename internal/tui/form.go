package tui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/san-kum/shmsim/internal/config"
	"github.com/san-kum/shmsim/internal/oscillator"
	"github.com/san-kum/shmsim/internal/viz"
)

var (
	titleStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("86")).Bold(true).MarginBottom(1)
	labelStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Width(22)
	focusedStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("205")).Bold(true).Width(22)
	errorStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("196"))
	selectedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("205")).Bold(true)
	dimStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
	helpStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("240")).MarginTop(1)
)

type fieldSpec struct {
	label string
	param oscillator.Param
}

var fields = []fieldSpec{
	{"force constant (kg/s^2)", oscillator.ParamSpring},
	{"mass (kg)", oscillator.ParamMass},
	{"initial position (m)", oscillator.ParamInitPos},
	{"initial velocity (m/s)", oscillator.ParamInitVel},
	{"steps", oscillator.ParamSteps},
	{"duration (s)", oscillator.ParamDuration},
	{"damping (kg/s)", oscillator.ParamDamping},
	{"drive amplitude (N)", oscillator.ParamDriveAmp},
	{"drive frequency (rad/s)", oscillator.ParamDriveFreq},
}

var plotKinds = []struct {
	name string
	kind viz.Kind
}{
	{"displacement", viz.KindPosition},
	{"velocity", viz.KindVelocity},
	{"acceleration", viz.KindAcceleration},
	{"energy", ""},
}

// Model is the interactive parameter form. It parses raw text into
// numbers, feeds them through SetParameter, and surfaces any rejection
// inline instead of crashing the recompute.
type Model struct {
	inputs   []textinput.Model
	focus    int
	plotKind int
	shm      *oscillator.Model
	output   string
	errMsg   string
}

func New() Model {
	cfg := config.DefaultConfig()
	defaults := []string{
		formatFloat(cfg.Spring),
		formatFloat(cfg.Mass),
		formatFloat(cfg.InitPos),
		formatFloat(cfg.InitVel),
		strconv.Itoa(cfg.Steps),
		formatFloat(cfg.Duration),
		formatFloat(cfg.Damping),
		formatFloat(cfg.DriveAmp),
		formatFloat(cfg.DriveFreq),
	}

	inputs := make([]textinput.Model, len(fields))
	for i := range fields {
		ti := textinput.New()
		ti.SetValue(defaults[i])
		ti.CharLimit = 16
		ti.Width = 12
		if i == 0 {
			ti.Focus()
		}
		inputs[i] = ti
	}

	return Model{
		inputs: inputs,
		shm:    cfg.NewModel(),
	}
}

func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "esc":
			return m, tea.Quit
		case "tab", "down":
			m.setFocus((m.focus + 1) % len(m.inputs))
			return m, nil
		case "shift+tab", "up":
			m.setFocus((m.focus + len(m.inputs) - 1) % len(m.inputs))
			return m, nil
		case "left":
			m.plotKind = (m.plotKind + len(plotKinds) - 1) % len(plotKinds)
			return m, nil
		case "right":
			m.plotKind = (m.plotKind + 1) % len(plotKinds)
			return m, nil
		case "enter":
			m.compute()
			return m, nil
		case "ctrl+r":
			return New(), textinput.Blink
		}
	}

	var cmd tea.Cmd
	m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
	return m, cmd
}

func (m *Model) setFocus(i int) {
	m.inputs[m.focus].Blur()
	m.focus = i
	m.inputs[m.focus].Focus()
}

// compute applies the form values to the oscillator and renders the
// selected plot. Any malformed number or rejected parameter aborts the
// recompute with the prior state intact.
func (m *Model) compute() {
	m.errMsg = ""

	values := make([]float64, len(fields))
	for i, f := range fields {
		v, err := strconv.ParseFloat(strings.TrimSpace(m.inputs[i].Value()), 64)
		if err != nil {
			m.errMsg = fmt.Sprintf("%s: not a number", f.label)
			return
		}
		values[i] = v
	}

	for i, f := range fields {
		if err := m.shm.SetParameter(f.param, values[i]); err != nil {
			m.errMsg = err.Error()
			return
		}
	}

	m.shm.Integrate()
	m.shm.ComputeEnergy()

	pk := plotKinds[m.plotKind]
	if pk.name == "energy" {
		m.output = viz.EnergyPlot{
			Times:   m.shm.Times(),
			Kinetic: m.shm.Kinetic(),
			Total:   m.shm.Total(),
			Cutoff:  m.shm.DecayCutoff(),
		}.Render()
		return
	}

	data := m.shm.Position()
	switch pk.kind {
	case viz.KindVelocity:
		data = m.shm.Velocity()
	case viz.KindAcceleration:
		data = m.shm.Acceleration()
	}

	m.output = viz.TrajectoryPlot{
		Times:     m.shm.Times(),
		Data:      data,
		Kind:      pk.kind,
		Damping:   m.shm.Damping(),
		DriveAmp:  m.shm.DriveAmplitude(),
		DriveFreq: m.shm.DriveFrequency(),
	}.Render()
}

func (m Model) View() string {
	var sb strings.Builder
	sb.WriteString(titleStyle.Render("simple harmonic motion simulator") + "\n")

	for i, f := range fields {
		style := labelStyle
		if i == m.focus {
			style = focusedStyle
		}
		sb.WriteString(style.Render(f.label) + " " + m.inputs[i].View() + "\n")
	}

	sb.WriteString("\nplot: ")
	for i, pk := range plotKinds {
		if i == m.plotKind {
			sb.WriteString(selectedStyle.Render("["+pk.name+"]") + " ")
		} else {
			sb.WriteString(dimStyle.Render(pk.name) + " ")
		}
	}
	sb.WriteString("\n")

	if m.errMsg != "" {
		sb.WriteString(errorStyle.Render("error: "+m.errMsg) + "\n")
	}
	if m.output != "" {
		sb.WriteString("\n" + m.output)
	}

	sb.WriteString(helpStyle.Render("tab/↑↓ field · ←→ plot · enter compute · ctrl+r reset · esc quit"))
	return sb.String()
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}

// Run starts the interactive form.
func Run() error {
	p := tea.NewProgram(New())
	_, err := p.Run()
	return err
}
