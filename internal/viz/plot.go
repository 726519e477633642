package viz

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/guptarohit/asciigraph"
	"github.com/san-kum/shmsim/internal/series"
)

const (
	defaultWidth  = 80
	defaultHeight = 12
)

var (
	captionStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("86")).Bold(true)
	annoStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	paramBox     = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("240")).Padding(0, 1)
	kineticTag   = lipgloss.NewStyle().Foreground(lipgloss.Color("214"))
	potentialTag = lipgloss.NewStyle().Foreground(lipgloss.Color("39"))
	totalTag     = lipgloss.NewStyle().Foreground(lipgloss.Color("252")).Bold(true)
)

// Kind selects which trajectory series to plot.
type Kind string

const (
	KindPosition     Kind = "x"
	KindVelocity     Kind = "v"
	KindAcceleration Kind = "a"
)

func (k Kind) Label() string {
	switch k {
	case KindVelocity:
		return "velocity (m/s)"
	case KindAcceleration:
		return "acceleration (m/s^2)"
	default:
		return "displacement (m)"
	}
}

// TrajectoryPlot renders one kinematic series against time, annotated with
// its extrema and the oscillator parameters that shaped it.
type TrajectoryPlot struct {
	Times     series.Series
	Data      series.Series
	Kind      Kind
	Damping   float64
	DriveAmp  float64
	DriveFreq float64
	Width     int
	Height    int
}

func (p TrajectoryPlot) Render() string {
	if len(p.Data) == 0 || len(p.Times) != len(p.Data) {
		return "no data to plot"
	}

	width, height := p.Width, p.Height
	if width == 0 {
		width = defaultWidth
	}
	if height == 0 {
		height = defaultHeight
	}

	graph := asciigraph.Plot(p.Data,
		asciigraph.Height(height),
		asciigraph.Width(width),
		asciigraph.Caption(p.Kind.Label()+" vs time (s)"),
	)

	maxIdx := p.Data.ArgMax()
	minIdx := p.Data.ArgMin()

	var sb strings.Builder
	sb.WriteString(captionStyle.Render(p.Kind.Label()) + "\n")
	sb.WriteString(graph + "\n\n")
	sb.WriteString(annoStyle.Render(fmt.Sprintf("maximum: %.4g at t=%.3fs", p.Data[maxIdx], p.Times[maxIdx])) + "\n")
	sb.WriteString(annoStyle.Render(fmt.Sprintf("minimum: %.4g at t=%.3fs", p.Data[minIdx], p.Times[minIdx])) + "\n")

	params := fmt.Sprintf("damping: %.2f kg/s\ndriving force: %.2f N\ndriving frequency: %.2f rad/s",
		p.Damping, p.DriveAmp, p.DriveFreq)
	sb.WriteString(paramBox.Render(params) + "\n")

	return sb.String()
}

// EnergyPlot renders the kinetic, potential and total energy series. When
// damping has drained the system, the window is cropped at the decay
// cutoff so the flat tail does not dominate the plot.
type EnergyPlot struct {
	Times   series.Series
	Kinetic series.Series
	Total   series.Series
	Cutoff  float64
	Width   int
	Height  int
}

func (p EnergyPlot) Render() string {
	if len(p.Total) == 0 || len(p.Times) != len(p.Total) {
		return "no energy data: run the energy computation first"
	}

	width, height := p.Width, p.Height
	if width == 0 {
		width = defaultWidth
	}
	if height == 0 {
		height = defaultHeight
	}

	end := len(p.Times)
	if p.Cutoff > 0 {
		// Accumulated tick times can land a few ulps past the nominal
		// duration; a cutoff equal to the duration must not crop.
		limit := p.Cutoff * (1 + 1e-9)
		for i, t := range p.Times {
			if t > limit {
				end = i
				break
			}
		}
	}
	if end < 2 {
		end = len(p.Times)
	}

	ke := p.Kinetic[:end]
	te := p.Total[:end]
	pe := make(series.Series, end)
	for i := range pe {
		pe[i] = te[i] - ke[i]
	}

	graph := asciigraph.PlotMany([][]float64{ke, pe, te},
		asciigraph.Height(height),
		asciigraph.Width(width),
		asciigraph.Caption("energy (J) vs time (s)"),
		asciigraph.SeriesColors(asciigraph.Orange, asciigraph.SkyBlue, asciigraph.White),
	)

	var sb strings.Builder
	sb.WriteString(captionStyle.Render("mechanical energy") + "\n")
	sb.WriteString(graph + "\n\n")
	sb.WriteString(kineticTag.Render("▆ kinetic") + "  " +
		potentialTag.Render("▆ potential") + "  " +
		totalTag.Render("▆ total") + "\n")
	if end < len(p.Times) {
		sb.WriteString(annoStyle.Render(fmt.Sprintf("window cropped at t=%.3fs (energy below 1%% of initial)", p.Times[end-1])) + "\n")
	}

	return sb.String()
}
