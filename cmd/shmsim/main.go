package main

import (
	"encoding/csv"
	"fmt"
	"log/slog"
	"math"
	"os"
	"strconv"
	"text/tabwriter"
	"time"

	"github.com/lmittmann/tint"
	"github.com/san-kum/shmsim/internal/analysis"
	"github.com/san-kum/shmsim/internal/config"
	"github.com/san-kum/shmsim/internal/export"
	"github.com/san-kum/shmsim/internal/oscillator"
	"github.com/san-kum/shmsim/internal/storage"
	"github.com/san-kum/shmsim/internal/tui"
	"github.com/san-kum/shmsim/internal/viz"
	"github.com/spf13/cobra"
)

var (
	dataDir    string
	spring     float64
	mass       float64
	initPos    float64
	initVel    float64
	steps      int
	duration   float64
	damping    float64
	driveAmp   float64
	driveFreq  float64
	configFile string
	preset     string
	seriesKind string
	phasePlot  bool
	jsonOut    string
	svgOut     string
)

func main() {
	slog.SetDefault(slog.New(
		tint.NewHandler(os.Stderr, &tint.Options{
			Level:      slog.LevelInfo,
			TimeFormat: time.Kitchen,
		}),
	))

	rootCmd := &cobra.Command{
		Use:   "shmsim",
		Short: "damped driven harmonic oscillator lab",
		RunE: func(cmd *cobra.Command, args []string) error {
			// Default to the interactive form when no command given
			return tui.Run()
		},
	}

	rootCmd.PersistentFlags().StringVar(&dataDir, "data", ".shmsim", "data directory")

	runCmd := &cobra.Command{
		Use:   "run",
		Short: "integrate the oscillator and store the run",
		RunE:  runSimulation,
	}
	runCmd.Flags().Float64VarP(&spring, "spring", "k", config.DefaultSpring, "force constant (kg/s^2)")
	runCmd.Flags().Float64VarP(&mass, "mass", "m", config.DefaultMass, "mass (kg)")
	runCmd.Flags().Float64Var(&initPos, "x0", config.DefaultInitPos, "initial position (m)")
	runCmd.Flags().Float64Var(&initVel, "v0", 0.0, "initial velocity (m/s)")
	runCmd.Flags().IntVar(&steps, "steps", oscillator.DefaultSteps, "number of ticks")
	runCmd.Flags().Float64Var(&duration, "time", oscillator.DefaultDuration, "duration (s)")
	runCmd.Flags().Float64VarP(&damping, "damping", "b", 0.0, "damping constant (kg/s)")
	runCmd.Flags().Float64Var(&driveAmp, "drive-amp", 0.0, "driving force amplitude (N)")
	runCmd.Flags().Float64Var(&driveFreq, "drive-freq", oscillator.DefaultDriveFreq, "driving angular frequency (rad/s)")
	runCmd.Flags().StringVar(&configFile, "config", "", "config file path (yaml)")
	runCmd.Flags().StringVar(&preset, "preset", "", "use preset configuration")

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "list stored runs",
		RunE:  listRuns,
	}

	plotCmd := &cobra.Command{
		Use:   "plot [run_id]",
		Short: "plot a stored trajectory",
		Args:  cobra.ExactArgs(1),
		RunE:  plotRun,
	}
	plotCmd.Flags().StringVar(&seriesKind, "series", "x", "series to plot: x, v or a")

	energyCmd := &cobra.Command{
		Use:   "energy [run_id]",
		Short: "plot the energy of a stored run",
		Args:  cobra.ExactArgs(1),
		RunE:  plotEnergy,
	}

	analyzeCmd := &cobra.Command{
		Use:   "analyze [run_id]",
		Short: "frequency analysis of a stored run",
		Args:  cobra.ExactArgs(1),
		RunE:  analyzeRun,
	}

	exportJSONCmd := &cobra.Command{
		Use:   "export-json [run_id]",
		Short: "export a run to JSON",
		Args:  cobra.ExactArgs(1),
		RunE:  exportJSON,
	}
	exportJSONCmd.Flags().StringVarP(&jsonOut, "out", "o", "", "output file (default stdout)")

	exportCSVCmd := &cobra.Command{
		Use:   "export-csv [run_id]",
		Short: "export a run to CSV on stdout",
		Args:  cobra.ExactArgs(1),
		RunE:  exportCSV,
	}

	exportSVGCmd := &cobra.Command{
		Use:   "export-svg [run_id]",
		Short: "export a run as an SVG plot",
		Args:  cobra.ExactArgs(1),
		RunE:  exportSVG,
	}
	exportSVGCmd.Flags().StringVar(&seriesKind, "series", "x", "series to plot: x, v or a")
	exportSVGCmd.Flags().BoolVar(&phasePlot, "phase", false, "phase portrait (velocity vs position)")
	exportSVGCmd.Flags().StringVarP(&svgOut, "out", "o", "run.svg", "output file")

	presetsCmd := &cobra.Command{
		Use:   "presets",
		Short: "list available presets",
		RunE: func(cmd *cobra.Command, args []string) error {
			w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
			fmt.Fprintln(w, "NAME\tSPRING\tMASS\tDAMPING\tDRIVE\tDURATION")
			for _, name := range config.ListPresets() {
				cfg := config.GetPreset(name)
				fmt.Fprintf(w, "%s\t%.2f\t%.2f\t%.2f\t%.2f\t%.1fs\n",
					name, cfg.Spring, cfg.Mass, cfg.Damping, cfg.DriveAmp, cfg.Duration)
			}
			return w.Flush()
		},
	}

	tuiCmd := &cobra.Command{
		Use:   "tui",
		Short: "interactive parameter form",
		RunE: func(cmd *cobra.Command, args []string) error {
			return tui.Run()
		},
	}

	rootCmd.AddCommand(runCmd, listCmd, plotCmd, energyCmd, analyzeCmd, exportJSONCmd, exportCSVCmd, exportSVGCmd, presetsCmd, tuiCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func buildModel(cmd *cobra.Command) (*oscillator.Model, error) {
	cfg := config.DefaultConfig()

	if preset != "" {
		p := config.GetPreset(preset)
		if p == nil {
			return nil, fmt.Errorf("unknown preset: %s (available: %v)", preset, config.ListPresets())
		}
		cfg = p
	}

	if configFile != "" {
		loaded, err := config.Load(configFile)
		if err != nil {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
		cfg = loaded
	}

	// CLI flags override preset and config file values.
	if cmd.Flags().Changed("spring") {
		cfg.Spring = spring
	}
	if cmd.Flags().Changed("mass") {
		cfg.Mass = mass
	}
	if cmd.Flags().Changed("x0") {
		cfg.InitPos = initPos
	}
	if cmd.Flags().Changed("v0") {
		cfg.InitVel = initVel
	}
	if cmd.Flags().Changed("steps") {
		cfg.Steps = steps
	}
	if cmd.Flags().Changed("time") {
		cfg.Duration = duration
	}
	if cmd.Flags().Changed("damping") {
		cfg.Damping = damping
	}
	if cmd.Flags().Changed("drive-amp") {
		cfg.DriveAmp = driveAmp
	}
	if cmd.Flags().Changed("drive-freq") {
		cfg.DriveFreq = driveFreq
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg.NewModel(), nil
}

func runSimulation(cmd *cobra.Command, args []string) error {
	m, err := buildModel(cmd)
	if err != nil {
		return err
	}

	st := storage.New(dataDir)
	if err := st.Init(); err != nil {
		return err
	}

	start := time.Now()
	m.Integrate()
	m.ComputeEnergy()
	elapsed := time.Since(start)

	runID, err := st.Save(m)
	if err != nil {
		return err
	}

	slog.Info("integration complete",
		"run", runID,
		"steps", m.Steps(),
		"step_size", m.StepSize(),
		"elapsed", elapsed,
	)

	fmt.Printf("amplitude:        %.6f m\n", m.Amplitude())
	fmt.Printf("max velocity:     %.6f m/s\n", m.MaxVelocity())
	fmt.Printf("max acceleration: %.6f m/s^2\n", m.MaxAcceleration())
	fmt.Printf("decay cutoff:     %.3f s\n", m.DecayCutoff())

	return nil
}

func listRuns(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	runs, err := st.List()
	if err != nil {
		return err
	}

	if len(runs) == 0 {
		fmt.Println("no runs found")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tTIME\tSPRING\tMASS\tDAMPING\tDRIVE\tSTEPS\tDURATION")

	for _, run := range runs {
		fmt.Fprintf(w, "%s\t%s\t%.2f\t%.2f\t%.2f\t%.2f\t%d\t%.2fs\n",
			run.ID,
			run.Timestamp.Format("2006-01-02 15:04:05"),
			run.Spring,
			run.Mass,
			run.Damping,
			run.DriveAmp,
			run.Steps,
			run.Duration,
		)
	}

	return w.Flush()
}

func pickSeries(run *storage.Run, kind string) ([]float64, viz.Kind, error) {
	switch kind {
	case "x":
		return run.Position, viz.KindPosition, nil
	case "v":
		return run.Velocity, viz.KindVelocity, nil
	case "a":
		return run.Acceleration, viz.KindAcceleration, nil
	default:
		return nil, "", fmt.Errorf("unknown series %q (use x, v or a)", kind)
	}
}

func plotRun(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	meta, err := st.Load(args[0])
	if err != nil {
		return err
	}
	run, err := st.LoadRun(args[0])
	if err != nil {
		return err
	}

	data, kind, err := pickSeries(run, seriesKind)
	if err != nil {
		return err
	}

	fmt.Printf("run: %s  (%d samples)\n\n", meta.ID, len(run.Times))
	fmt.Println(viz.TrajectoryPlot{
		Times:     run.Times,
		Data:      data,
		Kind:      kind,
		Damping:   meta.Damping,
		DriveAmp:  meta.DriveAmp,
		DriveFreq: meta.DriveFreq,
	}.Render())

	return nil
}

func plotEnergy(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	meta, err := st.Load(args[0])
	if err != nil {
		return err
	}
	run, err := st.LoadRun(args[0])
	if err != nil {
		return err
	}

	if len(run.Total) == 0 {
		return fmt.Errorf("run %s has no energy data", meta.ID)
	}

	fmt.Printf("run: %s\n\n", meta.ID)
	fmt.Println(viz.EnergyPlot{
		Times:   run.Times,
		Kinetic: run.Kinetic,
		Total:   run.Total,
		Cutoff:  meta.DecayCutoff,
	}.Render())

	return nil
}

func analyzeRun(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	meta, err := st.Load(args[0])
	if err != nil {
		return err
	}
	run, err := st.LoadRun(args[0])
	if err != nil {
		return err
	}

	if len(run.Position) == 0 || meta.StepSize <= 0 {
		return fmt.Errorf("no data to analyze")
	}

	sampleRate := 1.0 / meta.StepSize
	measured := analysis.DominantFrequency(run.Position, sampleRate)
	natural := 0.0
	if meta.Mass > 0 {
		natural = math.Sqrt(meta.Spring / meta.Mass)
	}

	fmt.Printf("frequency analysis: %s\n\n", meta.ID)
	fmt.Printf("dominant frequency: %.4f rad/s\n", measured)
	fmt.Printf("natural frequency:  %.4f rad/s (sqrt(k/m))\n", natural)
	if meta.DriveFreq != 0 {
		fmt.Printf("drive frequency:    %.4f rad/s\n", meta.DriveFreq)
	}

	return nil
}

func exportJSON(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	meta, err := st.Load(args[0])
	if err != nil {
		return err
	}
	run, err := st.LoadRun(args[0])
	if err != nil {
		return err
	}

	if jsonOut == "" {
		return export.WriteJSON(os.Stdout, meta, run)
	}
	return export.WriteJSONFile(jsonOut, meta, run)
}

func exportCSV(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	run, err := st.LoadRun(args[0])
	if err != nil {
		return err
	}

	w := csv.NewWriter(os.Stdout)
	defer w.Flush()

	hasEnergy := len(run.Total) == len(run.Times)
	header := []string{"time", "x", "v", "a"}
	if hasEnergy {
		header = append(header, "ke", "pe", "te")
	}
	if err := w.Write(header); err != nil {
		return err
	}

	for i := range run.Times {
		row := []string{
			strconv.FormatFloat(run.Times[i], 'f', 6, 64),
			strconv.FormatFloat(run.Position[i], 'f', 6, 64),
			strconv.FormatFloat(run.Velocity[i], 'f', 6, 64),
			strconv.FormatFloat(run.Acceleration[i], 'f', 6, 64),
		}
		if hasEnergy {
			row = append(row,
				strconv.FormatFloat(run.Kinetic[i], 'f', 6, 64),
				strconv.FormatFloat(run.Potential[i], 'f', 6, 64),
				strconv.FormatFloat(run.Total[i], 'f', 6, 64),
			)
		}
		if err := w.Write(row); err != nil {
			return err
		}
	}

	return nil
}

func exportSVG(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	run, err := st.LoadRun(args[0])
	if err != nil {
		return err
	}

	var svg string
	if phasePlot {
		svg = export.CurveToSVG(run.Position, run.Velocity, 800, 600, "#00ccff")
	} else {
		data, _, err := pickSeries(run, seriesKind)
		if err != nil {
			return err
		}
		svg = export.CurveToSVG(run.Times, data, 800, 400, "#00ff88")
	}

	if svg == "" {
		return fmt.Errorf("not enough data to plot")
	}

	if err := os.WriteFile(svgOut, []byte(svg), 0644); err != nil {
		return err
	}

	slog.Info("svg written", "file", svgOut)
	return nil
}
