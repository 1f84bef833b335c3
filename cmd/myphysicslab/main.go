package main

import (
	"encoding/csv"
	"fmt"
	"os"
	"strconv"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/guptarohit/asciigraph"
	"github.com/spf13/cobra"

	"github.com/myphysicslab/myphysicslab-sub000/internal/config"
	"github.com/myphysicslab/myphysicslab-sub000/internal/gui"
	"github.com/myphysicslab/myphysicslab-sub000/internal/lab"
	"github.com/myphysicslab/myphysicslab-sub000/internal/ode"
	"github.com/myphysicslab/myphysicslab-sub000/internal/storage"
	"github.com/myphysicslab/myphysicslab-sub000/internal/tui"
)

var (
	dataDir    string
	dt         float64
	duration   float64
	solverName string
	configFile string
	preset     string
	xAxis      string
	yAxis      string
	outFile    string
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "myphysicslab",
		Short: "interactive physics simulation lab",
		RunE: func(cmd *cobra.Command, args []string) error {
			l, err := lab.New("pendulum")
			if err != nil {
				return err
			}
			return tui.Run(l, "rk4", config.DefaultDt)
		},
	}
	rootCmd.PersistentFlags().StringVar(&dataDir, "data", ".myphysicslab", "data directory")

	runCmd := &cobra.Command{
		Use:   "run [sim]",
		Short: "run a simulation and store the result",
		Args:  cobra.ExactArgs(1),
		RunE:  runSimulation,
	}
	runCmd.Flags().Float64Var(&dt, "dt", config.DefaultDt, "timestep")
	runCmd.Flags().Float64Var(&duration, "time", config.DefaultDuration, "duration")
	runCmd.Flags().StringVar(&solverName, "solver", "rk4", "solver (rk4, euler)")
	runCmd.Flags().StringVar(&configFile, "config", "", "config file path (yaml)")
	runCmd.Flags().StringVar(&preset, "preset", "", "use preset configuration")

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "list stored runs",
		RunE:  listRuns,
	}

	simsCmd := &cobra.Command{
		Use:   "sims",
		Short: "list available simulations",
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, n := range lab.Names() {
				fmt.Println(n)
			}
			return nil
		},
	}

	plotCmd := &cobra.Command{
		Use:   "plot [run_id]",
		Short: "plot stored run variables against time",
		Args:  cobra.ExactArgs(1),
		RunE:  plotRun,
	}

	phaseCmd := &cobra.Command{
		Use:   "phase [run_id]",
		Short: "phase space scatter plot",
		Args:  cobra.ExactArgs(1),
		RunE:  phasePlot,
	}
	phaseCmd.Flags().StringVar(&xAxis, "x", "", "variable name for x (default: first)")
	phaseCmd.Flags().StringVar(&yAxis, "y", "", "variable name for y (default: second)")

	exportCmd := &cobra.Command{
		Use:   "export [run_id]",
		Short: "export run data as JSON",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return storage.New(dataDir).ExportJSON(args[0], outFile)
		},
	}
	exportCmd.Flags().StringVar(&outFile, "out", "", "output file (default: stdout)")

	exportCSVCmd := &cobra.Command{
		Use:   "export-csv [run_id]",
		Short: "export run data as CSV to stdout",
		Args:  cobra.ExactArgs(1),
		RunE:  exportCSV,
	}

	liveCmd := &cobra.Command{
		Use:   "live [sim]",
		Short: "interactive terminal view with mouse dragging",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runLive,
	}
	liveCmd.Flags().Float64Var(&dt, "dt", config.DefaultDt, "timestep")
	liveCmd.Flags().StringVar(&solverName, "solver", "rk4", "solver")
	liveCmd.Flags().StringVar(&preset, "preset", "", "use preset configuration")

	guiCmd := &cobra.Command{
		Use:   "gui [sim]",
		Short: "graphical window with mouse dragging",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runGUI,
	}
	guiCmd.Flags().Float64Var(&dt, "dt", config.DefaultDt, "timestep")
	guiCmd.Flags().StringVar(&solverName, "solver", "rk4", "solver")
	guiCmd.Flags().StringVar(&preset, "preset", "", "use preset configuration")

	presetsCmd := &cobra.Command{
		Use:   "presets [sim]",
		Short: "list presets for a simulation",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			presets := config.ListPresets(args[0])
			if len(presets) == 0 {
				fmt.Printf("no presets for %s\n", args[0])
				return nil
			}
			for _, p := range presets {
				fmt.Println(p)
			}
			return nil
		},
	}

	compareCmd := &cobra.Command{
		Use:   "compare [sim]",
		Short: "compare solvers on the same simulation",
		Args:  cobra.ExactArgs(1),
		RunE:  compareSolvers,
	}
	compareCmd.Flags().Float64Var(&dt, "dt", config.DefaultDt, "timestep")
	compareCmd.Flags().Float64Var(&duration, "time", config.DefaultDuration, "duration")

	rootCmd.AddCommand(runCmd, listCmd, simsCmd, plotCmd, phaseCmd,
		exportCmd, exportCSVCmd, liveCmd, guiCmd, presetsCmd, compareCmd)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// buildLab constructs the named lab with preset and config file applied,
// honoring explicitly set CLI flags over file values.
func buildLab(cmd *cobra.Command, name string) (*lab.Lab, error) {
	cfg := config.DefaultConfig()
	cfg.Sim = name

	if preset != "" {
		p := config.GetPreset(name, preset)
		if p == nil {
			return nil, fmt.Errorf("unknown preset %q (available: %v)",
				preset, config.ListPresets(name))
		}
		cfg = p
	}
	if configFile != "" {
		fileCfg, err := config.Load(configFile)
		if err != nil {
			return nil, err
		}
		cfg = fileCfg
		name = cfg.Sim
	}

	if cmd.Flags().Changed("dt") || cfg.Dt == 0 {
		cfg.Dt = dt
	}
	if cmd.Flags().Changed("time") || cfg.Duration == 0 {
		cfg.Duration = duration
	}
	if cmd.Flags().Changed("solver") || cfg.Solver == "" {
		cfg.Solver = solverName
	}
	dt = cfg.Dt
	duration = cfg.Duration
	solverName = cfg.Solver

	l, err := lab.New(name)
	if err != nil {
		return nil, err
	}
	if err := lab.Apply(l, cfg); err != nil {
		return nil, err
	}
	return l, nil
}

func runSimulation(cmd *cobra.Command, args []string) error {
	l, err := buildLab(cmd, args[0])
	if err != nil {
		return err
	}

	st := storage.New(dataDir)
	if err := st.Init(); err != nil {
		return err
	}

	fmt.Printf("running %s...\n", l.Name)
	start := time.Now()
	result, err := lab.Run(l, solverName, dt, duration)
	if err != nil {
		return err
	}
	elapsed := time.Since(start)

	runID, err := st.Save(l.Name, solverName, dt, duration, result)
	if err != nil {
		return err
	}

	fmt.Printf("completed in %v\n", elapsed)
	fmt.Printf("run id: %s\n", runID)
	fmt.Printf("steps: %d\n", len(result.States))
	fmt.Println("\nmetrics:")
	for name, val := range result.Metrics {
		fmt.Printf("  %s: %.6f\n", name, val)
	}
	return nil
}

func listRuns(cmd *cobra.Command, args []string) error {
	runs, err := storage.New(dataDir).List()
	if err != nil {
		return err
	}
	if len(runs) == 0 {
		fmt.Println("no runs found")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tSIM\tTIME\tDURATION\tDT\tSOLVER")
	for _, run := range runs {
		fmt.Fprintf(w, "%s\t%s\t%s\t%.2fs\t%.4fs\t%s\n",
			run.ID, run.Sim,
			run.Timestamp.Format("2006-01-02 15:04:05"),
			run.Duration, run.Dt, run.Solver)
	}
	return w.Flush()
}

func plotRun(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	meta, err := st.Load(args[0])
	if err != nil {
		return err
	}
	res, err := st.LoadResult(args[0])
	if err != nil {
		return err
	}
	if len(res.States) == 0 {
		return fmt.Errorf("no data to plot")
	}

	fmt.Printf("run: %s\nsim: %s\nsamples: %d\n\n", meta.ID, meta.Sim, len(res.States))

	for _, name := range res.Names {
		if name == "TIME" {
			continue
		}
		data := res.Column(name)
		graph := asciigraph.Plot(data,
			asciigraph.Height(10),
			asciigraph.Width(80),
			asciigraph.Caption(strings.ToLower(strings.ReplaceAll(name, "_", " "))),
		)
		fmt.Println(graph)
		fmt.Println()
	}
	return nil
}

func phasePlot(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	res, err := st.LoadResult(args[0])
	if err != nil {
		return err
	}
	if len(res.States) == 0 {
		return fmt.Errorf("no data to plot")
	}

	xName, yName := xAxis, yAxis
	if xName == "" && len(res.Names) > 0 {
		xName = res.Names[0]
	}
	if yName == "" && len(res.Names) > 1 {
		yName = res.Names[1]
	}
	xData := res.Column(xName)
	yData := res.Column(yName)
	if xData == nil || yData == nil {
		return fmt.Errorf("unknown variable (have: %v)", res.Names)
	}

	xMin, xMax := bounds(xData)
	yMin, yMax := bounds(yData)
	xRange := xMax - xMin
	yRange := yMax - yMin
	if xRange == 0 {
		xRange = 1
	}
	if yRange == 0 {
		yRange = 1
	}

	const width, height = 70, 20
	canvas := make([][]rune, height)
	for i := range canvas {
		canvas[i] = make([]rune, width)
		for j := range canvas[i] {
			canvas[i][j] = ' '
		}
	}
	for i := range xData {
		px := int(float64(width-1) * (xData[i] - xMin) / xRange)
		py := height - 1 - int(float64(height-1)*(yData[i]-yMin)/yRange)
		if px >= 0 && px < width && py >= 0 && py < height {
			canvas[py][px] = '·'
		}
	}

	fmt.Printf("%s vs %s\n\n", yName, xName)
	for _, row := range canvas {
		fmt.Println(string(row))
	}
	fmt.Printf("\nx: [%.3f, %.3f]  y: [%.3f, %.3f]\n", xMin, xMax, yMin, yMax)
	return nil
}

func bounds(data []float64) (float64, float64) {
	lo, hi := data[0], data[0]
	for _, v := range data {
		if v < lo {
			lo = v
		}
		if v > hi {
			hi = v
		}
	}
	return lo, hi
}

func exportCSV(cmd *cobra.Command, args []string) error {
	res, err := storage.New(dataDir).LoadResult(args[0])
	if err != nil {
		return err
	}
	if len(res.States) == 0 {
		return fmt.Errorf("no data to export")
	}

	w := csv.NewWriter(os.Stdout)
	defer w.Flush()

	if err := w.Write(append([]string{"time"}, res.Names...)); err != nil {
		return err
	}
	for i, state := range res.States {
		row := []string{strconv.FormatFloat(res.Times[i], 'g', -1, 64)}
		for _, val := range state {
			row = append(row, strconv.FormatFloat(val, 'g', -1, 64))
		}
		if err := w.Write(row); err != nil {
			return err
		}
	}
	return nil
}

func runLive(cmd *cobra.Command, args []string) error {
	name := "pendulum"
	if len(args) > 0 {
		name = args[0]
	}
	l, err := buildLab(cmd, name)
	if err != nil {
		return err
	}
	return tui.Run(l, solverName, dt)
}

func runGUI(cmd *cobra.Command, args []string) error {
	name := "pendulum"
	if len(args) > 0 {
		name = args[0]
	}
	l, err := buildLab(cmd, name)
	if err != nil {
		return err
	}
	return gui.Run(l, solverName, dt)
}

func compareSolvers(cmd *cobra.Command, args []string) error {
	name := args[0]

	fmt.Printf("comparing solvers for %s (dt=%.4f, duration=%.1fs)\n\n", name, dt, duration)
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "SOLVER\tFINAL_ENERGY\tDRIFT\tTIME")

	for _, sn := range lab.SolverNames() {
		l, err := lab.New(name)
		if err != nil {
			return err
		}
		e0 := 0.0
		if es, ok := l.System.(ode.EnergySystem); ok {
			e0 = es.EnergyInfo().Total()
		}
		start := time.Now()
		result, err := lab.Run(l, sn, dt, duration)
		elapsed := time.Since(start)
		if err != nil {
			fmt.Fprintf(w, "%s\terror: %v\n", sn, err)
			continue
		}
		final := result.Metrics["final_total_energy"]
		fmt.Fprintf(w, "%s\t%.6f\t%.2e\t%v\n", sn, final, final-e0, elapsed)
	}
	return w.Flush()
}
