package main

import (
	"fmt"
	"io"
	"log"
	"math"
	"os"
	"sort"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/guptarohit/asciigraph"
	"github.com/san-kum/gasdyn/internal/config"
	"github.com/san-kum/gasdyn/internal/diagnostics"
	"github.com/san-kum/gasdyn/internal/export"
	"github.com/san-kum/gasdyn/internal/physics"
	"github.com/san-kum/gasdyn/internal/storage"
	"github.com/san-kum/gasdyn/internal/units"
	"github.com/san-kum/gasdyn/internal/viz"
	"github.com/spf13/cobra"
)

var (
	dataDir string
	verbose bool
	logger  = log.New(io.Discard, "gasdyn: ", log.LstdFlags)

	// scalar inputs for eval
	density     float64
	pressure    float64
	velocity    float64
	mass        float64
	volume      float64
	temperature float64
	mu          float64
	metallicity float64
	cad         float64
	faceVel     float64
	cellWidth   float64

	// profile options
	preset       string
	configFile   string
	courant      float64
	save         bool
	plotColumn   string
	reportColumn string
	svgFile      string
	columns      []string
)

var defaultColumns = []string{"density", "temperature", "velocity", "face_velocity", "sound_speed", "entropy", "crossing_time"}

// main runs the gasdyn command tree and exits with status 1 if it fails.
func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

// newRootCmd registers the gasdyn commands. Building it resets every flag
// variable to its default.
func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "gasdyn",
		Short:         "CGS gas formula toolkit for 1-D astrophysical fluids",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if verbose {
				logger.SetOutput(os.Stderr)
			}
		},
	}

	rootCmd.PersistentFlags().StringVar(&dataDir, "data", ".gasdyn", "data directory")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "log progress to stderr")

	constantsCmd := &cobra.Command{
		Use:   "constants",
		Short: "print the CGS constant set",
		Args:  cobra.NoArgs,
		RunE:  printConstants,
	}

	muCmd := &cobra.Command{
		Use:   "mu",
		Short: "mean molecular weight for a metallicity",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Printf("%.10g\n", physics.MeanMolecularWeight(metallicity))
			return nil
		},
	}
	muCmd.Flags().Float64VarP(&metallicity, "metallicity", "z", units.SolarMetallicity, "metal mass fraction Z")

	evalCmd := &cobra.Command{
		Use:       "eval [formula]",
		Short:     "evaluate one scalar formula",
		Long:      "formulas: " + strings.Join(formulaNames(), ", "),
		Args:      cobra.ExactArgs(1),
		ValidArgs: formulaNames(),
		RunE:      evalFormula,
	}
	evalCmd.Flags().Float64Var(&density, "density", 0, "density (g/cm^3)")
	evalCmd.Flags().Float64Var(&pressure, "pressure", 0, "pressure (dyn/cm^2)")
	evalCmd.Flags().Float64Var(&velocity, "velocity", 0, "velocity (cm/s)")
	evalCmd.Flags().Float64Var(&mass, "mass", 0, "mass (g)")
	evalCmd.Flags().Float64Var(&volume, "dv", 0, "volume element (cm^3)")
	evalCmd.Flags().Float64Var(&temperature, "temperature", 0, "temperature (K)")
	evalCmd.Flags().Float64Var(&mu, "mu", 0, "mean molecular weight (default: from --metallicity)")
	evalCmd.Flags().Float64VarP(&metallicity, "metallicity", "z", units.SolarMetallicity, "metal mass fraction Z")
	evalCmd.Flags().Float64Var(&cad, "cad", 0, "adiabatic sound speed (cm/s)")
	evalCmd.Flags().Float64Var(&faceVel, "w", 0, "face velocity (cm/s)")
	evalCmd.Flags().Float64Var(&cellWidth, "dr", 0, "cell width (cm)")

	faceCmd := &cobra.Command{
		Use:   "face [v0] [v1] ...",
		Short: "cell-face velocities of a velocity profile",
		RunE:  faceVelocities,
	}

	profileCmd := &cobra.Command{
		Use:   "profile",
		Short: "evaluate a gas snapshot",
		Args:  cobra.NoArgs,
		RunE:  evalProfile,
	}
	profileCmd.Flags().StringVar(&preset, "preset", "", "use preset snapshot (model/name)")
	profileCmd.Flags().StringVar(&configFile, "config", "", "snapshot file path (yaml)")
	profileCmd.Flags().Float64VarP(&metallicity, "metallicity", "z", units.SolarMetallicity, "metal mass fraction Z")
	profileCmd.Flags().Float64Var(&courant, "courant", config.DefaultCourant, "courant number")
	profileCmd.Flags().BoolVar(&save, "save", false, "store the report under --data")
	profileCmd.Flags().StringVar(&plotColumn, "plot", "", "ascii plot of one column")
	profileCmd.Flags().StringVar(&svgFile, "svg", "", "write the --plot column as svg")
	profileCmd.Flags().StringSliceVar(&columns, "columns", defaultColumns, "columns to print")

	presetsCmd := &cobra.Command{
		Use:   "presets [model]",
		Short: "list available snapshot presets",
		Args:  cobra.MaximumNArgs(1),
		RunE:  listPresets,
	}

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "list stored reports",
		Args:  cobra.NoArgs,
		RunE:  listReports,
	}

	plotCmd := &cobra.Command{
		Use:   "plot [report_id]",
		Short: "plot a stored report column",
		Args:  cobra.ExactArgs(1),
		RunE:  plotReport,
	}
	plotCmd.Flags().StringVar(&reportColumn, "column", "density", "column to plot")
	plotCmd.Flags().StringVar(&svgFile, "svg", "", "also write the column as svg")

	rootCmd.AddCommand(constantsCmd, muCmd, evalCmd, faceCmd, profileCmd, presetsCmd, listCmd, plotCmd)
	return rootCmd
}

func printConstants(cmd *cobra.Command, args []string) error {
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "NAME\tVALUE\tUNIT")
	for _, e := range units.CGS().Entries() {
		fmt.Fprintf(w, "%s\t%.10g\t%s\n", e.Name, e.Value, e.Unit)
	}
	return w.Flush()
}

type formula struct {
	needs []string
	eval  func() float64
}

var formulas = map[string]formula{
	"mass":        {[]string{"density", "dv"}, func() float64 { return physics.Mass(density, volume) }},
	"kinetic":     {[]string{"mass", "velocity"}, func() float64 { return physics.KineticEnergy(mass, velocity) }},
	"internal":    {[]string{"mass", "pressure", "density"}, func() float64 { return physics.InternalEnergy(mass, pressure, density) }},
	"momentum":    {[]string{"mass", "velocity"}, func() float64 { return physics.Momentum(mass, velocity) }},
	"cad":         {[]string{"pressure", "density"}, func() float64 { return physics.SoundSpeed(pressure, density) }},
	"entropy":     {[]string{"temperature", "density"}, func() float64 { return physics.Entropy(temperature, density, mu) }},
	"temperature": {[]string{"pressure", "density"}, func() float64 { return physics.Temperature(pressure, density, mu) }},
	"pressure":    {[]string{"temperature", "density"}, func() float64 { return physics.Pressure(temperature, density, mu) }},
	"crossing":    {[]string{"cad", "velocity", "w", "dr"}, func() float64 { return physics.CrossingTime(cad, velocity, faceVel, cellWidth) }},
}

func formulaNames() []string {
	names := make([]string, 0, len(formulas))
	for name := range formulas {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func evalFormula(cmd *cobra.Command, args []string) error {
	f, ok := formulas[args[0]]
	if !ok {
		return fmt.Errorf("unknown formula: %s (available: %v)", args[0], formulaNames())
	}

	var missing []string
	for _, name := range f.needs {
		if !cmd.Flags().Changed(name) {
			missing = append(missing, "--"+name)
		}
	}
	if len(missing) > 0 {
		return fmt.Errorf("%s needs %s", args[0], strings.Join(missing, ", "))
	}

	if !cmd.Flags().Changed("mu") {
		mu = physics.MeanMolecularWeight(metallicity)
		logger.Printf("mu=%g from Z=%g", mu, metallicity)
	}

	fmt.Printf("%.10g\n", f.eval())
	return nil
}

func faceVelocities(cmd *cobra.Command, args []string) error {
	v := make(physics.Profile, len(args))
	for i, a := range args {
		val, err := strconv.ParseFloat(a, 64)
		if err != nil {
			return fmt.Errorf("velocity %d: %w", i, err)
		}
		v[i] = val
	}

	w, err := physics.FaceVelocity(v)
	if err != nil {
		return err
	}

	out := make([]string, len(w))
	for i, val := range w {
		out[i] = strconv.FormatFloat(val, 'g', -1, 64)
	}
	fmt.Println(strings.Join(out, " "))
	return nil
}

func loadSnapshotConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg := config.DefaultConfig()

	// Load preset if specified
	if preset != "" {
		model, name, ok := strings.Cut(preset, "/")
		if !ok {
			return nil, fmt.Errorf("preset must be model/name, got %q", preset)
		}
		cfg = config.GetPreset(model, name)
		if cfg == nil {
			return nil, fmt.Errorf("unknown preset: %s (available: %v)", preset, config.ListPresets(model))
		}
		logger.Printf("using preset %s", preset)
	}

	// Load config file if specified (overrides preset)
	if configFile != "" {
		fileCfg, err := config.Load(configFile)
		if err != nil {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
		cfg = fileCfg
		logger.Printf("loaded %s", configFile)
	}

	if preset == "" && configFile == "" {
		return nil, fmt.Errorf("profile needs --preset or --config")
	}

	// CLI flags override file values
	if cmd.Flags().Changed("metallicity") {
		cfg.Metallicity = metallicity
	}
	if cmd.Flags().Changed("courant") {
		cfg.Courant = courant
	}
	return cfg, nil
}

func evalProfile(cmd *cobra.Command, args []string) error {
	cfg, err := loadSnapshotConfig(cmd)
	if err != nil {
		return err
	}

	snap, err := cfg.Snapshot()
	if err != nil {
		return err
	}

	report, err := diagnostics.Evaluate(snap)
	if err != nil {
		return err
	}
	logger.Printf("evaluated %d cells", len(report.Cells))

	if err := printReport(report, columns); err != nil {
		return err
	}

	if plotColumn != "" {
		if err := plotValues(report.Cells, plotColumn); err != nil {
			return err
		}
	}

	if save {
		st := storage.New(dataDir)
		if err := st.Init(); err != nil {
			return err
		}
		runID, err := st.Save(snap, report)
		if err != nil {
			return err
		}
		fmt.Printf("\nreport id: %s\n", runID)
	}

	return nil
}

func printReport(report *diagnostics.Report, cols []string) error {
	fmt.Println(viz.HeaderStyle.Render(report.Name))

	data := make([][]float64, len(cols))
	for i, c := range cols {
		col, err := report.Column(c)
		if err != nil {
			return fmt.Errorf("%w (available: %v)", err, diagnostics.Columns())
		}
		data[i] = col
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprint(w, "CELL")
	for _, c := range cols {
		fmt.Fprintf(w, "\t%s", strings.ToUpper(c))
	}
	fmt.Fprintln(w)

	for i := range report.Cells {
		fmt.Fprintf(w, "%d", i)
		for j := range cols {
			fmt.Fprintf(w, "\t%.4e", data[j][i])
		}
		fmt.Fprintln(w)
	}
	if err := w.Flush(); err != nil {
		return err
	}

	t := report.Totals
	fmt.Println()
	fmt.Println(viz.Separator(60))
	printTotal("mu", t.MeanMolecularWeight, "")
	printTotal("mass", t.Mass, "g")
	printTotal("kinetic energy", t.KineticEnergy, "erg")
	printTotal("internal energy", t.InternalEnergy, "erg")
	printTotal("momentum", t.Momentum, "g cm/s")
	printTotal("min crossing time", t.MinCrossingTime, "s")
	printTotal("courant timestep", t.Timestep, "s")
	fmt.Printf("  %s %s yr\n",
		viz.Label.Render(fmt.Sprintf("%-18s", "timestep")),
		viz.Value.Render(fmt.Sprintf("%.4e", t.Timestep/units.CGS().Year)))

	for _, c := range report.Cells {
		if !physics.Profile([]float64{c.SoundSpeed, c.Temperature, c.Entropy, c.CrossingTime}).IsFinite() {
			fmt.Println(viz.Warning.Render("  warning: non-finite values present, check density and pressure inputs"))
			break
		}
	}
	return nil
}

func printTotal(label string, value float64, unit string) {
	fmt.Printf("  %s %s %s\n",
		viz.Label.Render(fmt.Sprintf("%-18s", label)),
		viz.Value.Render(fmt.Sprintf("%.4e", value)),
		unit)
}

func plotValues(cells []diagnostics.Cell, column string) error {
	data, err := diagnostics.Column(cells, column)
	if err != nil {
		return fmt.Errorf("%w (available: %v)", err, diagnostics.Columns())
	}
	if len(data) == 0 {
		return fmt.Errorf("no data to plot")
	}

	fmt.Println()
	fmt.Printf("%s %s\n", viz.Label.Render("trend"), viz.Sparkline(data, 60))
	fmt.Println()
	if gaps, ok := plottable(data); ok {
		graph := asciigraph.Plot(gaps,
			asciigraph.Height(10),
			asciigraph.Width(80),
			asciigraph.Caption(column+" vs cell"),
		)
		fmt.Println(graph)
	} else {
		fmt.Println(viz.Warning.Render("  no finite " + column + " values to plot"))
	}

	if svgFile != "" {
		svg := export.ProfileToSVG(data, 800, 400, "#00ff88")
		if svg == "" {
			return fmt.Errorf("column %s has fewer than two finite values", column)
		}
		if err := os.WriteFile(svgFile, []byte(svg), 0644); err != nil {
			return err
		}
		fmt.Printf("wrote %s\n", svgFile)
	}
	return nil
}

// plottable copies data with every non-finite value replaced by NaN, which
// asciigraph leaves as a gap. ok is false when nothing finite remains.
func plottable(data []float64) (out []float64, ok bool) {
	out = make([]float64, len(data))
	for i, v := range data {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			out[i] = math.NaN()
			continue
		}
		out[i] = v
		ok = true
	}
	return out, ok
}

func listPresets(cmd *cobra.Command, args []string) error {
	models := config.ListModels()
	if len(args) > 0 {
		models = args
	}

	for _, m := range models {
		presets := config.ListPresets(m)
		if len(presets) == 0 {
			fmt.Printf("no presets for model: %s\n", m)
			continue
		}
		fmt.Printf("presets for %s:\n", m)
		for _, p := range presets {
			fmt.Printf("  %s/%s\n", m, p)
		}
	}
	return nil
}

func listReports(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	reports, err := st.List()
	if err != nil {
		return err
	}

	if len(reports) == 0 {
		fmt.Println("no reports found")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tNAME\tTIME\tCELLS\tZ\tMASS\tDT")

	for _, r := range reports {
		fmt.Fprintf(w, "%s\t%s\t%s\t%d\t%.3f\t%.3e\t%.3es\n",
			r.ID,
			r.Name,
			r.Timestamp.Format("2006-01-02 15:04:05"),
			r.Cells,
			r.Metallicity,
			r.Totals.Mass,
			r.Totals.Timestep,
		)
	}

	return w.Flush()
}

func plotReport(cmd *cobra.Command, args []string) error {
	runID := args[0]

	st := storage.New(dataDir)
	meta, err := st.Load(runID)
	if err != nil {
		return err
	}

	cells, err := st.LoadCells(runID)
	if err != nil {
		return err
	}

	fmt.Printf("report: %s\n", meta.ID)
	fmt.Printf("name: %s\n", meta.Name)
	fmt.Printf("cells: %d\n", len(cells))

	return plotValues(cells, reportColumn)
}
