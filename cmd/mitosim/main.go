package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"text/tabwriter"
	"time"

	"github.com/san-kum/mitosim/internal/chart"
	"github.com/san-kum/mitosim/internal/config"
	"github.com/san-kum/mitosim/internal/content"
	"github.com/san-kum/mitosim/internal/export"
	"github.com/san-kum/mitosim/internal/logging"
	"github.com/san-kum/mitosim/internal/mitosis"
	"github.com/san-kum/mitosim/internal/navigator"
	"github.com/san-kum/mitosim/internal/tui"
	"github.com/spf13/cobra"
)

var (
	configFile string
	preset     string
	lang       string
	debug      bool
	// chart
	chartWidth  int
	chartHeight int
	chartComp   string
	svgPath     string
	svgWidth    int
	svgHeight   int
	noColor     bool
	// play
	ticks  int
	period time.Duration
	// describe
	cellType string
	// stats
	asJSON  bool
	outPath string
)

// main registers the commands and runs the TUI when no subcommand is given.
func main() {
	rootCmd := &cobra.Command{
		Use:           "mitosim",
		Short:         "interactive mitosis explorer",
		SilenceUsage:  true,
		SilenceErrors: false,
		RunE:          runTUI,
	}

	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "config file path (yaml)")
	rootCmd.PersistentFlags().StringVar(&preset, "preset", "", "use preset configuration")
	rootCmd.PersistentFlags().StringVar(&lang, "lang", "", "language: zh or en")
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "debug logging")

	tuiCmd := &cobra.Command{
		Use:   "tui",
		Short: "interactive terminal explorer",
		RunE:  runTUI,
	}

	statsCmd := &cobra.Command{
		Use:   "stats [composition] [phase]",
		Short: "chromosome, DNA and chromatid counts",
		Args:  cobra.MaximumNArgs(2),
		RunE:  runStats,
	}
	statsCmd.Flags().BoolVar(&asJSON, "json", false, "print as JSON")
	statsCmd.Flags().StringVarP(&outPath, "output", "o", "", "write JSON to file")

	chartCmd := &cobra.Command{
		Use:   "chart",
		Short: "quantity chart over the cell cycle",
		RunE:  runChart,
	}
	chartCmd.Flags().IntVar(&chartWidth, "width", 0, "chart width in columns")
	chartCmd.Flags().IntVar(&chartHeight, "height", 0, "chart height in rows")
	chartCmd.Flags().StringVar(&chartComp, "composition", "", "composition to scale the chart to")
	chartCmd.Flags().StringVar(&svgPath, "svg", "", "also write the chart as SVG to this path")
	chartCmd.Flags().IntVar(&svgWidth, "svg-width", 800, "svg width")
	chartCmd.Flags().IntVar(&svgHeight, "svg-height", 400, "svg height")
	chartCmd.Flags().BoolVar(&noColor, "no-color", false, "plain chart output")

	playCmd := &cobra.Command{
		Use:   "play",
		Short: "autoplay through the phases without the TUI",
		RunE:  runPlay,
	}
	playCmd.Flags().IntVar(&ticks, "ticks", 4, "number of autoplay steps (0 runs until interrupted)")
	playCmd.Flags().DurationVar(&period, "period", 0, "autoplay period (default from config)")

	describeCmd := &cobra.Command{
		Use:   "describe [phase]",
		Short: "describe a phase",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runDescribe,
	}
	describeCmd.Flags().StringVar(&cellType, "cell", "", "cell type: animal or plant")

	presetsCmd := &cobra.Command{
		Use:   "presets",
		Short: "list available presets",
		RunE: func(cmd *cobra.Command, args []string) error {
			w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
			fmt.Fprintln(w, "NAME\tCELL\tCOMPOSITION\tPHASE\tPERIOD\tAUTOSTART")
			for _, name := range config.ListPresets() {
				p := config.GetPreset(name)
				fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%v\n", name, p.CellType, p.Composition, p.Phase, p.AutoplayPeriod(), p.Autostart)
			}
			return w.Flush()
		},
	}

	compositionsCmd := &cobra.Command{
		Use:   "compositions [cell-type]",
		Short: "list chromosome compositions",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runCompositions,
	}

	rootCmd.AddCommand(tuiCmd, statsCmd, chartCmd, playCmd, describeCmd, presetsCmd, compositionsCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// loadConfig applies, in increasing priority: defaults, preset, config file, flags.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg := config.DefaultConfig()

	if preset != "" {
		cfg = config.GetPreset(preset)
		if cfg == nil {
			return nil, fmt.Errorf("unknown preset: %s (available: %v)", preset, config.ListPresets())
		}
	}

	if configFile != "" {
		loaded, err := config.Load(configFile)
		if err != nil {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
		cfg = loaded
	}

	if cmd.Flags().Changed("lang") {
		cfg.Lang = lang
	}
	if debug {
		cfg.LogLevel = "debug"
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func newLogger(cfg *config.Config) *slog.Logger {
	level, err := logging.ParseLevel(cfg.LogLevel)
	if err != nil {
		level = slog.LevelInfo
	}
	return logging.New(level)
}

func runTUI(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	state, err := cfg.InitialState()
	if err != nil {
		return err
	}

	// stderr belongs to the alt screen, so debug logs go to a file
	logger := logging.NewNop()
	if debug {
		f, err := os.OpenFile("mitosim-debug.log", os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
		if err != nil {
			return err
		}
		defer f.Close()
		logger = logging.NewWriter(f, slog.LevelDebug)
	}

	return tui.Run(tui.Options{
		State:       state,
		Period:      cfg.AutoplayPeriod(),
		Autostart:   cfg.Autostart,
		Lang:        cfg.Language(),
		ChartWidth:  cfg.Chart.Width,
		ChartHeight: cfg.Chart.Height,
		Color:       cfg.Chart.Color,
		Logger:      logger,
	})
}

func runStats(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	l := cfg.Language()

	comps := mitosis.AllCompositions()
	if len(args) > 0 {
		c, err := mitosis.ParseComposition(args[0])
		if err != nil {
			return err
		}
		comps = []mitosis.Composition{c}
	}
	phases := mitosis.Phases()
	if len(args) > 1 {
		p, err := mitosis.ParsePhase(args[1])
		if err != nil {
			return err
		}
		phases = []mitosis.Phase{p}
	}

	data, err := export.StatsTable(comps, phases, l)
	if err != nil {
		return err
	}
	if outPath != "" {
		if err := export.WriteStatsJSON(outPath, data); err != nil {
			return err
		}
		fmt.Printf("stats written to %s\n", outPath)
		return nil
	}
	if asJSON {
		return export.EncodeJSON(os.Stdout, data)
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	if l == content.En {
		fmt.Fprintln(w, "COMPOSITION\tPHASE\tCHROMOSOMES\tDNA\tCHROMATIDS")
	} else {
		fmt.Fprintln(w, "染色体组成\t时期\t染色体\t核DNA\t染色单体")
	}
	for _, r := range data.Rows {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n", r.Composition, r.Title,
			r.Chromosomes.Label, r.DNA.Label, r.Chromatids.Label)
	}
	return w.Flush()
}

func runChart(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	logger := newLogger(cfg)

	comp := cfg.ChartComposition()
	if chartComp != "" {
		comp, err = mitosis.ParseComposition(chartComp)
		if err != nil {
			return err
		}
	}
	width, height := cfg.Chart.Width, cfg.Chart.Height
	if chartWidth > 0 {
		width = chartWidth
	}
	if chartHeight > 0 {
		height = chartHeight
	}

	c, err := chart.New(comp, cfg.Language())
	if err != nil {
		return err
	}
	fmt.Println(c.Render(chart.RenderOptions{
		Width:  width,
		Height: height,
		Color:  cfg.Chart.Color && !noColor,
	}))

	if svgPath != "" {
		if err := export.WriteChartSVG(svgPath, c, svgWidth, svgHeight); err != nil {
			return err
		}
		logger.Info("chart written", "path", svgPath, "composition", comp)
	}
	return nil
}

func runPlay(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	logger := newLogger(cfg)
	state, err := cfg.InitialState()
	if err != nil {
		return err
	}
	p := cfg.AutoplayPeriod()
	if period > 0 {
		p = period
	}
	l := cfg.Language()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	loop := navigator.NewLoop()
	var nav *navigator.Navigator
	steps := 0
	observer := func(s navigator.Snapshot) {
		printSnapshot(s, l)
		if !s.Playing {
			return
		}
		steps++
		// the first playing snapshot is the start itself
		if ticks > 0 && steps > ticks {
			cancel()
		}
	}

	nav, err = navigator.New(loop,
		navigator.WithInitialState(state),
		navigator.WithPeriod(p),
		navigator.WithLogger(logger),
		navigator.WithObserver(observer),
	)
	if err != nil {
		return err
	}

	logger.Info("autoplay", "period", p, "ticks", ticks)
	loop.Post(nav.StartAutoplay)

	err = loop.Run(ctx)
	nav.Close()
	if errors.Is(err, context.Canceled) {
		return nil
	}
	return err
}

func printSnapshot(s navigator.Snapshot, l content.Lang) {
	title, _ := content.Title(s.State.Phase, l)
	img, _ := content.ImagePath(s.State.CellType, s.State.Composition, s.State.Phase)
	per := l.PerCell()
	fmt.Printf("%s  %-18s %s  %s  chromosomes=%s dna=%s chromatids=%s  %s\n",
		time.Now().Format("15:04:05"),
		title,
		content.CellTypeLabel(s.State.CellType, l),
		s.State.Composition,
		s.Stats.Chromosomes.Format(per),
		s.Stats.DNA.Format(per),
		s.Stats.Chromatids.Format(per),
		img,
	)
}

func runDescribe(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	state, err := cfg.InitialState()
	if err != nil {
		return err
	}
	phase, cell := state.Phase, state.CellType
	if len(args) > 0 {
		if phase, err = mitosis.ParsePhase(args[0]); err != nil {
			return err
		}
	}
	if cellType != "" {
		if cell, err = mitosis.ParseCellType(cellType); err != nil {
			return err
		}
	}

	d, err := content.Describe(phase, cell, cfg.Language())
	if err != nil {
		return err
	}
	fmt.Printf("%s · %s\n\n", d.Title, d.CellLabel)
	fmt.Println(d.Analogy)
	fmt.Println()
	for _, f := range d.Features {
		fmt.Printf("  • %s\n", f)
	}
	fmt.Printf("\n%s\n\n「%s」\n", d.Definition, d.Mnemonic)
	return nil
}

func runCompositions(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	l := cfg.Language()

	cells := mitosis.CellTypes()
	if len(args) > 0 {
		c, err := mitosis.ParseCellType(args[0])
		if err != nil {
			return err
		}
		cells = []mitosis.CellType{c}
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "CELL\tCOMPOSITION\tN\tPLOIDY\tTOTAL\tLABEL")
	for _, cell := range cells {
		comps, err := mitosis.CompositionsFor(cell)
		if err != nil {
			return err
		}
		for _, c := range comps {
			fmt.Fprintf(w, "%s\t%s\t%d\t%d\t%d\t%s\n", cell, c, c.BaseNumber(), c.Ploidy(), c.Total(),
				strings.TrimSpace(content.CompositionLabel(c, l)))
		}
	}
	return w.Flush()
}
