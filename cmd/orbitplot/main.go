package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/san-kum/orbitplot/internal/config"
	"github.com/san-kum/orbitplot/internal/orbit"
	"github.com/san-kum/orbitplot/internal/render"
	"github.com/san-kum/orbitplot/internal/storage"
	"github.com/san-kum/orbitplot/internal/trajectory"
	"github.com/san-kum/orbitplot/internal/viz"
)

var (
	configFile string
	preset     string
	// View settings
	headerLines int
	bodies      string
	axes        string
	scale       float64
	unit        string
	limit       float64
	// Static plot
	plotOutput string
	plotWidth  float64
	plotHeight float64
	plotFormat string
	terminal   bool
	// Animation
	trailFraction float64
	fps           int
	stride        int
	animOutput    string
	frameSize     int
	show          bool
	loop          bool
	// Simulation
	simOutput   string
	integration string
	storeDir    string
	// Export
	exportOutput string
)

// main registers the orbitplot commands and exits with status 1 when a
// command fails.
func main() {
	rootCmd := &cobra.Command{
		Use:           "orbitplot",
		Short:         "plot and animate orbital simulation runs",
		SilenceUsage:  true,
		SilenceErrors: false,
	}

	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "config file path (yaml)")
	rootCmd.PersistentFlags().StringVar(&preset, "preset", "", "use view preset")
	rootCmd.PersistentFlags().IntVar(&headerLines, "header", config.DefaultHeaderLines, "header lines to skip")
	rootCmd.PersistentFlags().StringVar(&bodies, "bodies", config.DefaultBodies, "bodies to draw (all, lo:hi, i,j,k)")
	rootCmd.PersistentFlags().StringVar(&axes, "axes", config.DefaultAxes, "axis plane (xy, xz, yz)")
	rootCmd.PersistentFlags().Float64Var(&scale, "scale", config.DefaultScale, "divisor applied to coordinates")
	rootCmd.PersistentFlags().StringVar(&unit, "unit", config.DefaultUnit, "unit label after scaling")
	rootCmd.PersistentFlags().Float64Var(&limit, "limit", config.DefaultLimit, "axis limit in scaled units")

	plotCmd := &cobra.Command{
		Use:   "plot [file]",
		Short: "static trajectory plot",
		Args:  cobra.MaximumNArgs(1),
		RunE:  plotRun,
	}
	plotCmd.Flags().StringVarP(&plotOutput, "output", "o", config.DefaultPlotOutput, "output file (png, svg, pdf)")
	plotCmd.Flags().Float64Var(&plotWidth, "width", config.DefaultSizeInches, "plot width (inches)")
	plotCmd.Flags().Float64Var(&plotHeight, "height", config.DefaultSizeInches, "plot height (inches)")
	plotCmd.Flags().StringVar(&plotFormat, "format", "", "output format (png, svg, pdf), overrides the extension")
	plotCmd.Flags().BoolVar(&terminal, "terminal", false, "draw in the terminal instead of a file")

	animateCmd := &cobra.Command{
		Use:   "animate [file]",
		Short: "render an animated gif with trails",
		Args:  cobra.MaximumNArgs(1),
		RunE:  animateRun,
	}
	addAnimationFlags(animateCmd)
	animateCmd.Flags().StringVarP(&animOutput, "output", "o", config.DefaultOutput, "output gif")
	animateCmd.Flags().IntVar(&frameSize, "size", config.DefaultFrameSize, "frame size (pixels)")
	animateCmd.Flags().BoolVar(&show, "show", false, "play the animation in the terminal afterwards")

	playCmd := &cobra.Command{
		Use:   "play [file]",
		Short: "play a run in the terminal",
		Args:  cobra.MaximumNArgs(1),
		RunE:  playRun,
	}
	addAnimationFlags(playCmd)
	playCmd.Flags().BoolVar(&loop, "loop", false, "restart after the last frame")

	infoCmd := &cobra.Command{
		Use:   "info [file]",
		Short: "summarise a run",
		Args:  cobra.MaximumNArgs(1),
		RunE:  infoRun,
	}

	simulateCmd := &cobra.Command{
		Use:   "simulate [preset|file.yaml]",
		Short: "run an n-body simulation and write a run file",
		Args:  cobra.ExactArgs(1),
		RunE:  simulateRun,
	}
	simulateCmd.Flags().StringVarP(&simOutput, "output", "o", "", "run file (default <preset>.txt)")
	simulateCmd.Flags().StringVar(&integration, "integration", "", "override integration (bruteforce, leapfrog, verlet)")
	simulateCmd.Flags().StringVar(&storeDir, "store", "", "also archive the run in this directory")

	runsCmd := &cobra.Command{
		Use:   "runs [dir]",
		Short: "list archived simulation runs",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runsRun,
	}

	exportCmd := &cobra.Command{
		Use:   "export [file]",
		Short: "export a run as json",
		Args:  cobra.MaximumNArgs(1),
		RunE:  exportRun,
	}
	exportCmd.Flags().StringVarP(&exportOutput, "output", "o", "", "json file (default stdout)")

	presetsCmd := &cobra.Command{
		Use:   "presets",
		Short: "list view and simulation presets",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Println(viz.Title.Render("view presets"))
			for _, name := range config.ListPresets() {
				p := config.GetPreset(name)
				fmt.Printf("  %-12s bodies=%s axes=%s limit=%g %s\n", name, p.Bodies, p.Axes, p.Limit, p.Unit)
			}
			fmt.Println(viz.Title.Render("\nsimulation presets"))
			for _, name := range orbit.ListPresets() {
				p, _ := orbit.GetPreset(name)
				fmt.Printf("  %-16s %d bodies, %s, span %gs, step %gs\n", name, len(p.Bodies), p.Integration, p.TimeSpan, p.TimeResolution)
			}
		},
	}

	rootCmd.AddCommand(plotCmd, animateCmd, playCmd, infoCmd, simulateCmd, runsCmd, exportCmd, presetsCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func addAnimationFlags(cmd *cobra.Command) {
	cmd.Flags().Float64Var(&trailFraction, "trail", config.DefaultTrailFraction, "trail length as a fraction of all frames")
	cmd.Flags().IntVar(&fps, "fps", config.DefaultFPS, "frame rate")
	cmd.Flags().IntVar(&stride, "stride", config.DefaultStride, "render every n-th frame")
}

// loadConfig layers defaults, preset, config file and changed flags, in
// that order.
func loadConfig(cmd *cobra.Command, args []string) (*config.Config, error) {
	cfg := config.DefaultConfig()

	if preset != "" {
		p := config.GetPreset(preset)
		if p == nil {
			return nil, fmt.Errorf("unknown preset: %s (available: %v)", preset, config.ListPresets())
		}
		cfg.Apply(p)
	}

	if configFile != "" {
		loaded, err := config.Load(configFile)
		if err != nil {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
		if preset != "" {
			loaded.Apply(config.GetPreset(preset))
		}
		cfg = loaded
	}

	flags := cmd.Flags()
	if flags.Changed("header") {
		cfg.HeaderLines = headerLines
	}
	if flags.Changed("bodies") {
		cfg.Bodies = bodies
	}
	if flags.Changed("axes") {
		cfg.Axes = axes
	}
	if flags.Changed("scale") {
		cfg.Scale = scale
	}
	if flags.Changed("unit") {
		cfg.Unit = unit
	}
	if flags.Changed("limit") {
		cfg.Limit = limit
	}
	if flags.Changed("trail") {
		cfg.Animation.TrailFraction = trailFraction
	}
	if flags.Changed("fps") {
		cfg.Animation.FPS = fps
	}
	if flags.Changed("stride") {
		cfg.Animation.Stride = stride
	}
	if cmd.Name() == "animate" && flags.Changed("output") {
		cfg.Animation.Output = animOutput
	}
	if flags.Changed("size") {
		cfg.Animation.FrameSize = frameSize
	}
	if cmd.Name() == "plot" {
		if flags.Changed("output") {
			cfg.Plot.Output = plotOutput
		}
		if flags.Changed("width") {
			cfg.Plot.Width = plotWidth
		}
		if flags.Changed("height") {
			cfg.Plot.Height = plotHeight
		}
	}

	if len(args) > 0 {
		cfg.Input = args[0]
	}
	return cfg, nil
}

// loadRun reads, groups, scales and selects the bodies to draw.
func loadRun(cfg *config.Config) (*trajectory.Grouped, render.Axes, error) {
	ax, err := render.ParseAxes(cfg.Axes)
	if err != nil {
		return nil, ax, err
	}

	fmt.Println("extracting data...")
	run, err := trajectory.Open(cfg.Input, cfg.HeaderLines)
	if err != nil {
		return nil, ax, err
	}
	fmt.Println("done.")

	indices, err := render.ParseSelection(cfg.Bodies, run.Bodies())
	if err != nil {
		return nil, ax, err
	}
	run, err = run.Select(indices)
	if err != nil {
		return nil, ax, err
	}
	if run.Bodies() == 0 {
		return nil, ax, trajectory.ErrNoBodies
	}

	if cfg.Scale != 0 && cfg.Scale != 1 {
		run = run.Scaled(cfg.Scale)
	}
	return run, ax, nil
}

func plotRun(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd, args)
	if err != nil {
		return err
	}
	run, ax, err := loadRun(cfg)
	if err != nil {
		return err
	}

	fmt.Println("plotting data...")
	title := filepath.Base(cfg.Input)

	if terminal {
		canvas := viz.Plot(run, ax, cfg.Limit, 80, 40)
		fmt.Println(viz.Title.Render(title))
		fmt.Print(canvas.String())
		fmt.Println(viz.Subtle.Render(fmt.Sprintf("%s plane, ±%g %s, bodies: %s", ax, cfg.Limit, cfg.Unit, strings.Join(run.Names, ", "))))
		return nil
	}

	p, err := render.Static(run, ax, render.StaticOptions{Title: title, Unit: cfg.Unit, Limit: cfg.Limit})
	if err != nil {
		return err
	}
	out, err := render.OutputPath(cfg.Plot.Output, plotFormat)
	if err != nil {
		return err
	}
	if err := render.Save(p, out, cfg.Plot.Width, cfg.Plot.Height); err != nil {
		return err
	}
	fmt.Printf("plot written to %s\n", out)
	return nil
}

func animateRun(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd, args)
	if err != nil {
		return err
	}
	run, ax, err := loadRun(cfg)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	anim := render.NewAnimator(run, ax, cfg.Animation.TrailFraction, cfg.Animation.Stride)
	gw := render.NewGIFWriter(cfg.Animation.Output, render.GIFOptions{
		Axes:  ax,
		Unit:  cfg.Unit,
		Limit: cfg.Limit,
		Size:  cfg.Animation.FrameSize,
		FPS:   cfg.Animation.FPS,
	})

	fmt.Printf("plotting data... (%d frames, trail %d)\n", anim.Frames(), anim.TrailSize())
	start := time.Now()
	if err := anim.Play(ctx, gw, os.Stdout); err != nil {
		fmt.Println()
		return err
	}
	if err := gw.Close(); err != nil {
		return err
	}
	fmt.Printf("animation written to %s (%d frames in %v)\n", cfg.Animation.Output, gw.Frames(), time.Since(start).Round(time.Millisecond))

	if show {
		return play(anim, cfg, filepath.Base(cfg.Input), false)
	}
	return nil
}

func playRun(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd, args)
	if err != nil {
		return err
	}
	run, ax, err := loadRun(cfg)
	if err != nil {
		return err
	}
	anim := render.NewAnimator(run, ax, cfg.Animation.TrailFraction, cfg.Animation.Stride)
	return play(anim, cfg, filepath.Base(cfg.Input), loop)
}

func play(anim *render.Animator, cfg *config.Config, title string, loop bool) error {
	m := viz.NewPlayer(anim, viz.PlayerOptions{
		Title: title,
		Unit:  cfg.Unit,
		Limit: cfg.Limit,
		FPS:   cfg.Animation.FPS,
		Loop:  loop,
	})
	p := tea.NewProgram(m)
	if _, err := p.Run(); err != nil {
		return err
	}
	return nil
}

func infoRun(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd, args)
	if err != nil {
		return err
	}
	run, _, err := loadRun(cfg)
	if err != nil {
		return err
	}

	fmt.Println()
	fmt.Println(viz.Title.Render(filepath.Base(cfg.Input)))
	return viz.Summary(os.Stdout, run, cfg.Unit)
}

func simulateRun(cmd *cobra.Command, args []string) error {
	name := args[0]

	var p *orbit.Preset
	var err error
	if ext := filepath.Ext(name); ext == ".yaml" || ext == ".yml" {
		p, err = orbit.LoadPreset(name)
		name = strings.TrimSuffix(filepath.Base(name), ext)
	} else {
		p, err = orbit.GetPreset(name)
	}
	if err != nil {
		return err
	}

	if integration != "" {
		cp := *p
		cp.Integration = integration
		p = &cp
	}

	engine, err := p.Engine()
	if err != nil {
		return err
	}

	out := simOutput
	if out == "" {
		out = name + ".txt"
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	ke0, pe0 := engine.Energy()
	fmt.Printf("running %s simulation (%d bodies, %s)...\n", name, len(p.Bodies), p.Integration)
	start := time.Now()

	last := -1.0
	err = engine.Run(ctx, func(frac float64) {
		pct := render.Progress(int(frac*10000), 10000)
		if pct-last >= 1 || frac >= 1 {
			fmt.Print(render.ProgressLine(pct))
			last = pct
		}
	})
	fmt.Println()
	if err != nil {
		return err
	}
	elapsed := time.Since(start)

	f, err := os.Create(out)
	if err != nil {
		return err
	}
	defer f.Close()
	if _, err := engine.WriteTo(f); err != nil {
		return err
	}

	ke, pe := engine.Energy()
	e0, e1 := ke0+pe0, ke+pe
	fmt.Printf("completed in %v\n", elapsed)
	fmt.Printf("samples: %d\n", engine.Samples())
	fmt.Printf("energy: %.6e -> %.6e J", e0, e1)
	if e0 != 0 {
		fmt.Printf(" (drift %.2e)", (e1-e0)/e0)
	}
	fmt.Println()
	fmt.Printf("run written to %s\n", out)
	if err := f.Close(); err != nil {
		return err
	}

	if storeDir == "" {
		return nil
	}
	st := storage.New(storeDir)
	if err := st.Init(); err != nil {
		return err
	}
	names := make([]string, 0, len(p.Bodies))
	for _, b := range p.Bodies {
		names = append(names, b.Name)
	}
	meta := storage.RunMetadata{
		Preset:         name,
		Integration:    p.Integration,
		TimeSpan:       p.TimeSpan,
		TimeResolution: p.TimeResolution,
		Bodies:         names,
		Samples:        engine.Samples(),
		Metrics: map[string]float64{
			"energy_start": e0,
			"energy_end":   e1,
			"elapsed_s":    elapsed.Seconds(),
		},
	}
	runID, err := st.Save(meta, engine)
	if err != nil {
		return err
	}
	fmt.Printf("run archived as %s\n", runID)
	return nil
}

func runsRun(cmd *cobra.Command, args []string) error {
	dir := "runs"
	if len(args) > 0 {
		dir = args[0]
	}
	st := storage.New(dir)
	runs, err := st.List()
	if err != nil {
		return err
	}
	if len(runs) == 0 {
		fmt.Println(viz.Subtle.Render("no runs in " + dir))
		return nil
	}

	fmt.Println(viz.Title.Render("runs in " + dir))
	for _, r := range runs {
		fmt.Printf("  %-28s %s  %-10s %d bodies, %d samples\n",
			r.ID, r.Timestamp.Format("2006-01-02 15:04"), r.Integration, len(r.Bodies), r.Samples)
	}
	fmt.Println(viz.Subtle.Render("open one with: orbitplot plot " + st.RunPath(runs[0].ID)))
	return nil
}

func exportRun(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd, args)
	if err != nil {
		return err
	}
	src, err := trajectory.Open(cfg.Input, cfg.HeaderLines)
	if err != nil {
		return err
	}
	run := src
	unit := "m"
	if cfg.Scale != 0 && cfg.Scale != 1 {
		run = src.Scaled(cfg.Scale)
		unit = cfg.Unit
	}

	data := storage.NewExport(filepath.Base(cfg.Input), unit, run)
	if exportOutput == "" {
		return storage.WriteJSON(os.Stdout, data)
	}
	if err := storage.ExportJSON(exportOutput, data); err != nil {
		return err
	}
	fmt.Printf("json written to %s\n", exportOutput)
	return nil
}
