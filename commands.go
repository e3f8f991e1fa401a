package main

import (
	"context"
	"fmt"
	"os/signal"
	"strings"
	"syscall"
	"text/tabwriter"
	"time"

	"github.com/automoto/zoomview/assets"
	"github.com/automoto/zoomview/config"
	"github.com/automoto/zoomview/logger"
	"github.com/automoto/zoomview/shared/scene"
	"github.com/automoto/zoomview/shared/viewport"
	"github.com/automoto/zoomview/shared/zoom"
	"github.com/automoto/zoomview/systems"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

type cli struct {
	v          *viper.Viper
	configFile string
	log        *zap.Logger

	// simulate
	direction string
	origin    string
	interval  time.Duration

	// schemes
	check bool
}

func newRootCmd() *cobra.Command {
	c := &cli{v: config.NewViper()}

	rootCmd := &cobra.Command{
		Use:          "zoomview",
		Short:        "map viewer with gesture zoom",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return c.setup()
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			_ = c.log.Sync()
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runViewer(c.log)
		},
	}

	pf := rootCmd.PersistentFlags()
	pf.StringVar(&c.configFile, "config", "", "config file (default ./zoomview.yaml)")
	pf.Bool("debug", config.Debug.Enabled, "debug logging and overlay")
	pf.String("manifest", config.Scene.Manifest, "scheme manifest (default embedded)")
	pf.Float64("start-velocity", config.Zoom.Animation.StartVelocity, "zoom velocity of the first tick")
	pf.Float64("step", config.Zoom.Animation.Step, "velocity lost per tick")
	c.bind(pf.Lookup("debug"), config.KeyDebug)
	c.bind(pf.Lookup("manifest"), config.KeyManifest)
	c.bind(pf.Lookup("start-velocity"), config.KeyStartVelocity)
	c.bind(pf.Lookup("step"), config.KeyStep)

	f := rootCmd.Flags()
	f.String("scheme", config.Scene.Scheme, "scheme to open (default first in manifest)")
	f.Int("width", config.C.Width, "window width")
	f.Int("height", config.C.Height, "window height")
	f.Bool("hud", config.HUD.Visible, "show the HUD")
	c.bind(f.Lookup("scheme"), config.KeyScheme)
	c.bind(f.Lookup("width"), config.KeyWidth)
	c.bind(f.Lookup("height"), config.KeyHeight)
	c.bind(f.Lookup("hud"), config.KeyHUD)

	simulateCmd := &cobra.Command{
		Use:   "simulate",
		Short: "run one zoom session headless and print every tick",
		Args:  cobra.NoArgs,
		RunE:  c.runSimulate,
	}
	simulateCmd.Flags().StringVar(&c.direction, "direction", "in", "zoom direction: in or out")
	simulateCmd.Flags().StringVar(&c.origin, "origin", "480,320", "zoom origin as x,y")
	simulateCmd.Flags().DurationVar(&c.interval, "interval", time.Second/60, "tick interval")

	schemesCmd := &cobra.Command{
		Use:   "schemes",
		Short: "list the schemes of the manifest",
		Args:  cobra.NoArgs,
		RunE:  c.runSchemes,
	}
	schemesCmd.Flags().BoolVar(&c.check, "check", false, "load every scheme and report markers")

	rootCmd.AddCommand(simulateCmd, schemesCmd)
	return rootCmd
}

func (c *cli) bind(flag *pflag.Flag, key string) {
	if err := c.v.BindPFlag(key, flag); err != nil {
		panic(fmt.Sprintf("bind flag %s: %v", key, err))
	}
}

func (c *cli) setup() error {
	if err := config.Load(c.v, c.configFile); err != nil {
		return err
	}
	log, err := logger.New(config.Debug.Enabled)
	if err != nil {
		return fmt.Errorf("create logger: %w", err)
	}
	c.log = log
	systems.SetLogger(log)
	return nil
}

func parseDirection(s string) (zoom.Direction, error) {
	switch strings.ToLower(s) {
	case "in", "+":
		return zoom.In, nil
	case "out", "-":
		return zoom.Out, nil
	}
	return 0, fmt.Errorf("unknown direction %q: want in or out", s)
}

func (c *cli) runSimulate(cmd *cobra.Command, args []string) error {
	dir, err := parseDirection(c.direction)
	if err != nil {
		return err
	}
	origin, err := viewport.ParsePoint(c.origin)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	out := cmd.OutOrStdout()
	cfg := config.Zoom.Animation
	c.log.Debug("simulating zoom session",
		zap.Stringer("direction", dir),
		zap.Float64("start_velocity", cfg.StartVelocity),
		zap.Float64("step", cfg.Step),
		zap.Duration("interval", c.interval),
	)
	n, err := zoom.Simulate(ctx, cfg, dir, origin, c.interval, func(s zoom.Step) {
		fmt.Fprintf(out, "tick %3d  factor %.4f  scale %.4f  level %+.3f\n", s.Tick, s.Factor, s.Scale, s.Level)
	})
	if err != nil {
		return err
	}
	fmt.Fprintf(out, "%d ticks (expected %d)\n", n, zoom.TickCount(cfg.StartVelocity, cfg.Step))
	return nil
}

func (c *cli) runSchemes(cmd *cobra.Command, args []string) error {
	m, err := assets.LoadManifest(config.Scene.Manifest)
	if err != nil {
		return err
	}

	var loaded map[string]*scene.Scene
	if c.check {
		start := time.Now()
		loaded, err = scene.LoadAll(context.Background(), m.FS, m.Manifest, 4)
		if err != nil {
			return err
		}
		c.log.Info("all schemes loaded", zap.Int("schemes", len(loaded)), zap.Duration("took", time.Since(start)))
	}

	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "NAME\tCENTER\tLEVEL\tRANGE\tMAP\tMARKERS")
	for _, s := range m.Schemes {
		markers := fmt.Sprint(len(s.Markers))
		if sc, ok := loaded[s.Name]; ok {
			markers = fmt.Sprint(len(sc.Markers))
		}
		mapName := s.Map
		if mapName == "" {
			mapName = "grid"
		}
		fmt.Fprintf(w, "%s\t%s\t%g\t%g-%g\t%s\t%s\n", s.Name, s.Center, s.Level, s.MinLevel, s.MaxLevel, mapName, markers)
	}
	return w.Flush()
}
