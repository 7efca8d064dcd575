// Package main provides the gatepath command: it reads a gates CSV file,
// synthesizes the ordered waypoint path through the gates and optionally
// writes the path CSV and renders plots.
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/banshee-data/gatepath/internal/config"
	"github.com/banshee-data/gatepath/internal/fsutil"
	"github.com/banshee-data/gatepath/internal/gate"
	"github.com/banshee-data/gatepath/internal/gatecsv"
	"github.com/banshee-data/gatepath/internal/monitoring"
	"github.com/banshee-data/gatepath/internal/pathplot"
	"github.com/banshee-data/gatepath/internal/version"
)

// Options holds the command-line configuration.
type Options struct {
	GatesIn    string
	PathIn     string
	PathOut    string
	ConfigPath string
	PlotPNG    string
	PlotHTML   string
	YawMode    string
	Role       bool
	Home       bool
	Print      bool
	Verbose    bool
	Version    bool
}

func main() {
	opts, err := parseFlags(flag.CommandLine, os.Args[1:])
	if err != nil {
		os.Exit(2)
	}

	if opts.Version {
		fmt.Println(version.String())
		return
	}

	monitoring.SetVerbose(opts.Verbose)
	if err := run(opts, fsutil.OSFileSystem{}, os.Stdout); err != nil {
		log.Fatalf("gatepath: %v", err)
	}
}

func parseFlags(fs *flag.FlagSet, args []string) (Options, error) {
	var opts Options

	fs.StringVar(&opts.GatesIn, "gatesin", "gates.csv", "Gates input file")
	fs.StringVar(&opts.PathIn, "pathin", "", "Path input file (spline overlay for plots)")
	fs.StringVar(&opts.PathOut, "pathout", "", "Path output file")
	fs.StringVar(&opts.ConfigPath, "config", "", "Planner configuration JSON file")
	fs.StringVar(&opts.PlotPNG, "plot", "", "Write a PNG plot of gates and path to this file")
	fs.StringVar(&opts.PlotHTML, "html", "", "Write an interactive HTML chart to this file")
	fs.StringVar(&opts.YawMode, "yaw", "", "Yaw mode override: gate or tangent")
	fs.BoolVar(&opts.Role, "role", false, "Include the waypoint role column in the path output")
	fs.BoolVar(&opts.Home, "home", false, "Append a return-to-origin row to the path output")
	fs.BoolVar(&opts.Print, "print", true, "Print the synthesized path to stdout")
	fs.BoolVar(&opts.Verbose, "verbose", false, "Enable verbose logging")
	fs.BoolVar(&opts.Version, "version", false, "Print version and exit")

	err := fs.Parse(args)
	return opts, err
}

// loadPlannerConfig reads the optional config file and applies flag
// overrides on top of it.
func loadPlannerConfig(opts Options) (*config.PlannerConfig, error) {
	cfg := config.EmptyPlannerConfig()
	if opts.ConfigPath != "" {
		var err error
		if cfg, err = config.LoadPlannerConfig(opts.ConfigPath); err != nil {
			return nil, err
		}
	}
	if opts.YawMode != "" {
		mode := opts.YawMode
		cfg.YawMode = &mode
	}
	if opts.Role {
		cfg.IncludeRole = &opts.Role
	}
	if opts.Home {
		cfg.AppendHome = &opts.Home
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

// run executes one planning pass. Every input is loaded and validated
// before any output is written. Plot failures are logged and do not fail
// the run.
func run(opts Options, fsys fsutil.FileSystem, stdout io.Writer) error {
	if opts.GatesIn == "" {
		return fmt.Errorf("must specify gates input file (-gatesin)")
	}

	cfg, err := loadPlannerConfig(opts)
	if err != nil {
		return err
	}

	gates, err := gatecsv.LoadGates(fsys, opts.GatesIn)
	if err != nil {
		return err
	}

	var spline []gatecsv.SplinePoint
	if opts.PathIn != "" {
		if spline, err = gatecsv.LoadSpline(fsys, opts.PathIn); err != nil {
			return err
		}
	}

	gateCfg := cfg.GateConfig()
	path, err := gate.Synthesize(gates, gateCfg)
	if err != nil {
		return err
	}
	monitoring.Debugf("synthesized %d waypoints from %d gates", len(path), len(gates))

	if opts.Print {
		if err := gatecsv.PrintPath(stdout, path); err != nil {
			return fmt.Errorf("print path: %w", err)
		}
	}

	if opts.PathOut != "" {
		if err := gatecsv.SavePath(fsys, opts.PathOut, path, cfg.WriteOptions()); err != nil {
			return err
		}
	}

	scene := pathplot.Scene{Gates: gates, Path: path, Spline: spline, Config: gateCfg}
	plotOpts := cfg.PlotOptions()
	if opts.PlotPNG != "" {
		if err := pathplot.SavePNG(fsys, opts.PlotPNG, scene, plotOpts); err != nil {
			monitoring.Logf("Plot unavailable, continuing without it: %v", err)
		}
	}
	if opts.PlotHTML != "" {
		if err := pathplot.SaveHTML(fsys, opts.PlotHTML, scene, plotOpts); err != nil {
			monitoring.Logf("Chart unavailable, continuing without it: %v", err)
		}
	}
	if opts.PlotPNG == "" && opts.PlotHTML == "" {
		monitoring.Debugf("no plot requested")
	}
	return nil
}
