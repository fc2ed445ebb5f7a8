// Command strainmap converts DIC displacement exports to array caches and
// renders their displacement gradient and maximum shear maps.
//
// Usage:
//
//	strainmap -input B00001.txt -convert
//	strainmap -input B00001.npy -cache -component all -format png -out plots
package main

import (
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/banshee-data/strainmap/internal/config"
	"github.com/banshee-data/strainmap/internal/dic"
	"github.com/banshee-data/strainmap/internal/fsutil"
	"github.com/banshee-data/strainmap/internal/monitoring"
	"github.com/banshee-data/strainmap/internal/render"
	"github.com/banshee-data/strainmap/internal/strain"
	"github.com/banshee-data/strainmap/internal/version"
	"github.com/banshee-data/strainmap/internal/view"
)

// Config holds the command-line options.
type Config struct {
	Input      string
	FromCache  bool
	Convert    bool
	Component  string
	Format     string
	OutputDir  string
	ConfigFile string
	Verbose    bool
}

func parseFlags(args []string) (Config, bool, error) {
	var cfg Config
	fs := flag.NewFlagSet("strainmap", flag.ContinueOnError)
	fs.StringVar(&cfg.Input, "input", "", "DIC text export, or .npy cache with -cache")
	fs.BoolVar(&cfg.FromCache, "cache", false, "Read -input as a .npy array cache")
	fs.BoolVar(&cfg.Convert, "convert", false, "Convert the text -input to a .npy cache and exit")
	fs.StringVar(&cfg.Component, "component", strain.ComponentMaxShear, "Map to render: du11, du22, du12, du21, max_shear or all")
	fs.StringVar(&cfg.Format, "format", "png", "Output format: png or html")
	fs.StringVar(&cfg.OutputDir, "out", "plots", "Output directory")
	fs.StringVar(&cfg.ConfigFile, "config", "", "Optional JSON analysis config")
	fs.BoolVar(&cfg.Verbose, "verbose", false, "Log grid inference details")
	showVersion := fs.Bool("version", false, "Print version and exit")
	if err := fs.Parse(args); err != nil {
		return cfg, false, err
	}
	return cfg, *showVersion, nil
}

func main() {
	cfg, showVersion, err := parseFlags(os.Args[1:])
	if errors.Is(err, flag.ErrHelp) {
		return
	}
	if err != nil {
		os.Exit(2)
	}
	if showVersion {
		fmt.Println(version.String())
		return
	}
	if cfg.Input == "" {
		log.Fatal("-input is required")
	}
	if cfg.Verbose {
		monitoring.SetLogWriters(monitoring.LogWriters{Ops: os.Stderr, Diag: os.Stderr})
	}

	written, err := run(cfg, fsutil.OSFileSystem{})
	if err != nil {
		log.Fatalf("strainmap: %v", err)
	}
	for _, name := range written {
		fmt.Println(name)
	}
}

// run executes one invocation and returns the files it wrote.
func run(cfg Config, fsys fsutil.FileSystem) ([]string, error) {
	if cfg.Convert {
		out, err := dic.ConvertTextToCache(fsys, cfg.Input)
		if err != nil {
			return nil, err
		}
		return []string{out}, nil
	}

	ac := config.EmptyAnalysisConfig()
	if cfg.ConfigFile != "" {
		var err error
		if ac, err = config.LoadAnalysisConfig(fsys, cfg.ConfigFile); err != nil {
			return nil, err
		}
	}

	loader := dic.NewGridLoader(fsys, ac.GridOptions())
	dir, file := filepath.Split(cfg.Input)
	load := loader.LoadText
	if cfg.FromCache {
		load = loader.LoadCache
	}
	grid, err := load(dir, file)
	if err != nil {
		return nil, err
	}
	dm, err := strain.Compute(grid)
	if err != nil {
		return nil, err
	}

	components := []string{cfg.Component}
	if cfg.Component == "all" {
		components = strain.Components
	}

	if err := fsys.MkdirAll(cfg.OutputDir, 0755); err != nil {
		return nil, fmt.Errorf("create output dir: %w", err)
	}
	base := strings.TrimSuffix(file, filepath.Ext(file))

	var written []string
	for _, c := range components {
		frame, err := view.Select(dm, c, ac.Style())
		if err != nil {
			return written, err
		}
		name := filepath.Join(cfg.OutputDir, fmt.Sprintf("%s_%s.%s", base, frame.Component, cfg.Format))
		switch cfg.Format {
		case "png":
			err = render.SavePNG(fsys, name, frame, ac.GetPlotWidth(), ac.GetPlotHeight())
		case "html":
			err = render.SaveHTML(fsys, name, frame)
		default:
			err = fmt.Errorf("unknown format %q", cfg.Format)
		}
		if err != nil {
			return written, err
		}
		written = append(written, name)
	}
	return written, nil
}
