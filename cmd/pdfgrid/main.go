package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"

	"github.com/textops/pdfgrid"
	"github.com/textops/pdfgrid/pkg/layout"
)

// fileConfig mirrors the command-line flags. Explicit flags win over file
// values.
type fileConfig struct {
	YTolerance       float64 `yaml:"y_tolerance"`
	CharWidthDivisor float64 `yaml:"char_width_divisor"`
	Layout           bool    `yaml:"layout"`
	Debug            bool    `yaml:"debug"`
}

func main() {
	configPath := flag.String("config", "", "Path to a YAML config file")
	layoutFlag := flag.Bool("layout", false, "Reconstruct the visual layout instead of printing flat text")
	jsonOut := flag.Bool("json", false, "Emit the structured result as JSON (implies -layout)")
	infoOnly := flag.Bool("info", false, "Print page count and dimensions, extract nothing")
	debug := flag.Bool("debug", false, "Log per-fragment clustering diagnostics to stderr")
	yTol := flag.Float64("y-tolerance", layout.DefaultYTolerance, "Vertical tolerance for row clustering")
	charWidth := flag.Float64("char-width", layout.DefaultCharWidthDivisor, "Assumed character width in page units")
	flag.Parse()

	if flag.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "Usage: pdfgrid [flags] <pdf_file>")
		flag.PrintDefaults()
		os.Exit(2)
	}
	path := flag.Arg(0)

	cfg := fileConfig{
		YTolerance:       layout.DefaultYTolerance,
		CharWidthDivisor: layout.DefaultCharWidthDivisor,
	}
	if *configPath != "" {
		if err := loadConfig(*configPath, &cfg); err != nil {
			fmt.Fprintf(os.Stderr, "pdfgrid: %v\n", err)
			os.Exit(1)
		}
	}

	// Flags set on the command line override the config file.
	set := map[string]bool{}
	flag.Visit(func(f *flag.Flag) { set[f.Name] = true })
	if set["y-tolerance"] {
		cfg.YTolerance = *yTol
	}
	if set["char-width"] {
		cfg.CharWidthDivisor = *charWidth
	}
	if set["layout"] {
		cfg.Layout = *layoutFlag
	}
	if set["debug"] {
		cfg.Debug = *debug
	}
	if *jsonOut {
		cfg.Layout = true
	}

	if *infoOnly {
		info, err := pdfgrid.Inspect(path)
		if err != nil {
			fmt.Fprintf(os.Stderr, "pdfgrid: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("Pages: %d\n", info.PageCount)
		for i, dim := range info.Pages {
			fmt.Printf("  Page %d: %.2f x %.2f\n", i+1, dim.Width, dim.Height)
		}
		return
	}

	opts := []pdfgrid.Option{
		pdfgrid.WithYTolerance(cfg.YTolerance),
		pdfgrid.WithCharWidthDivisor(cfg.CharWidthDivisor),
		pdfgrid.WithLayout(cfg.Layout),
	}
	if cfg.Debug {
		log := logrus.New()
		log.SetOutput(os.Stderr)
		log.SetLevel(logrus.DebugLevel)
		opts = append(opts, pdfgrid.WithDebugLogger(log))
	}

	result, err := pdfgrid.ExtractFile(path, opts...)
	if err != nil {
		fmt.Fprintf(os.Stderr, "pdfgrid: %v\n", err)
		os.Exit(1)
	}

	switch r := result.(type) {
	case pdfgrid.FlatText:
		fmt.Println(string(r))
	case *pdfgrid.StructuredResult:
		if *jsonOut {
			enc := json.NewEncoder(os.Stdout)
			enc.SetIndent("", "  ")
			if err := enc.Encode(r); err != nil {
				fmt.Fprintf(os.Stderr, "pdfgrid: %v\n", err)
				os.Exit(1)
			}
		} else {
			fmt.Print(r.Layout)
		}
	}
}

func loadConfig(path string, cfg *fileConfig) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read config: %w", err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("failed to parse config: %w", err)
	}
	return nil
}
