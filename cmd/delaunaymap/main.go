package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/logrusorgru/aurora"
	imgcat "github.com/martinlindhe/imgcat/lib"
	"github.com/osuushi/delaunay"
	"github.com/osuushi/delaunay/advanced"
	"github.com/pkg/errors"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/alecthomas/kingpin.v2"
)

// Demo of surface interpolation. Input should be newline separated records of
// the form "x y z" or "x y z index", separated by whitespace or commas. Blank
// lines and lines starting with # are ignored.
//
// Every --query is answered with the interpolated elevation, or "not found" if
// it falls outside the convex hull of the input.

type options struct {
	inputPath  string
	configPath string
	queries    []string
	indices    bool
	pngPath    string
	scale      float64
	imgcat     bool
	color      bool
}

// Swapped out in tests
var catFile = imgcat.CatFile

func main() {
	app := kingpin.New("delaunaymap", "Interpolate elevations over scattered points.")
	var opts options
	var verbose bool
	app.Flag("input", "Read points from this file instead of stdin.").Short('i').StringVar(&opts.inputPath)
	app.Flag("config", "YAML file with predicate tolerances.").Short('c').StringVar(&opts.configPath)
	app.Flag("query", "Location to interpolate, as x,y. May be repeated.").Short('q').StringsVar(&opts.queries)
	app.Flag("indices", "Print the point indices of every triangle.").BoolVar(&opts.indices)
	app.Flag("png", "Render the mesh to this PNG file.").StringVar(&opts.pngPath)
	app.Flag("scale", "Pixels per unit when rendering.").Default("10").Float64Var(&opts.scale)
	app.Flag("imgcat", "Print the rendered mesh inline (iTerm only). Requires --png.").BoolVar(&opts.imgcat)
	app.Flag("color", "Colorize output.").Default("true").BoolVar(&opts.color)
	app.Flag("verbose", "Log every insertion step.").Short('v').BoolVar(&verbose)
	kingpin.MustParse(app.Parse(os.Args[1:]))

	logger, err := newLogger(verbose)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	defer logger.Sync() //nolint:errcheck

	in := io.Reader(os.Stdin)
	if opts.inputPath != "" {
		file, err := os.Open(opts.inputPath)
		if err != nil {
			logger.Fatal("could not open input", zap.Error(err))
		}
		defer file.Close()
		in = file
	}

	if err := run(opts, in, os.Stdout, logger); err != nil {
		logger.Fatal("failed", zap.Error(err))
	}
}

func newLogger(verbose bool) (*zap.Logger, error) {
	config := zap.NewDevelopmentConfig()
	config.OutputPaths = []string{"stderr"}
	config.DisableStacktrace = true
	config.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	if !verbose {
		config.Level = zap.NewAtomicLevelAt(zap.InfoLevel)
	}
	return config.Build()
}

func run(opts options, in io.Reader, out io.Writer, logger *zap.Logger) error {
	au := aurora.NewAurora(opts.color)

	config := delaunay.DefaultConfig()
	if opts.configPath != "" {
		file, err := os.Open(opts.configPath)
		if err != nil {
			return errors.Wrap(err, "opening config")
		}
		defer file.Close()
		if config, err = advanced.LoadConfig(file); err != nil {
			return err
		}
	}
	config.Logger = logger

	records, err := readRecords(in)
	if err != nil {
		return err
	}
	logger.Info("read points", zap.Int("count", len(records)))

	mesh, err := delaunay.BuildWithConfig(config, records...)
	if err != nil {
		return errors.Wrap(err, "building mesh")
	}
	fmt.Fprintf(out, "%v points, %v triangles, area %v\n",
		au.Bold(len(mesh.Points)), au.Bold(len(mesh.Triangles)), mesh.Area())

	for _, query := range opts.queries {
		x, y, err := parseQuery(query)
		if err != nil {
			return err
		}
		if z, ok := mesh.Query(x, y); ok {
			fmt.Fprintf(out, "%v %v %v\n", x, y, au.Green(z))
		} else {
			fmt.Fprintf(out, "%v %v %v\n", x, y, au.Red("not found"))
		}
	}

	if opts.indices {
		for _, triple := range mesh.TriangleIndices() {
			fmt.Fprintf(out, "%d %d %d\n", triple[0], triple[1], triple[2])
		}
	}

	if opts.pngPath != "" {
		if err := mesh.DrawPNG(opts.pngPath, opts.scale); err != nil {
			return err
		}
		logger.Info("rendered mesh", zap.String("path", opts.pngPath))
		if opts.imgcat {
			if err := catFile(opts.pngPath, out); err != nil {
				return errors.Wrap(err, "could not print image")
			}
		}
	}
	return nil
}

func readRecords(in io.Reader) ([][]float64, error) {
	var records [][]float64
	scanner := bufio.NewScanner(in)
	lineNumber := 0
	for scanner.Scan() {
		lineNumber++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		fields := splitFields(line)
		record := make([]float64, len(fields))
		for i, field := range fields {
			value, err := strconv.ParseFloat(field, 64)
			if err != nil {
				return nil, errors.Wrapf(err, "line %d", lineNumber)
			}
			record[i] = value
		}
		records = append(records, record)
	}
	return records, errors.Wrap(scanner.Err(), "reading points")
}

func parseQuery(query string) (x, y float64, err error) {
	fields := splitFields(query)
	if len(fields) != 2 {
		return 0, 0, errors.Errorf("query %q should be x,y", query)
	}
	if x, err = strconv.ParseFloat(fields[0], 64); err != nil {
		return 0, 0, errors.Wrapf(err, "query %q", query)
	}
	if y, err = strconv.ParseFloat(fields[1], 64); err != nil {
		return 0, 0, errors.Wrapf(err, "query %q", query)
	}
	return x, y, nil
}

func splitFields(s string) []string {
	return strings.FieldsFunc(s, func(r rune) bool {
		return r == ',' || r == ' ' || r == '\t'
	})
}
