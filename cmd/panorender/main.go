// Command panorender renders a panorama result file without the viewer: it
// prints result information, inspects single pixels and exports images.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	panoimage "panorama-reader/internal/image"
	"panorama-reader/internal/inspect"
	"panorama-reader/internal/resultfile"
	"panorama-reader/internal/version"

	"github.com/dustin/go-humanize"
)

func main() {
	log.SetFlags(log.LstdFlags | log.Lshortfile)
	if err := run(os.Args[1:], os.Stdout, os.Stderr); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			os.Exit(2)
		}
		fmt.Fprintf(os.Stderr, "panorender: %v\n", err)
		os.Exit(1)
	}
}

func run(args []string, stdout, stderr io.Writer) error {
	fs := flag.NewFlagSet("panorender", flag.ContinueOnError)
	fs.SetOutput(stderr)
	info := fs.Bool("info", false, "Print image size and a summary of the samples")
	output := fs.String("o", "", "Write the rendered image (.png, .tif, .tiff or .bmp)")
	pick := fs.String("pick", "", "Print the inspection record of pixel `x,y`")
	decorate := fs.Bool("decorate", false, "Draw ticks and the eye-level line on the exported image")
	metric := fs.Bool("metric", false, "Omit imperial units from -pick output")
	showVersion := fs.Bool("version", false, "Print version and exit")
	fs.Usage = func() {
		fmt.Fprintln(stderr, "Usage: panorender [-info] [-o image] [-pick x,y] [-decorate] [-metric] <result.pano>")
		fs.PrintDefaults()
	}
	if err := fs.Parse(args); err != nil {
		return err
	}

	if *showVersion {
		fmt.Fprintln(stdout, version.String())
		return nil
	}
	if fs.NArg() != 1 {
		fs.Usage()
		return fmt.Errorf("expected one result file, got %d arguments", fs.NArg())
	}
	if !*info && *output == "" && *pick == "" {
		*info = true
	}

	var px, py int
	if *pick != "" {
		var err error
		if px, py, err = parsePoint(*pick); err != nil {
			return err
		}
	}
	if *output != "" {
		if _, err := panoimage.FormatFromPath(*output); err != nil {
			return err
		}
	}

	data, err := resultfile.Load(fs.Arg(0))
	if err != nil {
		return err
	}

	if *info {
		w, h := data.Width(), data.Height()
		sum := data.Summarize()
		fmt.Fprintf(stdout, "%d, %d\n", w, h)
		fmt.Fprintf(stdout, "pixels:    %s\n", humanize.Comma(int64(sum.Pixels)))
		fmt.Fprintf(stdout, "hits:      %s\n", humanize.Comma(int64(sum.Hits)))
		fmt.Fprintf(stdout, "samples:   %s (%d layered pixels, %d explicit colors)\n",
			humanize.Comma(int64(sum.Samples)), sum.Layered, sum.Explicit)
		if sum.Hits > 0 {
			fmt.Fprintf(stdout, "distance:  %s .. %s (mean %s)\n",
				inspect.FormatDistance(sum.MinDistance, false),
				inspect.FormatDistance(sum.MaxDistance, false),
				inspect.FormatDistance(sum.MeanDistance, false))
			fmt.Fprintf(stdout, "elevation: %s .. %s\n",
				inspect.FormatElevation(sum.MinElevation, false),
				inspect.FormatElevation(sum.MaxElevation, false))
		}
	}

	if *pick != "" {
		if !data.Contains(px, py) {
			return fmt.Errorf("pixel (%d, %d) outside %dx%d raster", px, py, data.Width(), data.Height())
		}
		opts := inspect.DefaultOptions()
		opts.Imperial = !*metric
		rec := inspect.Inspect(data, px, py, opts)
		for _, line := range rec.Lines() {
			fmt.Fprintln(stdout, line)
		}
	}

	if *output != "" {
		start := time.Now()
		img := panoimage.Build(data)
		if *decorate {
			panoimage.Decorate(img, data)
		}
		log.Printf("Render: %dx%d in %v", data.Width(), data.Height(), time.Since(start).Round(time.Millisecond))
		if err := panoimage.Save(*output, img); err != nil {
			return err
		}
	}
	return nil
}

// parsePoint parses "x,y" into pixel coordinates.
func parsePoint(s string) (x, y int, err error) {
	parts := strings.Split(s, ",")
	if len(parts) != 2 {
		return 0, 0, fmt.Errorf("invalid pixel %q: want x,y", s)
	}
	if x, err = strconv.Atoi(strings.TrimSpace(parts[0])); err != nil {
		return 0, 0, fmt.Errorf("invalid pixel %q: %w", s, err)
	}
	if y, err = strconv.Atoi(strings.TrimSpace(parts[1])); err != nil {
		return 0, 0, fmt.Errorf("invalid pixel %q: %w", s, err)
	}
	return x, y, nil
}
