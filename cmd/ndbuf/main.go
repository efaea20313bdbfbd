// Package main provides the ndbuf CLI.
package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/born-ml/ndbuf/internal/parallel"
	"github.com/born-ml/ndbuf/reduce"
	"github.com/born-ml/ndbuf/tensor"
)

const version = "v0.0.1-dev"

func main() {
	if len(os.Args) < 2 {
		usage()
		return
	}

	switch os.Args[1] {
	case "version":
		fmt.Printf("ndbuf %s\n", version)
	case "stats":
		if err := runStats(os.Args[2:]); err != nil {
			fmt.Fprintf(os.Stderr, "stats: %v\n", err)
			os.Exit(1)
		}
	default:
		usage()
		os.Exit(2)
	}
}

func usage() {
	fmt.Println("ndbuf - typed multi-dimensional buffers for Go")
	fmt.Printf("Version: %s\n\n", version)
	fmt.Println("Commands:")
	fmt.Println("  version    Show version")
	fmt.Println("  stats      Summarize a raw little-endian array file")
}

func runStats(args []string) error {
	fs := flag.NewFlagSet("stats", flag.ContinueOnError)
	kindName := fs.String("kind", "float32", "element kind of the file")
	shapeSpec := fs.String("shape", "", "comma-separated extents, e.g. 128,64 (default: flat)")
	verbose := fs.Bool("v", false, "log partitioning details")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() != 1 {
		return fmt.Errorf("expected one file argument")
	}

	level := slog.LevelWarn
	if *verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	parallel.SetLogger(logger)

	kind, err := tensor.ParseKind(*kindName)
	if err != nil {
		return err
	}
	shape, err := parseShape(*shapeSpec)
	if err != nil {
		return err
	}

	region, err := tensor.MapFile(fs.Arg(0), false)
	if err != nil {
		return err
	}
	defer func() {
		if err := region.Release(); err != nil {
			logger.Error("release mapping", "err", err)
		}
	}()

	buf, err := regionBuffer(region, kind)
	if err != nil {
		return err
	}
	v, err := tensor.FromBuffer(buf, shape...)
	if err != nil {
		return err
	}

	ctx := context.Background()
	cfg := reduce.EnvConfig()
	logger.Debug("reducing", "view", v.String(), "backing", region.Backing().String(), "workers", cfg.NumWorkers)

	mms, err := reduce.MinMax(ctx, v, cfg)
	if err != nil {
		return err
	}
	mean := mms.Sum() / float64(mms.Count())
	moments, err := reduce.View[float64](ctx, v, reduce.MomentsAbout(mean), cfg)
	if err != nil {
		return err
	}

	maxAbs, err := reduce.MaxAbsFloat64(ctx, v, cfg)
	if err != nil {
		return err
	}

	fmt.Printf("view      %s\n", v)
	fmt.Printf("count     %d\n", mms.Count())
	fmt.Printf("min       %g\n", mms.Min())
	fmt.Printf("max       %g\n", mms.Max())
	fmt.Printf("maxabs    %g\n", maxAbs)
	fmt.Printf("sum       %g\n", mms.Sum())
	fmt.Printf("mean      %g\n", mean)
	fmt.Printf("variance  %g\n", moments.Variance())
	fmt.Printf("skewness  %g\n", moments.Skewness())
	fmt.Printf("kurtosis  %g\n", moments.Kurtosis())
	return nil
}

func parseShape(spec string) ([]int, error) {
	if spec == "" {
		return nil, nil
	}
	parts := strings.Split(spec, ",")
	shape := make([]int, len(parts))
	for i, p := range parts {
		n, err := strconv.Atoi(strings.TrimSpace(p))
		if err != nil {
			return nil, fmt.Errorf("shape %q: %w", spec, err)
		}
		shape[i] = n
	}
	return shape, nil
}

func regionBuffer(r *tensor.Region, kind tensor.Kind) (tensor.Buffer, error) {
	n := r.Len()
	if size := kind.Size(); size > 0 {
		n /= size
	}
	unsigned := kind.IsUnsigned()
	switch kind {
	case tensor.Bool:
		// A byte outside {0, 1} is not a valid bool; read raw bytes and coerce.
		raw, err := tensor.RegionBuffer[int8](r, 0, n)
		if err != nil {
			return nil, err
		}
		flags, err := tensor.ToSlice[bool](raw)
		if err != nil {
			return nil, err
		}
		return tensor.Wrap(flags), nil
	case tensor.Int8, tensor.Uint8:
		return mapped[int8](r, n, unsigned)
	case tensor.Int16, tensor.Uint16:
		return mapped[int16](r, n, unsigned)
	case tensor.Int32, tensor.Uint32:
		return mapped[int32](r, n, unsigned)
	case tensor.Int64, tensor.Uint64:
		return mapped[int64](r, n, unsigned)
	case tensor.Float32:
		return mapped[float32](r, n, false)
	case tensor.Float64:
		return mapped[float64](r, n, false)
	default:
		return nil, fmt.Errorf("kind %s cannot be mapped from a file", kind)
	}
}

func mapped[T tensor.Native](r *tensor.Region, n int, unsigned bool) (tensor.Buffer, error) {
	b, err := tensor.RegionBuffer[T](r, 0, n)
	if err != nil {
		return nil, err
	}
	if unsigned {
		return b.AsUnsigned()
	}
	return b, nil
}
