// SPDX-License-Identifier: MIT

// Command gobem assembles the boundary operator of a square quantum
// billiard, prints it, and optionally sweeps a wavenumber range for
// resonances.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"math"
	"net"
	"net/http"
	"os"
	"os/signal"
	"runtime/pprof"
	"time"

	"github.com/MatthewScargill/gobem/bem"
	"github.com/MatthewScargill/gobem/boundary"
	"github.com/MatthewScargill/gobem/cache"
	"github.com/MatthewScargill/gobem/matrix"
	"github.com/MatthewScargill/gobem/spectrum"
	"github.com/MatthewScargill/gobem/viz"
	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// config holds the parsed command line.
type config struct {
	n           int
	side        float64
	k           float64
	workers     int
	print       bool
	plotPath    string
	normalScale float64
	scanMin     float64
	scanMax     float64
	scanSteps   int
	threshold   float64
	specPath    string
	cpuProfile  string
	metricsAddr string
	cacheDir    string
	verbose     bool
}

// cacheNamespace tags cached samples computed with the default kernel and
// diagonal, the only assembly the command performs.
const cacheNamespace = "double-layer"

// errUsage marks command-line mistakes (exit code 2).
var errUsage = errors.New("usage")

func main() {
	os.Exit(run())
}

func run() int {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	return runWithArgs(ctx, os.Args[1:], os.Stdout, os.Stderr)
}

func runWithArgs(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	cfg, err := parseArgs(args, stderr)
	if err != nil {
		return 2
	}

	level := slog.LevelInfo
	if cfg.verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level})).
		With(slog.String("run", uuid.NewString()))

	if cfg.cpuProfile != "" {
		stopProfile, err := startCPUProfile(cfg.cpuProfile)
		if err != nil {
			logger.Error("starting CPU profile", slog.Any("error", err))

			return 1
		}
		defer func() {
			if err := stopProfile(); err != nil {
				logger.Error("stopping CPU profile", slog.Any("error", err))
			}
		}()
	}

	if cfg.metricsAddr != "" {
		stopMetrics, err := serveMetrics(cfg.metricsAddr, logger)
		if err != nil {
			logger.Error("starting metrics server", slog.Any("error", err))

			return 1
		}
		defer stopMetrics()
	}

	if err := execute(ctx, cfg, stdout, logger); err != nil {
		logger.Error("gobem failed", slog.Any("error", err))

		return 1
	}

	return 0
}

// parseArgs reads flags into a config. Errors have already been reported
// to stderr.
func parseArgs(args []string, stderr io.Writer) (config, error) {
	var cfg config
	fs := flag.NewFlagSet("gobem", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.IntVar(&cfg.n, "n", 24, "number of boundary nodes (multiple of 4)")
	fs.Float64Var(&cfg.side, "a", 1, "side length of the square")
	fs.Float64Var(&cfg.k, "k", 2.5, "wavenumber")
	fs.IntVar(&cfg.workers, "workers", 0, "assembly workers (0 = GOMAXPROCS)")
	fs.BoolVar(&cfg.print, "print", true, "print the assembled matrix")
	fs.StringVar(&cfg.plotPath, "plot", "", "write a plot of nodes and normals (svg, png, pdf)")
	fs.Float64Var(&cfg.normalScale, "normal-scale", 0.1, "length of plotted normal arrows")
	fs.Float64Var(&cfg.scanMin, "scan-min", 0, "lower end of a resonance scan")
	fs.Float64Var(&cfg.scanMax, "scan-max", 0, "upper end of a resonance scan (0 = no scan)")
	fs.IntVar(&cfg.scanSteps, "scan-steps", 0, "number of wavenumbers in the scan")
	fs.Float64Var(&cfg.threshold, "threshold", 0.1, "σ_min below which a scan minimum is refined")
	fs.StringVar(&cfg.specPath, "spectrum-plot", "", "write a plot of σ_min over the scan")
	fs.StringVar(&cfg.cpuProfile, "cpuprofile", "", "write CPU profile to file")
	fs.StringVar(&cfg.cacheDir, "cache", "", "directory of a persistent σ_min cache for scans")
	fs.StringVar(&cfg.metricsAddr, "metrics-addr", "", "serve Prometheus metrics on this address during the run")
	fs.BoolVar(&cfg.verbose, "v", false, "debug logging")
	fs.Usage = func() {
		fmt.Fprintf(stderr, "Usage: gobem [options]\n\n")
		fmt.Fprintln(stderr, "Assembles the double-layer boundary operator of a square billiard.")
		fmt.Fprintln(stderr)
		fmt.Fprintln(stderr, "Options:")
		fs.PrintDefaults()
	}
	if err := fs.Parse(args); err != nil {
		return cfg, err
	}

	usage := func(msg string) (config, error) {
		fmt.Fprintf(stderr, "error: %s\n", msg)
		fs.Usage()

		return cfg, errUsage
	}
	if fs.NArg() != 0 {
		return usage("unexpected arguments")
	}
	if cfg.workers < 0 {
		return usage("-workers must be >= 0")
	}
	scanning := cfg.scanMax > 0 || cfg.scanSteps > 0
	if scanning && (cfg.scanSteps < 2 || !(cfg.scanMax > cfg.scanMin)) {
		return usage("a scan needs -scan-max > -scan-min and -scan-steps >= 2")
	}
	if cfg.specPath != "" && !scanning {
		return usage("-spectrum-plot requires a scan")
	}
	if cfg.cacheDir != "" && !scanning {
		return usage("-cache requires a scan")
	}
	if math.IsNaN(cfg.threshold) || cfg.threshold <= 0 {
		return usage("-threshold must be > 0")
	}

	return cfg, nil
}

// execute runs the configured pipeline.
func execute(ctx context.Context, cfg config, stdout io.Writer, logger *slog.Logger) error {
	nodes, err := boundary.Square(cfg.side, cfg.n)
	if err != nil {
		return fmt.Errorf("discretize: %w", err)
	}
	logger.Debug("discretized square",
		slog.Int("n", nodes.Len()),
		slog.Float64("side", cfg.side),
		slog.Float64("perimeter", nodes.LTotal))

	if cfg.plotPath != "" {
		if err := viz.PlotNodes(cfg.plotPath, nodes, cfg.normalScale); err != nil {
			return err
		}
		logger.Info("wrote node plot", slog.String("path", cfg.plotPath))
	}

	var opts []bem.Option
	if cfg.workers > 0 {
		opts = append(opts, bem.WithWorkers(cfg.workers))
	}

	start := time.Now()
	a, err := bem.Assemble(cfg.k, nodes, opts...)
	if err != nil {
		return err
	}
	logger.Info("assembled operator",
		slog.Int("n", cfg.n),
		slog.Float64("k", cfg.k),
		slog.Duration("elapsed", time.Since(start)))

	if cfg.print {
		if err := matrix.Fprint(stdout, a); err != nil {
			return err
		}
	}

	sigma, err := spectrum.SmallestSingularValue(a)
	if err != nil {
		return err
	}
	if _, err := fmt.Fprintf(stdout, "k=%g sigma_min=%.6e\n", cfg.k, sigma); err != nil {
		return err
	}

	if cfg.scanSteps == 0 {
		return nil
	}

	return scan(ctx, cfg, nodes, opts, stdout, logger)
}

// scan sweeps the configured range once, plots it when asked, and refines
// every minimum below the threshold between its scan neighbours.
func scan(ctx context.Context, cfg config, nodes *boundary.Nodes, opts []bem.Option, stdout io.Writer, logger *slog.Logger) error {
	ks, err := spectrum.Wavenumbers(cfg.scanMin, cfg.scanMax, cfg.scanSteps)
	if err != nil {
		return err
	}
	sopts := []spectrum.Option{spectrum.WithAssembleOptions(opts...)}
	if cfg.cacheDir != "" {
		store, err := cache.Open(cfg.cacheDir, cacheNamespace)
		if err != nil {
			return err
		}
		defer func() {
			if err := store.Close(); err != nil {
				logger.Error("closing cache", slog.Any("error", err))
			}
		}()
		sopts = append(sopts, spectrum.WithCache(store))
		logger.Debug("using cache", slog.String("dir", cfg.cacheDir))
	}

	start := time.Now()
	samples, err := spectrum.Scan(ctx, nodes, ks, sopts...)
	if err != nil {
		return err
	}
	weylHi, err := spectrum.WeylCountNodes(nodes, cfg.scanMax)
	if err != nil {
		return err
	}
	weylLo, err := spectrum.WeylCountNodes(nodes, cfg.scanMin)
	if err != nil {
		return err
	}
	logger.Info("scanned wavenumbers",
		slog.Int("samples", len(samples)),
		slog.Float64("weyl", weylHi-weylLo),
		slog.Duration("elapsed", time.Since(start)))

	if cfg.specPath != "" {
		if err := viz.PlotSpectrum(cfg.specPath, samples); err != nil {
			return err
		}
		logger.Info("wrote spectrum plot", slog.String("path", cfg.specPath))
	}

	for _, m := range spectrum.Minima(samples, cfg.threshold) {
		logger.Debug("refining minimum", slog.Float64("k", m.K), slog.Float64("sigma_min", m.SigmaMin))
	}
	res, err := spectrum.RefineMinima(ctx, nodes, samples, cfg.threshold, sopts...)
	if err != nil {
		return err
	}
	for _, r := range res {
		if _, err := fmt.Fprintf(stdout, "resonance k=%.8f sigma_min=%.6e\n", r.K, r.SigmaMin); err != nil {
			return err
		}
	}

	return nil
}

// serveMetrics exposes the default Prometheus registry on addr until the
// returned stop function is called.
func serveMetrics(addr string, logger *slog.Logger) (func(), error) {
	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return nil, fmt.Errorf("listen %s: %w", addr, err)
	}

	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())
	srv := &http.Server{Handler: mux, ReadHeaderTimeout: 5 * time.Second}
	go func() {
		if err := srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("metrics server", slog.Any("error", err))
		}
	}()
	logger.Info("serving metrics", slog.String("addr", ln.Addr().String()))

	return func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := srv.Shutdown(ctx); err != nil {
			logger.Error("stopping metrics server", slog.Any("error", err))
		}
	}, nil
}

func startCPUProfile(path string) (func() error, error) {
	f, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("create cpu profile %s: %w", path, err)
	}
	if err := pprof.StartCPUProfile(f); err != nil {
		if closeErr := f.Close(); closeErr != nil {
			return nil, fmt.Errorf("start cpu profile %s: %w (close failed: %w)", path, err, closeErr)
		}

		return nil, fmt.Errorf("start cpu profile %s: %w", path, err)
	}

	return func() error {
		pprof.StopCPUProfile()
		if err := f.Close(); err != nil {
			return fmt.Errorf("close cpu profile %s: %w", path, err)
		}

		return nil
	}, nil
}
