// Command msfl2d-sim runs scene files headless and prints their traces.
//
//	msfl2d-sim [-steps N] [-dt S] [-format text|msgpack|digest] [-out DIR] [-v] scene.yaml...
//
// Scenes run concurrently, each in its own world. Without -out, text and
// digest outputs go to stdout in the order of the arguments.
package main

import (
	"bytes"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"golang.org/x/sync/errgroup"

	msfl2d "github.com/MyselfLeo/msfl2D"
	"github.com/MyselfLeo/msfl2D/scene"
	"github.com/MyselfLeo/msfl2D/trace"
)

const (
	formatText    = "text"
	formatMsgpack = "msgpack"
	formatDigest  = "digest"
)

var (
	steps   int
	dt      float64
	format  string
	outDir  string
	verbose bool
)

func init() {
	flag.IntVar(&steps, "steps", 600, "number of updates per scene")
	flag.Float64Var(&dt, "dt", 1.0/60.0, "time step, in seconds")
	flag.StringVar(&format, "format", formatText, "output format: text, msgpack or digest")
	flag.StringVar(&outDir, "out", "", "write one file per scene in this directory")
	flag.BoolVar(&verbose, "v", false, "debug logging")
}

func main() {
	flag.Parse()

	if flag.NArg() == 0 {
		fmt.Fprintln(os.Stderr, "usage: msfl2d-sim [flags] scene.yaml...")
		flag.PrintDefaults()
		os.Exit(2)
	}

	logger, err := newLogger(verbose)
	if err != nil {
		fmt.Fprintln(os.Stderr, "logger:", err)
		os.Exit(1)
	}
	defer func() { _ = logger.Sync() }()

	if err := run(logger, flag.Args()); err != nil {
		logger.Error("simulation failed", zap.Error(err))
		os.Exit(1)
	}
}

func newLogger(debug bool) (*zap.Logger, error) {
	level := zapcore.InfoLevel
	if debug {
		level = zapcore.DebugLevel
	}

	config := zap.Config{
		Level:            zap.NewAtomicLevelAt(level),
		Development:      debug,
		Encoding:         "console",
		EncoderConfig:    zap.NewDevelopmentEncoderConfig(),
		OutputPaths:      []string{"stderr"},
		ErrorOutputPaths: []string{"stderr"},
		DisableCaller:    true,
	}

	return config.Build()
}

func run(logger *zap.Logger, paths []string) error {
	switch format {
	case formatText, formatDigest:
	case formatMsgpack:
		if outDir == "" {
			return errors.New("the msgpack format needs -out")
		}
	default:
		return errors.Errorf("unknown format %q", format)
	}

	if outDir != "" {
		if err := os.MkdirAll(outDir, 0o755); err != nil {
			return errors.Wrap(err, "create output directory")
		}
	}

	outputs := make([]bytes.Buffer, len(paths))

	var g errgroup.Group
	for i, path := range paths {
		g.Go(func() error {
			return simulate(logger.With(zap.String("scene", path)), path, &outputs[i])
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	if outDir != "" {
		return nil
	}

	for i := range outputs {
		if _, err := outputs[i].WriteTo(os.Stdout); err != nil {
			return errors.Wrap(err, "write output")
		}
	}
	return nil
}

func simulate(logger *zap.Logger, path string, stdout *bytes.Buffer) error {
	s, err := scene.LoadFile(path)
	if err != nil {
		return err
	}

	world, ids, err := s.Build(msfl2d.WithLogger(logger))
	if err != nil {
		return errors.Wrapf(err, "build %s", path)
	}

	recorder := trace.NewRecorder(ids)
	for i := 0; i < steps; i++ {
		if err := world.Update(dt); err != nil {
			return errors.Wrapf(err, "%s: step %d", path, i)
		}
		if err := recorder.Record(i, world); err != nil {
			return errors.Wrapf(err, "%s: step %d", path, i)
		}
	}

	logger.Info("scene done",
		zap.Int("bodies", world.NbBodies()),
		zap.Int("steps", steps),
	)

	var buf bytes.Buffer
	switch format {
	case formatText:
		err = recorder.WriteText(&buf)
	case formatMsgpack:
		err = recorder.WriteMsgpack(&buf)
	case formatDigest:
		_, err = fmt.Fprintf(&buf, "%016x  %s\n", recorder.Digest(), path)
	}
	if err != nil {
		return err
	}

	if outDir == "" {
		_, err = buf.WriteTo(stdout)
		return err
	}

	name := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path)) + "." + format
	if err := os.WriteFile(filepath.Join(outDir, name), buf.Bytes(), 0o644); err != nil {
		return errors.Wrapf(err, "write %s", name)
	}
	return nil
}
