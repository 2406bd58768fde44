// Package prof wraps runtime/pprof and runtime/trace for the --cpu-profile,
// --mem-profile and --runtime-trace flags of alef.
package prof

import (
	"errors"
	"fmt"
	"os"
	"runtime"
	"runtime/pprof"
	rtrace "runtime/trace"
)

// Config names the output files; empty paths disable that profiler.
type Config struct {
	CPU   string
	Mem   string
	Trace string
}

// Session is a set of running profilers.
type Session struct {
	cfg       Config
	cpuFile   *os.File
	traceFile *os.File
	stopped   bool
}

// Start enables the profilers named in cfg. On error nothing stays running.
func Start(cfg Config) (*Session, error) {
	s := &Session{cfg: cfg}
	if cfg.CPU != "" {
		// #nosec G304 -- path comes from a command-line flag
		f, err := os.Create(cfg.CPU)
		if err != nil {
			return nil, fmt.Errorf("failed to start cpu profile: %w", err)
		}
		if err := pprof.StartCPUProfile(f); err != nil {
			_ = f.Close()
			return nil, fmt.Errorf("failed to start cpu profile: %w", err)
		}
		s.cpuFile = f
	}
	if cfg.Trace != "" {
		// #nosec G304 -- path comes from a command-line flag
		f, err := os.Create(cfg.Trace)
		if err == nil {
			err = rtrace.Start(f)
			if err != nil {
				_ = f.Close()
			}
		}
		if err != nil {
			_ = s.Stop()
			return nil, fmt.Errorf("failed to start runtime trace: %w", err)
		}
		s.traceFile = f
	}
	return s, nil
}

// Stop ends the trace and the CPU profile, then writes the heap profile.
// Calling it again does nothing.
func (s *Session) Stop() error {
	if s == nil || s.stopped {
		return nil
	}
	s.stopped = true

	var errs []error
	if s.traceFile != nil {
		rtrace.Stop()
		errs = append(errs, s.traceFile.Close())
	}
	if s.cpuFile != nil {
		pprof.StopCPUProfile()
		errs = append(errs, s.cpuFile.Close())
	}
	if s.cfg.Mem != "" {
		errs = append(errs, writeHeap(s.cfg.Mem))
	}
	return errors.Join(errs...)
}

func writeHeap(path string) (err error) {
	// #nosec G304 -- path comes from a command-line flag
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to write heap profile: %w", err)
	}
	defer func() {
		err = errors.Join(err, f.Close())
	}()
	runtime.GC()
	return pprof.WriteHeapProfile(f)
}
