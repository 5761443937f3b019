// Package profilers sets up optional profiling of the path search programs.
//
// Importing it registers the -prof and -cpu_profile flags.
package profilers

import (
	"context"
	"flag"
	"fmt"
	"k8s.io/klog/v2"
	"net/http"
	_ "net/http/pprof"
	"os"
	"runtime"
	"runtime/pprof"
)

var (
	flagProfilerPort = flag.Int("prof", -1, "If set, serves net/http/pprof at localhost on the given port.")
	flagCPUProfile   = flag.String("cpu_profile", "", "Write a CPU profile of the search to `file`.")

	profilerAddr string
)

// Profiler started by Setup. Stop must be called before main returns.
type Profiler struct {
	ctx     context.Context
	cpuFile *os.File
}

// Setup starts the HTTP profiler (-prof) and the CPU profiler (-cpu_profile), if configured.
// With neither flag set it returns a Profiler whose Stop is a no-op.
func Setup(ctx context.Context) *Profiler {
	p := &Profiler{ctx: ctx}
	if *flagProfilerPort >= 0 {
		profilerAddr = fmt.Sprintf("localhost:%d", *flagProfilerPort)
		klog.Infof("Profiler serving on http://%s/debug/pprof", profilerAddr)
		go func() {
			klog.Fatal(http.ListenAndServe(profilerAddr, nil))
		}()
	}
	if *flagCPUProfile != "" {
		f, err := os.Create(*flagCPUProfile)
		if err != nil {
			klog.Fatalf("Failed to create CPU profile %q: %v", *flagCPUProfile, err)
		}
		if err := pprof.StartCPUProfile(f); err != nil {
			klog.Fatalf("Failed to start CPU profile: %v", err)
		}
		p.cpuFile = f
	}
	return p
}

// Stop the CPU profile, if one is running, and keep the program alive while the HTTP profiler
// is serving, until ctx is cancelled (Ctrl+C).
func (p *Profiler) Stop() {
	if p.cpuFile != nil {
		pprof.StopCPUProfile()
		if err := p.cpuFile.Close(); err != nil {
			klog.Errorf("Failed to close CPU profile: %v", err)
		}
		p.cpuFile = nil
	}
	if *flagProfilerPort < 0 || p.ctx.Err() != nil {
		return
	}
	// Collect garbage so the heap profile shows only what is still referenced.
	for range 10 {
		runtime.GC()
	}
	fmt.Printf("- Search finished, profiler still at http://%s/debug/pprof: Ctrl+C to exit\n", profilerAddr)
	<-p.ctx.Done()
}
