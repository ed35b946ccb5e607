// Package profiling provides opt-in pprof and Pyroscope profiling,
// both controlled by environment variables so production images carry no
// profiling overhead by default.
package profiling

import (
	"log"
	"net/http"
	_ "net/http/pprof"
	"os"
)

// StartPprofServer starts the pprof debug server on a separate port when
// ENABLE_PROFILING=true. It binds to localhost only so the profiles are
// never reachable from outside the host.
func StartPprofServer() {
	if os.Getenv("ENABLE_PROFILING") != "true" {
		return
	}

	pprofPort := os.Getenv("PPROF_PORT")
	if pprofPort == "" {
		pprofPort = "6060"
	}

	addr := "localhost:" + pprofPort

	go func() {
		log.Printf("Starting pprof server on %s", addr)
		if err := http.ListenAndServe(addr, nil); err != nil {
			log.Printf("pprof server error: %v", err)
		}
	}()
}
