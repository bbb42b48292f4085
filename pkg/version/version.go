// Package version carries build identification injected at link time.
package version

// Set via -ldflags at build time, for example:
//
//	go build -ldflags "-X github.com/userhub-io/userhub/pkg/version.Version=1.2.0 \
//	  -X github.com/userhub-io/userhub/pkg/version.Commit=$(git rev-parse --short HEAD) \
//	  -X github.com/userhub-io/userhub/pkg/version.BuildDate=$(date -u +%Y-%m-%dT%H:%M:%SZ)"
var (
	Version   = "dev"
	Commit    = "unknown"
	BuildDate = "unknown"
)

// BuildInfo describes the running binary
type BuildInfo struct {
	Version   string `json:"version"`
	Commit    string `json:"commit"`
	BuildDate string `json:"build_date"`
}

// Info returns the build identification of the running binary
func Info() BuildInfo {
	return BuildInfo{
		Version:   Version,
		Commit:    Commit,
		BuildDate: BuildDate,
	}
}
