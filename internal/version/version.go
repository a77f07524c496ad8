package version

import "runtime"

// Build metadata. Commit and BuildTime are set with
// -ldflags "-X building/internal/version.Commit=... -X building/internal/version.BuildTime=...".
var (
	Version   = "1.0.0"
	Commit    = ""
	BuildTime = ""
)

const Service = "building-management"

type Info struct {
	Service   string `json:"service"`
	Version   string `json:"version"`
	Commit    string `json:"commit,omitempty"`
	BuildTime string `json:"buildTime,omitempty"`
	GoVersion string `json:"goVersion"`
}

func Get() Info {
	return Info{
		Service:   Service,
		Version:   Version,
		Commit:    Commit,
		BuildTime: BuildTime,
		GoVersion: runtime.Version(),
	}
}
