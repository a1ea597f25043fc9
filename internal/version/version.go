package version

// Version contains the application version information.
// This should be set via build-time ldflags in production:
// go build -ldflags "-X git.home.luguber.info/inful/mkpy/internal/version.Version=v1.4.1".
var Version = "dev"

// BuildInfo contains additional build metadata.
var (
	BuildTime = "unknown"
	GitCommit = "unknown"
)

// String renders the version line printed by the version command.
func String() string {
	s := "mkpy " + Version
	if GitCommit != "unknown" {
		s += " (" + GitCommit + ")"
	}
	return s
}
