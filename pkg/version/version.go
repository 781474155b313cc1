// Package version exposes build-time identification injected via ldflags:
//
//	go build -ldflags "-X github.com/insanitybit/void-ship/pkg/version.Version=0.2.0 \
//	  -X github.com/insanitybit/void-ship/pkg/version.Commit=$(git rev-parse --short HEAD)"
package version

// Set at build time via -ldflags -X; the defaults identify an untagged
// development build.
var (
	Version = "dev"
	Commit  = "unknown"
)

// String returns the version in "0.2.0 (abc1234)" form.
func String() string {
	return Version + " (" + Commit + ")"
}
