// Package version provides build version information for the service.
//
// Version, git commit, branch, and build time are set at compile time
// via -ldflags:
//
//	go build -ldflags "-X github.com/jeevana-bhumireddy/healthcare-voice-agent/version.Version=1.0.0"
//
// When ldflags are absent, values are recovered from the embedded VCS
// build info where possible.
package version
