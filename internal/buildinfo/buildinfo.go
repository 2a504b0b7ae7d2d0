// Package buildinfo holds version metadata injected at link time, e.g.
//
//	go build -ldflags "-X github.com/aalvaropc/eulerseq/internal/buildinfo.Version=v0.1.0"
package buildinfo

import "fmt"

var (
	Version = "dev"
	Commit  = "none"
	Date    = "unknown"
)

func String() string {
	return fmt.Sprintf("eulerseq %s (commit=%s, date=%s)", Version, Commit, Date)
}
