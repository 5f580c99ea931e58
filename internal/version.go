package internal

import (
	"fmt"
	"io"
	"os"
	"runtime"
	"runtime/debug"
	"strings"
)

// Version contains version and Git commit information.
//
// The placeholders are replaced on `git archive` using the `export-subst` attribute.
var Version = NewVersionInfo("0.1.0", "$Format:%(describe)$", "$Format:%H$")

// VersionInfo describes the version of a build.
type VersionInfo struct {
	Version string
	Commit  string
}

// NewVersionInfo returns the version of the running binary.
//
// gitDescribe and gitHash are used if they were substituted on export, otherwise the VCS information
// embedded by the Go toolchain is used.
func NewVersionInfo(version, gitDescribe, gitHash string) *VersionInfo {
	const hashLen = 40

	if !strings.HasPrefix(gitDescribe, "$") {
		version = strings.TrimPrefix(gitDescribe, "v")
	}

	commit := ""
	if len(gitHash) == hashLen && !strings.HasPrefix(gitHash, "$") {
		commit = gitHash
	} else if info, ok := debug.ReadBuildInfo(); ok {
		for _, setting := range info.Settings {
			if setting.Key == "vcs.revision" {
				commit = setting.Value
			}
		}
	}

	return &VersionInfo{Version: version, Commit: commit}
}

// Print writes verbose version information to os.Stdout.
func (v *VersionInfo) Print(projectName string) {
	v.Fprint(os.Stdout, projectName)
}

// Fprint writes verbose version information to w.
func (v *VersionInfo) Fprint(w io.Writer, projectName string) {
	_, _ = fmt.Fprintf(w, "%s version: %s\n\n", projectName, v.Version)

	_, _ = fmt.Fprintln(w, "Build information:")
	_, _ = fmt.Fprintf(w, "  Go version: %s (%s, %s)\n", runtime.Version(), runtime.GOOS, runtime.GOARCH)
	if v.Commit != "" {
		_, _ = fmt.Fprintf(w, "  Git commit: %s\n", v.Commit)
	}
}
