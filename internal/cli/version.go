package cli

import (
	"fmt"
	"runtime"
	"strings"

	"github.com/spf13/cobra"

	"github.com/seedcash/seedcash/internal/output"
	versionpkg "github.com/seedcash/seedcash/internal/version"
)

// Build metadata, set via -ldflags at release time.
//
//nolint:gochecknoglobals // populated by the linker
var (
	buildVersion = "dev"
	buildCommit  = ""
)

const (
	versionOwner = "seedcash"
	versionRepo  = "seedcash"
)

//nolint:gochecknoglobals // Cobra CLI pattern requires package-level flag variables
var versionCheck bool

// versionCmd prints build information.
//
//nolint:gochecknoglobals // Cobra CLI pattern requires package-level command variables
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show version information",
	Long: `Show the seedcash build version.

With --check, the latest published release is fetched from GitHub and
compared against the running build.`,
	RunE: runVersion,
}

//nolint:gochecknoinits // Cobra CLI pattern requires init for command registration
func init() {
	rootCmd.AddCommand(versionCmd)

	versionCmd.Flags().BoolVar(&versionCheck, "check", false,
		"check GitHub for a newer release")
}

func runVersion(cmd *cobra.Command, _ []string) error {
	w := cmd.OutOrStdout()

	if Formatter().IsJSON() && !versionCheck {
		return writeJSON(w, struct {
			Version string `json:"version"`
			Commit  string `json:"commit,omitempty"`
			Go      string `json:"go"`
			OS      string `json:"os"`
			Arch    string `json:"arch"`
		}{
			Version: buildVersion,
			Commit:  buildCommit,
			Go:      runtime.Version(),
			OS:      runtime.GOOS,
			Arch:    runtime.GOARCH,
		})
	}

	out(w, "seedcash %s", formatVersion(buildVersion))
	if buildCommit != "" {
		out(w, " (%s)", buildCommit)
	}
	out(w, " %s %s/%s\n", runtime.Version(), runtime.GOOS, runtime.GOARCH)

	if !versionCheck {
		return nil
	}

	output.Info("Checking for updates...")
	client := versionpkg.NewClient()
	release, err := client.GetLatestRelease(cmd.Context(), versionOwner, versionRepo)
	if err != nil {
		return fmt.Errorf("checking for updates: %w", err)
	}

	latest := strings.TrimPrefix(release.TagName, "v")
	if versionpkg.IsNewerVersion(buildVersion, latest) {
		output.Warn("A newer version is available: %s -> %s",
			formatVersion(buildVersion), formatVersion(latest))
	} else {
		output.Success("You are on the latest version")
	}
	return nil
}

// formatVersion normalizes a version string for display.
func formatVersion(v string) string {
	if v == "" || v == "dev" {
		return "dev"
	}
	if !strings.HasPrefix(v, "v") {
		return "v" + v
	}
	return v
}
