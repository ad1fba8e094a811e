package cli

import (
	"fmt"
	"io"

	"github.com/grovetools/hyprdispatch/version"
)

// PrintVersion writes the build information for program.
func PrintVersion(w io.Writer, program string, info version.Info) {
	fmt.Fprintf(w, "%s %s\n", program, info.Version)
	fmt.Fprintf(w, "  Commit:    %s\n", info.Commit)
	fmt.Fprintf(w, "  Built:     %s\n", info.BuildDate)
	fmt.Fprintf(w, "  Go:        %s\n", info.GoVersion)
	fmt.Fprintf(w, "  Platform:  %s\n", info.Platform)
}
