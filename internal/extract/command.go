package extract

import (
	"bytes"
	"context"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"github.com/keithschulze/omemeta/internal/types"
)

// PathPlaceholder marks where the image file path is substituted into a
// CommandExtractor's argument template.
const PathPlaceholder = "{}"

// CommandExtractor obtains OME-XML by running an external command and
// capturing its stdout. It is the bridge to Bio-Formats for proprietary
// microscopy formats (.lif, .czi, .nd2, .dv, ...).
//
// The command, its Java runtime, and any environment it needs are owned by
// the caller: construct the extractor with the command already installed
// and configured. The extractor never starts or manages that runtime.
type CommandExtractor struct {
	// Name is the command name or absolute path.
	Name string

	// Args is the argument template. Each occurrence of PathPlaceholder is
	// replaced with the image file path; if the template contains no
	// placeholder the path is appended.
	Args []string

	// Env holds extra environment variables for the command (for example
	// BF_MAX_MEM or JAVA_HOME), appended to the current environment.
	Env []string
}

// NewBioFormatsExtractor returns a CommandExtractor for the showinf tool of
// a Bio-Formats command-line (bftools) installation at dir. With an empty
// dir, showinf is resolved from PATH.
func NewBioFormatsExtractor(dir string) *CommandExtractor {
	name := "showinf"
	if dir != "" {
		name = filepath.Join(dir, "showinf")
	}
	return &CommandExtractor{
		Name: name,
		Args: []string{"-omexml-only", "-nopix", "-no-upgrade", PathPlaceholder},
	}
}

func (c *CommandExtractor) Extract(ctx context.Context, path string) ([]byte, error) {
	// Resolve the path before paying for a tool invocation, and so a bad
	// path reports uniformly across extractors.
	if _, err := os.Stat(path); err != nil {
		return nil, &types.MetadataUnavailableError{Path: path, Reason: "stat file", Err: err}
	}

	args := make([]string, 0, len(c.Args)+1)
	substituted := false
	for _, a := range c.Args {
		if a == PathPlaceholder {
			a = path
			substituted = true
		}
		args = append(args, a)
	}
	if !substituted {
		args = append(args, path)
	}

	cmd := exec.CommandContext(ctx, c.Name, args...)
	if len(c.Env) > 0 {
		cmd.Env = append(os.Environ(), c.Env...)
	}

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		reason := strings.TrimSpace(stderr.String())
		if reason == "" {
			reason = "extractor command failed"
		}
		return nil, &types.MetadataUnavailableError{Path: path, Reason: reason, Err: err}
	}

	return stdout.Bytes(), nil
}
