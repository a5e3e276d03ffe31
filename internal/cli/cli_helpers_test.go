package cli

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

const arithmeticCSV = "question,answer\n1+1,2\n2+2,4\n"

// plainTerminal forces non-TTY detection for the duration of a test.
func plainTerminal(t *testing.T) {
	t.Helper()
	original := isTerminal
	isTerminal = func(io.Writer) bool { return false }
	t.Cleanup(func() { isTerminal = original })
}

func writeFile(t *testing.T, dir, name, body string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("write %s: %v", name, err)
	}
	return path
}

// runCLI invokes Run from an empty working directory so no stray
// .quizrun.yml is picked up.
func runCLI(t *testing.T, stdin io.Reader, args ...string) (int, string, string) {
	t.Helper()
	t.Chdir(t.TempDir())
	if stdin == nil {
		stdin = strings.NewReader("")
	}
	var stdout, stderr bytes.Buffer
	code := Run(args, stdin, &stdout, &stderr)
	return code, stdout.String(), stderr.String()
}
