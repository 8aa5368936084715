package git

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"os/exec"
	"strings"
)

// runner executes git commands with shared logging and output capture.
type runner struct {
	Dir     string
	Verbose bool
	Logger  io.Writer
}

// result contains captured stdout/stderr for a git command.
type result struct {
	Stdout []byte
	Stderr []byte
}

func (r result) StderrString(trim bool) string {
	output := string(r.Stderr)
	if trim {
		return strings.TrimSpace(output)
	}
	return output
}

func (r runner) logger() io.Writer {
	if r.Logger == nil {
		return os.Stderr
	}
	return r.Logger
}

// Run executes a git command, logs it when verbose, and captures
// stdout/stderr.
func (r runner) Run(args ...string) (result, error) {
	if r.Verbose {
		fmt.Fprintf(r.logger(), "Running: git %s\n", strings.Join(args, " "))
	}

	cmd := exec.Command("git", args...)
	if r.Dir != "" {
		cmd.Dir = r.Dir
	}

	var outBuf bytes.Buffer
	var errBuf bytes.Buffer
	cmd.Stdout = &outBuf
	cmd.Stderr = &errBuf

	err := cmd.Run()
	return result{Stdout: outBuf.Bytes(), Stderr: errBuf.Bytes()}, err
}
