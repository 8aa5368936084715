package ui

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/briandowns/spinner"
	"github.com/mattn/go-isatty"
)

// Progress reports that the model request is in flight. On a terminal it
// animates a spinner; otherwise Start prints the message as a plain line so
// non-interactive runs still see what the tool is waiting on.
type Progress struct {
	s       *spinner.Spinner
	message string
	out     io.Writer
}

func NewProgress(message string) *Progress {
	animate := isatty.IsTerminal(os.Stderr.Fd()) || isatty.IsCygwinTerminal(os.Stderr.Fd())
	return newProgress(message, animate, os.Stderr)
}

func newProgress(message string, animate bool, out io.Writer) *Progress {
	if !animate {
		return &Progress{message: message, out: out}
	}

	s := spinner.New(spinner.CharSets[14], 100*time.Millisecond, spinner.WithWriter(out))
	s.Suffix = " " + message
	return &Progress{s: s}
}

func (p *Progress) Start() {
	if p.s != nil {
		p.s.Start()
		return
	}
	fmt.Fprintln(p.out, p.message)
}

func (p *Progress) Stop() {
	if p.s != nil {
		p.s.Stop()
	}
}
