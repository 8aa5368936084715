package workflow

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/seildur/gcm/internal/ui"
)

// InteractivePrompter reads a single line of confirmation from In. Only
// "y" or "Y" (after trimming) confirms; anything else, including empty
// input, declines.
type InteractivePrompter struct {
	In  io.Reader
	Out io.Writer
}

func (p *InteractivePrompter) Confirm(message string) (bool, error) {
	fmt.Fprintf(p.Out, "\n%s ", ui.Prompt("Do you want to create a commit with this message? [y/N]"))

	reader := bufio.NewReader(p.In)
	response, err := reader.ReadString('\n')
	if err != nil && err != io.EOF {
		return false, fmt.Errorf("failed to read user input: %w", err)
	}

	response = strings.TrimSpace(response)
	return response == "y" || response == "Y", nil
}
