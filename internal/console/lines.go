package console

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/vane-tools/vanectl/internal/domain"
	"github.com/vane-tools/vanectl/internal/ui"
)

// RunLines dispatches each line read from r as sender and writes command
// output and diagnostics to w. Blank lines and lines starting with # are
// skipped. It returns the exit code of the last failing line, or 0.
func RunLines(r io.Reader, w io.Writer, d Dispatcher, sender domain.Sender, out *ui.Buffer) (int, error) {
	code := 0
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		if c := RunLine(w, d, sender, out, line); c != 0 {
			code = c
		}
	}
	if err := scanner.Err(); err != nil {
		return 1, fmt.Errorf("read commands: %w", err)
	}
	return code, nil
}

// RunLine dispatches a single line and returns its exit code.
func RunLine(w io.Writer, d Dispatcher, sender domain.Sender, out *ui.Buffer, line string) int {
	res := d.DispatchLine(sender, line)
	_, _ = io.WriteString(w, out.Drain())
	_, _ = io.WriteString(w, d.Render(res))
	return res.ExitCode()
}
