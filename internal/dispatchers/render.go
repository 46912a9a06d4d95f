package dispatchers

import (
	"strings"

	"github.com/vane-tools/vanectl/internal/domain"
	"github.com/vane-tools/vanectl/internal/usage"
)

// Render formats a result for the sender. Handled results render as the
// empty string; callbacks write their own output.
//
// Diagnostics tied to a token echo the input with that token highlighted;
// a missing argument is shown as the expected placeholder after the input.
func (d *Dispatcher) Render(res Result) string {
	if res.Outcome == domain.OutcomeHandled || res.Diagnostic == nil {
		return ""
	}

	s := d.styler
	diag := res.Diagnostic

	var b strings.Builder
	if res.Outcome == domain.OutcomeDeclined {
		b.WriteString(s.Warning(firstLine(diag.Message)))
	} else {
		b.WriteString(s.Error(firstLine(diag.Message)))
	}
	b.WriteString("\n")

	if rest := restLines(diag.Message); rest != "" && diag.Kind == usage.ErrUnknownCommand {
		b.WriteString(s.Muted(rest))
		b.WriteString("\n")
	}

	if echo := d.echo(res.Tokens, diag); echo != "" {
		b.WriteString("  ")
		b.WriteString(echo)
		b.WriteString("\n")
	}

	if len(res.Usages) > 0 {
		b.WriteString(s.Muted("usage:"))
		b.WriteString("\n")
		for _, u := range res.Usages {
			b.WriteString("  ")
			b.WriteString(s.Usage(u))
			b.WriteString("\n")
		}
	}

	return b.String()
}

// echo rebuilds the input line with the diagnostic's position marked.
func (d *Dispatcher) echo(tokens []string, diag *usage.Diagnostic) string {
	pos := diag.Position
	if pos < 1 || len(tokens) == 0 {
		return ""
	}

	parts := make([]string, 0, len(tokens)+1)
	for i, tok := range tokens {
		if i == pos {
			parts = append(parts, d.styler.Token(tok))
		} else {
			parts = append(parts, d.styler.Muted(tok))
		}
	}
	if pos >= len(tokens) && diag.Kind == usage.ErrMissingArgument {
		parts = append(parts, d.styler.Token(diag.Expected))
	}
	return strings.Join(parts, " ")
}

func restLines(s string) string {
	_, rest, _ := strings.Cut(s, "\n")
	return strings.TrimSpace(rest)
}
