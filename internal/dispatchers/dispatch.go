// Package dispatchers routes command lines to registered commands.
//
// The Dispatcher owns the label index, the permission check and the
// command log; grammar matching itself is delegated to each command.
package dispatchers

import (
	"errors"
	"fmt"
	"slices"
	"strings"
	"sync"
	"time"

	"github.com/vane-tools/vanectl/internal/command"
	"github.com/vane-tools/vanectl/internal/domain"
	"github.com/vane-tools/vanectl/internal/log"
	"github.com/vane-tools/vanectl/internal/ui/style"
	"github.com/vane-tools/vanectl/internal/usage"
)

// Entry is a registered command with its help metadata.
type Entry struct {
	Command  *command.Command
	Category CommandCategory
}

// Result is the outcome of one dispatched line.
type Result struct {
	Outcome domain.Outcome
	Sender  domain.Sender
	Tokens  []string
	// Command is nil when the label named no visible command.
	Command *command.Command
	// Diagnostic is set for every outcome except OutcomeHandled.
	Diagnostic *usage.Diagnostic
	// Err is the full error: a *command.CombinedError for rejected input,
	// otherwise the Diagnostic.
	Err    error
	Usages []string
}

// Empty reports whether the line had no tokens.
func (r Result) Empty() bool {
	return len(r.Tokens) == 0
}

// ExitCode maps the result to a process exit code.
func (r Result) ExitCode() int {
	if r.Diagnostic == nil {
		return 0
	}
	return r.Diagnostic.GetExitCode()
}

// enabler is implemented by modules that can be switched off.
type enabler interface {
	Enabled() bool
}

// Dispatcher resolves command lines against registered commands. It is
// safe for concurrent use; registration normally happens once at startup.
type Dispatcher struct {
	mu      sync.RWMutex
	entries []*Entry
	byLabel map[string]*Entry

	perms        PermissionChecker
	recorder     domain.CommandRecorder
	logger       domain.Logger
	styler       domain.Styler
	policy       command.Policy
	hideCommands bool
	showUsage    bool
	now          func() time.Time

	// execMu serializes resolution; current is the sender being served.
	execMu  sync.Mutex
	current domain.Sender
}

// Option configures a Dispatcher.
type Option func(*Dispatcher)

// WithPermissions sets the permission checker. The default allows everything.
func WithPermissions(p PermissionChecker) Option {
	return func(d *Dispatcher) { d.perms = p }
}

// WithRecorder sets where dispatched lines are recorded.
func WithRecorder(r domain.CommandRecorder) Option {
	return func(d *Dispatcher) { d.recorder = r }
}

// WithLogger sets the logger.
func WithLogger(l domain.Logger) Option {
	return func(d *Dispatcher) { d.logger = l }
}

// WithStyler sets the styler used by Render and the help text.
func WithStyler(s domain.Styler) Option {
	return func(d *Dispatcher) { d.styler = s }
}

// WithPolicy selects which failed alternative is reported.
func WithPolicy(p command.Policy) Option {
	return func(d *Dispatcher) { d.policy = p }
}

// WithHideCommands reports commands the sender may not use as unknown.
func WithHideCommands(hide bool) Option {
	return func(d *Dispatcher) { d.hideCommands = hide }
}

// WithShowUsage attaches usage lines to rejected and declined results.
func WithShowUsage(show bool) Option {
	return func(d *Dispatcher) { d.showUsage = show }
}

// New creates an empty Dispatcher.
func New(opts ...Option) *Dispatcher {
	d := &Dispatcher{
		byLabel:   make(map[string]*Entry),
		perms:     AllowAll,
		logger:    log.NopLogger{},
		styler:    style.NopStyler{},
		policy:    command.PolicyDeepest,
		showUsage: true,
		now:       time.Now,
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// Register validates cmd and indexes its name and aliases. Labels are
// unique regardless of case.
func (d *Dispatcher) Register(cmd *command.Command, category CommandCategory) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	d.mu.Lock()
	defer d.mu.Unlock()

	labels := cmd.Labels()
	for _, label := range labels {
		key := strings.ToLower(label)
		if key == "" {
			return fmt.Errorf("register %s: empty label", cmd.Name)
		}
		if existing, ok := d.byLabel[key]; ok {
			return fmt.Errorf("register %s: label %q already used by %s", cmd.Name, label, existing.Command.Name)
		}
	}

	entry := &Entry{Command: cmd, Category: category}
	for _, label := range labels {
		d.byLabel[strings.ToLower(label)] = entry
	}
	d.entries = append(d.entries, entry)
	return nil
}

// MustRegister is Register for built-in commands; it panics on error.
func (d *Dispatcher) MustRegister(cmd *command.Command, category CommandCategory) {
	if err := d.Register(cmd, category); err != nil {
		panic(err)
	}
}

// Entries returns the registered commands in registration order.
func (d *Dispatcher) Entries() []*Entry {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return slices.Clone(d.entries)
}

// Candidates returns every registered command, sorted by name.
func (d *Dispatcher) Candidates() []*command.Command {
	d.mu.RLock()
	defer d.mu.RUnlock()
	out := make([]*command.Command, len(d.entries))
	for i, e := range d.entries {
		out[i] = e.Command
	}
	slices.SortFunc(out, func(a, b *command.Command) int {
		return strings.Compare(a.Name, b.Name)
	})
	return out
}

// Lookup finds a command by name or alias, ignoring case.
func (d *Dispatcher) Lookup(label string) (*command.Command, bool) {
	e, ok := d.entry(label)
	if !ok {
		return nil, false
	}
	return e.Command, true
}

func (d *Dispatcher) entry(label string) (*Entry, bool) {
	d.mu.RLock()
	defer d.mu.RUnlock()
	e, ok := d.byLabel[strings.ToLower(label)]
	return e, ok
}

// CommandName renders a command for choices and usage.
func CommandName(c *command.Command) string { return c.Name }

// Allowed reports whether sender may run cmd: its module must be enabled
// and the permission checker must agree.
func (d *Dispatcher) Allowed(sender domain.Sender, cmd *command.Command) bool {
	if m, ok := cmd.Module.(enabler); ok && !m.Enabled() {
		return false
	}
	return d.perms.Allowed(sender, cmd.Permission)
}

// DispatchLine tokenizes line and dispatches it.
func (d *Dispatcher) DispatchLine(sender domain.Sender, line string) Result {
	tokens, err := Tokenize(line)
	if err != nil {
		diag := usage.InvalidArgument(usage.NoPosition, "command line", line).WithCause(err)
		diag.Message = err.Error()
		res := Result{Outcome: domain.OutcomeRejected, Sender: sender, Diagnostic: diag, Err: diag}
		d.finish(res, line)
		return res
	}
	return d.Dispatch(sender, tokens)
}

// Dispatch resolves tokens, runs the matching callback and records the
// outcome. tokens[0] is the command label. An empty slice is a no-op.
func (d *Dispatcher) Dispatch(sender domain.Sender, tokens []string) Result {
	res := Result{Sender: sender, Tokens: tokens}
	if len(tokens) == 0 {
		res.Outcome = domain.OutcomeHandled
		return res
	}

	res = d.resolve(res)
	d.finish(res, strings.Join(tokens, " "))
	return res
}

func (d *Dispatcher) resolve(res Result) Result {
	label := res.Tokens[0]

	e, ok := d.entry(label)
	if ok {
		if m, isEnabler := e.Command.Module.(enabler); isEnabler && !m.Enabled() {
			ok = false
		}
	}
	if !ok {
		return d.unknown(res, label)
	}

	cmd := e.Command
	if !d.perms.Allowed(res.Sender, cmd.Permission) {
		if d.hideCommands {
			return d.fail(res, domain.OutcomeDenied, usage.HiddenCommand(label))
		}
		res.Command = cmd
		return d.fail(res, domain.OutcomeDenied, usage.PermissionDenied(label, cmd.Permission))
	}

	res.Command = cmd
	return d.run(res, label)
}

// run checks and executes res.Command. Sources and callbacks see the
// sender through Sender while it runs; they must not dispatch again.
func (d *Dispatcher) run(res Result, label string) Result {
	d.execMu.Lock()
	defer d.execMu.Unlock()

	d.setCurrent(res.Sender)
	defer d.setCurrent(nil)

	cmd := res.Command
	switch r := cmd.Check(res.Tokens).(type) {
	case *command.Match:
		handled, err := execute(r)
		if err != nil {
			return d.fail(res, domain.OutcomeDeclined, usage.NotHandled(cmd.Name, nil).WithCause(err))
		}
		if handled {
			res.Outcome = domain.OutcomeHandled
			return res
		}
		res = d.withUsages(res)
		return d.fail(res, domain.OutcomeDeclined, usage.NotHandled(cmd.Name, res.Usages))
	case *command.CombinedError:
		res = d.withUsages(res)
		res.Outcome = domain.OutcomeRejected
		res.Diagnostic = r.Best(d.policy)
		res.Err = r
		if res.Diagnostic == nil {
			res.Diagnostic = usage.InvalidArgument(usage.NoPosition, cmd.Name, label)
		}
		return res
	default:
		return d.fail(res, domain.OutcomeRejected, usage.InvalidArgument(usage.NoPosition, cmd.Name, label).
			WithCause(fmt.Errorf("unexpected check result %T", r)))
	}
}

// execute runs the callback, turning a panic into an error.
func execute(m *command.Match) (handled bool, err error) {
	defer func() {
		if r := recover(); r != nil {
			handled = false
			err = fmt.Errorf("callback panicked: %v", r)
		}
	}()
	return m.Execute(), nil
}

func (d *Dispatcher) setCurrent(sender domain.Sender) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.current = sender
}

// Sender returns the sender whose line is being resolved, or nil when
// nothing is dispatching. Sources and callbacks use it to act on behalf
// of the sender.
func (d *Dispatcher) Sender() domain.Sender {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return d.current
}

func (d *Dispatcher) unknown(res Result, label string) Result {
	var labels []string
	for _, e := range d.Entries() {
		if d.hideCommands && !d.Allowed(res.Sender, e.Command) {
			continue
		}
		if m, ok := e.Command.Module.(enabler); ok && !m.Enabled() {
			continue
		}
		labels = append(labels, e.Command.Labels()...)
	}
	suggestions := FindSimilarCommands(label, labels, defaultSuggestionsCount)
	return d.fail(res, domain.OutcomeUnknown, usage.UnknownCommand(label, suggestions...))
}

func (d *Dispatcher) withUsages(res Result) Result {
	if d.showUsage && res.Command != nil {
		res.Usages = res.Command.Usages()
	}
	return res
}

func (d *Dispatcher) fail(res Result, outcome domain.Outcome, diag *usage.Diagnostic) Result {
	res.Outcome = outcome
	res.Diagnostic = diag
	res.Err = diag
	return res
}

// finish logs and records a dispatched line.
func (d *Dispatcher) finish(res Result, line string) {
	name := "unknown"
	if res.Sender != nil {
		name = res.Sender.DisplayName()
	}

	message := ""
	if res.Diagnostic != nil {
		message = res.Diagnostic.Error()
	}

	switch res.Outcome {
	case domain.OutcomeHandled:
		d.logger.Info("dispatch: %s ran %q", name, line)
	case domain.OutcomeDeclined:
		if cause := errors.Unwrap(res.Diagnostic); cause != nil {
			d.logger.Error("dispatch: %s ran %q: %v", name, line, cause)
		} else {
			d.logger.Info("dispatch: %s ran %q: declined", name, line)
		}
	default:
		d.logger.Warn("dispatch: %s ran %q: %s: %s", name, line, res.Outcome, firstLine(message))
	}

	if d.recorder == nil {
		return
	}
	err := d.recorder.Record(domain.CommandLogEntry{
		Sender:     name,
		Line:       line,
		Outcome:    res.Outcome,
		Diagnostic: firstLine(message),
		Timestamp:  d.now(),
	})
	if err != nil {
		d.logger.Error("dispatch: record %q: %v", line, err)
	}
}

func firstLine(s string) string {
	line, _, _ := strings.Cut(s, "\n")
	return line
}

var _ command.Source[*command.Command] = (*Dispatcher)(nil)
