package domain

import (
	"io"
	"time"
)

// Sender is whoever typed a command line: the console or a connected actor.
type Sender interface {
	// DisplayName returns the name shown in logs and messages.
	DisplayName() string

	// IsConsole reports whether the sender is the local console.
	IsConsole() bool
}

// ActorStore defines persistence for actors, their grants and the command log.
type ActorStore interface {
	// Connect marks an actor online, creating it on first use.
	Connect(name string) (Actor, error)

	// Disconnect marks an actor offline.
	Disconnect(name string) error

	// SetOp grants or revokes operator status.
	SetOp(name string, op bool) error

	// Online returns the actors currently online, ordered by name.
	Online() ([]Actor, error)

	// FindByName returns an actor by exact name.
	FindByName(name string) (Actor, bool, error)

	// Grant adds a permission pattern to an actor.
	Grant(name, pattern string) error

	// Revoke removes a permission pattern from an actor.
	Revoke(name, pattern string) error

	// Permissions returns the permission patterns granted to an actor.
	Permissions(name string) ([]string, error)

	// Close closes the store connection.
	Close() error
}

// CommandRecorder defines the audit log of dispatched command lines.
type CommandRecorder interface {
	// Record appends an entry to the log.
	Record(entry CommandLogEntry) error

	// History returns the newest entries first, at most limit of them.
	History(limit int) ([]CommandLogEntry, error)
}

// ConfigProvider defines operations for reading and writing configuration.
type ConfigProvider interface {
	// Get returns the value for a configuration key.
	Get(key string) (string, bool)

	// GetAll returns all configuration values.
	GetAll() (map[string]string, error)

	// Set sets a configuration value.
	Set(key, value string) error

	// Unset removes a configuration value.
	Unset(key string) error
}

// Logger defines logging operations.
type Logger interface {
	// Debug logs a debug message.
	Debug(format string, args ...any)

	// Info logs an info message.
	Info(format string, args ...any)

	// Warn logs a warning message.
	Warn(format string, args ...any)

	// Error logs an error message.
	Error(format string, args ...any)

	// Close closes the logger.
	Close() error
}

// OutputWriter defines output operations.
type OutputWriter interface {
	io.Writer

	// Printf formats and prints to the output.
	Printf(format string, args ...any) (int, error)

	// Println prints a line to the output.
	Println(args ...any) (int, error)
}

// Styler defines text styling operations.
type Styler interface {
	// Enabled returns true if styling is enabled.
	Enabled() bool

	// Success styles text as success.
	Success(text string) string

	// Warning styles text as warning.
	Warning(text string) string

	// Error styles text as error.
	Error(text string) string

	// Info styles text as info.
	Info(text string) string

	// Muted styles text as muted.
	Muted(text string) string

	// Header styles text as header.
	Header(text string) string

	// Token highlights an offending input token.
	Token(text string) string

	// Usage styles a grammar usage line.
	Usage(text string) string
}

// Actor is a named participant that can connect, disconnect and run commands.
type Actor struct {
	ID       string
	Name     string
	Op       bool
	Online   bool
	LastSeen time.Time
}

// DisplayName returns the actor's name.
func (a Actor) DisplayName() string { return a.Name }

// IsConsole always reports false for actors.
func (a Actor) IsConsole() bool { return false }

// Console is the local operator. It holds every permission.
type Console struct{}

// DisplayName returns "console".
func (Console) DisplayName() string { return "console" }

// IsConsole always reports true.
func (Console) IsConsole() bool { return true }

// Outcome classifies a dispatched command line in the command log.
type Outcome int

const (
	OutcomeHandled Outcome = iota
	OutcomeDeclined
	OutcomeRejected
	OutcomeDenied
	OutcomeUnknown
)

func (o Outcome) String() string {
	switch o {
	case OutcomeHandled:
		return "handled"
	case OutcomeDeclined:
		return "declined"
	case OutcomeRejected:
		return "rejected"
	case OutcomeDenied:
		return "denied"
	case OutcomeUnknown:
		return "unknown"
	default:
		return "invalid"
	}
}

// CommandLogEntry is one dispatched command line.
type CommandLogEntry struct {
	ID         int64
	Sender     string
	Line       string
	Outcome    Outcome
	Diagnostic string
	Timestamp  time.Time
}

var (
	_ Sender = Actor{}
	_ Sender = Console{}
)
