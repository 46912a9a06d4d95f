package registry

import (
	"github.com/vane-tools/vanectl/internal/command"
	"github.com/vane-tools/vanectl/internal/domain"
	"github.com/vane-tools/vanectl/internal/log"
)

// Actors is the live set of connected actors. Every call queries the store,
// so a parameter built on it sees connects and disconnects immediately.
type Actors struct {
	store  domain.ActorStore
	logger domain.Logger
}

// NewActors wraps store. A nil logger discards messages.
func NewActors(store domain.ActorStore, logger domain.Logger) *Actors {
	if logger == nil {
		logger = log.NopLogger{}
	}
	return &Actors{store: store, logger: logger}
}

// Candidates returns the actors online now. Store errors yield no candidates.
func (a *Actors) Candidates() []domain.Actor {
	online, err := a.store.Online()
	if err != nil {
		a.logger.Error("actors: list online: %v", err)
		return nil
	}
	return online
}

// Lookup returns the online actor with exactly this name.
func (a *Actors) Lookup(name string) (domain.Actor, bool) {
	actor, found, err := a.store.FindByName(name)
	if err != nil {
		a.logger.Error("actors: find %s: %v", name, err)
		return domain.Actor{}, false
	}
	if !found || !actor.Online {
		return domain.Actor{}, false
	}
	return actor, true
}

// Known returns any actor with this name, online or not.
func (a *Actors) Known(name string) (domain.Actor, bool) {
	actor, found, err := a.store.FindByName(name)
	if err != nil {
		a.logger.Error("actors: find %s: %v", name, err)
		return domain.Actor{}, false
	}
	return actor, found
}

// ActorName renders an actor for choices and usage.
func ActorName(a domain.Actor) string { return a.Name }

var _ command.Source[domain.Actor] = (*Actors)(nil)
