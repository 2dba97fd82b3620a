package registry

import (
	"sync"

	"github.com/oopsididitagain335/futurecommon/model"
)

// Registry holds applications that were delivered to the review channel and
// are still awaiting a reviewer decision. Entries are never expired; an
// application nobody reviews stays pending for the process lifetime.
type Registry struct {
	mu   sync.Mutex
	apps map[string]model.Application
}

func New() *Registry {
	return &Registry{
		apps: make(map[string]model.Application),
	}
}

// Put records an application as pending. Called only after the review
// notification was confirmed sent, so an id can never be reviewed before it
// exists here.
func (r *Registry) Put(app model.Application) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.apps[app.ID] = app
}

// Take removes and returns the application for id. The lookup and removal
// happen under one lock so that of two concurrent reviewer actions on the
// same id exactly one observes the entry; the other gets ok=false.
func (r *Registry) Take(id string) (model.Application, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	app, ok := r.apps[id]
	if ok {
		delete(r.apps, id)
	}
	return app, ok
}

// Len reports the number of pending applications.
func (r *Registry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()

	return len(r.apps)
}

// Snapshot returns a copy of all pending applications.
func (r *Registry) Snapshot() []model.Application {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]model.Application, 0, len(r.apps))
	for _, app := range r.apps {
		out = append(out, app)
	}
	return out
}
