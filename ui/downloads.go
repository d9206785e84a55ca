package ui

import (
	"sync"

	"github.com/google/uuid"

	"cargas/domain/campaign"
)

// downloadStore keeps generated hipotecario workbooks keyed by token, so the
// form can offer the CRM and the masividad as separate downloads after a
// single processing pass. Each kind is served at most once: a read evicts it,
// and the token itself is dropped once every kind has been fetched, so
// entries do not pile up for the process lifetime.
type downloadStore struct {
	mu      sync.Mutex
	entries map[string]map[string]campaign.Output
}

func newDownloadStore() *downloadStore {
	return &downloadStore{entries: make(map[string]map[string]campaign.Output)}
}

// put stores the generated outputs and returns a fresh token
func (d *downloadStore) put(outputs map[string]campaign.Output) string {
	token := uuid.NewString()
	d.mu.Lock()
	d.entries[token] = outputs
	d.mu.Unlock()
	return token
}

// get returns one named output for a token, evicting the served kind and the
// whole entry once nothing is left under the token.
func (d *downloadStore) get(token, kind string) (campaign.Output, bool) {
	d.mu.Lock()
	defer d.mu.Unlock()
	outputs, ok := d.entries[token]
	if !ok {
		return campaign.Output{}, false
	}
	out, ok := outputs[kind]
	if !ok {
		return campaign.Output{}, false
	}
	delete(outputs, kind)
	if len(outputs) == 0 {
		delete(d.entries, token)
	}
	return out, true
}
