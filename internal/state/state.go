// File path: internal/state/state.go
package state

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/bizdocai/bizdoc/internal/common"
	"github.com/bizdocai/bizdoc/internal/model"
	"github.com/bizdocai/bizdoc/internal/store"
)

// Recorder is the persistence boundary the state notifies after every
// committed mutation. *store.Store satisfies it.
type Recorder interface {
	LoadJSON(ctx context.Context, key string, out any) error
	SaveJSON(ctx context.Context, key string, v any) error
	LoadCounter(ctx context.Context, key string) (int, error)
	SaveCounter(ctx context.Context, key string, value int) error
	LoadText(ctx context.Context, key string) (string, error)
	SaveText(ctx context.Context, key, value string) error
}

// ErrNotFound reports a lookup against an entity id that does not exist.
var ErrNotFound = errors.New("state: not found")

// State is the single owner of all application entities. Mutators validate
// first, commit under the write lock, then notify the recorder; persistence
// failures are logged and tolerated so the in-memory state stays usable.
type State struct {
	mu  sync.RWMutex
	rec Recorder

	clientDetails  model.ClientDetails
	clients        []model.Client
	packages       []model.ItemPackage
	profile        model.CompanyProfile
	logo           string
	invoiceCounter int
	quoteCounter   int
	sets           []model.SavedDocumentSet
}

// New loads all records from the recorder, falling back to defaults for
// anything missing or unreadable.
func New(ctx context.Context, rec Recorder) (*State, error) {
	if rec == nil {
		return nil, errors.New("state: recorder required")
	}
	logger := common.Logger()
	s := &State{
		rec:            rec,
		clientDetails:  model.DefaultClientDetails(),
		profile:        model.DefaultCompanyProfile(),
		invoiceCounter: 1,
		quoteCounter:   1,
	}

	loadJSON := func(key string, out any) {
		if err := rec.LoadJSON(ctx, key, out); err != nil && !errors.Is(err, store.ErrNotFound) {
			logger.Warn("state: load record failed, using default", "key", key, "error", err)
		}
	}
	loadJSON(store.KeyClientDetails, &s.clientDetails)
	loadJSON(store.KeyClients, &s.clients)
	loadJSON(store.KeyItemPackages, &s.packages)
	loadJSON(store.KeyCompanyProfile, &s.profile)
	loadJSON(store.KeyDocumentSets, &s.sets)

	var err error
	if s.invoiceCounter, err = rec.LoadCounter(ctx, store.KeyInvoiceCounter); err != nil {
		logger.Warn("state: load invoice counter failed", "error", err)
		s.invoiceCounter = 1
	}
	if s.quoteCounter, err = rec.LoadCounter(ctx, store.KeyQuoteCounter); err != nil {
		logger.Warn("state: load quote counter failed", "error", err)
		s.quoteCounter = 1
	}
	if s.logo, err = rec.LoadText(ctx, store.KeyCompanyLogo); err != nil {
		logger.Warn("state: load logo failed", "error", err)
		s.logo = ""
	}

	s.sortClients()
	return s, nil
}

func (s *State) sortClients() {
	sort.SliceStable(s.clients, func(i, j int) bool {
		return strings.ToLower(s.clients[i].Company) < strings.ToLower(s.clients[j].Company)
	})
}

// persist writes a record through the recorder; failures are warnings, not
// errors, so a committed mutation is never rolled back.
func (s *State) persist(_ context.Context, key string, write func() error) {
	if err := write(); err != nil {
		common.Logger().Warn("state: persist failed", "key", key, "error", err)
	}
}

// ClientDetails returns the current ad-hoc recipient.
func (s *State) ClientDetails() model.ClientDetails {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.clientDetails
}

// SetClientDetails overwrites the ad-hoc recipient wholesale.
func (s *State) SetClientDetails(ctx context.Context, details model.ClientDetails) {
	s.mu.Lock()
	s.clientDetails = details
	s.mu.Unlock()
	s.persist(ctx, store.KeyClientDetails, func() error {
		return s.rec.SaveJSON(ctx, store.KeyClientDetails, details)
	})
}

// Clients returns a copy of the saved clients, sorted by company ascending.
func (s *State) Clients() []model.Client {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]model.Client, len(s.clients))
	copy(out, s.clients)
	return out
}

// AddClient validates and stores a new client record.
func (s *State) AddClient(ctx context.Context, client model.Client) (model.Client, error) {
	if err := client.Validate(); err != nil {
		return model.Client{}, err
	}
	client.ID = model.NewID(time.Now())

	s.mu.Lock()
	s.clients = append(s.clients, client)
	s.sortClients()
	snapshot := make([]model.Client, len(s.clients))
	copy(snapshot, s.clients)
	s.mu.Unlock()

	s.persist(ctx, store.KeyClients, func() error {
		return s.rec.SaveJSON(ctx, store.KeyClients, snapshot)
	})
	return client, nil
}

// DeleteClient removes a saved client by id.
func (s *State) DeleteClient(ctx context.Context, id string) error {
	s.mu.Lock()
	idx := -1
	for i, c := range s.clients {
		if c.ID == id {
			idx = i
			break
		}
	}
	if idx < 0 {
		s.mu.Unlock()
		return fmt.Errorf("client %s: %w", id, ErrNotFound)
	}
	s.clients = append(s.clients[:idx], s.clients[idx+1:]...)
	snapshot := make([]model.Client, len(s.clients))
	copy(snapshot, s.clients)
	s.mu.Unlock()

	s.persist(ctx, store.KeyClients, func() error {
		return s.rec.SaveJSON(ctx, store.KeyClients, snapshot)
	})
	return nil
}

// Packages returns a copy of the saved item packages.
func (s *State) Packages() []model.ItemPackage {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]model.ItemPackage, len(s.packages))
	copy(out, s.packages)
	return out
}

// Package returns the item package with the given id.
func (s *State) Package(id string) (model.ItemPackage, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, p := range s.packages {
		if p.ID == id {
			return p, nil
		}
	}
	return model.ItemPackage{}, fmt.Errorf("package %s: %w", id, ErrNotFound)
}

// AddPackage validates and stores a new item package. Packages are immutable
// once created; there is no update operation.
func (s *State) AddPackage(ctx context.Context, pkg model.ItemPackage) (model.ItemPackage, error) {
	if err := pkg.Validate(); err != nil {
		return model.ItemPackage{}, err
	}
	pkg.ID = model.NewID(time.Now())

	s.mu.Lock()
	s.packages = append(s.packages, pkg)
	snapshot := make([]model.ItemPackage, len(s.packages))
	copy(snapshot, s.packages)
	s.mu.Unlock()

	s.persist(ctx, store.KeyItemPackages, func() error {
		return s.rec.SaveJSON(ctx, store.KeyItemPackages, snapshot)
	})
	return pkg, nil
}

// DeletePackage removes an item package by id.
func (s *State) DeletePackage(ctx context.Context, id string) error {
	s.mu.Lock()
	idx := -1
	for i, p := range s.packages {
		if p.ID == id {
			idx = i
			break
		}
	}
	if idx < 0 {
		s.mu.Unlock()
		return fmt.Errorf("package %s: %w", id, ErrNotFound)
	}
	s.packages = append(s.packages[:idx], s.packages[idx+1:]...)
	snapshot := make([]model.ItemPackage, len(s.packages))
	copy(snapshot, s.packages)
	s.mu.Unlock()

	s.persist(ctx, store.KeyItemPackages, func() error {
		return s.rec.SaveJSON(ctx, store.KeyItemPackages, snapshot)
	})
	return nil
}

// Profile returns the company profile.
func (s *State) Profile() model.CompanyProfile {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.profile
}

// SetProfile overwrites the company profile wholesale.
func (s *State) SetProfile(ctx context.Context, profile model.CompanyProfile) {
	s.mu.Lock()
	s.profile = profile
	s.mu.Unlock()
	s.persist(ctx, store.KeyCompanyProfile, func() error {
		return s.rec.SaveJSON(ctx, store.KeyCompanyProfile, profile)
	})
}

// Logo returns the stored logo data URL, empty when none is set.
func (s *State) Logo() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.logo
}

// SetLogo stores the logo data URL; an empty value clears it.
func (s *State) SetLogo(ctx context.Context, logo string) {
	s.mu.Lock()
	s.logo = logo
	s.mu.Unlock()
	s.persist(ctx, store.KeyCompanyLogo, func() error {
		return s.rec.SaveText(ctx, store.KeyCompanyLogo, logo)
	})
}

// Counters returns the next invoice and quotation numbers to be issued.
func (s *State) Counters() (invoice, quote int) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.invoiceCounter, s.quoteCounter
}

// CommitCounters records counter values consumed by a generation. Counters
// never move backwards; a stale commit is ignored.
func (s *State) CommitCounters(ctx context.Context, invoice, quote int) {
	s.mu.Lock()
	changedInvoice := invoice > s.invoiceCounter
	changedQuote := quote > s.quoteCounter
	if changedInvoice {
		s.invoiceCounter = invoice
	}
	if changedQuote {
		s.quoteCounter = quote
	}
	s.mu.Unlock()

	if changedInvoice {
		s.persist(ctx, store.KeyInvoiceCounter, func() error {
			return s.rec.SaveCounter(ctx, store.KeyInvoiceCounter, invoice)
		})
	}
	if changedQuote {
		s.persist(ctx, store.KeyQuoteCounter, func() error {
			return s.rec.SaveCounter(ctx, store.KeyQuoteCounter, quote)
		})
	}
}

// DocumentSets returns a copy of the archive, newest first.
func (s *State) DocumentSets() []model.SavedDocumentSet {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]model.SavedDocumentSet, len(s.sets))
	copy(out, s.sets)
	return out
}

// DocumentSet returns the archived set with the given id.
func (s *State) DocumentSet(id string) (model.SavedDocumentSet, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, set := range s.sets {
		if set.ID == id {
			return set, nil
		}
	}
	return model.SavedDocumentSet{}, fmt.Errorf("document set %s: %w", id, ErrNotFound)
}

// AddDocumentSet prepends a newly archived set, keeping newest first.
func (s *State) AddDocumentSet(ctx context.Context, set model.SavedDocumentSet) {
	s.mu.Lock()
	s.sets = append([]model.SavedDocumentSet{set}, s.sets...)
	snapshot := make([]model.SavedDocumentSet, len(s.sets))
	copy(snapshot, s.sets)
	s.mu.Unlock()

	s.persist(ctx, store.KeyDocumentSets, func() error {
		return s.rec.SaveJSON(ctx, store.KeyDocumentSets, snapshot)
	})
}

// ReplaceDocumentSet swaps an archived set in place, preserving order.
func (s *State) ReplaceDocumentSet(ctx context.Context, set model.SavedDocumentSet) error {
	s.mu.Lock()
	idx := -1
	for i, existing := range s.sets {
		if existing.ID == set.ID {
			idx = i
			break
		}
	}
	if idx < 0 {
		s.mu.Unlock()
		return fmt.Errorf("document set %s: %w", set.ID, ErrNotFound)
	}
	s.sets[idx] = set
	snapshot := make([]model.SavedDocumentSet, len(s.sets))
	copy(snapshot, s.sets)
	s.mu.Unlock()

	s.persist(ctx, store.KeyDocumentSets, func() error {
		return s.rec.SaveJSON(ctx, store.KeyDocumentSets, snapshot)
	})
	return nil
}

// DeleteDocumentSet removes an archived set by id.
func (s *State) DeleteDocumentSet(ctx context.Context, id string) error {
	s.mu.Lock()
	idx := -1
	for i, set := range s.sets {
		if set.ID == id {
			idx = i
			break
		}
	}
	if idx < 0 {
		s.mu.Unlock()
		return fmt.Errorf("document set %s: %w", id, ErrNotFound)
	}
	s.sets = append(s.sets[:idx], s.sets[idx+1:]...)
	snapshot := make([]model.SavedDocumentSet, len(s.sets))
	copy(snapshot, s.sets)
	s.mu.Unlock()

	s.persist(ctx, store.KeyDocumentSets, func() error {
		return s.rec.SaveJSON(ctx, store.KeyDocumentSets, snapshot)
	})
	return nil
}
