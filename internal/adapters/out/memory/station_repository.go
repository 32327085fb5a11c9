package memory

import (
	"context"
	"sort"
	"strings"

	"transport/internal/core/domain/model/kernel"
	"transport/internal/core/domain/model/station"
	"transport/internal/core/ports"
	"transport/internal/pkg/errs"
)

// StationRepository implements ports.StationRepository over the in-memory store.
type StationRepository struct {
	uow *UnitOfWork
}

// Add stages a new station for the current transaction.
func (r *StationRepository) Add(_ context.Context, aggregate *station.Station) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	r.uow.stagedStations[aggregate.ID().String()] = cloneStation(aggregate)
	return nil
}

// Update stages changes to an existing station.
func (r *StationRepository) Update(_ context.Context, aggregate *station.Station) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	id := aggregate.ID().String()
	if _, ok := r.lookup(id); !ok {
		return errs.NewObjectNotFoundError("station", id)
	}

	r.uow.stagedStations[id] = cloneStation(aggregate)
	return nil
}

// Get retrieves a station by ID. With includeDeleted false, soft-deleted
// stations are reported as not found.
func (r *StationRepository) Get(
	_ context.Context, id kernel.UUID, includeDeleted bool,
) (*station.Station, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	st, ok := r.lookup(id.String())
	if !ok || (!includeDeleted && st.IsDeleted()) {
		return nil, errs.NewObjectNotFoundError("station", id.String())
	}

	return cloneStation(st), nil
}

// ExistsWithName reports whether a non-deleted station with the given name
// exists, excluding the station identified by excludeID when valid.
func (r *StationRepository) ExistsWithName(
	_ context.Context, name string, excludeID kernel.UUID,
) (bool, error) {
	exclude := ""
	if excludeID.Validate() == nil {
		exclude = excludeID.String()
	}

	for id, st := range r.merged() {
		if id == exclude || st.IsDeleted() {
			continue
		}
		if st.Name() == name {
			return true, nil
		}
	}

	return false, nil
}

// GetAll retrieves stations matching the filter, sorted by name ascending.
func (r *StationRepository) GetAll(
	_ context.Context, filter ports.StationFilter,
) ([]*station.Station, error) {
	result := make([]*station.Station, 0)
	for _, st := range r.merged() {
		if !filter.IncludeDeleted && st.IsDeleted() {
			continue
		}
		if filter.Search != "" && !matchesStationSearch(st, filter.Search) {
			continue
		}
		result = append(result, cloneStation(st))
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].Name() < result[j].Name()
	})

	return result, nil
}

func matchesStationSearch(st *station.Station, search string) bool {
	return containsFold(st.Name(), search) ||
		containsFold(st.Address(), search) ||
		containsFold(st.Description(), search)
}

func (r *StationRepository) lookup(id string) (*station.Station, bool) {
	if st, ok := r.uow.stagedStations[id]; ok {
		return st, true
	}

	r.uow.store.mu.RLock()
	defer r.uow.store.mu.RUnlock()

	st, ok := r.uow.store.stations[id]
	return st, ok
}

// merged returns the transaction's view: store contents with staged writes on top.
func (r *StationRepository) merged() map[string]*station.Station {
	r.uow.store.mu.RLock()
	view := make(map[string]*station.Station, len(r.uow.store.stations))
	for id, st := range r.uow.store.stations {
		view[id] = st
	}
	r.uow.store.mu.RUnlock()

	for id, st := range r.uow.stagedStations {
		view[id] = st
	}

	return view
}

func containsFold(haystack, needle string) bool {
	return strings.Contains(strings.ToLower(haystack), strings.ToLower(needle))
}
