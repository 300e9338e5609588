// Package store holds the canonical item and guest collections and keeps
// them persisted through a storage.Backend.
package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"sync"

	"fjacquet/event-budget/internal/logging"
	"fjacquet/event-budget/internal/models"
	"fjacquet/event-budget/internal/recorderror"
	"fjacquet/event-budget/internal/storage"
	"fjacquet/event-budget/internal/totals"

	"github.com/google/uuid"
)

// Reader is the read-only view of the record store. Every method returns
// copies that later mutations do not affect.
type Reader interface {
	Items() []models.LineItem
	Guests() []models.Guest
	Snapshot() totals.Snapshot
}

// RecordStore owns the item and guest collections. Mutations are persisted
// before they become visible; a failed save leaves the collections as they
// were.
type RecordStore struct {
	mu      sync.RWMutex
	items   []models.LineItem
	guests  []models.Guest
	backend storage.Backend
	logger  logging.Logger
	newID   func() string
}

var _ Reader = (*RecordStore)(nil)

// NewRecordStore creates an empty store persisting to backend. Call Load to
// read previously saved records.
func NewRecordStore(backend storage.Backend, logger logging.Logger) *RecordStore {
	return &RecordStore{
		backend: backend,
		logger:  logger.WithField(logging.FieldComponent, "RecordStore"),
		newID:   uuid.NewString,
	}
}

// Load replaces the in-memory collections with the persisted records. A
// record that does not exist yet, or that cannot be decoded, loads as an
// empty collection.
func (s *RecordStore) Load(ctx context.Context) error {
	var items []models.LineItem
	if err := s.loadRecord(ctx, storage.RecordItems, &items); err != nil {
		return err
	}
	var guests []models.Guest
	if err := s.loadRecord(ctx, storage.RecordGuests, &guests); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.items = items
	s.guests = guests

	s.logger.Debug("Records loaded",
		logging.Field{Key: logging.FieldBackend, Value: s.backend.Kind()},
		logging.Field{Key: "items", Value: len(items)},
		logging.Field{Key: "guests", Value: len(guests)})
	return nil
}

func (s *RecordStore) loadRecord(ctx context.Context, name string, dst interface{}) error {
	data, err := s.backend.Load(ctx, name)
	if errors.Is(err, storage.ErrRecordNotFound) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("load %s: %w", name, err)
	}

	if err := json.Unmarshal(data, dst); err != nil {
		decodeErr := &recorderror.DecodeError{Record: name, Err: err}
		s.logger.WithError(decodeErr).Warn("Ignoring malformed record, starting with an empty collection",
			logging.Field{Key: logging.FieldRecord, Value: name})
		// a failed decode can leave a partial slice behind
		switch v := dst.(type) {
		case *[]models.LineItem:
			*v = nil
		case *[]models.Guest:
			*v = nil
		}
	}
	return nil
}

// Items returns a copy of every line item.
func (s *RecordStore) Items() []models.LineItem {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]models.LineItem(nil), s.items...)
}

// Guests returns a copy of every guest.
func (s *RecordStore) Guests() []models.Guest {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]models.Guest(nil), s.guests...)
}

// Snapshot copies both collections under a single lock.
func (s *RecordStore) Snapshot() totals.Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return totals.Snapshot{
		Items:  append([]models.LineItem(nil), s.items...),
		Guests: append([]models.Guest(nil), s.guests...),
	}
}

// Item returns the item with the given id.
func (s *RecordStore) Item(id string) (models.LineItem, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	idx := s.itemIndex(id)
	if idx < 0 {
		return models.LineItem{}, &recorderror.NotFoundError{Kind: recorderror.KindItem, ID: id}
	}
	return s.items[idx], nil
}

// Guest returns the guest with the given id.
func (s *RecordStore) Guest(id string) (models.Guest, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	idx := s.guestIndex(id)
	if idx < 0 {
		return models.Guest{}, &recorderror.NotFoundError{Kind: recorderror.KindGuest, ID: id}
	}
	return s.guests[idx], nil
}

// ItemsInCategory returns the items of one category sorted by display order.
func (s *RecordStore) ItemsInCategory(id models.CategoryID) []models.LineItem {
	s.mu.RLock()
	var matched []models.LineItem
	for _, item := range s.items {
		if item.CategoryID == id {
			matched = append(matched, item)
		}
	}
	s.mu.RUnlock()

	sort.SliceStable(matched, func(i, j int) bool {
		if matched[i].Order != matched[j].Order {
			return matched[i].Order < matched[j].Order
		}
		return matched[i].ID < matched[j].ID
	})
	return matched
}

// AddItem stores a new item. The id is generated and the order is set to
// the number of items already in the category; both values in the draft
// are ignored. The category must be a configured one.
func (s *RecordStore) AddItem(ctx context.Context, draft models.LineItem) (models.LineItem, error) {
	if !models.IsKnownCategory(draft.CategoryID) {
		return models.LineItem{}, &recorderror.ValidationError{
			Kind: recorderror.KindItem, Field: "category", Reason: fmt.Sprintf("'%s' is not a configured category", draft.CategoryID),
		}
	}
	if err := draft.Validate(); err != nil {
		return models.LineItem{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	item := draft
	item.ID = s.newID()
	item.Order = 0
	for _, existing := range s.items {
		if existing.CategoryID == item.CategoryID {
			item.Order++
		}
	}

	next := append(append([]models.LineItem(nil), s.items...), item)
	if err := s.persist(ctx, storage.RecordItems, next); err != nil {
		return models.LineItem{}, err
	}
	s.items = next

	s.logger.Info("Item added",
		logging.Field{Key: logging.FieldItemID, Value: item.ID},
		logging.Field{Key: logging.FieldCategory, Value: item.CategoryID})
	return item, nil
}

// UpdateItem applies changes to an existing item. The category never
// changes.
func (s *RecordStore) UpdateItem(ctx context.Context, id string, changes models.ItemChanges) (models.LineItem, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := s.itemIndex(id)
	if idx < 0 {
		return models.LineItem{}, &recorderror.NotFoundError{Kind: recorderror.KindItem, ID: id}
	}
	updated := changes.Apply(s.items[idx])
	if err := updated.Validate(); err != nil {
		return models.LineItem{}, err
	}
	if err := s.replaceItem(ctx, idx, updated); err != nil {
		return models.LineItem{}, err
	}

	s.logger.Info("Item updated", logging.Field{Key: logging.FieldItemID, Value: id})
	return updated, nil
}

// ToggleItem flips the completed flag of an item.
func (s *RecordStore) ToggleItem(ctx context.Context, id string) (models.LineItem, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := s.itemIndex(id)
	if idx < 0 {
		return models.LineItem{}, &recorderror.NotFoundError{Kind: recorderror.KindItem, ID: id}
	}
	updated := s.items[idx]
	updated.Completed = !updated.Completed
	if err := s.replaceItem(ctx, idx, updated); err != nil {
		return models.LineItem{}, err
	}

	s.logger.Info("Item toggled",
		logging.Field{Key: logging.FieldItemID, Value: id},
		logging.Field{Key: "completed", Value: updated.Completed})
	return updated, nil
}

// DeleteItem removes an item.
func (s *RecordStore) DeleteItem(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := s.itemIndex(id)
	if idx < 0 {
		return &recorderror.NotFoundError{Kind: recorderror.KindItem, ID: id}
	}
	next := make([]models.LineItem, 0, len(s.items)-1)
	next = append(next, s.items[:idx]...)
	next = append(next, s.items[idx+1:]...)
	if err := s.persist(ctx, storage.RecordItems, next); err != nil {
		return err
	}
	s.items = next

	s.logger.Info("Item deleted", logging.Field{Key: logging.FieldItemID, Value: id})
	return nil
}

// AddGuest stores a new guest with a generated id.
func (s *RecordStore) AddGuest(ctx context.Context, draft models.Guest) (models.Guest, error) {
	if err := draft.Validate(); err != nil {
		return models.Guest{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	guest := draft
	guest.ID = s.newID()
	next := append(append([]models.Guest(nil), s.guests...), guest)
	if err := s.persist(ctx, storage.RecordGuests, next); err != nil {
		return models.Guest{}, err
	}
	s.guests = next

	s.logger.Info("Guest added", logging.Field{Key: logging.FieldGuestID, Value: guest.ID})
	return guest, nil
}

// UpdateGuest applies changes to an existing guest.
func (s *RecordStore) UpdateGuest(ctx context.Context, id string, changes models.GuestChanges) (models.Guest, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := s.guestIndex(id)
	if idx < 0 {
		return models.Guest{}, &recorderror.NotFoundError{Kind: recorderror.KindGuest, ID: id}
	}
	updated := changes.Apply(s.guests[idx])
	if err := updated.Validate(); err != nil {
		return models.Guest{}, err
	}

	next := append([]models.Guest(nil), s.guests...)
	next[idx] = updated
	if err := s.persist(ctx, storage.RecordGuests, next); err != nil {
		return models.Guest{}, err
	}
	s.guests = next

	s.logger.Info("Guest updated", logging.Field{Key: logging.FieldGuestID, Value: id})
	return updated, nil
}

// DeleteGuest removes a guest.
func (s *RecordStore) DeleteGuest(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := s.guestIndex(id)
	if idx < 0 {
		return &recorderror.NotFoundError{Kind: recorderror.KindGuest, ID: id}
	}
	next := make([]models.Guest, 0, len(s.guests)-1)
	next = append(next, s.guests[:idx]...)
	next = append(next, s.guests[idx+1:]...)
	if err := s.persist(ctx, storage.RecordGuests, next); err != nil {
		return err
	}
	s.guests = next

	s.logger.Info("Guest deleted", logging.Field{Key: logging.FieldGuestID, Value: id})
	return nil
}

// replaceItem persists the collection with items[idx] replaced. Caller
// holds the write lock.
func (s *RecordStore) replaceItem(ctx context.Context, idx int, item models.LineItem) error {
	next := append([]models.LineItem(nil), s.items...)
	next[idx] = item
	if err := s.persist(ctx, storage.RecordItems, next); err != nil {
		return err
	}
	s.items = next
	return nil
}

// persist encodes a collection and saves it under name. Caller holds the
// write lock.
func (s *RecordStore) persist(ctx context.Context, name string, collection interface{}) error {
	data, err := json.Marshal(collection)
	if err != nil {
		return fmt.Errorf("encode %s: %w", name, err)
	}
	if err := s.backend.Save(ctx, name, data); err != nil {
		s.logger.WithError(err).Error("Failed to persist record",
			logging.Field{Key: logging.FieldRecord, Value: name},
			logging.Field{Key: logging.FieldBackend, Value: s.backend.Kind()})
		return fmt.Errorf("save %s: %w", name, err)
	}
	return nil
}

func (s *RecordStore) itemIndex(id string) int {
	for i, item := range s.items {
		if item.ID == id {
			return i
		}
	}
	return -1
}

func (s *RecordStore) guestIndex(id string) int {
	for i, guest := range s.guests {
		if guest.ID == id {
			return i
		}
	}
	return -1
}
