package core

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/google/uuid"

	"github.com/rosterdesk/rosterdesk/internal/config"
	"github.com/rosterdesk/rosterdesk/internal/logging"
)

// Sentinel errors surfaced to transport layers for status mapping.
var (
	ErrUnknownDataset = errors.New("unknown dataset")
	ErrNotFound       = errors.New("record not found")
)

// Dataset pairs a registered definition with its live store.
type Dataset struct {
	Def   Definition
	Store *Store
}

// Service is the main entry point for all dataset operations. It owns one
// in-memory store per registered dataset for the life of the process and
// limits how many imports may parse concurrently.
type Service struct {
	cfg       *config.Config
	datasets  map[string]*Dataset
	importSem chan struct{}
}

// NewService builds a service over every dataset in the registry. Datasets
// must be registered (via their package init) before this is called.
func NewService(cfg *config.Config) (*Service, error) {
	defs := All()
	if len(defs) == 0 {
		return nil, fmt.Errorf("no datasets registered")
	}

	datasets := make(map[string]*Dataset, len(defs))
	for _, def := range defs {
		datasets[def.Info.Key] = &Dataset{Def: def, Store: NewStore()}
	}

	return &Service{
		cfg:       cfg,
		datasets:  datasets,
		importSem: make(chan struct{}, cfg.Import.MaxConcurrent),
	}, nil
}

// Datasets returns display info for every dataset, in registry order.
func (s *Service) Datasets() []Info {
	defs := All()
	infos := make([]Info, len(defs))
	for i, def := range defs {
		infos[i] = def.Info
	}
	return infos
}

// Dataset returns the dataset for a key.
func (s *Service) Dataset(key string) (*Dataset, error) {
	ds, ok := s.datasets[key]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownDataset, key)
	}
	return ds, nil
}

// Import runs the import pipeline for one dataset. Parsing happens outside
// the store's lock; the store is replaced atomically at the end. Concurrent
// imports beyond the configured limit wait for a slot.
func (s *Service) Import(ctx context.Context, key string, r io.Reader) (ImportResult, error) {
	ds, err := s.Dataset(key)
	if err != nil {
		return ImportResult{}, err
	}

	select {
	case s.importSem <- struct{}{}:
		defer func() { <-s.importSem }()
	case <-ctx.Done():
		return ImportResult{}, fmt.Errorf("waiting for import slot: %w", ctx.Err())
	}

	importCtx, cancel := context.WithTimeout(ctx, s.cfg.Import.Timeout)
	defer cancel()

	importID := uuid.New().String()
	log := logging.WithFields(ctx, "import_id", importID, "dataset", key)

	imp := &Importer{Schema: ds.Def.Schema, Store: ds.Store}
	result, err := imp.Import(importCtx, r)
	if err != nil {
		log.Error("import failed", "error", err)
		return result, err
	}
	result.ImportID = importID

	switch {
	case result.Rejected():
		log.Warn("import rejected", "missing_columns", result.MissingColumns)
	default:
		log.Info("import complete",
			"imported", result.Imported,
			"blank", result.Blank,
			"failed", result.Failed,
			"duration_ms", result.Duration.Milliseconds(),
		)
	}
	return result, nil
}

// Records returns a snapshot of all records in a dataset.
func (s *Service) Records(key string) ([]Record, error) {
	ds, err := s.Dataset(key)
	if err != nil {
		return nil, err
	}
	return ds.Store.GetAll(), nil
}

// Count returns the number of live records in a dataset.
func (s *Service) Count(key string) (int, error) {
	ds, err := s.Dataset(key)
	if err != nil {
		return 0, err
	}
	return ds.Store.Count(), nil
}

// Add coerces the raw field text into a record and appends it under the
// next identifier. Returns the stored record.
func (s *Service) Add(ctx context.Context, key string, raw map[string]string) (Record, error) {
	ds, err := s.Dataset(key)
	if err != nil {
		return Record{}, err
	}

	rec, err := MakeRecord(ds.Def.Schema, raw)
	if err != nil {
		return Record{}, err
	}

	id := ds.Store.Add(rec)
	rec.ID = id
	logging.FromContext(ctx).Info("record added", "dataset", key, "id", id)
	return rec, nil
}

// Update replaces the record with the given identifier wholesale. There is
// no partial-field patch: the raw map must describe the full record.
func (s *Service) Update(ctx context.Context, key string, id int64, raw map[string]string) (Record, error) {
	ds, err := s.Dataset(key)
	if err != nil {
		return Record{}, err
	}

	rec, err := MakeRecord(ds.Def.Schema, raw)
	if err != nil {
		return Record{}, err
	}
	rec.ID = id

	if !ds.Store.Update(rec) {
		return Record{}, fmt.Errorf("%w: id %d", ErrNotFound, id)
	}
	logging.FromContext(ctx).Info("record updated", "dataset", key, "id", id)
	return rec, nil
}

// Delete removes the record with the given identifier.
func (s *Service) Delete(ctx context.Context, key string, id int64) error {
	ds, err := s.Dataset(key)
	if err != nil {
		return err
	}

	if !ds.Store.Delete(id) {
		return fmt.Errorf("%w: id %d", ErrNotFound, id)
	}
	logging.FromContext(ctx).Info("record deleted", "dataset", key, "id", id)
	return nil
}

// Clear empties a dataset and resets its identifier counter.
func (s *Service) Clear(ctx context.Context, key string) error {
	ds, err := s.Dataset(key)
	if err != nil {
		return err
	}

	count := ds.Store.Count()
	ds.Store.Clear()
	logging.FromContext(ctx).Info("dataset cleared", "dataset", key, "rows", count)
	return nil
}

// Export serializes the dataset's current records to spreadsheet bytes.
func (s *Service) Export(key string) ([]byte, error) {
	ds, err := s.Dataset(key)
	if err != nil {
		return nil, err
	}
	return Export(ds.Def.Schema, ds.Store.GetAll())
}

// Template generates a blank import template for the dataset.
func (s *Service) Template(key string) ([]byte, error) {
	ds, err := s.Dataset(key)
	if err != nil {
		return nil, err
	}
	return Template(ds.Def)
}

// Subscribe registers a change subscriber on one dataset's store.
func (s *Service) Subscribe(key string, fn Subscriber) (cancel func(), err error) {
	ds, err := s.Dataset(key)
	if err != nil {
		return nil, err
	}
	return ds.Store.Subscribe(fn), nil
}

// Stats reports the per-dataset record counts, for the dashboard view.
func (s *Service) Stats() map[string]int {
	stats := make(map[string]int, len(s.datasets))
	for key, ds := range s.datasets {
		stats[key] = ds.Store.Count()
	}
	return stats
}
