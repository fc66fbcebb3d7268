package store

import (
	"encoding/json"
	"log/slog"
	"sync"
	"time"

	"github.com/plantworks/facilityops/internal"
)

// Collection names. Every record type owns exactly one collection; the
// backup document uses these names as its top-level keys.
const (
	CollectionUsers       = "users"
	CollectionInventory   = "inventory"
	CollectionLogs        = "logs"
	CollectionConfig      = "config"
	CollectionLogistics   = "logistics"
	CollectionVisitors    = "visitors"
	CollectionMaintenance = "maintenance"
	CollectionTasks       = "assignedTasks"
	CollectionMachines    = "machines"
	CollectionAttendance  = "attendance"
	CollectionWaterLevels = "waterLevels"
)

// AllCollections lists every collection in backup order.
var AllCollections = []string{
	CollectionUsers,
	CollectionInventory,
	CollectionLogs,
	CollectionConfig,
	CollectionLogistics,
	CollectionVisitors,
	CollectionMaintenance,
	CollectionTasks,
	CollectionMachines,
	CollectionAttendance,
	CollectionWaterLevels,
}

// BackupVersion tags backup documents so a future format change can be
// detected on restore.
const BackupVersion = "1.0.0"

// Substrate is the persistent key-value medium underneath the store: one
// JSON document per collection name.
type Substrate interface {
	Get(name string) ([]byte, bool, error)
	Put(name string, doc []byte) error
	Clear() error
}

// Store maps collection names to JSON documents over a Substrate and seeds
// defaults on first access. The model is single-process, single-writer;
// the mutex only keeps concurrent readers in tests coherent, it is not a
// multi-writer discipline.
type Store struct {
	substrate Substrate
	logger    *slog.Logger
	mu        sync.Mutex
}

func New(substrate Substrate, logger *slog.Logger) *Store {
	return &Store{
		substrate: substrate,
		logger:    logger,
	}
}

// Load reads the collection document into out. When the collection has
// never been written, seed is persisted first and then decoded into out,
// so the first read and every later read observe the same data.
func (s *Store) Load(collection string, out interface{}, seed interface{}) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	raw, ok, err := s.substrate.Get(collection)
	if err != nil {
		return internal.NewInternalError("failed to read collection "+collection, err)
	}

	if !ok {
		seeded, err := json.Marshal(seed)
		if err != nil {
			return internal.NewInternalError("failed to encode seed for "+collection, err)
		}
		if err := s.substrate.Put(collection, seeded); err != nil {
			return internal.NewInternalError("failed to persist seed for "+collection, err)
		}
		s.logger.Info("seeded collection with defaults", "collection", collection)
		raw = seeded
	}

	if err := json.Unmarshal(raw, out); err != nil {
		return internal.NewInternalError("failed to decode collection "+collection, err)
	}
	return nil
}

// Save overwrites the collection document. A substrate rejection (quota,
// connection loss) always surfaces to the caller.
func (s *Store) Save(collection string, value interface{}) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	raw, err := json.Marshal(value)
	if err != nil {
		return internal.NewInternalError("failed to encode collection "+collection, err)
	}
	if err := s.substrate.Put(collection, raw); err != nil {
		return internal.NewInternalError("failed to persist collection "+collection, err).
			WithDetails(internal.ErrCodeStorageWrite)
	}
	return nil
}

// Reset clears every collection. Callers must re-seed afterwards; this is
// the factory-reset path.
func (s *Store) Reset() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.substrate.Clear(); err != nil {
		return internal.NewInternalError("failed to clear store", err)
	}
	s.logger.Warn("store reset, all collections cleared")
	return nil
}

// Backup snapshots every present collection plus a timestamp and format
// version into one JSON document. Collections never written are omitted;
// restore treats missing keys as "leave untouched" anyway.
func (s *Store) Backup() ([]byte, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	doc := make(map[string]interface{}, len(AllCollections)+2)
	for _, name := range AllCollections {
		raw, ok, err := s.substrate.Get(name)
		if err != nil {
			return nil, internal.NewInternalError("failed to read collection "+name, err)
		}
		if ok {
			doc[name] = json.RawMessage(raw)
		}
	}
	doc["timestamp"] = time.Now().Format(time.RFC3339)
	doc["version"] = BackupVersion

	out, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return nil, internal.NewInternalError("failed to encode backup document", err)
	}
	return out, nil
}

// Restore applies a backup document key-wise: collections present in the
// document are overwritten, absent ones are left untouched. The whole
// document is parsed before the first write, so a malformed document
// never partially applies.
func (s *Store) Restore(data []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	var doc map[string]json.RawMessage
	if err := json.Unmarshal(data, &doc); err != nil {
		return internal.ErrRestoreParse.WithCause(err)
	}

	type pendingWrite struct {
		name string
		raw  []byte
	}
	var writes []pendingWrite
	for _, name := range AllCollections {
		if raw, ok := doc[name]; ok {
			writes = append(writes, pendingWrite{name: name, raw: raw})
		}
	}

	for _, w := range writes {
		if err := s.substrate.Put(w.name, w.raw); err != nil {
			return internal.NewInternalError("failed to restore collection "+w.name, err)
		}
	}

	s.logger.Info("store restored from backup", "collections", len(writes))
	return nil
}
