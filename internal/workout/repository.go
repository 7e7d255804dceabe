package workout

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"mffit/internal/storage"
)

const DefaultStorageKey = "mffit-workouts"

var ErrCorrupt = errors.New("stored workouts are not valid")

// Codec converts the full record list to and from the stored string.
type Codec interface {
	Encode(records []Record) (string, error)
	Decode(value string) ([]Record, error)
}

type JSONCodec struct{}

func (JSONCodec) Encode(records []Record) (string, error) {
	if records == nil {
		records = []Record{}
	}
	b, err := json.Marshal(records)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

func (JSONCodec) Decode(value string) ([]Record, error) {
	if strings.TrimSpace(value) == "" {
		return nil, nil
	}
	var records []Record
	if err := json.Unmarshal([]byte(value), &records); err != nil {
		return nil, fmt.Errorf("%w: %s", ErrCorrupt, err)
	}
	return records, nil
}

// Repository keeps every record as one serialized list under a single key.
type Repository struct {
	store storage.Store
	key   string
	codec Codec
}

func NewRepository(store storage.Store, key string, codec Codec) *Repository {
	if key == "" {
		key = DefaultStorageKey
	}
	if codec == nil {
		codec = JSONCodec{}
	}
	return &Repository{
		store: store,
		key:   key,
		codec: codec,
	}
}

func (r *Repository) Key() string {
	return r.key
}

// Load returns the stored records in insertion order, or an empty list when
// nothing has been stored yet.
func (r *Repository) Load() ([]Record, error) {
	value, ok, err := r.store.Get(r.key)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", r.key, err)
	}
	if !ok {
		return []Record{}, nil
	}

	records, err := r.codec.Decode(value)
	if err != nil {
		return nil, err
	}
	if records == nil {
		records = []Record{}
	}
	return records, nil
}

// Append adds rec to the end of the list and writes the whole list back.
func (r *Repository) Append(rec Record) error {
	records, err := r.Load()
	if err != nil {
		return err
	}
	records = append(records, rec)

	value, err := r.codec.Encode(records)
	if err != nil {
		return fmt.Errorf("failed to encode workouts: %w", err)
	}
	if err := r.store.Set(r.key, value); err != nil {
		return fmt.Errorf("failed to write %s: %w", r.key, err)
	}
	return nil
}
