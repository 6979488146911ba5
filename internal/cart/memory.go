package cart

import "storefront-backend/internal/models"

// MemoryPersister keeps the encoded cart blob in memory. It runs the
// same encode/decode path as the cookie persister, which makes it a
// faithful stand-in for tests and one-off tooling.
type MemoryPersister struct {
	payload string
}

// NewMemoryPersister creates an empty in-memory persister.
func NewMemoryPersister() *MemoryPersister {
	return &MemoryPersister{}
}

// SetPayload overwrites the raw persisted blob, e.g. with an old-schema
// or corrupt value.
func (p *MemoryPersister) SetPayload(payload string) {
	p.payload = payload
}

// Payload returns the raw persisted blob.
func (p *MemoryPersister) Payload() string {
	return p.payload
}

func (p *MemoryPersister) Load() ([]models.CartLineItem, error) {
	if p.payload == "" {
		return nil, nil
	}
	return decodeItems(p.payload)
}

func (p *MemoryPersister) Save(items []models.CartLineItem) error {
	payload, err := encodeItems(items)
	if err != nil {
		return err
	}
	p.payload = payload
	return nil
}

func (p *MemoryPersister) Clear() error {
	p.payload = ""
	return nil
}
