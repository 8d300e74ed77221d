// Package memstore keeps processed payment records in process memory.
package memstore

import (
	"github.com/cardstream/payment-gateway/internal/domain"
	"github.com/patrickmn/go-cache"
)

// PaymentStore maps record IDs to immutable payment records. Records never
// expire and are never evicted; the store lives for the process lifetime.
// go-cache guards the map, so concurrent Add and TryGet calls across
// submissions are safe.
type PaymentStore struct {
	records *cache.Cache
}

func NewPaymentStore() *PaymentStore {
	return &PaymentStore{
		records: cache.New(cache.NoExpiration, 0),
	}
}

// Add inserts a record under its generated ID. Duplicate IDs are rejected:
// uniqueness is the ID source's job, a collision here is a bug upstream.
func (s *PaymentStore) Add(payment *domain.Payment) error {
	if err := s.records.Add(payment.ID, payment, cache.NoExpiration); err != nil {
		return domain.NewDuplicateRecordError(payment.ID, err)
	}
	return nil
}

// TryGet looks up a record by ID. A miss is signalled by the found flag,
// not an error.
func (s *PaymentStore) TryGet(id string) (*domain.Payment, bool) {
	v, found := s.records.Get(id)
	if !found {
		return nil, false
	}
	return v.(*domain.Payment), true
}
