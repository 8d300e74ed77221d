package services

import (
	"github.com/cardstream/payment-gateway/internal/application"
	"github.com/cardstream/payment-gateway/internal/domain"
)

// QueryService answers lookups for previously processed payments.
type QueryService struct {
	store application.PaymentStore
}

func NewQueryService(store application.PaymentStore) *QueryService {
	return &QueryService{store: store}
}

func (s *QueryService) GetPayment(id string) (*domain.Payment, error) {
	payment, found := s.store.TryGet(id)
	if !found {
		return nil, application.NewNotFoundError(domain.NewRecordNotFoundError(id))
	}
	return payment, nil
}
