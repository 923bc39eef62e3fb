package usecase

import (
	"github.com/colisgo/colisgo/internal/pkg/models"
	"github.com/colisgo/colisgo/services/billing"
)

// billingUC implements the billing.BillingUC interface
type billingUC struct {
	cfg         *models.Config
	billingRepo billing.BillingRepo
	billingGW   billing.BillingGW
	cache       billing.CommissionCache
}

// NewBillingUC creates a new billing use case
func NewBillingUC(
	cfg *models.Config,
	billingRepo billing.BillingRepo,
	billingGW billing.BillingGW,
	cache billing.CommissionCache,
) billing.BillingUC {
	return &billingUC{
		cfg:         cfg,
		billingRepo: billingRepo,
		billingGW:   billingGW,
		cache:       cache,
	}
}
