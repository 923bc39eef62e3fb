package usecase

import (
	"github.com/colisgo/colisgo/internal/pkg/models"
	"github.com/colisgo/colisgo/services/demandes"
)

// demandeUC implements the demandes.DemandeUC interface
type demandeUC struct {
	cfg         *models.Config
	demandeRepo demandes.DemandeRepo
	demandeGW   demandes.DemandeGW
	billing     demandes.BillingClient
}

// NewDemandeUC creates a new demande use case
func NewDemandeUC(
	cfg *models.Config,
	demandeRepo demandes.DemandeRepo,
	demandeGW demandes.DemandeGW,
	billing demandes.BillingClient,
) demandes.DemandeUC {
	return &demandeUC{
		cfg:         cfg,
		demandeRepo: demandeRepo,
		demandeGW:   demandeGW,
		billing:     billing,
	}
}
