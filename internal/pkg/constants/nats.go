package constants

// NATS subjects
const (
	// Demandes service
	SubjectDemandeCreated         = "demande.created"
	SubjectDemandeUpdated         = "demande.updated"
	SubjectDemandeAccepted        = "demande.accepted"
	SubjectDemandeRejected        = "demande.rejected"
	SubjectDemandeDeliveryUpdated = "demande.delivery_updated"

	// SubjectDemandeAll matches every demande event, used by the
	// live-update fan-out consumer.
	SubjectDemandeAll = "demande.>"

	// Billing service
	SubjectCommissionCharged = "billing.commission_charged"
	SubjectPaymentRecorded   = "billing.payment_recorded"
)
