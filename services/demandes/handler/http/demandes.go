package http

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/colisgo/colisgo/internal/pkg/logger"
	"github.com/colisgo/colisgo/internal/pkg/models"
	nrpkg "github.com/colisgo/colisgo/internal/pkg/newrelic"
	"github.com/colisgo/colisgo/internal/utils"
	"github.com/colisgo/colisgo/services/demandes"
)

// DemandesHandler handles HTTP requests for demande operations
type DemandesHandler struct {
	demandeUC demandes.DemandeUC
}

// NewDemandesHandler creates a new demande HTTP handler
func NewDemandesHandler(demandeUC demandes.DemandeUC) *DemandesHandler {
	return &DemandesHandler{demandeUC: demandeUC}
}

// CreateDemande handles transport request creation
func (h *DemandesHandler) CreateDemande(c echo.Context) error {
	txn := nrpkg.FromEchoContext(c)
	nrpkg.SetTransactionName(txn, "Demandes.Create")

	var req models.CreateDemandeRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}

	demande, err := h.demandeUC.CreateDemande(c.Request().Context(), &req)
	if err != nil {
		nrpkg.NoticeTransactionError(txn, err)
		return utils.AppErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, http.StatusCreated, "Demande created successfully", demande)
}

// GetDemande fetches a single demande
func (h *DemandesHandler) GetDemande(c echo.Context) error {
	id, err := pathUUID(c, "id")
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid demande id")
	}

	demande, err := h.demandeUC.GetDemande(c.Request().Context(), id)
	if err != nil {
		return utils.AppErrorResponse(c, err)
	}
	return utils.SuccessResponse(c, http.StatusOK, "", demande)
}

// ListDemandes lists every demande, most recently updated first
func (h *DemandesHandler) ListDemandes(c echo.Context) error {
	list, err := h.demandeUC.ListDemandes(c.Request().Context())
	if err != nil {
		return utils.AppErrorResponse(c, err)
	}
	return utils.ListResponse(c, len(list), list)
}

// ListDemandesByUser lists a rider's demandes
func (h *DemandesHandler) ListDemandesByUser(c echo.Context) error {
	userID, err := pathUUID(c, "userID")
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid user id")
	}

	list, err := h.demandeUC.ListDemandesByUser(c.Request().Context(), userID)
	if err != nil {
		return utils.AppErrorResponse(c, err)
	}
	return utils.ListResponse(c, len(list), list)
}

// ListDemandesByDriver lists a driver's demandes
func (h *DemandesHandler) ListDemandesByDriver(c echo.Context) error {
	driverID, err := pathUUID(c, "driverID")
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid driver id")
	}

	list, err := h.demandeUC.ListDemandesByDriver(c.Request().Context(), driverID)
	if err != nil {
		return utils.AppErrorResponse(c, err)
	}
	return utils.ListResponse(c, len(list), list)
}

// ListDemandesByDriverAndTrajet returns the accepted demandes a driver
// carries on one trajet.
func (h *DemandesHandler) ListDemandesByDriverAndTrajet(c echo.Context) error {
	driverID, err := pathUUID(c, "driverID")
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid driver id")
	}
	trajetID, err := pathUUID(c, "trajetID")
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid trajet id")
	}

	list, err := h.demandeUC.ListDemandesByDriverAndTrajet(c.Request().Context(), driverID, trajetID)
	if err != nil {
		return utils.AppErrorResponse(c, err)
	}
	return utils.ListResponse(c, len(list), list)
}

// ListDemandesByStatus filters demandes by commercial status
func (h *DemandesHandler) ListDemandesByStatus(c echo.Context) error {
	status := models.DemandeStatus(c.Param("status"))

	list, err := h.demandeUC.ListDemandesByStatus(c.Request().Context(), status)
	if err != nil {
		return utils.AppErrorResponse(c, err)
	}
	return utils.ListResponse(c, len(list), list)
}

// UpdateDemande applies a partial update of the commercial fields
func (h *DemandesHandler) UpdateDemande(c echo.Context) error {
	txn := nrpkg.FromEchoContext(c)
	nrpkg.SetTransactionName(txn, "Demandes.Update")

	id, err := pathUUID(c, "id")
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid demande id")
	}

	var patch models.DemandePatch
	if err := c.Bind(&patch); err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}

	demande, err := h.demandeUC.UpdateDemande(c.Request().Context(), id, &patch)
	if err != nil {
		nrpkg.NoticeTransactionError(txn, err)
		return utils.AppErrorResponse(c, err)
	}
	return utils.SuccessResponse(c, http.StatusOK, "Demande updated successfully", demande)
}

// DeleteDemande is the administrative removal endpoint
func (h *DemandesHandler) DeleteDemande(c echo.Context) error {
	id, err := pathUUID(c, "id")
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid demande id")
	}

	if err := h.demandeUC.DeleteDemande(c.Request().Context(), id); err != nil {
		return utils.AppErrorResponse(c, err)
	}
	return utils.SuccessResponse(c, http.StatusOK, "Demande deleted successfully", nil)
}

// AcceptDemande closes the negotiation and triggers commission settlement
func (h *DemandesHandler) AcceptDemande(c echo.Context) error {
	txn := nrpkg.FromEchoContext(c)
	nrpkg.SetTransactionName(txn, "Demandes.Accept")

	id, err := pathUUID(c, "id")
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid demande id")
	}

	demande, err := h.demandeUC.AcceptDemande(c.Request().Context(), id)
	if err != nil {
		logger.Warn("Demande acceptance refused",
			logger.String("demande_id", id.String()),
			logger.Err(err))
		nrpkg.NoticeTransactionError(txn, err)
		return utils.AppErrorResponse(c, err)
	}
	return utils.SuccessResponse(c, http.StatusOK, "Demande accepted", demande)
}

// RejectDemande closes the negotiation without settlement
func (h *DemandesHandler) RejectDemande(c echo.Context) error {
	id, err := pathUUID(c, "id")
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid demande id")
	}

	demande, err := h.demandeUC.RejectDemande(c.Request().Context(), id)
	if err != nil {
		return utils.AppErrorResponse(c, err)
	}
	return utils.SuccessResponse(c, http.StatusOK, "Demande rejected", demande)
}

// ProposePrice records a price offer from one side of the negotiation
func (h *DemandesHandler) ProposePrice(c echo.Context) error {
	txn := nrpkg.FromEchoContext(c)
	nrpkg.SetTransactionName(txn, "Demandes.ProposePrice")

	id, err := pathUUID(c, "id")
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid demande id")
	}

	var req models.ProposePriceRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}

	demande, err := h.demandeUC.ProposePrice(c.Request().Context(), id, &req)
	if err != nil {
		nrpkg.NoticeTransactionError(txn, err)
		return utils.AppErrorResponse(c, err)
	}
	return utils.SuccessResponse(c, http.StatusOK, "Price proposed", demande)
}

// AdvanceDeliveryStatus moves the cargo-handling track forward
func (h *DemandesHandler) AdvanceDeliveryStatus(c echo.Context) error {
	id, err := pathUUID(c, "id")
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid demande id")
	}

	var req models.AdvanceDeliveryRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}

	demande, err := h.demandeUC.AdvanceDeliveryStatus(c.Request().Context(), id, &req)
	if err != nil {
		return utils.AppErrorResponse(c, err)
	}
	return utils.SuccessResponse(c, http.StatusOK, "Delivery status updated", demande)
}

// AttachReview records the rider's rating and comment
func (h *DemandesHandler) AttachReview(c echo.Context) error {
	id, err := pathUUID(c, "id")
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid demande id")
	}

	var req models.ReviewRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}

	demande, err := h.demandeUC.AttachReview(c.Request().Context(), id, &req)
	if err != nil {
		return utils.AppErrorResponse(c, err)
	}
	return utils.SuccessResponse(c, http.StatusOK, "Review saved", demande)
}

// GetDriverRating returns the aggregate rating of a driver
func (h *DemandesHandler) GetDriverRating(c echo.Context) error {
	driverID, err := pathUUID(c, "driverID")
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid driver id")
	}

	rating, err := h.demandeUC.GetDriverRating(c.Request().Context(), driverID)
	if err != nil {
		return utils.AppErrorResponse(c, err)
	}
	return utils.SuccessResponse(c, http.StatusOK, "", rating)
}

func pathUUID(c echo.Context, name string) (uuid.UUID, error) {
	return uuid.Parse(c.Param(name))
}
