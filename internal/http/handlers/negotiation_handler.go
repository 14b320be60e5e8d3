// README: Negotiation handlers for create/respond/accept-counter/history.
package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"fareline/internal/modules/negotiation"
	"fareline/internal/observability"
	"fareline/internal/types"
)

type NegotiationHandler struct {
	negotiation *negotiation.Service
}

func NewNegotiationHandler(svc *negotiation.Service) *NegotiationHandler {
	return &NegotiationHandler{negotiation: svc}
}

type createNegotiationReq struct {
	RideID        string `json:"ride_id"`
	RiderID       string `json:"rider_id"`
	OfferAmount   *int64 `json:"offer_amount"`
	Currency      string `json:"currency"`
	EstimatedFare *int64 `json:"estimated_fare,omitempty"`
}

type respondReq struct {
	DriverID     string `json:"driver_id"`
	Decision     string `json:"decision"`
	CounterOffer *int64 `json:"counter_offer,omitempty"`
}

type negotiationView struct {
	ID                 string       `json:"id"`
	RideID             string       `json:"ride_id"`
	RiderID            string       `json:"rider_id"`
	DriverID           *string      `json:"driver_id,omitempty"`
	RiderOffer         types.Money  `json:"rider_offer"`
	DriverCounterOffer *types.Money `json:"driver_counter_offer,omitempty"`
	Status             string       `json:"status"`
	CreatedAt          time.Time    `json:"created_at"`
	UpdatedAt          time.Time    `json:"updated_at"`
}

func toView(n *negotiation.Negotiation) negotiationView {
	v := negotiationView{
		ID:         string(n.ID),
		RideID:     string(n.RideID),
		RiderID:    string(n.RiderID),
		RiderOffer: n.RiderOffer,
		Status:     string(n.Status),
		CreatedAt:  n.CreatedAt,
		UpdatedAt:  n.UpdatedAt,
	}
	if n.DriverID != nil {
		d := string(*n.DriverID)
		v.DriverID = &d
	}
	if n.DriverCounterOffer != nil {
		m := *n.DriverCounterOffer
		v.DriverCounterOffer = &m
	}
	return v
}

func (h *NegotiationHandler) Create(c *gin.Context) {
	var req createNegotiationReq
	if err := c.ShouldBindJSON(&req); err != nil {
		writeFailure(c, http.StatusBadRequest, "invalid json")
		return
	}
	if req.OfferAmount == nil {
		writeFailure(c, http.StatusBadRequest, "offer_amount is required")
		return
	}
	currency := req.Currency
	if currency == "" {
		currency = "USD"
	}
	cmd := negotiation.CreateCommand{
		RideID:  types.ID(req.RideID),
		RiderID: types.ID(req.RiderID),
		Offer:   types.Money{Amount: *req.OfferAmount, Currency: currency},
	}
	if req.EstimatedFare != nil {
		cmd.EstimatedFare = &types.Money{Amount: *req.EstimatedFare, Currency: currency}
	}

	n, err := h.negotiation.Create(c.Request.Context(), cmd)
	if err != nil {
		writeNegotiationError(c, err)
		return
	}
	observability.NegotiationsCreated.Inc()
	c.JSON(http.StatusCreated, toView(n))
}

func (h *NegotiationHandler) Get(c *gin.Context) {
	n, err := h.negotiation.Get(c.Request.Context(), types.ID(c.Param("id")))
	if err != nil {
		writeNegotiationError(c, err)
		return
	}
	c.JSON(http.StatusOK, toView(n))
}

func (h *NegotiationHandler) ListByRide(c *gin.Context) {
	history, err := h.negotiation.ListByRide(c.Request.Context(), types.ID(c.Param("rideId")))
	if err != nil {
		writeNegotiationError(c, err)
		return
	}
	views := make([]negotiationView, 0, len(history))
	for _, n := range history {
		views = append(views, toView(n))
	}
	c.JSON(http.StatusOK, gin.H{"ride_id": c.Param("rideId"), "negotiations": views})
}

func (h *NegotiationHandler) Respond(c *gin.Context) {
	var req respondReq
	if err := c.ShouldBindJSON(&req); err != nil {
		writeFailure(c, http.StatusBadRequest, "invalid json")
		return
	}
	cmd := negotiation.RespondCommand{
		NegotiationID: types.ID(c.Param("id")),
		DriverID:      types.ID(req.DriverID),
		Decision:      negotiation.Decision(req.Decision),
	}
	if req.CounterOffer != nil {
		// currency defaults to the rider offer's currency in the service
		cmd.CounterOffer = &types.Money{Amount: *req.CounterOffer}
	}

	n, err := h.negotiation.Respond(c.Request.Context(), cmd)
	if err != nil {
		writeNegotiationError(c, err)
		return
	}
	observability.NegotiationOutcomes.WithLabelValues(string(n.Status)).Inc()
	c.JSON(http.StatusOK, toView(n))
}

func (h *NegotiationHandler) AcceptCounter(c *gin.Context) {
	n, err := h.negotiation.AcceptCounter(c.Request.Context(), negotiation.AcceptCounterCommand{
		NegotiationID: types.ID(c.Param("id")),
	})
	if err != nil {
		writeNegotiationError(c, err)
		return
	}
	observability.NegotiationOutcomes.WithLabelValues(string(n.Status)).Inc()
	c.JSON(http.StatusOK, toView(n))
}
