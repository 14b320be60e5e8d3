// README: Subscription plan handlers.
package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"fareline/internal/modules/plan"
	"fareline/internal/types"
)

type PlanHandler struct {
	plans *plan.Service
}

func NewPlanHandler(svc *plan.Service) *PlanHandler {
	return &PlanHandler{plans: svc}
}

func (h *PlanHandler) List(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"plans": h.plans.ListPlans(c.Request.Context())})
}

type subscribeReq struct {
	RiderID string `json:"rider_id"`
	PlanID  string `json:"plan_id"`
}

func (h *PlanHandler) Subscribe(c *gin.Context) {
	var req subscribeReq
	if err := c.ShouldBindJSON(&req); err != nil {
		writeFailure(c, http.StatusBadRequest, "invalid json")
		return
	}
	if req.RiderID == "" || req.PlanID == "" {
		writeFailure(c, http.StatusBadRequest, "rider_id and plan_id are required")
		return
	}
	sub, err := h.plans.Subscribe(c.Request.Context(), types.ID(req.RiderID), types.ID(req.PlanID))
	if err != nil {
		writePlanError(c, err)
		return
	}
	c.JSON(http.StatusOK, sub)
}

func (h *PlanHandler) GetSubscription(c *gin.Context) {
	sub, err := h.plans.GetSubscription(c.Request.Context(), types.ID(c.Param("riderId")))
	if err != nil {
		writePlanError(c, err)
		return
	}
	c.JSON(http.StatusOK, sub)
}
