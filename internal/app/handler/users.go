package handler

import (
	"strconv"

	"github.com/edwestfieldjr/BP-Tracker/internal/app/middleware"

	"github.com/gin-gonic/gin"
)

// GET /user/id/:id/ — a user's profile and the patients they supervise.
func (h *Handler) ShowUser(ctx *gin.Context) {
	targetID, err := strconv.ParseUint(ctx.Param("id"), 10, 32)
	if err != nil {
		h.badRequest(ctx, err)
		return
	}

	actor := middleware.CurrentActor(ctx)

	user, err := h.Accounts.GetUser(actor, uint(targetID))
	if err != nil {
		h.errorHandler(ctx, err)
		return
	}

	patients, err := h.Patients.ListForUser(actor, user.ID)
	if err != nil {
		h.errorHandler(ctx, err)
		return
	}

	jsonResponse(ctx, gin.H{
		"user":     user,
		"patients": patients,
	}, int64(len(patients)), gin.H{"page_title": "User Profile: " + user.Name})
}
