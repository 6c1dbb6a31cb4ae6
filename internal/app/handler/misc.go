package handler

import (
	"time"

	"github.com/edwestfieldjr/BP-Tracker/internal/app/middleware"

	"github.com/gin-gonic/gin"
)

const (
	projectTitle = "BP Tracker"
	yearCreated  = 2021
)

// GET / — home view model. The visible patient and user lists are
// assembled here per request instead of being injected into every page.
func (h *Handler) MainPage(ctx *gin.Context) {
	meta := gin.H{
		"project_title": projectTitle,
		"created_year":  yearCreated,
		"current_year":  time.Now().Year(),
		"page_title":    "Home",
	}

	actor := middleware.CurrentActor(ctx)
	if actor.IsAnonymous() {
		jsonResponse(ctx, gin.H{"authenticated": false}, 0, meta)
		return
	}

	patients, err := h.Patients.ListVisible(actor)
	if err != nil {
		h.errorHandler(ctx, err)
		return
	}
	users, err := h.Accounts.ListUsers(actor)
	if err != nil {
		h.errorHandler(ctx, err)
		return
	}

	jsonResponse(ctx, gin.H{
		"authenticated": true,
		"patients":      patients,
		"users":         users,
	}, int64(len(patients)), meta)
}

// GET /now — diagnostic echo of server time.
func (h *Handler) TimeNow(ctx *gin.Context) {
	ctx.String(200, time.Now().Format("2006-01-02 15:04:05.000000"))
}
