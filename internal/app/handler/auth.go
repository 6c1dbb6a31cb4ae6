package handler

import (
	"github.com/edwestfieldjr/BP-Tracker/internal/app/ds"
	"github.com/edwestfieldjr/BP-Tracker/internal/app/pkg/auth"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// startSession issues a JWT and a Redis-backed session cookie for the user.
func (h *Handler) startSession(ctx *gin.Context, user *ds.User) (token, sessionID string, err error) {
	token, err = h.JWTService.Generate(user.ID, user.Email, user.IsAdmin)
	if err != nil {
		return "", "", err
	}

	sessionID = uuid.New().String()
	sessionData := auth.SessionData{
		UserID:  user.ID,
		Email:   user.Email,
		IsAdmin: user.IsAdmin,
	}
	if err = h.SessionService.Create(ctx.Request.Context(), sessionID, sessionData); err != nil {
		return "", "", err
	}

	ctx.SetCookie("session_id", sessionID, 86400, "/", "", false, true)
	return token, sessionID, nil
}

// POST /register
func (h *Handler) Register(ctx *gin.Context) {
	type requestBody struct {
		Email           string `json:"email" binding:"required"`
		Password        string `json:"password" binding:"required"`
		ConfirmPassword string `json:"confirm_password" binding:"required"`
		Name            string `json:"name" binding:"required"`
	}

	var body requestBody
	if err := ctx.ShouldBindJSON(&body); err != nil {
		h.badRequest(ctx, err)
		return
	}

	user, err := h.Accounts.Register(body.Email, body.Password, body.ConfirmPassword, body.Name)
	if err != nil {
		h.errorHandler(ctx, err)
		return
	}

	token, sessionID, err := h.startSession(ctx, user)
	if err != nil {
		h.errorHandler(ctx, err)
		return
	}

	jsonResponse(ctx, gin.H{
		"user":       user,
		"token":      token,
		"session_id": sessionID,
	}, 1, gin.H{})
}

// POST /login
func (h *Handler) Login(ctx *gin.Context) {
	type requestBody struct {
		Email    string `json:"email" binding:"required"`
		Password string `json:"password" binding:"required"`
	}

	var body requestBody
	if err := ctx.ShouldBindJSON(&body); err != nil {
		h.badRequest(ctx, err)
		return
	}

	user, err := h.Accounts.Login(body.Email, body.Password)
	if err != nil {
		h.errorHandler(ctx, err)
		return
	}

	token, sessionID, err := h.startSession(ctx, user)
	if err != nil {
		h.errorHandler(ctx, err)
		return
	}

	jsonResponse(ctx, gin.H{
		"user":       user,
		"token":      token,
		"session_id": sessionID,
	}, 1, gin.H{})
}

// GET /logout — idempotent; a missing or stale session is fine.
func (h *Handler) Logout(ctx *gin.Context) {
	if sessionID, err := ctx.Cookie("session_id"); err == nil && sessionID != "" {
		_ = h.SessionService.Delete(ctx.Request.Context(), sessionID)
	}

	ctx.SetCookie("session_id", "", -1, "/", "", false, true)

	jsonResponse(ctx, gin.H{"message": "logged out"}, 1, gin.H{})
}
