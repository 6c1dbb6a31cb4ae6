package handler

import (
	"errors"
	"net/http"

	"github.com/edwestfieldjr/BP-Tracker/internal/app/config"
	"github.com/edwestfieldjr/BP-Tracker/internal/app/middleware"
	"github.com/edwestfieldjr/BP-Tracker/internal/app/pkg/auth"
	"github.com/edwestfieldjr/BP-Tracker/internal/app/repository"
	"github.com/edwestfieldjr/BP-Tracker/internal/app/service"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

type Handler struct {
	Repository     *repository.Repository
	Config         *config.Config
	JWTService     *auth.JWTService
	SessionService *auth.SessionService

	Accounts *service.AccountService
	Patients *service.PatientService
	Readings *service.ReadingService
}

func NewHandler(r *repository.Repository, cfg *config.Config, jwtSvc *auth.JWTService, sessionSvc *auth.SessionService) *Handler {
	return &Handler{
		Repository:     r,
		Config:         cfg,
		JWTService:     jwtSvc,
		SessionService: sessionSvc,
		Accounts:       service.NewAccountService(r),
		Patients:       service.NewPatientService(r),
		Readings:       service.NewReadingService(r),
	}
}

// RegisterHandler wires all routes onto the engine.
func (h *Handler) RegisterHandler(router *gin.Engine) {
	authSvc := &middleware.AuthService{JWT: h.JWTService, Session: h.SessionService}
	authed := middleware.AuthMiddleware(authSvc)
	optional := middleware.OptionalAuthMiddleware(authSvc)

	router.GET("/", optional, h.MainPage)
	router.POST("/register", optional, h.Register)
	router.POST("/login", h.Login)
	router.GET("/logout", h.Logout)
	router.GET("/now", h.TimeNow)

	router.GET("/user/id/:id/", authed, h.ShowUser)
	router.GET("/patient/id/:id/", authed, h.GetPatient)
	router.POST("/new-patient", authed, h.AddNewPatient)
	router.POST("/new-reading/patient/id/:id", authed, h.AddNewReading)
	router.POST("/edit-reading/patient/id/:pid/reading-id/:rid", authed, h.EditReading)
	router.GET("/delete-reading/patient/id/:pid/reading-id/:rid", authed, h.ConfirmDeleteReading)
	router.POST("/delete-reading/patient/id/:pid/reading-id/:rid", authed, h.DeleteReading)
}

func jsonResponse(ctx *gin.Context, data interface{}, count int64, meta gin.H) {
	ctx.JSON(http.StatusOK, gin.H{
		"status": "ok",
		"data":   data,
		"count":  count,
		"meta":   meta,
	})
}

// errorHandler maps domain errors onto HTTP statuses. Unexpected errors
// are logged and answered with a bare 500 so nothing internal leaks.
func (h *Handler) errorHandler(ctx *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrValidation),
		errors.Is(err, service.ErrDuplicateEmail),
		errors.Is(err, service.ErrPasswordMismatch):
		ctx.JSON(http.StatusBadRequest, gin.H{"status": "error", "description": err.Error()})
	case errors.Is(err, service.ErrInvalidCredentials),
		errors.Is(err, service.ErrAuthRequired):
		ctx.JSON(http.StatusUnauthorized, gin.H{"status": "error", "description": err.Error()})
	case errors.Is(err, service.ErrForbidden):
		ctx.JSON(http.StatusForbidden, gin.H{"status": "error", "description": err.Error()})
	case errors.Is(err, service.ErrNotFound):
		ctx.JSON(http.StatusNotFound, gin.H{"status": "error", "description": err.Error()})
	default:
		logrus.Error(err.Error())
		ctx.JSON(http.StatusInternalServerError, gin.H{"status": "error", "description": "internal error"})
	}
}

func (h *Handler) badRequest(ctx *gin.Context, err error) {
	logrus.Error(err.Error())
	ctx.JSON(http.StatusBadRequest, gin.H{"status": "error", "description": err.Error()})
}
