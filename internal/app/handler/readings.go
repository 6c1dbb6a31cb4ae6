package handler

import (
	"fmt"
	"strconv"
	"time"

	"github.com/edwestfieldjr/BP-Tracker/internal/app/middleware"
	"github.com/edwestfieldjr/BP-Tracker/internal/app/service"

	"github.com/gin-gonic/gin"
)

type readingBody struct {
	TimeOfReading string `json:"time_of_reading" binding:"required"`
	SystolicMmhg  int    `json:"systolic_mmhg" binding:"required"`
	DiastolicMmhg int    `json:"diastolic_mmhg" binding:"required"`
	PulseBpm      int    `json:"pulse_bpm" binding:"required"`
}

func (h *Handler) parseReadingBody(ctx *gin.Context) (service.ReadingFields, bool) {
	var body readingBody
	if err := ctx.ShouldBindJSON(&body); err != nil {
		h.badRequest(ctx, err)
		return service.ReadingFields{}, false
	}

	t, err := time.Parse(time.RFC3339, body.TimeOfReading)
	if err != nil {
		h.errorHandler(ctx, fmt.Errorf("%w: time_of_reading must be RFC 3339", service.ErrValidation))
		return service.ReadingFields{}, false
	}

	return service.ReadingFields{
		TimeOfReading: t,
		SystolicMmhg:  body.SystolicMmhg,
		DiastolicMmhg: body.DiastolicMmhg,
		PulseBpm:      body.PulseBpm,
	}, true
}

// authorizePatient gates every reading mutation behind the owning
// patient's edit rule.
func (h *Handler) authorizePatient(ctx *gin.Context, param string) (uint, bool) {
	patientID, err := strconv.ParseUint(ctx.Param(param), 10, 32)
	if err != nil {
		h.badRequest(ctx, err)
		return 0, false
	}

	actor := middleware.CurrentActor(ctx)
	if _, err := h.Patients.GetForEdit(actor, uint(patientID)); err != nil {
		h.errorHandler(ctx, err)
		return 0, false
	}
	return uint(patientID), true
}

// authorizeReading resolves :pid and :rid, applies the owning patient's
// edit rule, and requires the reading to actually belong to that
// patient. A reading reached through someone else's patient id does not
// exist as far as the caller is concerned.
func (h *Handler) authorizeReading(ctx *gin.Context) (patientID, readingID uint, ok bool) {
	patientID, ok = h.authorizePatient(ctx, "pid")
	if !ok {
		return 0, 0, false
	}

	rid, err := strconv.ParseUint(ctx.Param("rid"), 10, 32)
	if err != nil {
		h.badRequest(ctx, err)
		return 0, 0, false
	}

	reading, err := h.Readings.Get(uint(rid))
	if err != nil {
		h.errorHandler(ctx, err)
		return 0, 0, false
	}
	if reading.PatientID != patientID {
		h.errorHandler(ctx, service.ErrNotFound)
		return 0, 0, false
	}
	return patientID, uint(rid), true
}

// POST /new-reading/patient/id/:id
func (h *Handler) AddNewReading(ctx *gin.Context) {
	patientID, ok := h.authorizePatient(ctx, "id")
	if !ok {
		return
	}

	fields, ok := h.parseReadingBody(ctx)
	if !ok {
		return
	}

	reading, err := h.Readings.Create(patientID, fields)
	if err != nil {
		h.errorHandler(ctx, err)
		return
	}

	jsonResponse(ctx, gin.H{"reading": reading}, 1, gin.H{"patient_id": patientID})
}

// POST /edit-reading/patient/id/:pid/reading-id/:rid
func (h *Handler) EditReading(ctx *gin.Context) {
	patientID, readingID, ok := h.authorizeReading(ctx)
	if !ok {
		return
	}

	fields, ok := h.parseReadingBody(ctx)
	if !ok {
		return
	}

	reading, err := h.Readings.Update(readingID, fields)
	if err != nil {
		h.errorHandler(ctx, err)
		return
	}

	jsonResponse(ctx, gin.H{"reading": reading}, 1, gin.H{"patient_id": patientID})
}

// GET /delete-reading/patient/id/:pid/reading-id/:rid — confirmation
// view only; the reading is untouched until the POST arrives.
func (h *Handler) ConfirmDeleteReading(ctx *gin.Context) {
	patientID, readingID, ok := h.authorizeReading(ctx)
	if !ok {
		return
	}

	reading, err := h.Readings.Get(readingID)
	if err != nil {
		h.errorHandler(ctx, err)
		return
	}

	jsonResponse(ctx, gin.H{"reading": reading}, 1, gin.H{
		"patient_id": patientID,
		"confirm":    fmt.Sprintf("POST /delete-reading/patient/id/%d/reading-id/%d", patientID, readingID),
	})
}

// POST /delete-reading/patient/id/:pid/reading-id/:rid
func (h *Handler) DeleteReading(ctx *gin.Context) {
	patientID, readingID, ok := h.authorizeReading(ctx)
	if !ok {
		return
	}

	if err := h.Readings.Delete(readingID); err != nil {
		h.errorHandler(ctx, err)
		return
	}

	jsonResponse(ctx, gin.H{"deleted": readingID}, 1, gin.H{"patient_id": patientID})
}
