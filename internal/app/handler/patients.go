package handler

import (
	"fmt"
	"strconv"
	"time"

	"github.com/edwestfieldjr/BP-Tracker/internal/app/middleware"
	"github.com/edwestfieldjr/BP-Tracker/internal/app/service"

	"github.com/gin-gonic/gin"
)

// GET /patient/id/:id/ — a patient and their reading log.
func (h *Handler) GetPatient(ctx *gin.Context) {
	patientID, err := strconv.ParseUint(ctx.Param("id"), 10, 32)
	if err != nil {
		h.badRequest(ctx, err)
		return
	}

	actor := middleware.CurrentActor(ctx)

	patient, err := h.Patients.Get(actor, uint(patientID))
	if err != nil {
		h.errorHandler(ctx, err)
		return
	}

	readings, err := h.Readings.ListForPatient(patient.ID)
	if err != nil {
		h.errorHandler(ctx, err)
		return
	}

	supervisor, err := h.Repository.GetUserByID(patient.PrimaryUserID)
	if err != nil {
		h.errorHandler(ctx, err)
		return
	}

	jsonResponse(ctx, gin.H{
		"patient":  patient,
		"readings": readings,
	}, int64(len(readings)), gin.H{
		"page_title":       fmt.Sprintf("BP Log: %s, %s", patient.LastName, patient.FirstName),
		"page_heading":     "Blood Pressure Reading Log for:",
		"page_sub_heading": "Readings taken By: " + supervisor.Name,
	})
}

// POST /new-patient
func (h *Handler) AddNewPatient(ctx *gin.Context) {
	type requestBody struct {
		FirstName           string `json:"first_name" binding:"required"`
		MiddleNameOrInitial string `json:"middle_name_or_initial"`
		LastName            string `json:"last_name" binding:"required"`
		NameSuffix          string `json:"name_suffix"`
		DateOfBirth         string `json:"date_of_birth" binding:"required"`
	}

	var body requestBody
	if err := ctx.ShouldBindJSON(&body); err != nil {
		h.badRequest(ctx, err)
		return
	}

	dob, err := time.Parse("2006-01-02", body.DateOfBirth)
	if err != nil {
		h.errorHandler(ctx, fmt.Errorf("%w: date_of_birth must be YYYY-MM-DD", service.ErrValidation))
		return
	}

	actor := middleware.CurrentActor(ctx)

	patient, err := h.Patients.Create(actor, service.PatientFields{
		FirstName:           body.FirstName,
		MiddleNameOrInitial: body.MiddleNameOrInitial,
		LastName:            body.LastName,
		NameSuffix:          body.NameSuffix,
		DateOfBirth:         dob,
	})
	if err != nil {
		h.errorHandler(ctx, err)
		return
	}

	jsonResponse(ctx, gin.H{"patient": patient}, 1, gin.H{})
}
