package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"hospital-admission-service/internal/service"
	"hospital-admission-service/pkg/utils"
)

type PatientHandler struct {
	patientService *service.PatientService
}

func NewPatientHandler(patientService *service.PatientService) *PatientHandler {
	return &PatientHandler{
		patientService: patientService,
	}
}

type registerPatientRequest struct {
	PatientNumber   int     `json:"patient_number" binding:"required"`
	FirstName       string  `json:"first_name" binding:"required"`
	MiddleName      *string `json:"middle_name"`
	LastName        string  `json:"last_name" binding:"required"`
	Address         string  `json:"address"`
	TelephoneNumber string  `json:"telephone_number"`
}

func (r registerPatientRequest) toInput() service.RegisterPatientInput {
	return service.RegisterPatientInput{
		PatientNumber:   r.PatientNumber,
		FirstName:       r.FirstName,
		MiddleName:      r.MiddleName,
		LastName:        r.LastName,
		Address:         r.Address,
		TelephoneNumber: r.TelephoneNumber,
	}
}

// RegisterPatient creates a new patient record
func (h *PatientHandler) RegisterPatient(c *gin.Context) {
	var req registerPatientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}

	patient, err := h.patientService.RegisterPatient(c.Request.Context(), req.toInput())
	if err != nil {
		respondError(c, err)
		return
	}

	utils.CreatedResponse(c, gin.H{
		"message": "Patient registered successfully",
		"patient": patient,
	})
}

type admitNewPatientRequest struct {
	registerPatientRequest
	WardID    uuid.UUID `json:"ward_id" binding:"required"`
	BedNumber int       `json:"bed_number" binding:"required,gt=0"`
	DoctorID  uuid.UUID `json:"doctor_id" binding:"required"`
	Diagnosis string    `json:"diagnosis"`
}

// AdmitNewPatient registers and admits a patient in one transaction
func (h *PatientHandler) AdmitNewPatient(c *gin.Context) {
	var req admitNewPatientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}

	patient, admission, err := h.patientService.AdmitNewPatient(c.Request.Context(),
		req.toInput(), req.WardID, req.BedNumber, req.DoctorID, req.Diagnosis)
	if err != nil {
		respondError(c, err)
		return
	}

	utils.CreatedResponse(c, gin.H{
		"message":   "Patient registered and admitted successfully",
		"patient":   patient,
		"admission": admission,
	})
}

// GetPatient retrieves a patient by ID
func (h *PatientHandler) GetPatient(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid patient ID")
		return
	}

	patient, err := h.patientService.GetPatient(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}

	utils.SuccessResponse(c, patient)
}

// FindByPatientNumber retrieves a patient by the human-assigned number
func (h *PatientHandler) FindByPatientNumber(c *gin.Context) {
	number, err := strconv.Atoi(c.Param("number"))
	if err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid patient number")
		return
	}

	patient, err := h.patientService.FindByPatientNumber(c.Request.Context(), number)
	if err != nil {
		respondError(c, err)
		return
	}
	if patient == nil {
		utils.ErrorResponse(c, http.StatusNotFound, "Patient not found")
		return
	}

	utils.SuccessResponse(c, patient)
}

// SearchPatients finds patients by a name fragment
func (h *PatientHandler) SearchPatients(c *gin.Context) {
	query := c.Query("query")

	patients, err := h.patientService.SearchPatients(c.Request.Context(), query)
	if err != nil {
		respondError(c, err)
		return
	}

	utils.SuccessResponse(c, gin.H{
		"patients": patients,
		"count":    len(patients),
	})
}

// UpdatePatient updates mutable fields of an existing patient
func (h *PatientHandler) UpdatePatient(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid patient ID")
		return
	}

	var req registerPatientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}

	patient, err := h.patientService.GetPatient(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}

	patient.PatientNumber = req.PatientNumber
	patient.FirstName = req.FirstName
	patient.MiddleName = req.MiddleName
	patient.LastName = req.LastName
	patient.Address = req.Address
	patient.TelephoneNumber = req.TelephoneNumber

	if err := h.patientService.UpdatePatient(c.Request.Context(), patient); err != nil {
		respondError(c, err)
		return
	}

	utils.SuccessResponse(c, gin.H{
		"message": "Patient updated successfully",
		"patient": patient,
	})
}

// DeletePatient removes a patient; fails with a conflict while the
// patient has a current admission
func (h *PatientHandler) DeletePatient(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid patient ID")
		return
	}

	if err := h.patientService.DeletePatient(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}

	utils.MessageResponse(c, "Patient deleted successfully")
}
