package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"hospital-admission-service/internal/service"
	"hospital-admission-service/pkg/utils"
)

type AdmissionHandler struct {
	admissionService *service.AdmissionService
}

func NewAdmissionHandler(admissionService *service.AdmissionService) *AdmissionHandler {
	return &AdmissionHandler{
		admissionService: admissionService,
	}
}

type admitPatientRequest struct {
	PatientID    uuid.UUID `json:"patient_id" binding:"required"`
	WardNumber   int       `json:"ward_number" binding:"required"`
	DepartmentID uuid.UUID `json:"department_id" binding:"required"`
	BedNumber    int       `json:"bed_number" binding:"required,gt=0"`
	DoctorID     uuid.UUID `json:"doctor_id" binding:"required"`
	Diagnosis    string    `json:"diagnosis"`
}

// AdmitPatient admits an existing patient to a ward bed
func (h *AdmissionHandler) AdmitPatient(c *gin.Context) {
	var req admitPatientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}

	admissionID, err := h.admissionService.AdmitPatient(c.Request.Context(),
		req.PatientID, req.WardNumber, req.DepartmentID, req.BedNumber, req.DoctorID, req.Diagnosis)
	if err != nil {
		respondError(c, err)
		return
	}

	utils.CreatedResponse(c, gin.H{
		"message":      "Patient admitted successfully",
		"admission_id": admissionID,
	})
}

// GetCurrentAdmission returns the patient's active admission, or a null
// admission when the patient is not admitted
func (h *AdmissionHandler) GetCurrentAdmission(c *gin.Context) {
	patientID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid patient ID")
		return
	}

	admission, err := h.admissionService.GetCurrentAdmission(c.Request.Context(), patientID)
	if err != nil {
		respondError(c, err)
		return
	}

	utils.SuccessResponse(c, gin.H{
		"admission": admission,
	})
}

// GetPatientAdmissions returns the patient's admission history
func (h *AdmissionHandler) GetPatientAdmissions(c *gin.Context) {
	patientID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid patient ID")
		return
	}

	admissions, err := h.admissionService.GetPatientAdmissions(c.Request.Context(), patientID)
	if err != nil {
		respondError(c, err)
		return
	}

	utils.SuccessResponse(c, gin.H{
		"admissions": admissions,
		"count":      len(admissions),
	})
}

// DischargePatient closes the patient's current admission
func (h *AdmissionHandler) DischargePatient(c *gin.Context) {
	patientID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid patient ID")
		return
	}

	admission, err := h.admissionService.DischargePatient(c.Request.Context(), patientID)
	if err != nil {
		respondError(c, err)
		return
	}

	utils.SuccessResponse(c, gin.H{
		"message":   "Patient discharged successfully",
		"admission": admission,
	})
}
