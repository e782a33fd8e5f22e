package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"hospital-admission-service/internal/models"
	"hospital-admission-service/internal/service"
	"hospital-admission-service/pkg/utils"
)

type WardHandler struct {
	wardService *service.WardService
}

func NewWardHandler(wardService *service.WardService) *WardHandler {
	return &WardHandler{
		wardService: wardService,
	}
}

type createWardRequest struct {
	WardNumber   int        `json:"ward_number" binding:"required"`
	NumberOfBeds int        `json:"number_of_beds" binding:"required,gt=0"`
	DepartmentID uuid.UUID  `json:"department_id" binding:"required"`
	SupervisorID *uuid.UUID `json:"supervisor_id"`
}

// CreateWard creates a new ward
func (h *WardHandler) CreateWard(c *gin.Context) {
	var req createWardRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}

	ward := &models.Ward{
		WardNumber:   req.WardNumber,
		NumberOfBeds: req.NumberOfBeds,
		DepartmentID: req.DepartmentID,
		SupervisorID: req.SupervisorID,
	}
	if err := h.wardService.CreateWard(c.Request.Context(), ward); err != nil {
		respondError(c, err)
		return
	}

	utils.CreatedResponse(c, gin.H{
		"message": "Ward created successfully",
		"ward":    ward,
	})
}

// GetWard retrieves a ward by ID
func (h *WardHandler) GetWard(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid ward ID")
		return
	}

	ward, err := h.wardService.GetWard(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}

	utils.SuccessResponse(c, ward)
}
