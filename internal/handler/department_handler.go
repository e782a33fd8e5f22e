package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"hospital-admission-service/internal/models"
	"hospital-admission-service/internal/service"
	"hospital-admission-service/pkg/utils"
)

type DepartmentHandler struct {
	departmentService *service.DepartmentService
	wardService       *service.WardService
}

func NewDepartmentHandler(departmentService *service.DepartmentService, wardService *service.WardService) *DepartmentHandler {
	return &DepartmentHandler{
		departmentService: departmentService,
		wardService:       wardService,
	}
}

type createDepartmentRequest struct {
	DepartmentCode int        `json:"department_code" binding:"required"`
	DepartmentName string     `json:"department_name" binding:"required"`
	Description    string     `json:"description"`
	Building       string     `json:"building"`
	HospitalID     uuid.UUID  `json:"hospital_id" binding:"required"`
	DirectorID     *uuid.UUID `json:"director_id"`
}

// CreateDepartment creates a new department
func (h *DepartmentHandler) CreateDepartment(c *gin.Context) {
	var req createDepartmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}

	department := &models.Department{
		DepartmentCode: req.DepartmentCode,
		DepartmentName: req.DepartmentName,
		Description:    req.Description,
		Building:       req.Building,
		HospitalID:     req.HospitalID,
		DirectorID:     req.DirectorID,
	}
	if err := h.departmentService.CreateDepartment(c.Request.Context(), department); err != nil {
		respondError(c, err)
		return
	}

	utils.CreatedResponse(c, gin.H{
		"message":    "Department created successfully",
		"department": department,
	})
}

// GetDepartment retrieves a department by ID
func (h *DepartmentHandler) GetDepartment(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid department ID")
		return
	}

	department, err := h.departmentService.GetDepartment(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}

	utils.SuccessResponse(c, department)
}

// FindByCode retrieves a department by its numeric code
func (h *DepartmentHandler) FindByCode(c *gin.Context) {
	code, err := strconv.Atoi(c.Param("code"))
	if err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid department code")
		return
	}

	department, err := h.departmentService.FindByCode(c.Request.Context(), code)
	if err != nil {
		respondError(c, err)
		return
	}
	if department == nil {
		utils.ErrorResponse(c, http.StatusNotFound, "Department not found")
		return
	}

	utils.SuccessResponse(c, department)
}

// ListDepartments retrieves all departments
func (h *DepartmentHandler) ListDepartments(c *gin.Context) {
	departments, err := h.departmentService.ListDepartments(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}

	utils.SuccessResponse(c, gin.H{
		"departments": departments,
		"count":       len(departments),
	})
}

// ListWards retrieves all wards of a department
func (h *DepartmentHandler) ListWards(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid department ID")
		return
	}

	wards, err := h.wardService.ListWardsByDepartment(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}

	utils.SuccessResponse(c, gin.H{
		"wards": wards,
		"count": len(wards),
	})
}
