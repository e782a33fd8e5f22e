package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"hospital-admission-service/internal/service"
	"hospital-admission-service/pkg/utils"
)

type EmployeeHandler struct {
	employeeService *service.EmployeeService
}

func NewEmployeeHandler(employeeService *service.EmployeeService) *EmployeeHandler {
	return &EmployeeHandler{
		employeeService: employeeService,
	}
}

type addDoctorRequest struct {
	EmployeeNumber  int     `json:"employee_number" binding:"required"`
	FirstName       string  `json:"first_name" binding:"required"`
	MiddleName      *string `json:"middle_name"`
	LastName        string  `json:"last_name" binding:"required"`
	Address         string  `json:"address"`
	TelephoneNumber string  `json:"telephone_number"`
	Specialty       string  `json:"specialty" binding:"required"`
}

// AddDoctor creates a doctor employee record
func (h *EmployeeHandler) AddDoctor(c *gin.Context) {
	var req addDoctorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}

	doctor, err := h.employeeService.AddDoctor(c.Request.Context(), service.AddDoctorInput{
		EmployeeNumber:  req.EmployeeNumber,
		FirstName:       req.FirstName,
		MiddleName:      req.MiddleName,
		LastName:        req.LastName,
		Address:         req.Address,
		TelephoneNumber: req.TelephoneNumber,
		Specialty:       req.Specialty,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	utils.CreatedResponse(c, gin.H{
		"message": "Doctor created successfully",
		"doctor":  doctor,
	})
}

type addNurseRequest struct {
	EmployeeNumber  int       `json:"employee_number" binding:"required"`
	FirstName       string    `json:"first_name" binding:"required"`
	MiddleName      *string   `json:"middle_name"`
	LastName        string    `json:"last_name" binding:"required"`
	Address         string    `json:"address"`
	TelephoneNumber string    `json:"telephone_number"`
	Rotation        string    `json:"rotation" binding:"required"`
	Salary          float64   `json:"salary" binding:"required,gt=0"`
	DepartmentID    uuid.UUID `json:"department_id" binding:"required"`
}

// AddNurse creates a nurse employee record
func (h *EmployeeHandler) AddNurse(c *gin.Context) {
	var req addNurseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}

	nurse, err := h.employeeService.AddNurse(c.Request.Context(), service.AddNurseInput{
		EmployeeNumber:  req.EmployeeNumber,
		FirstName:       req.FirstName,
		MiddleName:      req.MiddleName,
		LastName:        req.LastName,
		Address:         req.Address,
		TelephoneNumber: req.TelephoneNumber,
		Rotation:        req.Rotation,
		Salary:          req.Salary,
		DepartmentID:    req.DepartmentID,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	utils.CreatedResponse(c, gin.H{
		"message": "Nurse created successfully",
		"nurse":   nurse,
	})
}

// GetEmployee retrieves an employee by ID
func (h *EmployeeHandler) GetEmployee(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid employee ID")
		return
	}

	employee, err := h.employeeService.GetEmployee(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}

	utils.SuccessResponse(c, employee)
}

// FindByEmployeeNumber retrieves an employee by the human-assigned number
func (h *EmployeeHandler) FindByEmployeeNumber(c *gin.Context) {
	number, err := strconv.Atoi(c.Param("number"))
	if err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid employee number")
		return
	}

	employee, err := h.employeeService.FindByEmployeeNumber(c.Request.Context(), number)
	if err != nil {
		respondError(c, err)
		return
	}
	if employee == nil {
		utils.ErrorResponse(c, http.StatusNotFound, "Employee not found")
		return
	}

	utils.SuccessResponse(c, employee)
}

// FindDoctorsBySpecialty retrieves all doctors with the given specialty
func (h *EmployeeHandler) FindDoctorsBySpecialty(c *gin.Context) {
	specialty := c.Query("specialty")
	if specialty == "" {
		utils.ErrorResponse(c, http.StatusBadRequest, "Missing specialty query parameter")
		return
	}

	doctors, err := h.employeeService.FindDoctorsBySpecialty(c.Request.Context(), specialty)
	if err != nil {
		respondError(c, err)
		return
	}

	utils.SuccessResponse(c, gin.H{
		"doctors": doctors,
		"count":   len(doctors),
	})
}
