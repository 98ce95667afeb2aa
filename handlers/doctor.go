package handlers

import (
	"net/http"

	doctorRepo "doctorsportal/database/repository/doctor"
	"doctorsportal/models"
	"doctorsportal/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// DoctorHandler serves the admin-gated doctor CRUD surface.
type DoctorHandler struct {
	Doctors doctorRepo.DoctorRepository
}

func NewDoctorHandler(doctors doctorRepo.DoctorRepository) *DoctorHandler {
	return &DoctorHandler{Doctors: doctors}
}

// CreateDoctor stores a new doctor record.
func (h *DoctorHandler) CreateDoctor(c *gin.Context) {
	var doctor models.Doctor
	if err := c.ShouldBindJSON(&doctor); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid doctor payload", err.Error())
		return
	}
	if doctor.ID == "" {
		doctor.ID = uuid.New().String()
	}

	if err := h.Doctors.Insert(c.Request.Context(), &doctor); err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to create doctor", err.Error())
		return
	}
	c.JSON(http.StatusOK, doctor)
}

// GetDoctors lists every doctor record.
func (h *DoctorHandler) GetDoctors(c *gin.Context) {
	doctors, err := h.Doctors.GetAll(c.Request.Context())
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to fetch doctors", err.Error())
		return
	}
	c.JSON(http.StatusOK, doctors)
}

// DeleteDoctor removes a doctor by id.
func (h *DoctorHandler) DeleteDoctor(c *gin.Context) {
	id := c.Param("id")
	deleted, err := h.Doctors.Delete(c.Request.Context(), id)
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to delete doctor", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"acknowledged": true, "deletedCount": deleted})
}
