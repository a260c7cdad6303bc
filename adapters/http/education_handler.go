package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	educationUC "github.com/quangdng/folio-hub/internal/application/usecase/education"
)

type EducationHandler struct {
	educationUseCase *educationUC.EducationUseCase
}

func NewEducationHandler(uc *educationUC.EducationUseCase) *EducationHandler {
	return &EducationHandler{educationUseCase: uc}
}

func (h *EducationHandler) ListEducations(c *gin.Context) {
	ownerID, ok := GetOwnerIDFromGinContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "owner information not found"})
		return
	}

	educations, err := h.educationUseCase.List(c.Request.Context(), ownerID)
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"educations": ToEducationDTOs(educations)})
}

func (h *EducationHandler) CreateEducation(c *gin.Context) {
	ownerID, ok := GetOwnerIDFromGinContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "owner information not found"})
		return
	}

	var req EducationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	e, err := h.educationUseCase.Create(c.Request.Context(), educationUC.CreateEducationInput{
		OwnerID:     ownerID,
		School:      req.School,
		Degree:      req.Degree,
		Field:       req.Field,
		Year:        req.Year,
		GPA:         req.GPA,
		Description: req.Description,
	})
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusCreated, ToEducationDTO(e))
}

func (h *EducationHandler) UpdateEducation(c *gin.Context) {
	ownerID, ok := GetOwnerIDFromGinContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "owner information not found"})
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid education id"})
		return
	}

	var req EducationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	e, err := h.educationUseCase.Update(c.Request.Context(), educationUC.UpdateEducationInput{
		ID:          id,
		OwnerID:     ownerID,
		School:      req.School,
		Degree:      req.Degree,
		Field:       req.Field,
		Year:        req.Year,
		GPA:         req.GPA,
		Description: req.Description,
	})
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, ToEducationDTO(e))
}

func (h *EducationHandler) DeleteEducation(c *gin.Context) {
	ownerID, ok := GetOwnerIDFromGinContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "owner information not found"})
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid education id"})
		return
	}

	if err := h.educationUseCase.Delete(c.Request.Context(), id, ownerID); err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "education deleted"})
}
