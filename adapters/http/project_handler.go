package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	projectUC "github.com/quangdng/folio-hub/internal/application/usecase/project"
)

type ProjectHandler struct {
	projectUseCase *projectUC.ProjectUseCase
}

func NewProjectHandler(uc *projectUC.ProjectUseCase) *ProjectHandler {
	return &ProjectHandler{projectUseCase: uc}
}

func (h *ProjectHandler) ListProjects(c *gin.Context) {
	ownerID, ok := GetOwnerIDFromGinContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "owner information not found"})
		return
	}

	projects, err := h.projectUseCase.List(c.Request.Context(), ownerID)
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"projects": ToProjectDTOs(projects)})
}

func (h *ProjectHandler) CreateProject(c *gin.Context) {
	ownerID, ok := GetOwnerIDFromGinContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "owner information not found"})
		return
	}

	var req ProjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	p, err := h.projectUseCase.Create(c.Request.Context(), projectUC.CreateProjectInput{
		OwnerID:      ownerID,
		Title:        req.Title,
		Description:  req.Description,
		TechStackRaw: req.TechStack,
		ImageURL:     req.ImageURL,
		GithubLink:   req.GithubLink,
		DemoLink:     req.DemoLink,
		Featured:     req.Featured,
	})
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusCreated, ToProjectDTO(p))
}

func (h *ProjectHandler) UpdateProject(c *gin.Context) {
	ownerID, ok := GetOwnerIDFromGinContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "owner information not found"})
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid project id"})
		return
	}

	var req ProjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	p, err := h.projectUseCase.Update(c.Request.Context(), projectUC.UpdateProjectInput{
		ID:           id,
		OwnerID:      ownerID,
		Title:        req.Title,
		Description:  req.Description,
		TechStackRaw: req.TechStack,
		ImageURL:     req.ImageURL,
		GithubLink:   req.GithubLink,
		DemoLink:     req.DemoLink,
		Featured:     req.Featured,
	})
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, ToProjectDTO(p))
}

func (h *ProjectHandler) DeleteProject(c *gin.Context) {
	ownerID, ok := GetOwnerIDFromGinContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "owner information not found"})
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid project id"})
		return
	}

	if err := h.projectUseCase.Delete(c.Request.Context(), id, ownerID); err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "project deleted"})
}
