package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	profileUC "github.com/quangdng/folio-hub/internal/application/usecase/profile"
	"github.com/quangdng/folio-hub/internal/domain/profile"
)

type ProfileHandler struct {
	profileUseCase *profileUC.ProfileUseCase
}

func NewProfileHandler(uc *profileUC.ProfileUseCase) *ProfileHandler {
	return &ProfileHandler{profileUseCase: uc}
}

func (h *ProfileHandler) GetProfile(c *gin.Context) {
	ownerID, ok := GetOwnerIDFromGinContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "owner information not found"})
		return
	}

	p, err := h.profileUseCase.Get(c.Request.Context(), ownerID)
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, ToProfileDTO(p))
}

func (h *ProfileHandler) UpsertProfile(c *gin.Context) {
	ownerID, ok := GetOwnerIDFromGinContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "owner information not found"})
		return
	}

	var req UpsertProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	p, err := h.profileUseCase.Upsert(c.Request.Context(), profileUC.UpsertProfileInput{
		OwnerID:              ownerID,
		Name:                 req.Name,
		Email:                req.Email,
		Username:             req.Username,
		ProfessionalTitle:    req.ProfessionalTitle,
		ProfessionalCategory: req.ProfessionalCategory,
		Bio:                  req.Bio,
		Location:             req.Location,
		ContactInfo:          profile.ContactInfo(req.ContactInfo),
		SocialLinks:          profile.SocialLinks(req.SocialLinks),
		ProfilePictureURL:    req.ProfilePictureURL,
		CVFileURL:            req.CVFileURL,
	})
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, ToProfileDTO(p))
}

// CheckUsername answers the live availability probe made while the user
// types. The answer is advisory only; the unique index settles concurrent
// claims at save time.
func (h *ProfileHandler) CheckUsername(c *gin.Context) {
	ownerID, ok := GetOwnerIDFromGinContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "owner information not found"})
		return
	}

	username := c.Query("username")

	available, err := h.profileUseCase.CheckUsername(c.Request.Context(), username, ownerID)
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"username": username, "available": available})
}
