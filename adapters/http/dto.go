package http

import (
	"time"

	"github.com/quangdng/folio-hub/internal/application/usecase/dashboard"
	"github.com/quangdng/folio-hub/internal/application/usecase/portfolio"
	"github.com/quangdng/folio-hub/internal/domain/activity"
	"github.com/quangdng/folio-hub/internal/domain/asset"
	"github.com/quangdng/folio-hub/internal/domain/education"
	"github.com/quangdng/folio-hub/internal/domain/experience"
	"github.com/quangdng/folio-hub/internal/domain/profile"
	"github.com/quangdng/folio-hub/internal/domain/project"
	"github.com/quangdng/folio-hub/internal/domain/skill"
	"github.com/quangdng/folio-hub/internal/domain/theme"
)

// Profile DTOs

type ContactInfoDTO struct {
	Phone            string `json:"phone,omitempty"`
	AlternativeEmail string `json:"alternative_email,omitempty"`
	Address          string `json:"address,omitempty"`
	Timezone         string `json:"timezone,omitempty"`
	Availability     string `json:"availability,omitempty"`
}

type SocialLinksDTO struct {
	GitHub    string `json:"github,omitempty"`
	LinkedIn  string `json:"linkedin,omitempty"`
	Twitter   string `json:"twitter,omitempty"`
	Instagram string `json:"instagram,omitempty"`
	Behance   string `json:"behance,omitempty"`
	Dribbble  string `json:"dribbble,omitempty"`
	YouTube   string `json:"youtube,omitempty"`
	Website   string `json:"website,omitempty"`
}

type ProfileDTO struct {
	Name                 string         `json:"name"`
	Email                string         `json:"email"`
	Username             string         `json:"username"`
	ProfessionalTitle    string         `json:"professional_title"`
	ProfessionalCategory string         `json:"professional_category"`
	Bio                  string         `json:"bio"`
	Location             string         `json:"location"`
	ContactInfo          ContactInfoDTO `json:"contact_info"`
	SocialLinks          SocialLinksDTO `json:"social_links"`
	ProfilePictureURL    *string        `json:"profile_picture_url"`
	CVFileURL            *string        `json:"cv_file_url"`
	UpdatedAt            time.Time      `json:"updated_at"`
}

type UpsertProfileRequest struct {
	Name                 string         `json:"name" binding:"required"`
	Email                string         `json:"email" binding:"required,email"`
	Username             string         `json:"username" binding:"required,min=3"`
	ProfessionalTitle    string         `json:"professional_title"`
	ProfessionalCategory string         `json:"professional_category"`
	Bio                  string         `json:"bio"`
	Location             string         `json:"location"`
	ContactInfo          ContactInfoDTO `json:"contact_info"`
	SocialLinks          SocialLinksDTO `json:"social_links"`
	ProfilePictureURL    *string        `json:"profile_picture_url"`
	CVFileURL            *string        `json:"cv_file_url"`
}

func ToProfileDTO(p *profile.Profile) ProfileDTO {
	return ProfileDTO{
		Name:                 p.Name,
		Email:                p.Email,
		Username:             p.Username,
		ProfessionalTitle:    p.ProfessionalTitle,
		ProfessionalCategory: p.ProfessionalCategory,
		Bio:                  p.Bio,
		Location:             p.Location,
		ContactInfo:          ContactInfoDTO(p.ContactInfo),
		SocialLinks:          SocialLinksDTO(p.SocialLinks),
		ProfilePictureURL:    p.ProfilePictureURL,
		CVFileURL:            p.CVFileURL,
		UpdatedAt:            p.UpdatedAt,
	}
}

// Experience DTOs

type ExperienceDTO struct {
	ID          string    `json:"id"`
	Company     string    `json:"company"`
	Role        string    `json:"role"`
	StartDate   string    `json:"start_date"`
	EndDate     *string   `json:"end_date,omitempty"`
	Current     bool      `json:"current"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

type ExperienceRequest struct {
	Company     string  `json:"company" binding:"required"`
	Role        string  `json:"role" binding:"required"`
	StartDate   string  `json:"start_date" binding:"required"`
	EndDate     *string `json:"end_date"`
	Current     bool    `json:"current"`
	Description string  `json:"description"`
}

func ToExperienceDTO(e *experience.Experience) ExperienceDTO {
	return ExperienceDTO{
		ID:          e.ID.String(),
		Company:     e.Company,
		Role:        e.Role,
		StartDate:   e.StartDate,
		EndDate:     e.EndDate,
		Current:     e.Current,
		Description: e.Description,
		CreatedAt:   e.CreatedAt,
		UpdatedAt:   e.UpdatedAt,
	}
}

func ToExperienceDTOs(experiences []*experience.Experience) []ExperienceDTO {
	dtos := make([]ExperienceDTO, len(experiences))
	for i, e := range experiences {
		dtos[i] = ToExperienceDTO(e)
	}
	return dtos
}

// Education DTOs

type EducationDTO struct {
	ID          string    `json:"id"`
	School      string    `json:"school"`
	Degree      string    `json:"degree"`
	Field       string    `json:"field"`
	Year        string    `json:"year"`
	GPA         *string   `json:"gpa,omitempty"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

type EducationRequest struct {
	School      string  `json:"school" binding:"required"`
	Degree      string  `json:"degree" binding:"required"`
	Field       string  `json:"field" binding:"required"`
	Year        string  `json:"year" binding:"required"`
	GPA         *string `json:"gpa"`
	Description string  `json:"description"`
}

func ToEducationDTO(e *education.Education) EducationDTO {
	return EducationDTO{
		ID:          e.ID.String(),
		School:      e.School,
		Degree:      e.Degree,
		Field:       e.Field,
		Year:        e.Year,
		GPA:         e.GPA,
		Description: e.Description,
		CreatedAt:   e.CreatedAt,
		UpdatedAt:   e.UpdatedAt,
	}
}

func ToEducationDTOs(educations []*education.Education) []EducationDTO {
	dtos := make([]EducationDTO, len(educations))
	for i, e := range educations {
		dtos[i] = ToEducationDTO(e)
	}
	return dtos
}

// Skill DTOs

type SkillDTO struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Level     string    `json:"level"`
	Category  string    `json:"category"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type SkillRequest struct {
	Name     string `json:"name" binding:"required"`
	Level    string `json:"level" binding:"required,oneof=Beginner Intermediate Advanced Expert"`
	Category string `json:"category" binding:"required,oneof=Technical Soft Language Creative Business Other"`
}

func ToSkillDTO(s *skill.Skill) SkillDTO {
	return SkillDTO{
		ID:        s.ID.String(),
		Name:      s.Name,
		Level:     s.Level,
		Category:  s.Category,
		CreatedAt: s.CreatedAt,
		UpdatedAt: s.UpdatedAt,
	}
}

func ToSkillDTOs(skills []*skill.Skill) []SkillDTO {
	dtos := make([]SkillDTO, len(skills))
	for i, s := range skills {
		dtos[i] = ToSkillDTO(s)
	}
	return dtos
}

// Project DTOs

type ProjectDTO struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	TechStack   []string  `json:"tech_stack"`
	ImageURL    *string   `json:"image_url,omitempty"`
	GithubLink  *string   `json:"github_link,omitempty"`
	DemoLink    *string   `json:"demo_link,omitempty"`
	Featured    bool      `json:"featured"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

type ProjectRequest struct {
	Title       string  `json:"title" binding:"required"`
	Description string  `json:"description" binding:"required"`
	TechStack   string  `json:"tech_stack" binding:"required"`
	ImageURL    *string `json:"image_url"`
	GithubLink  *string `json:"github_link"`
	DemoLink    *string `json:"demo_link"`
	Featured    bool    `json:"featured"`
}

func ToProjectDTO(p *project.Project) ProjectDTO {
	return ProjectDTO{
		ID:          p.ID.String(),
		Title:       p.Title,
		Description: p.Description,
		TechStack:   p.TechStack,
		ImageURL:    p.ImageURL,
		GithubLink:  p.GithubLink,
		DemoLink:    p.DemoLink,
		Featured:    p.Featured,
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}
}

func ToProjectDTOs(projects []*project.Project) []ProjectDTO {
	dtos := make([]ProjectDTO, len(projects))
	for i, p := range projects {
		dtos[i] = ToProjectDTO(p)
	}
	return dtos
}

// Theme DTOs

type ThemeDTO struct {
	PrimaryColor    string    `json:"primary_color"`
	SecondaryColor  string    `json:"secondary_color"`
	BackgroundColor string    `json:"background_color"`
	TextColor       string    `json:"text_color"`
	AccentColor     string    `json:"accent_color"`
	FontFamily      string    `json:"font_family"`
	Layout          string    `json:"layout"`
	UpdatedAt       time.Time `json:"updated_at"`
}

type UpdateThemeRequest struct {
	PrimaryColor    string `json:"primary_color"`
	SecondaryColor  string `json:"secondary_color"`
	BackgroundColor string `json:"background_color"`
	TextColor       string `json:"text_color"`
	AccentColor     string `json:"accent_color"`
	FontFamily      string `json:"font_family"`
	Layout          string `json:"layout" binding:"omitempty,oneof=minimal cards dark modern"`
}

func ToThemeDTO(t *theme.Theme) ThemeDTO {
	return ThemeDTO{
		PrimaryColor:    t.PrimaryColor,
		SecondaryColor:  t.SecondaryColor,
		BackgroundColor: t.BackgroundColor,
		TextColor:       t.TextColor,
		AccentColor:     t.AccentColor,
		FontFamily:      t.FontFamily,
		Layout:          t.Layout,
		UpdatedAt:       t.UpdatedAt,
	}
}

// Dashboard DTOs

type DashboardStatsDTO struct {
	ProfileComplete    int `json:"profile_complete"`
	ExperienceComplete int `json:"experience_complete"`
	EducationComplete  int `json:"education_complete"`
	SkillsComplete     int `json:"skills_complete"`
	ProjectsComplete   int `json:"projects_complete"`
	ThemeComplete      int `json:"theme_complete"`
	OverallComplete    int `json:"overall_complete"`
}

type DashboardDTO struct {
	Profile     *ProfileDTO       `json:"profile"`
	Experiences []ExperienceDTO   `json:"experiences"`
	Educations  []EducationDTO    `json:"educations"`
	Skills      []SkillDTO        `json:"skills"`
	Projects    []ProjectDTO      `json:"projects"`
	Stats       DashboardStatsDTO `json:"stats"`
}

func ToDashboardDTO(out *dashboard.ComputeStatsOutput) DashboardDTO {
	dto := DashboardDTO{
		Experiences: ToExperienceDTOs(out.Experiences),
		Educations:  ToEducationDTOs(out.Educations),
		Skills:      ToSkillDTOs(out.Skills),
		Projects:    ToProjectDTOs(out.Projects),
		Stats:       DashboardStatsDTO(out.Stats),
	}
	if out.Profile != nil {
		p := ToProfileDTO(out.Profile)
		dto.Profile = &p
	}
	return dto
}

// Activity DTOs

type ActivityDTO struct {
	ID          string    `json:"id"`
	Type        string    `json:"type"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Timestamp   time.Time `json:"timestamp"`
}

func ToActivityDTOs(activities []activity.Activity) []ActivityDTO {
	dtos := make([]ActivityDTO, len(activities))
	for i, a := range activities {
		dtos[i] = ActivityDTO{
			ID:          a.ID.String(),
			Type:        string(a.Type),
			Title:       a.Title,
			Description: a.Description,
			Timestamp:   a.Timestamp,
		}
	}
	return dtos
}

// Asset DTOs

type AssetDTO struct {
	ID           string    `json:"id"`
	Kind         string    `json:"kind"`
	URL          string    `json:"url"`
	ThumbnailURL *string   `json:"thumbnail_url,omitempty"`
	FileName     string    `json:"file_name"`
	FileSize     int64     `json:"file_size"`
	ContentType  string    `json:"content_type"`
	Status       string    `json:"status"`
	CreatedAt    time.Time `json:"created_at"`
}

func ToAssetDTO(a *asset.Asset) AssetDTO {
	return AssetDTO{
		ID:           a.ID.String(),
		Kind:         string(a.Kind),
		URL:          a.URL,
		ThumbnailURL: a.ThumbnailURL,
		FileName:     a.FileName,
		FileSize:     a.FileSize,
		ContentType:  a.ContentType,
		Status:       string(a.Status),
		CreatedAt:    a.CreatedAt,
	}
}

// Public portfolio DTO

type PublicPortfolioDTO struct {
	Profile     ProfileDTO      `json:"profile"`
	Experiences []ExperienceDTO `json:"experiences"`
	Educations  []EducationDTO  `json:"educations"`
	Skills      []SkillDTO      `json:"skills"`
	Projects    []ProjectDTO    `json:"projects"`
	Theme       ThemeDTO        `json:"theme"`
}

func ToPublicPortfolioDTO(out *portfolio.PublicViewOutput) PublicPortfolioDTO {
	return PublicPortfolioDTO{
		Profile:     ToProfileDTO(out.Profile),
		Experiences: ToExperienceDTOs(out.Experiences),
		Educations:  ToEducationDTOs(out.Educations),
		Skills:      ToSkillDTOs(out.Skills),
		Projects:    ToProjectDTOs(out.Projects),
		Theme:       ToThemeDTO(out.Theme),
	}
}
