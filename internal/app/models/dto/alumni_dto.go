package dto

import (
	"net/url"
	"strings"
	"time"

	"github.com/networknexus/nexushub/internal/app/models"
)

const avatarBaseURL = "https://ui-avatars.com/api/"

// --- Request DTOs ---

// CreateAlumniRequest represents alumni creation data
type CreateAlumniRequest struct {
	FullName            string                `json:"fullName" binding:"required,max=200"`
	Email               string                `json:"email" binding:"required,email"`
	Department          models.Department     `json:"department" binding:"required,department"`
	PassOutYear         int                   `json:"passOutYear" binding:"required,min=1950,max=2100"`
	JobPosition         string                `json:"jobPosition"`
	CompanyName         string                `json:"companyName"`
	Location            string                `json:"location"`
	SuccessStory        string                `json:"successStory"`
	LinkedInURL         string                `json:"linkedInURL" binding:"omitempty,url"`
	HallOfFame          models.HallOfFameTier `json:"hallOfFame" binding:"omitempty,hoftier"`
	SpecialAchievements models.TextList       `json:"specialAchievements" swaggertype:"array,string"`
	Skills              models.TextList       `json:"skills" swaggertype:"array,string"`
	Avatar              string                `json:"avatar" binding:"omitempty,url"`
}

// ToModel converts the request into a new alumni record
func (r *CreateAlumniRequest) ToModel() *models.Alumni {
	return &models.Alumni{
		FullName:            strings.TrimSpace(r.FullName),
		Email:               strings.ToLower(strings.TrimSpace(r.Email)),
		Department:          r.Department,
		PassOutYear:         r.PassOutYear,
		JobPosition:         r.JobPosition,
		CompanyName:         r.CompanyName,
		Location:            r.Location,
		SuccessStory:        r.SuccessStory,
		LinkedInURL:         r.LinkedInURL,
		HallOfFame:          r.HallOfFame,
		SpecialAchievements: r.SpecialAchievements,
		Skills:              r.Skills,
		Avatar:              r.Avatar,
	}
}

// UpdateAlumniRequest is a partial update; nil fields are left untouched
type UpdateAlumniRequest struct {
	FullName            *string                `json:"fullName" binding:"omitempty,max=200"`
	Email               *string                `json:"email" binding:"omitempty,email"`
	Department          *models.Department     `json:"department" binding:"omitempty,department"`
	PassOutYear         *int                   `json:"passOutYear" binding:"omitempty,min=1950,max=2100"`
	JobPosition         *string                `json:"jobPosition"`
	CompanyName         *string                `json:"companyName"`
	Location            *string                `json:"location"`
	SuccessStory        *string                `json:"successStory"`
	LinkedInURL         *string                `json:"linkedInURL" binding:"omitempty,url"`
	HallOfFame          *models.HallOfFameTier `json:"hallOfFame" binding:"omitempty,hoftier"`
	SpecialAchievements *models.TextList       `json:"specialAchievements" swaggertype:"array,string"`
	Skills              *models.TextList       `json:"skills" swaggertype:"array,string"`
	Avatar              *string                `json:"avatar" binding:"omitempty,url"`
}

// ApplyTo copies the provided fields onto an existing record
func (r *UpdateAlumniRequest) ApplyTo(a *models.Alumni) {
	if r.FullName != nil {
		a.FullName = strings.TrimSpace(*r.FullName)
	}
	if r.Email != nil {
		a.Email = strings.ToLower(strings.TrimSpace(*r.Email))
	}
	if r.Department != nil {
		a.Department = *r.Department
	}
	if r.PassOutYear != nil {
		a.PassOutYear = *r.PassOutYear
	}
	if r.JobPosition != nil {
		a.JobPosition = *r.JobPosition
	}
	if r.CompanyName != nil {
		a.CompanyName = *r.CompanyName
	}
	if r.Location != nil {
		a.Location = *r.Location
	}
	if r.SuccessStory != nil {
		a.SuccessStory = *r.SuccessStory
	}
	if r.LinkedInURL != nil {
		a.LinkedInURL = *r.LinkedInURL
	}
	if r.HallOfFame != nil {
		a.HallOfFame = *r.HallOfFame
	}
	if r.SpecialAchievements != nil {
		a.SpecialAchievements = *r.SpecialAchievements
	}
	if r.Skills != nil {
		a.Skills = *r.Skills
	}
	if r.Avatar != nil {
		a.Avatar = *r.Avatar
	}
}

// --- Response DTOs ---

// AlumniResponse carries the stored field names plus the aliases the portal frontend reads
type AlumniResponse struct {
	ID                  int64     `json:"id" example:"1"`
	FullName            string    `json:"fullName" example:"Jane Doe"`
	Email               string    `json:"email" example:"jane@example.com"`
	Department          string    `json:"department" example:"CSE"`
	PassOutYear         int       `json:"passOutYear" example:"2018"`
	JobPosition         string    `json:"jobPosition" example:"Staff Engineer"`
	CompanyName         string    `json:"companyName" example:"Acme"`
	Location            string    `json:"location" example:"Pune"`
	SuccessStory        string    `json:"successStory"`
	LinkedInURL         string    `json:"linkedInURL"`
	HallOfFame          string    `json:"hallOfFame" example:"featured"`
	SpecialAchievements []string  `json:"specialAchievements"`
	Skills              []string  `json:"skills"`
	Avatar              string    `json:"avatar"`
	CreatedAt           time.Time `json:"createdAt"`
	UpdatedAt           time.Time `json:"updatedAt"`

	GraduationYear  int    `json:"graduationYear" example:"2018"`
	CurrentPosition string `json:"currentPosition" example:"Staff Engineer"`
	Company         string `json:"company" example:"Acme"`
	Bio             string `json:"bio"`
	LinkedIn        string `json:"linkedin"`
}

// NewAlumniResponse maps a record onto its API shape
func NewAlumniResponse(a *models.Alumni) AlumniResponse {
	avatar := a.Avatar
	if avatar == "" {
		avatar = DefaultAvatarURL(a.FullName)
	}

	return AlumniResponse{
		ID:                  a.ID,
		FullName:            a.FullName,
		Email:               a.Email,
		Department:          string(a.Department),
		PassOutYear:         a.PassOutYear,
		JobPosition:         a.JobPosition,
		CompanyName:         a.CompanyName,
		Location:            a.Location,
		SuccessStory:        a.SuccessStory,
		LinkedInURL:         a.LinkedInURL,
		HallOfFame:          string(a.HallOfFame),
		SpecialAchievements: nonNil(a.SpecialAchievements),
		Skills:              nonNil(a.Skills),
		Avatar:              avatar,
		CreatedAt:           a.CreatedAt,
		UpdatedAt:           a.UpdatedAt,

		GraduationYear:  a.PassOutYear,
		CurrentPosition: a.JobPosition,
		Company:         a.CompanyName,
		Bio:             a.SuccessStory,
		LinkedIn:        a.LinkedInURL,
	}
}

// NewAlumniResponses maps a slice of records
func NewAlumniResponses(list []models.Alumni) []AlumniResponse {
	out := make([]AlumniResponse, 0, len(list))
	for i := range list {
		out = append(out, NewAlumniResponse(&list[i]))
	}
	return out
}

// DefaultAvatarURL builds the generated-initials avatar used when no avatar is stored
func DefaultAvatarURL(fullName string) string {
	name := strings.ReplaceAll(url.QueryEscape(fullName), "+", "%20")
	return avatarBaseURL + "?name=" + name + "&background=6366F1&color=fff"
}

func nonNil(list models.TextList) []string {
	if list == nil {
		return []string{}
	}
	return list
}

// AlumniListResponse is the alumni directory listing shape
type AlumniListResponse struct {
	Success     bool             `json:"success" example:"true"`
	Message     string           `json:"message" example:"Alumni retrieved successfully"`
	TotalAlumni int64            `json:"totalAlumni" example:"42"`
	TotalPages  int              `json:"totalPages" example:"7"`
	CurrentPage int              `json:"currentPage" example:"1"`
	Alumni      []AlumniResponse `json:"alumni"`
}

// HallOfFameResponse is the hall of fame listing shape
type HallOfFameResponse struct {
	Success    bool             `json:"success" example:"true"`
	Message    string           `json:"message" example:"Hall of fame retrieved successfully"`
	Alumni     []AlumniResponse `json:"alumni"`
	Pagination PageInfo         `json:"pagination"`
}
