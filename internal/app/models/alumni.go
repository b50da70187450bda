package models

import "time"

// Alumni is an identity and career profile record
type Alumni struct {
	ID                  int64          `json:"id"`
	FullName            string         `json:"fullName"`
	Email               string         `json:"email"`
	Department          Department     `json:"department"`
	PassOutYear         int            `json:"passOutYear"`
	JobPosition         string         `json:"jobPosition"`
	CompanyName         string         `json:"companyName"`
	Location            string         `json:"location"`
	SuccessStory        string         `json:"successStory"`
	LinkedInURL         string         `json:"linkedInURL"`
	HallOfFame          HallOfFameTier `json:"hallOfFame"`
	SpecialAchievements TextList       `json:"specialAchievements"`
	Skills              TextList       `json:"skills"`
	Avatar              string         `json:"avatar"`
	CreatedAt           time.Time      `json:"createdAt"`
	UpdatedAt           time.Time      `json:"updatedAt"`
}
