package dto

import (
	"encoding/json"
	"testing"

	"github.com/networknexus/nexushub/internal/app/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewAlumniResponse_Aliases(t *testing.T) {
	a := &models.Alumni{
		ID:           7,
		FullName:     "Jane Doe",
		PassOutYear:  2018,
		JobPosition:  "Staff Engineer",
		CompanyName:  "Acme",
		SuccessStory: "Built things",
		LinkedInURL:  "https://linkedin.com/in/jane",
	}

	resp := NewAlumniResponse(a)

	assert.Equal(t, 2018, resp.GraduationYear)
	assert.Equal(t, "Staff Engineer", resp.CurrentPosition)
	assert.Equal(t, "Acme", resp.Company)
	assert.Equal(t, "Built things", resp.Bio)
	assert.Equal(t, "https://linkedin.com/in/jane", resp.LinkedIn)
	assert.Equal(t, "https://ui-avatars.com/api/?name=Jane%20Doe&background=6366F1&color=fff", resp.Avatar)
	assert.NotNil(t, resp.Skills)

	a.Avatar = "https://cdn.example.com/jane.png"
	assert.Equal(t, a.Avatar, NewAlumniResponse(a).Avatar)
}

func TestUpdateAlumniRequest_ApplyTo(t *testing.T) {
	a := &models.Alumni{FullName: "Old", Email: "old@example.com", PassOutYear: 2015}

	var req UpdateAlumniRequest
	require.NoError(t, json.Unmarshal([]byte(`{"email":" New@Example.com ","skills":"Go; SQL"}`), &req))
	req.ApplyTo(a)

	assert.Equal(t, "Old", a.FullName)
	assert.Equal(t, "new@example.com", a.Email)
	assert.Equal(t, 2015, a.PassOutYear)
	assert.Equal(t, models.TextList{"Go", "SQL"}, a.Skills)
}

func TestNewMentorshipResponse(t *testing.T) {
	m := &models.Mentorship{ID: 3, Title: "Interviews", Limit: 5, ParticipantCount: 5, Mode: models.ModeOnline}
	resp := NewMentorshipResponse(m)

	assert.Equal(t, "5/5", resp.LimitParsed)
	assert.True(t, resp.IsFull)
	assert.Equal(t, 5, resp.CurrentParticipants)
	assert.Equal(t, "Online", resp.Mode)
}

func TestNewCompactPagination(t *testing.T) {
	info := PageInfo{TotalItems: 7, TotalPages: 3, CurrentPage: 2, ItemsPerPage: 3}
	assert.Equal(t, CompactPagination{Total: 7, Page: 2, Limit: 3, Pages: 3}, NewCompactPagination(info))
}

func TestNewErrorResponse_RepeatsMessage(t *testing.T) {
	resp := NewErrorResponse(NewErrorDetail(ErrorCodeCapacityExceeded, "Mentorship is already full"))

	out, err := json.Marshal(resp)
	require.NoError(t, err)

	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(out, &body))
	assert.Equal(t, false, body["success"])
	assert.Equal(t, "Mentorship is already full", body["message"])
}

func TestCreateInternshipRequest_DefaultLocation(t *testing.T) {
	req := CreateInternshipRequest{Title: "Intern"}
	assert.Equal(t, "Remote", req.ToModel().Location)
}

func TestHealthResponse_JSON(t *testing.T) {
	data, err := json.Marshal(HealthResponse{Status: "ok", Database: "up"})
	require.NoError(t, err)
	assert.JSONEq(t, `{"status":"ok","database":"up"}`, string(data))

	data, err = json.Marshal(HealthResponse{Status: "unavailable", Database: "down"})
	require.NoError(t, err)
	assert.JSONEq(t, `{"status":"unavailable","database":"down"}`, string(data))
}
