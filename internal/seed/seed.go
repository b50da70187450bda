package seed

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog"

	appModels "github.com/networknexus/nexushub/internal/app/models"
	appRepos "github.com/networknexus/nexushub/internal/app/repositories"
	"github.com/networknexus/nexushub/internal/pkg/apperrors"
)

// Students used by local development and the demo deployment
var demoStudents = []appModels.Student{
	{PRN: "72012345K", FullName: "Rahul Patil", Department: "CSE", StudyYear: "TY", PhoneNumber: "9876543210", Email: "rahul.patil@student.example.edu"},
	{PRN: "72012346L", FullName: "Sneha Joshi", Department: "ENTC", StudyYear: "SY", PhoneNumber: "9876543211", Email: "sneha.joshi@student.example.edu"},
	{PRN: "72012347M", FullName: "Amit Kulkarni", Department: "MECH", StudyYear: "BE", PhoneNumber: "9876543212", Email: "amit.kulkarni@student.example.edu"},
	{PRN: "72012348N", FullName: "Pooja Shinde", Department: "AIML", StudyYear: "TY", PhoneNumber: "9876543213", Email: "pooja.shinde@student.example.edu"},
}

var demoAlumni = []appModels.Alumni{
	{
		FullName: "Priya Deshmukh", Email: "priya.deshmukh@example.com", Department: appModels.DepartmentCSE,
		PassOutYear: 2016, JobPosition: "Staff Software Engineer", CompanyName: "Google", Location: "Bengaluru",
		SuccessStory: "Went from campus placement to leading a search infrastructure team.",
		HallOfFame:   appModels.TierFeatured,
		SpecialAchievements: appModels.TextList{"Google Tech Lead award", "Speaker at GopherCon India"},
		Skills:              appModels.TextList{"Go", "Distributed systems"},
	},
	{
		FullName: "Arjun Mehta", Email: "arjun.mehta@example.com", Department: appModels.DepartmentENTC,
		PassOutYear: 2012, JobPosition: "Founder", CompanyName: "Voltgrid", Location: "Pune",
		SuccessStory: "Built a smart-metering startup used by three state utilities.",
		HallOfFame:   appModels.TierNotable,
		SpecialAchievements: appModels.TextList{"Forbes 30 under 30 Asia"},
		Skills:              appModels.TextList{"Embedded systems", "Entrepreneurship"},
	},
	{
		FullName: "Kavya Nair", Email: "kavya.nair@example.com", Department: appModels.DepartmentAIML,
		PassOutYear: 2021, JobPosition: "ML Engineer", CompanyName: "Microsoft", Location: "Hyderabad",
		Skills: appModels.TextList{"PyTorch", "MLOps"},
	},
	{
		FullName: "Rohan Kulkarni", Email: "rohan.kulkarni@example.com", Department: appModels.DepartmentMECH,
		PassOutYear: 2009, JobPosition: "Plant Head", CompanyName: "Tata Motors", Location: "Pune",
		HallOfFame: appModels.TierNotable,
	},
}

var demoMentorships = []appModels.Mentorship{
	{
		Title: "Cracking system design interviews", Description: "Four weekly sessions on designing large systems.",
		TargetAudience: "Final year students preparing for placements", StudyYear: "BE", Department: "CSE",
		FullName: "Priya Deshmukh", JobPosition: "Staff Software Engineer", CompanyName: "Google",
		Date: "2026-05-01", Limit: 5, Mode: appModels.ModeOnline, IsApproved: true,
	},
	{
		Title: "From lab project to startup", Description: "Turning an electronics project into a product.",
		TargetAudience: "Students with a working prototype", StudyYear: "TY", Department: "ENTC",
		FullName: "Arjun Mehta", JobPosition: "Founder", CompanyName: "Voltgrid",
		Date: "2026-04-20", Limit: 2, Mode: appModels.ModeHybrid, IsApproved: true,
	},
}

var demoInternships = []appModels.Internship{
	{
		Title: "Backend engineering intern", Company: "Voltgrid", Mode: "Hybrid", Location: "Pune",
		Duration: "3 months", Stipend: "15000", Limit: 2, Description: "Work on the metering data pipeline in Go.",
		RequiredSkills: appModels.TextList{"Go", "PostgreSQL"}, Deadline: "2026-06-30",
		GoogleFormLink: "https://forms.gle/voltgrid-backend", AlumniName: "Arjun Mehta",
		AlumniCompany: "Voltgrid", AlumniPosition: "Founder", IsApproved: true,
	},
}

// CreateDefaultData inserts demo students, alumni, mentorships and internships.
// Students are upserted every run; the rest is only inserted into an empty alumni table.
func CreateDefaultData(ctx context.Context, repos *appRepos.Repositories, lgr zerolog.Logger) error {
	lgr.Info().Msg("Checking/Creating default data...")
	var finalErr error

	for i := range demoStudents {
		s := demoStudents[i]
		if err := repos.StudentRepository.Upsert(ctx, &s); err != nil {
			finalErr = errors.Join(finalErr, err)
		}
	}

	existing, err := repos.AlumniRepository.Count(ctx, appRepos.ListQuery{})
	if err != nil {
		return errors.Join(finalErr, fmt.Errorf("counting alumni: %w", err))
	}
	if existing > 0 {
		lgr.Info().Int64("alumni", existing).Msg("Alumni already present, skipping demo records")
		return finalErr
	}

	for i := range demoAlumni {
		a := demoAlumni[i]
		if err := repos.AlumniRepository.Create(ctx, &a); err != nil && !errors.Is(err, apperrors.ErrResourceAlreadyExists) {
			lgr.Error().Err(err).Str("email", a.Email).Msg("Error creating demo alumni")
			finalErr = errors.Join(finalErr, err)
		}
	}

	for i := range demoMentorships {
		m := demoMentorships[i]
		if err := repos.MentorshipRepository.Create(ctx, &m); err != nil {
			lgr.Error().Err(err).Str("title", m.Title).Msg("Error creating demo mentorship")
			finalErr = errors.Join(finalErr, err)
		}
	}

	for i := range demoInternships {
		in := demoInternships[i]
		if err := repos.InternshipRepository.Create(ctx, &in); err != nil {
			lgr.Error().Err(err).Str("title", in.Title).Msg("Error creating demo internship")
			finalErr = errors.Join(finalErr, err)
		}
	}

	if finalErr == nil {
		lgr.Info().
			Int("students", len(demoStudents)).
			Int("alumni", len(demoAlumni)).
			Int("mentorships", len(demoMentorships)).
			Int("internships", len(demoInternships)).
			Msg("Default data created")
	}
	return finalErr
}
