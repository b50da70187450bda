package repositories

import (
	"context"
	"strconv"
	"strings"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/networknexus/nexushub/internal/app/models"
	"github.com/networknexus/nexushub/internal/pkg/helpers"
)

// Default page sizes per listing
const (
	AlumniPageSize     = 6
	HallOfFamePageSize = 6
	MentorshipPageSize = 3
	InternshipPageSize = 10
)

// DBTX is satisfied by *pgxpool.Pool and pgx.Tx
type DBTX interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

var psql = squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)

// ListQuery is a listing request translated into a predicate, a total order and a page window.
// Page and Limit are always the effective (clamped) values.
type ListQuery struct {
	Where   squirrel.And
	OrderBy []string
	Page    int
	Limit   int
}

// Offset is the number of rows skipped before the page starts
func (q ListQuery) Offset() uint64 {
	if q.Page < 1 || q.Limit < 1 {
		return 0
	}
	return uint64(q.Page-1) * uint64(q.Limit)
}

// Apply adds the predicate, ordering and window to a select
func (q ListQuery) Apply(b squirrel.SelectBuilder) squirrel.SelectBuilder {
	return q.Filter(b).
		OrderBy(q.OrderBy...).
		Limit(uint64(q.Limit)).
		Offset(q.Offset())
}

// Filter adds only the predicate, for count queries
func (q ListQuery) Filter(b squirrel.SelectBuilder) squirrel.SelectBuilder {
	if len(q.Where) == 0 {
		return b
	}
	return b.Where(q.Where)
}

// AlumniFilter holds the alumni directory query parameters
type AlumniFilter struct {
	Page        int
	Limit       int
	Search      string
	Department  string
	PassOutYear string
}

// BuildAlumniQuery searches name, company, position, location and success story; newest graduates first
func BuildAlumniQuery(f AlumniFilter) ListQuery {
	page, limit := helpers.NormalizePage(f.Page, f.Limit, AlumniPageSize)
	q := ListQuery{
		OrderBy: []string{"pass_out_year DESC", "id ASC"},
		Page:    page,
		Limit:   limit,
	}

	q.Where = appendIf(q.Where, searchPredicate(f.Search,
		"full_name", "company_name", "job_position", "location", "success_story"))
	q.Where = appendIf(q.Where, equalUnlessAll("department", f.Department))
	q.Where = appendIf(q.Where, passOutYearPredicate(f.PassOutYear))
	return q
}

// HallOfFameFilter holds the hall of fame query parameters
type HallOfFameFilter struct {
	Page       int
	Limit      int
	Search     string
	Department string
	Status     string
}

const tierRankExpr = "CASE hall_of_fame WHEN 'featured' THEN 2 WHEN 'notable' THEN 1 ELSE 0 END"

// BuildHallOfFameQuery restricts to alumni with a tier and orders featured, then notable, then by year
func BuildHallOfFameQuery(f HallOfFameFilter) ListQuery {
	page, limit := helpers.NormalizePage(f.Page, f.Limit, HallOfFamePageSize)
	q := ListQuery{
		Where:   squirrel.And{squirrel.NotEq{"hall_of_fame": string(models.TierNone)}},
		OrderBy: []string{tierRankExpr + " DESC", "pass_out_year DESC", "id ASC"},
		Page:    page,
		Limit:   limit,
	}

	if !models.IsAllFilter(f.Department) {
		q.Where = append(q.Where, squirrel.Eq{"department": strings.ToUpper(strings.TrimSpace(f.Department))})
	}
	q.Where = appendIf(q.Where, searchPredicate(f.Search,
		"full_name", "job_position", "company_name", "array_to_string(special_achievements, ' ')"))

	status := strings.ToLower(strings.TrimSpace(f.Status))
	if status != "" && status != "all" {
		q.Where = append(q.Where, squirrel.Eq{"hall_of_fame": status})
	}
	return q
}

// MentorshipFilter holds the mentorship listing query parameters
type MentorshipFilter struct {
	Page       int
	Limit      int
	Search     string
	Department string
	StudyYear  string
	Mode       string
}

// BuildMentorshipQuery only ever returns approved mentorships, latest date first
func BuildMentorshipQuery(f MentorshipFilter) ListQuery {
	page, limit := helpers.NormalizePage(f.Page, f.Limit, MentorshipPageSize)
	q := ListQuery{
		Where:   squirrel.And{squirrel.Eq{"is_approved": true}},
		OrderBy: []string{"date DESC", "id DESC"},
		Page:    page,
		Limit:   limit,
	}

	q.Where = appendIf(q.Where, equalUnlessAll("department", f.Department))
	q.Where = appendIf(q.Where, equalUnlessAll("study_year", f.StudyYear))
	q.Where = appendIf(q.Where, equalUnlessAll("mode", f.Mode))
	q.Where = appendIf(q.Where, searchPredicate(f.Search, "title", "description", "target_audience"))
	return q
}

// InternshipFilter holds the internship listing and search parameters
type InternshipFilter struct {
	Page     int
	Limit    int
	Query    string
	Location string
}

// BuildInternshipQuery returns open internships (approved, not complete), newest first
func BuildInternshipQuery(f InternshipFilter) ListQuery {
	page, limit := helpers.NormalizePage(f.Page, f.Limit, InternshipPageSize)
	q := ListQuery{
		Where: squirrel.And{
			squirrel.Eq{"is_approved": true},
			squirrel.Eq{"is_mark_as_complete": false},
		},
		OrderBy: []string{"created_at DESC", "id DESC"},
		Page:    page,
		Limit:   limit,
	}

	q.Where = appendIf(q.Where, searchPredicate(f.Query, "title", "company", "description"))
	q.Where = appendIf(q.Where, equalUnlessAll("location", f.Location))
	return q
}

func appendIf(where squirrel.And, pred squirrel.Sqlizer) squirrel.And {
	if pred == nil {
		return where
	}
	return append(where, pred)
}

// searchPredicate ORs a case-insensitive substring match over the given columns
func searchPredicate(term string, columns ...string) squirrel.Sqlizer {
	term = strings.TrimSpace(term)
	if term == "" {
		return nil
	}

	pattern := "%" + escapeLike(term) + "%"
	or := make(squirrel.Or, 0, len(columns))
	for _, column := range columns {
		or = append(or, squirrel.ILike{column: pattern})
	}
	return or
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

func escapeLike(term string) string {
	return likeEscaper.Replace(term)
}

func equalUnlessAll(column, value string) squirrel.Sqlizer {
	if models.IsAllFilter(value) {
		return nil
	}
	return squirrel.Eq{column: strings.TrimSpace(value)}
}

// passOutYearPredicate accepts "All", "Before YYYY" or an exact year; anything else is ignored
func passOutYearPredicate(value string) squirrel.Sqlizer {
	value = strings.TrimSpace(value)
	if models.IsAllFilter(value) {
		return nil
	}

	if len(value) > len("before ") && strings.EqualFold(value[:len("before ")], "before ") {
		year, err := strconv.Atoi(strings.TrimSpace(value[len("before "):]))
		if err != nil {
			return nil
		}
		return squirrel.Lt{"pass_out_year": year}
	}

	year, err := strconv.Atoi(value)
	if err != nil {
		return nil
	}
	return squirrel.Eq{"pass_out_year": year}
}
