package models

import "strings"

// Department is the enumerated academic department of an alumni record
type Department string

const (
	DepartmentCSE   Department = "CSE"
	DepartmentAIML  Department = "AIML"
	DepartmentENTC  Department = "ENTC"
	DepartmentMECH  Department = "MECH"
	DepartmentCIVIL Department = "CIVIL"
	DepartmentOther Department = "OTHER"
)

// Departments lists every valid department in display order
var Departments = []Department{
	DepartmentCSE, DepartmentAIML, DepartmentENTC, DepartmentMECH, DepartmentCIVIL, DepartmentOther,
}

// IsValid reports whether d is one of the enumerated departments
func (d Department) IsValid() bool {
	for _, known := range Departments {
		if d == known {
			return true
		}
	}
	return false
}

// AllFilter is the sentinel filter value meaning "no filter"
const AllFilter = "All"

// IsAllFilter reports whether a filter value means "no filter"
func IsAllFilter(value string) bool {
	value = strings.TrimSpace(value)
	return value == "" || strings.EqualFold(value, AllFilter)
}

// HallOfFameTier ranks alumni in the hall of fame showcase
type HallOfFameTier string

const (
	TierNone     HallOfFameTier = ""
	TierNotable  HallOfFameTier = "notable"
	TierFeatured HallOfFameTier = "featured"
)

// Rank orders tiers: featured above notable above none
func (t HallOfFameTier) Rank() int {
	switch t {
	case TierFeatured:
		return 2
	case TierNotable:
		return 1
	default:
		return 0
	}
}

// IsValid reports whether t is a known tier (including none)
func (t HallOfFameTier) IsValid() bool {
	return t == TierNone || t == TierNotable || t == TierFeatured
}

// MentorshipMode is how a mentorship is delivered
type MentorshipMode string

const (
	ModeOnline  MentorshipMode = "Online"
	ModeOffline MentorshipMode = "Offline"
	ModeHybrid  MentorshipMode = "Hybrid"
)

// IsValid reports whether m is a known delivery mode
func (m MentorshipMode) IsValid() bool {
	return m == ModeOnline || m == ModeOffline || m == ModeHybrid
}
