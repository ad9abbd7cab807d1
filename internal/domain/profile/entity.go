package profile

import (
	"sort"
	"strings"
)

type EducationLevel int

const (
	EducationNone EducationLevel = iota
	EducationBachelor
	EducationMaster
	EducationPhD
)

func (e EducationLevel) String() string {
	switch e {
	case EducationBachelor:
		return "bachelor"
	case EducationMaster:
		return "master"
	case EducationPhD:
		return "phd"
	default:
		return "none"
	}
}

func ParseEducationLevel(s string) EducationLevel {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "bachelor", "bachelors":
		return EducationBachelor
	case "master", "masters":
		return EducationMaster
	case "phd", "doctorate":
		return EducationPhD
	default:
		return EducationNone
	}
}

type Seniority int

const (
	SeniorityEntry Seniority = iota
	SeniorityMid
	SenioritySenior
	SeniorityLead
	SeniorityManager
	SeniorityExecutive
)

func (s Seniority) String() string {
	switch s {
	case SeniorityMid:
		return "mid"
	case SenioritySenior:
		return "senior"
	case SeniorityLead:
		return "lead"
	case SeniorityManager:
		return "manager"
	case SeniorityExecutive:
		return "executive"
	default:
		return "entry"
	}
}

func ParseSeniority(s string) Seniority {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "mid", "intermediate":
		return SeniorityMid
	case "senior":
		return SenioritySenior
	case "lead":
		return SeniorityLead
	case "manager":
		return SeniorityManager
	case "executive", "director", "vp":
		return SeniorityExecutive
	default:
		return SeniorityEntry
	}
}

// CandidateProfile is immutable after extraction. Skills hold canonical
// lower-cased tokens only.
type CandidateProfile struct {
	Name            string
	Email           string
	Phone           string
	Skills          map[string]struct{}
	YearsExperience float64
	Education       EducationLevel
	Seniority       Seniority
	RawText         string
	LowConfidence   bool
}

func (p CandidateProfile) HasSkill(token string) bool {
	_, ok := p.Skills[token]
	return ok
}

func (p CandidateProfile) SortedSkills() []string {
	out := make([]string, 0, len(p.Skills))
	for s := range p.Skills {
		out = append(out, s)
	}
	sort.Strings(out)
	return out
}
