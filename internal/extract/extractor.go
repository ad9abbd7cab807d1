package extract

import (
	"errors"
	"strconv"
	"strings"

	"recruiter-pro/internal/domain/job"
	"recruiter-pro/internal/domain/profile"
	"recruiter-pro/internal/skills"

	"go.uber.org/zap"
)

// ErrEmptyInput marks unreadable or empty raw text. The accompanying record
// is returned all-empty with LowConfidence set so batch callers can attribute
// the failure to a single pair without aborting the rest.
var ErrEmptyInput = errors.New("empty or unreadable input")

type Extractor struct {
	lexicon *skills.Lexicon
	logger  *zap.Logger
}

func New(lexicon *skills.Lexicon, logger *zap.Logger) *Extractor {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Extractor{lexicon: lexicon, logger: logger}
}

// Profile extracts a candidate profile from raw document text. Deterministic:
// no I/O, no model inference, identical input yields identical output.
func (e *Extractor) Profile(raw string) (profile.CandidateProfile, error) {
	text := strings.TrimSpace(raw)
	if text == "" {
		return profile.CandidateProfile{
			Skills:        map[string]struct{}{},
			LowConfidence: true,
		}, ErrEmptyInput
	}

	p := profile.CandidateProfile{
		Name:    extractName(text),
		Email:   emailRe.FindString(text),
		Phone:   extractPhone(text),
		Skills:  e.lexicon.Extract(text),
		RawText: raw,
	}
	p.YearsExperience = extractExperienceYears(text)
	p.Education = extractEducation(text)
	p.Seniority = deriveSeniority(text, p.YearsExperience)

	if len(p.Skills) == 0 || p.YearsExperience == 0 {
		p.LowConfidence = true
		e.logger.Warn("low confidence extraction",
			zap.Int("skills", len(p.Skills)),
			zap.Float64("years", p.YearsExperience),
		)
	}

	return p, nil
}

// Job extracts a job requirement from raw posting text.
func (e *Extractor) Job(jobID, raw string) (job.Requirement, error) {
	text := strings.TrimSpace(raw)
	if text == "" {
		return job.Requirement{
			JobID:           jobID,
			RequiredSkills:  map[string]struct{}{},
			PreferredSkills: map[string]struct{}{},
			LowConfidence:   true,
		}, ErrEmptyInput
	}

	r := job.Requirement{
		JobID:           jobID,
		Title:           extractTitle(text),
		RequiredSkills:  e.lexicon.Extract(text),
		PreferredSkills: map[string]struct{}{},
		Description:     raw,
	}

	minY, maxY, bounded := parseExperienceRange(text)
	r.MinExperienceYears = minY
	if bounded {
		m := maxY
		r.MaxExperienceYears = &m
	}

	if edu := extractEducation(text); edu != profile.EducationNone {
		lvl := edu
		r.EducationRequired = &lvl
	}
	r.Seniority = deriveSeniority(r.Title, r.MinExperienceYears)

	if len(r.RequiredSkills) == 0 {
		r.LowConfidence = true
		e.logger.Warn("job extraction produced no skills", zap.String("job_id", jobID))
	}

	return r, nil
}

func extractTitle(text string) string {
	if m := titleHeaderRe.FindStringSubmatch(text); len(m) == 2 {
		return strings.TrimSpace(m[1])
	}
	firstLine := text
	if idx := strings.IndexByte(text, '\n'); idx >= 0 {
		firstLine = text[:idx]
	}
	return strings.TrimSpace(firstLine)
}

func extractName(text string) string {
	if m := nameHeaderRe.FindStringSubmatch(text); len(m) == 2 {
		return strings.TrimSpace(m[1])
	}

	firstLine := text
	if idx := strings.IndexByte(text, '\n'); idx >= 0 {
		firstLine = text[:idx]
	}
	firstLine = strings.TrimSpace(firstLine)
	if validName(firstLine) {
		return firstLine
	}
	return ""
}

// locationBlocklist rejects address-looking first lines.
var locationBlocklist = map[string]struct{}{
	"street": {}, "st": {}, "road": {}, "rd": {}, "avenue": {}, "ave": {},
	"boulevard": {}, "lane": {}, "suite": {}, "floor": {}, "city": {},
	"district": {}, "jakarta": {}, "singapore": {}, "london": {},
	"remote": {}, "indonesia": {}, "usa": {},
}

func validName(line string) bool {
	words := strings.Fields(line)
	if len(words) < 2 || len(words) > 6 {
		return false
	}
	for _, w := range words {
		if strings.ContainsAny(w, "0123456789@") {
			return false
		}
		r := rune(w[0])
		if r < 'A' || r > 'Z' {
			return false
		}
		if _, blocked := locationBlocklist[strings.ToLower(strings.Trim(w, ".,"))]; blocked {
			return false
		}
	}
	return true
}

func extractPhone(text string) string {
	for _, re := range phoneRes {
		if m := re.FindString(text); m != "" {
			return m
		}
	}
	return ""
}

func extractExperienceYears(text string) float64 {
	lower := strings.ToLower(text)

	best := 0
	consider := func(v int) {
		if v > best && v <= maxPlausibleYears {
			best = v
		}
	}

	for _, re := range experienceRes {
		for _, m := range re.FindAllStringSubmatch(lower, -1) {
			if v, err := strconv.Atoi(m[1]); err == nil {
				consider(v)
			}
		}
	}
	for _, m := range yearRangeRe.FindAllStringSubmatch(lower, -1) {
		from, err1 := strconv.Atoi(m[1])
		to, err2 := strconv.Atoi(m[2])
		if err1 == nil && err2 == nil && to > from {
			consider(to - from)
		}
	}

	return float64(best)
}

// parseExperienceRange reads catalog-style ranges ("2 - 5 yrs"). A single
// bound ("5+ yrs") widens to a three-year window per the catalog convention.
func parseExperienceRange(text string) (minY, maxY float64, bounded bool) {
	lower := strings.ToLower(text)
	if m := expRangeRe.FindStringSubmatch(lower); len(m) == 3 {
		lo, err1 := strconv.Atoi(m[1])
		hi, err2 := strconv.Atoi(m[2])
		if err1 == nil && err2 == nil && hi >= lo && hi <= maxPlausibleYears {
			return float64(lo), float64(hi), true
		}
	}
	if m := expSingleRe.FindStringSubmatch(lower); len(m) == 2 {
		if v, err := strconv.Atoi(m[1]); err == nil && v <= maxPlausibleYears {
			return float64(v), float64(v + 3), true
		}
	}
	return 0, 0, false
}

func extractEducation(text string) profile.EducationLevel {
	lower := strings.ToLower(text)
	switch {
	case containsAny(lower, "phd", "ph.d", "doctorate", "doctoral"):
		return profile.EducationPhD
	case containsAny(lower, "master", "msc", "m.sc", "mba", "m.tech"):
		return profile.EducationMaster
	case containsAny(lower, "bachelor", "bsc", "b.sc", "b.tech", "b.e.", "undergraduate degree"):
		return profile.EducationBachelor
	default:
		return profile.EducationNone
	}
}

// deriveSeniority prefers explicit title keywords; the years lookup table is
// the fallback only.
func deriveSeniority(text string, years float64) profile.Seniority {
	lower := strings.ToLower(text)
	switch {
	case containsAny(lower, "chief ", "cto", "ceo", " vp ", "vice president", "director", "executive"):
		return profile.SeniorityExecutive
	case containsAny(lower, "engineering manager", "manager"):
		return profile.SeniorityManager
	case containsAny(lower, "lead ", "team lead", "principal", "staff engineer"):
		return profile.SeniorityLead
	case containsAny(lower, "senior", "sr."):
		return profile.SenioritySenior
	case containsAny(lower, "junior", "intern ", "internship", "entry level", "entry-level"):
		return profile.SeniorityEntry
	}
	return seniorityFromYears(years)
}

func seniorityFromYears(years float64) profile.Seniority {
	switch {
	case years < 2:
		return profile.SeniorityEntry
	case years < 5:
		return profile.SeniorityMid
	case years < 8:
		return profile.SenioritySenior
	case years < 12:
		return profile.SeniorityLead
	default:
		return profile.SeniorityManager
	}
}

func containsAny(s string, subs ...string) bool {
	for _, sub := range subs {
		if strings.Contains(s, sub) {
			return true
		}
	}
	return false
}
