package extract

import "regexp"

var (
	emailRe = regexp.MustCompile(`[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,}`)

	phoneRes = []*regexp.Regexp{
		regexp.MustCompile(`\+?\d{1,3}[-.\s]?\(?\d{3}\)?[-.\s]?\d{3}[-.\s]?\d{4}`),
		regexp.MustCompile(`\(?\d{3}\)?[-.\s]?\d{3}[-.\s]?\d{4}`),
	}

	// Explicit experience statements, most specific first. All captured
	// values are candidates; the maximum plausible one wins.
	experienceRes = []*regexp.Regexp{
		regexp.MustCompile(`(\d{1,2})\+?\s*(?:years?|yrs?)\s*(?:of\s*)?(?:experience|exp)`),
		regexp.MustCompile(`experience[:\s]+(\d{1,2})\+?\s*(?:years?|yrs?)`),
		regexp.MustCompile(`(\d{1,2})\+?\s*(?:years?|yrs?)`),
	}

	// Employment date ranges such as "2015 - 2020"; the span in years is an
	// experience candidate.
	yearRangeRe = regexp.MustCompile(`\b(19\d{2}|20\d{2})\s*[-–]\s*(19\d{2}|20\d{2})\b`)

	// Job catalog ranges such as "2 - 5 yrs" or "12 - 17 Years". The unit
	// suffix is mandatory: date fragments ("Dec 12 - 17") must not parse
	// as experience ranges.
	expRangeRe  = regexp.MustCompile(`(\d{1,2})\s*-\s*(\d{1,2})\s*(?:years?|yrs?)`)
	expSingleRe = regexp.MustCompile(`(\d{1,2})\s*\+?\s*(?:years?|yrs?)`)

	nameHeaderRe = regexp.MustCompile(`(?im)^\s*(?:name|candidate)\s*[:\-]\s*(.+)$`)

	titleHeaderRe = regexp.MustCompile(`(?im)^\s*(?:title|position|role|job title)\s*[:\-]\s*(.+)$`)
)

// maxPlausibleYears caps experience candidates; larger values are regex
// artifacts (years mistaken for durations).
const maxPlausibleYears = 50
