package handler

import (
	"time"

	"recruiter-pro/internal/delivery/http/dto"
	"recruiter-pro/internal/domain/match"
	"recruiter-pro/internal/repository"
	"recruiter-pro/internal/usecase"
)

func candidateInputFromRequest(req dto.CandidateRequest) usecase.CandidateInput {
	return usecase.CandidateInput{
		CandidateRef:    req.CandidateRef,
		ResumeText:      req.ResumeText,
		Skills:          req.Skills,
		YearsExperience: req.YearsExperience,
		Education:       req.Education,
		Seniority:       req.Seniority,
	}
}

func matchResponseFromRecord(rec match.Record) dto.MatchResponse {
	out := dto.MatchResponse{
		CandidateRef:  rec.CandidateRef,
		JobID:         rec.JobRef,
		JobTitle:      rec.JobTitle,
		ATSScore:      rec.ATSScore,
		FinalScore:    rec.FinalScore,
		Status:        string(rec.Status),
		Rank:          rec.Rank,
		LowConfidence: rec.LowConfidence,
	}
	if rec.ML != nil {
		out.Classifier = &dto.ClassifierResponse{
			Label:          rec.ML.Label.String(),
			RawLabel:       rec.ML.RawLabel.String(),
			Probabilities:  rec.ML.ClassProbabilities(),
			Confidence:     rec.ML.Confidence,
			SmoothingFlags: rec.ML.SmoothingFlags,
		}
	}
	return out
}

func matchResponseFromOutcome(o usecase.MatchOutcome) dto.MatchResponse {
	out := matchResponseFromRecord(o.Record)
	out.Breakdown = &dto.BreakdownResponse{
		Keyword:    o.Breakdown.Keyword,
		Skill:      o.Breakdown.Skill,
		Experience: o.Breakdown.Experience,
		Education:  o.Breakdown.Education,
	}
	return out
}

func jobResponseFromRow(row repository.JobRow) dto.JobResponse {
	return dto.JobResponse{
		JobID:              row.JobID,
		Title:              row.Title,
		RequiredSkills:     row.RequiredSkills,
		PreferredSkills:    row.PreferredSkills,
		MinExperienceYears: row.MinExperienceYears,
		MaxExperienceYears: row.MaxExperienceYears,
		Seniority:          row.Seniority,
		EducationRequired:  row.EducationRequired,
		Description:        row.Description,
	}
}

func historyEntryFromRow(row repository.MatchRow) dto.HistoryEntryResponse {
	return dto.HistoryEntryResponse{
		JobID:         row.JobID,
		JobTitle:      row.JobTitle,
		Label:         row.Label,
		Confidence:    row.Confidence,
		ATSScore:      row.ATSScore,
		FinalScore:    row.FinalScore,
		Status:        row.Status,
		LowConfidence: row.LowConfidence,
		ScoredAt:      row.ScoredAt.UTC().Format(time.RFC3339),
	}
}
