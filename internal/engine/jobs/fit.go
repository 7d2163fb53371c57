// Package jobs provides domain services on top of the engine pipeline:
// resume/job fit scoring, course suggestions, and the saved-job tracker.
package jobs

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"

	"github.com/nandaniipriya/career-compass/internal/engine"
)

const fitPrompt = `You are an expert career advisor and job match analyzer. Compare the candidate's resume with the job details below.

JOB DESCRIPTION:
%s

JOB REQUIREMENTS:
%s

CANDIDATE RESUME:
%s

Please analyze how well the candidate's resume matches this job and provide:
1. A match percentage (0-100%%)
2. Key matching qualifications the candidate has
3. Important missing qualifications or experience
4. Suggestions for how the candidate could improve their resume for this specific role
5. 3-5 specific skills the candidate should develop to be a stronger match

Format your response as a single JSON object with the following keys:
- "match_percentage": a number from 0-100
- "matching_qualifications": a list of strings
- "missing_qualifications": a list of strings
- "resume_improvement_tips": a list of strings
- "skills_to_develop": a list of strings`

// fitReply tolerates numeric looseness in the model's reply (a percentage
// like 87.5 must not sink the whole parse).
type fitReply struct {
	MatchPercentage        float64  `json:"match_percentage"`
	MatchingQualifications []string `json:"matching_qualifications"`
	MissingQualifications  []string `json:"missing_qualifications"`
	ResumeImprovementTips  []string `json:"resume_improvement_tips"`
	SkillsToDevelop        []string `json:"skills_to_develop"`
}

// AnalyzeJobFit scores how well a resume matches a job record via the
// text-generation capability. An empty resume is a caller bug and returns an
// error; every other failure degrades to a distinguishable fallback analysis
// (parse failure → 50/parse_fallback, service failure → 0/unavailable).
func AnalyzeJobFit(ctx context.Context, job engine.JobRecord, resume string) (engine.FitAnalysis, error) {
	if strings.TrimSpace(resume) == "" {
		return engine.FitAnalysis{}, fmt.Errorf("analyze fit: resume text is empty")
	}

	var reqs strings.Builder
	for _, r := range job.Requirements {
		fmt.Fprintf(&reqs, "- %s\n", r)
	}

	prompt := fmt.Sprintf(fitPrompt, job.Description, reqs.String(), resume)

	raw, err := engine.CallLLM(ctx, prompt)
	if err != nil {
		slog.Warn("fit analysis service call failed", slog.Any("error", err))
		return fallbackFit(0, engine.FitStatusUnavailable, "Unable to complete analysis"), nil
	}

	jsonStr, ok := engine.ExtractJSONObject(raw)
	if !ok {
		slog.Warn("fit analysis reply contained no JSON", slog.String("raw", engine.TruncateRunes(raw, 200, "...")))
		return fallbackFit(50, engine.FitStatusParseFallback, "Unable to parse analysis response"), nil
	}

	var reply fitReply
	if err := json.Unmarshal([]byte(jsonStr), &reply); err != nil {
		slog.Warn("fit analysis JSON malformed", slog.Any("error", err))
		return fallbackFit(50, engine.FitStatusParseFallback, "Unable to parse analysis response"), nil
	}

	return engine.FitAnalysis{
		MatchPercentage:        clampPercent(reply.MatchPercentage),
		MatchingQualifications: nonNil(reply.MatchingQualifications),
		MissingQualifications:  nonNil(reply.MissingQualifications),
		ResumeImprovementTips:  nonNil(reply.ResumeImprovementTips),
		SkillsToDevelop:        nonNil(reply.SkillsToDevelop),
		Status:                 engine.FitStatusOK,
	}, nil
}

// fallbackFit builds the degraded analysis used when the reply cannot be
// used. Each list carries a single explanatory placeholder so rendering code
// can iterate unconditionally.
func fallbackFit(percent int, status, placeholder string) engine.FitAnalysis {
	return engine.FitAnalysis{
		MatchPercentage:        percent,
		MatchingQualifications: []string{placeholder},
		MissingQualifications:  []string{placeholder},
		ResumeImprovementTips:  []string{placeholder},
		SkillsToDevelop:        []string{placeholder},
		Status:                 status,
	}
}

func clampPercent(v float64) int {
	switch {
	case v < 0:
		return 0
	case v > 100:
		return 100
	}
	return int(v + 0.5)
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}

const coursesPrompt = `You are an expert in career development and education. Based on the skills below that a job candidate needs to develop, suggest specific courses, certifications, or resources for each skill.

SKILLS TO DEVELOP:
%s

For each skill, provide:
1. A specific course, certification, or resource name
2. The platform or provider (e.g., Coursera, Udemy, LinkedIn Learning, etc.)
3. Why this resource is good for developing this skill

Format your response as a JSON array with objects containing:
- "skill": the skill name
- "course_name": name of recommended course/certification
- "platform": where to find the course
- "reason": brief explanation of why this is recommended

Return ONLY a valid JSON response.`

// SuggestCourses recommends one course per skill via the text-generation
// capability, with the same fenced-then-bare JSON parse cascade as the fit
// scorer. An empty skills list is a caller bug; any service or parse failure
// yields a single placeholder suggestion.
func SuggestCourses(ctx context.Context, skills []string) ([]engine.CourseSuggestion, error) {
	if len(skills) == 0 {
		return nil, fmt.Errorf("suggest courses: skills list is empty")
	}

	var sb strings.Builder
	for _, s := range skills {
		fmt.Fprintf(&sb, "- %s\n", s)
	}

	raw, err := engine.CallLLM(ctx, fmt.Sprintf(coursesPrompt, sb.String()))
	if err != nil {
		slog.Warn("course suggestion service call failed", slog.Any("error", err))
		return []engine.CourseSuggestion{{
			Skill:      "Error Analysis",
			CourseName: "Error retrieving course suggestions",
			Platform:   "N/A",
			Reason:     "An error occurred during analysis",
		}}, nil
	}

	jsonStr, ok := engine.ExtractJSONArray(raw)
	if ok {
		var suggestions []engine.CourseSuggestion
		if err := json.Unmarshal([]byte(jsonStr), &suggestions); err == nil && len(suggestions) > 0 {
			return suggestions, nil
		}
	}

	slog.Warn("course suggestion reply unparseable", slog.String("raw", engine.TruncateRunes(raw, 200, "...")))
	return []engine.CourseSuggestion{{
		Skill:      skills[0],
		CourseName: "Error retrieving course suggestions",
		Platform:   "Multiple platforms available",
		Reason:     "Please try again or search for courses related to these skills online",
	}}, nil
}
