package ingestion

import (
	"regexp"
	"strings"
)

// Fallbacks used when the applicant name or job fields cannot be detected.
const (
	FallbackApplicant = "Applicant"
	FallbackPosition  = "Position"
	FallbackCompany   = "Company"
)

var (
	applicantNameRe = regexp.MustCompile(`^\s*([A-Z][a-z]+(?: [A-Z]\.?)? [A-Z][a-z]+)`)
	positionRe      = regexp.MustCompile(`(?i)(?:job\s+title|position|role)\s*:\s*([^\n]+)`)
	companyRe       = regexp.MustCompile(`(?i)(?:company|organization)\s*:\s*([^\n]+)`)
)

// JobMetadata holds the fields detected in the inputs, used only for naming
// the output artifacts.
type JobMetadata struct {
	ApplicantName string
	PositionTitle string
	CompanyName   string
}

// ExtractMetadata detects the applicant name from the top of the resume text
// and the position/company from labeled lines in the job description.
// Detection is heuristic; missing fields get stable fallbacks so filenames
// are always well-formed.
func ExtractMetadata(resumeText, jobDescription string) JobMetadata {
	meta := JobMetadata{
		ApplicantName: FallbackApplicant,
		PositionTitle: FallbackPosition,
		CompanyName:   FallbackCompany,
	}

	if m := applicantNameRe.FindStringSubmatch(resumeText); m != nil {
		meta.ApplicantName = strings.TrimSpace(m[1])
	}
	if m := positionRe.FindStringSubmatch(jobDescription); m != nil {
		meta.PositionTitle = strings.TrimSpace(m[1])
	}
	if m := companyRe.FindStringSubmatch(jobDescription); m != nil {
		meta.CompanyName = strings.TrimSpace(m[1])
	}

	return meta
}
