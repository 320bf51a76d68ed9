package ingest

import (
	"encoding/csv"
	"os"
	"strings"

	"github.com/rotisserie/eris"

	"github.com/hirecheck/screener-cli/internal/model"
)

// columnAliases maps internal field names to the Workable CSV headers
// that can carry them, lowercase for matching. The first alias present
// in the header wins.
var columnAliases = map[string][]string{
	"name":            {"name", "candidate name", "full name", "candidate"},
	"email":           {"email", "email address", "e-mail"},
	"job_title":       {"job title", "job", "position", "applied for"},
	"headline":        {"headline", "title", "professional headline"},
	"creation_time":   {"creation time", "created", "applied date", "date applied", "applied on"},
	"stage":           {"stage", "pipeline stage", "status"},
	"tags":            {"tags", "labels"},
	"job_department":  {"job department", "department"},
	"job_location":    {"job location", "location"},
	"source":          {"source", "sourced from", "channel"},
	"candidate_type":  {"type", "candidate type"},
	"phone":           {"phone", "phone number", "mobile"},
	"address":         {"address", "location", "city"},
	"summary":         {"summary", "bio", "about"},
	"keywords":        {"keywords"},
	"educations":      {"educations", "education"},
	"experiences":     {"experiences", "experience", "work experience"},
	"skills":          {"skills", "skill set"},
	"social_profiles": {"social profiles", "linkedin", "linkedin url", "social links", "social"},
}

// ParseCSV reads a Workable candidate export and returns parsed records.
// Rows lacking both a name and an email are skipped, as are blank rows.
// overrides maps internal field names to exact CSV headers, replacing
// the alias list for that field.
func ParseCSV(csvPath string, overrides map[string]string) ([]model.CandidateRecord, error) {
	f, err := os.Open(csvPath)
	if err != nil {
		return nil, eris.Wrap(err, "ingest: open csv")
	}
	defer f.Close()

	reader := csv.NewReader(f)
	reader.LazyQuotes = true
	reader.FieldsPerRecord = -1

	records, err := reader.ReadAll()
	if err != nil {
		return nil, eris.Wrap(err, "ingest: read csv")
	}

	if len(records) < 2 {
		return nil, nil
	}

	index := buildColumnIndex(records[0], overrides)

	var candidates []model.CandidateRecord
	for _, row := range records[1:] {
		if blankRow(row) {
			continue
		}

		name := getCol(row, index, "name")
		email := getCol(row, index, "email")
		if name == "" && email == "" {
			continue
		}

		candidates = append(candidates, model.CandidateRecord{
			Name:           name,
			Email:          email,
			JobTitle:       getCol(row, index, "job_title"),
			Headline:       getCol(row, index, "headline"),
			CreationTime:   getCol(row, index, "creation_time"),
			Stage:          getCol(row, index, "stage"),
			Tags:           getCol(row, index, "tags"),
			JobDepartment:  getCol(row, index, "job_department"),
			JobLocation:    getCol(row, index, "job_location"),
			Source:         getCol(row, index, "source"),
			CandidateType:  getCol(row, index, "candidate_type"),
			Phone:          getCol(row, index, "phone"),
			Address:        getCol(row, index, "address"),
			Summary:        getCol(row, index, "summary"),
			Keywords:       getCol(row, index, "keywords"),
			Educations:     getCol(row, index, "educations"),
			Experiences:    getCol(row, index, "experiences"),
			Skills:         getCol(row, index, "skills"),
			SocialProfiles: getCol(row, index, "social_profiles"),
		})
	}

	return candidates, nil
}

// buildColumnIndex maps internal field names to column positions in the
// header row. Override headers replace the alias list for their field.
func buildColumnIndex(header []string, overrides map[string]string) map[string]int {
	headerLower := make([]string, len(header))
	for i, h := range header {
		headerLower[i] = strings.ToLower(strings.TrimSpace(stripBOM(h)))
	}

	index := make(map[string]int)
	for field, aliases := range columnAliases {
		if override, ok := overrides[field]; ok {
			aliases = []string{strings.ToLower(override)}
		}
		for _, alias := range aliases {
			if pos := indexOf(headerLower, alias); pos >= 0 {
				index[field] = pos
				break
			}
		}
	}

	return index
}

func indexOf(haystack []string, needle string) int {
	for i, s := range haystack {
		if s == needle {
			return i
		}
	}
	return -1
}

// stripBOM removes a UTF-8 byte order mark, which Workable exports
// sometimes prepend to the first header cell.
func stripBOM(s string) string {
	return strings.TrimPrefix(s, "\ufeff")
}

func blankRow(row []string) bool {
	for _, cell := range row {
		if strings.TrimSpace(cell) != "" {
			return false
		}
	}
	return true
}

// getCol safely retrieves a mapped column value from a CSV row.
func getCol(row []string, index map[string]int, field string) string {
	idx, ok := index[field]
	if !ok || idx >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[idx])
}
