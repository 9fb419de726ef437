package models

import (
	"strings"
	"time"
	"unicode/utf8"
)

// AnalysisRequest carries the four inputs every caller must supply.
type AnalysisRequest struct {
	URL              string `json:"url"`
	PrimaryKeyword   string `json:"primary_keyword"`
	SecondaryKeyword string `json:"secondary_keyword"`
	BrandName        string `json:"brand_name"`
}

// Validate checks that all four fields are non-empty. It runs before any
// network call is attempted.
func (r *AnalysisRequest) Validate() error {
	if strings.TrimSpace(r.URL) == "" ||
		strings.TrimSpace(r.PrimaryKeyword) == "" ||
		strings.TrimSpace(r.SecondaryKeyword) == "" ||
		strings.TrimSpace(r.BrandName) == "" {
		return &InputError{}
	}
	return nil
}

// Normalize rewrites the URL to carry a scheme, defaulting to https.
func (r *AnalysisRequest) Normalize() {
	if !strings.HasPrefix(r.URL, "http://") && !strings.HasPrefix(r.URL, "https://") {
		r.URL = "https://" + r.URL
	}
}

// PageFields is the structured extraction output for a single page.
// It is produced once per request and never mutated afterwards.
type PageFields struct {
	Title       string           `json:"title"`
	Description string           `json:"description"`
	Headers     map[int][]string `json:"headers"`
	BodyText    string           `json:"-"`
}

// HeaderCount returns the number of non-empty headers at the given level.
func (f *PageFields) HeaderCount(level int) int {
	return len(f.Headers[level])
}

// Metrics holds the derived numbers and presence predicates the rule table
// evaluates. All lengths are rune counts, all matching is case-insensitive
// substring containment.
type Metrics struct {
	TitleLength       int `json:"title_length"`
	DescriptionLength int `json:"description_length"`
	WordCount         int `json:"word_count"`

	PrimaryKeywordCount   int `json:"primary_keyword_count"`
	SecondaryKeywordCount int `json:"secondary_keyword_count"`
	BrandCount            int `json:"brand_count"`

	TitleHasPrimary   bool `json:"title_has_primary"`
	TitleHasSecondary bool `json:"title_has_secondary"`
	TitleHasBrand     bool `json:"title_has_brand"`
	TitleLeadsPrimary bool `json:"title_leads_primary"`

	DescriptionHasPrimary   bool `json:"description_has_primary"`
	DescriptionHasSecondary bool `json:"description_has_secondary"`

	H1HasPrimary   bool `json:"h1_has_primary"`
	H2HasPrimary   bool `json:"h2_has_primary"`
	H2HasSecondary bool `json:"h2_has_secondary"`
}

// AnalysisResult is the full outcome of one analysis run. Report is the
// canonical multi-line text callers display; the structured fields exist for
// callers that want more than a string.
type AnalysisResult struct {
	URL              string      `json:"url"`
	PrimaryKeyword   string      `json:"primary_keyword"`
	SecondaryKeyword string      `json:"secondary_keyword"`
	BrandName        string      `json:"brand_name"`
	Fields           *PageFields `json:"fields"`
	Metrics          Metrics     `json:"metrics"`
	Recommendations  []string    `json:"recommendations"`
	SuggestedTitle   string      `json:"suggested_title"`
	Report           string      `json:"report"`
	CreatedAt        time.Time   `json:"created_at"`
}

// SuggestedTitle builds the recommended title string for the three inputs.
func SuggestedTitle(primary, secondary, brand string) string {
	return primary + " | " + secondary + " | " + brand
}

// RuneLen counts characters, not bytes, so multibyte titles report the same
// lengths a user sees.
func RuneLen(s string) int {
	return utf8.RuneCountInString(s)
}

// ErrorResponse is the JSON shape for transport-level failures.
type ErrorResponse struct {
	StatusCode int    `json:"status_code"`
	Message    string `json:"message"`
	Error      string `json:"error,omitempty"`
}
