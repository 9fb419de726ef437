package analyzer

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"seoKeywordAnalyzerGO/internal/models"
)

var testReq = models.AnalysisRequest{
	URL:              "https://www.ppmfinance.com.au/",
	PrimaryKeyword:   "business loans",
	SecondaryKeyword: "commercial finance",
	BrandName:        "PPM Finance",
}

func metricsWithTitleLength(n int) models.Metrics {
	return models.Metrics{TitleLength: n}
}

func recsText(req models.AnalysisRequest, m models.Metrics) string {
	return strings.Join(buildRecommendations(req, m), "\n")
}

func TestTitleLengthStepFunction(t *testing.T) {
	cases := []struct {
		length int
		want   string
	}{
		{49, "TITLE TOO SHORT"},
		{50, "Title length is optimal"},
		{60, "Title length is optimal"},
		{70, "Title length is optimal"},
		{71, "TITLE TOO LONG"},
	}

	for _, tc := range cases {
		text := recsText(testReq, metricsWithTitleLength(tc.length))
		assert.Contains(t, text, tc.want, "title length %d", tc.length)
	}
}

func TestDescriptionLengthStepFunction(t *testing.T) {
	cases := []struct {
		length int
		want   string
	}{
		{0, "DESCRIPTION TOO SHORT"},
		{119, "DESCRIPTION TOO SHORT"},
		{120, "Description length is optimal"},
		{170, "Description length is optimal"},
		{171, "DESCRIPTION TOO LONG"},
	}

	for _, tc := range cases {
		text := recsText(testReq, models.Metrics{DescriptionLength: tc.length})
		assert.Contains(t, text, tc.want, "description length %d", tc.length)
	}
}

func TestBrandOpportunityRule(t *testing.T) {
	t.Run("SuggestedWhenAbsentAndShort", func(t *testing.T) {
		text := recsText(testReq, models.Metrics{TitleLength: 59, TitleHasBrand: false})
		assert.Contains(t, text, "BRAND OPPORTUNITY: Add 'PPM Finance'")
	})

	t.Run("SkippedWhenTitleFull", func(t *testing.T) {
		text := recsText(testReq, models.Metrics{TitleLength: 60, TitleHasBrand: false})
		assert.NotContains(t, text, "BRAND OPPORTUNITY")
	})

	t.Run("SkippedWhenBrandPresent", func(t *testing.T) {
		text := recsText(testReq, models.Metrics{TitleLength: 30, TitleHasBrand: true})
		assert.NotContains(t, text, "BRAND OPPORTUNITY")
	})
}

func TestKeywordDensityRules(t *testing.T) {
	t.Run("BelowFloor", func(t *testing.T) {
		text := recsText(testReq, models.Metrics{PrimaryKeywordCount: 2, SecondaryKeywordCount: 1})
		assert.Contains(t, text, "PRIMARY KEYWORD DENSITY")
		assert.Contains(t, text, "SECONDARY KEYWORD DENSITY")
	})

	t.Run("AtFloor", func(t *testing.T) {
		text := recsText(testReq, models.Metrics{PrimaryKeywordCount: 3, SecondaryKeywordCount: 2})
		assert.Contains(t, text, "Primary keyword density is good")
		assert.Contains(t, text, "Secondary keyword density is good")
	})
}

func TestTitlePrimaryKeywordRule(t *testing.T) {
	t.Run("Missing", func(t *testing.T) {
		text := recsText(testReq, models.Metrics{})
		assert.Contains(t, text, "PRIMARY KEYWORD MISSING: Add 'business loans' at the beginning of the title")
	})

	t.Run("PresentButNotLeading", func(t *testing.T) {
		text := recsText(testReq, models.Metrics{TitleHasPrimary: true})
		assert.Contains(t, text, "PRIMARY KEYWORD POSITION: Move 'business loans' to the beginning of the title")
	})

	t.Run("Leading", func(t *testing.T) {
		text := recsText(testReq, models.Metrics{TitleHasPrimary: true, TitleLeadsPrimary: true})
		assert.Contains(t, text, "Primary keyword is correctly positioned at the beginning")
	})
}

func TestRecommendationOrderIsFixed(t *testing.T) {
	recs := buildRecommendations(testReq, models.Metrics{TitleLength: 10})

	// Eleven always-on rules plus the brand opportunity for a short title.
	require.Len(t, recs, 12)

	markers := []string{
		"at the beginning of the title",
		"to the title",
		"TITLE TOO SHORT",
		"BRAND OPPORTUNITY",
		"in meta description",
		"in meta description",
		"DESCRIPTION TOO SHORT",
		"in H1 tag",
		"H2 tags",
		"H2 tags",
		"PRIMARY KEYWORD DENSITY",
		"SECONDARY KEYWORD DENSITY",
	}
	idx := 0
	for _, marker := range markers {
		found := false
		for ; idx < len(recs); idx++ {
			if strings.Contains(recs[idx], marker) {
				found = true
				idx++
				break
			}
		}
		assert.True(t, found, "marker %q out of order", marker)
	}
}

func TestPPMFinanceScenario(t *testing.T) {
	fields := &models.PageFields{
		Title:   "Business Loans - PPM Finance",
		Headers: map[int][]string{},
	}
	m := ComputeMetrics(fields, testReq.PrimaryKeyword, testReq.SecondaryKeyword, testReq.BrandName)

	assert.True(t, m.TitleHasPrimary)
	assert.True(t, m.TitleLeadsPrimary)
	assert.False(t, m.TitleHasSecondary)
	assert.True(t, m.TitleHasBrand)

	text := recsText(testReq, m)
	assert.Contains(t, text, "Primary keyword is correctly positioned at the beginning")
	assert.Contains(t, text, "SECONDARY KEYWORD MISSING: Add 'commercial finance' to the title")
	assert.Contains(t, text, "TITLE TOO SHORT")
}

func TestAbsentDescriptionScenario(t *testing.T) {
	fields := &models.PageFields{Headers: map[int][]string{}}
	m := ComputeMetrics(fields, testReq.PrimaryKeyword, testReq.SecondaryKeyword, testReq.BrandName)

	assert.Equal(t, 0, m.DescriptionLength)
	assert.False(t, m.DescriptionHasPrimary)
	assert.False(t, m.DescriptionHasSecondary)

	text := recsText(testReq, m)
	assert.Contains(t, text, "DESCRIPTION TOO SHORT")
	assert.Contains(t, text, "PRIMARY KEYWORD MISSING: Include 'business loans' in meta description")
	assert.Contains(t, text, "SECONDARY KEYWORD MISSING: Include 'commercial finance' in meta description")
}

func TestNoHeadersScenario(t *testing.T) {
	fields := &models.PageFields{Headers: map[int][]string{}}
	m := ComputeMetrics(fields, testReq.PrimaryKeyword, testReq.SecondaryKeyword, testReq.BrandName)

	assert.False(t, m.H1HasPrimary)
	assert.False(t, m.H2HasPrimary)
	assert.False(t, m.H2HasSecondary)

	result := &models.AnalysisResult{
		URL:              testReq.URL,
		PrimaryKeyword:   testReq.PrimaryKeyword,
		SecondaryKeyword: testReq.SecondaryKeyword,
		BrandName:        testReq.BrandName,
		Fields:           fields,
		Metrics:          m,
		Recommendations:  buildRecommendations(testReq, m),
		SuggestedTitle:   models.SuggestedTitle(testReq.PrimaryKeyword, testReq.SecondaryKeyword, testReq.BrandName),
	}
	report := renderReport(result)

	assert.Contains(t, report, "- H1 Tags: 0 found")
	assert.Contains(t, report, "- H2 Tags: 0 found")
	assert.Contains(t, report, "- Primary Keyword in H1: ❌ NO")
	assert.Contains(t, report, "PRIMARY KEYWORD MISSING: Include 'business loans' in H1 tag")
	assert.Contains(t, report, "SECONDARY KEYWORD MISSING: Include 'commercial finance' in H2 tags")
}

func TestCaseInsensitivePresence(t *testing.T) {
	fields := &models.PageFields{
		Title:   "business LOANS is here",
		Headers: map[int][]string{},
	}
	m := ComputeMetrics(fields, "Business Loans", "x", "y")
	assert.True(t, m.TitleHasPrimary)
}

func TestRenderReportIsIdempotent(t *testing.T) {
	fields := &models.PageFields{
		Title:       "Business Loans - PPM Finance",
		Description: "Fast business loans and commercial finance for Australian businesses.",
		Headers:     map[int][]string{1: {"Business Loans"}, 2: {"Commercial Finance Options"}},
		BodyText:    "business loans business loans business loans commercial finance commercial finance",
	}
	m := ComputeMetrics(fields, testReq.PrimaryKeyword, testReq.SecondaryKeyword, testReq.BrandName)
	result := &models.AnalysisResult{
		URL:              testReq.URL,
		PrimaryKeyword:   testReq.PrimaryKeyword,
		SecondaryKeyword: testReq.SecondaryKeyword,
		BrandName:        testReq.BrandName,
		Fields:           fields,
		Metrics:          m,
		Recommendations:  buildRecommendations(testReq, m),
		SuggestedTitle:   models.SuggestedTitle(testReq.PrimaryKeyword, testReq.SecondaryKeyword, testReq.BrandName),
		CreatedAt:        time.Now(),
	}

	assert.Equal(t, renderReport(result), renderReport(result))
}

func TestReportSectionOrder(t *testing.T) {
	fields := &models.PageFields{Headers: map[int][]string{}}
	m := ComputeMetrics(fields, testReq.PrimaryKeyword, testReq.SecondaryKeyword, testReq.BrandName)
	result := &models.AnalysisResult{
		URL:              testReq.URL,
		PrimaryKeyword:   testReq.PrimaryKeyword,
		SecondaryKeyword: testReq.SecondaryKeyword,
		BrandName:        testReq.BrandName,
		Fields:           fields,
		Metrics:          m,
		Recommendations:  buildRecommendations(testReq, m),
		SuggestedTitle:   models.SuggestedTitle(testReq.PrimaryKeyword, testReq.SecondaryKeyword, testReq.BrandName),
	}
	report := renderReport(result)

	sections := []string{
		"=== ON-PAGE SEO ANALYSIS FOR https://www.ppmfinance.com.au/ ===",
		"TARGET KEYWORDS:",
		"META TITLE ANALYSIS:",
		"META DESCRIPTION ANALYSIS:",
		"HEADER TAG ANALYSIS:",
		"CONTENT ANALYSIS:",
		"ON-PAGE SEO RECOMMENDATIONS:",
		"SUGGESTED TITLE FORMAT:",
	}
	last := -1
	for _, section := range sections {
		pos := strings.Index(report, section)
		require.GreaterOrEqual(t, pos, 0, "section %q missing", section)
		assert.Greater(t, pos, last, "section %q out of order", section)
		last = pos
	}

	assert.Contains(t, report, `"business loans | commercial finance | PPM Finance"`)
}
