package analyzer

import (
	"fmt"
	"strings"

	"seoKeywordAnalyzerGO/internal/models"
)

// Report target bands. 50/70 and 120/170 are the flag thresholds; the
// narrower 60-70 and 150-160 bands are what the report text tells users to
// aim for.
const (
	titleMinLength = 50
	titleMaxLength = 70
	descMinLength  = 120
	descMaxLength  = 170

	titleBrandRoom = 60

	primaryDensityFloor   = 3
	secondaryDensityFloor = 2
)

func yesNo(present bool) string {
	if present {
		return "✅ YES"
	}
	return "❌ NO"
}

// buildRecommendations evaluates the full rule battery in its fixed order.
// Every rule fires independently; wording and order are part of the
// report's contract with downstream consumers.
func buildRecommendations(req models.AnalysisRequest, m models.Metrics) []string {
	var recs []string

	// Title rules
	if !m.TitleHasPrimary {
		recs = append(recs, fmt.Sprintf("- ❌ PRIMARY KEYWORD MISSING: Add '%s' at the beginning of the title", req.PrimaryKeyword))
	} else if !m.TitleLeadsPrimary {
		recs = append(recs, fmt.Sprintf("- ⚠️ PRIMARY KEYWORD POSITION: Move '%s' to the beginning of the title", req.PrimaryKeyword))
	} else {
		recs = append(recs, "- ✅ Primary keyword is correctly positioned at the beginning")
	}

	if !m.TitleHasSecondary {
		recs = append(recs, fmt.Sprintf("- ❌ SECONDARY KEYWORD MISSING: Add '%s' to the title", req.SecondaryKeyword))
	} else {
		recs = append(recs, "- ✅ Secondary keyword is present in title")
	}

	if m.TitleLength < titleMinLength {
		recs = append(recs, "- ⚠️ TITLE TOO SHORT: Add more content to reach 60-70 characters")
	} else if m.TitleLength > titleMaxLength {
		recs = append(recs, "- ⚠️ TITLE TOO LONG: Shorten to 60-70 characters")
	} else {
		recs = append(recs, "- ✅ Title length is optimal (60-70 characters)")
	}

	// Opportunity, not a failure: only suggested when there is room left.
	if !m.TitleHasBrand && m.TitleLength < titleBrandRoom {
		recs = append(recs, fmt.Sprintf("- 💡 BRAND OPPORTUNITY: Add '%s' to the title if space allows", req.BrandName))
	}

	// Description rules
	if !m.DescriptionHasPrimary {
		recs = append(recs, fmt.Sprintf("- ❌ PRIMARY KEYWORD MISSING: Include '%s' in meta description", req.PrimaryKeyword))
	} else {
		recs = append(recs, "- ✅ Primary keyword is present in description")
	}

	if !m.DescriptionHasSecondary {
		recs = append(recs, fmt.Sprintf("- ❌ SECONDARY KEYWORD MISSING: Include '%s' in meta description", req.SecondaryKeyword))
	} else {
		recs = append(recs, "- ✅ Secondary keyword is present in description")
	}

	if m.DescriptionLength < descMinLength {
		recs = append(recs, "- ⚠️ DESCRIPTION TOO SHORT: Expand to 150-160 characters")
	} else if m.DescriptionLength > descMaxLength {
		recs = append(recs, "- ⚠️ DESCRIPTION TOO LONG: Shorten to 150-160 characters")
	} else {
		recs = append(recs, "- ✅ Description length is optimal")
	}

	// Header rules
	if !m.H1HasPrimary {
		recs = append(recs, fmt.Sprintf("- ❌ PRIMARY KEYWORD MISSING: Include '%s' in H1 tag", req.PrimaryKeyword))
	} else {
		recs = append(recs, "- ✅ Primary keyword is present in H1")
	}

	if !m.H2HasPrimary {
		recs = append(recs, fmt.Sprintf("- ⚠️ PRIMARY KEYWORD: Consider adding '%s' to some H2 tags", req.PrimaryKeyword))
	} else {
		recs = append(recs, "- ✅ Primary keyword is present in H2 tags")
	}

	if !m.H2HasSecondary {
		recs = append(recs, fmt.Sprintf("- ❌ SECONDARY KEYWORD MISSING: Include '%s' in H2 tags", req.SecondaryKeyword))
	} else {
		recs = append(recs, "- ✅ Secondary keyword is present in H2 tags")
	}

	// Content density rules
	if m.PrimaryKeywordCount < primaryDensityFloor {
		recs = append(recs, fmt.Sprintf("- ⚠️ PRIMARY KEYWORD DENSITY: Increase usage of '%s' in content", req.PrimaryKeyword))
	} else {
		recs = append(recs, "- ✅ Primary keyword density is good")
	}

	if m.SecondaryKeywordCount < secondaryDensityFloor {
		recs = append(recs, fmt.Sprintf("- ⚠️ SECONDARY KEYWORD DENSITY: Increase usage of '%s' in content", req.SecondaryKeyword))
	} else {
		recs = append(recs, "- ✅ Secondary keyword density is good")
	}

	return recs
}

// renderReport assembles the final plain-text report: facts first, then the
// recommendation lines, then the suggested title.
func renderReport(r *models.AnalysisResult) string {
	m := r.Metrics
	var sb strings.Builder

	fmt.Fprintf(&sb, `
=== ON-PAGE SEO ANALYSIS FOR %s ===

TARGET KEYWORDS:
- Primary Keyword: %s
- Secondary Keyword: %s
- Brand Name: %s

META TITLE ANALYSIS:
- Current Title: %s
- Title Length: %d characters (Target: 60-70 characters)
- Primary Keyword in Title: %s
- Secondary Keyword in Title: %s
- Brand Name in Title: %s

META DESCRIPTION ANALYSIS:
- Current Description: %s
- Description Length: %d characters (Target: 150-160 characters)
- Primary Keyword in Description: %s
- Secondary Keyword in Description: %s

HEADER TAG ANALYSIS:
- H1 Tags: %d found
- H2 Tags: %d found
- Primary Keyword in H1: %s
- Primary Keyword in H2: %s
- Secondary Keyword in H2: %s

CONTENT ANALYSIS:
- Word Count: %d words
- Primary Keyword Count: %d times
- Secondary Keyword Count: %d times
- Brand Name Count: %d times

ON-PAGE SEO RECOMMENDATIONS:
`,
		r.URL,
		r.PrimaryKeyword, r.SecondaryKeyword, r.BrandName,
		r.Fields.Title, m.TitleLength,
		yesNo(m.TitleHasPrimary), yesNo(m.TitleHasSecondary), yesNo(m.TitleHasBrand),
		r.Fields.Description, m.DescriptionLength,
		yesNo(m.DescriptionHasPrimary), yesNo(m.DescriptionHasSecondary),
		r.Fields.HeaderCount(1), r.Fields.HeaderCount(2),
		yesNo(m.H1HasPrimary), yesNo(m.H2HasPrimary), yesNo(m.H2HasSecondary),
		m.WordCount, m.PrimaryKeywordCount, m.SecondaryKeywordCount, m.BrandCount,
	)

	for _, rec := range r.Recommendations {
		sb.WriteString(rec)
		sb.WriteString("\n")
	}

	fmt.Fprintf(&sb, `
SUGGESTED TITLE FORMAT:
"%s"
(Length: %d characters)
`, r.SuggestedTitle, models.RuneLen(r.SuggestedTitle))

	return sb.String()
}
