package analyzer

import (
	"strings"

	"seoKeywordAnalyzerGO/internal/models"
)

// ComputeMetrics derives the counts and presence predicates the rule table
// evaluates. A keyword is "present" in a field when the lowercased field
// contains the lowercased keyword as a substring; no tokenization, no word
// boundaries.
func ComputeMetrics(fields *models.PageFields, primary, secondary, brand string) models.Metrics {
	lowerTitle := strings.ToLower(fields.Title)
	lowerDesc := strings.ToLower(fields.Description)
	lowerBody := strings.ToLower(fields.BodyText)

	lowerPrimary := strings.ToLower(primary)
	lowerSecondary := strings.ToLower(secondary)
	lowerBrand := strings.ToLower(brand)

	return models.Metrics{
		TitleLength:       models.RuneLen(fields.Title),
		DescriptionLength: models.RuneLen(fields.Description),
		WordCount:         len(strings.Fields(fields.BodyText)),

		PrimaryKeywordCount:   strings.Count(lowerBody, lowerPrimary),
		SecondaryKeywordCount: strings.Count(lowerBody, lowerSecondary),
		BrandCount:            strings.Count(lowerBody, lowerBrand),

		TitleHasPrimary:   strings.Contains(lowerTitle, lowerPrimary),
		TitleHasSecondary: strings.Contains(lowerTitle, lowerSecondary),
		TitleHasBrand:     strings.Contains(lowerTitle, lowerBrand),
		TitleLeadsPrimary: strings.HasPrefix(lowerTitle, lowerPrimary),

		DescriptionHasPrimary:   strings.Contains(lowerDesc, lowerPrimary),
		DescriptionHasSecondary: strings.Contains(lowerDesc, lowerSecondary),

		H1HasPrimary:   anyContains(fields.Headers[1], lowerPrimary),
		H2HasPrimary:   anyContains(fields.Headers[2], lowerPrimary),
		H2HasSecondary: anyContains(fields.Headers[2], lowerSecondary),
	}
}

func anyContains(headers []string, loweredKeyword string) bool {
	for _, h := range headers {
		if strings.Contains(strings.ToLower(h), loweredKeyword) {
			return true
		}
	}
	return false
}
