// Package analyzer runs the fetch-extract-score pipeline and renders the
// recommendation report.
package analyzer

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"seoKeywordAnalyzerGO/internal/config"
	"seoKeywordAnalyzerGO/internal/extractor"
	"seoKeywordAnalyzerGO/internal/fetcher"
	"seoKeywordAnalyzerGO/internal/models"
)

// Analyzer handles on-page SEO analysis. It holds no per-request state, so
// a single instance is safe to share across concurrent callers.
type Analyzer struct {
	fetcher *fetcher.Fetcher
	logger  *slog.Logger
}

// New creates a new Analyzer
func New(cfg config.FetcherConfig, logger *slog.Logger) *Analyzer {
	return &Analyzer{
		fetcher: fetcher.New(cfg, logger),
		logger:  logger,
	}
}

// Run executes one full analysis and returns the typed result. Failures
// come back as *models.InputError, *models.FetchError or
// *models.ProcessingError; no partial result is ever returned.
func (a *Analyzer) Run(ctx context.Context, req models.AnalysisRequest) (*models.AnalysisResult, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}
	req.Normalize()

	body, err := a.fetcher.Fetch(ctx, req.URL)
	if err != nil {
		return nil, err
	}

	fields, err := extractor.Extract(body)
	if err != nil {
		return nil, &models.ProcessingError{URL: req.URL, Err: err}
	}

	metrics := ComputeMetrics(fields, req.PrimaryKeyword, req.SecondaryKeyword, req.BrandName)
	recommendations := buildRecommendations(req, metrics)
	suggested := models.SuggestedTitle(req.PrimaryKeyword, req.SecondaryKeyword, req.BrandName)

	result := &models.AnalysisResult{
		URL:              req.URL,
		PrimaryKeyword:   req.PrimaryKeyword,
		SecondaryKeyword: req.SecondaryKeyword,
		BrandName:        req.BrandName,
		Fields:           fields,
		Metrics:          metrics,
		Recommendations:  recommendations,
		SuggestedTitle:   suggested,
		CreatedAt:        time.Now(),
	}
	result.Report = renderReport(result)

	a.logger.Info("Analysis complete",
		"url", req.URL,
		"word_count", metrics.WordCount,
		"recommendations", len(recommendations))

	return result, nil
}

// Report is the stringifying adapter around Run: every failure is returned
// as display-ready text on the same channel as a successful report, so
// simple surfaces never have to branch on error types.
func (a *Analyzer) Report(ctx context.Context, req models.AnalysisRequest) string {
	result, err := a.Run(ctx, req)
	if err != nil {
		var inputErr *models.InputError
		if !errors.As(err, &inputErr) {
			a.logger.Error("Analysis failed", "url", req.URL, "error", err)
		}
		return err.Error()
	}
	return result.Report
}
