// Package agent maps a natural-language instruction onto one analysis call.
// It is a plain dispatcher: a single recognized intent, no model behind it,
// and the core's report is forwarded verbatim.
package agent

import (
	"context"
	"errors"
	"log/slog"
	"regexp"
	"strings"

	"seoKeywordAnalyzerGO/internal/analyzer"
	"seoKeywordAnalyzerGO/internal/models"
)

// ErrUnknownIntent is returned when an instruction does not match the one
// supported intent: "analyze this URL for these keywords".
var ErrUnknownIntent = errors.New("instruction does not match a supported intent")

var (
	urlPattern       = regexp.MustCompile(`https?://[^\s'"]+`)
	primaryPattern   = regexp.MustCompile(`(?i)primary keyword\s+'([^']+)'`)
	secondaryPattern = regexp.MustCompile(`(?i)secondary keyword\s+'([^']+)'`)
	brandPattern     = regexp.MustCompile(`(?i)brand name\s+'([^']+)'`)
)

// Dispatcher routes instructions to the analyzer.
type Dispatcher struct {
	analyzer *analyzer.Analyzer
	logger   *slog.Logger
}

// New creates a new Dispatcher
func New(a *analyzer.Analyzer, logger *slog.Logger) *Dispatcher {
	return &Dispatcher{
		analyzer: a,
		logger:   logger,
	}
}

// Handle parses the instruction and, when the intent is recognized, runs
// one analysis and returns its report unchanged.
func (d *Dispatcher) Handle(ctx context.Context, instruction string) (string, error) {
	req, err := ParseInstruction(instruction)
	if err != nil {
		return "", err
	}

	d.logger.Info("Dispatching analysis intent", "url", req.URL)
	return d.analyzer.Report(ctx, req), nil
}

// ParseInstruction extracts the four analysis inputs from an instruction
// such as:
//
//	Please analyze the on-page SEO for this website: https://example.com.
//	Focus on optimizing for primary keyword 'business loans', secondary
//	keyword 'commercial finance', and brand name 'PPM Finance'.
func ParseInstruction(instruction string) (models.AnalysisRequest, error) {
	var req models.AnalysisRequest

	if !strings.Contains(strings.ToLower(instruction), "analyze") {
		return req, ErrUnknownIntent
	}

	url := urlPattern.FindString(instruction)
	primary := primaryPattern.FindStringSubmatch(instruction)
	secondary := secondaryPattern.FindStringSubmatch(instruction)
	brand := brandPattern.FindStringSubmatch(instruction)

	if url == "" || primary == nil || secondary == nil || brand == nil {
		return req, ErrUnknownIntent
	}

	// Sentence punctuation sticks to bare URLs.
	req.URL = strings.TrimRight(url, ".,;)")
	req.PrimaryKeyword = primary[1]
	req.SecondaryKeyword = secondary[1]
	req.BrandName = brand[1]

	return req, nil
}
