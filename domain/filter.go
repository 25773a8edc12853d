package domain

import (
	"net/url"
	"strings"
)

// SummaryFilter holds the three optional, independent predicates applied to
// a normalized summary set. A zero-value filter passes everything.
type SummaryFilter struct {
	Sentiment   string
	TimeHorizon string
	Search      string
}

// IsZero reports whether the filter has no active predicates.
func (f SummaryFilter) IsZero() bool {
	return f.Sentiment == "" && f.TimeHorizon == "" && strings.TrimSpace(f.Search) == ""
}

// FilterSummaries returns the subsequence of summaries matching every active
// predicate, preserving input order. Equality predicates run before the
// substring scan so the common sentiment/horizon filters stay cheap.
func FilterSummaries(summaries []ArticleSummary, filter SummaryFilter) []ArticleSummary {
	if filter.IsZero() {
		return summaries
	}

	search := strings.ToLower(strings.TrimSpace(filter.Search))

	matched := make([]ArticleSummary, 0, len(summaries))
	for _, s := range summaries {
		if filter.Sentiment != "" && !strings.EqualFold(filter.Sentiment, s.Analysis.Sentiment) {
			continue
		}
		if filter.TimeHorizon != "" && !strings.EqualFold(filter.TimeHorizon, s.Analysis.TimeHorizon) {
			continue
		}
		if search != "" && !strings.Contains(searchText(s), search) {
			continue
		}
		matched = append(matched, s)
	}

	return matched
}

// searchText joins the searchable fields of a summary into one lowercase
// haystack: summary text, implications, companies, sectors, key metrics,
// source file, URL, URL host and model identifier.
func searchText(s ArticleSummary) string {
	parts := make([]string, 0, 8+len(s.Analysis.CompaniesMentioned)+len(s.Analysis.SectorsAffected)+len(s.Analysis.KeyMetrics))
	parts = append(parts, s.Analysis.Summary, s.Analysis.InvestmentImplications)
	parts = append(parts, s.Analysis.CompaniesMentioned...)
	parts = append(parts, s.Analysis.SectorsAffected...)
	parts = append(parts, s.Analysis.KeyMetrics...)
	parts = append(parts, s.SourceFile)
	if s.URL != "" {
		parts = append(parts, s.URL)
		if parsed, err := url.Parse(s.URL); err == nil && parsed.Host != "" {
			parts = append(parts, parsed.Host)
		}
	}
	parts = append(parts, s.Model)

	return strings.ToLower(strings.Join(parts, " "))
}
