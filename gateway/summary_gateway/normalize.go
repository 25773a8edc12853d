package summary_gateway

import (
	"encoding/json"
	"strings"

	"marketbrief/domain"
	"marketbrief/driver/models"
)

// normalizeRow converts one stored row into its normalized view. The
// conversion fails open: any field that cannot be decoded gets its zero
// default rather than failing the record or the request.
func normalizeRow(row models.ArticleSummaryRow) domain.ArticleSummary {
	return domain.ArticleSummary{
		ID:          row.ID,
		SourceFile:  row.SourceFile,
		URL:         derefString(row.URL),
		Model:       row.Model,
		ProcessedAt: row.ProcessedAt,
		Analysis: domain.SummaryAnalysis{
			Summary:                derefString(row.Summary),
			InvestmentImplications: derefString(row.InvestmentImplications),
			Sentiment:              derefString(row.Sentiment),
			TimeHorizon:            derefString(row.TimeHorizon),
			ConfidenceScore:        derefFloat(row.ConfidenceScore),
			KeyMetrics:             decodeStringList(row.KeyMetrics),
			CompaniesMentioned:     decodeStringList(row.CompaniesMentioned),
			SectorsAffected:        decodeStringList(row.SectorsAffected),
			RiskFactors:            decodeStringList(row.RiskFactors),
			Opportunities:          decodeStringList(row.Opportunities),
		},
	}
}

// decodeStringList decodes a JSON-array text column. Null columns, malformed
// JSON and non-array values all come back as an empty list; the stored raw
// text is never authoritative enough to fail a read over.
func decodeStringList(raw *string) []string {
	if raw == nil || strings.TrimSpace(*raw) == "" {
		return []string{}
	}

	var out []string
	if err := json.Unmarshal([]byte(*raw), &out); err != nil {
		return []string{}
	}
	if out == nil {
		return []string{}
	}
	return out
}

func derefString(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func derefFloat(f *float64) float64 {
	if f == nil {
		return 0
	}
	return *f
}
