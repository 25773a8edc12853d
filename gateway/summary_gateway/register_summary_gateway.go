package summary_gateway

import (
	"context"
	"encoding/json"

	"marketbrief/domain"
	"marketbrief/driver/brief_db"
	"marketbrief/driver/models"
	"marketbrief/utils/errors"
	"marketbrief/utils/logger"
)

// RegisterSummaryGateway persists summary drafts, encoding the list-valued
// annotation fields back into their JSON text columns.
type RegisterSummaryGateway struct {
	repository *brief_db.BriefDBRepository
}

func NewRegisterSummaryGateway(pool brief_db.DBPool) *RegisterSummaryGateway {
	gateway := &RegisterSummaryGateway{}
	if pool != nil {
		gateway.repository = brief_db.NewBriefDBRepository(pool)
	}
	return gateway
}

func (g *RegisterSummaryGateway) Execute(ctx context.Context, draft domain.SummaryDraft) (int64, error) {
	if g.repository == nil {
		dbErr := errors.DatabaseError("database connection not available", nil, map[string]interface{}{
			"gateway": "RegisterSummaryGateway",
			"method":  "Execute",
		})
		errors.LogError(logger.Logger, dbErr, "database_connection_check")
		return 0, dbErr
	}

	id, err := g.repository.SaveSummary(ctx, draftToRow(draft))
	if err != nil {
		dbErr := errors.DatabaseError("failed to save summary", err, map[string]interface{}{
			"gateway":     "RegisterSummaryGateway",
			"source_file": draft.SourceFile,
		})
		errors.LogError(logger.Logger, dbErr, "save_summary")
		return 0, dbErr
	}

	return id, nil
}

func draftToRow(draft domain.SummaryDraft) models.ArticleSummaryRow {
	return models.ArticleSummaryRow{
		SourceFile:             draft.SourceFile,
		URL:                    optionalString(draft.URL),
		ProcessedAt:            draft.ProcessedAt,
		Model:                  draft.Model,
		RawResponse:            optionalString(draft.RawResponse),
		Summary:                optionalString(draft.Analysis.Summary),
		InvestmentImplications: optionalString(draft.Analysis.InvestmentImplications),
		Sentiment:              optionalString(draft.Analysis.Sentiment),
		TimeHorizon:            optionalString(draft.Analysis.TimeHorizon),
		ConfidenceScore:        &draft.Analysis.ConfidenceScore,
		KeyMetrics:             encodeStringList(draft.Analysis.KeyMetrics),
		CompaniesMentioned:     encodeStringList(draft.Analysis.CompaniesMentioned),
		SectorsAffected:        encodeStringList(draft.Analysis.SectorsAffected),
		RiskFactors:            encodeStringList(draft.Analysis.RiskFactors),
		Opportunities:          encodeStringList(draft.Analysis.Opportunities),
	}
}

// encodeStringList writes a list as a JSON array text value. Nil and empty
// lists both store as "[]" so reads never see a null surprise from our own
// writes.
func encodeStringList(values []string) *string {
	if values == nil {
		values = []string{}
	}
	encoded, err := json.Marshal(values)
	if err != nil {
		empty := "[]"
		return &empty
	}
	text := string(encoded)
	return &text
}

func optionalString(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
