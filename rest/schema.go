package rest

import (
	"fmt"
	"time"

	"marketbrief/domain"
)

// SummaryView is the client-facing rendering of one summary. It carries the
// normalized record plus the derived presentation fields the dashboard
// renders directly.
type SummaryView struct {
	ID              int64                  `json:"id"`
	SourceFile      string                 `json:"source_file"`
	URL             string                 `json:"url,omitempty"`
	Model           string                 `json:"model"`
	ProcessedAt     time.Time              `json:"processed_at"`
	TimeAgo         string                 `json:"time_ago"`
	SentimentLabel  string                 `json:"sentiment_label"`
	ConfidenceLabel string                 `json:"confidence_label"`
	Analysis        domain.SummaryAnalysis `json:"analysis"`
}

type StatsView struct {
	TotalSummaries int                    `json:"total_summaries"`
	Sentiments     domain.SentimentCounts `json:"sentiments"`
	AvgConfidence  float64                `json:"avg_confidence"`
}

type PaginationView struct {
	Page       int `json:"page"`
	PageSize   int `json:"page_size"`
	TotalItems int `json:"total_items"`
	TotalPages int `json:"total_pages"`
}

type SummariesData struct {
	Summaries  []SummaryView  `json:"summaries"`
	Stats      StatsView      `json:"stats"`
	Pagination PaginationView `json:"pagination"`
}

type SummariesResponse struct {
	Success bool          `json:"success"`
	Data    SummariesData `json:"data"`
}

type SummaryDetailResponse struct {
	Success bool        `json:"success"`
	Data    SummaryView `json:"data"`
}

type RegisterSummaryResponse struct {
	Success bool  `json:"success"`
	ID      int64 `json:"id"`
}

type StatsResponse struct {
	Success bool      `json:"success"`
	Data    StatsView `json:"data"`
}

type QuoteResponse struct {
	Success bool         `json:"success"`
	Data    domain.Quote `json:"data"`
}

type OverviewResponse struct {
	Success bool                  `json:"success"`
	Data    domain.MarketOverview `json:"data"`
}

func newStatsView(stats domain.DashboardStats) StatsView {
	return StatsView{
		TotalSummaries: stats.TotalSummaries,
		Sentiments:     stats.Sentiments,
		AvgConfidence:  stats.AvgConfidence,
	}
}

func newSummaryView(s domain.ArticleSummary, now time.Time) SummaryView {
	return SummaryView{
		ID:              s.ID,
		SourceFile:      s.SourceFile,
		URL:             s.URL,
		Model:           s.Model,
		ProcessedAt:     s.ProcessedAt,
		TimeAgo:         timeAgo(s.ProcessedAt, now),
		SentimentLabel:  domain.SentimentLabel(s.Analysis.Sentiment),
		ConfidenceLabel: domain.ConfidenceLabel(s.Analysis.ConfidenceScore),
		Analysis:        s.Analysis,
	}
}

func newSummaryViews(summaries []domain.ArticleSummary, now time.Time) []SummaryView {
	views := make([]SummaryView, 0, len(summaries))
	for _, s := range summaries {
		views = append(views, newSummaryView(s, now))
	}
	return views
}

// timeAgo renders a coarse relative timestamp. The largest whole unit wins,
// anything under a minute is "just now".
func timeAgo(t, now time.Time) string {
	elapsed := now.Sub(t)
	if elapsed < time.Minute {
		return "just now"
	}

	if days := int(elapsed.Hours()) / 24; days > 0 {
		if days == 1 {
			return "1 day ago"
		}
		return fmt.Sprintf("%d days ago", days)
	}
	if hours := int(elapsed.Hours()); hours > 0 {
		if hours == 1 {
			return "1 hour ago"
		}
		return fmt.Sprintf("%d hours ago", hours)
	}
	minutes := int(elapsed.Minutes())
	if minutes == 1 {
		return "1 minute ago"
	}
	return fmt.Sprintf("%d minutes ago", minutes)
}
