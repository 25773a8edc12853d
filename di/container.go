package di

import (
	"marketbrief/config"
	"marketbrief/driver/brief_db"
	"marketbrief/driver/market_data"
	"marketbrief/gateway/market_data_gateway"
	"marketbrief/gateway/summary_gateway"
	"marketbrief/usecase/dashboard_usecase"
	"marketbrief/usecase/delete_summary_usecase"
	"marketbrief/usecase/fetch_market_usecase"
	"marketbrief/usecase/fetch_summary_usecase"
	"marketbrief/usecase/register_summary_usecase"
	"marketbrief/utils/metrics"

	"github.com/jackc/pgx/v5/pgxpool"
)

type ApplicationComponents struct {
	FetchSummariesUsecase     *fetch_summary_usecase.FetchSummariesUsecase
	FetchSummaryDetailUsecase *fetch_summary_usecase.FetchSummaryDetailUsecase
	RegisterSummaryUsecase    *register_summary_usecase.RegisterSummaryUsecase
	DeleteSummaryUsecase      *delete_summary_usecase.DeleteSummaryUsecase
	DashboardStatsUsecase     *dashboard_usecase.DashboardStatsUsecase
	FetchQuoteUsecase         *fetch_market_usecase.FetchQuoteUsecase
	MarketOverviewUsecase     *fetch_market_usecase.MarketOverviewUsecase
	BriefDBRepository         *brief_db.BriefDBRepository
	MetricsCollector          *metrics.Collector
}

func NewApplicationComponents(pool *pgxpool.Pool, cfg *config.Config) *ApplicationComponents {
	collector := metrics.NewCollector()

	fetchSummariesGateway := summary_gateway.NewFetchSummariesGateway(pool)
	summaryDetailGateway := summary_gateway.NewSummaryDetailGateway(pool)
	registerSummaryGateway := summary_gateway.NewRegisterSummaryGateway(pool)
	deleteSummaryGateway := summary_gateway.NewDeleteSummaryGateway(pool)

	fetchSummariesUsecase := fetch_summary_usecase.NewFetchSummariesUsecase(fetchSummariesGateway, cfg.Dashboard.FetchLimit)
	fetchSummaryDetailUsecase := fetch_summary_usecase.NewFetchSummaryDetailUsecase(summaryDetailGateway)
	registerSummaryUsecase := register_summary_usecase.NewRegisterSummaryUsecase(registerSummaryGateway)
	deleteSummaryUsecase := delete_summary_usecase.NewDeleteSummaryUsecase(deleteSummaryGateway)
	dashboardStatsUsecase := dashboard_usecase.NewDashboardStatsUsecase(fetchSummariesGateway, cfg.Dashboard.FetchLimit)

	marketClient := market_data.NewClient(cfg.Market)
	fetchQuoteGateway := market_data_gateway.NewFetchQuoteGateway(marketClient, collector)
	marketOverviewGateway := market_data_gateway.NewMarketOverviewGateway(marketClient, cfg.Market.Indices())
	fetchQuoteUsecase := fetch_market_usecase.NewFetchQuoteUsecase(fetchQuoteGateway)
	marketOverviewUsecase := fetch_market_usecase.NewMarketOverviewUsecase(marketOverviewGateway)

	briefDBRepository := brief_db.NewBriefDBRepository(pool)

	return &ApplicationComponents{
		FetchSummariesUsecase:     fetchSummariesUsecase,
		FetchSummaryDetailUsecase: fetchSummaryDetailUsecase,
		RegisterSummaryUsecase:    registerSummaryUsecase,
		DeleteSummaryUsecase:      deleteSummaryUsecase,
		DashboardStatsUsecase:     dashboardStatsUsecase,
		FetchQuoteUsecase:         fetchQuoteUsecase,
		MarketOverviewUsecase:     marketOverviewUsecase,
		BriefDBRepository:         briefDBRepository,
		MetricsCollector:          collector,
	}
}
