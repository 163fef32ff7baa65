package types

const (
	ActionLoadDataset    = "load_dataset"
	ActionLoadAsset      = "load_asset"
	ActionRenderPage     = "render_page"
	ActionRenderChart    = "render_chart"
	ActionExportViews    = "export_views"
	ActionHourlyReport   = "hourly_report"
	ActionDailyReport    = "daily_report"
	ActionServerStart    = "http_server_start"
	ActionServerShutdown = "http_server_stop"
)
