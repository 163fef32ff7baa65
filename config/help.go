package config

import (
	"flag"
	"fmt"
)

const HelpMessage = `Bike sharing dashboard

Usage:
  dashboard [--config-path <path>]
  dashboard --help

Options:
  --help          Show this screen.
  --config-path   Path to the config yaml file (default: config.yaml).
                  A missing file is fine, defaults and environment apply.

Environment:
  SERVER_HOST, SERVER_PORT                 Listen address (default 0.0.0.0:8501)
  DATA_HOURLY_PATH, DATA_DAILY_PATH        Dataset files
  DATA_IMAGE_PATH                          Sidebar image
  LOG_LEVEL                                DEBUG, INFO, WARN or ERROR
  UI_LOCALE                                Default language, en or id
`

func PrintHelp() {
	if HelpMessage != "" {
		fmt.Printf("%s", HelpMessage)
	} else {
		flag.Usage()
	}
}
