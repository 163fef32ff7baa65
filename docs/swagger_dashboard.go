package docs

// @title           Bike Sharing Dashboard API
// @version         1.0
// @description     Dashboard over the 2012 hourly and summer 2011 daily bike rental datasets. Serves the HTML page, chart images, the aggregated views as JSON and an xlsx export.

// @contact.name   API Support
// @contact.url    http://www.swagger.io/support
// @contact.email  support@swagger.io

// @license.name  Apache 2.0
// @license.url   http://www.apache.org/licenses/LICENSE-2.0.html

// @host      localhost:8501
// @BasePath  /
