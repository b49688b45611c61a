package di

import (
	"roomcal/internal/workers/refresh"
	"roomcal/transport/http"
)

// App is the HTTP server and the background refresh worker sharing one dependency graph.
type App struct {
	HTTP   *http.HTTP
	Worker *refresh.Worker
}
