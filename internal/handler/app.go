package handler

import (
	"io/fs"

	"github.com/dotpro/tutorial-web/internal/service"
)

// App bundles the process-wide dependencies the handlers need. It is built
// once in main and handed to RegisterRoutes; handlers hold no globals.
type App struct {
	Directory *service.UserDirectory
	// Static holds raw HTML files served as-is, such as index.html.
	Static fs.FS
	// Limiter throttles directory writes per client. Nil disables it.
	Limiter *service.TokenBucket
	// PrimeLimiter throttles prime checks per client. Nil disables it.
	PrimeLimiter *service.TokenBucket
}
