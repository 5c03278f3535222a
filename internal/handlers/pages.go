package handlers

import (
	"mime"
	"net/http"
	"os"
	"path"
	"path/filepath"

	"github.com/gin-gonic/gin"
)

// Page bodies for the plain-text router routes.
const (
	homeBody     = "Welcome to the home page"
	aboutBody    = "Welcome to the about page"
	notFoundBody = "404 - Page Not Found"
	missingFile  = "404 - File Not Found"

	// Extensionless files and .html are served as HTML.
	defaultContentType = "text/html; charset=utf-8"
)

func (h *Handler) homePage(c *gin.Context) {
	c.String(http.StatusOK, homeBody)
}

func (h *Handler) aboutPage(c *gin.Context) {
	c.String(http.StatusOK, aboutBody)
}

func (h *Handler) notFoundPage(c *gin.Context) {
	c.String(http.StatusNotFound, notFoundBody)
}

// serveStatic resolves the request path under the configured base directory
// and serves the file with a content type inferred from its extension.
// "/" maps to index.html; a missing file is a plain-text 404.
func (h *Handler) serveStatic(c *gin.Context) {
	rel := c.Param("filepath")
	if rel == "" || rel == "/" {
		rel = "/index.html"
	}

	// Clean before joining so "../" cannot escape the base directory.
	full := filepath.Join(h.staticDir, filepath.FromSlash(path.Clean("/"+rel)))

	data, err := os.ReadFile(full)
	if err != nil {
		if h.log != nil {
			h.log.Infow("static_miss", "path", rel)
		}
		c.String(http.StatusNotFound, missingFile)
		return
	}

	ctype := mime.TypeByExtension(filepath.Ext(full))
	if ctype == "" {
		ctype = defaultContentType
	}
	c.Data(http.StatusOK, ctype, data)
}
