package api

import (
	"net/http"
	"path/filepath"
	"strings"

	"github.com/gin-gonic/gin"
)

// allowedMediaExt is the set of file extensions GET /media/<path> will
// serve, per spec.md §6: static delivery of MP4/WebM/MOV/GIF.
var allowedMediaExt = map[string]bool{
	".mp4":  true,
	".webm": true,
	".mov":  true,
	".gif":  true,
}

// mediaHandler serves rendered video files from under mediaDir. The
// requested path is cleaned and re-joined under mediaDir so a "../"
// segment can never escape it, and only recognized video extensions are
// served.
func (s *Server) mediaHandler(c *gin.Context) {
	rel := filepath.Clean(strings.TrimPrefix(c.Param("filepath"), "/"))
	if rel == "." || strings.HasPrefix(rel, "..") {
		c.JSON(http.StatusNotFound, ErrorResponse{Error: "not found"})
		return
	}
	if !allowedMediaExt[strings.ToLower(filepath.Ext(rel))] {
		c.JSON(http.StatusNotFound, ErrorResponse{Error: "not found"})
		return
	}

	full := filepath.Join(s.mediaDir, rel)
	if !strings.HasPrefix(full, filepath.Clean(s.mediaDir)+string(filepath.Separator)) {
		c.JSON(http.StatusNotFound, ErrorResponse{Error: "not found"})
		return
	}

	c.File(full)
}
