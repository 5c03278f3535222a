package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"profiledash/internal/jsonapi"
	"profiledash/internal/render"
	"profiledash/internal/service"

	"github.com/gin-gonic/gin"
)

// Common response/status constants to avoid magic strings and typos.
const (
	statusOK       = "ok"
	statusRendered = "rendered"

	errBadID        = "id must be a positive integer"
	errFetchProfile = "failed to fetch profile"
	errFetchBatch   = "failed to fetch batch"
	errRender       = "failed to render profile"
	errBusy         = "fetch already in flight for this user"
	errInvalidBody  = "invalid body: "
)

// Centralized error logging and response.
func (h *Handler) logAndJSONError(c *gin.Context, httpCode int, userMsg, logKey string, err error, kv ...interface{}) {
	if h.log != nil && err != nil {
		fields := append([]interface{}{"err", err}, kv...)
		h.log.Errorw(logKey, fields...)
	}
	c.JSON(httpCode, gin.H{"error": userMsg})
}

// fetchFailure maps orchestration errors onto HTTP codes: a busy control is
// a conflict, an upstream non-2xx is a bad gateway carrying the upstream
// status, anything else is internal.
func (h *Handler) fetchFailure(c *gin.Context, userMsg, logKey string, err error, kv ...interface{}) {
	if errors.Is(err, service.ErrControlBusy) {
		c.JSON(http.StatusConflict, gin.H{"error": errBusy})
		return
	}
	var se *jsonapi.StatusError
	if errors.As(err, &se) {
		if h.log != nil {
			fields := append([]interface{}{"err", err, "upstream_status", se.Code}, kv...)
			h.log.Errorw(logKey, fields...)
		}
		c.JSON(http.StatusBadGateway, gin.H{
			"error":           userMsg,
			"upstream_status": se.Code,
		})
		return
	}
	h.logAndJSONError(c, http.StatusInternalServerError, userMsg, logKey, err, kv...)
}

// idParam parses the :id path segment. The pipelines themselves do not
// validate ids; only the HTTP boundary insists on an integer.
func idParam(c *gin.Context) (int, bool) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": errBadID})
		return 0, false
	}
	return id, true
}

// Request DTO for batch fetches.
type batchRequest struct {
	IDs []int `json:"ids" binding:"required"`
}

func (h *Handler) health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status": statusOK,
	})
}

func (h *Handler) getProfile(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	p, err := h.services.Profiles.FetchProfile(c.Request.Context(), id)
	if err != nil {
		h.fetchFailure(c, errFetchProfile, "profile_fetch_failed", err, "id", id)
		return
	}
	c.JSON(http.StatusOK, p)
}

func (h *Handler) getProfileChained(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	p, err := h.services.Profiles.FetchProfileChained(c.Request.Context(), id)
	if err != nil {
		h.fetchFailure(c, errFetchProfile, "profile_chained_fetch_failed", err, "id", id)
		return
	}
	c.JSON(http.StatusOK, p)
}

func (h *Handler) batchSummaries(c *gin.Context) {
	var req batchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": errInvalidBody + err.Error()})
		return
	}
	summaries, err := h.services.Batch.FetchSummaries(c.Request.Context(), req.IDs)
	if err != nil {
		h.fetchFailure(c, errFetchBatch, "batch_fetch_failed", err, "ids", req.IDs)
		return
	}
	c.JSON(http.StatusOK, gin.H{"summaries": summaries})
}

// renderProfile runs one pipeline, renders the fragment, and replaces the
// output region with it.
func (h *Handler) renderProfile(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	p, err := h.services.Profiles.FetchProfile(c.Request.Context(), id)
	if err != nil {
		h.fetchFailure(c, errFetchProfile, "profile_render_fetch_failed", err, "id", id)
		return
	}
	html, err := render.Profile(p.User, p.Posts)
	if err != nil {
		h.logAndJSONError(c, http.StatusInternalServerError, errRender, "profile_render_failed", err, "id", id)
		return
	}
	h.services.Region.Replace(html)
	c.JSON(http.StatusOK, gin.H{"status": statusRendered, "html": html})
}

func (h *Handler) getRegion(c *gin.Context) {
	c.JSON(http.StatusOK, h.services.Region.Snapshot())
}
