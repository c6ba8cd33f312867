package rest

import (
	"context"
	"net/http"
	"strconv"
	"strings"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"unmute/domain"
	"unmute/usecase/feed_usecase"
	"unmute/utils/errors"
	"unmute/utils/logger"
	sqlutil "unmute/utils/sql"
	"unmute/validation"
)

// FeedHandler serves the feed page and session endpoints.
type FeedHandler struct {
	orchestrator *feed_usecase.FeedOrchestrator
}

func NewFeedHandler(orchestrator *feed_usecase.FeedOrchestrator) *FeedHandler {
	return &FeedHandler{orchestrator: orchestrator}
}

// GetFeedPage handles GET /v1/feeds/:feedType. One stateless page.
func (h *FeedHandler) GetFeedPage(c echo.Context) error {
	feedTypeParam := c.Param("feedType")
	viewerParam := c.QueryParam("viewer_id")
	tags := parseTags(c.QueryParams()["tags"])

	if err := validation.ValidateFeedRequest(c.Request().Context(), viewerParam, feedTypeParam, tags); err != nil {
		return handleError(c, err, "getFeedPage")
	}

	limit, offset, err := parsePagination(c)
	if err != nil {
		return handleError(c, err, "getFeedPage")
	}

	viewerID, _ := uuid.Parse(viewerParam)
	feedType, _ := domain.ParseFeedType(feedTypeParam)

	ctx := viewerScopedContext(c, viewerParam)
	page, err := h.orchestrator.GetFeedPage(ctx, domain.FeedRequest{
		ViewerID: viewerID,
		FeedType: feedType,
		Limit:    limit,
		Offset:   offset,
		Tags:     tags,
	})
	if err != nil {
		return handleError(c, err, "getFeedPage")
	}

	return c.JSON(http.StatusOK, newFeedPageResponse(page))
}

// OpenSession handles POST /v1/feeds/sessions. It creates a session and
// performs the initial load.
func (h *FeedHandler) OpenSession(c echo.Context) error {
	var req OpenSessionRequest
	if err := c.Bind(&req); err != nil {
		return handleValidationMessage(c, "request body must be valid JSON")
	}

	tags := parseTags(req.Tags)
	if err := validation.ValidateFeedRequest(c.Request().Context(), req.ViewerID, req.FeedType, tags); err != nil {
		return handleError(c, err, "openSession")
	}

	viewerID, _ := uuid.Parse(req.ViewerID)
	feedType, _ := domain.ParseFeedType(req.FeedType)
	viewer := domain.ViewerContext{ViewerID: viewerID, InterestTags: tags}

	ctx := viewerScopedContext(c, req.ViewerID)
	session, err := h.orchestrator.Open(ctx, viewer, feedType, req.Limit)
	if err != nil && session == nil {
		return handleError(c, err, "openSession")
	}
	if err != nil {
		// The session exists but its first load failed; hand back the
		// empty session so the caller can retry with fetchMore.
		logger.SafeWarnContext(ctx, "session opened with failed initial load",
			"session_id", session.ID,
			"error", err,
		)
	}

	return c.JSON(http.StatusCreated, newSessionResponse(session, h.orchestrator.Page(session)))
}

// FetchMore handles POST /v1/feeds/sessions/:id/more.
func (h *FeedHandler) FetchMore(c echo.Context) error {
	session, err := h.lookupSession(c)
	if err != nil {
		return handleError(c, err, "fetchMore")
	}

	ctx := viewerScopedContext(c, session.Viewer.ViewerID.String())
	if err := h.orchestrator.FetchMore(ctx, session); err != nil {
		return handleError(c, err, "fetchMore")
	}

	return c.JSON(http.StatusOK, newSessionResponse(session, h.orchestrator.Page(session)))
}

// Refresh handles POST /v1/feeds/sessions/:id/refresh.
func (h *FeedHandler) Refresh(c echo.Context) error {
	session, err := h.lookupSession(c)
	if err != nil {
		return handleError(c, err, "refresh")
	}

	ctx := viewerScopedContext(c, session.Viewer.ViewerID.String())
	if err := h.orchestrator.Refresh(ctx, session); err != nil {
		return handleError(c, err, "refresh")
	}

	return c.JSON(http.StatusOK, newSessionResponse(session, h.orchestrator.Page(session)))
}

// CloseSession handles DELETE /v1/feeds/sessions/:id.
func (h *FeedHandler) CloseSession(c echo.Context) error {
	session, err := h.lookupSession(c)
	if err != nil {
		return handleError(c, err, "closeSession")
	}

	h.orchestrator.Close(session)
	return c.NoContent(http.StatusNoContent)
}

func (h *FeedHandler) lookupSession(c echo.Context) (*feed_usecase.FeedSession, error) {
	sessionID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return nil, errors.ErrSessionNotFound
	}

	session, ok := h.orchestrator.Sessions().Get(sessionID)
	if !ok {
		return nil, errors.ErrSessionNotFound
	}
	return session, nil
}

// parsePagination reads and validates the limit and offset query params.
// Zero limit means "use the configured default".
func parsePagination(c echo.Context) (limit, offset int, err error) {
	validator := &validation.PaginationValidator{}
	result := validator.Validate(c.Request().Context(), map[string]interface{}{
		"limit":  c.QueryParam("limit"),
		"offset": c.QueryParam("offset"),
	})
	if !result.Valid {
		return 0, 0, &validation.ValidationErrorType{
			Type:   "pagination_validation",
			Fields: map[string]interface{}{"limit": c.QueryParam("limit"), "offset": c.QueryParam("offset")},
			Errors: result.Errors,
		}
	}

	if raw := strings.TrimSpace(c.QueryParam("limit")); raw != "" {
		limit, _ = strconv.Atoi(raw)
	}
	if raw := strings.TrimSpace(c.QueryParam("offset")); raw != "" {
		offset, _ = strconv.Atoi(raw)
	}
	return limit, offset, nil
}

// parseTags accepts both repeated tag params and comma-separated lists.
// Tags are normalized to the lowercase form the partitions store.
func parseTags(raw []string) []string {
	var tags []string
	for _, value := range raw {
		for _, tag := range strings.Split(value, ",") {
			if normalized, ok := sqlutil.NormalizeTag(tag); ok {
				tags = append(tags, normalized)
			}
		}
	}
	return tags
}

func viewerScopedContext(c echo.Context, viewerID string) context.Context {
	return context.WithValue(c.Request().Context(), logger.ViewerIDKey, viewerID)
}

func handleValidationMessage(c echo.Context, message string) error {
	return c.JSON(http.StatusBadRequest, &ErrorResponse{
		Error: message,
		Code:  "VALIDATION_ERROR",
	})
}
