package handler

import (
	"log/slog"
	"net/http"

	"cafe/internal/delivery/api/response"
	"cafe/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// AnnouncementHandlerParams holds dependencies for AnnouncementHandler, injected by Fx.
type AnnouncementHandlerParams struct {
	fx.In

	AnnouncementUC usecase.AnnouncementUsecase
	Logger         *slog.Logger
}

// AnnouncementHandler serves staff announcements.
type AnnouncementHandler struct {
	announcementUC usecase.AnnouncementUsecase
	logger         *slog.Logger
}

// NewAnnouncementHandler is the constructor for AnnouncementHandler.
func NewAnnouncementHandler(params AnnouncementHandlerParams) *AnnouncementHandler {
	return &AnnouncementHandler{announcementUC: params.AnnouncementUC, logger: params.Logger}
}

// CreateAnnouncementRequest is the body of POST /api/v1/admin/announcements.
// Lengths are checked by the usecase.
type CreateAnnouncementRequest struct {
	Title   string `json:"title"`
	Content string `json:"content"`
}

// DraftAnnouncementRequest is the body of POST /api/v1/admin/announcements/draft.
type DraftAnnouncementRequest struct {
	Topic string `json:"topic" validate:"required,max=200"`
}

// ListAnnouncements lists announcements newest first.
func (h *AnnouncementHandler) ListAnnouncements(c echo.Context) error {
	limit, err := intQuery(c, "limit")
	if err != nil {
		return response.HandleAppError(c, err)
	}

	announcements, err := h.announcementUC.ListAnnouncements(c.Request().Context(), limit)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, announcements)
}

// CreateAnnouncement posts an announcement.
func (h *AnnouncementHandler) CreateAnnouncement(c echo.Context) error {
	var req CreateAnnouncementRequest
	if err := bindAndValidate(c, &req); err != nil {
		return response.HandleAppError(c, err)
	}

	announcement, err := h.announcementUC.CreateAnnouncement(c.Request().Context(), req.Title, req.Content)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, announcement)
}

// DeleteAnnouncement removes an announcement.
func (h *AnnouncementHandler) DeleteAnnouncement(c echo.Context) error {
	id, err := uuidParam(c, "id")
	if err != nil {
		return response.HandleAppError(c, err)
	}

	if err := h.announcementUC.DeleteAnnouncement(c.Request().Context(), id); err != nil {
		return response.HandleAppError(c, err)
	}

	return c.NoContent(http.StatusNoContent)
}

// DraftAnnouncement suggests a title and text for a topic.
func (h *AnnouncementHandler) DraftAnnouncement(c echo.Context) error {
	var req DraftAnnouncementRequest
	if err := bindAndValidate(c, &req); err != nil {
		return response.HandleAppError(c, err)
	}

	draft, err := h.announcementUC.DraftAnnouncement(c.Request().Context(), req.Topic)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, draft)
}
