package handler

import (
	"log/slog"
	"net/http"

	"cafe/internal/delivery/api/response"
	deliverycontext "cafe/internal/delivery/context"
	"cafe/internal/domain/entity"
	"cafe/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// TeamHandlerParams holds dependencies for TeamHandler, injected by Fx.
type TeamHandlerParams struct {
	fx.In

	TeamUC usecase.TeamUsecase
	Logger *slog.Logger
}

// TeamHandler serves staff administration.
type TeamHandler struct {
	teamUC usecase.TeamUsecase
	logger *slog.Logger
}

// NewTeamHandler is the constructor for TeamHandler.
func NewTeamHandler(params TeamHandlerParams) *TeamHandler {
	return &TeamHandler{teamUC: params.TeamUC, logger: params.Logger}
}

// CreateStaffRequest is the body of POST /api/v1/admin/team.
type CreateStaffRequest struct {
	Email       string `json:"email" validate:"required,email"`
	Password    string `json:"password" validate:"required"`
	DisplayName string `json:"display_name" validate:"required,max=100"`
	Role        string `json:"role" validate:"required,oneof=admin volunteer"`
}

// ChangeRoleRequest is the body of PUT /api/v1/admin/team/:id/role.
type ChangeRoleRequest struct {
	Role string `json:"role" validate:"required,oneof=admin volunteer"`
}

// AssignItemsRequest is the body of PUT /api/v1/admin/team/:id/assignments.
type AssignItemsRequest struct {
	ItemIDs []string `json:"item_ids" validate:"dive,uuid"`
}

// ListTeam lists every staff member with their assignments.
func (h *TeamHandler) ListTeam(c echo.Context) error {
	team, err := h.teamUC.ListTeam(c.Request().Context())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, team)
}

// CreateStaff creates a staff account with a password credential.
func (h *TeamHandler) CreateStaff(c echo.Context) error {
	var req CreateStaffRequest
	if err := bindAndValidate(c, &req); err != nil {
		return response.HandleAppError(c, err)
	}

	user, err := h.teamUC.CreateStaff(c.Request().Context(), &usecase.CreateStaffInput{
		Email:       req.Email,
		Password:    req.Password,
		DisplayName: req.DisplayName,
		Role:        entity.Role(req.Role),
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, user)
}

// ChangeRole changes the role of another staff member.
func (h *TeamHandler) ChangeRole(c echo.Context) error {
	actorID, ok := deliverycontext.GetUserID(c)
	if !ok {
		return invalidToken(c)
	}

	userID, err := uuidParam(c, "id")
	if err != nil {
		return response.HandleAppError(c, err)
	}

	var req ChangeRoleRequest
	if err := bindAndValidate(c, &req); err != nil {
		return response.HandleAppError(c, err)
	}

	user, err := h.teamUC.ChangeRole(c.Request().Context(), actorID, userID, entity.Role(req.Role))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, user)
}

// RemoveStaff deletes another staff member.
func (h *TeamHandler) RemoveStaff(c echo.Context) error {
	actorID, ok := deliverycontext.GetUserID(c)
	if !ok {
		return invalidToken(c)
	}

	userID, err := uuidParam(c, "id")
	if err != nil {
		return response.HandleAppError(c, err)
	}

	if err := h.teamUC.RemoveStaff(c.Request().Context(), actorID, userID); err != nil {
		return response.HandleAppError(c, err)
	}

	return c.NoContent(http.StatusNoContent)
}

// AssignItems replaces the items a volunteer handles.
func (h *TeamHandler) AssignItems(c echo.Context) error {
	userID, err := uuidParam(c, "id")
	if err != nil {
		return response.HandleAppError(c, err)
	}

	var req AssignItemsRequest
	if err := bindAndValidate(c, &req); err != nil {
		return response.HandleAppError(c, err)
	}

	itemIDs := make([]uuid.UUID, 0, len(req.ItemIDs))
	for _, raw := range req.ItemIDs {
		itemIDs = append(itemIDs, uuid.MustParse(raw))
	}

	assigned, err := h.teamUC.AssignItems(c.Request().Context(), userID, itemIDs)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, map[string][]uuid.UUID{"item_ids": assigned})
}
