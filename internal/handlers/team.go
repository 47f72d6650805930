package handlers

import (
	"net/http"

	"github.com/hilbertsen/teamcal/internal/models"
	"github.com/hilbertsen/teamcal/pkg/dto"
	"github.com/m1z23r/drift/pkg/drift"
)

type TeamHandler struct {
	teamService TeamServiceInterface
}

func NewTeamHandler(teamService TeamServiceInterface) *TeamHandler {
	return &TeamHandler{teamService: teamService}
}

func (h *TeamHandler) List(c *drift.Context) {
	teams, err := h.teamService.List(c.Request.Context())
	if err != nil {
		serviceError(c, "list_teams", err)
		return
	}
	ok(c, teams)
}

func (h *TeamHandler) Create(c *drift.Context) {
	var req dto.CreateTeam
	if err := c.BindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.PrimaryColor == "" {
		req.PrimaryColor = models.DefaultTeamPrimaryColor
	}
	if req.SecondaryColor == "" {
		req.SecondaryColor = models.DefaultTeamSecondaryColor
	}

	id, err := h.teamService.Create(c.Request.Context(), req)
	if err != nil {
		serviceError(c, "create_team", err)
		return
	}
	ok(c, id)
}

func (h *TeamHandler) Update(c *drift.Context) {
	var team models.Team
	if err := c.BindJSON(&team); err != nil {
		fail(c, http.StatusBadRequest, "invalid request body")
		return
	}

	updated, err := h.teamService.Update(c.Request.Context(), team)
	if err != nil {
		serviceError(c, "update_team", err)
		return
	}
	ok(c, updated)
}

func (h *TeamHandler) Delete(c *drift.Context) {
	id, valid := paramID(c)
	if !valid {
		return
	}

	deleted, err := h.teamService.Delete(c.Request.Context(), id)
	if err != nil {
		serviceError(c, "delete_team", err)
		return
	}
	ok(c, deleted)
}
