package handlers

import (
	"fmt"

	"github.com/gin-gonic/gin"
	"github.com/splitr-app/splitr-backend/models"
	"github.com/splitr-app/splitr-backend/services"
	"github.com/splitr-app/splitr-backend/utils"
)

// GroupHandler handles group-related HTTP requests
type GroupHandler struct {
	groupService  *services.GroupService
	exportService *services.ExportService
}

// NewGroupHandler creates a new group handler
func NewGroupHandler(groupService *services.GroupService, exportService *services.ExportService) *GroupHandler {
	return &GroupHandler{
		groupService:  groupService,
		exportService: exportService,
	}
}

// CreateGroup handles POST /groups/create
func (h *GroupHandler) CreateGroup(c *gin.Context) {
	var request models.CreateGroupRequest

	if err := c.ShouldBindJSON(&request); err != nil {
		utils.HandleError(c, utils.NewValidationError("invalid request"))
		return
	}

	groupID, err := h.groupService.CreateGroup(CurrentUserID(c), request.Name, request.Description, request.Members)
	if err != nil {
		utils.HandleError(c, err)
		return
	}

	utils.HandleSuccess(c, models.CreateGroupResponse{GroupID: groupID})
}

// GetUserGroups handles GET /groups
func (h *GroupHandler) GetUserGroups(c *gin.Context) {
	groups, err := h.groupService.GetUserGroups(CurrentUserID(c))
	if err != nil {
		utils.HandleError(c, err)
		return
	}

	utils.HandleSuccess(c, groups)
}

// GetGroupLedger handles GET /groups/:id/ledger
func (h *GroupHandler) GetGroupLedger(c *gin.Context) {
	ledger, err := h.groupService.GetGroupLedger(CurrentUserID(c), c.Param("id"))
	if err != nil {
		utils.HandleError(c, err)
		return
	}

	utils.HandleSuccess(c, ledger)
}

// ExportGroupLedger handles GET /groups/:id/export
func (h *GroupHandler) ExportGroupLedger(c *gin.Context) {
	excelFile, filename, err := h.exportService.ExportGroupLedger(CurrentUserID(c), c.Param("id"))
	if err != nil {
		utils.HandleError(c, err)
		return
	}

	c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=\"%s\"", filename))
	c.Header("Content-Transfer-Encoding", "binary")

	if err := excelFile.Write(c.Writer); err != nil {
		utils.HandleError(c, utils.NewInternalError("failed to write export file"))
		return
	}
}
