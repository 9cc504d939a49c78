package handlers

import (
	"net/http"

	"lovelink/models"
	"lovelink/services/user"
	"lovelink/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// UserHandler serves the /users endpoints.
type UserHandler struct {
	UserService user.UserService
}

func NewUserHandler(us user.UserService) *UserHandler {
	return &UserHandler{UserService: us}
}

// GetAllUsersHandler handles GET /users.
func (h *UserHandler) GetAllUsersHandler(c *gin.Context) {
	users, err := h.UserService.GetAllUsers(c.Request.Context())
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, users)
}

// GetAdminStatusHandler handles GET /users/admin/:email. The caller has
// already been matched against the path email.
func (h *UserHandler) GetAdminStatusHandler(c *gin.Context) {
	isAdmin, err := h.UserService.IsAdmin(c.Request.Context(), c.Param("email"))
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, models.AdminStatus{Admin: isAdmin})
}

// RegisterUserHandler handles POST /users.
func (h *UserHandler) RegisterUserHandler(c *gin.Context) {
	doc, ok := bindDocument(c)
	if !ok {
		return
	}
	res, err := h.UserService.RegisterUser(c.Request.Context(), doc)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, res)
}

// PromoteToAdminHandler handles PATCH /users/admin/:id.
func (h *UserHandler) PromoteToAdminHandler(c *gin.Context) {
	id := c.Param("id")
	res, err := h.UserService.PromoteToAdmin(c.Request.Context(), id)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	utils.RequestLogger(c).Info("User promoted to admin",
		zap.String("id", id),
		zap.Int64("matched", res.MatchedCount),
	)
	c.JSON(http.StatusOK, res)
}

// DeleteUserHandler handles DELETE /users/:id.
func (h *UserHandler) DeleteUserHandler(c *gin.Context) {
	res, err := h.UserService.DeleteUser(c.Request.Context(), c.Param("id"))
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, res)
}
