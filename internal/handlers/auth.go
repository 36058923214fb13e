package handlers

import (
	"net/http"

	"todoapp/internal/service"

	"github.com/gin-gonic/gin"
)

const errCreateUser = "failed to create user"

// CreateUserRequest is the registration payload. All fields are required
// strings; no format validation beyond presence.
type CreateUserRequest struct {
	Username  string `json:"username" binding:"required" example:"codingwithroby"`
	Email     string `json:"email" binding:"required" example:"roby@example.com"`
	FirstName string `json:"first_name" binding:"required" example:"Eric"`
	LastName  string `json:"last_name" binding:"required" example:"Roby"`
	Password  string `json:"password" binding:"required" example:"test1234"`
	Role      string `json:"role" binding:"required" example:"admin"`
}

// @Summary      Auth placeholder
// @Tags         auth
// @Produce      json
// @Success      200  {object}  map[string]string
// @Router       /auth/ [get]
func (h *Handler) authStatus(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"user": "authenticated"})
}

// @Summary      Register user
// @Description  Hashes the password before storage. Duplicate username or email fails at the store's uniqueness constraint.
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      CreateUserRequest  true  "User payload"
// @Success      201   {object}  models.User
// @Failure      422   {object}  map[string]string
// @Failure      500   {object}  map[string]string
// @Router       /auth/ [post]
func (h *Handler) register(c *gin.Context) {
	var req CreateUserRequest
	if ok := h.bindJSONOrReject(c, &req); !ok {
		return
	}

	user, err := h.services.Accounts.Register(c.Request.Context(), service.RegisterInput{
		Username:  req.Username,
		Email:     req.Email,
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Password:  req.Password,
		Role:      req.Role,
	})
	if err != nil {
		// Store errors, uniqueness violations included, are not translated.
		h.logAndJSONError(c, http.StatusInternalServerError, errCreateUser, "user_register_failed", err, "username", req.Username)
		return
	}

	c.JSON(http.StatusCreated, user)
}
