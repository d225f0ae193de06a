package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/enrolldesk/enrolldesk/internal/app/models/dto"
	"github.com/enrolldesk/enrolldesk/internal/app/services"
	"github.com/enrolldesk/enrolldesk/internal/middleware"
)

// AuthController handles authentication endpoints
type AuthController struct {
	authService services.AuthService
}

// NewAuthController creates a new AuthController
func NewAuthController(authService services.AuthService) *AuthController {
	return &AuthController{
		authService: authService,
	}
}

// Login verifies credentials and returns a bearer token with the user's role.
// POST /api/auth/login
func (c *AuthController) Login(ctx *gin.Context) {
	var req dto.LoginRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse("Please enter both username and password"))
		return
	}

	user, token, expiresIn, err := c.authService.Login(ctx, req.Username, req.Password)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.LoginResponse{
		Success:   true,
		Token:     token,
		ExpiresIn: expiresIn,
		User: dto.UserInfo{
			Username: user.Username,
			FullName: user.FullName,
			Role:     string(user.Role),
		},
	})
}

// Register creates a read-only account.
// POST /api/auth/register
func (c *AuthController) Register(ctx *gin.Context) {
	var req dto.RegisterRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse("Please fill in all required fields"))
		return
	}

	if _, err := c.authService.Register(ctx, req.Username, req.Password, req.FullName, req.Email); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.MutationResponse{
		Success: true,
		Message: "Account created successfully! Please login.",
	})
}
