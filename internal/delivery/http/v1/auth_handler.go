package v1

import (
	"net/http"
	"recruitai-backend/internal/delivery/http/response"
	"recruitai-backend/internal/domain"
	"recruitai-backend/pkg/apperror"
	"recruitai-backend/pkg/auth"
	"recruitai-backend/pkg/validation"
	"time"

	"github.com/gin-gonic/gin"
)

type AuthHandler struct {
	authUC domain.AuthUsecase
	tokens *auth.TokenManager
}

func NewAuthHandler(public *gin.RouterGroup, protected *gin.RouterGroup, authUC domain.AuthUsecase, tokens *auth.TokenManager, loginLimit gin.HandlerFunc) {
	handler := &AuthHandler{
		authUC: authUC,
		tokens: tokens,
	}

	publicAuth := public.Group("/auth")
	{
		publicAuth.POST("/register", loginLimit, handler.Register)
		publicAuth.POST("/login", loginLimit, handler.Login)
	}

	protectedAuth := protected.Group("/auth")
	{
		protectedAuth.GET("/me", handler.Me)
	}
}

type RegisterRequest struct {
	Username string `json:"username" binding:"required,max=255,valid_username"`
	Password string `json:"password" binding:"required"`
	Role     string `json:"role" binding:"required,valid_role"`
}

type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type LoginResponse struct {
	Token      string          `json:"token"`
	ExpiresAt  time.Time       `json:"expires_at"`
	Session    *domain.Session `json:"session"`
	Navigation []domain.View   `json:"navigation"`
}

type MeResponse struct {
	User       *domain.User  `json:"user"`
	Navigation []domain.View `json:"navigation"`
}

// Register godoc
// @Summary      User Registration
// @Description  Register a new account as Candidate or HR/Recruiter
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        register  body      RegisterRequest  true  "Registration Details"
// @Success      201    {object}  response.Response{data=domain.User}
// @Failure      400    {object}  response.Response
// @Failure      409    {object}  response.Response
// @Router       /auth/register [post]
func (h *AuthHandler) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest(validation.Message(err)))
		return
	}

	user, err := h.authUC.Register(c.Request.Context(), req.Username, req.Password, domain.Role(req.Role))
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusCreated, "Account created successfully. Please login.", user)
}

// Login godoc
// @Summary      User Login
// @Description  Exchange username and password for a session token
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        login  body      LoginRequest  true  "Credentials"
// @Success      200    {object}  response.Response{data=LoginResponse}
// @Failure      401    {object}  response.Response
// @Router       /auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest(validation.Message(err)))
		return
	}

	user, err := h.authUC.Authenticate(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		c.Error(err)
		return
	}

	token, expiresAt, err := h.tokens.Issue(user.ID, user.Username, string(user.Role))
	if err != nil {
		c.Error(apperror.Internal(err))
		return
	}

	maxAge := int(time.Until(expiresAt).Seconds())
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie("auth_token", token, maxAge, "/", "", c.Request.TLS != nil, true)

	response.Success(c, http.StatusOK, "Login successful", LoginResponse{
		Token:      token,
		ExpiresAt:  expiresAt,
		Session:    domain.NewSession(user),
		Navigation: domain.NavigationFor(user.Role),
	})
}

// Me godoc
// @Summary      Current user
// @Description  Returns the logged-in user and the views available to their role
// @Tags         auth
// @Produce      json
// @Success      200  {object}  response.Response{data=MeResponse}
// @Failure      401  {object}  response.Response
// @Router       /auth/me [get]
// @Security     BearerAuth
func (h *AuthHandler) Me(c *gin.Context) {
	userID := c.GetInt64(string(domain.KeyUserID))

	user, err := h.authUC.GetUser(c.Request.Context(), userID)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "User retrieved", MeResponse{
		User:       user,
		Navigation: domain.NavigationFor(user.Role),
	})
}
