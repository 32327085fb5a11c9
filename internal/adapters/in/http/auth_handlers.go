package http

import (
	"net/http"

	"transport/internal/identity"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

type registerRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	FullName string `json:"fullName"`
	Password string `json:"password"`
	Role     string `json:"role"`
}

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type tokenResponse struct {
	Token string `json:"token"`
}

type userResponse struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
	FullName string `json:"fullName"`
	Role     string `json:"role"`
}

func newUserResponse(user *identity.User) userResponse {
	return userResponse{
		ID:       user.ID.String(),
		Username: user.Username,
		Email:    user.Email,
		FullName: user.FullName,
		Role:     user.Role,
	}
}

// Register handles POST /api/v1/auth/register.
func (s *Server) Register(ctx echo.Context) error {
	var req registerRequest
	if err := ctx.Bind(&req); err != nil {
		return writeError(ctx, http.StatusBadRequest, "invalid request body")
	}

	user, err := identity.NewUser(req.Username, req.Email, req.FullName, req.Password, req.Role)
	if err != nil {
		return writeDomainError(ctx, err)
	}

	if err := s.users.Add(ctx.Request().Context(), user); err != nil {
		return writeDomainError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, newUserResponse(user))
}

// Login handles POST /api/v1/auth/login. Unknown users and wrong passwords
// get the same response.
func (s *Server) Login(ctx echo.Context) error {
	var req loginRequest
	if err := ctx.Bind(&req); err != nil {
		return writeError(ctx, http.StatusBadRequest, "invalid request body")
	}

	user, err := s.users.GetByUsername(ctx.Request().Context(), req.Username)
	if err != nil || !user.CheckPassword(req.Password) {
		return writeError(ctx, http.StatusUnauthorized, "invalid credentials")
	}

	token, err := s.tokens.Issue(user)
	if err != nil {
		return writeError(ctx, http.StatusInternalServerError, "failed to issue token")
	}

	return ctx.JSON(http.StatusOK, tokenResponse{Token: token})
}

// Me handles GET /api/v1/auth/me.
func (s *Server) Me(ctx echo.Context) error {
	claims := claimsFrom(ctx)
	if claims == nil {
		return writeError(ctx, http.StatusUnauthorized, "missing bearer token")
	}

	userID, err := uuid.Parse(claims.Subject)
	if err != nil {
		return writeError(ctx, http.StatusUnauthorized, "invalid token subject")
	}

	user, err := s.users.GetByID(ctx.Request().Context(), userID)
	if err != nil {
		return writeDomainError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, newUserResponse(user))
}
