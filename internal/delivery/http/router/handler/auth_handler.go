// Package handler contains the HTTP handlers for the application.
package handler

import (
	"io"
	"log/slog"
	"net/http"

	"nightmap/internal/delivery/http/middleware"
	"nightmap/internal/delivery/http/response"
	domainerrors "nightmap/internal/domain/errors"
	"nightmap/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// maxUploadedAvatarBytes bounds the in-memory read of a multipart upload.
const maxUploadedAvatarBytes = 5 << 20

// AuthHandler holds dependencies for registration and session handlers.
type AuthHandler struct {
	authUsecase    usecase.AuthUsecase
	profileUsecase usecase.ProfileUsecase
	logger         *slog.Logger
}

// NewAuthHandler is the constructor for AuthHandler, injected by Fx.
func NewAuthHandler(authUsecase usecase.AuthUsecase, profileUsecase usecase.ProfileUsecase, logger *slog.Logger) *AuthHandler {
	return &AuthHandler{
		authUsecase:    authUsecase,
		profileUsecase: profileUsecase,
		logger:         logger,
	}
}

// Register handles the registration request. It accepts a JSON body or a
// multipart form; the multipart variant may carry the profile picture file.
func (h *AuthHandler) Register(c echo.Context) error {
	input, err := h.bindRegisterInput(c)
	if err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid registration input")
	}

	if err := validateRegisterInput(input); err != nil {
		return errors.WithStack(err)
	}

	output, err := h.authUsecase.Register(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, output, "Account registered successfully")
}

func (h *AuthHandler) bindRegisterInput(c echo.Context) (*usecase.RegisterInput, error) {
	input := &usecase.RegisterInput{}
	if err := c.Bind(input); err != nil {
		return nil, err
	}

	// Multipart uploads carry the picture as a file part named
	// "profile_picture"; a missing part is not an error.
	file, err := c.FormFile("profile_picture")
	if err != nil {
		return input, nil
	}

	src, err := file.Open()
	if err != nil {
		return nil, err
	}
	defer src.Close()

	data, err := io.ReadAll(io.LimitReader(src, maxUploadedAvatarBytes))
	if err != nil {
		return nil, err
	}

	input.ProfilePicture = data
	input.ProfilePictureContentType = file.Header.Get("Content-Type")

	return input, nil
}

func validateRegisterInput(input *usecase.RegisterInput) error {
	fields := map[string]string{}
	if input.Username == "" {
		fields["username"] = "username is required"
	}
	if input.Email == "" {
		fields["email"] = "email is required"
	}
	if input.Password == "" {
		fields["password"] = "password is required"
	}
	if input.Nickname == "" {
		fields["nickname"] = "nickname is required"
	}
	if input.BirthDate == "" {
		fields["birth_date"] = "birth_date is required"
	}

	if len(fields) > 0 {
		return domainerrors.NewValidationError(fields)
	}

	return nil
}

// Login handles the login request.
func (h *AuthHandler) Login(c echo.Context) error {
	var input *usecase.LoginInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid login input")
	}

	output, err := h.authUsecase.Login(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, output, "Login successful")
}

// RefreshToken handles the token refresh request.
func (h *AuthHandler) RefreshToken(c echo.Context) error {
	var input *usecase.RefreshTokenInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid refresh token input")
	}

	output, err := h.authUsecase.RefreshToken(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, output, "Token refreshed successfully")
}

// Logout handles the logout request.
func (h *AuthHandler) Logout(c echo.Context) error {
	var input *usecase.LogoutInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid logout input")
	}

	if err := h.authUsecase.Logout(c.Request().Context(), input); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"message": "Successfully logged out"}, "Logout successful")
}

// CheckUsername reports whether a username is still available.
func (h *AuthHandler) CheckUsername(c echo.Context) error {
	username := c.QueryParam("username")
	if username == "" {
		return response.BadRequest(c, "INVALID_INPUT", "username query parameter is required")
	}

	available, err := h.authUsecase.UsernameAvailable(c.Request().Context(), username)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]bool{"available": available}, "")
}

// CheckEmail reports whether an email is still available.
func (h *AuthHandler) CheckEmail(c echo.Context) error {
	email := c.QueryParam("email")
	if email == "" {
		return response.BadRequest(c, "INVALID_INPUT", "email query parameter is required")
	}

	available, err := h.authUsecase.EmailAvailable(c.Request().Context(), email)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]bool{"available": available}, "")
}

// Me returns the authenticated caller's account summary.
func (h *AuthHandler) Me(c echo.Context) error {
	accountID, ok := middleware.AccountID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Authentication required")
	}

	account, err := h.profileUsecase.GetAccount(c.Request().Context(), accountID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, account, "")
}

// ProfileMe returns the authenticated caller's profile.
func (h *AuthHandler) ProfileMe(c echo.Context) error {
	accountID, ok := middleware.AccountID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Authentication required")
	}

	profile, err := h.profileUsecase.GetProfile(c.Request().Context(), accountID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, profile, "")
}
