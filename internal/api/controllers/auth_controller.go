package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"gotham/internal/models/request_models"
	"gotham/internal/models/response_models"
	"gotham/internal/schedule"
	"gotham/internal/services"
	"gotham/pkg/utils"
)

type AuthController struct {
	authService     services.AuthServiceInterface
	tripService     services.TripServiceInterface
	scheduleService *schedule.Service
}

func NewAuthController(
	authService services.AuthServiceInterface,
	tripService services.TripServiceInterface,
	scheduleService *schedule.Service,
) *AuthController {
	return &AuthController{
		authService:     authService,
		tripService:     tripService,
		scheduleService: scheduleService,
	}
}

// RequestLoginLink godoc
// @Summary Request a sign-in link
// @Description Mails a single-use magic link. Accounts are created lazily on first verification, so any address can request one.
// @Tags Auth
// @Accept json
// @Produce json
// @Param request body request_models.RequestLoginLinkRequest true "Email"
// @Success 200 {object} utils.APIResponse
// @Router /auth/request-link [post]
func (a *AuthController) RequestLoginLink(c *gin.Context) {
	var req request_models.RequestLoginLinkRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "A valid email is required")
		return
	}

	if err := a.authService.RequestLoginLink(c.Request.Context(), req.Email); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, nil, "Sign-in link sent")
}

// VerifyLoginLink godoc
// @Summary Redeem a sign-in link
// @Description Consumes the mailed token and returns a bearer token plus the user record. Sign-out is discarding the token client-side.
// @Tags Auth
// @Accept json
// @Produce json
// @Param request body request_models.VerifyLoginLinkRequest true "Token from the mailed link"
// @Success 200 {object} utils.APIResponse
// @Failure 401 {object} utils.APIResponse
// @Router /auth/verify [post]
func (a *AuthController) VerifyLoginLink(c *gin.Context) {
	var req request_models.VerifyLoginLinkRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Token is required")
		return
	}

	session, err := a.authService.VerifyLoginLink(c.Request.Context(), req.Token)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, session, "Signed in successfully")
}

// Me godoc
// @Summary Current user
// @Description Resolves the session to the DB user row; the stored role is authoritative
// @Tags Auth
// @Produce json
// @Success 200 {object} utils.APIResponse
// @Security BearerAuth
// @Router /auth/me [get]
func (a *AuthController) Me(c *gin.Context) {
	user, err := a.authService.ResolveUser(c.Request.Context(), c.GetString("user_id"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, response_models.UserResponse{
		ID:    user.ID.String(),
		Email: user.Email,
		Role:  user.Role,
	}, "User fetched successfully")
}

// DeleteAccount godoc
// @Summary Erase the caller's data
// @Description Hard-deletes the caller's trips, schedule draft and identity row
// @Tags Auth
// @Produce json
// @Success 200 {object} utils.APIResponse
// @Security BearerAuth
// @Router /auth/account [delete]
func (a *AuthController) DeleteAccount(c *gin.Context) {
	userID := c.GetString("user_id")

	if err := a.tripService.DeleteUserData(c.Request.Context(), userID); err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	a.scheduleService.Clear(c.Request.Context(), userID)

	utils.RespondSuccess(c, nil, "Account data deleted")
}
