package http

import (
	"errors"
	"net/http"

	"github.com/openfolio/accounts/internal/accounts/domain"
	"github.com/openfolio/accounts/internal/accounts/service"
	"github.com/openfolio/accounts/pkg/accountsdk"
	"github.com/openfolio/accounts/pkg/httpx"
	"github.com/openfolio/accounts/pkg/slogx"
)

type ProfileUpdateHandler struct {
	AccountService *service.AccountService
}

// ServeHTTP godoc
//
//	@Summary		Update Profile Endpoint
//	@Description	Overwrite the whitelisted profile fields. This is a full replace: fields
//	@Description	omitted from the request are cleared, so clients must resend the entire
//	@Description	profile. The first successful update marks the profile completed.
//	@Tags			Profile
//	@Accept			json
//	@Produce		json
//	@Param			request	body		accountsdk.UpdateProfileRequest	true	"identity plus whitelisted fields"
//	@Success		200		{object}	accountsdk.ProfileResponse		"success, updated profile"
//	@Failure		400		{object}	accountsdk.Response				"missing identity or invalid gender"
//	@Failure		404		{object}	accountsdk.Response				"no such account"
//	@Failure		500		{object}	accountsdk.Response				"internal server error"
//	@Router			/api/profile [post].
func (h *ProfileUpdateHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	var req accountsdk.UpdateProfileRequest
	if err := httpx.DecodeJSON(r, &req); err != nil {
		httpx.WriteJSON(w, http.StatusBadRequest, accountsdk.Response{
			Success: false,
			Message: "invalid request body",
		})
		return
	}

	if req.Identity == "" {
		httpx.WriteJSON(w, http.StatusBadRequest, accountsdk.Response{
			Success: false,
			Message: "identity is required",
		})
		return
	}

	update := domain.ProfileUpdate{
		DisplayName: req.DisplayName,
		FullName:    req.FullName,
		DateOfBirth: req.DateOfBirth,
		Gender:      req.Gender,
		AvatarType:  req.AvatarType,
		Company:     req.Company,
		University:  req.University,
		Profession:  req.Profession,
	}

	profile, err := h.AccountService.UpdateProfile(ctx, req.Identity, update)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrAccountNotFound):
			httpx.WriteJSON(w, http.StatusNotFound, accountsdk.Response{
				Success: false,
				Message: "account not found",
			})
		case errors.Is(err, service.ErrInvalidGender):
			httpx.WriteJSON(w, http.StatusBadRequest, accountsdk.Response{
				Success: false,
				Message: "gender must be one of male, female, nonbinary, unspecified",
			})
		case errors.Is(err, service.ErrInvalidInput):
			httpx.WriteJSON(w, http.StatusBadRequest, accountsdk.Response{
				Success: false,
				Message: "identity is required",
			})
		default:
			log.Error("failed to update profile", "err", err)
			httpx.WriteJSON(w, http.StatusInternalServerError, accountsdk.Response{
				Success: false,
				Message: "internal server error",
			})
		}
		return
	}

	httpx.WriteJSON(w, http.StatusOK, accountsdk.ProfileResponse{
		Success: true,
		Profile: sdkProfile(profile),
	})
}
