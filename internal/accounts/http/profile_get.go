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

type ProfileGetHandler struct {
	AccountService *service.AccountService
}

// ServeHTTP godoc
//
//	@Summary		Get Profile Endpoint
//	@Description	Return the sanitized profile for an identity. The credential hash is never included.
//	@Tags			Profile
//	@Produce		json
//	@Param			identity	query		string						true	"account identity (email)"
//	@Success		200			{object}	accountsdk.ProfileResponse	"success, profile"
//	@Failure		400			{object}	accountsdk.Response			"missing identity"
//	@Failure		404			{object}	accountsdk.Response			"no such account"
//	@Failure		500			{object}	accountsdk.Response			"internal server error"
//	@Router			/api/profile [get].
func (h *ProfileGetHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	identity := r.URL.Query().Get("identity")
	if identity == "" {
		httpx.WriteJSON(w, http.StatusBadRequest, accountsdk.Response{
			Success: false,
			Message: "identity is required",
		})
		return
	}

	profile, err := h.AccountService.GetProfile(ctx, identity)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrAccountNotFound):
			httpx.WriteJSON(w, http.StatusNotFound, accountsdk.Response{
				Success: false,
				Message: "account not found",
			})
		case errors.Is(err, service.ErrInvalidInput):
			httpx.WriteJSON(w, http.StatusBadRequest, accountsdk.Response{
				Success: false,
				Message: "identity is required",
			})
		default:
			log.Error("failed to load profile", "err", err)
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

// sdkProfile maps the domain projection onto the wire type shared with the SDK.
func sdkProfile(p domain.Profile) *accountsdk.Profile {
	return &accountsdk.Profile{
		Identity:         p.Identity,
		DisplayName:      p.DisplayName,
		FullName:         p.FullName,
		DateOfBirth:      p.DateOfBirth,
		Gender:           p.Gender,
		AvatarType:       p.AvatarType,
		Company:          p.Company,
		University:       p.University,
		Profession:       p.Profession,
		ProfileCompleted: p.ProfileCompleted,
	}
}
