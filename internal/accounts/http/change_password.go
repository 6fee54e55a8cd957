package http

import (
	"errors"
	"net/http"

	"github.com/openfolio/accounts/internal/accounts/service"
	"github.com/openfolio/accounts/pkg/accountsdk"
	"github.com/openfolio/accounts/pkg/httpx"
	"github.com/openfolio/accounts/pkg/slogx"
)

type ChangePasswordHandler struct {
	AccountService *service.AccountService
}

// ServeHTTP godoc
//
//	@Summary		Change Password Endpoint
//	@Description	Replace the account secret after verifying the current one. Unlike login,
//	@Description	a wrong current secret is a hard 400 here: the caller already proved they
//	@Description	know the identity exists.
//	@Tags			Accounts
//	@Accept			json
//	@Produce		json
//	@Param			request	body		accountsdk.ChangePasswordRequest	true	"identity, currentSecret, newSecret"
//	@Success		200		{object}	accountsdk.Response					"success"
//	@Failure		400		{object}	accountsdk.Response					"missing field or wrong current secret"
//	@Failure		404		{object}	accountsdk.Response					"no such account"
//	@Failure		500		{object}	accountsdk.Response					"internal server error"
//	@Router			/api/change-password [post].
func (h *ChangePasswordHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	var req accountsdk.ChangePasswordRequest
	if err := httpx.DecodeJSON(r, &req); err != nil {
		httpx.WriteJSON(w, http.StatusBadRequest, accountsdk.Response{
			Success: false,
			Message: "invalid request body",
		})
		return
	}

	if req.Identity == "" || req.CurrentSecret == "" || req.NewSecret == "" {
		httpx.WriteJSON(w, http.StatusBadRequest, accountsdk.Response{
			Success: false,
			Message: "identity, currentSecret and newSecret are required",
		})
		return
	}

	err := h.AccountService.ChangePassword(ctx, req.Identity, req.CurrentSecret, req.NewSecret)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrAccountNotFound):
			httpx.WriteJSON(w, http.StatusNotFound, accountsdk.Response{
				Success: false,
				Message: "account not found",
			})
		case errors.Is(err, service.ErrInvalidCredentials):
			httpx.WriteJSON(w, http.StatusBadRequest, accountsdk.Response{
				Success: false,
				Message: "current password is incorrect",
			})
		case errors.Is(err, service.ErrInvalidInput):
			httpx.WriteJSON(w, http.StatusBadRequest, accountsdk.Response{
				Success: false,
				Message: "identity, currentSecret and newSecret are required",
			})
		default:
			log.Error("failed to change password", "err", err)
			httpx.WriteJSON(w, http.StatusInternalServerError, accountsdk.Response{
				Success: false,
				Message: "internal server error",
			})
		}
		return
	}

	httpx.WriteJSON(w, http.StatusOK, accountsdk.Response{Success: true})
}
