package http

import (
	"errors"
	"net/http"

	"github.com/openfolio/accounts/internal/accounts/service"
	"github.com/openfolio/accounts/pkg/accountsdk"
	"github.com/openfolio/accounts/pkg/httpx"
	"github.com/openfolio/accounts/pkg/slogx"
)

type LoginHandler struct {
	AccountService *service.AccountService
}

// ServeHTTP godoc
//
//	@Summary		Login Endpoint
//	@Description	Verify an identity/secret pair. Invalid credentials are a soft failure:
//	@Description	the response is 200 with success=false and a message that is identical for
//	@Description	an unknown identity and a wrong secret.
//	@Tags			Accounts
//	@Accept			json
//	@Produce		json
//	@Param			request	body		accountsdk.LoginRequest	true	"identity, secret"
//	@Success		200		{object}	accountsdk.Response		"success, or success=false with message"
//	@Failure		400		{object}	accountsdk.Response		"missing identity or secret"
//	@Failure		500		{object}	accountsdk.Response		"internal server error"
//	@Router			/api/login [post].
func (h *LoginHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	var req accountsdk.LoginRequest
	if err := httpx.DecodeJSON(r, &req); err != nil {
		httpx.WriteJSON(w, http.StatusBadRequest, accountsdk.Response{
			Success: false,
			Message: "invalid request body",
		})
		return
	}

	if req.Identity == "" || req.Secret == "" {
		httpx.WriteJSON(w, http.StatusBadRequest, accountsdk.Response{
			Success: false,
			Message: "identity and secret are required",
		})
		return
	}

	if err := h.AccountService.Authenticate(ctx, req.Identity, req.Secret); err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidCredentials):
			// Soft failure on purpose: a transport-level error code would
			// reveal whether the identity exists.
			httpx.WriteJSON(w, http.StatusOK, accountsdk.Response{
				Success: false,
				Message: "invalid identity or password",
			})
		case errors.Is(err, service.ErrInvalidInput):
			httpx.WriteJSON(w, http.StatusBadRequest, accountsdk.Response{
				Success: false,
				Message: "identity and secret are required",
			})
		default:
			log.Error("failed to authenticate account", "err", err)
			httpx.WriteJSON(w, http.StatusInternalServerError, accountsdk.Response{
				Success: false,
				Message: "internal server error",
			})
		}
		return
	}

	httpx.WriteJSON(w, http.StatusOK, accountsdk.Response{Success: true})
}
