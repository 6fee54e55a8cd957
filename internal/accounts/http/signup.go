package http

import (
	"errors"
	"net/http"

	"github.com/openfolio/accounts/internal/accounts/service"
	"github.com/openfolio/accounts/pkg/accountsdk"
	"github.com/openfolio/accounts/pkg/httpx"
	"github.com/openfolio/accounts/pkg/slogx"
)

type SignupHandler struct {
	AccountService *service.AccountService
}

// ServeHTTP godoc
//
//	@Summary		Register Account Endpoint
//	@Description	Create a new account from an identity (email) and a secret
//	@Tags			Accounts
//	@Accept			json
//	@Produce		json
//	@Param			request	body		accountsdk.SignupRequest	true	"identity, secret"
//	@Success		201		{object}	accountsdk.Response			"success"
//	@Failure		400		{object}	accountsdk.Response			"missing identity or secret"
//	@Failure		409		{object}	accountsdk.Response			"identity already registered"
//	@Failure		500		{object}	accountsdk.Response			"internal server error"
//	@Router			/api/signup [post].
func (h *SignupHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	var req accountsdk.SignupRequest
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

	if err := h.AccountService.Register(ctx, req.Identity, req.Secret); err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidInput):
			httpx.WriteJSON(w, http.StatusBadRequest, accountsdk.Response{
				Success: false,
				Message: "identity and secret are required",
			})
		case errors.Is(err, service.ErrAccountExists):
			httpx.WriteJSON(w, http.StatusConflict, accountsdk.Response{
				Success: false,
				Message: "an account with that identity already exists",
			})
		default:
			log.Error("failed to register account", "err", err)
			httpx.WriteJSON(w, http.StatusInternalServerError, accountsdk.Response{
				Success: false,
				Message: "internal server error",
			})
		}
		return
	}

	httpx.WriteJSON(w, http.StatusCreated, accountsdk.Response{Success: true})
}
