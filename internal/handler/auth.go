// internal/handler/auth.go
package handler

import (
	"net/http"

	"github.com/anz-davar/giuson/internal/model"
	"github.com/anz-davar/giuson/internal/repository"
	"github.com/anz-davar/giuson/internal/service"
)

type AuthHandler struct {
	store       repository.Store
	authService *service.AuthService
}

func NewAuthHandler(store repository.Store, authService *service.AuthService) *AuthHandler {
	return &AuthHandler{
		store:       store,
		authService: authService,
	}
}

type RegisterResponse struct {
	Message string     `json:"message"`
	UserID  uint       `json:"user_id"`
	Role    model.Role `json:"role"`
}

func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	body, err := readBody(w, r)
	if err != nil {
		handleError(w, r, "Registration error", err)
		return
	}

	reg, err := service.DecodeRegistration(body)
	if err != nil {
		handleError(w, r, "Registration error", err)
		return
	}

	var account *model.Account
	err = repository.WithinTransaction(r.Context(), h.store, func(uow repository.UnitOfWork) error {
		var err error
		account, err = h.authService.Register(r.Context(), uow, reg)
		return err
	})
	if err != nil {
		handleError(w, r, "Registration error", err)
		return
	}

	respondWithJSON(w, http.StatusCreated, RegisterResponse{
		Message: "User registered successfully",
		UserID:  account.User.ID,
		Role:    account.Role(),
	})
}

func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var input service.LoginInput
	if err := decodeJSON(w, r, &input, false); err != nil {
		handleError(w, r, "Login error", err)
		return
	}

	output, err := h.authService.Login(r.Context(), h.store.Session(r.Context()), input)
	if err != nil {
		handleError(w, r, "Login error", err)
		return
	}

	respondWithJSON(w, http.StatusOK, output)
}
