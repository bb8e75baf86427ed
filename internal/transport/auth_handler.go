package transport

import (
	"encoding/json"
	"net/http"

	"printmill-be/internal/session"
	"printmill-be/internal/user"
	"printmill-be/internal/utils"
)

type AuthHandler struct {
	users    user.Service
	sessions session.Service
}

func NewAuthHandler(users user.Service, sessions session.Service) *AuthHandler {
	return &AuthHandler{users: users, sessions: sessions}
}

type RegisterRequestDTO struct {
	FullName    string `json:"full_name"`
	Mobile      string `json:"mobile"`
	Email       string `json:"email"`
	Password    string `json:"password"`
	AddressLine string `json:"address_line"`
	City        string `json:"city"`
	Pincode     string `json:"pincode"`
}

type LoginRequestDTO struct {
	Identifier string `json:"identifier"`
	Password   string `json:"password"`
}

type UserDTO struct {
	ID        string         `json:"id"`
	FullName  string         `json:"full_name"`
	Email     string         `json:"email"`
	Mobile    string         `json:"mobile"`
	Addresses []user.Address `json:"addresses"`
}

type AuthResponseDTO struct {
	Token string  `json:"token"`
	User  UserDTO `json:"user"`
}

func toUserDTO(u *user.User) UserDTO {
	addresses := u.Addresses
	if addresses == nil {
		addresses = []user.Address{}
	}
	return UserDTO{
		ID:        u.ID,
		FullName:  u.FullName,
		Email:     u.Email,
		Mobile:    u.Mobile,
		Addresses: addresses,
	}
}

// POST /auth/register
func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req RegisterRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid JSON body")
		return
	}

	u, err := h.users.Register(r.Context(), user.RegisterInput{
		FullName:    req.FullName,
		Mobile:      req.Mobile,
		Email:       req.Email,
		Password:    req.Password,
		AddressLine: req.AddressLine,
		City:        req.City,
		Pincode:     req.Pincode,
	})
	if err != nil {
		respondServiceError(w, err)
		return
	}

	sess, err := h.sessions.Issue(r.Context(), u.ID)
	if err != nil {
		respondServiceError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, AuthResponseDTO{Token: sess.Token, User: toUserDTO(u)})
}

// POST /auth/login
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req LoginRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid JSON body")
		return
	}

	u, err := h.users.Login(r.Context(), req.Identifier, req.Password)
	if err != nil {
		respondServiceError(w, err)
		return
	}

	sess, err := h.sessions.Issue(r.Context(), u.ID)
	if err != nil {
		respondServiceError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, AuthResponseDTO{Token: sess.Token, User: toUserDTO(u)})
}

// GET /me
func (h *AuthHandler) Me(w http.ResponseWriter, r *http.Request) {
	u, ok := utils.GetUserFromContext(r.Context())
	if !ok {
		respondError(w, http.StatusUnauthorized, "Not authenticated")
		return
	}

	respondJSON(w, http.StatusOK, toUserDTO(u))
}
