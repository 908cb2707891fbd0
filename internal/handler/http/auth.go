package http

import (
	"encoding/json"
	"fmt"
	"net/http"

	"stockfolio/internal/logger"
	"stockfolio/internal/utils"
	"stockfolio/models"
)

// formDescription advertises the fields a client must submit to a
// registration or login endpoint. The service renders no templates; GET
// requests to the form routes return this machine-readable description
// instead.
type formDescription struct {
	Action string   `json:"action"`
	Method string   `json:"method"`
	Fields []string `json:"fields"`
}

func (h *Handler) registerForm(w http.ResponseWriter, r *http.Request) {
	utils.WriteJSON(w, formDescription{
		Action: "/register",
		Method: http.MethodPost,
		Fields: []string{"email", "password", "first_name", "last_name"},
	}, http.StatusOK)
}

func (h *Handler) loginForm(w http.ResponseWriter, r *http.Request) {
	utils.WriteJSON(w, formDescription{
		Action: "/login",
		Method: http.MethodPost,
		Fields: []string{"email", "password"},
	}, http.StatusOK)
}

func (h *Handler) register(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var user models.User
	if err := json.NewDecoder(r.Body).Decode(&user); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	registeredUser, err := h.services.AuthService.RegisterUser(ctx, user)
	if err != nil {
		log.Err(err).Msg("user registration failed")
		writeError(w, err)
		return
	}

	token, err := h.services.AuthService.CreateToken(ctx, registeredUser)
	if err != nil {
		log.Err(err).Msg("creation of token failed")
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	h.establishSession(w, token)
	utils.WriteJSON(w, registeredUser, http.StatusOK)
}

func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var user models.User
	if err := json.NewDecoder(r.Body).Decode(&user); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	foundUser, err := h.services.AuthService.Login(ctx, user)
	if err != nil {
		log.Err(err).Msg("user login failed")
		writeError(w, err)
		return
	}

	log.Debug().Int64("id", foundUser.UserID).Msg("user successfully logged in")

	token, err := h.services.AuthService.CreateToken(ctx, foundUser)
	if err != nil {
		log.Err(err).Msg("creation of token failed")
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	h.establishSession(w, token)
	utils.WriteJSON(w, foundUser, http.StatusOK)
}

func (h *Handler) logout(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	http.SetCookie(w, &http.Cookie{
		Name:     sessionCookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
	})

	userID, _ := utils.GetUserIDFromContext(r.Context())
	log.Info().Int64("user_id", userID).Msg("user logged out")

	http.Redirect(w, r, "/login", http.StatusFound)
}

// establishSession delivers a freshly issued session token to the client
// both as an HttpOnly cookie and as a bearer Authorization header, so both
// browser and API clients can continue the session.
func (h *Handler) establishSession(w http.ResponseWriter, token models.Token) {
	http.SetCookie(w, &http.Cookie{
		Name:     sessionCookieName,
		Value:    token.SignedString,
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
	w.Header().Set("Authorization", fmt.Sprintf("Bearer %s", token.SignedString))
}
