package http

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/httplog/v2"
	"golang.org/x/crypto/bcrypt"

	"github.com/ANGRAJAKARNA/Build-codingLogic-AI/auth"
	"github.com/ANGRAJAKARNA/Build-codingLogic-AI/httpjson"
)

type AuthTokenResponse struct {
	Token string `json:"token"`
}

// authToken exchanges a pre-shared API key for a short-lived bearer token
// carrying the evaluate scope. Keys are compared against a bcrypt hash;
// the plaintext key is never stored server-side.
func (httpserver *HttpServer) authToken(w http.ResponseWriter, r *http.Request) {
	logger := httplog.LogEntry(r.Context())

	if len(httpserver.jwtKey) == 0 || len(httpserver.apiKeyBcrypt) == 0 {
		http.Error(w, http.StatusText(http.StatusNotFound), http.StatusNotFound)
		return
	}

	type request struct {
		ApiKey string `json:"api_key"`
		Client string `json:"client"`
	}
	var req request
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, http.StatusText(http.StatusBadRequest), http.StatusBadRequest)
		return
	}

	if err := bcrypt.CompareHashAndPassword(httpserver.apiKeyBcrypt, []byte(req.ApiKey)); err != nil {
		logger.Warn("rejected api key", "client", req.Client)
		http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return
	}

	token, err := auth.GenerateJWT(req.Client, []string{auth.ScopeEvaluate}, httpserver.jwtKey, 24*time.Hour)
	if err != nil {
		logger.Error("failed to sign token", "error", err)
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	httpjson.WriteSuccessJson(w, AuthTokenResponse{Token: token})
}
