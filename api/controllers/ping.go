package controllers

import (
	"net/http"

	"github.com/velora-motors/storefront-backend/api/middleware"
	"github.com/velora-motors/storefront-backend/api/responses"
)

func PublicPing() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		responses.WriteSuccess(w, map[string]string{"scope": "public", "status": "ok"})
	}
}

func PrivatePing() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		payload := map[string]string{"scope": "private", "status": "ok"}
		if session := middleware.SessionIDFromContext(r.Context()); session != "" {
			payload["session_id"] = session
		}
		responses.WriteSuccess(w, payload)
	}
}
