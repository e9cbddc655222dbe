// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package httpapi exposes a read-only HTTP query surface over a run's
// persisted history — the "query API (external)" collaborator spec.md
// §6 describes as reading what store writes, never the reverse. It
// depends on package store and package engine; store and engine never
// import httpapi.
//
// Grounded on jndunlap-gohypo's ui/app.go for the chi.Mux + middleware
// + JSON-response shape (router, middleware.Logger/Recoverer, a small
// renderJSON helper).
package httpapi

import (
	"encoding/json"
	"log"
	"net/http"

	"github.com/cpmech/clusterdyn/store"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/google/uuid"
)

// API is a read-only HTTP query server over a Store.
type API struct {
	router *chi.Mux
	store  *store.Store
}

// New builds an API backed by s, with routes already wired.
func New(s *store.Store) *API {
	a := &API{router: chi.NewRouter(), store: s}
	a.router.Use(middleware.Logger)
	a.router.Use(middleware.Recoverer)
	a.router.Get("/runs/{runID}/history", a.handleHistory)
	return a
}

// Router exposes the underlying handler for http.ListenAndServe or a
// test httptest.Server.
func (a *API) Router() http.Handler { return a.router }

func (a *API) handleHistory(w http.ResponseWriter, r *http.Request) {
	runID, err := uuid.Parse(chi.URLParam(r, "runID"))
	if err != nil {
		http.Error(w, "invalid run id", http.StatusBadRequest)
		return
	}
	history, err := a.store.History(runID)
	if err != nil {
		http.Error(w, "failed to load run history", http.StatusInternalServerError)
		return
	}
	a.renderJSON(w, history)
}

func (a *API) renderJSON(w http.ResponseWriter, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(data); err != nil {
		log.Printf("httpapi: JSON encoding error: %v", err)
		http.Error(w, "JSON encoding error", http.StatusInternalServerError)
	}
}
