// Package apitest provides an in-process fake of the dashboard backend for
// tests. It implements the auth and league data endpoints against in-memory
// state, with bcrypt-hashed passwords and opaque bearer tokens, so client
// behavior can be exercised without a real server.
package apitest

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"sync"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

const testBcryptCost = 4 // low cost for fast tests

type user struct {
	id           int
	email        string
	favoriteTeam string
	passwordHash []byte
}

// Server is a fake backend. All exported counters and captures are guarded
// by the same mutex as the state they describe.
type Server struct {
	*httptest.Server

	mu     sync.Mutex
	users  map[string]*user
	tokens map[string]string // token -> username
	nextID int

	forcedStatus int // one-shot status override for the next request

	SignupCalls    int
	LoginCalls     int
	MeCalls        int
	LastAuthHeader string
}

// New starts a fake backend. It is shut down via t.Cleanup-style Close by
// the caller.
func New() *Server {
	s := &Server{
		users:  make(map[string]*user),
		tokens: make(map[string]string),
		nextID: 1,
	}

	r := chi.NewRouter()
	r.Use(s.capture)

	r.Post("/users/signup", s.handleSignup)
	r.Post("/users/login", s.handleLogin)
	r.Get("/users/me", s.handleMe)

	r.Group(func(r chi.Router) {
		r.Use(s.requireAuth)
		r.Get("/teams/brasileirao", s.handleTeams)
		r.Get("/teams/{id}", s.handleTeamDetails)
		r.Get("/teams/{id}/matches", s.handleTeamMatches)
		r.Get("/indicadores", s.handleIndicators)
		r.Post("/importar", s.handleImport)
	})

	s.Server = httptest.NewServer(r)
	return s
}

// Seed registers a user directly, bypassing the HTTP surface.
func (s *Server) Seed(username, password, email, favoriteTeam string) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), testBcryptCost)
	if err != nil {
		panic(err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.users[username] = &user{
		id:           s.nextID,
		email:        email,
		favoriteTeam: favoriteTeam,
		passwordHash: hash,
	}
	s.nextID++
}

// IssueToken mints a valid bearer token for username.
func (s *Server) IssueToken(username string) string {
	token := uuid.NewString()

	s.mu.Lock()
	defer s.mu.Unlock()
	s.tokens[token] = username
	return token
}

// RevokeAll invalidates every issued token, so subsequent authenticated
// calls receive 401.
func (s *Server) RevokeAll() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.tokens = make(map[string]string)
}

// FailNext makes the next request answer with status and a generic detail
// body, regardless of endpoint.
func (s *Server) FailNext(status int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.forcedStatus = status
}

// capture records the Authorization header of every request and applies a
// pending one-shot forced status.
func (s *Server) capture(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		s.mu.Lock()
		s.LastAuthHeader = r.Header.Get("Authorization")
		forced := s.forcedStatus
		s.forcedStatus = 0
		s.mu.Unlock()

		if forced != 0 {
			writeJSON(w, forced, map[string]string{"detail": http.StatusText(forced)})
			return
		}
		next.ServeHTTP(w, r)
	})
}

// requireAuth rejects requests without a known bearer token.
func (s *Server) requireAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if s.authenticate(r) == "" {
			writeJSON(w, http.StatusUnauthorized, map[string]string{"detail": "not authenticated"})
			return
		}
		next.ServeHTTP(w, r)
	})
}

func (s *Server) authenticate(r *http.Request) string {
	header := r.Header.Get("Authorization")
	token, ok := strings.CutPrefix(header, "Bearer ")
	if !ok {
		return ""
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	return s.tokens[token]
}

func (s *Server) handleSignup(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	s.SignupCalls++
	s.mu.Unlock()

	var req struct {
		Username     string `json:"username"`
		Email        string `json:"email"`
		Password     string `json:"password"`
		FavoriteTeam string `json:"team_favorite"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"detail": "invalid request body"})
		return
	}

	s.mu.Lock()
	_, exists := s.users[req.Username]
	s.mu.Unlock()
	if exists {
		writeJSON(w, http.StatusBadRequest, map[string]string{"detail": "username already registered"})
		return
	}

	s.Seed(req.Username, req.Password, req.Email, req.FavoriteTeam)

	s.mu.Lock()
	u := s.users[req.Username]
	s.mu.Unlock()
	writeJSON(w, http.StatusOK, map[string]any{
		"id":            u.id,
		"username":      req.Username,
		"email":         u.email,
		"team_favorite": u.favoriteTeam,
	})
}

func (s *Server) handleLogin(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	s.LoginCalls++
	s.mu.Unlock()

	var req struct {
		Username string `json:"username"`
		Password string `json:"password"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"detail": "invalid request body"})
		return
	}

	s.mu.Lock()
	u := s.users[req.Username]
	s.mu.Unlock()

	if u == nil || bcrypt.CompareHashAndPassword(u.passwordHash, []byte(req.Password)) != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"detail": "invalid credentials"})
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{
		"access_token": s.IssueToken(req.Username),
		"token_type":   "bearer",
	})
}

func (s *Server) handleMe(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	s.MeCalls++
	s.mu.Unlock()

	username := s.authenticate(r)
	if username == "" {
		writeJSON(w, http.StatusUnauthorized, map[string]string{"detail": "not authenticated"})
		return
	}

	s.mu.Lock()
	u := s.users[username]
	s.mu.Unlock()

	writeJSON(w, http.StatusOK, map[string]any{
		"id":            u.id,
		"username":      username,
		"email":         u.email,
		"team_favorite": u.favoriteTeam,
	})
}

func (s *Server) handleTeams(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"count":   len(fixtureTeams),
		"filters": map[string]any{},
		"competition": map[string]any{
			"id": 2013, "name": "Campeonato Brasileiro Série A", "code": "BSA", "type": "LEAGUE",
		},
		"teams": fixtureTeams,
	})
}

func (s *Server) handleTeamDetails(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"detail": "invalid team id"})
		return
	}
	details, ok := fixtureTeamDetails[id]
	if !ok {
		writeJSON(w, http.StatusNotFound, map[string]string{"detail": "team not found"})
		return
	}
	writeJSON(w, http.StatusOK, details)
}

func (s *Server) handleTeamMatches(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"detail": "invalid team id"})
		return
	}
	matches, ok := fixtureMatches[id]
	if !ok {
		writeJSON(w, http.StatusNotFound, map[string]string{"detail": "team not found"})
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"count":   len(matches),
		"filters": map[string]any{},
		"matches": matches,
	})
}

func (s *Server) handleIndicators(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, fixtureIndicators)
}

func (s *Server) handleImport(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{
		"message":   "import completed",
		"timestamp": "2025-05-01T12:00:00Z",
	})
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}
