package server

import (
	"log/slog"
	"net/http"

	"github.com/sanjayvyas/portfolio/internal/models"
)

func (s *Server) HandleLoginPage(w http.ResponseWriter, r *http.Request) {
	token := s.getSessionFromRequest(r)
	if s.validateSession(token) {
		http.Redirect(w, r, "/admin", http.StatusSeeOther)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := s.tmplFunc(w, "login.html", nil); err != nil {
		slog.Error("Failed to render login template", "error", err)
	}
}

func (s *Server) HandleLogin(w http.ResponseWriter, r *http.Request) {
	password := r.FormValue("password")

	valid, err := s.db.VerifyPassword(r.Context(), password)
	if err != nil {
		slog.Error("Failed to verify password", "error", err)
		s.renderError(w, http.StatusInternalServerError)
		return
	}

	if !valid {
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		if err := s.tmplFunc(w, "login.html", map[string]string{"Error": "Invalid password"}); err != nil {
			slog.Error("Failed to render login template", "error", err)
		}
		return
	}

	token := s.createSession()
	http.SetCookie(w, &http.Cookie{
		Name:     sessionCookie,
		Value:    token,
		Path:     "/",
		HttpOnly: true,
		MaxAge:   int(sessionTTL.Seconds()),
		SameSite: http.SameSiteStrictMode,
	})

	http.Redirect(w, r, "/admin", http.StatusSeeOther)
}

func (s *Server) HandleLogout(w http.ResponseWriter, r *http.Request) {
	token := s.getSessionFromRequest(r)
	s.deleteSession(token)

	http.SetCookie(w, &http.Cookie{
		Name:     sessionCookie,
		Value:    "",
		Path:     "/",
		HttpOnly: true,
		MaxAge:   -1,
	})

	http.Redirect(w, r, "/", http.StatusSeeOther)
}

// HandleAdmin shows the contact inbox and the profile form.
func (s *Server) HandleAdmin(w http.ResponseWriter, r *http.Request) {
	messages, err := s.db.ListContactMessages(r.Context())
	if err != nil {
		slog.Error("Failed to load contact messages", "error", err)
		s.renderError(w, http.StatusInternalServerError)
		return
	}

	unread := 0
	for _, m := range messages {
		if !m.Read {
			unread++
		}
	}

	data := models.AdminPageData{
		Profile:  s.profile(r.Context()),
		Messages: messages,
		Unread:   unread,
		Message:  r.URL.Query().Get("message"),
		Error:    r.URL.Query().Get("error"),
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := s.tmplFunc(w, "admin.html", data); err != nil {
		slog.Error("Failed to render admin template", "error", err)
	}
}

func (s *Server) HandleMarkRead(w http.ResponseWriter, r *http.Request) {
	id := r.FormValue("id")
	read := r.FormValue("read") != "false"

	if id == "" {
		http.Redirect(w, r, "/admin?error=Missing+message+ID", http.StatusSeeOther)
		return
	}

	if err := s.db.MarkContactMessageRead(r.Context(), id, read); err != nil {
		slog.Error("Failed to update message", "id", id, "error", err)
		http.Redirect(w, r, "/admin?error=Failed+to+update", http.StatusSeeOther)
		return
	}

	http.Redirect(w, r, "/admin?message=Message+updated", http.StatusSeeOther)
}

func (s *Server) HandleDeleteMessage(w http.ResponseWriter, r *http.Request) {
	id := r.FormValue("id")

	if id == "" {
		http.Redirect(w, r, "/admin?error=Missing+message+ID", http.StatusSeeOther)
		return
	}

	if err := s.db.DeleteContactMessage(r.Context(), id); err != nil {
		slog.Error("Failed to delete message", "id", id, "error", err)
		http.Redirect(w, r, "/admin?error=Failed+to+delete", http.StatusSeeOther)
		return
	}

	http.Redirect(w, r, "/admin?message=Message+deleted", http.StatusSeeOther)
}

func (s *Server) HandleUpdateProfile(w http.ResponseWriter, r *http.Request) {
	profile := models.Profile{
		Name:        r.FormValue("name"),
		Title:       r.FormValue("title"),
		Subtitle:    r.FormValue("subtitle"),
		Description: r.FormValue("description"),
		Avatar:      r.FormValue("avatar"),
		Email:       r.FormValue("email"),
		Location:    r.FormValue("location"),
	}

	if profile.Name == "" {
		http.Redirect(w, r, "/admin?error=Name+is+required", http.StatusSeeOther)
		return
	}

	if err := s.db.UpdateProfile(r.Context(), profile); err != nil {
		slog.Error("Failed to update profile", "error", err)
		http.Redirect(w, r, "/admin?error=Failed+to+save", http.StatusSeeOther)
		return
	}

	http.Redirect(w, r, "/admin?message=Profile+updated", http.StatusSeeOther)
}

func (s *Server) HandleUpdatePassword(w http.ResponseWriter, r *http.Request) {
	newPassword := r.FormValue("new_password")

	if len(newPassword) < 6 {
		http.Redirect(w, r, "/admin?error=Password+must+be+at+least+6+characters", http.StatusSeeOther)
		return
	}

	if err := s.db.SetPassword(r.Context(), newPassword); err != nil {
		slog.Error("Failed to update password", "error", err)
		http.Redirect(w, r, "/admin?error=Failed+to+save", http.StatusSeeOther)
		return
	}

	http.Redirect(w, r, "/admin?message=Password+updated", http.StatusSeeOther)
}

// HandleReload drops the cached record lists so the next page view refetches them.
func (s *Server) HandleReload(w http.ResponseWriter, r *http.Request) {
	s.store.InvalidateProjects()
	s.store.InvalidateExperience()
	slog.Info("Record cache cleared")

	http.Redirect(w, r, "/admin?message=Projects+and+experience+will+reload", http.StatusSeeOther)
}
