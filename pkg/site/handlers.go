package site

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/matzehuels/folio/pkg/errors"
	"github.com/matzehuels/folio/pkg/nav"
	"github.com/matzehuels/folio/pkg/observability"
	"github.com/matzehuels/folio/pkg/render/resume"
	"github.com/matzehuels/folio/pkg/session"
	"github.com/matzehuels/folio/pkg/theme"
)

const surface = "site"

type sessionKey struct{}

// withSession loads the visitor's session, creating one when the cookie is
// missing, malformed or expired.
func (s *Server) withSession(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		var sess *session.Session
		if c, err := r.Cookie(session.CookieName); err == nil && session.ValidID(c.Value) {
			got, err := s.sessions.Get(ctx, c.Value)
			if err != nil {
				s.logger.Warn("session lookup failed", "error", err)
			}
			sess = got
		}
		if sess == nil {
			sess = session.New(s.cfg.SessionTTL)
			sess.Theme = s.initial.ID
		} else {
			sess.Touch(s.cfg.SessionTTL)
		}
		if err := s.sessions.Set(ctx, sess); err != nil {
			s.logger.Warn("session save failed", "error", err)
		}
		http.SetCookie(w, &http.Cookie{
			Name:     session.CookieName,
			Value:    sess.ID,
			Path:     "/",
			Expires:  sess.ExpiresAt,
			HttpOnly: true,
			SameSite: http.SameSiteLaxMode,
		})
		next.ServeHTTP(w, r.WithContext(context.WithValue(ctx, sessionKey{}, sess)))
	})
}

func visitor(ctx context.Context) *session.Session {
	sess, _ := ctx.Value(sessionKey{}).(*session.Session)
	return sess
}

// controller rebuilds the visitor's navigation state. The stored index is
// clamped, so a session outlives a shrinking document.
func (s *Server) controller(sess *session.Session) *nav.Controller {
	c := nav.NewController(s.sections)
	c.JumpTo(sess.Index)
	return c
}

// navigate applies move to the visitor's controller and redirects home.
func (s *Server) navigate(w http.ResponseWriter, r *http.Request, intent nav.Intent, move func(*nav.Controller) bool) {
	ctx := r.Context()
	sess := visitor(ctx)
	c := s.controller(sess)
	c.OnChange(func(ch nav.Change) {
		observability.Navigation().OnSectionChange(ctx, surface, ch.From, ch.To, ch.Section)
	})
	move(c)
	observability.Navigation().OnGesture(ctx, surface, "click", intent.String())
	sess.Index = c.Current()
	if err := s.sessions.Set(ctx, sess); err != nil {
		s.logger.Warn("session save failed", "error", err)
	}
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

func (s *Server) handleNext(w http.ResponseWriter, r *http.Request) {
	s.navigate(w, r, nav.Advance, (*nav.Controller).Advance)
}

func (s *Server) handlePrev(w http.ResponseWriter, r *http.Request) {
	s.navigate(w, r, nav.Retreat, (*nav.Controller).Retreat)
}

func (s *Server) handleJump(w http.ResponseWriter, r *http.Request) {
	index, err := strconv.Atoi(chi.URLParam(r, "index"))
	if err != nil {
		writeError(w, errors.New(errors.ErrCodeInvalidInput, "section index must be a number"))
		return
	}
	s.navigate(w, r, nav.None, func(c *nav.Controller) bool { return c.JumpTo(index) })
}

func (s *Server) handleTheme(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	id := chi.URLParam(r, "id")
	if _, ok := theme.Find(s.themes, id); !ok {
		writeError(w, errors.New(errors.ErrCodeInvalidTheme, "unknown theme %q", id))
		return
	}
	sess := visitor(ctx)
	if sess.Theme != id {
		sess.Theme = id
		observability.Navigation().OnThemeChange(ctx, surface, id)
		if err := s.sessions.Set(ctx, sess); err != nil {
			s.logger.Warn("session save failed", "error", err)
		}
	}
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

// theme returns the visitor's theme, falling back to the document default.
func (s *Server) theme(sess *session.Session) theme.Theme {
	if t, ok := theme.Find(s.themes, sess.Theme); ok {
		return t
	}
	return s.initial
}

func (s *Server) handlePage(w http.ResponseWriter, r *http.Request) {
	sess := visitor(r.Context())
	body, err := s.page(s.controller(sess), s.theme(sess))
	if err != nil {
		writeError(w, errors.Wrap(errors.ErrCodeInternal, err, "render page"))
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Write(body)
}

var webFormats = map[string]resume.Format{
	"html": resume.FormatHTML,
	"txt":  resume.FormatText,
	"svg":  resume.FormatSVG,
}

func (s *Server) handleResume(w http.ResponseWriter, r *http.Request) {
	if !s.doc.Meta.ResumeExport.Enabled {
		writeError(w, errors.New(errors.ErrCodeNotFound, "resume export is disabled"))
		return
	}
	name := strings.ToLower(chi.URLParam(r, "format"))
	f, ok := webFormats[name]
	if !ok {
		writeError(w, errors.New(errors.ErrCodeInvalidFormat, "resume format %q: must be html, txt or svg", name))
		return
	}
	sess := visitor(r.Context())
	body, err := resume.Render(r.Context(), s.doc, f, resume.Options{Theme: s.theme(sess), Stars: s.cfg.Stars})
	if err != nil {
		writeError(w, err)
		return
	}
	w.Header().Set("Content-Type", f.ContentType())
	w.Write(body)
}

// State is the JSON shape of /api/state.
type State struct {
	Sections    []string `json:"sections"`
	Current     int      `json:"current"`
	Section     string   `json:"section"`
	HasNext     bool     `json:"hasNext"`
	HasPrevious bool     `json:"hasPrevious"`
	Theme       string   `json:"theme"`
}

func (s *Server) handleState(w http.ResponseWriter, r *http.Request) {
	sess := visitor(r.Context())
	c := s.controller(sess)
	sections := c.Sections()
	if sections == nil {
		sections = []string{}
	}
	writeJSON(w, http.StatusOK, State{
		Sections:    sections,
		Current:     c.Current(),
		Section:     c.Section(),
		HasNext:     c.HasNext(),
		HasPrevious: c.HasPrevious(),
		Theme:       s.theme(sess).ID,
	})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, err error) {
	status := http.StatusInternalServerError
	switch errors.GetCode(err) {
	case errors.ErrCodeInvalidInput, errors.ErrCodeInvalidFormat, errors.ErrCodeInvalidTheme:
		status = http.StatusBadRequest
	case errors.ErrCodeNotFound:
		status = http.StatusNotFound
	case errors.ErrCodeUnsupported:
		status = http.StatusNotImplemented
	}
	writeJSON(w, status, map[string]string{
		"error": errors.UserMessage(err),
		"code":  string(errors.GetCode(err)),
	})
}
