package server

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/go-playground/validator/v10"

	"github.com/jonathan/interview-prep/internal/rendering"
	"github.com/jonathan/interview-prep/internal/session"
	"github.com/jonathan/interview-prep/internal/types"
)

// maxFormBytes bounds the POST /generate body.
const maxFormBytes = 256 << 10

var fieldLabels = map[string]string{
	"JobTitle":       "Job Title",
	"CompanyWebsite": "Company Website",
	"JDText":         "JD",
	"ResumeText":     "Resume",
	"Stage":          "Interview Stage",
}

// handleHome renders the input view, pre-filled from the current session if there is one.
func (s *Server) handleHome(w http.ResponseWriter, r *http.Request) {
	form := rendering.FormValues{}
	if sub, err := s.loadSubmission(r); err == nil {
		form = formFromSubmission(sub)
	} else if HTTPStatus(err) != http.StatusNotFound {
		s.log.Warn("failed to load session for input view", "error", err)
	}
	s.renderHome(w, http.StatusOK, form, nil)
}

// handleGenerate validates the form, stores the submission, and redirects to the results view.
func (s *Server) handleGenerate(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxFormBytes)
	if err := r.ParseForm(); err != nil {
		status := HTTPStatus(err)
		if status == http.StatusInternalServerError {
			status = http.StatusBadRequest
		}
		s.renderHome(w, status, rendering.FormValues{}, []string{"The form could not be read. Shorten your inputs and try again."})
		return
	}

	form := rendering.FormValues{
		JobTitle:       r.PostFormValue("job_title"),
		CompanyWebsite: r.PostFormValue("company_website"),
		JDText:         r.PostFormValue("jd_text"),
		ResumeText:     r.PostFormValue("resume_text"),
	}

	stage, err := types.ParseStage(r.PostFormValue("stage"))
	if err != nil {
		s.renderHome(w, http.StatusBadRequest, form, []string{"Please choose an interview stage."})
		return
	}
	form.Stage = stage

	sub := types.NewSubmission(form.JobTitle, form.CompanyWebsite, form.JDText, form.ResumeText, stage, s.now())
	if err := sub.Validate(); err != nil {
		s.renderHome(w, http.StatusBadRequest, form, validationMessages(err))
		return
	}

	token, err := s.store.Save(r.Context(), sub)
	if err != nil {
		var tooLarge *session.PayloadTooLargeError
		if errors.As(err, &tooLarge) {
			s.renderHome(w, http.StatusRequestEntityTooLarge, form,
				[]string{"Your inputs are too long to keep in this session. Shorten the JD or resume and try again."})
			return
		}
		s.log.Error("failed to save submission", "error", err, "stage", stage)
		http.Error(w, "Failed to save your inputs. Please try again.", http.StatusInternalServerError)
		return
	}

	http.SetCookie(w, s.sessionCookie(token))
	http.Redirect(w, r, "/results", http.StatusSeeOther)
}

// handleResults renders the bundle for the session's submission. Any failure to read
// the session falls back to the empty state.
func (s *Server) handleResults(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Cache-Control", "no-store")
	w.Header().Set("X-Robots-Tag", "noindex, follow")

	sub, err := s.loadSubmission(r)
	if err != nil {
		if HTTPStatus(err) != http.StatusNotFound {
			s.log.Error("failed to load session", "error", err)
		}
		s.renderHTML(w, http.StatusOK, s.renderer.Empty)
		return
	}

	bundle, err := s.content.Generate(sub.Stage, sub.JobTitle)
	if err != nil {
		s.log.Error("failed to generate bundle", "error", err, "stage", sub.Stage)
		http.Error(w, "Interview content is unavailable.", HTTPStatus(err))
		return
	}
	faqs, err := s.content.FAQs(sub.Stage)
	if err != nil {
		s.log.Error("failed to load FAQs", "error", err, "stage", sub.Stage)
		http.Error(w, "Interview content is unavailable.", HTTPStatus(err))
		return
	}

	s.renderHTML(w, http.StatusOK, func(out io.Writer) error {
		return s.renderer.Results(out, sub, bundle, faqs)
	})
}

// handleCopy returns the plain-text export of one results section.
func (s *Server) handleCopy(w http.ResponseWriter, r *http.Request) {
	section, err := rendering.ParseSection(r.PathValue("section"))
	if err != nil {
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}

	sub, err := s.loadSubmission(r)
	if err != nil {
		if HTTPStatus(err) != http.StatusNotFound {
			s.log.Error("failed to load session", "error", err)
		}
		s.errorResponse(w, http.StatusNotFound, "No input found. Please go back and click “Generate Answers” again.")
		return
	}

	bundle, err := s.content.Generate(sub.Stage, sub.JobTitle)
	if err != nil {
		s.log.Error("failed to generate bundle", "error", err, "stage", sub.Stage)
		s.errorResponse(w, HTTPStatus(err), "interview content is unavailable")
		return
	}

	text, err := rendering.Export(bundle, section)
	if err != nil {
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}

	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.Header().Set("Cache-Control", "no-store")
	w.WriteHeader(http.StatusOK)
	_, _ = io.WriteString(w, text)
}

// handleRobots serves robots.txt.
func (s *Server) handleRobots(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	_, _ = io.WriteString(w, rendering.RobotsTXT(s.baseURL))
}

// handleSitemap serves sitemap.xml.
func (s *Server) handleSitemap(w http.ResponseWriter, _ *http.Request) {
	out, err := rendering.Sitemap(s.baseURL, s.startedAt)
	if err != nil {
		s.log.Error("failed to build sitemap", "error", err)
		http.Error(w, "sitemap unavailable", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/xml; charset=utf-8")
	_, _ = w.Write(out)
}

// loadSubmission reads the session cookie and loads its submission. A missing,
// expired, or unreadable session is reported as *ErrNoSubmission.
func (s *Server) loadSubmission(r *http.Request) (*types.Submission, error) {
	cookie, err := r.Cookie(session.CookieName)
	if err != nil || cookie.Value == "" {
		return nil, &ErrNoSubmission{}
	}

	sub, err := s.store.Load(r.Context(), cookie.Value)
	if err != nil {
		var decodeErr *session.DecodeError
		switch {
		case errors.Is(err, session.ErrNotFound):
			return nil, &ErrNoSubmission{}
		case errors.As(err, &decodeErr):
			s.log.Warn("discarding unreadable session", "error", err)
			return nil, &ErrNoSubmission{}
		default:
			return nil, fmt.Errorf("failed to load session: %w", err)
		}
	}
	return sub, nil
}

// sessionCookie has no Expires or Max-Age so it ends with the browser session.
func (s *Server) sessionCookie(token string) *http.Cookie {
	return &http.Cookie{
		Name:     session.CookieName,
		Value:    token,
		Path:     "/",
		HttpOnly: true,
		Secure:   s.secureCookie,
		SameSite: http.SameSiteLaxMode,
	}
}

func (s *Server) renderHome(w http.ResponseWriter, status int, form rendering.FormValues, errs []string) {
	s.renderHTML(w, status, func(out io.Writer) error {
		return s.renderer.Home(out, form, errs, s.content.HomeFAQs())
	})
}

// renderHTML buffers the page so a template failure can still produce a clean 500.
func (s *Server) renderHTML(w http.ResponseWriter, status int, render func(io.Writer) error) {
	var buf bytes.Buffer
	if err := render(&buf); err != nil {
		s.log.Error("failed to render page", "error", err)
		http.Error(w, "Failed to render page.", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	_, _ = buf.WriteTo(w)
}

func formFromSubmission(sub *types.Submission) rendering.FormValues {
	return rendering.FormValues{
		JobTitle:       sub.JobTitle,
		CompanyWebsite: sub.CompanyWebsite,
		JDText:         sub.JDText,
		ResumeText:     sub.ResumeText,
		Stage:          sub.Stage,
	}
}

func validationMessages(err error) []string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return []string{err.Error()}
	}

	msgs := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		label := fieldLabels[fe.Field()]
		if label == "" {
			label = fe.Field()
		}
		switch fe.Tag() {
		case "max":
			msgs = append(msgs, fmt.Sprintf("%s must be at most %s characters.", label, fe.Param()))
		case "required", "stage":
			msgs = append(msgs, fmt.Sprintf("Please choose a valid %s.", label))
		default:
			msgs = append(msgs, fmt.Sprintf("%s is invalid.", label))
		}
	}
	return msgs
}
