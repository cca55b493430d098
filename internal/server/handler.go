package server

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/julianshen/buildgen/internal/idea"
	"github.com/julianshen/buildgen/internal/logging"
	"github.com/julianshen/buildgen/internal/output"
	"github.com/julianshen/buildgen/internal/wizard"
)

func (s *Server) health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func (s *Server) options(c *gin.Context) {
	resp := OptionsResponse{Formats: output.Names()}
	for _, step := range []int{wizard.StepSpace, wizard.StepVibe, wizard.StepTime} {
		resp.Steps = append(resp.Steps, StepOptions{
			Step:    step,
			Prompt:  wizard.Prompt(step),
			Options: wizard.Options(step),
		})
	}
	for _, t := range wizard.Tabs() {
		resp.Tabs = append(resp.Tabs, string(t))
	}
	c.JSON(http.StatusOK, resp)
}

// createIdea composes an idea without a session. Missing fields fall back
// like any other unknown value.
func (s *Server) createIdea(c *gin.Context) {
	var req IdeaRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	sel := wizard.Selection{Space: req.Space, Vibe: req.Vibe, Time: req.Time}
	doc := s.compose(sel.Space, sel.Vibe, sel.Time)
	slog.DebugContext(c.Request.Context(), "composed idea", "name", doc.Name)
	writeIdea(c, http.StatusOK, sel, doc)
}

func (s *Server) createSession(c *gin.Context) {
	sess := s.sessions.Create()
	slog.InfoContext(logging.WithFields(c.Request.Context(), logging.Fields{SessionID: sess.ID}), "session created")

	sess.mu.Lock()
	defer sess.mu.Unlock()
	c.JSON(http.StatusCreated, toSessionResponse(sess))
}

func (s *Server) getSession(c *gin.Context) {
	s.withSession(c, func(*wizard.State) error { return nil })
}

func (s *Server) deleteSession(c *gin.Context) {
	if !s.sessions.Delete(c.Param("id")) {
		c.JSON(http.StatusNotFound, gin.H{"error": "session not found"})
		return
	}
	c.Status(http.StatusNoContent)
}

func (s *Server) setSelection(c *gin.Context) {
	var req SelectionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	s.withSession(c, func(st *wizard.State) error {
		st.SetCurrent(req.Value)
		return nil
	})
}

func (s *Server) advance(c *gin.Context) {
	s.withSession(c, (*wizard.State).Advance)
}

func (s *Server) retreat(c *gin.Context) {
	s.withSession(c, (*wizard.State).Retreat)
}

func (s *Server) finish(c *gin.Context) {
	s.withSession(c, func(st *wizard.State) error {
		_, err := st.Finish(s.compose)
		return err
	})
}

func (s *Server) reset(c *gin.Context) {
	s.withSession(c, func(st *wizard.State) error {
		st.Reset()
		return nil
	})
}

func (s *Server) setTab(c *gin.Context) {
	var req TabRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	s.withSession(c, func(st *wizard.State) error {
		return st.SetTab(req.Tab)
	})
}

func (s *Server) getIdea(c *gin.Context) {
	sess, ok := s.lookup(c)
	if !ok {
		return
	}

	sess.mu.Lock()
	sel := sess.state.Selection()
	doc, finished := sess.state.Result()
	sess.mu.Unlock()

	if !finished {
		c.JSON(http.StatusNotFound, gin.H{"error": "idea not generated yet"})
		return
	}
	writeIdea(c, http.StatusOK, sel, doc)
}

// lookup resolves the :id parameter, writing a 404 when it is unknown.
func (s *Server) lookup(c *gin.Context) (*Session, bool) {
	sess, ok := s.sessions.Get(c.Param("id"))
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "session not found"})
		return nil, false
	}
	return sess, true
}

// withSession runs fn on the session's wizard under its lock and replies
// with the resulting session. Guard rejections become 409 Conflict.
func (s *Server) withSession(c *gin.Context, fn func(*wizard.State) error) {
	sess, ok := s.lookup(c)
	if !ok {
		return
	}
	ctx := logging.WithFields(c.Request.Context(), logging.Fields{SessionID: sess.ID})

	sess.mu.Lock()
	defer sess.mu.Unlock()

	if err := fn(sess.state); err != nil {
		status := statusFor(err)
		slog.InfoContext(ctx, "session transition rejected", "error", err, "status", status)
		c.JSON(status, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, toSessionResponse(sess))
}

func statusFor(err error) int {
	switch {
	case errors.Is(err, wizard.ErrUnknownTab):
		return http.StatusBadRequest
	case errors.Is(err, wizard.ErrStepIncomplete),
		errors.Is(err, wizard.ErrFirstStep),
		errors.Is(err, wizard.ErrFinalStep),
		errors.Is(err, wizard.ErrNotFinalStep):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

// writeIdea replies with doc as JSON, or rendered through the formatter
// named by the format query parameter.
func writeIdea(c *gin.Context, status int, sel wizard.Selection, doc idea.Document) {
	format := c.Query("format")
	if format == "" || format == "json" {
		c.JSON(status, doc)
		return
	}

	f, err := output.ForName(format)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	data, err := f.Format(&output.Report{Selection: sel, Idea: doc})
	if err != nil {
		slog.ErrorContext(c.Request.Context(), "formatting idea failed", "format", format, "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to format idea"})
		return
	}
	c.Data(status, contentType(f.Extension()), data)
}

func contentType(ext string) string {
	switch ext {
	case "md":
		return "text/markdown; charset=utf-8"
	case "yaml":
		return "application/yaml; charset=utf-8"
	default:
		return "application/json; charset=utf-8"
	}
}
