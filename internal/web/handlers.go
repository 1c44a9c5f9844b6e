package web

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Dev-Moura/portfolio/internal/theme"
)

const expiredMessage = "This page has expired. Reload it to start again."

// index mounts a fresh view; reloading the page always starts from defaults.
func (s *Server) index(c *gin.Context) {
	m := s.store.Mount()
	s.logger.Debug("view mounted", "view", m.ID)
	c.HTML(http.StatusOK, tmplIndex, NewPageData(m, s.resume))
}

func (s *Server) showView(c *gin.Context) {
	m, ok := s.lookup(c)
	if !ok {
		return
	}
	c.HTML(http.StatusOK, tmplIndex, NewPageData(m, s.resume))
}

func (s *Server) selectTheme(c *gin.Context) {
	id, err := theme.Parse(c.Param("theme"))
	if err != nil {
		_ = c.Error(err)
		c.String(http.StatusBadRequest, "unknown theme")
		return
	}

	m, ok := s.lookup(c)
	if !ok {
		return
	}
	m.View.SelectTheme(id)
	s.respond(c, m)
}

func (s *Server) toggleDark(c *gin.Context) {
	m, ok := s.lookup(c)
	if !ok {
		return
	}
	m.View.ToggleDarkMode()
	s.respond(c, m)
}

func (s *Server) health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status": "ok",
		"views":  s.store.Len(),
	})
}

// respond answers an interaction: HTMX gets the re-rendered #app
// fragment, plain form posts are redirected back to the view.
func (s *Server) respond(c *gin.Context, m *Mounted) {
	if isHTMX(c) {
		c.HTML(http.StatusOK, tmplApp, NewPageData(m, s.resume))
		return
	}
	c.Redirect(http.StatusSeeOther, "/views/"+m.ID)
}

func (s *Server) lookup(c *gin.Context) (*Mounted, bool) {
	m, err := s.store.Get(c.Param("id"))
	if err == nil {
		return m, true
	}

	_ = c.Error(err)
	if errors.Is(err, ErrViewNotFound) {
		if isHTMX(c) {
			c.Header("HX-Redirect", "/")
		}
		c.HTML(http.StatusNotFound, tmplMissing, gin.H{"Message": expiredMessage})
		return nil, false
	}
	c.String(http.StatusInternalServerError, "internal error")
	return nil, false
}
