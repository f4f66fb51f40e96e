package web

import (
	"errors"
	"net/http"
	"net/url"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/nhle/yournal/internal/journal"
	"github.com/nhle/yournal/internal/model"
	"github.com/nhle/yournal/internal/validate"
)

var (
	errBadNumber = errors.New("invalid entry number")
	errBadID     = errors.New("invalid goal id")
)

// EntryForm is the body of POST /journal and POST /journal/:number/edit.
type EntryForm struct {
	Title   string `form:"title"`
	Content string `form:"content"`
}

// GoalForm is the body of POST /self_goals.
type GoalForm struct {
	Description string `form:"description"`
}

type flash struct {
	Message string
	Status  string
}

type journalPage struct {
	Entries  []model.JournalEntry
	Flash    flash
	Error    string
	Form     EntryForm
	TitleMax int
}

type goalsPage struct {
	Goals []model.Task
	Flash flash
	Error string
	Form  GoalForm
}

func (s *Server) index(c *gin.Context) {
	c.HTML(http.StatusOK, "index.tmpl", nil)
}

func (s *Server) listEntries(c *gin.Context) {
	s.renderJournal(c, http.StatusOK, journalPage{Flash: flashFrom(c)})
}

func (s *Server) addEntry(c *gin.Context) {
	var form EntryForm
	if err := c.ShouldBind(&form); err != nil {
		s.rejectEntry(c, form, err)
		return
	}
	if err := validate.Entry(form.Title, form.Content, s.titleMax); err != nil {
		s.rejectEntry(c, form, err)
		return
	}

	res := s.journal.Add(c.Request.Context(), form.Title, form.Content)
	redirect(c, "/journal", res)
}

func (s *Server) editEntry(c *gin.Context) {
	number, err := strconv.Atoi(c.Param("number"))
	if err != nil || number < 1 {
		s.rejectEntry(c, EntryForm{}, errBadNumber)
		return
	}

	var form EntryForm
	if err := c.ShouldBind(&form); err != nil {
		s.rejectEntry(c, EntryForm{}, err)
		return
	}
	if err := validate.Entry(form.Title, form.Content, s.titleMax); err != nil {
		s.rejectEntry(c, EntryForm{}, err)
		return
	}

	res := s.journal.Edit(c.Request.Context(), number, form.Title, form.Content)
	redirect(c, "/journal", res)
}

func (s *Server) deleteEntry(c *gin.Context) {
	number, err := strconv.Atoi(c.Param("number"))
	if err != nil || number < 1 {
		s.rejectEntry(c, EntryForm{}, errBadNumber)
		return
	}

	res := s.journal.Delete(c.Request.Context(), number)
	redirect(c, "/journal", res)
}

func (s *Server) rejectEntry(c *gin.Context, form EntryForm, err error) {
	_ = c.Error(err)
	s.renderJournal(c, http.StatusBadRequest, journalPage{
		Error: journal.Invalid(err).Message,
		Form:  form,
	})
}

func (s *Server) renderJournal(c *gin.Context, code int, page journalPage) {
	page.Entries = s.journal.Entries(c.Request.Context())
	page.TitleMax = s.titleMax
	c.HTML(code, "journal.tmpl", page)
}

func (s *Server) listGoals(c *gin.Context) {
	s.renderGoals(c, http.StatusOK, goalsPage{Flash: flashFrom(c)})
}

func (s *Server) addGoal(c *gin.Context) {
	var form GoalForm
	if err := c.ShouldBind(&form); err != nil {
		s.rejectGoal(c, form, err)
		return
	}
	if err := validate.Goal(form.Description); err != nil {
		s.rejectGoal(c, form, err)
		return
	}

	res := s.goals.Add(c.Request.Context(), form.Description)
	redirect(c, "/self_goals", res)
}

func (s *Server) completeGoal(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id < 1 {
		s.rejectGoal(c, GoalForm{}, errBadID)
		return
	}

	res := s.goals.Complete(c.Request.Context(), id)
	redirect(c, "/self_goals", res)
}

func (s *Server) rejectGoal(c *gin.Context, form GoalForm, err error) {
	_ = c.Error(err)
	s.renderGoals(c, http.StatusBadRequest, goalsPage{
		Error: journal.Invalid(err).Message,
		Form:  form,
	})
}

func (s *Server) renderGoals(c *gin.Context, code int, page goalsPage) {
	page.Goals = s.goals.List(c.Request.Context())
	c.HTML(code, "goals.tmpl", page)
}

// redirect sends the browser back to path with the result as a flash.
func redirect(c *gin.Context, path string, res journal.Result) {
	q := url.Values{}
	q.Set("flash", res.Message)
	q.Set("status", res.Status.String())
	c.Redirect(http.StatusSeeOther, path+"?"+q.Encode())
}

func flashFrom(c *gin.Context) flash {
	return flash{Message: c.Query("flash"), Status: c.Query("status")}
}
