// SPDX-License-Identifier: MIT
package handlers

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/thatcatcamp/huekit/internal/designer"
	"github.com/thatcatcamp/huekit/internal/harmony"
	"github.com/thatcatcamp/huekit/internal/models"
	"github.com/thatcatcamp/huekit/internal/projects"
	"github.com/thatcatcamp/huekit/internal/themes"
	"github.com/thatcatcamp/huekit/internal/tokens"
)

// inputsBody is the editable part of a project
type inputsBody struct {
	Primary            string   `json:"primary" binding:"csscolor"`
	Secondary          string   `json:"secondary" binding:"omitempty,csscolor"`
	Harmony            string   `json:"harmony" binding:"omitempty,harmony"`
	BackgroundStrategy string   `json:"background_strategy" binding:"omitempty,bgstrategy"`
	Radius             *float64 `json:"radius" binding:"omitempty,min=0,max=1"`
}

func (a *API) inputs(b inputsBody) designer.Inputs {
	h := a.defaults.Harmony
	if b.Harmony != "" {
		h = harmony.Type(b.Harmony)
	}
	bs := a.defaults.Options.BackgroundStrategy
	if b.BackgroundStrategy != "" {
		bs = tokens.BackgroundStrategy(b.BackgroundStrategy)
	}
	return designer.Inputs{
		Primary:            b.Primary,
		Secondary:          b.Secondary,
		Harmony:            h,
		BackgroundStrategy: bs,
		Radius:             a.radius(b.Radius),
	}
}

type createProjectBody struct {
	Name        string `json:"name" binding:"required"`
	Description string `json:"description"`
	inputsBody
}

type projectView struct {
	*models.Project
	Stylesheet string `json:"stylesheet_url"`
}

func view(p *models.Project) projectView {
	return projectView{Project: p, Stylesheet: "/api/projects/" + p.Name + "/theme.css"}
}

// ListProjects returns all projects
func (a *API) ListProjects(c *gin.Context) {
	list, err := projects.List(a.db)
	if err != nil {
		a.fail(c, err)
		return
	}
	out := make([]projectView, len(list))
	for i := range list {
		out[i] = view(&list[i])
	}
	c.JSON(http.StatusOK, gin.H{"projects": out})
}

// CreateProject stores a new project
func (a *API) CreateProject(c *gin.Context) {
	var body createProjectBody
	if err := c.ShouldBindJSON(&body); err != nil {
		a.fail(c, fmt.Errorf("%w: %w", errBadRequest, err))
		return
	}
	project, err := projects.Create(a.db, body.Name, body.Description, a.inputs(body.inputsBody))
	if err != nil {
		a.fail(c, err)
		return
	}
	c.JSON(http.StatusCreated, view(project))
}

// GetProject returns a project, its session state and any pending preview inputs
func (a *API) GetProject(c *gin.Context) {
	project, err := projects.Get(a.db, c.Param("name"))
	if err != nil {
		a.fail(c, err)
		return
	}
	sess := a.sessions.get(project.Name, projects.Inputs(project))
	out := gin.H{
		"project": view(project),
		"state":   sess.State(),
	}
	if in, _, ok := sess.Previewed(); ok {
		out["preview"] = in
	}
	c.JSON(http.StatusOK, out)
}

// DeleteProject soft-deletes a project and drops its session
func (a *API) DeleteProject(c *gin.Context) {
	name := c.Param("name")
	if err := projects.Delete(a.db, name); err != nil {
		a.fail(c, err)
		return
	}
	a.sessions.drop(name)
	c.Status(http.StatusNoContent)
}

// ProjectHistory lists applied revisions, newest first
func (a *API) ProjectHistory(c *gin.Context) {
	history, err := projects.History(a.db, c.Param("name"))
	if err != nil {
		a.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"revisions": history})
}

// PreviewProject generates a theme for new inputs without storing them
func (a *API) PreviewProject(c *gin.Context) {
	project, err := projects.Get(a.db, c.Param("name"))
	if err != nil {
		a.fail(c, err)
		return
	}
	var body inputsBody
	if err := c.ShouldBindJSON(&body); err != nil {
		a.fail(c, fmt.Errorf("%w: %w", errBadRequest, err))
		return
	}

	sess := a.sessions.get(project.Name, projects.Inputs(project))
	th, err := sess.Preview(a.inputs(body))
	if err != nil {
		a.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"state": sess.State(), "theme": th})
}

// CancelPreview drops the pending preview
func (a *API) CancelPreview(c *gin.Context) {
	project, err := projects.Get(a.db, c.Param("name"))
	if err != nil {
		a.fail(c, err)
		return
	}
	sess := a.sessions.get(project.Name, projects.Inputs(project))
	if err := sess.Cancel(); err != nil {
		a.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"state": sess.State()})
}

// ApplyProject persists the previewed inputs
func (a *API) ApplyProject(c *gin.Context) {
	project, err := projects.Get(a.db, c.Param("name"))
	if err != nil {
		a.fail(c, err)
		return
	}
	sess := a.sessions.get(project.Name, projects.Inputs(project))

	var saved *models.Project
	_, err = sess.Apply(func(in designer.Inputs) error {
		var err error
		saved, err = projects.Apply(a.db, project.Name, in)
		return err
	})
	if err != nil {
		a.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, view(saved))
}

// ProjectCSS serves the stylesheet of the applied inputs. The ETag covers
// the input tuple and the radius.
func (a *API) ProjectCSS(c *gin.Context) {
	project, err := projects.Get(a.db, c.Param("name"))
	if err != nil {
		a.fail(c, err)
		return
	}
	in := projects.Inputs(project)
	req := in.Request(a.defaults.Options)

	if key, err := req.Key(); err == nil {
		etag := fmt.Sprintf(`"%x-%s"`, key, strconv.FormatFloat(in.Radius, 'f', 3, 64))
		c.Header("ETag", etag)
		if c.GetHeader("If-None-Match") == etag {
			c.Status(http.StatusNotModified)
			return
		}
	}

	th, err := a.memo.Generate(req)
	if err != nil {
		a.fail(c, err)
		return
	}
	c.Data(http.StatusOK, "text/css; charset=utf-8", []byte(themes.SerializeCSS(th.Tokens, in.Radius).String()))
}
