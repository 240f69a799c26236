// SPDX-License-Identifier: MIT
package handlers

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/thatcatcamp/huekit/internal/contrast"
	"github.com/thatcatcamp/huekit/internal/harmony"
	"github.com/thatcatcamp/huekit/internal/oklch"
	"github.com/thatcatcamp/huekit/internal/themes"
	"github.com/thatcatcamp/huekit/internal/tokens"
)

// themeBody is the JSON body of the theme endpoints
type themeBody struct {
	Primary            string   `json:"primary" form:"primary" binding:"csscolor"`
	Secondary          string   `json:"secondary" form:"secondary"`
	Harmony            string   `json:"harmony" form:"harmony" binding:"omitempty,harmony"`
	BackgroundStrategy string   `json:"background_strategy" form:"background_strategy" binding:"omitempty,bgstrategy"`
	Gamut              string   `json:"gamut" form:"gamut" binding:"omitempty,gamut"`
	ContrastModel      string   `json:"contrast_model" form:"contrast_model" binding:"omitempty,contrastmodel"`
	Radius             *float64 `json:"radius" form:"radius" binding:"omitempty,min=0,max=1"`
}

// options overlays the body's option names on the configured defaults
func (a *API) options(bgStrategy, gamut, model string) (themes.Options, error) {
	opts := a.defaults.Options
	var err error
	if bgStrategy != "" {
		if opts.BackgroundStrategy, err = tokens.ParseBackgroundStrategy(bgStrategy); err != nil {
			return opts, fmt.Errorf("%w: %w", errBadRequest, err)
		}
	}
	if gamut != "" {
		if opts.Gamut, err = oklch.ParseGamut(gamut); err != nil {
			return opts, fmt.Errorf("%w: %w", errBadRequest, err)
		}
	}
	if model != "" {
		if opts.Model, err = contrast.ParseModel(model); err != nil {
			return opts, fmt.Errorf("%w: %w", errBadRequest, err)
		}
	}
	return opts, nil
}

func (a *API) request(body themeBody) (themes.Request, error) {
	opts, err := a.options(body.BackgroundStrategy, body.Gamut, body.ContrastModel)
	if err != nil {
		return themes.Request{}, err
	}
	h := a.defaults.Harmony
	if body.Harmony != "" {
		if h, err = harmony.Parse(body.Harmony); err != nil {
			return themes.Request{}, err
		}
	}
	return themes.Request{
		Primary:   body.Primary,
		Secondary: body.Secondary,
		Harmony:   h,
		Options:   opts,
	}, nil
}

func (a *API) radius(r *float64) float64 {
	if r == nil {
		return a.defaults.Radius
	}
	return themes.RadiusRem(*r)
}

// bindTheme binds and generates. It writes the error response itself.
func (a *API) bindTheme(c *gin.Context) (themeBody, *themes.GeneratedTheme, bool) {
	var body themeBody
	if err := c.ShouldBindJSON(&body); err != nil {
		a.fail(c, fmt.Errorf("%w: %w", errBadRequest, err))
		return body, nil, false
	}
	req, err := a.request(body)
	if err != nil {
		a.fail(c, err)
		return body, nil, false
	}
	th, err := a.memo.Generate(req)
	if err != nil {
		a.fail(c, err)
		return body, nil, false
	}
	if etag, err := req.ETag(); err == nil {
		c.Header("ETag", etag)
	}
	return body, th, true
}

// ListHarmonies returns every harmony type
func (a *API) ListHarmonies(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"harmonies": harmony.All()})
}

// GenerateTheme returns the generated theme as JSON
func (a *API) GenerateTheme(c *gin.Context) {
	_, th, ok := a.bindTheme(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, th)
}

// ThemeCSS renders the generated theme. The format query selects css
// (default), preview, tokens, yaml or svg.
func (a *API) ThemeCSS(c *gin.Context) {
	format := c.DefaultQuery("format", "css")
	switch format {
	case "css", "preview", "tokens", "yaml", "svg":
	default:
		a.fail(c, fmt.Errorf("%w: unknown format %q", errBadRequest, format))
		return
	}

	body, th, ok := a.bindTheme(c)
	if !ok {
		return
	}
	a.render(c, format, th.Tokens, a.radius(body.Radius))
}

func (a *API) render(c *gin.Context, format string, tt themes.ThemeTokens, radius float64) {
	switch format {
	case "preview":
		c.Data(http.StatusOK, "text/css; charset=utf-8", []byte(themes.PreviewCSS(tt, c.Query("selector"))))
	case "tokens":
		data, err := themes.DesignTokens(tt)
		if err != nil {
			a.fail(c, err)
			return
		}
		c.Data(http.StatusOK, "application/json", data)
	case "yaml":
		data, err := themes.YAML(tt)
		if err != nil {
			a.fail(c, err)
			return
		}
		c.Data(http.StatusOK, "application/yaml", data)
	case "svg":
		svg, err := themes.SwatchSVG(tt)
		if err != nil {
			a.fail(c, err)
			return
		}
		c.Data(http.StatusOK, "image/svg+xml", []byte(svg))
	default:
		css := themes.SerializeCSS(tt, radius).String()
		if c.Query("base") == "true" {
			css += "\n" + themes.BaseStyles
		}
		c.Data(http.StatusOK, "text/css; charset=utf-8", []byte(css))
	}
}

// CompareHarmonies generates the same inputs under several harmonies.
// harmonies is a comma-separated list; empty means all.
func (a *API) CompareHarmonies(c *gin.Context) {
	primary := c.Query("primary")
	if _, err := oklch.Parse(primary); err != nil {
		a.fail(c, err)
		return
	}

	var types []harmony.Type
	if list := c.Query("harmonies"); list != "" {
		for _, name := range strings.Split(list, ",") {
			t, err := harmony.Parse(name)
			if err != nil {
				a.fail(c, err)
				return
			}
			types = append(types, t)
		}
	}

	opts, err := a.options(c.Query("background_strategy"), c.Query("gamut"), c.Query("contrast_model"))
	if err != nil {
		a.fail(c, err)
		return
	}

	grid, err := themes.CompareHarmonies(c.Request.Context(), primary, c.Query("secondary"), types, opts)
	if err != nil {
		a.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"comparisons": grid})
}

// CheckContrast evaluates fg on bg
func (a *API) CheckContrast(c *gin.Context) {
	fg, err := oklch.ParseColor(c.Query("fg"))
	if err != nil {
		a.fail(c, fmt.Errorf("fg: %w", err))
		return
	}
	bg, err := oklch.ParseColor(c.Query("bg"))
	if err != nil {
		a.fail(c, fmt.Errorf("bg: %w", err))
		return
	}
	model := a.defaults.Options.Model
	if name := c.Query("model"); name != "" {
		if model, err = contrast.ParseModel(name); err != nil {
			a.fail(c, fmt.Errorf("%w: %w", errBadRequest, err))
			return
		}
	}
	if model == nil {
		model = contrast.Lightness
	}

	c.JSON(http.StatusOK, gin.H{
		"model":      model.Name(),
		"foreground": fg,
		"background": bg,
		"result":     contrast.Check(model, fg.Color, bg.Color),
	})
}

// ListPresets returns the built-in presets
func (a *API) ListPresets(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"presets": themes.ListPresets()})
}

// GetPreset returns one preset with its generated theme
func (a *API) GetPreset(c *gin.Context) {
	preset := themes.GetPreset(c.Param("name"))
	if preset == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "preset not found"})
		return
	}
	th, err := a.memo.Generate(preset.Request(a.defaults.Options))
	if err != nil {
		a.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"preset": preset, "theme": th})
}
