// Package web turns a snapshot into the dashboard HTML. Rendering is pure:
// both Render and RenderError return a complete document and perform no
// side effects, so the HTTP write stays isolated in the controller.
package web

import (
	"bytes"
	"embed"
	"html/template"
	"io/fs"
	"net/http"
	"strconv"

	"gamepulse/internal/models"
)

// PlaceholderImage is shown for games the platform returned no icon for.
const PlaceholderImage = "https://via.placeholder.com/420x236?text=No+Image"

const gameURLPrefix = "https://www.roblox.com/games/"

//go:embed templates/dashboard.gohtml
var templatesFS embed.FS

//go:embed static
var staticFS embed.FS

var dashboardTmpl = template.Must(
	template.New("dashboard.gohtml").
		Funcs(template.FuncMap{
			"comma":      Comma,
			"abbrev":     Abbreviate,
			"formatTime": FormatTime,
		}).
		ParseFS(templatesFS, "templates/dashboard.gohtml"),
)

type gameView struct {
	Name         string
	URL          string
	ThumbnailUrl string
	Playing      int64
	Visits       int64
}

type dashboardView struct {
	AppName  string
	Snapshot *models.Snapshot
	Games    []gameView
	HasData  bool
}

// Render produces the dashboard for a snapshot.
func Render(snap *models.Snapshot) ([]byte, error) {
	view := dashboardView{
		AppName:  "GamePulse",
		Snapshot: snap,
		HasData:  true,
		Games:    make([]gameView, 0, len(snap.Games)),
	}

	for _, g := range snap.Games {
		thumb := g.ThumbnailUrl
		if thumb == "" {
			thumb = PlaceholderImage
		}
		view.Games = append(view.Games, gameView{
			Name:         g.Name,
			URL:          gameURLPrefix + strconv.FormatInt(g.PlaceID, 10),
			ThumbnailUrl: thumb,
			Playing:      g.Playing,
			Visits:       g.Visits,
		})
	}

	return execute(view)
}

// RenderError produces the dashboard's failure state: both summary
// counters show an error indicator instead of numbers.
func RenderError() ([]byte, error) {
	return execute(dashboardView{AppName: "GamePulse"})
}

func execute(view dashboardView) ([]byte, error) {
	var buf bytes.Buffer
	if err := dashboardTmpl.Execute(&buf, view); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// StaticHandler serves the embedded stylesheet and assets under /static/.
func StaticHandler() http.Handler {
	sub, err := fs.Sub(staticFS, "static")
	if err != nil {
		panic("web: failed to create static sub-filesystem: " + err.Error())
	}
	return http.StripPrefix("/static/", http.FileServer(http.FS(sub)))
}
