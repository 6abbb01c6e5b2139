package adaptor

import (
	"bytes"
	"embed"
	"encoding/base64"
	"fmt"
	"html/template"
	"net/http"

	"go.uber.org/zap"
)

//go:embed templates/*.html
var templateFS embed.FS

const (
	ModeSingle    = "single"
	ModeBatch     = "batch"
	ModeAnalytics = "analytics"
)

// Page is the data every template receives
type Page struct {
	AppName string
	Title   string
	Mode    string
	Data    any
}

// Views holds one parsed template set per mode
type Views struct {
	appName string
	pages   map[string]*template.Template
	log     *zap.Logger
}

func NewViews(appName string, log *zap.Logger) (*Views, error) {
	pages := make(map[string]*template.Template)
	for _, mode := range []string{ModeSingle, ModeBatch, ModeAnalytics} {
		t, err := template.ParseFS(templateFS, "templates/layout.html", "templates/"+mode+".html")
		if err != nil {
			return nil, fmt.Errorf("parse %s template: %w", mode, err)
		}
		pages[mode] = t
	}

	return &Views{
		appName: appName,
		pages:   pages,
		log:     log.With(zap.String("component", "views")),
	}, nil
}

// Render writes a full page; rendering is buffered so a template error still yields a clean 500
func (v *Views) Render(w http.ResponseWriter, code int, mode, title string, data any) {
	t, ok := v.pages[mode]
	if !ok {
		http.Error(w, "unknown page", http.StatusInternalServerError)
		return
	}

	var buf bytes.Buffer
	page := Page{AppName: v.appName, Title: title, Mode: mode, Data: data}
	if err := t.ExecuteTemplate(&buf, "layout", page); err != nil {
		v.log.Error("Failed to render page", zap.String("mode", mode), zap.Error(err))
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(code)
	w.Write(buf.Bytes())
}

// dataURI embeds a payload into a page so nothing has to be kept between requests
func dataURI(contentType string, payload []byte) template.URL {
	if len(payload) == 0 {
		return ""
	}
	return template.URL("data:" + contentType + ";base64," + base64.StdEncoding.EncodeToString(payload))
}
