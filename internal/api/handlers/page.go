package handlers

import (
	"bytes"
	"embed"
	"html/template"
	"net/http"

	"go.uber.org/zap"
)

//go:embed templates/index.html
var templatesFS embed.FS

var indexTmpl = template.Must(template.ParseFS(templatesFS, "templates/index.html"))

type pageData struct {
	Endpoint string
}

// PageHandler renders the wallet form.
type PageHandler struct {
	page []byte
	log  *zap.Logger
}

func NewPageHandler(endpoint string, log *zap.Logger) (*PageHandler, error) {
	var buf bytes.Buffer
	if err := indexTmpl.Execute(&buf, pageData{Endpoint: endpoint}); err != nil {
		return nil, err
	}
	return &PageHandler{page: buf.Bytes(), log: log}, nil
}

func (h *PageHandler) Index(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if _, err := w.Write(h.page); err != nil {
		h.log.Debug("write page", zap.Error(err))
	}
}
