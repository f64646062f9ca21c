// Package render writes a buddy list document through a template.
//
// Two template syntaxes are supported: Go text/template, which sees the
// buddylist.Document directly, and mustache, which sees the key names of the
// classic blist.xml.template (ownNumber, groups, groupname, contacts,
// buddies, number, alias).
package render

import (
	"bufio"
	"embed"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"text/template"

	"github.com/cbroglie/mustache"

	"blist_converter/internal/buddylist"
	"blist_converter/platform/apperr"
	"blist_converter/platform/sanitize"
)

//go:embed templates/*.tmpl
var templateFS embed.FS

const defaultTemplate = "blist.xml.tmpl"

var funcs = template.FuncMap{
	"xml": sanitize.XML,
}

// Syntax names a template language.
type Syntax string

const (
	SyntaxGo       Syntax = "go"
	SyntaxMustache Syntax = "mustache"
)

// DetectSyntax returns explicit when set, otherwise mustache for files ending
// in .mustache or .template and Go templates for everything else.
func DetectSyntax(explicit, path string) Syntax {
	if explicit != "" {
		return Syntax(strings.ToLower(explicit))
	}
	switch strings.ToLower(filepath.Ext(path)) {
	case ".mustache", ".template":
		return SyntaxMustache
	default:
		return SyntaxGo
	}
}

// Renderer executes one parsed template.
type Renderer struct {
	execute func(w io.Writer, doc buddylist.Document) error
}

// New loads the template at path, or the built-in libpurple blist.xml
// template when path is empty. syntax may be empty to detect it from path.
func New(path string, syntax Syntax) (*Renderer, error) {
	if path == "" {
		return NewDefault()
	}
	return NewFromFile(path, syntax)
}

// NewDefault returns a renderer for the built-in blist.xml template.
func NewDefault() (*Renderer, error) {
	tmpl, err := template.New(defaultTemplate).Funcs(funcs).ParseFS(templateFS, "templates/"+defaultTemplate)
	if err != nil {
		return nil, fmt.Errorf("parse template %s: %w", defaultTemplate, err)
	}
	return &Renderer{execute: goExecutor(tmpl)}, nil
}

// NewFromFile parses a user supplied template.
func NewFromFile(path string, syntax Syntax) (*Renderer, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, apperr.Wrap(apperr.KindNotFound, "template not found", err).WithOp("render.NewFromFile")
		}
		return nil, apperr.Wrap(apperr.KindInternal, "failed to read template", err).WithOp("render.NewFromFile")
	}

	switch DetectSyntax(string(syntax), path) {
	case SyntaxGo:
		tmpl, err := template.New(filepath.Base(path)).Funcs(funcs).Parse(string(content))
		if err != nil {
			return nil, apperr.Wrap(apperr.KindValidation, "invalid Go template "+path, err).WithOp("render.NewFromFile")
		}
		return &Renderer{execute: goExecutor(tmpl)}, nil
	case SyntaxMustache:
		tmpl, err := mustache.ParseString(string(content))
		if err != nil {
			return nil, apperr.Wrap(apperr.KindValidation, "invalid mustache template "+path, err).WithOp("render.NewFromFile")
		}
		return &Renderer{execute: mustacheExecutor(tmpl)}, nil
	default:
		return nil, apperr.Validation("unsupported template syntax " + string(syntax)).WithOp("render.NewFromFile")
	}
}

// Render executes the template for doc and writes the result to w.
func (r *Renderer) Render(w io.Writer, doc buddylist.Document) error {
	bw := bufio.NewWriter(w)
	if err := r.execute(bw, doc); err != nil {
		return apperr.Wrap(apperr.KindInternal, "failed to render document", err).WithOp("render.Render")
	}
	if err := bw.Flush(); err != nil {
		return apperr.Wrap(apperr.KindInternal, "failed to write document", err).WithOp("render.Render")
	}
	return nil
}

func goExecutor(tmpl *template.Template) func(io.Writer, buddylist.Document) error {
	return func(w io.Writer, doc buddylist.Document) error {
		return tmpl.Execute(w, doc)
	}
}

func mustacheExecutor(tmpl *mustache.Template) func(io.Writer, buddylist.Document) error {
	return func(w io.Writer, doc buddylist.Document) error {
		return tmpl.FRender(w, mustacheContext(doc))
	}
}

// mustacheContext maps doc onto the classic template keys.
func mustacheContext(doc buddylist.Document) map[string]any {
	groups := make([]map[string]any, 0, len(doc.Groups))
	for _, g := range doc.Groups {
		sets := make([]map[string]any, 0, len(g.Contacts))
		for _, set := range g.Contacts {
			buddies := make([]map[string]any, 0, len(set.Buddies))
			for _, b := range set.Buddies {
				buddies = append(buddies, map[string]any{"number": b.Number, "alias": b.Alias})
			}
			sets = append(sets, map[string]any{"buddies": buddies})
		}
		groups = append(groups, map[string]any{"groupname": g.Name, "contacts": sets})
	}
	return map[string]any{"ownNumber": doc.OwnNumber, "groups": groups}
}
