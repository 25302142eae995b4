package gtgraphics

import (
	"bytes"
	"fmt"
	"io"
	"log/slog"
	"path"
	"sort"
	"strings"

	"github.com/gtgfx/gtgraphics/internal/archive"
	"github.com/gtgfx/gtgraphics/internal/validator"
	"github.com/gtgfx/gtgraphics/pkg/document"
	"github.com/gtgfx/gtgraphics/pkg/layout"
	"github.com/gtgfx/gtgraphics/pkg/markup"
	"github.com/gtgfx/gtgraphics/pkg/markup/xmlenc"
)

// Project is the high-level entry point of the library. It owns the root
// composition, the bitmap resources referenced by image objects, and the
// packaging step that turns both into a portable archive.
type Project struct {
	comp      *document.Composition
	resources []archive.File
	filename  string
	logger    *slog.Logger
}

// Option defines a functional option for configuring a Project.
type Option func(*Project)

// WithLogger sets a custom structured logger for the project.
func WithLogger(logger *slog.Logger) Option {
	return func(p *Project) {
		p.logger = logger
	}
}

// WithFilename sets the default output path used by SaveDefault.
func WithFilename(name string) Option {
	return func(p *Project) {
		p.filename = name
	}
}

// New creates a project with a root composition of the given size.
func New(width, height float64, opts ...Option) *Project {
	p := &Project{
		comp:     document.NewComposition(width, height),
		filename: "out.gtzip",
	}
	for _, opt := range opts {
		opt(p)
	}
	if p.logger == nil {
		p.logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return p
}

// Document returns the root composition.
func (p *Project) Document() *document.Composition {
	return p.comp
}

// Layout returns a region covering the whole canvas, for carving up with the
// layout package before placing objects.
func (p *Project) Layout() *layout.Region {
	return layout.New(0, 0, p.comp.Width(), p.comp.Height())
}

// Frame converts a layout region into the location and dimensions an object
// constructor expects.
func Frame(r *layout.Region) (document.Location, document.Dimensions) {
	return document.Loc(r.X, r.Y), document.Dim(r.Width, r.Height)
}

// CreateLayer appends a full-canvas layer to the root composition.
func (p *Project) CreateLayer(name string, opts ...document.Option) *document.Layer {
	p.logger.Debug("creating layer", "name", name)
	return p.comp.AddLayer(name, opts...)
}

// AddStoryboard appends a storyboard to the root composition.
func (p *Project) AddStoryboard(sb *document.Storyboard) {
	p.comp.AddStoryboard(sb)
}

// AddResource registers a file to be packaged next to the document, typically
// a bitmap referenced by an image object's Source.
func (p *Project) AddResource(name string, data []byte) {
	p.resources = append(p.resources, archive.File{Name: name, Data: data})
}

// WriteDocument validates the composition tree and renders it as indented
// markup to w. The declaration names utf-16 while the bytes are plain utf-8;
// the consuming player expects exactly this combination.
func (p *Project) WriteDocument(w io.Writer) error {
	if err := validator.Validate(p.comp.Node()); err != nil {
		return fmt.Errorf("invalid document: %w", err)
	}
	root, err := markup.Serialize(p.comp.Node())
	if err != nil {
		return fmt.Errorf("serialize document: %w", err)
	}
	return xmlenc.Write(w, root,
		xmlenc.WithDeclaration("utf-16"),
		xmlenc.WithIndent("  "),
	)
}

// Save packages the document, the resource manifest, the content-types entry,
// and every registered resource into a stored zip archive at path.
func (p *Project) Save(path string) error {
	var doc bytes.Buffer
	if err := p.WriteDocument(&doc); err != nil {
		return err
	}

	files := []archive.File{
		{Name: "document.xml", Data: doc.Bytes()},
		{Name: "resources.xml", Data: p.resourceManifest()},
		{Name: "[Content_Types].xml", Data: p.contentTypes()},
	}
	files = append(files, p.resources...)

	p.logger.Info("saving project", "path", path, "resources", len(p.resources))
	return archive.WriteFile(path, files)
}

// SaveDefault saves to the filename configured at construction.
func (p *Project) SaveDefault() error {
	return p.Save(p.filename)
}

func (p *Project) resourceManifest() []byte {
	root := &markup.Element{Tag: "Resources"}
	for _, r := range p.resources {
		item := &markup.Element{Tag: "Resource"}
		item.SetAttr("Source", r.Name)
		root.Add(item)
	}
	s, _ := xmlenc.String(root, xmlenc.WithIndent("  "))
	return []byte(s)
}

// contentTypes renders the package content-types part: one Default entry per
// file extension present in the archive.
func (p *Project) contentTypes() []byte {
	types := map[string]string{
		"xml": "text/xml",
	}
	for _, r := range p.resources {
		ext := strings.TrimPrefix(strings.ToLower(path.Ext(r.Name)), ".")
		if ext == "" {
			continue
		}
		if mime, ok := resourceMIME[ext]; ok {
			types[ext] = mime
		} else {
			types[ext] = "application/octet-stream"
		}
	}

	exts := make([]string, 0, len(types))
	for ext := range types {
		exts = append(exts, ext)
	}
	sort.Strings(exts)

	root := &markup.Element{Tag: "Types"}
	root.SetAttr("xmlns", "http://schemas.openxmlformats.org/package/2006/content-types")
	for _, ext := range exts {
		item := &markup.Element{Tag: "Default"}
		item.SetAttr("Extension", ext)
		item.SetAttr("ContentType", types[ext])
		root.Add(item)
	}
	s, _ := xmlenc.String(root, xmlenc.WithIndent("  "))
	return []byte(s)
}

var resourceMIME = map[string]string{
	"png":  "image/png",
	"jpg":  "image/jpeg",
	"jpeg": "image/jpeg",
	"gif":  "image/gif",
	"bmp":  "image/bmp",
	"svg":  "image/svg+xml",
}
