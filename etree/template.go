// Package etree serializes live template sets to XML.
package etree

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/beevik/etree"
	"github.com/fwojciec/docsnip"
)

// Ensure TemplateStore implements the docsnip template interfaces at compile time.
var (
	_ docsnip.TemplateWriter = (*TemplateStore)(nil)
	_ docsnip.TemplateReader = (*TemplateStore)(nil)
)

// TemplateStore reads and writes template sets as XML files in a directory.
type TemplateStore struct {
	dir string
}

// NewTemplateStore creates a new TemplateStore rooted at dir.
func NewTemplateStore(dir string) *TemplateStore {
	return &TemplateStore{dir: dir}
}

// WriteTemplateSet writes set to dir/set.Filename, replacing any existing file.
func (s *TemplateStore) WriteTemplateSet(ctx context.Context, set *docsnip.TemplateSet) (string, error) {
	if err := validFilename(set.Filename); err != nil {
		return "", err
	}
	if err := os.MkdirAll(s.dir, 0755); err != nil {
		return "", err
	}

	path := filepath.Join(s.dir, set.Filename)
	if err := EncodeTemplateSet(set).WriteToFile(path); err != nil {
		return "", fmt.Errorf("writing %s: %w", path, err)
	}
	return path, nil
}

// EncodeTemplateSet builds the XML document for a template set. The
// document has no XML declaration. Attribute values are written in
// canonical form so that line breaks survive as character references.
func EncodeTemplateSet(set *docsnip.TemplateSet) *etree.Document {
	doc := etree.NewDocument()
	doc.WriteSettings.CanonicalAttrVal = true

	root := doc.CreateElement("templateSet")
	root.CreateAttr("group", set.Group)

	for _, t := range set.Templates {
		el := root.CreateElement("template")
		el.CreateAttr("name", t.Name)
		el.CreateAttr("value", t.Value)
		el.CreateAttr("description", t.Description)
		el.CreateAttr("toReformat", "true")
		el.CreateAttr("toShortenFQNames", "true")

		ctx := el.CreateElement("context")
		for _, opt := range t.Options {
			o := ctx.CreateElement("option")
			o.CreateAttr("name", opt.Name)
			o.CreateAttr("value", strconv.FormatBool(opt.Value))
		}
	}

	doc.Indent(2)
	return doc
}

// ReadTemplateSet parses dir/filename. Returns ENOTFOUND when the file is
// missing and EINVALID when it is not a template set.
func (s *TemplateStore) ReadTemplateSet(ctx context.Context, filename string) (*docsnip.TemplateSet, error) {
	if err := validFilename(filename); err != nil {
		return nil, err
	}

	path := filepath.Join(s.dir, filename)
	doc := etree.NewDocument()
	if err := doc.ReadFromFile(path); err != nil {
		if os.IsNotExist(err) {
			return nil, docsnip.Errorf(docsnip.ENOTFOUND, "template set %q does not exist", path)
		}
		return nil, docsnip.Errorf(docsnip.EINVALID, "reading %s: %v", path, err)
	}
	return decodeTemplateSet(doc, filename)
}

func validFilename(name string) error {
	if name == "" || filepath.Base(name) != name {
		return docsnip.Errorf(docsnip.EINVALID, "invalid template file name %q", name)
	}
	return nil
}

// decodeTemplateSet converts a parsed XML document back into a template set.
func decodeTemplateSet(doc *etree.Document, filename string) (*docsnip.TemplateSet, error) {
	root := doc.SelectElement("templateSet")
	if root == nil {
		return nil, docsnip.Errorf(docsnip.EINVALID, "missing templateSet root element")
	}

	set := &docsnip.TemplateSet{
		Group:    root.SelectAttrValue("group", ""),
		Filename: filename,
	}
	for _, el := range root.SelectElements("template") {
		t := docsnip.Template{
			Name:        el.SelectAttrValue("name", ""),
			Value:       el.SelectAttrValue("value", ""),
			Description: el.SelectAttrValue("description", ""),
		}
		if ctx := el.SelectElement("context"); ctx != nil {
			for _, o := range ctx.SelectElements("option") {
				v, _ := strconv.ParseBool(o.SelectAttrValue("value", "false"))
				t.Options = append(t.Options, docsnip.TemplateOption{
					Name:  o.SelectAttrValue("name", ""),
					Value: v,
				})
			}
		}
		set.Templates = append(set.Templates, t)
	}
	return set, nil
}
