// Package xmlutils provides a small element tree for assembling XML documents.
// Rendering code builds freshly owned subtrees and only attaches them to the
// document once every validation has passed, so a failed build never leaves a
// partial document behind.
package xmlutils

import (
	"bytes"
	"encoding/xml"
	"fmt"
	"io"
	"strings"
)

// Attr is a single XML attribute.
type Attr struct {
	Name  string
	Value string
}

// Element is a node in the output tree. An element carries either text or
// child elements, never both.
type Element struct {
	Tag      string
	Attrs    []Attr
	Text     string
	Children []*Element
}

// NewElement creates an empty element with the given tag.
func NewElement(tag string) *Element {
	return &Element{Tag: tag}
}

// TextElement creates a leaf element containing the given text.
func TextElement(tag, text string) *Element {
	return &Element{Tag: tag, Text: text}
}

// SetAttr adds an attribute and returns the element for chaining.
func (e *Element) SetAttr(name, value string) *Element {
	e.Attrs = append(e.Attrs, Attr{Name: name, Value: value})
	return e
}

// Append adds child elements, ignoring nils so optional sub-blocks can be
// appended unconditionally.
func (e *Element) Append(children ...*Element) *Element {
	for _, child := range children {
		if child != nil {
			e.Children = append(e.Children, child)
		}
	}
	return e
}

// AppendText adds a leaf child with the given tag and text.
func (e *Element) AppendText(tag, text string) *Element {
	return e.Append(TextElement(tag, text))
}

// Find returns the first descendant reached by the given tag path, or nil.
// It exists for inspection; rendering never queries the tree.
func (e *Element) Find(path ...string) *Element {
	current := e
	for _, tag := range path {
		var next *Element
		for _, child := range current.Children {
			if child.Tag == tag {
				next = child
				break
			}
		}
		if next == nil {
			return nil
		}
		current = next
	}
	return current
}

// Document is a complete XML document with a single root element.
type Document struct {
	Root   *Element
	Indent string
}

// NewDocument wraps the given root element into a document with two-space
// indentation.
func NewDocument(root *Element) *Document {
	return &Document{Root: root, Indent: "  "}
}

// WriteTo serializes the document including the XML declaration.
func (d *Document) WriteTo(w io.Writer) (int64, error) {
	var buf bytes.Buffer
	buf.WriteString(xml.Header)
	if err := writeElement(&buf, d.Root, d.Indent, 0); err != nil {
		return 0, err
	}
	n, err := w.Write(buf.Bytes())
	return int64(n), err
}

// String returns the serialized document.
func (d *Document) String() string {
	var buf strings.Builder
	if _, err := d.WriteTo(&buf); err != nil {
		return ""
	}
	return buf.String()
}

func writeElement(buf *bytes.Buffer, e *Element, indent string, level int) error {
	prefix := strings.Repeat(indent, level)
	buf.WriteString(prefix)
	buf.WriteByte('<')
	buf.WriteString(e.Tag)
	for _, attr := range e.Attrs {
		buf.WriteByte(' ')
		buf.WriteString(attr.Name)
		buf.WriteString(`="`)
		buf.WriteString(escape(attr.Value))
		buf.WriteString(`"`)
	}
	if len(e.Children) == 0 && e.Text == "" {
		buf.WriteString("/>\n")
		return nil
	}
	buf.WriteByte('>')
	if len(e.Children) == 0 {
		buf.WriteString(escape(e.Text))
	} else {
		if e.Text != "" {
			return fmt.Errorf("element <%s> mixes text and children", e.Tag)
		}
		buf.WriteByte('\n')
		for _, child := range e.Children {
			if err := writeElement(buf, child, indent, level+1); err != nil {
				return err
			}
		}
		buf.WriteString(prefix)
	}
	buf.WriteString("</")
	buf.WriteString(e.Tag)
	buf.WriteString(">\n")
	return nil
}

func escape(s string) string {
	var buf bytes.Buffer
	if err := xml.EscapeText(&buf, []byte(s)); err != nil {
		return s
	}
	return buf.String()
}
