// Package urho builds and serializes Urho3D scene and prefab XML.
package urho

import "encoding/xml"

const (
	TagScene     = "scene"
	TagNode      = "node"
	TagComponent = "component"
	TagAttribute = "attribute"
)

// FirstLocalID is the first node/component id outside the replicated range.
const FirstLocalID = 0x1000000

// Element is a generic XML element. Unknown content read from disk is kept as is.
// An element has at most one parent; Append moves it.
type Element struct {
	XMLName  xml.Name
	Attrs    []xml.Attr `xml:",any,attr"`
	Children []*Element `xml:",any"`

	parent *Element
}

func NewElement(tag string) *Element {
	return &Element{XMLName: xml.Name{Local: tag}}
}

// NewNode returns a <node>. id 0 omits the id attribute.
func NewNode(id int) *Element {
	e := NewElement(TagNode)
	if id != 0 {
		e.SetAttr("id", FormatInt(id))
	}
	return e
}

func NewScene(id int) *Element {
	e := NewElement(TagScene)
	e.SetAttr("id", FormatInt(id))
	return e
}

// NewComponent returns a <component>. id 0 omits the id attribute.
func NewComponent(typ string, id int) *Element {
	e := NewElement(TagComponent)
	e.SetAttr("type", typ)
	if id != 0 {
		e.SetAttr("id", FormatInt(id))
	}
	return e
}

func NewAttribute(name, value string) *Element {
	e := NewElement(TagAttribute)
	e.SetAttr("name", name)
	e.SetAttr("value", value)
	return e
}

func (e *Element) Tag() string {
	return e.XMLName.Local
}

func (e *Element) Parent() *Element {
	return e.parent
}

func (e *Element) Attr(name string) (string, bool) {
	for _, a := range e.Attrs {
		if a.Name.Local == name && a.Name.Space == "" {
			return a.Value, true
		}
	}
	return "", false
}

func (e *Element) SetAttr(name, value string) {
	for i, a := range e.Attrs {
		if a.Name.Local == name && a.Name.Space == "" {
			e.Attrs[i].Value = value
			return
		}
	}
	e.Attrs = append(e.Attrs, xml.Attr{Name: xml.Name{Local: name}, Value: value})
}

// Append adds children to e, detaching each from its previous parent.
func (e *Element) Append(children ...*Element) *Element {
	for _, c := range children {
		c.Detach()
		c.parent = e
		e.Children = append(e.Children, c)
	}
	return e
}

// Detach removes e from its parent.
func (e *Element) Detach() {
	p := e.parent
	if p == nil {
		return
	}
	for i, c := range p.Children {
		if c == e {
			p.Children = append(p.Children[:i], p.Children[i+1:]...)
			break
		}
	}
	e.parent = nil
}

// FindAll returns the direct children with the given tag.
func (e *Element) FindAll(tag string) []*Element {
	var found []*Element
	for _, c := range e.Children {
		if c.Tag() == tag {
			found = append(found, c)
		}
	}
	return found
}

// Attribute returns the direct <attribute> child with the given name.
func (e *Element) Attribute(name string) *Element {
	for _, c := range e.FindAll(TagAttribute) {
		if n, _ := c.Attr("name"); n == name {
			return c
		}
	}
	return nil
}

// AttributeValue returns the value of the named <attribute> child.
func (e *Element) AttributeValue(name string) (string, bool) {
	if a := e.Attribute(name); a != nil {
		return a.Attr("value")
	}
	return "", false
}

// SetAttribute updates the named <attribute> child or appends a new one.
// It reports whether an attribute was appended.
func (e *Element) SetAttribute(name, value string) bool {
	if a := e.Attribute(name); a != nil {
		a.SetAttr("value", value)
		return false
	}
	e.Append(NewAttribute(name, value))
	return true
}

// Component returns the first direct <component> child of the given type.
func (e *Element) Component(typ string) *Element {
	for _, c := range e.FindAll(TagComponent) {
		if t, _ := c.Attr("type"); t == typ {
			return c
		}
	}
	return nil
}

func (e *Element) relink() {
	for _, c := range e.Children {
		c.parent = e
		c.relink()
	}
}
