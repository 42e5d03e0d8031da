package urho

import (
	"bytes"
	"encoding/xml"
	"io"
	"os"

	"github.com/pkg/errors"
)

func Encode(w io.Writer, e *Element) error {
	if _, err := io.WriteString(w, xml.Header); err != nil {
		return err
	}
	enc := xml.NewEncoder(w)
	enc.Indent("", "\t")
	if err := enc.Encode(e); err != nil {
		return err
	}
	_, err := io.WriteString(w, "\n")
	return err
}

func Marshal(e *Element) ([]byte, error) {
	var buf bytes.Buffer
	err := Encode(&buf, e)
	return buf.Bytes(), err
}

func Decode(r io.Reader) (*Element, error) {
	var e Element
	if err := xml.NewDecoder(r).Decode(&e); err != nil {
		return nil, err
	}
	e.relink()
	return &e, nil
}

func WriteFile(path string, e *Element) (err error) {
	w, err := os.Create(path)
	if err != nil {
		return errors.Wrap(err, "create xml")
	}
	defer func() {
		if cerr := w.Close(); err == nil {
			err = errors.Wrapf(cerr, "close %s", path)
		}
	}()
	return errors.Wrapf(Encode(w, e), "write %s", path)
}

func ReadFile(path string) (*Element, error) {
	r, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrap(err, "open xml")
	}
	defer r.Close()
	e, err := Decode(r)
	return e, errors.Wrapf(err, "parse %s", path)
}
