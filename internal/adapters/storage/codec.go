package storage

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/jsamuelsen11/phonebook/internal/domain/contact"
)

// Supported document formats.
const (
	FormatJSON = "json"
	FormatYAML = "yaml"
)

// documentVersion is the only envelope version this package reads and writes.
const documentVersion = 1

var errUnsupportedVersion = errors.New("unsupported document version")

// document is the on-disk envelope.
type document struct {
	Version  int      `json:"version"  yaml:"version"`
	Contacts []record `json:"contacts" yaml:"contacts"`
}

// record is the persisted shape of one contact.
type record struct {
	Name     string `json:"name"     yaml:"name"`
	Phone    string `json:"phone"    yaml:"phone"`
	Category string `json:"category" yaml:"category"`
}

// codec converts between the contact sequence and encoded bytes.
type codec interface {
	encode(doc document) ([]byte, error)
	decode(b []byte) (document, error)
}

func newCodec(format string) (codec, error) {
	switch format {
	case "", FormatJSON:
		s, err := compileSchema()
		if err != nil {
			return nil, err
		}
		return jsonCodec{schema: s}, nil
	case FormatYAML:
		return yamlCodec{}, nil
	default:
		return nil, fmt.Errorf("unsupported format %q", format)
	}
}

type jsonCodec struct {
	schema *documentSchema
}

func (jsonCodec) encode(doc document) ([]byte, error) {
	b, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return nil, err
	}
	return append(b, '\n'), nil
}

func (c jsonCodec) decode(b []byte) (document, error) {
	if err := c.schema.validate(b); err != nil {
		return document{}, err
	}
	var doc document
	if err := json.Unmarshal(b, &doc); err != nil {
		return document{}, fmt.Errorf("decoding json: %w", err)
	}
	return doc, nil
}

type yamlCodec struct{}

func (yamlCodec) encode(doc document) ([]byte, error) {
	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(doc); err != nil {
		return nil, fmt.Errorf("encoding yaml: %w", err)
	}
	if err := enc.Close(); err != nil {
		return nil, fmt.Errorf("encoding yaml: %w", err)
	}
	return buf.Bytes(), nil
}

func (yamlCodec) decode(b []byte) (document, error) {
	var doc document
	dec := yaml.NewDecoder(bytes.NewReader(b))
	dec.KnownFields(true)
	if err := dec.Decode(&doc); err != nil {
		return document{}, fmt.Errorf("decoding yaml: %w", err)
	}
	return doc, nil
}

// toDocument converts the sequence into the envelope. Nil entries are
// skipped.
func toDocument(contacts []*contact.Contact) document {
	doc := document{Version: documentVersion, Contacts: make([]record, 0, len(contacts))}
	for _, c := range contacts {
		if c == nil {
			continue
		}
		doc.Contacts = append(doc.Contacts, record{
			Name:     c.Name,
			Phone:    c.Phone,
			Category: c.Category.String(),
		})
	}
	return doc
}

// fromDocument checks the envelope version and builds fresh contacts in
// document order.
func fromDocument(doc document) ([]*contact.Contact, error) {
	if doc.Version != documentVersion {
		return nil, fmt.Errorf("%w: %d", errUnsupportedVersion, doc.Version)
	}
	out := make([]*contact.Contact, 0, len(doc.Contacts))
	for _, r := range doc.Contacts {
		out = append(out, contact.New(r.Name, r.Phone, contact.Category(r.Category)))
	}
	return out, nil
}
