package soap

import (
	"bytes"
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"strings"

	"payment_gateway_client/internal/domain/entities"
)

// Envelope is a decoded reply: either an action reply or a fault.
type Envelope struct {
	Body  *Node
	Fault *entities.FaultError
}

// Reply is an action reply checked against the action's schema.
type Reply struct {
	Action Action
	Result *Node
}

// Field returns a known reply field, or nil when absent or xsi:nil.
func (r *Reply) Field(name string) *Node {
	n := r.Result.Child(name)
	if !n.Present() {
		return nil
	}
	return n
}

// Text returns the text of a reply field and whether it was provided.
func (r *Reply) Text(name string) (string, bool) {
	return r.Result.Value(name)
}

// Decode parses a raw SOAP document into an Envelope. Malformed input is a
// ParseError; it is never treated as an empty reply.
func Decode(doc []byte) (*Envelope, error) {
	root, err := parseTree(doc)
	if err != nil {
		return nil, &entities.ParseError{Err: err}
	}
	if root.Name != "Envelope" {
		return nil, &entities.ParseError{Err: fmt.Errorf("root element is %q, want Envelope", root.Name)}
	}
	body := root.Child("Body")
	if body == nil || len(body.Children) == 0 {
		return nil, &entities.ParseError{Err: errors.New("envelope has no body content")}
	}

	content := body.Children[0]
	if content.Name == "Fault" {
		code, _ := content.Value("faultcode")
		msg, _ := content.Value("faultstring")
		return &Envelope{Fault: &entities.FaultError{Code: code, Message: msg}}, nil
	}
	return &Envelope{Body: content}, nil
}

// DecodeReply decodes the reply of action. A fault reply is returned as a
// *entities.FaultError; a reply that does not match the schema is a
// *entities.ParseError.
func DecodeReply(action Action, doc []byte) (*Reply, error) {
	schema, err := SchemaFor(action)
	if err != nil {
		return nil, err
	}

	env, err := Decode(doc)
	if err != nil {
		return nil, withAction(err, action)
	}
	if env.Fault != nil {
		return nil, env.Fault
	}

	if want := schema.ResponseElement(action); env.Body.Name != want {
		return nil, &entities.ParseError{Action: string(action), Err: fmt.Errorf("reply element is %q, want %q", env.Body.Name, want)}
	}
	result := env.Body.Child(schema.ResultElement)
	if !result.Present() {
		return nil, &entities.ParseError{Action: string(action), Err: fmt.Errorf("missing %s", schema.ResultElement)}
	}

	filtered := &Node{Name: result.Name}
	for _, c := range result.Children {
		if schema.knows(c.Name) {
			filtered.Children = append(filtered.Children, c)
		}
	}
	for _, name := range schema.Required {
		if _, ok := filtered.Value(name); !ok {
			return nil, &entities.ParseError{Action: string(action), Err: fmt.Errorf("missing required field %s", name)}
		}
	}
	return &Reply{Action: action, Result: filtered}, nil
}

func withAction(err error, action Action) error {
	var pe *entities.ParseError
	if errors.As(err, &pe) && pe.Action == "" {
		return &entities.ParseError{Action: string(action), Err: pe.Err}
	}
	return err
}

// parseTree builds a namespace-free element tree from a document.
func parseTree(doc []byte) (*Node, error) {
	if len(bytes.TrimSpace(doc)) == 0 {
		return nil, errors.New("empty document")
	}

	dec := xml.NewDecoder(bytes.NewReader(doc))
	var (
		root  *Node
		stack []*Node
		text  strings.Builder
	)
	for {
		tok, err := dec.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}

		switch t := tok.(type) {
		case xml.StartElement:
			n := &Node{Name: t.Name.Local}
			for _, a := range t.Attr {
				if a.Name.Local == "nil" && a.Value == "true" {
					n.Nil = true
				}
			}
			if len(stack) == 0 {
				if root != nil {
					return nil, errors.New("multiple root elements")
				}
				root = n
			} else {
				parent := stack[len(stack)-1]
				parent.Children = append(parent.Children, n)
			}
			stack = append(stack, n)
			text.Reset()
		case xml.CharData:
			if len(stack) > 0 {
				text.Write(t)
			}
		case xml.EndElement:
			n := stack[len(stack)-1]
			if len(n.Children) == 0 {
				n.Text = strings.TrimSpace(text.String())
			}
			text.Reset()
			stack = stack[:len(stack)-1]
		}
	}
	if root == nil {
		return nil, errors.New("no root element")
	}
	if len(stack) != 0 {
		return nil, errors.New("unexpected end of document")
	}
	return root, nil
}
