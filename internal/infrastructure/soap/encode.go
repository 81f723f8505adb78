package soap

import (
	"bytes"
	"encoding/xml"
	"fmt"
	"sort"

	"payment_gateway_client/internal/domain/entities"
)

const (
	actionPrefix = "ns1"
	commonPrefix = "common"
)

// Encode serializes an action request into a SOAP envelope.
//
// Top-level request fields are reordered to the action's schema order; a
// field the schema does not know is rejected. Nested elements keep the order
// they were built in. Credentials are never part of the document.
// Every failure is a *entities.ValidationError naming the offending element.
func Encode(action Action, fields ...*Node) ([]byte, error) {
	schema, err := SchemaFor(action)
	if err != nil {
		return nil, entities.NewValidationError(err.Error(), "action")
	}

	ordered := make([]*Node, 0, len(fields))
	for _, f := range fields {
		if f == nil {
			continue
		}
		if schema.position(f.Name) < 0 {
			return nil, entities.NewValidationError(fmt.Sprintf("field is not part of %s", action), f.Name)
		}
		ordered = append(ordered, f)
	}
	sort.SliceStable(ordered, func(i, j int) bool {
		return schema.position(ordered[i].Name) < schema.position(ordered[j].Name)
	})

	var buf bytes.Buffer
	buf.WriteString(xml.Header)
	fmt.Fprintf(&buf, `<soap:Envelope xmlns:soap="%s" xmlns:xsd="%s" xmlns:xsi="%s">`, NamespaceEnvelope, NamespaceXSD, NamespaceXSI)
	buf.WriteString(`<soap:Header/>`)
	buf.WriteString(`<soap:Body>`)
	fmt.Fprintf(&buf, `<%s:%s xmlns:%s="%s" xmlns:%s="%s">`, actionPrefix, action, actionPrefix, schema.Namespace, commonPrefix, NamespaceCommon)
	fmt.Fprintf(&buf, `<%s:%s>`, actionPrefix, schema.RequestElement)
	for _, f := range ordered {
		if err := writeNode(&buf, f, false); err != nil {
			return nil, err
		}
	}
	fmt.Fprintf(&buf, `</%s:%s>`, actionPrefix, schema.RequestElement)
	fmt.Fprintf(&buf, `</%s:%s>`, actionPrefix, action)
	buf.WriteString(`</soap:Body></soap:Envelope>`)
	return buf.Bytes(), nil
}

func writeNode(buf *bytes.Buffer, n *Node, common bool) error {
	if n.Name == "" {
		return entities.NewValidationError("element without a name", "element")
	}
	common = common || n.Common
	prefix := actionPrefix
	if common {
		prefix = commonPrefix
	}

	if n.Nil {
		fmt.Fprintf(buf, `<%s:%s xsi:nil="true"/>`, prefix, n.Name)
		return nil
	}

	fmt.Fprintf(buf, `<%s:%s>`, prefix, n.Name)
	if len(n.Children) > 0 {
		for _, c := range n.Children {
			if err := writeNode(buf, c, common); err != nil {
				return err
			}
		}
	} else if err := xml.EscapeText(buf, []byte(n.Text)); err != nil {
		return entities.NewValidationError(err.Error(), n.Name)
	}
	fmt.Fprintf(buf, `</%s:%s>`, prefix, n.Name)
	return nil
}
