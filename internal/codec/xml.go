package codec

import (
	"bytes"
	"encoding/xml"
	"errors"
	"fmt"
	"io"

	"github.com/carson-networks/compte-client/internal/compte"
)

const (
	ContentTypeXML = "application/xml"

	itemElement = "item"
)

var (
	ErrNoXMLElement   = errors.New("codec: no xml element in body")
	ErrNotAccountList = errors.New("codec: xml body is not a compte list")
)

type XML struct{}

func (XML) Name() string {
	return FormatXML
}

func (XML) ContentType() string {
	return ContentTypeXML
}

func (XML) Marshal(w io.Writer, v any) error {
	return xml.NewEncoder(w).Encode(v)
}

func (XML) Unmarshal(data []byte, v any) error {
	return xml.Unmarshal(data, v)
}

// UnmarshalAccounts collects every <item> element in document order. Both a
// wrapped list (<List><item/>...</List>) and a bare run of <item> elements
// are accepted. A body with no element at all, or a wrapper holding anything
// other than <item> elements, is an error.
func (XML) UnmarshalAccounts(data []byte) ([]compte.Account, error) {
	decoder := xml.NewDecoder(bytes.NewReader(data))
	accounts := []compte.Account{}
	sawElement := false
	wrapped := false
	depth := 0

	for {
		token, err := decoder.Token()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, err
		}

		switch t := token.(type) {
		case xml.StartElement:
			sawElement = true
			if t.Name.Local == itemElement {
				var account compte.Account
				if err := decoder.DecodeElement(&account, &t); err != nil {
					return nil, err
				}
				accounts = append(accounts, account)
				continue
			}
			// Only one wrapper, and only around items.
			if depth > 0 || wrapped || len(accounts) > 0 {
				return nil, fmt.Errorf("%w: unexpected <%s>", ErrNotAccountList, t.Name.Local)
			}
			wrapped = true
			depth++
		case xml.EndElement:
			depth--
		case xml.CharData:
			if len(bytes.TrimSpace(t)) != 0 {
				return nil, fmt.Errorf("%w: unexpected text", ErrNotAccountList)
			}
		}
	}

	if !sawElement {
		return nil, ErrNoXMLElement
	}
	return accounts, nil
}
