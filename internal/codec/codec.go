// Package codec holds the wire formats an account client can be bound to.
package codec

import (
	"io"

	"github.com/carson-networks/compte-client/internal/compte"
)

const (
	FormatJSON = "JSON"
	FormatXML  = "XML"
)

// Codec is a paired serializer/deserializer for one wire format.
type Codec interface {
	// Name is the format token the codec answers to, JSON or XML.
	Name() string
	// ContentType is sent as both Accept and Content-Type.
	ContentType() string
	Marshal(w io.Writer, v any) error
	Unmarshal(data []byte, v any) error
	// UnmarshalAccounts decodes a collection response in order.
	UnmarshalAccounts(data []byte) ([]compte.Account, error)
}

// ForFormat selects the codec for a format token. Only the exact token "XML"
// selects XML; every other value, including the empty string, selects JSON.
func ForFormat(format string) Codec {
	if format == FormatXML {
		return XML{}
	}
	return JSON{}
}
