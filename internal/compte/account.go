package compte

import (
	"encoding/xml"
	"fmt"
	"strconv"
	"strings"
)

const (
	TypeCourant = "COURANT"
	TypeEpargne = "EPARGNE"
)

// Account is one bank account as exchanged with the Compte service.
// The struct tags are the single field-to-wire-name table used by both the
// JSON and the XML codec. Every field is optional on decode.
type Account struct {
	XMLName xml.Name `json:"-" xml:"item"`

	ID           *int64  `json:"id,omitempty" xml:"id,omitempty" doc:"Server assigned identifier"`
	Balance      float64 `json:"solde" xml:"solde" doc:"Account balance"`
	Type         string  `json:"type,omitempty" xml:"type,omitempty" doc:"COURANT or EPARGNE"`
	CreationDate string  `json:"dateCreation,omitempty" xml:"dateCreation,omitempty" doc:"Creation date, YYYY-MM-DD"`
}

// Int64 returns a pointer to v, for building accounts with a known id.
func Int64(v int64) *int64 {
	return &v
}

// HasID reports whether the server has assigned an id.
func (a Account) HasID() bool {
	return a.ID != nil
}

// IDValue returns the id, or 0 when unset.
func (a Account) IDValue() int64 {
	if a.ID == nil {
		return 0
	}
	return *a.ID
}

// WithoutID returns a copy of a with the id cleared.
func (a Account) WithoutID() Account {
	a.ID = nil
	return a
}

// WithID returns a copy of a carrying id.
func (a Account) WithID(id int64) Account {
	a.ID = Int64(id)
	return a
}

// Equal compares the four wire fields. Diagnostics and tests only.
func (a Account) Equal(other Account) bool {
	if a.HasID() != other.HasID() {
		return false
	}
	if a.HasID() && *a.ID != *other.ID {
		return false
	}
	return a.Balance == other.Balance &&
		a.Type == other.Type &&
		a.CreationDate == other.CreationDate
}

// UnmarshalXML reads an item element. An empty <id/>, the XML rendering of a
// null id, leaves the id unset.
func (a *Account) UnmarshalXML(d *xml.Decoder, start xml.StartElement) error {
	type Fields Account
	var wire struct {
		Fields
		ID string `xml:"id"`
	}
	if err := d.DecodeElement(&wire, &start); err != nil {
		return err
	}

	*a = Account(wire.Fields)
	a.ID = nil
	if raw := strings.TrimSpace(wire.ID); raw != "" {
		id, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return fmt.Errorf("compte: id %q: %w", raw, err)
		}
		a.ID = &id
	}
	return nil
}

func (a Account) String() string {
	id := "null"
	if a.ID != nil {
		id = fmt.Sprintf("%d", *a.ID)
	}
	return fmt.Sprintf("Compte{id=%s, solde=%v, type='%s', dateCreation='%s'}", id, a.Balance, a.Type, a.CreationDate)
}
