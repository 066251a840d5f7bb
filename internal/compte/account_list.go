package compte

import "encoding/xml"

// listElement is the XML root a list response is wrapped in.
const listElement = "List"

// AccountList is a collection response. It marshals to a bare JSON array
// and to a <List> element wrapping one <item> per account in XML.
type AccountList []Account

func (l AccountList) MarshalXML(e *xml.Encoder, start xml.StartElement) error {
	start.Name = xml.Name{Local: listElement}
	start.Attr = nil
	if err := e.EncodeToken(start); err != nil {
		return err
	}
	for _, a := range l {
		if err := e.Encode(a); err != nil {
			return err
		}
	}
	if err := e.EncodeToken(start.End()); err != nil {
		return err
	}
	return e.Flush()
}

func (l *AccountList) UnmarshalXML(d *xml.Decoder, start xml.StartElement) error {
	var wrapper struct {
		Items []Account `xml:"item"`
	}
	if err := d.DecodeElement(&wrapper, &start); err != nil {
		return err
	}
	if wrapper.Items == nil {
		wrapper.Items = []Account{}
	}
	*l = wrapper.Items
	return nil
}
