package codec

import (
	"encoding/json"
	"io"

	"github.com/carson-networks/compte-client/internal/compte"
)

const ContentTypeJSON = "application/json"

type JSON struct{}

func (JSON) Name() string {
	return FormatJSON
}

func (JSON) ContentType() string {
	return ContentTypeJSON
}

func (JSON) Marshal(w io.Writer, v any) error {
	return json.NewEncoder(w).Encode(v)
}

func (JSON) Unmarshal(data []byte, v any) error {
	return json.Unmarshal(data, v)
}

func (JSON) UnmarshalAccounts(data []byte) ([]compte.Account, error) {
	accounts := []compte.Account{}
	if err := json.Unmarshal(data, &accounts); err != nil {
		return nil, err
	}
	// A literal null decodes to a nil slice.
	if accounts == nil {
		accounts = []compte.Account{}
	}
	return accounts, nil
}
