package compte

import (
	"encoding/json"
	"encoding/xml"
	"reflect"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func tagName(tag string) string {
	name, _, _ := strings.Cut(tag, ",")
	return name
}

// The JSON and XML names must be the same table.
func TestAccount_WireNamesAgree(t *testing.T) {
	typ := reflect.TypeOf(Account{})
	expected := map[string]string{
		"ID":           "id",
		"Balance":      "solde",
		"Type":         "type",
		"CreationDate": "dateCreation",
	}

	for i := 0; i < typ.NumField(); i++ {
		field := typ.Field(i)
		if field.Name == "XMLName" {
			assert.Equal(t, "item", field.Tag.Get("xml"))
			assert.Equal(t, "-", field.Tag.Get("json"))
			continue
		}
		jsonName := tagName(field.Tag.Get("json"))
		xmlName := tagName(field.Tag.Get("xml"))
		assert.Equal(t, expected[field.Name], jsonName, field.Name)
		assert.Equal(t, jsonName, xmlName, field.Name)
	}
}

func TestAccount_JSONRoundTrip(t *testing.T) {
	accounts := []Account{
		{ID: Int64(7), Balance: 1500, Type: TypeCourant, CreationDate: "2025-01-01"},
		{Balance: -12.75, Type: TypeEpargne, CreationDate: "2024-12-31"},
		{ID: Int64(0), Balance: 0, Type: "INCONNU"},
	}

	for _, a := range accounts {
		data, err := json.Marshal(a)
		require.NoError(t, err)

		var decoded Account
		require.NoError(t, json.Unmarshal(data, &decoded))
		assert.True(t, a.Equal(decoded), "%s != %s", a, decoded)
	}
}

func TestAccount_XMLRoundTrip(t *testing.T) {
	accounts := []Account{
		{ID: Int64(7), Balance: 1500, Type: TypeCourant, CreationDate: "2025-01-01"},
		{Balance: 2000.5, Type: TypeEpargne, CreationDate: "2025-01-01"},
		{ID: Int64(42), Balance: -0.01},
	}

	for _, a := range accounts {
		data, err := xml.Marshal(a)
		require.NoError(t, err)
		assert.True(t, strings.HasPrefix(string(data), "<item>"), string(data))

		var decoded Account
		require.NoError(t, xml.Unmarshal(data, &decoded))
		assert.True(t, a.Equal(decoded), "%s != %s", a, decoded)
	}
}

func TestAccount_JSONOmitsNilID(t *testing.T) {
	data, err := json.Marshal(Account{Balance: 10, Type: TypeCourant, CreationDate: "2025-01-01"})
	require.NoError(t, err)

	assert.JSONEq(t, `{"solde":10,"type":"COURANT","dateCreation":"2025-01-01"}`, string(data))
}

func TestAccount_XMLAnyOrderAllOptional(t *testing.T) {
	var a Account
	err := xml.Unmarshal([]byte(`<item><dateCreation>2025-02-03</dateCreation><extra>x</extra><solde>3.5</solde></item>`), &a)
	require.NoError(t, err)

	assert.Nil(t, a.ID)
	assert.Equal(t, 3.5, a.Balance)
	assert.Equal(t, "", a.Type)
	assert.Equal(t, "2025-02-03", a.CreationDate)
}

func TestAccount_JSONNullID(t *testing.T) {
	var a Account
	require.NoError(t, json.Unmarshal([]byte(`{"id":null,"solde":1}`), &a))
	assert.False(t, a.HasID())
	assert.Equal(t, int64(0), a.IDValue())
}

func TestAccount_XMLEmptyIDIsUnset(t *testing.T) {
	for _, body := range []string{
		"<item><id/><solde>1</solde></item>",
		"<item><id>  </id><solde>1</solde></item>",
	} {
		var a Account
		require.NoError(t, xml.Unmarshal([]byte(body), &a), body)
		assert.False(t, a.HasID(), body)
		assert.Equal(t, 1.0, a.Balance)
	}

	var a Account
	require.NoError(t, xml.Unmarshal([]byte("<item><id> 42 </id></item>"), &a))
	assert.Equal(t, int64(42), a.IDValue())

	assert.Error(t, xml.Unmarshal([]byte("<item><id>x</id></item>"), &a))
}

func TestAccount_WithAndWithoutID(t *testing.T) {
	a := Account{ID: Int64(3), Balance: 1}

	stripped := a.WithoutID()
	assert.Nil(t, stripped.ID)
	assert.Equal(t, int64(3), a.IDValue(), "original untouched")

	replaced := stripped.WithID(9)
	assert.Equal(t, int64(9), replaced.IDValue())
	assert.Nil(t, stripped.ID)
}

func TestAccount_String(t *testing.T) {
	assert.Equal(t, "Compte{id=null, solde=1500, type='COURANT', dateCreation='2025-01-01'}",
		Account{Balance: 1500, Type: TypeCourant, CreationDate: "2025-01-01"}.String())
	assert.Equal(t, "Compte{id=7, solde=2.5, type='EPARGNE', dateCreation=''}",
		Account{ID: Int64(7), Balance: 2.5, Type: TypeEpargne}.String())
}

func TestAccountList_XML(t *testing.T) {
	list := AccountList{
		{ID: Int64(1), Balance: 10, Type: TypeCourant, CreationDate: "2025-01-01"},
		{ID: Int64(2), Balance: 20, Type: TypeEpargne, CreationDate: "2025-01-02"},
	}

	data, err := xml.Marshal(list)
	require.NoError(t, err)
	assert.Equal(t,
		"<List><item><id>1</id><solde>10</solde><type>COURANT</type><dateCreation>2025-01-01</dateCreation></item>"+
			"<item><id>2</id><solde>20</solde><type>EPARGNE</type><dateCreation>2025-01-02</dateCreation></item></List>",
		string(data))

	var decoded AccountList
	require.NoError(t, xml.Unmarshal(data, &decoded))
	require.Len(t, decoded, 2)
	assert.True(t, list[1].Equal(decoded[1]))
}

func TestAccountList_JSONIsBareArray(t *testing.T) {
	data, err := json.Marshal(AccountList{})
	require.NoError(t, err)
	assert.Equal(t, "[]", string(data))
}

func TestAccountList_EmptyXML(t *testing.T) {
	var decoded AccountList
	require.NoError(t, xml.Unmarshal([]byte("<List></List>"), &decoded))
	assert.NotNil(t, decoded)
	assert.Empty(t, decoded)
}
