package main

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/carson-networks/compte-client/internal/compte"
)

func TestParseBalance(t *testing.T) {
	tests := []struct {
		raw      string
		expected float64
		wantErr  bool
	}{
		{raw: "1500", expected: 1500},
		{raw: " -12.25 ", expected: -12.25},
		{raw: "0", expected: 0},
		{raw: "", wantErr: true},
		{raw: "abc", wantErr: true},
		{raw: "1,5", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			balance, err := parseBalance(tt.raw)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, balance)
		})
	}
}

func TestParseType(t *testing.T) {
	accountType, err := parseType("epargne")
	require.NoError(t, err)
	assert.Equal(t, compte.TypeEpargne, accountType)

	_, err = parseType("PEL")
	assert.Error(t, err)
}

func TestRenderAccounts(t *testing.T) {
	var buf bytes.Buffer
	renderAccounts(&buf, []compte.Account{
		{ID: compte.Int64(7), Balance: 1500, Type: compte.TypeCourant, CreationDate: "2025-01-01"},
		{Balance: 0.1, Type: compte.TypeEpargne},
	}, false)

	lines := bytes.Split(bytes.TrimSpace(buf.Bytes()), []byte("\n"))
	require.Len(t, lines, 3)
	assert.Contains(t, string(lines[0]), "DATE CREATION")
	assert.Contains(t, string(lines[1]), "1500.00")
	assert.Contains(t, string(lines[1]), "2025-01-01")
	assert.Contains(t, string(lines[2]), "-")
	assert.Contains(t, string(lines[2]), "0.10")
}

func TestRenderAccounts_Empty(t *testing.T) {
	var buf bytes.Buffer
	renderAccounts(&buf, nil, true)
	assert.Equal(t, "No comptes found\n", buf.String())
}

func TestFindAccount(t *testing.T) {
	accounts := []compte.Account{{ID: compte.Int64(1)}, {}, {ID: compte.Int64(3)}}

	found, ok := findAccount(accounts, 3)
	assert.True(t, ok)
	assert.Equal(t, int64(3), found.IDValue())

	_, ok = findAccount(accounts, 2)
	assert.False(t, ok)
}

func TestConfirm(t *testing.T) {
	var out bytes.Buffer
	assert.True(t, confirm(bytes.NewBufferString("yes\n"), &out, "Delete?"))
	assert.Equal(t, "Delete? [y/N] ", out.String())
	assert.False(t, confirm(bytes.NewBufferString("\n"), &out, "Delete?"))
	assert.False(t, confirm(bytes.NewBufferString(""), &out, "Delete?"))
}
