package backup

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"wakala/internal/core/apperror"
	"wakala/internal/core/types"
	"wakala/internal/domain/catalogs/counterparty"
	"wakala/internal/domain/currency"
	"wakala/internal/domain/documents"
	"wakala/internal/domain/documents/sale"
)

func testPayload() Payload {
	ahmad := counterparty.New("", "Ahmad", counterparty.KindCustomer)
	s := sale.New(&ahmad.ID, ahmad.Name, "TypeA", 2, types.NewMoneyFromInt(500), currency.YER, documents.StatusCredit)

	return Payload{
		Counterparties: []*counterparty.Counterparty{ahmad},
		Sales:          []*sale.Sale{s},
		ItemTypes:      []string{"TypeA", "TypeB"},
		RateHistory: currency.History{
			currency.NewRate(types.NewMoneyFromInt(430), types.NewMoneyFromInt(425), time.Now()),
		},
	}
}

func TestCodecRoundTrip(t *testing.T) {
	codec, err := NewCodec()
	require.NoError(t, err)

	data, err := codec.Encode(NewArchive(testPayload()))
	require.NoError(t, err)
	require.NotEmpty(t, data)

	a, err := codec.Decode(data)
	require.NoError(t, err)

	assert.Equal(t, Signature, a.Signature)
	require.Len(t, a.Data.Counterparties, 1)
	assert.Equal(t, "Ahmad", a.Data.Counterparties[0].Name)
	require.Len(t, a.Data.Sales, 1)
	assert.True(t, a.Data.Sales[0].Total.Equal(types.NewMoneyFromInt(1000)))
	assert.Equal(t, []string{"TypeA", "TypeB"}, a.Data.ItemTypes)
}

func TestCodecRejectsGarbage(t *testing.T) {
	codec, err := NewCodec()
	require.NoError(t, err)

	_, err = codec.Decode([]byte("not an archive"))
	require.Error(t, err)

	appErr, ok := apperror.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, apperror.CodeBadBackup, appErr.Code)
}

func TestCodecRejectsForeignSignature(t *testing.T) {
	codec, err := NewCodec()
	require.NoError(t, err)

	a := NewArchive(Payload{})
	a.Signature = "SOMEONE_ELSES_SYSTEM"

	data, err := codec.Encode(a)
	require.NoError(t, err)

	_, err = codec.Decode(data)
	require.Error(t, err)

	appErr, ok := apperror.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, apperror.CodeBadBackup, appErr.Code)
}

func TestCodecRejectsUnknownVersion(t *testing.T) {
	codec, err := NewCodec()
	require.NoError(t, err)

	a := NewArchive(Payload{})
	a.Version = "99"

	data, err := codec.Encode(a)
	require.NoError(t, err)

	_, err = codec.Decode(data)
	require.Error(t, err)
}
