package savedstate

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/protobuf/encoding/protowire"
)

func sampleRecord() Record {
	return Record{
		Focused:                true,
		Query:                  "héllo wörld",
		QueryTextSize:          22,
		SearchHint:             "Find...",
		ShowSearchKey:          false,
		TitleMode:              true,
		QueryTextColor:         0xFF112233,
		HintTextColor:          0x80AABBCC,
		OverflowColor:          0xFF000000,
		MenuItemIconColor:      0xFFFFFFFF,
		LeftActionColor:        0xFF123456,
		ClearButtonColor:       0xFF654321,
		MenuID:                 -1,
		LeftActionMode:         3,
		CloseOnKeyboardDismiss: true,
		Title:                  "Inbox",
	}
}

func TestEncodeDecode(t *testing.T) {
	tests := []struct {
		name string
		rec  Record
	}{
		{name: "populated", rec: sampleRecord()},
		{name: "zero values with valid mode", rec: Record{LeftActionMode: 4}},
		{name: "empty strings and large menu id", rec: Record{LeftActionMode: 1, MenuID: 1 << 20}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Decode(Encode(tt.rec))
			require.NoError(t, err)
			assert.Equal(t, tt.rec, got)
		})
	}
}

func TestDecodeSkipsUnknownFields(t *testing.T) {
	b := Encode(sampleRecord())
	b = protowire.AppendTag(b, 42, protowire.BytesType)
	b = protowire.AppendString(b, "from the future")
	b = protowire.AppendTag(b, 43, protowire.VarintType)
	b = protowire.AppendVarint(b, 7)
	b = protowire.AppendTag(b, 44, protowire.Fixed64Type)
	b = protowire.AppendFixed64(b, 99)

	got, err := Decode(b)
	require.NoError(t, err)
	assert.Equal(t, sampleRecord(), got)
}

func TestDecodeRejectsNewerVersion(t *testing.T) {
	var b []byte
	b = appendVarint(b, fieldVersion, Version+1)
	b = appendVarint(b, fieldLeftActionMode, protowire.EncodeZigZag(1))

	_, err := Decode(b)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrUnsupportedVersion))
}

func TestDecodeRejectsMissingVersion(t *testing.T) {
	b := appendVarint(nil, fieldLeftActionMode, protowire.EncodeZigZag(1))

	_, err := Decode(b)
	assert.ErrorIs(t, err, ErrMalformed)
}

func TestDecodeRejectsInvalidMode(t *testing.T) {
	for _, mode := range []int{-1, 0, 5, 42} {
		rec := sampleRecord()
		rec.LeftActionMode = mode
		_, err := Decode(Encode(rec))
		assert.ErrorIs(t, err, ErrInvalidMode, "mode %d", mode)
	}
}

func TestDecodeRejectsMissingMode(t *testing.T) {
	b := appendVarint(nil, fieldVersion, Version)

	_, err := Decode(b)
	assert.ErrorIs(t, err, ErrInvalidMode)
}

func TestDecodeRejectsTruncatedInput(t *testing.T) {
	full := Encode(sampleRecord())
	// Cut inside the query string payload.
	truncated := full[:8]

	_, err := Decode(truncated)
	assert.ErrorIs(t, err, ErrMalformed)
}

func TestDecodeRejectsOutOfRangeInt(t *testing.T) {
	var b []byte
	b = appendVarint(b, fieldVersion, Version)
	b = appendVarint(b, fieldLeftActionMode, protowire.EncodeZigZag(1))
	b = appendVarint(b, fieldMenuID, protowire.EncodeZigZag(1<<40))

	_, err := Decode(b)
	assert.ErrorIs(t, err, ErrMalformed)
}

func TestDecodeEmpty(t *testing.T) {
	_, err := Decode(nil)
	assert.ErrorIs(t, err, ErrMalformed)
}
