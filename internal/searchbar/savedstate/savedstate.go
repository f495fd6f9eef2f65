// Package savedstate encodes the search bar snapshot that survives host
// destruction and recreation.
//
// Records use the protobuf wire format without a schema file: each field has
// a fixed number and decoders skip numbers they do not know, so older
// binaries read newer records as long as the schema version allows it.
package savedstate

import (
	"errors"
	"fmt"
	"math"

	"google.golang.org/protobuf/encoding/protowire"
)

// Version is the schema version written by Encode.
const Version = 1

var (
	// ErrMalformed is returned for truncated or corrupt input.
	ErrMalformed = errors.New("savedstate: malformed record")
	// ErrUnsupportedVersion is returned for records newer than Version.
	ErrUnsupportedVersion = errors.New("savedstate: unsupported version")
	// ErrInvalidMode is returned when the left action mode is out of range.
	ErrInvalidMode = errors.New("savedstate: invalid left action mode")
)

// Field numbers. They are part of the persisted format and never change.
const (
	fieldFocused protowire.Number = iota + 1
	fieldQuery
	fieldQueryTextSize
	fieldSearchHint
	fieldShowSearchKey
	fieldTitleMode
	fieldQueryTextColor
	fieldHintTextColor
	fieldOverflowColor
	fieldMenuItemIconColor
	fieldLeftActionColor
	fieldClearButtonColor
	fieldMenuID
	fieldLeftActionMode
	fieldLegacyDuration
	fieldCloseOnKeyboardDismiss
	fieldTitle

	fieldVersion protowire.Number = 100
)

// Record is the persisted snapshot.
type Record struct {
	Focused                bool
	Query                  string
	QueryTextSize          int
	SearchHint             string
	ShowSearchKey          bool
	TitleMode              bool
	QueryTextColor         uint32
	HintTextColor          uint32
	OverflowColor          uint32
	MenuItemIconColor      uint32
	LeftActionColor        uint32
	ClearButtonColor       uint32
	MenuID                 int
	LeftActionMode         int
	LegacyDuration         int64
	CloseOnKeyboardDismiss bool
	Title                  string
}

// ValidMode reports whether m is a left action mode a record may carry.
func ValidMode(m int) bool {
	return m >= 1 && m <= 4
}

// Encode serializes r. Zero values are written too so that a decoder never
// has to guess a default.
func Encode(r Record) []byte {
	var b []byte
	b = appendVarint(b, fieldVersion, Version)
	b = appendBool(b, fieldFocused, r.Focused)
	b = appendString(b, fieldQuery, r.Query)
	b = appendVarint(b, fieldQueryTextSize, protowire.EncodeZigZag(int64(r.QueryTextSize)))
	b = appendString(b, fieldSearchHint, r.SearchHint)
	b = appendBool(b, fieldShowSearchKey, r.ShowSearchKey)
	b = appendBool(b, fieldTitleMode, r.TitleMode)
	b = appendFixed32(b, fieldQueryTextColor, r.QueryTextColor)
	b = appendFixed32(b, fieldHintTextColor, r.HintTextColor)
	b = appendFixed32(b, fieldOverflowColor, r.OverflowColor)
	b = appendFixed32(b, fieldMenuItemIconColor, r.MenuItemIconColor)
	b = appendFixed32(b, fieldLeftActionColor, r.LeftActionColor)
	b = appendFixed32(b, fieldClearButtonColor, r.ClearButtonColor)
	b = appendVarint(b, fieldMenuID, protowire.EncodeZigZag(int64(r.MenuID)))
	b = appendVarint(b, fieldLeftActionMode, protowire.EncodeZigZag(int64(r.LeftActionMode)))
	b = appendVarint(b, fieldLegacyDuration, protowire.EncodeZigZag(r.LegacyDuration))
	b = appendBool(b, fieldCloseOnKeyboardDismiss, r.CloseOnKeyboardDismiss)
	b = appendString(b, fieldTitle, r.Title)
	return b
}

// Decode parses a record produced by Encode.
func Decode(b []byte) (Record, error) {
	var (
		r          Record
		version    uint64
		sawMode    bool
		sawVersion bool
	)
	for len(b) > 0 {
		num, typ, n := protowire.ConsumeTag(b)
		if n < 0 {
			return Record{}, fmt.Errorf("%w: tag: %v", ErrMalformed, protowire.ParseError(n))
		}
		b = b[n:]

		switch typ {
		case protowire.VarintType:
			v, n := protowire.ConsumeVarint(b)
			if n < 0 {
				return Record{}, fmt.Errorf("%w: field %d: %v", ErrMalformed, num, protowire.ParseError(n))
			}
			b = b[n:]
			switch num {
			case fieldVersion:
				version, sawVersion = v, true
			case fieldFocused:
				r.Focused = protowire.DecodeBool(v)
			case fieldShowSearchKey:
				r.ShowSearchKey = protowire.DecodeBool(v)
			case fieldTitleMode:
				r.TitleMode = protowire.DecodeBool(v)
			case fieldCloseOnKeyboardDismiss:
				r.CloseOnKeyboardDismiss = protowire.DecodeBool(v)
			case fieldQueryTextSize:
				size, err := toInt(num, protowire.DecodeZigZag(v))
				if err != nil {
					return Record{}, err
				}
				r.QueryTextSize = size
			case fieldMenuID:
				id, err := toInt(num, protowire.DecodeZigZag(v))
				if err != nil {
					return Record{}, err
				}
				r.MenuID = id
			case fieldLeftActionMode:
				mode, err := toInt(num, protowire.DecodeZigZag(v))
				if err != nil {
					return Record{}, err
				}
				r.LeftActionMode, sawMode = mode, true
			case fieldLegacyDuration:
				r.LegacyDuration = protowire.DecodeZigZag(v)
			}
		case protowire.Fixed32Type:
			v, n := protowire.ConsumeFixed32(b)
			if n < 0 {
				return Record{}, fmt.Errorf("%w: field %d: %v", ErrMalformed, num, protowire.ParseError(n))
			}
			b = b[n:]
			switch num {
			case fieldQueryTextColor:
				r.QueryTextColor = v
			case fieldHintTextColor:
				r.HintTextColor = v
			case fieldOverflowColor:
				r.OverflowColor = v
			case fieldMenuItemIconColor:
				r.MenuItemIconColor = v
			case fieldLeftActionColor:
				r.LeftActionColor = v
			case fieldClearButtonColor:
				r.ClearButtonColor = v
			}
		case protowire.BytesType:
			v, n := protowire.ConsumeBytes(b)
			if n < 0 {
				return Record{}, fmt.Errorf("%w: field %d: %v", ErrMalformed, num, protowire.ParseError(n))
			}
			b = b[n:]
			switch num {
			case fieldQuery:
				r.Query = string(v)
			case fieldSearchHint:
				r.SearchHint = string(v)
			case fieldTitle:
				r.Title = string(v)
			}
		default:
			n := protowire.ConsumeFieldValue(num, typ, b)
			if n < 0 {
				return Record{}, fmt.Errorf("%w: field %d: %v", ErrMalformed, num, protowire.ParseError(n))
			}
			b = b[n:]
		}
	}

	if !sawVersion {
		return Record{}, fmt.Errorf("%w: missing version", ErrMalformed)
	}
	if version > Version {
		return Record{}, fmt.Errorf("%w: %d (supported %d)", ErrUnsupportedVersion, version, Version)
	}
	if !sawMode || !ValidMode(r.LeftActionMode) {
		return Record{}, fmt.Errorf("%w: %d", ErrInvalidMode, r.LeftActionMode)
	}
	return r, nil
}

func toInt(num protowire.Number, v int64) (int, error) {
	if v < math.MinInt32 || v > math.MaxInt32 {
		return 0, fmt.Errorf("%w: field %d out of range: %d", ErrMalformed, num, v)
	}
	return int(v), nil
}

func appendVarint(b []byte, num protowire.Number, v uint64) []byte {
	b = protowire.AppendTag(b, num, protowire.VarintType)
	return protowire.AppendVarint(b, v)
}

func appendBool(b []byte, num protowire.Number, v bool) []byte {
	return appendVarint(b, num, protowire.EncodeBool(v))
}

func appendFixed32(b []byte, num protowire.Number, v uint32) []byte {
	b = protowire.AppendTag(b, num, protowire.Fixed32Type)
	return protowire.AppendFixed32(b, v)
}

func appendString(b []byte, num protowire.Number, v string) []byte {
	b = protowire.AppendTag(b, num, protowire.BytesType)
	return protowire.AppendString(b, v)
}
