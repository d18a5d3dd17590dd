package types

import (
	"strings"
)

const (
	// KeySeparator joins the segments of a key.
	KeySeparator = "/"
	// AddressSegPrefix marks a segment holding an address.
	AddressSegPrefix = "#"
)

// KeySeg is a single key segment. Exactly one of the address or the string
// form is set.
type KeySeg struct {
	addr *Address
	str  string
}

// AddressSeg returns an address segment.
func AddressSeg(addr Address) KeySeg {
	return KeySeg{addr: &addr}
}

// StringSeg returns a string segment.
func StringSeg(s string) KeySeg {
	return KeySeg{str: s}
}

// Address returns the address of an address segment.
func (s KeySeg) Address() (Address, bool) {
	if s.addr == nil {
		return Address{}, false
	}
	return *s.addr, true
}

// StringValue returns the value of a string segment.
func (s KeySeg) StringValue() (string, bool) {
	if s.addr != nil {
		return "", false
	}
	return s.str, true
}

// IsAddress returns true for address segments.
func (s KeySeg) IsAddress() bool {
	return s.addr != nil
}

// Raw returns the textual form of the segment.
func (s KeySeg) Raw() string {
	if s.addr != nil {
		return AddressSegPrefix + s.addr.String()
	}
	return s.str
}

// Equal compares the segment kinds and values.
func (s KeySeg) Equal(other KeySeg) bool {
	if s.IsAddress() != other.IsAddress() {
		return false
	}
	if s.addr != nil {
		return *s.addr == *other.addr
	}
	return s.str == other.str
}

// ParseKeySeg parses one segment. A leading '#' denotes an address.
func ParseKeySeg(raw string) (KeySeg, error) {
	if err := ValidateKeySeg(raw); err != nil {
		return KeySeg{}, err
	}

	if !strings.HasPrefix(raw, AddressSegPrefix) {
		return StringSeg(raw), nil
	}

	text := strings.TrimPrefix(raw, AddressSegPrefix)
	addr, err := ParseAddress(text)
	if err != nil {
		return KeySeg{}, ErrStorageKey.Wrapf("invalid address segment %q: %s", raw, err)
	}
	if addr.String() != text {
		return KeySeg{}, ErrStorageKey.Wrapf("non-canonical address segment %q", raw)
	}
	return AddressSeg(addr), nil
}

// ValidateKeySeg checks that the string can be stored as one key segment.
func ValidateKeySeg(raw string) error {
	switch {
	case raw == "":
		return ErrStorageKey.Wrap("empty key segment")
	case strings.Contains(raw, KeySeparator):
		return ErrStorageKey.Wrapf("key segment %q contains the separator", raw)
	}
	return nil
}

// Key is an ordered, non-empty sequence of segments. Keys are values; every
// method returns a new key and never mutates the receiver.
type Key struct {
	Segments []KeySeg
}

// KeyFromAddress returns a single-segment key holding the address.
func KeyFromAddress(addr Address) Key {
	return Key{Segments: []KeySeg{AddressSeg(addr)}}
}

// ParseKey parses a '/'-separated key path.
func ParseKey(path string) (Key, error) {
	if path == "" {
		return Key{}, ErrStorageKey.Wrap("empty key")
	}

	raws := strings.Split(path, KeySeparator)
	segs := make([]KeySeg, 0, len(raws))
	for _, raw := range raws {
		seg, err := ParseKeySeg(raw)
		if err != nil {
			return Key{}, err
		}
		segs = append(segs, seg)
	}

	return Key{Segments: segs}, nil
}

// Len returns the number of segments.
func (k Key) Len() int {
	return len(k.Segments)
}

// Push returns a new key with the segment appended.
func (k Key) Push(seg KeySeg) (Key, error) {
	if !seg.IsAddress() {
		if err := ValidateKeySeg(seg.str); err != nil {
			return Key{}, err
		}
	}

	segs := make([]KeySeg, 0, len(k.Segments)+1)
	segs = append(segs, k.Segments...)
	return Key{Segments: append(segs, seg)}, nil
}

// PushString appends a string segment.
func (k Key) PushString(s string) (Key, error) {
	return k.Push(StringSeg(s))
}

// Join returns a new key with the other key's segments appended.
func (k Key) Join(other Key) Key {
	segs := make([]KeySeg, 0, len(k.Segments)+len(other.Segments))
	segs = append(segs, k.Segments...)
	return Key{Segments: append(segs, other.Segments...)}
}

// Equal compares the keys segment-wise.
func (k Key) Equal(other Key) bool {
	if len(k.Segments) != len(other.Segments) {
		return false
	}
	for i := range k.Segments {
		if !k.Segments[i].Equal(other.Segments[i]) {
			return false
		}
	}
	return true
}

// IsPrefixOf returns true when every segment of k leads other.
func (k Key) IsPrefixOf(other Key) bool {
	if len(k.Segments) > len(other.Segments) {
		return false
	}
	for i := range k.Segments {
		if !k.Segments[i].Equal(other.Segments[i]) {
			return false
		}
	}
	return true
}

// String renders the key path.
func (k Key) String() string {
	raws := make([]string, len(k.Segments))
	for i, seg := range k.Segments {
		raws[i] = seg.Raw()
	}
	return strings.Join(raws, KeySeparator)
}

// Bytes returns the store representation of the key.
func (k Key) Bytes() []byte {
	return []byte(k.String())
}

// PrefixBytes returns the store prefix matching every strict descendant of k.
func (k Key) PrefixBytes() []byte {
	return []byte(k.String() + KeySeparator)
}

// KeyFromBytes parses the store representation of a key.
func KeyFromBytes(bz []byte) (Key, error) {
	return ParseKey(string(bz))
}
