package validation

import "encoding/json"

// FlexString accepts either a JSON string or a bare JSON number for fields
// the console submits both ways (price, floor, room_id). The raw text is kept
// so validators can report "not a number" separately from range errors.
type FlexString string

func (f *FlexString) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err == nil {
		*f = FlexString(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(b, &n); err != nil {
		return err
	}
	*f = FlexString(n.String())
	return nil
}

// opt collapses the empty string to "absent" so optional fields reach the
// backend as null instead of "".
func opt(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

// optDefault is opt with a fallback applied when the field is absent.
func optDefault(s, fallback string) *string {
	if s == "" {
		return &fallback
	}
	return &s
}
