package payload

import "errors"

// ErrPayloadTooLarge is returned when the uncompressed payload does not fit
// the 16-bit length field of the header.
var ErrPayloadTooLarge = errors.New("payload too large")
