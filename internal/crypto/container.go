package crypto

// The game writes its save through .NET BinaryFormatter as a single
// length-prefixed string record. Only the parts we emit are modelled here.

// binaryFormatterPreamble is the serialization header followed by the
// BinaryObjectString record prefix (record type 6, object id 1).
var binaryFormatterPreamble = [...]byte{
	0x00, 0x01, 0x00, 0x00, 0x00, 0xFF, 0xFF, 0xFF, 0xFF, 0x01, 0x00,
	0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x06, 0x01, 0x00, 0x00, 0x00,
}

// containerTrailer is the MessageEnd record.
const containerTrailer byte = 0x0B

// lengthPrefixSize is the width of the 7-bit encoded payload length. Real
// saves are always large enough to need three bytes, and Decrypt relies on
// the header having a fixed size.
const lengthPrefixSize = HeaderSize - len(binaryFormatterPreamble)

// maxPrefixedLength is the largest length three 7-bit groups can carry.
const maxPrefixedLength = 1<<(7*lengthPrefixSize) - 1

// appendHeader appends the preamble and the payload length encoded as a
// 7-bit varint padded to exactly lengthPrefixSize bytes. Lengths beyond
// maxPrefixedLength saturate.
func appendHeader(dst []byte, payloadLen int) []byte {
	dst = append(dst, binaryFormatterPreamble[:]...)

	n := min(payloadLen, maxPrefixedLength)
	for i := range lengthPrefixSize {
		b := byte(n & 0x7F)
		n >>= 7
		if i < lengthPrefixSize-1 {
			b |= 0x80
		}
		dst = append(dst, b)
	}
	return dst
}
