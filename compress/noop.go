package compress

// NoOpCodec stores payloads verbatim.
type NoOpCodec struct{}

var _ Codec = NoOpCodec{}

// NewNoOpCodec creates the codec registered under None.
func NewNoOpCodec() NoOpCodec {
	return NoOpCodec{}
}

// Compress returns src unchanged.
func (NoOpCodec) Compress(src []byte) ([]byte, error) {
	return src, nil
}

// Decompress copies src into dst.
func (NoOpCodec) Decompress(dst, src []byte) error {
	if err := checkLength(len(src), len(dst)); err != nil {
		return err
	}
	copy(dst, src)
	return nil
}
