package codec

import "github.com/arloliu/ordcode/params"

// CalculateSize returns the exact number of bytes v.EncodeOrdcode would
// write under preset, without allocating or writing any of them.
func CalculateSize(v Encodable, preset params.Preset) (int, error) {
	sc := &SizeCalculator{}
	enc := NewEncoder(sc, preset)

	if err := v.EncodeOrdcode(enc); err != nil {
		return 0, err
	}

	return sc.Size(), nil
}

// SizeCalculator implements buffer.WriteTail by counting bytes instead of
// storing them. Driving an *Encoder backed by a SizeCalculator through a
// value's EncodeOrdcode method computes the exact size a real encode would
// produce, since both walks make identical calls in identical order — see
// the package doc for why this replaces a second, hand-written visitor.
type SizeCalculator struct {
	size int
}

func (c *SizeCalculator) Write(value []byte) error {
	c.size += len(value)

	return nil
}

func (c *SizeCalculator) WriteTail(value []byte) error {
	return c.Write(value)
}

// Size returns the accumulated byte count.
func (c *SizeCalculator) Size() int { return c.size }
