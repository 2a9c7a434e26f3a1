package utf8

import "testing"

func FuzzDecoder(f *testing.F) {
	f.Add([]byte("hello"))
	f.Add([]byte{0xC3, 0xA9})
	f.Add([]byte{0xE2, 0x82, 0xAC})
	f.Add([]byte{0xF0, 0x9F, 0x98, 0x80})
	f.Add([]byte{0xFF, 0xFE})
	f.Add([]byte{0x80, 0x80, 0x80})
	f.Add([]byte{0xE2, 0x82, 'A'})

	f.Fuzz(func(t *testing.T, data []byte) {
		d := NewDecoder()
		i := 0
		for i < len(data) {
			r := d.Next(data[i])
			if !r.Consumed {
				// Must make progress on the very next call with the
				// same byte, or the decoder could spin forever on
				// malformed input.
				r2 := d.Next(data[i])
				if !r2.Consumed {
					t.Fatalf("decoder failed to consume byte 0x%02X twice in a row", data[i])
				}
				i++
				continue
			}
			i++
		}
	})
}
