package raycast

import (
	"bufio"
	"encoding/binary"
	"fmt"
	"os"
	"path/filepath"
)

// SaveRawRGB8 dumps the buffer: width and height as little-endian int32,
// then Width*Height RGB triples in row-major order.
func (m *Image) SaveRawRGB8(path string) error {
	if m.Width <= 0 || m.Height <= 0 {
		return fmt.Errorf("non-positive dimensions: %dx%d", m.Width, m.Height)
	}
	if len(m.Pix) != m.Width*m.Height {
		return fmt.Errorf("Pix length mismatch: got %d, expected %d (Width*Height)", len(m.Pix), m.Width*m.Height)
	}

	// Make sure parent directory exists.
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	w := bufio.NewWriter(f)

	// Header: Width, Height as int32 (little-endian)
	if err := binary.Write(w, binary.LittleEndian, int32(m.Width)); err != nil {
		return err
	}
	if err := binary.Write(w, binary.LittleEndian, int32(m.Height)); err != nil {
		return err
	}
	// Body: [3]uint8 per pixel, written in one shot
	if err := binary.Write(w, binary.LittleEndian, m.Pix); err != nil {
		return err
	}
	if err := w.Flush(); err != nil {
		return err
	}
	return f.Close()
}
