package icon

import (
	"errors"
	"fmt"
	"io"

	"github.com/Mavwarf/mkicons/internal/paths"
)

var (
	// ErrEncoderUnavailable is returned when a Renderer has no Encoder to
	// produce PNG bytes with.
	ErrEncoderUnavailable = errors.New("png encoder not available")

	// ErrInvalidSize is returned for a zero or negative icon size.
	ErrInvalidSize = errors.New("icon size must be positive")
)

// Renderer draws icons and encodes them with Encoder. Progress lines go to
// Out when it is non-nil.
type Renderer struct {
	Encoder Encoder
	Out     io.Writer
}

// NewRenderer returns a Renderer using PNGEncoder.
func NewRenderer(out io.Writer) *Renderer {
	return &Renderer{Encoder: PNGEncoder{}, Out: out}
}

// Render returns the PNG bytes of a size×size icon without touching disk.
func (r *Renderer) Render(size int) ([]byte, error) {
	if size <= 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidSize, size)
	}
	if r.Encoder == nil {
		return nil, ErrEncoderUnavailable
	}
	data, err := r.Encoder.EncodePNG(Draw(size))
	if err != nil {
		return nil, fmt.Errorf("encode %dx%d: %w", size, size, err)
	}
	return data, nil
}

// RenderFile renders a size×size icon to path, replacing any existing file.
// The directory holding path must already exist.
func (r *Renderer) RenderFile(size int, path string) error {
	data, err := r.Render(size)
	if err != nil {
		return err
	}
	if err := paths.AtomicWrite(path, data); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	if r.Out != nil {
		fmt.Fprintf(r.Out, "Created %s (%dx%d)\n", path, size, size)
	}
	return nil
}
