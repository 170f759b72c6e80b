package icon

import (
	"bytes"
	"compress/zlib"
	"encoding/binary"
	"hash/crc32"
	"image"

	"golang.org/x/image/draw"
)

// Encoder turns a raster into PNG bytes.
type Encoder interface {
	EncodePNG(img image.Image) ([]byte, error)
}

// PNGEncoder writes 8-bit RGBA PNGs (color type 6). image/png drops the
// alpha channel for fully opaque images, and extension manifests expect
// icons with one. Output carries no timestamps or other ancillary chunks,
// so the same image always encodes to the same bytes.
type PNGEncoder struct{}

var pngSignature = []byte{0x89, 'P', 'N', 'G', '\r', '\n', 0x1a, '\n'}

const (
	colorTypeRGBA = 6
	filterNone    = 0
)

// EncodePNG encodes img as a non-interlaced 8-bit RGBA PNG with unfiltered
// rows.
func (PNGEncoder) EncodePNG(img image.Image) ([]byte, error) {
	b := img.Bounds()
	nrgba := image.NewNRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	draw.Draw(nrgba, nrgba.Bounds(), img, b.Min, draw.Src)

	var idat bytes.Buffer
	zw, err := zlib.NewWriterLevel(&idat, zlib.BestCompression)
	if err != nil {
		return nil, err
	}
	rowLen := 4 * b.Dx()
	for y := 0; y < b.Dy(); y++ {
		if _, err := zw.Write([]byte{filterNone}); err != nil {
			return nil, err
		}
		off := y * nrgba.Stride
		if _, err := zw.Write(nrgba.Pix[off : off+rowLen]); err != nil {
			return nil, err
		}
	}
	if err := zw.Close(); err != nil {
		return nil, err
	}

	ihdr := make([]byte, 13)
	binary.BigEndian.PutUint32(ihdr[0:4], uint32(b.Dx()))
	binary.BigEndian.PutUint32(ihdr[4:8], uint32(b.Dy()))
	ihdr[8] = 8 // bit depth
	ihdr[9] = colorTypeRGBA
	// compression, filter and interlace methods stay 0

	var out bytes.Buffer
	out.Write(pngSignature)
	writeChunk(&out, "IHDR", ihdr)
	writeChunk(&out, "IDAT", idat.Bytes())
	writeChunk(&out, "IEND", nil)
	return out.Bytes(), nil
}

func writeChunk(w *bytes.Buffer, typ string, data []byte) {
	var n [4]byte
	binary.BigEndian.PutUint32(n[:], uint32(len(data)))
	w.Write(n[:])

	crc := crc32.NewIEEE()
	crc.Write([]byte(typ))
	crc.Write(data)
	w.WriteString(typ)
	w.Write(data)
	binary.BigEndian.PutUint32(n[:], crc.Sum32())
	w.Write(n[:])
}
