package icon

import (
	"bytes"
	"errors"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

type fakeEncoder struct {
	got  image.Image
	data []byte
	err  error
}

func (f *fakeEncoder) EncodePNG(img image.Image) ([]byte, error) {
	f.got = img
	return f.data, f.err
}

func decode(t *testing.T, data []byte) image.Image {
	t.Helper()
	img, err := png.Decode(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("png.Decode: %v", err)
	}
	return img
}

func TestRenderProducesRGBAPNG(t *testing.T) {
	r := NewRenderer(nil)
	for _, size := range []int{16, 48, 128} {
		data, err := r.Render(size)
		if err != nil {
			t.Fatalf("Render(%d): %v", size, err)
		}
		img := decode(t, data)
		if b := img.Bounds(); b.Dx() != size || b.Dy() != size {
			t.Errorf("Render(%d) decoded bounds = %v", size, b)
		}
		if img.ColorModel() != color.NRGBAModel {
			t.Errorf("Render(%d) color model = %v, want NRGBA (alpha channel)", size, img.ColorModel())
		}
	}
}

func TestRenderPixels16(t *testing.T) {
	data, err := NewRenderer(nil).Render(16)
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	img := decode(t, data)
	if got := color.RGBAModel.Convert(img.At(8, 8)); got != Cross {
		t.Errorf("pixel (8,8) = %v, want %v", got, Cross)
	}
	if got := color.RGBAModel.Convert(img.At(0, 0)); got != Border {
		t.Errorf("pixel (0,0) = %v, want %v", got, Border)
	}
}

func TestRenderDeterministic(t *testing.T) {
	r := NewRenderer(nil)
	a, err := r.Render(48)
	if err != nil {
		t.Fatal(err)
	}
	b, err := r.Render(48)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(a, b) {
		t.Error("two renders of the same size differ")
	}
}

func TestRenderInvalidSize(t *testing.T) {
	for _, size := range []int{0, -16} {
		_, err := NewRenderer(nil).Render(size)
		if !errors.Is(err, ErrInvalidSize) {
			t.Errorf("Render(%d) error = %v, want ErrInvalidSize", size, err)
		}
	}
}

func TestRenderNoEncoder(t *testing.T) {
	r := &Renderer{}
	if _, err := r.Render(16); !errors.Is(err, ErrEncoderUnavailable) {
		t.Errorf("Render without encoder = %v, want ErrEncoderUnavailable", err)
	}
}

func TestRenderUsesInjectedEncoder(t *testing.T) {
	enc := &fakeEncoder{data: []byte("png")}
	r := &Renderer{Encoder: enc}
	data, err := r.Render(16)
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	if string(data) != "png" {
		t.Errorf("Render = %q, want encoder output", data)
	}
	if enc.got == nil || enc.got.Bounds().Dx() != 16 {
		t.Errorf("encoder received %v, want 16x16 canvas", enc.got)
	}
}

func TestRenderEncoderError(t *testing.T) {
	boom := errors.New("boom")
	r := &Renderer{Encoder: &fakeEncoder{err: boom}}
	if _, err := r.Render(16); !errors.Is(err, boom) {
		t.Errorf("Render error = %v, want wrapped boom", err)
	}
}

func TestRenderFile(t *testing.T) {
	var out bytes.Buffer
	path := filepath.Join(t.TempDir(), "icon16.png")
	if err := NewRenderer(&out).RenderFile(16, path); err != nil {
		t.Fatalf("RenderFile: %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if b := decode(t, data).Bounds(); b.Dx() != 16 || b.Dy() != 16 {
		t.Errorf("file bounds = %v", b)
	}
	want := "Created " + path + " (16x16)\n"
	if out.String() != want {
		t.Errorf("output = %q, want %q", out.String(), want)
	}
}

func TestRenderFileOverwritesIdentically(t *testing.T) {
	path := filepath.Join(t.TempDir(), "icon48.png")
	os.WriteFile(path, []byte("stale"), 0644)

	r := NewRenderer(nil)
	if err := r.RenderFile(48, path); err != nil {
		t.Fatal(err)
	}
	first, _ := os.ReadFile(path)
	if err := r.RenderFile(48, path); err != nil {
		t.Fatal(err)
	}
	second, _ := os.ReadFile(path)
	if !bytes.Equal(first, second) {
		t.Error("re-rendering to the same path changed the bytes")
	}
	if bytes.Equal(first, []byte("stale")) {
		t.Error("existing file was not replaced")
	}
}

func TestRenderFileMissingDir(t *testing.T) {
	var out bytes.Buffer
	path := filepath.Join(t.TempDir(), "nope", "icon16.png")
	err := NewRenderer(&out).RenderFile(16, path)
	if err == nil {
		t.Fatal("expected error writing into a missing directory")
	}
	if !strings.Contains(err.Error(), path) {
		t.Errorf("error %q does not name %s", err, path)
	}
	if out.Len() != 0 {
		t.Errorf("unexpected output on failure: %q", out.String())
	}
}
