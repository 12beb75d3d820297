package ocr

import (
	"bytes"
	"context"
	"errors"
	"image"
	"image/color"
	"image/png"
	"io"
	"strings"
	"testing"
)

type fakeRunner struct {
	stdout []byte
	stderr []byte
	err    error

	name  string
	args  []string
	input []byte
}

func (f *fakeRunner) Run(_ context.Context, stdin io.Reader, name string, args ...string) ([]byte, []byte, error) {
	f.name = name
	f.args = args
	f.input, _ = io.ReadAll(stdin)
	return f.stdout, f.stderr, f.err
}

func pngBytes(t *testing.T) []byte {
	t.Helper()
	img := image.NewGray(image.Rect(0, 0, 2, 2))
	img.Set(0, 0, color.White)
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		t.Fatalf("encode png: %v", err)
	}
	return buf.Bytes()
}

func TestDetectImage(t *testing.T) {
	if _, err := DetectImage(nil); !errors.Is(err, ErrEmptyImage) {
		t.Fatalf("want ErrEmptyImage, got %v", err)
	}
	if _, err := DetectImage([]byte("just some text")); !errors.Is(err, ErrUnsupportedImage) {
		t.Fatalf("want ErrUnsupportedImage, got %v", err)
	}
	mt, err := DetectImage(pngBytes(t))
	if err != nil || mt != "image/png" {
		t.Fatalf("mt=%q err=%v", mt, err)
	}
	if ext := ImageExtension(mt); ext != ".png" {
		t.Fatalf("ext=%q", ext)
	}
	if ext := ImageExtension("application/x-unknown"); ext != "" {
		t.Fatalf("unknown ext=%q", ext)
	}
}

func TestTesseract_Recognize(t *testing.T) {
	img := pngBytes(t)
	cases := []struct {
		name     string
		image    []byte
		runner   *fakeRunner
		want     string
		wantErr  error
		wantLast int
	}{
		{
			name:     "ok strips box noise",
			image:    img,
			runner:   &fakeRunner{stdout: []byte("GBPUSD SELL 1.1\n-----\nS/L: 1.35346\n")},
			want:     "GBPUSD SELL 1.1\n\nS/L: 1.35346\n",
			wantLast: 100,
		},
		{
			name:     "engine failure",
			image:    img,
			runner:   &fakeRunner{stderr: []byte("Error opening data file"), err: errors.New("exit status 1")},
			wantErr:  errors.New("tesseract"),
			wantLast: 10,
		},
		{
			name:     "not an image",
			image:    []byte("%PDF-1.4"),
			runner:   &fakeRunner{},
			wantErr:  ErrUnsupportedImage,
			wantLast: 0,
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			tr := NewTesseract(Config{PSM: 6, TessdataDir: "/tess"})
			tr.runner = tc.runner

			var seen []int
			got, err := tr.Recognize(context.Background(), tc.image, func(p int) { seen = append(seen, p) })
			if tc.wantErr != nil {
				if err == nil {
					t.Fatalf("expected error")
				}
				if errors.Is(tc.wantErr, ErrUnsupportedImage) && !errors.Is(err, ErrUnsupportedImage) {
					t.Fatalf("want ErrUnsupportedImage, got %v", err)
				}
			} else if err != nil {
				t.Fatalf("unexpected err: %v", err)
			}
			if got != tc.want {
				t.Fatalf("text=%q, want %q", got, tc.want)
			}
			if len(seen) == 0 || seen[len(seen)-1] != tc.wantLast {
				t.Fatalf("progress=%v, want last %d", seen, tc.wantLast)
			}
			for i := 1; i < len(seen); i++ {
				if seen[i] < seen[i-1] {
					t.Fatalf("progress decreased: %v", seen)
				}
			}
		})
	}
}

func TestTesseract_Args(t *testing.T) {
	fr := &fakeRunner{stdout: []byte("x")}
	tr := NewTesseract(Config{PSM: 6, OEM: 1, TessdataDir: "/tess"})
	tr.runner = fr
	img := pngBytes(t)
	if _, err := tr.Recognize(context.Background(), img, nil); err != nil {
		t.Fatalf("recognize: %v", err)
	}
	if fr.name != "tesseract" {
		t.Fatalf("binary=%q", fr.name)
	}
	want := "stdin stdout -l eng --psm 6 --oem 1 --tessdata-dir /tess"
	if got := strings.Join(fr.args, " "); got != want {
		t.Fatalf("args=%q, want %q", got, want)
	}
	if !bytes.Equal(fr.input, img) {
		t.Fatalf("image not piped through stdin")
	}
}

func TestTesseract_ContextCanceled(t *testing.T) {
	tr := NewTesseract(Config{})
	tr.runner = &fakeRunner{err: errors.New("signal: killed")}
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := tr.Recognize(ctx, pngBytes(t), nil)
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("want context.Canceled, got %v", err)
	}
}

func TestMonotonic(t *testing.T) {
	var seen []int
	p := Monotonic(func(v int) { seen = append(seen, v) })
	for _, v := range []int{-5, 10, 5, 50, 50, 120, 90} {
		p(v)
	}
	want := []int{0, 10, 50, 50, 100}
	if len(seen) != len(want) {
		t.Fatalf("seen=%v, want %v", seen, want)
	}
	for i := range want {
		if seen[i] != want[i] {
			t.Fatalf("seen=%v, want %v", seen, want)
		}
	}

	// nil callback is a no-op
	Monotonic(nil)(42)
}
