package format

import (
	"bytes"
	"testing"
)

func TestFormat_String(t *testing.T) {
	tests := []struct {
		format Format
		want   string
	}{
		{PNG, "PNG"},
		{JPEG, "JPEG"},
		{BMP, "BMP"},
		{TIFF, "TIFF"},
		{GIF, "GIF"},
		{Unknown, "Unknown"},
		{Format(99), "Unknown"},
	}

	for _, tt := range tests {
		if got := tt.format.String(); got != tt.want {
			t.Errorf("Format(%d).String() = %q, want %q", tt.format, got, tt.want)
		}
	}
}

func TestFormat_Extension(t *testing.T) {
	tests := []struct {
		format Format
		want   string
	}{
		{PNG, ".png"},
		{JPEG, ".jpg"},
		{BMP, ".bmp"},
		{TIFF, ".tiff"},
		{GIF, ".gif"},
		{Unknown, ""},
	}

	for _, tt := range tests {
		if got := tt.format.Extension(); got != tt.want {
			t.Errorf("Format(%d).Extension() = %q, want %q", tt.format, got, tt.want)
		}
	}
}

func TestDetect(t *testing.T) {
	tests := []struct {
		filename string
		want     Format
	}{
		{"scan.png", PNG},
		{"scan.PNG", PNG},
		{"scan.Png", PNG},
		{"scan.jpg", JPEG},
		{"scan.JPG", JPEG},
		{"scan.jpeg", JPEG},
		{"scan.JPEG", JPEG},
		{"scan.bmp", BMP},
		{"scan.BMP", BMP},
		{"scan.tif", TIFF},
		{"scan.tiff", TIFF},
		{"scan.TIFF", TIFF},
		{"scan.gif", GIF},
		{"scan.GIF", GIF},
		{"scan.txt", Unknown},
		{"scan.pdf", Unknown},
		{"scan", Unknown},
		{"", Unknown},
		{"/path/to/file.png", PNG},
		{"/path/to/file.jpeg", JPEG},
		{"/path/to/file.tif", TIFF},
	}

	for _, tt := range tests {
		if got := Detect(tt.filename); got != tt.want {
			t.Errorf("Detect(%q) = %v, want %v", tt.filename, got, tt.want)
		}
	}
}

func TestDetectFromMagic(t *testing.T) {
	tests := []struct {
		name string
		data []byte
		want Format
	}{
		{
			name: "PNG magic bytes",
			data: []byte{0x89, 'P', 'N', 'G', 0x0D, 0x0A, 0x1A, 0x0A},
			want: PNG,
		},
		{
			name: "JPEG magic bytes",
			data: []byte{0xFF, 0xD8, 0xFF, 0xE0, 0x00, 0x10},
			want: JPEG,
		},
		{
			name: "GIF87a",
			data: []byte("GIF87a"),
			want: GIF,
		},
		{
			name: "GIF89a",
			data: []byte("GIF89a"),
			want: GIF,
		},
		{
			name: "BMP magic bytes",
			data: []byte{'B', 'M', 0x36, 0x00, 0x00, 0x00},
			want: BMP,
		},
		{
			name: "TIFF little endian",
			data: []byte{'I', 'I', 0x2A, 0x00},
			want: TIFF,
		},
		{
			name: "TIFF big endian",
			data: []byte{'M', 'M', 0x00, 0x2A},
			want: TIFF,
		},
		{
			name: "empty data",
			data: []byte{},
			want: Unknown,
		},
		{
			name: "short data",
			data: []byte{0x89, 'P'},
			want: Unknown,
		},
		{
			name: "random data",
			data: []byte{0x01, 0x02, 0x03, 0x04, 0x05},
			want: Unknown,
		},
		{
			name: "text file",
			data: []byte("Hello, World!"),
			want: Unknown,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := DetectFromMagic(tt.data); got != tt.want {
				t.Errorf("DetectFromMagic() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestDetectFromReader_PNG(t *testing.T) {
	data := []byte{0x89, 'P', 'N', 'G', 0x0D, 0x0A, 0x1A, 0x0A, 0x00, 0x00}
	r := bytes.NewReader(data)

	format, err := DetectFromReader(r)
	if err != nil {
		t.Fatalf("DetectFromReader() error = %v", err)
	}
	if format != PNG {
		t.Errorf("DetectFromReader() = %v, want PNG", format)
	}
}

func TestDetectFromReader_Unknown(t *testing.T) {
	data := []byte("Hello, World! This is plain text.")
	r := bytes.NewReader(data)

	format, err := DetectFromReader(r)
	if err != nil {
		t.Fatalf("DetectFromReader() error = %v", err)
	}
	if format != Unknown {
		t.Errorf("DetectFromReader() = %v, want Unknown", format)
	}
}
