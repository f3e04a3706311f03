package utils

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestDownloadImage_RejectsMalformedURL(t *testing.T) {
	_, err := DownloadImage("not-a-url")
	if err == nil {
		t.Fatal("expected an error for a malformed URL, got none")
	}
}

func TestIsValidUrl_AcceptsWellFormedURL(t *testing.T) {
	if !IsValidUrl("https://example.com/background.png") {
		t.Error("a well-formed URL should be valid")
	}
}

func TestIsValidUrl_RejectsMissingScheme(t *testing.T) {
	if IsValidUrl("example.com/background.png") {
		t.Error("a URL with no scheme should not be valid")
	}
}

func TestIsValidUrl_RejectsMissingHost(t *testing.T) {
	if IsValidUrl("https:///background.png") {
		t.Error("a URL with no host should not be valid")
	}
}

func TestDetectFileContentType_DetectsPNG(t *testing.T) {
	img := image.NewNRGBA(image.Rect(0, 0, 4, 4))
	img.Set(0, 0, color.NRGBA{R: 255, A: 255})

	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		t.Fatalf("could not encode test image: %v", err)
	}

	path := filepath.Join(t.TempDir(), "sample.png")
	if err := os.WriteFile(path, buf.Bytes(), 0644); err != nil {
		t.Fatalf("could not write test image: %v", err)
	}

	ftype, err := DetectFileContentType(path)
	if err != nil {
		t.Fatalf("could not detect content type: %v", err)
	}

	if !strings.Contains(ftype.(string), "image") {
		t.Errorf("content type expected to be of type image, got: %v", ftype)
	}
}
