package impl

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSanitizeFileName(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{name: "plain", input: "receipt.png", expected: "receipt.png"},
		{name: "spaces", input: "my receipt (1).jpg", expected: "my_receipt__1_.jpg"},
		{name: "path traversal", input: "../../etc/passwd", expected: "passwd"},
		{name: "windows path", input: `C:\Users\me\proof.webp`, expected: "proof.webp"},
		{name: "non ascii", input: "bukti_bayar_é.png", expected: "bukti_bayar__.png"},
		{name: "empty", input: "", expected: "upload"},
		{name: "only dots", input: "...", expected: "upload"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, sanitizeFileName(tt.input))
		})
	}
}

func TestSanitizeFileName_Truncates(t *testing.T) {
	got := sanitizeFileName(strings.Repeat("a", 200) + ".png")

	assert.Len(t, got, maxFileNameLength)
	assert.True(t, strings.HasSuffix(got, ".png"))
}

func TestBlobKeyFromURL(t *testing.T) {
	key, ok := blobKeyFromURL("https://cdn.example.com/uploads/", "https://cdn.example.com/uploads/menu_images/a%20b.png")
	assert.True(t, ok)
	assert.Equal(t, "menu_images/a b.png", key)

	key, ok = blobKeyFromURL("", "menu_images/x.png")
	assert.True(t, ok)
	assert.Equal(t, "menu_images/x.png", key)

	_, ok = blobKeyFromURL("https://cdn.example.com/uploads", "https://elsewhere.example.com/x.png")
	assert.False(t, ok)

	_, ok = blobKeyFromURL("https://cdn.example.com/uploads", "")
	assert.False(t, ok)
}
