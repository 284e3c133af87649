package impl

import (
	"net/url"
	"path"
	"strings"
	"unicode"
)

const maxFileNameLength = 80

// sanitizeFileName keeps a client file name usable as the tail of a blob key.
func sanitizeFileName(name string) string {
	name = path.Base(strings.ReplaceAll(name, "\\", "/"))

	var b strings.Builder
	for _, r := range name {
		switch {
		case r < unicode.MaxASCII && (unicode.IsLetter(r) || unicode.IsDigit(r)):
			b.WriteRune(r)
		case r == '.' || r == '-' || r == '_':
			b.WriteRune(r)
		default:
			b.WriteByte('_')
		}
	}

	cleaned := strings.Trim(b.String(), "._")
	if len(cleaned) > maxFileNameLength {
		cleaned = cleaned[len(cleaned)-maxFileNameLength:]
	}
	if cleaned == "" {
		return "upload"
	}

	return cleaned
}

// blobKeyFromURL recovers the key of an object from the public URL built for
// it. It returns false when ref was not produced under publicBaseURL.
func blobKeyFromURL(publicBaseURL, ref string) (string, bool) {
	base := strings.TrimRight(publicBaseURL, "/")
	escaped := ref
	if base != "" {
		var ok bool
		escaped, ok = strings.CutPrefix(ref, base+"/")
		if !ok {
			return "", false
		}
	}

	key, err := url.PathUnescape(escaped)
	if err != nil || key == "" {
		return "", false
	}

	return key, true
}
