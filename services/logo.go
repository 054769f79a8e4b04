package services

import (
	"encoding/base64"
	"errors"
	"fmt"
	"net/http"
	"strings"
)

// MaxLogoBytes caps uploaded logo files. The logo travels inside share tokens
// and settings documents as a data URI, so it has to stay small.
const MaxLogoBytes = 1 << 20

// ErrLogoTooLarge reports a logo upload over the MaxLogoBytes cap.
var ErrLogoTooLarge = errors.New("logo exceeds the 1MB size limit")

// ErrLogoNotImage reports an upload whose content is not an image.
var ErrLogoNotImage = errors.New("logo is not an image file")

// EncodeLogoDataURI validates an uploaded logo and returns it as a
// base64 data URI ready to store and embed. The content type comes from
// sniffing the bytes, never from the upload's claimed type.
func EncodeLogoDataURI(data []byte) (string, error) {
	if len(data) > MaxLogoBytes {
		return "", fmt.Errorf("%d bytes: %w", len(data), ErrLogoTooLarge)
	}

	contentType := http.DetectContentType(data)
	if !strings.HasPrefix(contentType, "image/") {
		return "", fmt.Errorf("detected %s: %w", contentType, ErrLogoNotImage)
	}

	return "data:" + contentType + ";base64," + base64.StdEncoding.EncodeToString(data), nil
}
