// Package services: services/image_service.go
package services

import (
	"bytes"
	"encoding/base64"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"strings"

	"github.com/gabriel-vasile/mimetype"
	"ycfl-league/logger"
)

// ErrNotAnImage is returned when an upload's content is not an image.
var ErrNotAnImage = errors.New("uploaded file is not an image")

// ImageToDataURI reads r fully, sniffs its type from content and returns
// a data URI suitable for an <img> src.
func ImageToDataURI(r io.Reader) (string, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return "", fmt.Errorf("read upload: %w", err)
	}
	if len(data) == 0 {
		return "", ErrNotAnImage
	}

	mtype := mimetype.Detect(data)
	if !strings.HasPrefix(mtype.String(), "image/") {
		logger.Warn.Printf("ImageToDataURI: rejected upload of type %s", mtype.String())
		return "", fmt.Errorf("%w: detected %s", ErrNotAnImage, mtype.String())
	}

	var buf bytes.Buffer
	buf.Grow(len("data:;base64,") + len(mtype.String()) + base64.StdEncoding.EncodedLen(len(data)))
	buf.WriteString("data:")
	buf.WriteString(baseMIME(mtype.String()))
	buf.WriteString(";base64,")
	buf.WriteString(base64.StdEncoding.EncodeToString(data))
	return buf.String(), nil
}

// FileHeaderToDataURI converts one multipart upload.
func FileHeaderToDataURI(fh *multipart.FileHeader) (string, error) {
	f, err := fh.Open()
	if err != nil {
		return "", fmt.Errorf("open upload %s: %w", fh.Filename, err)
	}
	defer f.Close()
	return ImageToDataURI(f)
}

// baseMIME drops parameters such as "; charset=utf-8".
func baseMIME(m string) string {
	if i := strings.IndexByte(m, ';'); i >= 0 {
		return strings.TrimSpace(m[:i])
	}
	return m
}
