package handler

import (
	"encoding/base64"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"pdfcheck/internal/domain"
	"pdfcheck/internal/service"
)

func isMultipart(c *gin.Context) bool {
	return strings.HasPrefix(c.ContentType(), "multipart/form-data")
}

// readFormFile reads the multipart file field, refusing anything above
// maxBytes.
func readFormFile(header *multipart.FileHeader, maxBytes int64) ([]byte, error) {
	if maxBytes > 0 && header.Size > maxBytes {
		return nil, domain.ErrFileTooLarge
	}
	f, err := header.Open()
	if err != nil {
		return nil, err
	}
	defer func() { _ = f.Close() }()
	return readLimited(f, maxBytes)
}

func readLimited(r io.Reader, maxBytes int64) ([]byte, error) {
	if maxBytes <= 0 {
		return io.ReadAll(r)
	}
	data, err := io.ReadAll(io.LimitReader(r, maxBytes+1))
	if err != nil {
		return nil, err
	}
	if int64(len(data)) > maxBytes {
		return nil, domain.ErrFileTooLarge
	}
	return data, nil
}

// uploadedPDF encodes the multipart "file" field as a data URI and returns
// it with the uploaded file name.
func uploadedPDF(c *gin.Context, maxBytes int64) (name, dataURI string, err error) {
	header, err := c.FormFile("file")
	if err != nil {
		return "", "", errMissingFile
	}
	data, err := readFormFile(header, maxBytes)
	if err != nil {
		return "", "", err
	}
	dataURI, err = service.EncodeDataURI(header.Header.Get("Content-Type"), data, maxBytes)
	if err != nil {
		return "", "", err
	}
	return header.Filename, dataURI, nil
}

// jsonBodyMargin leaves room for the checklist and the other JSON fields
// next to the encoded document.
const jsonBodyMargin = 1 << 20

// bindUploadJSON binds a JSON request body, refusing bodies larger than the
// base64 form of maxBytes plus jsonBodyMargin.
func bindUploadJSON(c *gin.Context, dst any, maxBytes int64) error {
	if maxBytes > 0 {
		limit := int64(base64.StdEncoding.EncodedLen(int(maxBytes))) + jsonBodyMargin
		c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, limit)
	}
	if err := c.ShouldBindJSON(dst); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			return domain.ErrFileTooLarge
		}
		return fmt.Errorf("%w: %v", domain.ErrValidation, err)
	}
	return nil
}

// checkDataURISize rejects a data URI whose decoded payload exceeds maxBytes.
func checkDataURISize(dataURI string, maxBytes int64) error {
	if maxBytes <= 0 {
		return nil
	}
	_, payload, ok := strings.Cut(dataURI, ",")
	if !ok {
		return nil
	}
	payload = strings.TrimRight(payload, "=")
	if int64(len(payload))*3/4 > maxBytes {
		return domain.ErrFileTooLarge
	}
	return nil
}
