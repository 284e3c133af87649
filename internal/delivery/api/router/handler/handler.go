// Package handler holds the echo handlers of the public and staff API.
package handler

import (
	"bytes"
	"io"
	"mime/multipart"
	"net/http"
	"strconv"
	"strings"

	"cafe/internal/delivery/api/response"
	domainerrors "cafe/internal/domain/errors"
	"cafe/internal/errors"
	"cafe/internal/usecase"

	"github.com/gabriel-vasile/mimetype"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// HealthCheck reports that the process is serving.
func HealthCheck(c echo.Context) error {
	return response.Success(c, http.StatusOK, map[string]string{"status": "ok"})
}

// bindAndValidate binds the request into req and runs its validate tags.
func bindAndValidate(c echo.Context, req any) error {
	if err := c.Bind(req); err != nil {
		return errors.Wrap(domainerrors.ErrValidationFailed.WithDetails("malformed request body"), err.Error())
	}

	return c.Validate(req)
}

func invalidToken(c echo.Context) error {
	return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
}

// uuidParam parses the path parameter name as a uuid.
func uuidParam(c echo.Context, name string) (uuid.UUID, error) {
	id, err := uuid.Parse(c.Param(name))
	if err != nil {
		return uuid.Nil, domainerrors.NewFieldError(map[string]string{name: "must be a valid id"})
	}

	return id, nil
}

// intQuery reads an optional integer query parameter.
func intQuery(c echo.Context, name string) (int, error) {
	raw := c.QueryParam(name)
	if raw == "" {
		return 0, nil
	}

	value, err := strconv.Atoi(raw)
	if err != nil {
		return 0, domainerrors.NewFieldError(map[string]string{name: "must be a number"})
	}

	return value, nil
}

// readUpload loads a multipart file field. At most maxBytes+1 bytes are read
// so oversized files can be reported without buffering them whole.
func readUpload(c echo.Context, field string, maxBytes int64) (*usecase.UploadedFile, error) {
	header, err := c.FormFile(field)
	if errors.Is(err, http.ErrMissingFile) {
		return nil, nil
	}
	if err != nil {
		return nil, domainerrors.NewFieldError(map[string]string{field: "could not read the uploaded file"})
	}

	return loadFileHeader(field, header, maxBytes)
}

// loadFileHeader reports the content type sniffed from the bytes. A declared
// part type is only accepted when the content agrees with it.
func loadFileHeader(field string, header *multipart.FileHeader, maxBytes int64) (*usecase.UploadedFile, error) {
	file, err := header.Open()
	if err != nil {
		return nil, errors.Wrap(err, "failed to open uploaded file")
	}
	defer file.Close()

	var buf bytes.Buffer
	if _, err := io.Copy(&buf, io.LimitReader(file, maxBytes+1)); err != nil {
		return nil, errors.Wrap(err, "failed to read uploaded file")
	}

	detected := mimetype.Detect(buf.Bytes())
	contentType := detected.String()
	if declared := header.Header.Get(echo.HeaderContentType); declared != "" && declared != echo.MIMEOctetStream {
		if !contentMatches(detected, declared) {
			return nil, domainerrors.NewFieldError(map[string]string{field: "file content does not match its type"})
		}
		contentType = declared
	}

	return &usecase.UploadedFile{
		FileName:    header.Filename,
		ContentType: contentType,
		Data:        buf.Bytes(),
	}, nil
}

// contentMatches walks up from the detected type, so an animated PNG still
// counts as image/png.
func contentMatches(detected *mimetype.MIME, declared string) bool {
	declared = strings.ToLower(strings.TrimSpace(declared))
	if declared == "image/jpg" {
		declared = "image/jpeg"
	}

	for m := detected; m != nil; m = m.Parent() {
		if m.Is(declared) {
			return true
		}
	}

	return false
}
