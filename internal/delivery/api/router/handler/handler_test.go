package handler

import (
	"bytes"
	"mime/multipart"
	"net/http"
	"net/textproto"
	"testing"

	domainerrors "cafe/internal/domain/errors"

	"github.com/gabriel-vasile/mimetype"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestContentMatches(t *testing.T) {
	jpeg := []byte("\xff\xd8\xff\xe0\x00\x10JFIF\x00")

	tests := []struct {
		name     string
		data     []byte
		declared string
		want     bool
	}{
		{name: "png", data: pngFixture, declared: "image/png", want: true},
		{name: "declared type is case insensitive", data: pngFixture, declared: " Image/PNG ", want: true},
		{name: "jpg alias", data: jpeg, declared: "image/jpg", want: true},
		{name: "png labelled jpeg", data: pngFixture, declared: "image/jpeg"},
		{name: "text labelled png", data: []byte("hello barista"), declared: "image/png"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, contentMatches(mimetype.Detect(tt.data), tt.declared))
		})
	}
}

func multipartFile(t *testing.T, declared string, data []byte) *multipart.FileHeader {
	t.Helper()

	var body bytes.Buffer
	writer := multipart.NewWriter(&body)
	header := make(textproto.MIMEHeader)
	header.Set("Content-Disposition", `form-data; name="screenshot"; filename="proof"`)
	if declared != "" {
		header.Set("Content-Type", declared)
	}
	part, err := writer.CreatePart(header)
	require.NoError(t, err)
	_, err = part.Write(data)
	require.NoError(t, err)
	require.NoError(t, writer.Close())

	form, err := multipart.NewReader(&body, writer.Boundary()).ReadForm(1 << 20)
	require.NoError(t, err)
	t.Cleanup(func() { _ = form.RemoveAll() })

	return form.File["screenshot"][0]
}

func TestLoadFileHeader(t *testing.T) {
	t.Run("untyped part is sniffed", func(t *testing.T) {
		file, err := loadFileHeader("screenshot", multipartFile(t, "", pngFixture), 1024)
		require.NoError(t, err)
		assert.Equal(t, "image/png", file.ContentType)
	})

	t.Run("octet stream is sniffed", func(t *testing.T) {
		file, err := loadFileHeader("screenshot", multipartFile(t, "application/octet-stream", pngFixture), 1024)
		require.NoError(t, err)
		assert.Equal(t, "image/png", file.ContentType)
	})

	t.Run("declared type kept when content agrees", func(t *testing.T) {
		file, err := loadFileHeader("screenshot", multipartFile(t, "image/png", pngFixture), 1024)
		require.NoError(t, err)
		assert.Equal(t, "image/png", file.ContentType)
		assert.Equal(t, "proof", file.FileName)
	})

	t.Run("mislabelled content is rejected", func(t *testing.T) {
		_, err := loadFileHeader("screenshot", multipartFile(t, "image/png", []byte("#!/bin/sh\nrm -rf /\n")), 1024)

		var fieldErr *domainerrors.FieldError
		require.ErrorAs(t, err, &fieldErr)
		assert.Contains(t, fieldErr.Fields(), "screenshot")
		assert.Equal(t, http.StatusBadRequest, fieldErr.HTTPCode())
	})
}
