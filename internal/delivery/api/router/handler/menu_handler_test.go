package handler

import (
	"bytes"
	"mime/multipart"
	"net/http"
	"net/textproto"
	"strings"
	"testing"

	"cafe/config"
	"cafe/internal/domain/entity"
	domainerrors "cafe/internal/domain/errors"
	mockUC "cafe/internal/mocks/usecase"
	"cafe/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newTestMenuHandler(t *testing.T) (*MenuHandler, *mockUC.MockMenuUsecase) {
	menuUC := mockUC.NewMockMenuUsecase(t)
	cfg := &config.Config{PreOrder: &config.PreOrderConfig{MaxProofBytes: 16}}

	return NewMenuHandler(MenuHandlerParams{MenuUC: menuUC, Config: cfg, Logger: newDiscardLogger()}), menuUC
}

func TestMenuHandler_List(t *testing.T) {
	h, menuUC := newTestMenuHandler(t)
	items := []*entity.MenuItem{{ID: uuid.New(), Name: "Es teh", Stock: 4, Availability: entity.AvailabilityInStock}}
	menuUC.EXPECT().ListMenu(mock.Anything, usecase.MenuScopePreOrder, true).Return(items, nil)

	rec := invoke(t, h.ListPreOrderMenu, request{method: http.MethodGet, target: "/api/v1/menu/pre-order?in_stock=true"})

	require.Equal(t, http.StatusOK, rec.Code)
	got := decodeData[[]entity.MenuItem](t, rec)
	require.Len(t, got, 1)
	assert.Equal(t, "Es teh", got[0].Name)
}

func TestMenuHandler_GetMenuItem(t *testing.T) {
	t.Run("bad id", func(t *testing.T) {
		h, _ := newTestMenuHandler(t)

		rec := invoke(t, h.GetMenuItem, request{
			method: http.MethodGet,
			target: "/api/v1/menu/x",
			params: map[string]string{"id": "x"},
		})

		require.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "must be a valid id", fieldDetails(t, rec)["id"])
	})

	t.Run("not found", func(t *testing.T) {
		h, menuUC := newTestMenuHandler(t)
		id := uuid.New()
		menuUC.EXPECT().GetMenuItem(mock.Anything, id).Return(nil, domainerrors.ErrMenuItemNotFound)

		rec := invoke(t, h.GetMenuItem, request{
			method: http.MethodGet,
			target: "/api/v1/menu/" + id.String(),
			params: map[string]string{"id": id.String()},
		})

		require.Equal(t, http.StatusNotFound, rec.Code)
		assert.Equal(t, "MENU_ITEM_NOT_FOUND", decode(t, rec).Error.Code)
	})
}

func TestMenuHandler_StreamMenu(t *testing.T) {
	h, menuUC := newTestMenuHandler(t)

	snapshots := make(chan []*entity.MenuItem, 2)
	snapshots <- []*entity.MenuItem{{Name: "Es teh", Stock: 2}}
	snapshots <- []*entity.MenuItem{{Name: "Es teh", Stock: 1}}
	close(snapshots)
	menuUC.EXPECT().WatchMenu(mock.Anything, usecase.MenuScopeDaily).Return((<-chan []*entity.MenuItem)(snapshots), nil)

	rec := invoke(t, h.StreamMenu, request{method: http.MethodGet, target: "/api/v1/menu/stream"})

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "text/event-stream", rec.Header().Get("Content-Type"))
	body := rec.Body.String()
	assert.Equal(t, 2, strings.Count(body, "event: snapshot\n"))
	assert.Contains(t, body, `"stock":2`)
	assert.Contains(t, body, `"stock":1`)
}

func TestMenuHandler_SetStock(t *testing.T) {
	id := uuid.New()

	t.Run("absolute value", func(t *testing.T) {
		h, menuUC := newTestMenuHandler(t)
		menuUC.EXPECT().SetStock(mock.Anything, id, 0).
			Return(&entity.MenuItem{ID: id, Stock: 0, Availability: entity.AvailabilitySoldOut}, nil)

		rec := invoke(t, h.SetStock, request{
			method: http.MethodPut,
			target: "/api/v1/admin/menu/" + id.String() + "/stock",
			body:   strings.NewReader(`{"stock":0}`),
			params: map[string]string{"id": id.String()},
		})

		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, entity.AvailabilitySoldOut, decodeData[entity.MenuItem](t, rec).Availability)
	})

	t.Run("missing and negative stock", func(t *testing.T) {
		for _, body := range []string{`{}`, `{"stock":-1}`} {
			h, _ := newTestMenuHandler(t)

			rec := invoke(t, h.SetStock, request{
				method: http.MethodPut,
				target: "/api/v1/admin/menu/" + id.String() + "/stock",
				body:   strings.NewReader(body),
				params: map[string]string{"id": id.String()},
			})

			require.Equal(t, http.StatusBadRequest, rec.Code, body)
			assert.Contains(t, fieldDetails(t, rec), "stock", body)
		}
	})
}

func TestMenuHandler_UpdateMenuItem_RejectsUnknownAvailability(t *testing.T) {
	h, _ := newTestMenuHandler(t)
	id := uuid.New()

	rec := invoke(t, h.UpdateMenuItem, request{
		method: http.MethodPut,
		target: "/api/v1/admin/menu/" + id.String(),
		body:   strings.NewReader(`{"name":"Es teh","price":5000,"availability":"Maybe"}`),
		params: map[string]string{"id": id.String()},
	})

	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, fieldDetails(t, rec), "availability")
}

func imageForm(t *testing.T, data []byte) (*bytes.Buffer, string) {
	t.Helper()

	var body bytes.Buffer
	writer := multipart.NewWriter(&body)
	header := make(textproto.MIMEHeader)
	header.Set("Content-Disposition", `form-data; name="image"; filename="teh.png"`)
	header.Set("Content-Type", "image/png")
	part, err := writer.CreatePart(header)
	require.NoError(t, err)
	_, err = part.Write(data)
	require.NoError(t, err)
	require.NoError(t, writer.Close())

	return &body, writer.FormDataContentType()
}

func TestMenuHandler_UploadImage(t *testing.T) {
	id := uuid.New()

	t.Run("passes the file on", func(t *testing.T) {
		h, menuUC := newTestMenuHandler(t)
		menuUC.EXPECT().
			UploadImage(mock.Anything, id, &usecase.UploadedFile{FileName: "teh.png", ContentType: "image/png", Data: pngFixture}).
			Return(&entity.MenuItem{ID: id, ImageRef: "http://localhost/uploads/menu_images/x.png"}, nil)

		body, contentType := imageForm(t, pngFixture)
		rec := invoke(t, h.UploadImage, request{
			method:      http.MethodPut,
			target:      "/api/v1/admin/menu/" + id.String() + "/image",
			body:        body,
			contentType: contentType,
			params:      map[string]string{"id": id.String()},
		})

		require.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("oversized", func(t *testing.T) {
		h, _ := newTestMenuHandler(t)

		body, contentType := imageForm(t, append(bytes.Clone(pngFixture), 'x'))
		rec := invoke(t, h.UploadImage, request{
			method:      http.MethodPut,
			target:      "/api/v1/admin/menu/" + id.String() + "/image",
			body:        body,
			contentType: contentType,
			params:      map[string]string{"id": id.String()},
		})

		require.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Contains(t, fieldDetails(t, rec)["image"], "at most")
	})

	t.Run("content that is not the declared type", func(t *testing.T) {
		h, _ := newTestMenuHandler(t)

		body, contentType := imageForm(t, []byte("<?php echo 'hi'; ?>"))
		rec := invoke(t, h.UploadImage, request{
			method:      http.MethodPut,
			target:      "/api/v1/admin/menu/" + id.String() + "/image",
			body:        body,
			contentType: contentType,
			params:      map[string]string{"id": id.String()},
		})

		require.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "file content does not match its type", fieldDetails(t, rec)["image"])
	})
}
