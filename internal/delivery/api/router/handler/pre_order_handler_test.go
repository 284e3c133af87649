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

func newTestPreOrderHandler(t *testing.T) (*PreOrderHandler, *mockUC.MockPreOrderUsecase) {
	preOrderUC := mockUC.NewMockPreOrderUsecase(t)
	cfg := &config.Config{PreOrder: &config.PreOrderConfig{MaxProofBytes: 4 << 20}}

	return NewPreOrderHandler(PreOrderHandlerParams{PreOrderUC: preOrderUC, Config: cfg, Logger: newDiscardLogger()}), preOrderUC
}

func preOrderForm(t *testing.T, fields map[string]string, screenshot []byte) (*bytes.Buffer, string) {
	t.Helper()

	var body bytes.Buffer
	writer := multipart.NewWriter(&body)
	for name, value := range fields {
		require.NoError(t, writer.WriteField(name, value))
	}
	if screenshot != nil {
		header := make(textproto.MIMEHeader)
		header.Set("Content-Disposition", `form-data; name="screenshot"; filename="bukti transfer.png"`)
		header.Set("Content-Type", "image/png")
		part, err := writer.CreatePart(header)
		require.NoError(t, err)
		_, err = part.Write(screenshot)
		require.NoError(t, err)
	}
	require.NoError(t, writer.Close())

	return &body, writer.FormDataContentType()
}

func TestPreOrderHandler_SubmitPreOrder(t *testing.T) {
	itemID := uuid.New()

	t.Run("success", func(t *testing.T) {
		h, preOrderUC := newTestPreOrderHandler(t)
		orderID := uuid.New()
		preOrderUC.EXPECT().
			SubmitPreOrder(mock.Anything, mock.MatchedBy(func(in *usecase.SubmitPreOrderInput) bool {
				return in.StudentName == "Budi" &&
					in.StudentClass == "XI IPA 2" &&
					in.Items[itemID.String()] == 2 &&
					in.Screenshot != nil &&
					in.Screenshot.FileName == "bukti transfer.png" &&
					in.Screenshot.ContentType == "image/png"
			})).
			Return(&usecase.PreOrderReceipt{
				Order:      &entity.PreOrder{ID: orderID, Status: entity.PreOrderStatusPending, Total: 10000},
				PickupCode: "cafe://pre-order/" + orderID.String(),
			}, nil)

		body, contentType := preOrderForm(t, map[string]string{
			"studentName":  "Budi",
			"studentClass": "XI IPA 2",
			"cart":         `{"` + itemID.String() + `":2}`,
		}, pngFixture)
		rec := invoke(t, h.SubmitPreOrder, request{
			method:      http.MethodPost,
			target:      "/api/v1/pre-orders",
			body:        body,
			contentType: contentType,
		})

		require.Equal(t, http.StatusCreated, rec.Code)
		got := decodeData[usecase.PreOrderReceipt](t, rec)
		assert.Equal(t, orderID, got.Order.ID)
		assert.Equal(t, "cafe://pre-order/"+orderID.String(), got.PickupCode)
	})

	t.Run("cart that is not JSON", func(t *testing.T) {
		h, _ := newTestPreOrderHandler(t)

		body, contentType := preOrderForm(t, map[string]string{
			"studentName":  "Budi",
			"studentClass": "XI IPA 2",
			"cart":         "two teas please",
		}, pngFixture)
		rec := invoke(t, h.SubmitPreOrder, request{
			method:      http.MethodPost,
			target:      "/api/v1/pre-orders",
			body:        body,
			contentType: contentType,
		})

		require.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Contains(t, fieldDetails(t, rec), "cart")
	})

	t.Run("usecase field errors are rendered as details", func(t *testing.T) {
		h, preOrderUC := newTestPreOrderHandler(t)
		preOrderUC.EXPECT().
			SubmitPreOrder(mock.Anything, mock.MatchedBy(func(in *usecase.SubmitPreOrderInput) bool {
				return in.Screenshot == nil
			})).
			Return(nil, domainerrors.NewFieldError(map[string]string{"screenshot": "payment screenshot is required"}))

		body, contentType := preOrderForm(t, map[string]string{
			"studentName":  "Budi",
			"studentClass": "XI IPA 2",
			"cart":         `{"` + itemID.String() + `":1}`,
		}, nil)
		rec := invoke(t, h.SubmitPreOrder, request{
			method:      http.MethodPost,
			target:      "/api/v1/pre-orders",
			body:        body,
			contentType: contentType,
		})

		require.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, map[string]string{"screenshot": "payment screenshot is required"}, fieldDetails(t, rec))
	})

	t.Run("upload failure is a gateway error without details", func(t *testing.T) {
		h, preOrderUC := newTestPreOrderHandler(t)
		preOrderUC.EXPECT().SubmitPreOrder(mock.Anything, mock.Anything).Return(nil, domainerrors.ErrUploadFailed)

		body, contentType := preOrderForm(t, map[string]string{"studentName": "Budi"}, pngFixture)
		rec := invoke(t, h.SubmitPreOrder, request{
			method:      http.MethodPost,
			target:      "/api/v1/pre-orders",
			body:        body,
			contentType: contentType,
		})

		require.Equal(t, http.StatusBadGateway, rec.Code)
		env := decode(t, rec)
		assert.Equal(t, "UPLOAD_FAILED", env.Error.Code)
		assert.Empty(t, env.Error.Details)
	})
}

func TestPreOrderHandler_PickupQRCode(t *testing.T) {
	h, preOrderUC := newTestPreOrderHandler(t)
	id := uuid.New()
	preOrderUC.EXPECT().PickupQRCode(mock.Anything, id).Return([]byte("\x89PNG"), nil)

	rec := invoke(t, h.PickupQRCode, request{
		method: http.MethodGet,
		target: "/api/v1/pre-orders/" + id.String() + "/qrcode",
		params: map[string]string{"id": id.String()},
	})

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "image/png", rec.Header().Get("Content-Type"))
	assert.Equal(t, "\x89PNG", rec.Body.String())
}

func TestPreOrderHandler_ListPreOrders(t *testing.T) {
	t.Run("status filter", func(t *testing.T) {
		h, preOrderUC := newTestPreOrderHandler(t)
		ready := entity.PreOrderStatusReady
		preOrderUC.EXPECT().ListPreOrders(mock.Anything, &ready).Return([]*entity.PreOrder{}, nil)

		rec := invoke(t, h.ListPreOrders, request{method: http.MethodGet, target: "/api/v1/admin/pre-orders?status=Ready"})

		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("unknown status", func(t *testing.T) {
		h, _ := newTestPreOrderHandler(t)

		rec := invoke(t, h.ListPreOrders, request{method: http.MethodGet, target: "/api/v1/admin/pre-orders?status=Lost"})

		require.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Contains(t, fieldDetails(t, rec), "status")
	})
}

func TestPreOrderHandler_UpdateStatus(t *testing.T) {
	id := uuid.New()

	t.Run("conflict", func(t *testing.T) {
		h, preOrderUC := newTestPreOrderHandler(t)
		preOrderUC.EXPECT().AdvanceStatus(mock.Anything, id, entity.PreOrderStatusCompleted).
			Return(nil, domainerrors.ErrInvalidStatusTransition)

		rec := invoke(t, h.UpdateStatus, request{
			method: http.MethodPatch,
			target: "/api/v1/admin/pre-orders/" + id.String() + "/status",
			body:   strings.NewReader(`{"status":"Completed"}`),
			params: map[string]string{"id": id.String()},
		})

		require.Equal(t, http.StatusConflict, rec.Code)
		assert.Equal(t, "INVALID_STATUS_TRANSITION", decode(t, rec).Error.Code)
	})

	t.Run("unknown status", func(t *testing.T) {
		h, _ := newTestPreOrderHandler(t)

		rec := invoke(t, h.UpdateStatus, request{
			method: http.MethodPatch,
			target: "/api/v1/admin/pre-orders/" + id.String() + "/status",
			body:   strings.NewReader(`{"status":"Shipped"}`),
			params: map[string]string{"id": id.String()},
		})

		require.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "must be one of: Pending Ready Completed", fieldDetails(t, rec)["status"])
	})
}

func TestPreOrderHandler_ScanPickupCode(t *testing.T) {
	h, preOrderUC := newTestPreOrderHandler(t)
	id := uuid.New()
	preOrderUC.EXPECT().ResolvePickupCode(mock.Anything, "cafe://pre-order/"+id.String()).
		Return(&entity.PreOrder{ID: id, StudentName: "Budi"}, nil)

	rec := invoke(t, h.ScanPickupCode, request{
		method: http.MethodPost,
		target: "/api/v1/admin/pre-orders/scan",
		body:   strings.NewReader(`{"payload":"cafe://pre-order/` + id.String() + `"}`),
	})

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Budi", decodeData[entity.PreOrder](t, rec).StudentName)
}
