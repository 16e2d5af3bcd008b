package handlers

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"shop-service/app/domain"
	mock_port "shop-service/app/mocks"
	"shop-service/app/rest/middleware"
	apperrors "shop-service/app/utils/errors"
)

func newBasketHandlerTest(t *testing.T) (*BasketHandler, *mock_port.MockBasketUsecase) {
	t.Helper()

	ctrl := gomock.NewController(t)
	basketUsecase := mock_port.NewMockBasketUsecase(ctrl)
	handler := NewBasketHandler(basketUsecase, slog.Default())

	return handler, basketUsecase
}

func authedContext(e *echo.Echo, method, path, body string, userID uuid.UUID) (echo.Context, *httptest.ResponseRecorder) {
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	} else {
		req = httptest.NewRequest(method, path, nil)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.Set(middleware.ContextUserKey, &domain.UserProfile{ID: userID, Email: "jo@x.com"})
	return c, rec
}

func TestBasketHandler_List(t *testing.T) {
	e := echo.New()
	userID := uuid.New()

	handler, basketUsecase := newBasketHandlerTest(t)

	items := []*domain.BasketItem{
		{ID: uuid.New(), UserID: userID, ItemID: uuid.New(), Name: "Laptop", Price: 999.99, Quantity: 2},
	}
	basketUsecase.EXPECT().List(gomock.Any(), userID).Return(items, nil)
	basketUsecase.EXPECT().Total(gomock.Any(), userID).Return(1999.98, nil)

	c, rec := authedContext(e, http.MethodGet, "/v1/shop/basket", "", userID)

	require.NoError(t, handler.List(c))
	assert.Equal(t, http.StatusOK, rec.Code)

	var resp BasketResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Len(t, resp.Items, 1)
	assert.InDelta(t, 1999.98, resp.Total, 0.01)
}

func TestBasketHandler_Add(t *testing.T) {
	e := echo.New()
	userID := uuid.New()
	itemID := uuid.New()

	t.Run("quantity defaults to one", func(t *testing.T) {
		handler, basketUsecase := newBasketHandlerTest(t)

		basketUsecase.EXPECT().Add(gomock.Any(), userID, itemID, 1).Return(nil)

		body := `{"item_id":"` + itemID.String() + `"}`
		c, rec := authedContext(e, http.MethodPost, "/v1/shop/basket", body, userID)

		require.NoError(t, handler.Add(c))
		assert.Equal(t, http.StatusOK, rec.Code)

		var resp MessageResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.Equal(t, "Item added to basket", resp.Message)
	})

	t.Run("explicit quantity is passed through", func(t *testing.T) {
		handler, basketUsecase := newBasketHandlerTest(t)

		basketUsecase.EXPECT().Add(gomock.Any(), userID, itemID, 3).Return(nil)

		body := `{"item_id":"` + itemID.String() + `","quantity":3}`
		c, rec := authedContext(e, http.MethodPost, "/v1/shop/basket", body, userID)

		require.NoError(t, handler.Add(c))
		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("unknown item maps to 404", func(t *testing.T) {
		handler, basketUsecase := newBasketHandlerTest(t)

		basketUsecase.EXPECT().Add(gomock.Any(), userID, itemID, 1).
			Return(apperrors.New(apperrors.ErrCodeItemNotFound, "Item not found"))

		body := `{"item_id":"` + itemID.String() + `"}`
		c, rec := authedContext(e, http.MethodPost, "/v1/shop/basket", body, userID)

		require.NoError(t, handler.Add(c))
		assert.Equal(t, http.StatusNotFound, rec.Code)

		var resp ErrorResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.Equal(t, "Item not found", resp.Error)
	})

	t.Run("malformed item id is rejected", func(t *testing.T) {
		handler, _ := newBasketHandlerTest(t)

		c, rec := authedContext(e, http.MethodPost, "/v1/shop/basket", `{"item_id":"nope"}`, userID)

		require.NoError(t, handler.Add(c))
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestBasketHandler_UpdateQuantity(t *testing.T) {
	e := echo.New()
	userID := uuid.New()
	lineID := uuid.New()

	t.Run("update succeeds", func(t *testing.T) {
		handler, basketUsecase := newBasketHandlerTest(t)

		basketUsecase.EXPECT().UpdateQuantity(gomock.Any(), lineID, 5).Return(nil)

		c, rec := authedContext(e, http.MethodPut, "/v1/shop/basket/"+lineID.String(), `{"quantity":5}`, userID)
		c.SetParamNames("lineId")
		c.SetParamValues(lineID.String())

		require.NoError(t, handler.UpdateQuantity(c))
		assert.Equal(t, http.StatusOK, rec.Code)

		var resp MessageResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.Equal(t, "Basket updated", resp.Message)
	})

	t.Run("zero quantity passes through to deletion", func(t *testing.T) {
		handler, basketUsecase := newBasketHandlerTest(t)

		basketUsecase.EXPECT().UpdateQuantity(gomock.Any(), lineID, 0).Return(nil)

		c, rec := authedContext(e, http.MethodPut, "/v1/shop/basket/"+lineID.String(), `{"quantity":0}`, userID)
		c.SetParamNames("lineId")
		c.SetParamValues(lineID.String())

		require.NoError(t, handler.UpdateQuantity(c))
		assert.Equal(t, http.StatusOK, rec.Code)
	})
}

func TestBasketHandler_Remove(t *testing.T) {
	e := echo.New()
	userID := uuid.New()
	lineID := uuid.New()

	handler, basketUsecase := newBasketHandlerTest(t)

	basketUsecase.EXPECT().Remove(gomock.Any(), lineID).Return(nil)

	c, rec := authedContext(e, http.MethodDelete, "/v1/shop/basket/"+lineID.String(), "", userID)
	c.SetParamNames("lineId")
	c.SetParamValues(lineID.String())

	require.NoError(t, handler.Remove(c))
	assert.Equal(t, http.StatusOK, rec.Code)

	var resp MessageResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "Item removed from basket", resp.Message)
}

func TestBasketHandler_Clear(t *testing.T) {
	e := echo.New()
	userID := uuid.New()

	handler, basketUsecase := newBasketHandlerTest(t)

	basketUsecase.EXPECT().Clear(gomock.Any(), userID).Return(nil)

	c, rec := authedContext(e, http.MethodDelete, "/v1/shop/basket", "", userID)

	require.NoError(t, handler.Clear(c))
	assert.Equal(t, http.StatusOK, rec.Code)

	var resp MessageResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "Basket cleared", resp.Message)
}

func TestBasketHandler_Unauthenticated(t *testing.T) {
	e := echo.New()

	handler, _ := newBasketHandlerTest(t)

	req := httptest.NewRequest(http.MethodGet, "/v1/shop/basket", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	require.NoError(t, handler.List(c))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}
