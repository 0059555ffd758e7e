package httpserver

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/Skotchmaster/food_delivery/internal/models"
	"github.com/Skotchmaster/food_delivery/internal/mykafka"
	"github.com/Skotchmaster/food_delivery/internal/service"
	"github.com/Skotchmaster/food_delivery/internal/transport"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"
)

func TestCartHandlers(t *testing.T) {
	r := initTestRepo(t)
	h := &CartHTTP{
		Svc:      &service.CartService{Repo: r},
		Producer: &mykafka.Producer{},
	}
	userID := createTestUser(t, r, 0)

	e := echo.New()

	load := transport.AddCartItemRequest{
		UserID:   userID,
		FoodID:   uuid.New(),
		Quantity: 2,
		Price:    10,
	}
	rec, c := doJSONRequest(t, e, http.MethodPost, "/cart", load)
	require.NoError(t, h.AddToCart(c))
	require.Equal(t, http.StatusCreated, rec.Code)

	var item models.CartItem
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &item))
	require.Equal(t, userID, item.UserID)
	require.Equal(t, uint(2), item.Quantity)

	recGet, cGet := doJSONRequest(t, e, http.MethodGet, "/cart/"+userID.String(), nil)
	cGet.SetParamNames("user_id")
	cGet.SetParamValues(userID.String())
	require.NoError(t, h.GetCart(cGet))
	require.Equal(t, http.StatusOK, recGet.Code)

	var items []models.CartItem
	require.NoError(t, json.Unmarshal(recGet.Body.Bytes(), &items))
	require.Len(t, items, 1)

	recUpd, cUpd := doJSONRequest(t, e, http.MethodPut, "/cart/"+item.CartID.String(), transport.UpdateCartItemRequest{Quantity: 5, Price: 12})
	cUpd.SetParamNames("cart_id")
	cUpd.SetParamValues(item.CartID.String())
	require.NoError(t, h.UpdateCartItem(cUpd))
	require.Equal(t, http.StatusOK, recUpd.Code)

	var updated models.CartItem
	require.NoError(t, json.Unmarshal(recUpd.Body.Bytes(), &updated))
	require.Equal(t, uint(5), updated.Quantity)

	recDel, cDel := doJSONRequest(t, e, http.MethodDelete, "/cart/"+item.CartID.String(), nil)
	cDel.SetParamNames("cart_id")
	cDel.SetParamValues(item.CartID.String())
	require.NoError(t, h.DeleteCartItem(cDel))
	require.Equal(t, http.StatusOK, recDel.Code)

	_, cMissing := doJSONRequest(t, e, http.MethodDelete, "/cart/"+item.CartID.String(), nil)
	cMissing.SetParamNames("cart_id")
	cMissing.SetParamValues(item.CartID.String())
	err := h.DeleteCartItem(cMissing)
	he, ok := err.(*echo.HTTPError)
	require.True(t, ok, "expected HTTPError")
	require.Equal(t, http.StatusNotFound, he.Code)
}
