package shipping

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"storefront-backend/internal/models"
)

func testQuery() models.ShippingFeeQuery {
	return models.ShippingFeeQuery{
		Pickup:         models.Address{Province: "Hanoi", District: "Ba Dinh"},
		Delivery:       models.Address{Province: "Da Nang", District: "Hai Chau"},
		WeightGrams:    600,
		DeclaredValue:  400000,
		DeliveryOption: models.DeliveryOptionNone,
		TransportMode:  models.TransportModeRoad,
	}
}

func carrierStub(t *testing.T, body string) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, calculateFeePath, r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(body))
	}))
}

func TestCalculateFeeSuccess(t *testing.T) {
	server := carrierStub(t, `{"success":true,"result":{"success":true,"fee":35000}}`)
	defer server.Close()

	client := NewClient(server.URL, "test-token")
	result, err := client.CalculateFee(context.Background(), testQuery())

	require.NoError(t, err)
	assert.True(t, result.Success)
	assert.Equal(t, float64(35000), result.Fee)
	assert.Empty(t, result.Reason)
}

func TestCalculateFeeSendsTokenAndQuery(t *testing.T) {
	var gotToken string
	var gotQuery models.ShippingFeeQuery
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotToken = r.Header.Get("Token")
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotQuery))
		w.Write([]byte(`{"success":true,"result":{"success":true,"fee":1}}`))
	}))
	defer server.Close()

	client := NewClient(server.URL, "secret-token")
	_, err := client.CalculateFee(context.Background(), testQuery())

	require.NoError(t, err)
	assert.Equal(t, "secret-token", gotToken)
	assert.Equal(t, testQuery(), gotQuery)
}

func TestCalculateFeeOuterFailure(t *testing.T) {
	server := carrierStub(t, `{"success":false,"message":"invalid district"}`)
	defer server.Close()

	client := NewClient(server.URL, "")
	result, err := client.CalculateFee(context.Background(), testQuery())

	require.NoError(t, err)
	assert.False(t, result.Success)
	assert.Equal(t, "invalid district", result.Reason)
}

func TestCalculateFeeInnerFailure(t *testing.T) {
	server := carrierStub(t, `{"success":true,"result":{"success":false,"message":"route not served"}}`)
	defer server.Close()

	client := NewClient(server.URL, "")
	result, err := client.CalculateFee(context.Background(), testQuery())

	require.NoError(t, err)
	assert.False(t, result.Success)
	assert.Equal(t, "route not served", result.Reason)
}

func TestCalculateFeeNonNumericFee(t *testing.T) {
	server := carrierStub(t, `{"success":true,"result":{"success":true,"fee":"not-a-number"}}`)
	defer server.Close()

	client := NewClient(server.URL, "")
	result, err := client.CalculateFee(context.Background(), testQuery())

	require.NoError(t, err)
	assert.False(t, result.Success)
	assert.NotEmpty(t, result.Reason)
}

func TestCalculateFeeMissingFee(t *testing.T) {
	server := carrierStub(t, `{"success":true,"result":{"success":true}}`)
	defer server.Close()

	client := NewClient(server.URL, "")
	result, err := client.CalculateFee(context.Background(), testQuery())

	require.NoError(t, err)
	assert.False(t, result.Success)
	assert.NotEmpty(t, result.Reason)
}

func TestCalculateFeeMissingResult(t *testing.T) {
	server := carrierStub(t, `{"success":true}`)
	defer server.Close()

	client := NewClient(server.URL, "")
	result, err := client.CalculateFee(context.Background(), testQuery())

	require.NoError(t, err)
	assert.False(t, result.Success)
	assert.NotEmpty(t, result.Reason)
}

func TestCalculateFeeServerError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	client := NewClient(server.URL, "")
	_, err := client.CalculateFee(context.Background(), testQuery())

	require.Error(t, err)
}

func TestCalculateFeeUnreachable(t *testing.T) {
	client := NewClient("http://127.0.0.1:1", "")
	_, err := client.CalculateFee(context.Background(), testQuery())

	require.Error(t, err)
}
