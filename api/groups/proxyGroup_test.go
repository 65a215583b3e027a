package groups

import (
	"encoding/json"
	"errors"
	"io"
	"math/big"
	"net/http"
	"net/http/httptest"
	"testing"

	apiErrors "github.com/eosnetworkfoundation/vaulta-system-contract/api/errors"
	"github.com/eosnetworkfoundation/vaulta-system-contract/api/mock"
	"github.com/eosnetworkfoundation/vaulta-system-contract/api/shared"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func startProxyServer(facade proxyFacadeHandler) *gin.Engine {
	ws := gin.New()
	group, _ := NewProxyGroup(facade)
	group.RegisterRoutes(ws.Group("/proxy"))
	return ws
}

func loadResponse(t *testing.T, body io.Reader) shared.GenericAPIResponse {
	response := shared.GenericAPIResponse{}
	err := json.NewDecoder(body).Decode(&response)
	require.NoError(t, err)
	return response
}

func TestNewProxyGroup_NilFacade(t *testing.T) {
	t.Parallel()

	group, err := NewProxyGroup(nil)
	assert.Nil(t, group)
	assert.True(t, errors.Is(err, apiErrors.ErrNilFacadeHandler))
}

func TestProxyGroup_GetBalance(t *testing.T) {
	t.Parallel()

	facade := &mock.FacadeStub{
		GetBalanceCalled: func(address string) (*big.Int, error) {
			assert.Equal(t, "616c696365", address)
			return big.NewInt(1234), nil
		},
	}
	ws := startProxyServer(facade)

	req, _ := http.NewRequest(http.MethodGet, "/proxy/616c696365/balance", nil)
	resp := httptest.NewRecorder()
	ws.ServeHTTP(resp, req)

	response := loadResponse(t, resp.Body)
	assert.Equal(t, http.StatusOK, resp.Code)
	assert.Equal(t, shared.ReturnCodeSuccess, response.Code)

	data := response.Data.(map[string]interface{})
	assert.Equal(t, "1234", data["balance"])
}

func TestProxyGroup_GetBalanceFacadeError(t *testing.T) {
	t.Parallel()

	facade := &mock.FacadeStub{
		GetBalanceCalled: func(_ string) (*big.Int, error) {
			return nil, errors.New("decode failed")
		},
	}
	ws := startProxyServer(facade)

	req, _ := http.NewRequest(http.MethodGet, "/proxy/nothex/balance", nil)
	resp := httptest.NewRecorder()
	ws.ServeHTTP(resp, req)

	response := loadResponse(t, resp.Body)
	assert.Equal(t, http.StatusInternalServerError, resp.Code)
	assert.Equal(t, shared.ReturnCodeInternalError, response.Code)
	assert.Contains(t, response.Error, apiErrors.ErrGetBalance.Error())
	assert.Contains(t, response.Error, "decode failed")
}

func TestProxyGroup_GetPayerState(t *testing.T) {
	t.Parallel()

	facade := &mock.FacadeStub{
		GetPayerStateCalled: func(_ string) (string, error) {
			return "proxy-paid", nil
		},
	}
	ws := startProxyServer(facade)

	req, _ := http.NewRequest(http.MethodGet, "/proxy/616c696365/payer-state", nil)
	resp := httptest.NewRecorder()
	ws.ServeHTTP(resp, req)

	response := loadResponse(t, resp.Body)
	assert.Equal(t, http.StatusOK, resp.Code)

	data := response.Data.(map[string]interface{})
	assert.Equal(t, "proxy-paid", data["payerState"])
}

func TestProxyGroup_GetBlocked(t *testing.T) {
	t.Parallel()

	facade := &mock.FacadeStub{
		IsBlockedCalled: func(_ string) (bool, error) {
			return true, nil
		},
	}
	ws := startProxyServer(facade)

	req, _ := http.NewRequest(http.MethodGet, "/proxy/616c696365/blocked", nil)
	resp := httptest.NewRecorder()
	ws.ServeHTTP(resp, req)

	response := loadResponse(t, resp.Body)
	assert.Equal(t, http.StatusOK, resp.Code)

	data := response.Data.(map[string]interface{})
	assert.Equal(t, true, data["blocked"])
}

func TestProxyGroup_GetProxyRAMBytes(t *testing.T) {
	t.Parallel()

	facade := &mock.FacadeStub{
		GetProxyRAMBytesCalled: func() (*big.Int, error) {
			return big.NewInt(480), nil
		},
	}
	ws := startProxyServer(facade)

	req, _ := http.NewRequest(http.MethodGet, "/proxy/ram-bytes", nil)
	resp := httptest.NewRecorder()
	ws.ServeHTTP(resp, req)

	response := loadResponse(t, resp.Body)
	assert.Equal(t, http.StatusOK, resp.Code)

	data := response.Data.(map[string]interface{})
	assert.Equal(t, "480", data["proxyRamBytes"])
}
