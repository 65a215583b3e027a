package groups

import (
	"fmt"
	"math/big"
	"net/http"

	"github.com/eosnetworkfoundation/vaulta-system-contract/api/errors"
	"github.com/eosnetworkfoundation/vaulta-system-contract/api/shared"
	"github.com/gin-gonic/gin"
	"github.com/multiversx/mx-chain-core-go/core/check"
)

const (
	getBalancePath       = "/:address/balance"
	getPayerStatePath    = "/:address/payer-state"
	getBlockedPath       = "/:address/blocked"
	getProxyRAMBytesPath = "/ram-bytes"
)

// proxyFacadeHandler defines the methods to be implemented by a facade for handling proxy queries
type proxyFacadeHandler interface {
	GetBalance(address string) (*big.Int, error)
	GetPayerState(address string) (string, error)
	IsBlocked(address string) (bool, error)
	GetProxyRAMBytes() (*big.Int, error)
	IsInterfaceNil() bool
}

type proxyGroup struct {
	facade proxyFacadeHandler
}

// NewProxyGroup returns a new instance of proxyGroup
func NewProxyGroup(facade proxyFacadeHandler) (*proxyGroup, error) {
	if check.IfNil(facade) {
		return nil, fmt.Errorf("%w for proxy group", errors.ErrNilFacadeHandler)
	}

	return &proxyGroup{
		facade: facade,
	}, nil
}

// RegisterRoutes registers the group's endpoints on the given router group
func (pg *proxyGroup) RegisterRoutes(ws *gin.RouterGroup) {
	ws.Handle(http.MethodGet, getProxyRAMBytesPath, pg.getProxyRAMBytes)
	ws.Handle(http.MethodGet, getBalancePath, pg.getBalance)
	ws.Handle(http.MethodGet, getPayerStatePath, pg.getPayerState)
	ws.Handle(http.MethodGet, getBlockedPath, pg.getBlocked)
}

// getBalance returns the wrapped balance for the address parameter
func (pg *proxyGroup) getBalance(c *gin.Context) {
	addr := c.Param("address")
	if addr == "" {
		shared.RespondWithValidationError(c, errors.ErrGetBalance, errors.ErrEmptyAddress)
		return
	}

	balance, err := pg.facade.GetBalance(addr)
	if err != nil {
		shared.RespondWithInternalError(c, errors.ErrGetBalance, err)
		return
	}

	shared.RespondWithSuccess(c, gin.H{"balance": balance.String()})
}

// getPayerState returns the storage payer state for the address parameter
func (pg *proxyGroup) getPayerState(c *gin.Context) {
	addr := c.Param("address")
	if addr == "" {
		shared.RespondWithValidationError(c, errors.ErrGetPayerState, errors.ErrEmptyAddress)
		return
	}

	state, err := pg.facade.GetPayerState(addr)
	if err != nil {
		shared.RespondWithInternalError(c, errors.ErrGetPayerState, err)
		return
	}

	shared.RespondWithSuccess(c, gin.H{"payerState": state})
}

// getBlocked returns the block-list flag for the address parameter
func (pg *proxyGroup) getBlocked(c *gin.Context) {
	addr := c.Param("address")
	if addr == "" {
		shared.RespondWithValidationError(c, errors.ErrGetBlocked, errors.ErrEmptyAddress)
		return
	}

	blocked, err := pg.facade.IsBlocked(addr)
	if err != nil {
		shared.RespondWithInternalError(c, errors.ErrGetBlocked, err)
		return
	}

	shared.RespondWithSuccess(c, gin.H{"blocked": blocked})
}

// getProxyRAMBytes returns the total storage bytes currently paid by the proxy
func (pg *proxyGroup) getProxyRAMBytes(c *gin.Context) {
	ramBytes, err := pg.facade.GetProxyRAMBytes()
	if err != nil {
		shared.RespondWithInternalError(c, errors.ErrGetProxyRAMBytes, err)
		return
	}

	shared.RespondWithSuccess(c, gin.H{"proxyRamBytes": ramBytes.String()})
}

// IsInterfaceNil returns true if there is no value under the interface
func (pg *proxyGroup) IsInterfaceNil() bool {
	return pg == nil
}
