package gin

import (
	"github.com/eosnetworkfoundation/vaulta-system-contract/api/groups"
	"github.com/eosnetworkfoundation/vaulta-system-contract/facade"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	logger "github.com/multiversx/mx-chain-logger-go"
)

var log = logger.GetOrCreate("api/gin")

// Start boots up the query api with the appropriate routes and handlers
func Start(listenAddress string, proxyFacade facade.ProxyContractHandler) error {
	queryFacade, err := facade.NewProxyFacade(proxyFacade)
	if err != nil {
		return err
	}

	proxyGroup, err := groups.NewProxyGroup(queryFacade)
	if err != nil {
		return err
	}

	ws := gin.Default()
	ws.Use(cors.Default())

	proxyRoutes := ws.Group("/proxy")
	proxyGroup.RegisterRoutes(proxyRoutes)

	log.Info("starting query api", "address", listenAddress)

	return ws.Run(listenAddress)
}
