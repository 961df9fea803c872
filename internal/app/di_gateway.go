package app

import (
	"taskhub/internal/gateway"
	"taskhub/internal/http"
)

// GatewayProxy returns the relay used to forward requests to resource services.
func (c *Container) GatewayProxy() *gateway.Proxy {
	c.gatewayProxyInit.Do(func() {
		c.gatewayProxy = gateway.NewProxy(c.config.ProxyTimeout, c.Logger())
	})
	return c.gatewayProxy
}

// GatewayHTTPServer returns the HTTP server for the API gateway with all
// routes registered. The gateway owns no database, so the server's readiness
// check skips the database ping.
func (c *Container) GatewayHTTPServer() (*http.Server, error) {
	c.httpServerInit.Do(func() {
		server, err := c.initGatewayHTTPServer()
		if err != nil {
			c.initErrors["httpServer"] = err
			return
		}
		c.httpServer = server
	})
	if storedErr, exists := c.initErrors["httpServer"]; exists {
		return nil, storedErr
	}
	return c.httpServer, nil
}

// initGatewayHTTPServer creates the gateway HTTP server and registers its routes.
func (c *Container) initGatewayHTTPServer() (*http.Server, error) {
	opts, err := c.serverOptions()
	if err != nil {
		return nil, err
	}

	logger := c.Logger()
	server := http.NewServer(nil, c.config.ServerHost, c.config.ServerPort, logger, opts...)

	gateway.RegisterRoutes(
		server.Engine(),
		c.IdentityClient(),
		c.GatewayProxy(),
		c.config.UserServiceURL,
		c.config.TaskServiceURL,
		logger,
	)

	return server, nil
}
