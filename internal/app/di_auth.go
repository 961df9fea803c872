package app

import (
	"fmt"

	authHTTP "taskhub/internal/auth/http"
	authRepository "taskhub/internal/auth/repository"
	authService "taskhub/internal/auth/service"
	authUsecase "taskhub/internal/auth/usecase"
	"taskhub/internal/http"
)

// PasswordService returns the password hashing service.
func (c *Container) PasswordService() authService.PasswordService {
	c.passwordServiceInit.Do(func() {
		c.passwordService = authService.NewPasswordService()
	})
	return c.passwordService
}

// TokenCodec returns the token codec used to sign and verify access tokens.
func (c *Container) TokenCodec() authService.TokenCodec {
	c.tokenCodecInit.Do(func() {
		c.tokenCodec = authService.NewTokenCodec(c.config.JWTSecret, c.config.JWTExpiration)
	})
	return c.tokenCodec
}

// UserRepository returns the identity record repository based on database driver.
func (c *Container) UserRepository() (authUsecase.UserRepository, error) {
	c.userRepoInit.Do(func() {
		repo, err := c.initUserRepository()
		if err != nil {
			c.initErrors["userRepo"] = err
			return
		}
		c.userRepo = repo
	})
	if storedErr, exists := c.initErrors["userRepo"]; exists {
		return nil, storedErr
	}
	return c.userRepo, nil
}

// AuthUseCase returns the authentication use case.
func (c *Container) AuthUseCase() (authUsecase.UseCase, error) {
	c.authUseCaseInit.Do(func() {
		useCase, err := c.initAuthUseCase()
		if err != nil {
			c.initErrors["authUseCase"] = err
			return
		}
		c.authUseCase = useCase
	})
	if storedErr, exists := c.initErrors["authUseCase"]; exists {
		return nil, storedErr
	}
	return c.authUseCase, nil
}

// AuthHandler returns the HTTP handler for authentication operations.
func (c *Container) AuthHandler() (*authHTTP.AuthHandler, error) {
	c.authHandlerInit.Do(func() {
		useCase, err := c.AuthUseCase()
		if err != nil {
			c.initErrors["authHandler"] = err
			return
		}
		c.authHandler = authHTTP.NewAuthHandler(useCase, c.Logger())
	})
	if storedErr, exists := c.initErrors["authHandler"]; exists {
		return nil, storedErr
	}
	return c.authHandler, nil
}

// AuthHTTPServer returns the HTTP server for the authentication service with
// all routes registered.
func (c *Container) AuthHTTPServer() (*http.Server, error) {
	c.httpServerInit.Do(func() {
		server, err := c.initAuthHTTPServer()
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

// initUserRepository creates the identity record repository based on the database driver.
func (c *Container) initUserRepository() (authUsecase.UserRepository, error) {
	db, err := c.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get database for user repository: %w", err)
	}

	switch c.config.DBDriver {
	case "postgres":
		return authRepository.NewPostgreSQLUserRepository(db), nil
	case "mysql":
		return authRepository.NewMySQLUserRepository(db), nil
	default:
		return nil, fmt.Errorf("unsupported database driver: %s", c.config.DBDriver)
	}
}

// initAuthUseCase creates the authentication use case with all its dependencies.
func (c *Container) initAuthUseCase() (authUsecase.UseCase, error) {
	userRepo, err := c.UserRepository()
	if err != nil {
		return nil, fmt.Errorf("failed to get user repository for auth use case: %w", err)
	}

	baseUseCase := authUsecase.NewAuthUseCase(userRepo, c.PasswordService(), c.TokenCodec())

	// Wrap with metrics if enabled
	if c.config.MetricsEnabled {
		businessMetrics, err := c.BusinessMetrics()
		if err != nil {
			return nil, fmt.Errorf("failed to get business metrics for auth use case: %w", err)
		}
		return authUsecase.NewAuthUseCaseWithMetrics(baseUseCase, businessMetrics), nil
	}

	return baseUseCase, nil
}

// initAuthHTTPServer creates the auth service HTTP server and registers its routes.
func (c *Container) initAuthHTTPServer() (*http.Server, error) {
	db, err := c.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get database for auth http server: %w", err)
	}

	handler, err := c.AuthHandler()
	if err != nil {
		return nil, fmt.Errorf("failed to get auth handler for auth http server: %w", err)
	}

	opts, err := c.serverOptions()
	if err != nil {
		return nil, err
	}

	logger := c.Logger()
	server := http.NewServer(db, c.config.ServerHost, c.config.ServerPort, logger, opts...)

	engine := server.Engine()
	authGroup := engine.Group("/auth")

	// Only the credential endpoints get per-IP rate limiting; validate-token
	// carries inter-service traffic and must not be throttled with it.
	if c.config.RateLimitAuthEnabled {
		limiter := http.PerIPRateLimitMiddleware(
			c.config.RateLimitAuthRequestsPerSec,
			c.config.RateLimitAuthBurst,
			logger,
		)
		authGroup.POST("/register", limiter, handler.RegisterHandler)
		authGroup.POST("/login", limiter, handler.LoginHandler)
	} else {
		authGroup.POST("/register", handler.RegisterHandler)
		authGroup.POST("/login", handler.LoginHandler)
	}
	authGroup.POST("/validate-token", handler.ValidateTokenHandler)

	return server, nil
}
