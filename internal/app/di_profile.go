package app

import (
	"fmt"

	"taskhub/internal/http"
	"taskhub/internal/identity"
	profileHTTP "taskhub/internal/profile/http"
	profileRepository "taskhub/internal/profile/repository"
	profileUsecase "taskhub/internal/profile/usecase"
)

// ProfileRepository returns the user profile repository based on database driver.
func (c *Container) ProfileRepository() (profileUsecase.ProfileRepository, error) {
	c.profileRepoInit.Do(func() {
		repo, err := c.initProfileRepository()
		if err != nil {
			c.initErrors["profileRepo"] = err
			return
		}
		c.profileRepo = repo
	})
	if storedErr, exists := c.initErrors["profileRepo"]; exists {
		return nil, storedErr
	}
	return c.profileRepo, nil
}

// ProfileUseCase returns the user profile use case.
func (c *Container) ProfileUseCase() (profileUsecase.UseCase, error) {
	c.profileUseCaseInit.Do(func() {
		useCase, err := c.initProfileUseCase()
		if err != nil {
			c.initErrors["profileUseCase"] = err
			return
		}
		c.profileUseCase = useCase
	})
	if storedErr, exists := c.initErrors["profileUseCase"]; exists {
		return nil, storedErr
	}
	return c.profileUseCase, nil
}

// ProfileHandler returns the HTTP handler for profile operations.
func (c *Container) ProfileHandler() (*profileHTTP.ProfileHandler, error) {
	c.profileHandlerInit.Do(func() {
		useCase, err := c.ProfileUseCase()
		if err != nil {
			c.initErrors["profileHandler"] = err
			return
		}
		c.profileHandler = profileHTTP.NewProfileHandler(useCase, c.Logger())
	})
	if storedErr, exists := c.initErrors["profileHandler"]; exists {
		return nil, storedErr
	}
	return c.profileHandler, nil
}

// ProfileHTTPServer returns the HTTP server for the user profile service with
// all routes registered.
func (c *Container) ProfileHTTPServer() (*http.Server, error) {
	c.httpServerInit.Do(func() {
		server, err := c.initProfileHTTPServer()
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

// initProfileRepository creates the profile repository based on the database driver.
func (c *Container) initProfileRepository() (profileUsecase.ProfileRepository, error) {
	db, err := c.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get database for profile repository: %w", err)
	}

	switch c.config.DBDriver {
	case "postgres":
		return profileRepository.NewPostgreSQLProfileRepository(db), nil
	case "mysql":
		return profileRepository.NewMySQLProfileRepository(db), nil
	default:
		return nil, fmt.Errorf("unsupported database driver: %s", c.config.DBDriver)
	}
}

// initProfileUseCase creates the profile use case with all its dependencies.
func (c *Container) initProfileUseCase() (profileUsecase.UseCase, error) {
	profileRepo, err := c.ProfileRepository()
	if err != nil {
		return nil, fmt.Errorf("failed to get profile repository for profile use case: %w", err)
	}

	baseUseCase := profileUsecase.NewProfileUseCase(profileRepo)

	// Wrap with metrics if enabled
	if c.config.MetricsEnabled {
		businessMetrics, err := c.BusinessMetrics()
		if err != nil {
			return nil, fmt.Errorf("failed to get business metrics for profile use case: %w", err)
		}
		return profileUsecase.NewProfileUseCaseWithMetrics(baseUseCase, businessMetrics), nil
	}

	return baseUseCase, nil
}

// initProfileHTTPServer creates the profile service HTTP server and registers its routes.
func (c *Container) initProfileHTTPServer() (*http.Server, error) {
	db, err := c.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get database for profile http server: %w", err)
	}

	handler, err := c.ProfileHandler()
	if err != nil {
		return nil, fmt.Errorf("failed to get profile handler for profile http server: %w", err)
	}

	opts, err := c.serverOptions()
	if err != nil {
		return nil, err
	}

	logger := c.Logger()
	server := http.NewServer(db, c.config.ServerHost, c.config.ServerPort, logger, opts...)

	engine := server.Engine()
	engine.GET("/users/me", identity.AuthRequired(c.IdentityClient(), logger), handler.MeHandler)

	return server, nil
}
