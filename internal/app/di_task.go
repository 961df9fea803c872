package app

import (
	"fmt"

	"taskhub/internal/http"
	"taskhub/internal/identity"
	taskHTTP "taskhub/internal/task/http"
	taskRepository "taskhub/internal/task/repository"
	taskUsecase "taskhub/internal/task/usecase"
)

// TaskRepository returns the task repository based on database driver.
func (c *Container) TaskRepository() (taskUsecase.TaskRepository, error) {
	c.taskRepoInit.Do(func() {
		repo, err := c.initTaskRepository()
		if err != nil {
			c.initErrors["taskRepo"] = err
			return
		}
		c.taskRepo = repo
	})
	if storedErr, exists := c.initErrors["taskRepo"]; exists {
		return nil, storedErr
	}
	return c.taskRepo, nil
}

// TaskUseCase returns the task use case.
func (c *Container) TaskUseCase() (taskUsecase.UseCase, error) {
	c.taskUseCaseInit.Do(func() {
		useCase, err := c.initTaskUseCase()
		if err != nil {
			c.initErrors["taskUseCase"] = err
			return
		}
		c.taskUseCase = useCase
	})
	if storedErr, exists := c.initErrors["taskUseCase"]; exists {
		return nil, storedErr
	}
	return c.taskUseCase, nil
}

// TaskHandler returns the HTTP handler for task operations.
func (c *Container) TaskHandler() (*taskHTTP.TaskHandler, error) {
	c.taskHandlerInit.Do(func() {
		useCase, err := c.TaskUseCase()
		if err != nil {
			c.initErrors["taskHandler"] = err
			return
		}
		c.taskHandler = taskHTTP.NewTaskHandler(useCase, c.Logger())
	})
	if storedErr, exists := c.initErrors["taskHandler"]; exists {
		return nil, storedErr
	}
	return c.taskHandler, nil
}

// TaskHTTPServer returns the HTTP server for the task service with all routes
// registered.
func (c *Container) TaskHTTPServer() (*http.Server, error) {
	c.httpServerInit.Do(func() {
		server, err := c.initTaskHTTPServer()
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

// initTaskRepository creates the task repository based on the database driver.
func (c *Container) initTaskRepository() (taskUsecase.TaskRepository, error) {
	db, err := c.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get database for task repository: %w", err)
	}

	switch c.config.DBDriver {
	case "postgres":
		return taskRepository.NewPostgreSQLTaskRepository(db), nil
	case "mysql":
		return taskRepository.NewMySQLTaskRepository(db), nil
	default:
		return nil, fmt.Errorf("unsupported database driver: %s", c.config.DBDriver)
	}
}

// initTaskUseCase creates the task use case with all its dependencies.
func (c *Container) initTaskUseCase() (taskUsecase.UseCase, error) {
	taskRepo, err := c.TaskRepository()
	if err != nil {
		return nil, fmt.Errorf("failed to get task repository for task use case: %w", err)
	}

	baseUseCase := taskUsecase.NewTaskUseCase(taskRepo)

	// Wrap with metrics if enabled
	if c.config.MetricsEnabled {
		businessMetrics, err := c.BusinessMetrics()
		if err != nil {
			return nil, fmt.Errorf("failed to get business metrics for task use case: %w", err)
		}
		return taskUsecase.NewTaskUseCaseWithMetrics(baseUseCase, businessMetrics), nil
	}

	return baseUseCase, nil
}

// initTaskHTTPServer creates the task service HTTP server and registers its routes.
func (c *Container) initTaskHTTPServer() (*http.Server, error) {
	db, err := c.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get database for task http server: %w", err)
	}

	handler, err := c.TaskHandler()
	if err != nil {
		return nil, fmt.Errorf("failed to get task handler for task http server: %w", err)
	}

	opts, err := c.serverOptions()
	if err != nil {
		return nil, err
	}

	logger := c.Logger()
	server := http.NewServer(db, c.config.ServerHost, c.config.ServerPort, logger, opts...)

	engine := server.Engine()
	taskGroup := engine.Group("/tasks", identity.AuthRequired(c.IdentityClient(), logger))
	taskGroup.POST("", handler.CreateHandler)
	taskGroup.GET("", handler.ListHandler)
	taskGroup.GET("/:id", handler.GetHandler)
	taskGroup.PUT("/:id", handler.UpdateHandler)
	taskGroup.DELETE("/:id", handler.DeleteHandler)

	return server, nil
}
