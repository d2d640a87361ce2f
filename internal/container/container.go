package container

import (
	"io"

	"scribble-bot/config"
	app "scribble-bot/internal/application"
	"scribble-bot/internal/domain/port"
	"scribble-bot/internal/infrastructure/imageio"
	"scribble-bot/internal/infrastructure/vision"
)

type Container struct {
	UserService     *app.UserService
	ScribbleService *app.ScribbleService

	reducer vision.Reducer
}

// New собирает сервисы приложения по конфигурации
func New(cfg *config.Config, userRepo port.UserRepository) (*Container, error) {
	reducer, err := vision.NewReducer(cfg.Backend)
	if err != nil {
		return nil, err
	}

	// Файлы обрабатываются параллельно, классы внутри файла — последовательно.
	generator := vision.NewGenerator(reducer, 1)
	scribbleService := app.NewScribbleService(imageio.NewFileStore(), generator, cfg.Workers)

	return &Container{
		UserService:     app.NewUserService(userRepo),
		ScribbleService: scribbleService,
		reducer:         reducer,
	}, nil
}

// Close освобождает ресурсы реализации (структурные элементы OpenCV)
func (c *Container) Close() error {
	if closer, ok := c.reducer.(io.Closer); ok {
		return closer.Close()
	}
	return nil
}
