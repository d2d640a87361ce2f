package port

import "image"

// ImageStore интерфейс доступа к растровым файлам
type ImageStore interface {
	// List возвращает изображения каталога с поддерживаемыми расширениями
	List(dir string) ([]string, error)

	// Read читает и декодирует изображение
	Read(path string) (image.Image, error)

	// Write сохраняет изображение в PNG, создавая каталог при необходимости
	Write(path string, img image.Image) error

	// Decode декодирует изображение из байтов
	Decode(data []byte) (image.Image, error)

	// Encode кодирует изображение в PNG
	Encode(img image.Image) ([]byte, error)
}
