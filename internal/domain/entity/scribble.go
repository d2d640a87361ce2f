package entity

import "image"

// ClassStat итог обработки одного класса
type ClassStat struct {
	Color      ClassColor
	Pixels     int     // пикселей класса на холсте с отступами
	Fraction   float64 // доля класса на холсте с отступами
	Background bool    // класс признан фоном и пропущен
	Painted    int     // пикселей штриха после обрезки отступов
}

// ScribbleResult результат построения штрихов для одной маски
type ScribbleResult struct {
	Image   *image.RGBA // RGB-холст исходного размера, фон чёрный
	Classes []ClassStat
}

// Foreground возвращает классы, для которых строились штрихи
func (r *ScribbleResult) Foreground() []ClassStat {
	out := make([]ClassStat, 0, len(r.Classes))
	for _, c := range r.Classes {
		if !c.Background {
			out = append(out, c)
		}
	}
	return out
}

// FileError ошибка обработки одного файла в пакете
type FileError struct {
	Path string
	Err  error
}

// BatchReport итог пакетной обработки каталога
type BatchReport struct {
	Discovered int         // найдено файлов с подходящим расширением
	Written    []string    // пути записанных штрихов
	Failed     []FileError // файлы, обработка которых не удалась
}

// Processed возвращает количество успешно обработанных файлов
func (r *BatchReport) Processed() int {
	return len(r.Written)
}
