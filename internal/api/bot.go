package telegram

import (
	"context"
	"fmt"
	"io"
	"log"
	"net/http"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"scribble-bot/internal/container"
	"scribble-bot/internal/domain/entity"
	"scribble-bot/internal/infrastructure/imageio"
)

const (
	msgStart = `👋 Привет! Я строю штриховую разметку (scribbles) по маскам сегментации.

🖼 Отправьте маску файлом, и я верну PNG со штрихами каждого класса.

📋 Команды:
/scribble — построить штрихи
/help — справка
/cancel — отменить текущую операцию`

	msgHelp = `ℹ️ Как пользоваться ботом:

1️⃣ Отправьте маску сегментации как документ (PNG, BMP, TIFF)
2️⃣ Бот найдёт классы по цветам и построит штрих для каждого
3️⃣ Вы получите PNG того же размера: штрихи цветом класса на чёрном фоне

💡 Рекомендации:
• Отправляйте маску файлом, а не фото: сжатие портит цвета классов
• Класс, занимающий больше половины изображения, считается фоном

📋 Команды:
/scribble — построить штрихи
/cancel — отменить операцию`

	msgAwaitingMask    = "🖼 Отправьте маску сегментации файлом."
	msgCancelled       = "❌ Операция отменена. Отправьте /scribble для новой маски."
	msgSendMask        = "🖼 Пожалуйста, отправьте маску сегментации файлом."
	msgUnknownCommand  = "❓ Неизвестная команда. Используйте /help для справки."
	msgProcessing      = "⏳ Строю штрихи..."
	msgPhotoWarning    = "⚠️ Фото сжато Telegram, цвета классов могли исказиться. Лучше отправить маску файлом."
	msgNotImage        = "⚠️ Это не изображение. Поддерживаются PNG, JPEG, GIF, BMP и TIFF."
	msgProcessingError = "⚠️ Не удалось обработать маску. Попробуйте другой файл."
)

// Bot представляет Telegram-бота
type Bot struct {
	api      *tgbotapi.BotAPI
	services *container.Container
}

// NewBot создаёт нового бота
func NewBot(token string, services *container.Container) (*Bot, error) {
	api, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, err
	}

	log.Printf("Authorized on account %s", api.Self.UserName)

	return &Bot{
		api:      api,
		services: services,
	}, nil
}

// Run запускает основной цикл обработки сообщений
func (b *Bot) Run(ctx context.Context) error {
	u := tgbotapi.NewUpdate(0)
	u.Timeout = 60

	updates := b.api.GetUpdatesChan(u)
	defer b.api.StopReceivingUpdates()

	for {
		select {
		case <-ctx.Done():
			return nil
		case update, ok := <-updates:
			if !ok {
				return nil
			}
			if update.Message == nil {
				continue
			}
			b.handleMessage(ctx, update.Message)
		}
	}
}

// handleMessage обрабатывает входящее сообщение
func (b *Bot) handleMessage(ctx context.Context, msg *tgbotapi.Message) {
	user, err := b.services.UserService.Get(ctx, msg.From.ID, msg.Chat.ID)
	if err != nil {
		log.Printf("Error getting user: %v", err)
		return
	}

	// Обработка команд
	if msg.IsCommand() {
		b.handleCommand(ctx, msg, user)
		return
	}

	// Маска файлом
	if msg.Document != nil {
		if !imageio.HasImageExt(msg.Document.FileName) {
			b.sendMessage(msg.Chat.ID, msgNotImage)
			return
		}
		b.handleMask(ctx, msg, msg.Document.FileID, msg.Document.FileName)
		return
	}

	// Маска фотографией (сжата)
	if len(msg.Photo) > 0 {
		b.sendMessage(msg.Chat.ID, msgPhotoWarning)
		photo := msg.Photo[len(msg.Photo)-1]
		b.handleMask(ctx, msg, photo.FileID, "photo.jpg")
		return
	}

	// Текстовое сообщение (не команда)
	b.sendMessage(msg.Chat.ID, msgSendMask)
}

// handleCommand обрабатывает команды бота
func (b *Bot) handleCommand(ctx context.Context, msg *tgbotapi.Message, user *entity.User) {
	users := b.services.UserService

	switch msg.Command() {
	case "start":
		if _, err := users.Cancel(ctx, user.ID, user.ChatID); err != nil {
			log.Printf("Error saving user: %v", err)
		}
		b.sendMessage(msg.Chat.ID, msgStart)

	case "help":
		b.sendMessage(msg.Chat.ID, msgHelp)

	case "scribble":
		if _, err := users.BeginScribble(ctx, user.ID, user.ChatID); err != nil {
			log.Printf("Error saving user: %v", err)
		}
		b.sendMessage(msg.Chat.ID, msgAwaitingMask)

	case "cancel":
		if _, err := users.Cancel(ctx, user.ID, user.ChatID); err != nil {
			log.Printf("Error saving user: %v", err)
		}
		b.sendMessage(msg.Chat.ID, msgCancelled)

	default:
		b.sendMessage(msg.Chat.ID, msgUnknownCommand)
	}
}

// handleMask скачивает маску, строит штрихи и отправляет результат
func (b *Bot) handleMask(ctx context.Context, msg *tgbotapi.Message, fileID, fileName string) {
	users := b.services.UserService

	// Устанавливаем состояние "обработка"
	if _, err := users.StartProcessing(ctx, msg.From.ID, msg.Chat.ID); err != nil {
		log.Printf("Error saving user: %v", err)
	}
	// Возвращаем в главное меню в любом случае
	defer func() {
		if err := users.Reset(ctx, msg.From.ID); err != nil {
			log.Printf("Error saving user: %v", err)
		}
	}()

	b.sendMessage(msg.Chat.ID, msgProcessing)

	data, err := b.downloadFile(ctx, fileID)
	if err != nil {
		log.Printf("Error downloading mask: %v", err)
		b.sendMessage(msg.Chat.ID, msgProcessingError)
		return
	}

	scribble, result, err := b.services.ScribbleService.ProcessImage(ctx, data)
	if err != nil {
		log.Printf("Error processing mask %s: %v", fileName, err)
		b.sendMessage(msg.Chat.ID, msgProcessingError)
		return
	}

	doc := tgbotapi.NewDocument(msg.Chat.ID, tgbotapi.FileBytes{
		Name:  imageio.ScribbleName(fileName),
		Bytes: scribble,
	})
	doc.Caption = formatSummary(result)
	if _, err := b.api.Send(doc); err != nil {
		log.Printf("Error sending document: %v", err)
	}
}

// formatSummary описывает найденные классы
func formatSummary(result *entity.ScribbleResult) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "✅ Классов: %d, со штрихами: %d", len(result.Classes), len(result.Foreground()))
	for _, c := range result.Classes {
		if c.Background {
			fmt.Fprintf(&sb, "\n• %s — фон (%.0f%%)", c.Color.Hex(), c.Fraction*100)
			continue
		}
		fmt.Fprintf(&sb, "\n• %s — %d px", c.Color.Hex(), c.Painted)
	}
	return sb.String()
}

// downloadFile скачивает файл из Telegram
func (b *Bot) downloadFile(ctx context.Context, fileID string) ([]byte, error) {
	file, err := b.api.GetFile(tgbotapi.FileConfig{FileID: fileID})
	if err != nil {
		return nil, fmt.Errorf("get file: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, file.Link(b.api.Token), nil)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("download file: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("download file: unexpected status %s", resp.Status)
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read file: %w", err)
	}

	return data, nil
}

// sendMessage отправляет текстовое сообщение
func (b *Bot) sendMessage(chatID int64, text string) {
	msg := tgbotapi.NewMessage(chatID, text)
	if _, err := b.api.Send(msg); err != nil {
		log.Printf("Error sending message: %v", err)
	}
}
