package notifier

// Config настройки клиента уведомлений
type Config struct {
	SMTPHost    string
	SMTPPort    int
	From        string
	OwnerEmail  string
	ShopName    string
	ShopAddress string
}

// Metrics счетчик неудачных уведомлений. Может быть nil, если метрики выключены.
type Metrics interface {
	IncNotifyFailures()
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
