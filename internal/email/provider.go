package email

// Provider определяет интерфейс для отправки email
type Provider interface {
	// Send отправляет простое email сообщение
	Send(email *Email) error

	// SendWithTemplate отправляет email используя шаблон
	SendWithTemplate(templateName string, data TemplateData, email *Email) error

	// SendNewApplicantEmail уведомляет владельца гига о новом отклике
	SendNewApplicantEmail(toEmail, ownerName, gigTitle, applicantName string) error

	// Validate проверяет конфигурацию провайдера
	Validate() error

	// Close закрывает соединение с провайдером
	Close() error
}

// TemplateRenderer определяет интерфейс для рендеринга шаблонов
type TemplateRenderer interface {
	Render(templateName string, data TemplateData) (string, error)
	AddTemplate(name string, template string) error
}

// NoopProvider - заглушка при выключенной почте.
type NoopProvider struct{}

func NewNoopProvider() *NoopProvider { return &NoopProvider{} }

func (p *NoopProvider) Send(*Email) error { return nil }

func (p *NoopProvider) SendWithTemplate(string, TemplateData, *Email) error { return nil }

func (p *NoopProvider) SendNewApplicantEmail(string, string, string, string) error { return nil }

func (p *NoopProvider) Validate() error { return nil }

func (p *NoopProvider) Close() error { return nil }
