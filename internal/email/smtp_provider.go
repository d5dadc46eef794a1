package email

import (
	"crypto/tls"
	"fmt"
	"net/smtp"
	"strings"
)

// SMTPProvider шлёт письма через net/smtp, с TLS или без.
type SMTPProvider struct {
	config   *SMTPConfig
	auth     smtp.Auth
	renderer TemplateRenderer
}

func NewSMTPProvider(config *SMTPConfig, renderer TemplateRenderer) *SMTPProvider {
	p := &SMTPProvider{config: config, renderer: renderer}
	if config.Username != "" && config.Password != "" {
		p.auth = smtp.PlainAuth("", config.Username, config.Password, config.Host)
	}
	return p
}

func (p *SMTPProvider) Validate() error {
	if p.config.Host == "" {
		return fmt.Errorf("SMTP host is required")
	}
	if p.config.Port <= 0 || p.config.Port > 65535 {
		return fmt.Errorf("invalid SMTP port: %d", p.config.Port)
	}
	return nil
}

func (p *SMTPProvider) Close() error { return nil }

// Send отправляет готовое письмо. Пустой From заполняется адресом из конфига.
func (p *SMTPProvider) Send(email *Email) error {
	if err := p.Validate(); err != nil {
		return err
	}
	if email.From == "" {
		email.From = p.senderLine()
	}

	client, err := p.connect()
	if err != nil {
		return err
	}
	defer client.Close()

	return p.transmit(client, email)
}

// SendWithTemplate рендерит HTML-шаблон и отправляет результат.
func (p *SMTPProvider) SendWithTemplate(templateName string, data TemplateData, email *Email) error {
	if p.renderer == nil {
		return fmt.Errorf("template renderer is not configured")
	}
	html, err := p.renderer.Render(templateName, data)
	if err != nil {
		return fmt.Errorf("failed to render template %q: %w", templateName, err)
	}
	email.HTMLBody = html
	return p.Send(email)
}

// SendNewApplicantEmail уведомляет владельца гига о новом отклике.
func (p *SMTPProvider) SendNewApplicantEmail(toEmail, ownerName, gigTitle, applicantName string) error {
	return p.SendWithTemplate(TemplateNewApplicant, TemplateData{
		"OwnerName":     ownerName,
		"GigTitle":      gigTitle,
		"ApplicantName": applicantName,
	}, &Email{
		To:      []string{toEmail},
		Subject: fmt.Sprintf("New applicant for %q", gigTitle),
	})
}

func (p *SMTPProvider) connect() (*smtp.Client, error) {
	addr := fmt.Sprintf("%s:%d", p.config.Host, p.config.Port)

	if p.config.UseTLS {
		conn, err := tls.Dial("tcp", addr, &tls.Config{ServerName: p.config.Host})
		if err != nil {
			return nil, fmt.Errorf("tls dial %s: %w", addr, err)
		}
		client, err := smtp.NewClient(conn, p.config.Host)
		if err != nil {
			conn.Close()
			return nil, fmt.Errorf("smtp handshake: %w", err)
		}
		return client, nil
	}

	client, err := smtp.Dial(addr)
	if err != nil {
		return nil, fmt.Errorf("smtp dial %s: %w", addr, err)
	}
	return client, nil
}

func (p *SMTPProvider) transmit(client *smtp.Client, email *Email) error {
	if p.auth != nil {
		if ok, _ := client.Extension("AUTH"); ok {
			if err := client.Auth(p.auth); err != nil {
				return fmt.Errorf("smtp auth: %w", err)
			}
		}
	}

	if err := client.Mail(p.config.From); err != nil {
		return fmt.Errorf("MAIL FROM: %w", err)
	}
	for _, rcpt := range email.To {
		if err := client.Rcpt(rcpt); err != nil {
			return fmt.Errorf("RCPT TO %s: %w", rcpt, err)
		}
	}

	w, err := client.Data()
	if err != nil {
		return fmt.Errorf("DATA: %w", err)
	}
	if _, err := w.Write(p.encode(email)); err != nil {
		return fmt.Errorf("write body: %w", err)
	}
	if err := w.Close(); err != nil {
		return fmt.Errorf("finish body: %w", err)
	}
	return client.Quit()
}

// encode собирает минимальное MIME-сообщение: HTML, если он есть,
// иначе plain text.
func (p *SMTPProvider) encode(email *Email) []byte {
	var b strings.Builder
	fmt.Fprintf(&b, "From: %s\r\n", email.From)
	fmt.Fprintf(&b, "To: %s\r\n", strings.Join(email.To, ","))
	fmt.Fprintf(&b, "Subject: %s\r\n", email.Subject)
	b.WriteString("MIME-Version: 1.0\r\n")

	if email.HTMLBody != "" {
		b.WriteString("Content-Type: text/html; charset=\"UTF-8\"\r\n\r\n")
		b.WriteString(email.HTMLBody)
	} else {
		b.WriteString("Content-Type: text/plain; charset=\"UTF-8\"\r\n\r\n")
		b.WriteString(email.Body)
	}
	return []byte(b.String())
}

func (p *SMTPProvider) senderLine() string {
	if p.config.FromName != "" {
		return fmt.Sprintf("%s <%s>", p.config.FromName, p.config.From)
	}
	return p.config.From
}
