package email

import (
	"fmt"
	"html/template"
	"strings"
	"sync"
)

// Имена встроенных шаблонов.
const TemplateNewApplicant = "new_applicant"

const newApplicantTemplate = `
<html>
<body style="font-family: Arial, sans-serif; color: #222;">
  <h2>New applicant on your gig</h2>
  <p>Hi {{.OwnerName}},</p>
  <p><strong>{{.ApplicantName}}</strong> just applied to your gig
     <strong>{{.GigTitle}}</strong>.</p>
  <p>Open UniGig to review the application.</p>
  <p>— The UniGig team</p>
</body>
</html>`

// TemplateManager реализует TemplateRenderer для шаблонов email
type TemplateManager struct {
	templates map[string]*template.Template
	mutex     sync.RWMutex
}

// NewTemplateManager создает менеджер с предзагруженными шаблонами платформы.
func NewTemplateManager() *TemplateManager {
	tm := &TemplateManager{templates: make(map[string]*template.Template)}
	// Встроенные шаблоны валидны по построению.
	_ = tm.AddTemplate(TemplateNewApplicant, newApplicantTemplate)
	return tm
}

// Render рендерит шаблон с данными
func (tm *TemplateManager) Render(templateName string, data TemplateData) (string, error) {
	tm.mutex.RLock()
	tpl, exists := tm.templates[templateName]
	tm.mutex.RUnlock()

	if !exists {
		return "", fmt.Errorf("template not found: %s", templateName)
	}

	var buf strings.Builder
	if err := tpl.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("failed to execute template: %w", err)
	}
	return buf.String(), nil
}

// AddTemplate добавляет шаблон в менеджер
func (tm *TemplateManager) AddTemplate(name string, templateStr string) error {
	tpl, err := template.New(name).Parse(templateStr)
	if err != nil {
		return fmt.Errorf("failed to parse template: %w", err)
	}

	tm.mutex.Lock()
	tm.templates[name] = tpl
	tm.mutex.Unlock()
	return nil
}
