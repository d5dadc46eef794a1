package services

// LiveNotifier доставляет событие подключённому пользователю через
// websocket-хаб. Возвращает true, если клиент был онлайн и событие ушло.
// Реализация живёт в пакете ws; сервисы зависят только от интерфейса.
type LiveNotifier interface {
	SendToUser(userID string, event string, payload interface{}) bool
	IsClientConnected(userID string) bool
}

// EmailNotifier шлёт письма о событиях платформы. Все вызовы best-effort:
// отказ почты никогда не валит бизнес-операцию.
type EmailNotifier interface {
	SendNewApplicantEmail(toEmail, ownerName, gigTitle, applicantName string) error
}
