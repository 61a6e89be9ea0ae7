package mail

type LeadNotificationData struct {
	Name    string
	Email   string
	Phone   string
	City    string
	Message string
	Source  string
}

type EmailSender struct {
	Host     string
	Port     int
	User     string
	Password string
	From     string
	NotifyTo string
}
