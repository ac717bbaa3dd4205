package cmd

// Config carries everything the process needs from the environment:
// the HTTP listener, the Postgres connection, the JWT signing secret,
// the SMTP account used for notifications, and the restock threshold
// the background sweep alerts on.
type Config struct {
	HTTPPort           string
	DBHost             string
	DBPort             string
	DBUser             string
	DBPassword         string
	DBName             string
	DBSslMode          string
	JWTSecret          string
	SMTPHost           string
	SMTPPort           string
	SMTPSender         string
	SMTPPassword       string
	SMTPSenderName     string
	SMTPAlertRecipient string
	RestockThreshold   int
}
