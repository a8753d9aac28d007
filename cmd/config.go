package cmd

import "time"

type Config struct {
	HTTPPort   string
	JWTSecret  string
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBSslMode  string

	RabbitURL         string
	NotificationQueue string

	CloudinaryCloudName string
	CloudinaryAPIKey    string
	CloudinaryAPISecret string
	CloudinaryFolder    string

	PaymentPendingCutoff time.Duration
}
