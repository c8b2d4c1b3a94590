package configs

import (
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

var (
	JWTSecret        string
	JWTRefreshSecret string
	GoogleClientID   string

	// SMTP / despacho de relatórios
	SMTPHost     string
	SMTPPort     int
	SMTPUser     string
	SMTPPassword string
	MailFrom     string

	// Lista fixa de destinatários dos relatórios (fiscalização).
	// Propositalmente NÃO vem do request — sempre os mesmos endereços.
	ReportRecipients []string
)

// =======================
// ENV LOADER
// =======================
func LoadEnv() {
	if os.Getenv("RAILWAY_ENVIRONMENT") == "" {
		if err := godotenv.Load(); err != nil {
			log.Println("⚠️ .env não encontrado, usando ENV do sistema")
		} else {
			log.Println("✅ .env carregado!")
		}
	} else {
		log.Println("🚀 Rodando no Railway, usando ENV do sistema")
	}

	JWTSecret = GetEnv("JWT_SECRET")
	JWTRefreshSecret = GetEnv("JWT_REFRESH_SECRET")
	GoogleClientID = GetEnv("GOOGLE_CLIENT_ID")

	SMTPHost = GetEnv("SMTP_HOST")
	SMTPPort = getEnvInt("SMTP_PORT", 587)
	SMTPUser = GetEnv("SMTP_USER")
	SMTPPassword = GetEnv("SMTP_PASSWORD")
	MailFrom = GetEnv("MAIL_FROM", SMTPUser)

	ReportRecipients = splitCSV(GetEnv("REPORT_RECIPIENTS"))

	if JWTSecret == "" {
		log.Println("❌ JWT_SECRET não foi setado!")
	}
	if SMTPHost == "" {
		log.Println("⚠️ SMTP_HOST vazio — despacho de relatórios indisponível")
	}
	if len(ReportRecipients) == 0 {
		log.Println("⚠️ REPORT_RECIPIENTS vazio — relatórios não serão enviados por email")
	}
}

func GetEnv(key string, defaultValue ...string) string {
	value, exists := os.LookupEnv(key)
	if !exists && len(defaultValue) > 0 {
		return defaultValue[0]
	}
	return value
}

func getEnvInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return def
}

func splitCSV(s string) []string {
	if strings.TrimSpace(s) == "" {
		return nil
	}
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
