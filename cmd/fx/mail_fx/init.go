package mail_fx

import (
	"go.uber.org/fx"
	"go.uber.org/zap"

	"gotham/internal/config"
	"gotham/internal/services"
)

var Module = fx.Provide(provideMailService)

func provideMailService(cfg *config.Config, log *zap.Logger) services.IMailService {
	mailService, err := services.NewSMTPMailService(services.SMTPConfig{
		Host:     cfg.SMTP.Host,
		Port:     cfg.SMTP.Port,
		Username: cfg.SMTP.Username,
		Password: cfg.SMTP.Password,
		From:     cfg.SMTP.From,
		FromName: cfg.SMTP.FromName,
		UseSSL:   cfg.SMTP.Port == 465,

		AppName:    "Gotham Planner",
		AppBaseURL: cfg.Auth.AppBaseURL,
	})
	if err != nil {
		log.Error("Failed to initialize SMTP mail service", zap.Error(err))
	}

	return mailService
}
