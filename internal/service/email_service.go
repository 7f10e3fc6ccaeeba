package service

import (
	"bytes"
	"crypto/tls"
	"fmt"
	"mime"
	"net/mail"
	"net/smtp"
	"strings"

	"github.com/shopora-next/internal/config"
	"github.com/shopora-next/internal/constants"
	"github.com/shopora-next/internal/models"
)

// EmailService 邮件发送服务
type EmailService struct {
	cfg *config.EmailConfig
}

// NewEmailService 创建邮件服务
func NewEmailService(cfg *config.EmailConfig) *EmailService {
	return &EmailService{cfg: cfg}
}

// OrderStatusEmailInput 订单状态邮件输入
type OrderStatusEmailInput struct {
	OrderNo string
	Status  string
	Amount  models.Money
}

// SendOrderConfirmationEmail 发送下单成功通知
func (s *EmailService) SendOrderConfirmationEmail(toEmail string, input OrderStatusEmailInput) error {
	subject := fmt.Sprintf("Order %s confirmed", input.OrderNo)
	body := fmt.Sprintf(
		"Thanks for your purchase!\n\nOrder number: %s\nAmount paid: %s\n\nWe will notify you when your order ships.",
		input.OrderNo, input.Amount.String(),
	)
	return s.sendTextEmail(toEmail, subject, body)
}

// SendOrderStatusEmail 发送订单状态变更通知
func (s *EmailService) SendOrderStatusEmail(toEmail string, input OrderStatusEmailInput) error {
	subject := fmt.Sprintf("Order %s update", input.OrderNo)
	body := fmt.Sprintf(
		"Your order %s is now %s.",
		input.OrderNo, statusDisplayName(input.Status),
	)
	return s.sendTextEmail(toEmail, subject, body)
}

func statusDisplayName(status string) string {
	switch strings.ToLower(strings.TrimSpace(status)) {
	case constants.OrderStatusPending:
		return "placed"
	case constants.OrderStatusProcessing:
		return "being processed"
	case constants.OrderStatusShipped:
		return "shipped"
	case constants.OrderStatusOutForDelivery:
		return "out for delivery"
	case constants.OrderStatusDelivered:
		return "delivered"
	case constants.OrderStatusCancelled:
		return "cancelled"
	default:
		return status
	}
}

func (s *EmailService) sendTextEmail(toEmail, subject, body string) error {
	if s.cfg == nil || !s.cfg.Enabled {
		return ErrEmailServiceDisabled
	}
	if s.cfg.Host == "" || s.cfg.Port == 0 || s.cfg.From == "" {
		return ErrEmailServiceNotConfigured
	}
	if _, err := mail.ParseAddress(toEmail); err != nil {
		return ErrInvalidEmail
	}

	from := buildFromAddress(s.cfg.From, s.cfg.FromName)
	msg := buildEmailMessage(from, toEmail, subject, body)

	var auth smtp.Auth
	if s.cfg.Username != "" || s.cfg.Password != "" {
		auth = smtp.PlainAuth("", s.cfg.Username, s.cfg.Password, s.cfg.Host)
	}
	return s.deliver(auth, toEmail, []byte(msg))
}

// deliver 按配置选择连接方式投递邮件。
// UseSSL 走隐式 TLS，UseTLS 走 STARTTLS，两者都关时明文连接。
func (s *EmailService) deliver(auth smtp.Auth, toEmail string, msg []byte) error {
	client, err := s.dialSMTP()
	if err != nil {
		return err
	}
	defer client.Close()

	if auth != nil {
		if ok, _ := client.Extension("AUTH"); ok {
			if err := client.Auth(auth); err != nil {
				return err
			}
		}
	}
	return sendSMTPData(client, s.cfg.From, []string{toEmail}, msg)
}

func (s *EmailService) dialSMTP() (*smtp.Client, error) {
	addr := fmt.Sprintf("%s:%d", s.cfg.Host, s.cfg.Port)
	tlsConfig := &tls.Config{ServerName: s.cfg.Host}

	if s.cfg.UseSSL {
		conn, err := tls.Dial("tcp", addr, tlsConfig)
		if err != nil {
			return nil, err
		}
		client, err := smtp.NewClient(conn, s.cfg.Host)
		if err != nil {
			conn.Close()
			return nil, err
		}
		return client, nil
	}

	client, err := smtp.Dial(addr)
	if err != nil {
		return nil, err
	}
	if s.cfg.UseTLS {
		if err := client.StartTLS(tlsConfig); err != nil {
			client.Close()
			return nil, err
		}
	}
	return client, nil
}

func buildFromAddress(from, name string) string {
	if strings.TrimSpace(name) == "" {
		return from
	}
	encoded := mime.QEncoding.Encode("UTF-8", name)
	return (&mail.Address{Name: encoded, Address: from}).String()
}

func buildEmailMessage(from, to, subject, body string) string {
	var buf bytes.Buffer
	buf.WriteString(fmt.Sprintf("From: %s\r\n", from))
	buf.WriteString(fmt.Sprintf("To: %s\r\n", to))
	buf.WriteString(fmt.Sprintf("Subject: %s\r\n", mime.QEncoding.Encode("UTF-8", subject)))
	buf.WriteString("MIME-Version: 1.0\r\n")
	buf.WriteString("Content-Type: text/plain; charset=UTF-8\r\n")
	buf.WriteString("\r\n")
	buf.WriteString(body)
	return buf.String()
}

func sendSMTPData(client *smtp.Client, from string, to []string, msg []byte) error {
	if err := client.Mail(from); err != nil {
		return err
	}
	for _, rcpt := range to {
		if err := client.Rcpt(rcpt); err != nil {
			return err
		}
	}
	w, err := client.Data()
	if err != nil {
		return err
	}
	if _, err := w.Write(msg); err != nil {
		return err
	}
	if err := w.Close(); err != nil {
		return err
	}
	return client.Quit()
}
