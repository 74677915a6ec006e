package mailer

import (
	"crypto/tls"
	"fmt"
	"io"
	"net"
	"net/smtp"

	"github.com/recruitsss/recruitsss-backend/internal/config"
)

// Client is the subset of *smtp.Client the sender needs.
type Client interface {
	Mail(from string) error
	Rcpt(to string) error
	Data() (io.WriteCloser, error)
	Quit() error
	Close() error
}

// Transport opens authenticated STARTTLS connections to the SMTP server.
type Transport interface {
	Connect() (Client, error)
	From() string
}

type smtpTransport struct {
	cfg *config.Config
}

func NewTransport(cfg *config.Config) Transport {
	return &smtpTransport{cfg: cfg}
}

func (t *smtpTransport) From() string {
	return t.cfg.SMTPFrom
}

func (t *smtpTransport) Connect() (Client, error) {
	addr := t.cfg.SMTPHost + ":" + t.cfg.SMTPPort

	conn, err := net.Dial("tcp", addr)
	if err != nil {
		return nil, fmt.Errorf("mailer: dial smtp server: %w", err)
	}

	client, err := smtp.NewClient(conn, t.cfg.SMTPHost)
	if err != nil {
		conn.Close()
		return nil, fmt.Errorf("mailer: create smtp client: %w", err)
	}

	if ok, _ := client.Extension("STARTTLS"); !ok {
		client.Close()
		return nil, fmt.Errorf("mailer: smtp server does not support STARTTLS")
	}
	tlsConfig := &tls.Config{
		ServerName: t.cfg.SMTPHost,
		MinVersion: tls.VersionTLS12,
	}
	if err := client.StartTLS(tlsConfig); err != nil {
		client.Close()
		return nil, fmt.Errorf("mailer: start tls: %w", err)
	}

	auth := smtp.PlainAuth("", t.cfg.SMTPUser, t.cfg.SMTPPass, t.cfg.SMTPHost)
	if err := client.Auth(auth); err != nil {
		client.Close()
		return nil, fmt.Errorf("mailer: smtp auth: %w", err)
	}

	return client, nil
}
