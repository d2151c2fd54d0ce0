package services

import (
	"github.com/sirupsen/logrus"

	"github.com/freelancenexus/nexus-go/src/logger"
)

// EmailSender delivers transactional mail. The default implementation
// only logs; SMTP delivery can be swapped in without touching callers.
type EmailSender interface {
	Send(to, subject, body string) error
}

type LogEmailSender struct{}

func NewLogEmailSender() *LogEmailSender {
	return &LogEmailSender{}
}

func (s *LogEmailSender) Send(to, subject, body string) error {
	logger.WithFields(logrus.Fields{
		"to":      to,
		"subject": subject,
	}).Info("Email dispatched: " + body)
	return nil
}
