package service

import (
	"bytes"
	"context"
	"fmt"

	"tacticalalloc/internal/domain"
	"tacticalalloc/internal/renderer"
	"tacticalalloc/internal/repository"
	"tacticalalloc/internal/util"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
)

// EmailService is responsible for turning a finished rebalance into an
// email. It does NOT compute allocations - the report is passed in.
type EmailService interface {
	SendRebalanceReport(ctx context.Context, report *domain.RebalanceReport) error

	// GenerateRebalanceEmail returns the subject and HTML body. Exposed so the
	// content can be previewed without sending.
	GenerateRebalanceEmail(report *domain.RebalanceReport) (string, string, error)
}

type emailServiceHandler struct {
	EmailRepository repository.EmailRepository
	ToEmail         string
	markdown        goldmark.Markdown
}

func NewEmailService(
	emailRepository repository.EmailRepository,
	toEmail string,
) EmailService {
	return &emailServiceHandler{
		EmailRepository: emailRepository,
		ToEmail:         toEmail,
		markdown:        goldmark.New(goldmark.WithExtensions(extension.GFM)),
	}
}

func (h *emailServiceHandler) SendRebalanceReport(ctx context.Context, report *domain.RebalanceReport) error {
	subject, body, err := h.GenerateRebalanceEmail(report)
	if err != nil {
		return fmt.Errorf("failed to generate rebalance email: %w", err)
	}

	err = h.EmailRepository.SendEmail(ctx, h.ToEmail, subject, body)
	if err != nil {
		return fmt.Errorf("failed to send rebalance email to %s: %w", h.ToEmail, err)
	}

	return nil
}

const emailStyle = `<style>
body { font-family: -apple-system, Helvetica, Arial, sans-serif; color: #222; }
table { border-collapse: collapse; margin-bottom: 16px; }
th, td { border: 1px solid #ddd; padding: 4px 8px; }
th { background: #f4f4f4; }
</style>`

func (h *emailServiceHandler) GenerateRebalanceEmail(report *domain.RebalanceReport) (string, string, error) {
	if report == nil {
		return "", "", fmt.Errorf("cannot generate email for nil report")
	}

	subject := fmt.Sprintf("Asset allocation rebalance for %s", util.DateKey(report.Date))
	if len(report.Failures) > 0 {
		subject = fmt.Sprintf("%s (%d failed)", subject, len(report.Failures))
	}

	var html bytes.Buffer
	html.WriteString("<html><head>")
	html.WriteString(emailStyle)
	html.WriteString("</head><body>")
	if err := h.markdown.Convert([]byte(renderer.RebalanceMarkdown(report)), &html); err != nil {
		return "", "", fmt.Errorf("failed to convert report to html: %w", err)
	}
	html.WriteString("</body></html>")

	return subject, html.String(), nil
}
