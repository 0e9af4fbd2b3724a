package resend

import (
	"bytes"
	"fmt"
	"html/template"

	"github.com/resend/resend-go/v2"
)

type ResendNotifier struct {
	APIKey string
	From   string
}

const subject = "Time to ShowUp! Your resolutions are waiting"

const htmlTemplate = `
<h1>Hey {{.Name}},</h1>
<p>It's time to take action on your resolutions. Consistency is the secret
sauce of the STAR method.</p>
<p><strong>Still waiting for you today:</strong></p>
<ul>
{{range .Pending}}
  <li>{{.}}</li>
{{end}}
</ul>
<p>Log your action now to keep your streak alive.</p>
`

func (r *ResendNotifier) SendDigest(email, name string, pending []string) error {
	tmpl, err := template.New("digest").Parse(htmlTemplate)
	if err != nil {
		return err
	}

	data := struct {
		Name    string
		Pending []string
	}{
		Name:    name,
		Pending: pending,
	}
	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return err
	}

	client := resend.NewClient(r.APIKey)
	params := &resend.SendEmailRequest{
		From:    r.From,
		To:      []string{email},
		Subject: subject,
		Html:    buf.String(),
	}

	if _, err := client.Emails.Send(params); err != nil {
		return fmt.Errorf("send digest to %s: %w", email, err)
	}
	return nil
}
