package services

import (
	"bytes"
	"fmt"
	"html/template"
)

const contactTextBody = `
New message from your portfolio website!

Name: %s
Email: %s
Subject: %s

Message:
%s

---
Sent from your portfolio contact form
`

var contactHTMLBody = template.Must(template.New("contact").Parse(`<html>
    <body style="font-family: Arial, sans-serif; line-height: 1.6; color: #333;">
        <h2 style="color: #6c5ce7;">New Portfolio Contact Form Submission</h2>
        <div style="background-color: #f4f4f4; padding: 20px; border-radius: 5px;">
            <p><strong>Name:</strong> {{.Name}}</p>
            <p><strong>Email:</strong> <a href="mailto:{{.Email}}">{{.Email}}</a></p>
            <p><strong>Subject:</strong> {{.Subject}}</p>
            <hr style="border: 1px solid #ddd;">
            <p><strong>Message:</strong></p>
            <p style="background-color: white; padding: 15px; border-left: 4px solid #6c5ce7; white-space: pre-wrap;">{{.Message}}</p>
        </div>
        <p style="color: #888; font-size: 12px; margin-top: 20px;">
            This email was sent from your portfolio contact form.
        </p>
    </body>
</html>
`))

// ContactEmail renders the owner notification for one submission
func ContactEmail(note ContactNotification) (Email, error) {
	var html bytes.Buffer
	if err := contactHTMLBody.Execute(&html, note); err != nil {
		return Email{}, fmt.Errorf("render contact email: %w", err)
	}
	return Email{
		To:      []string{note.Recipient},
		ReplyTo: note.Email,
		Subject: "Portfolio Contact: " + note.Subject,
		Text:    fmt.Sprintf(contactTextBody, note.Name, note.Email, note.Subject, note.Message),
		HTML:    html.String(),
	}, nil
}
