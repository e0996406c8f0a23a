package services

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestContactEmail(t *testing.T) {
	email, err := ContactEmail(ContactNotification{
		Recipient: "owner@example.com",
		Name:      "Ada <script>",
		Email:     "ada@example.com",
		Subject:   "Collab",
		Message:   "Line one\nLine two",
	})
	require.NoError(t, err)

	assert.Equal(t, "Portfolio Contact: Collab", email.Subject)
	assert.Equal(t, "ada@example.com", email.ReplyTo)
	assert.Equal(t, []string{"owner@example.com"}, email.To)

	assert.Contains(t, email.Text, "Name: Ada <script>\nEmail: ada@example.com\nSubject: Collab\n")
	assert.Contains(t, email.Text, "Message:\nLine one\nLine two\n")
	assert.True(t, strings.HasPrefix(email.Text, "\nNew message from your portfolio website!"))

	assert.Contains(t, email.HTML, "Ada &lt;script&gt;")
	assert.NotContains(t, email.HTML, "<script>")
	assert.Contains(t, email.HTML, "mailto:ada@example.com")
}

func TestSMSBodyIsTruncated(t *testing.T) {
	short := smsBody(ContactNotification{Name: "Ada", Email: "ada@example.com", Subject: "Hi"})
	assert.Equal(t, "Portfolio contact from Ada <ada@example.com>: Hi", short)

	long := smsBody(ContactNotification{Name: "Ada", Subject: strings.Repeat("é", 500)})
	assert.Equal(t, smsMaxBody, len([]rune(long)))
	assert.True(t, strings.HasSuffix(long, "..."))
}
