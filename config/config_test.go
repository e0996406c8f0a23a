package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestGetStringTreatsBlankAsUnset(t *testing.T) {
	c := map[string]string{"PORT": "9000", "EMPTY": "  "}

	assert.Equal(t, "9000", GetString(c, "PORT", "8080"))
	assert.Equal(t, "fallback", GetString(c, "EMPTY", "fallback"))
	assert.Equal(t, "fallback", GetString(c, "MISSING", "fallback"))
	assert.Equal(t, "fallback", GetString(nil, "PORT", "fallback"))
}

func TestGetIntAndBool(t *testing.T) {
	c := map[string]string{"N": " 12 ", "BAD": "x", "ON": "true", "OFF": "0"}

	assert.Equal(t, 12, GetInt(c, "N", 1))
	assert.Equal(t, 1, GetInt(c, "BAD", 1))
	assert.True(t, GetBool(c, "ON", false))
	assert.False(t, GetBool(c, "OFF", true))
	assert.True(t, GetBool(c, "MISSING", true))
}

func TestGetSeconds(t *testing.T) {
	c := map[string]string{"NOTIFY_TIMEOUT_SECONDS": "3"}
	assert.Equal(t, 3*time.Second, GetSeconds(c, "NOTIFY_TIMEOUT_SECONDS", 10))
	assert.Equal(t, 10*time.Second, GetSeconds(c, "OTHER", 10))
}

func TestGetList(t *testing.T) {
	c := map[string]string{"ACCEPTED_ORIGINS": "https://a.example.com, ,https://b.example.com,"}
	assert.Equal(t, []string{"https://a.example.com", "https://b.example.com"}, GetList(c, "ACCEPTED_ORIGINS"))
	assert.Nil(t, GetList(c, "MISSING"))
}

func TestMergeKeepsBaseValues(t *testing.T) {
	base := map[string]string{"MAIL_SERVER": "smtp.env.example.com"}
	extra := map[string]string{"MAIL_SERVER": "smtp.ssm.example.com", "MAIL_PASSWORD": "secret"}

	got := Merge(base, extra)
	assert.Equal(t, "smtp.env.example.com", got["MAIL_SERVER"])
	assert.Equal(t, "secret", got["MAIL_PASSWORD"])

	assert.Equal(t, extra, Merge(nil, extra))
}

func TestSplit(t *testing.T) {
	k, v := split("A=b=c")
	assert.Equal(t, "A", k)
	assert.Equal(t, "b=c", v)

	k, v = split("FLAG")
	assert.Equal(t, "FLAG", k)
	assert.Equal(t, "", v)
}
