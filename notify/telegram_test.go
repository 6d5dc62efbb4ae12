package notify

import (
	"log"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func testLogger() *log.Logger {
	return log.New(os.Stderr, "", 0)
}

func TestDisabledWithoutCredentials(t *testing.T) {
	n := New("", "", testLogger())
	assert.False(t, n.Enabled())

	// Every send path is a no-op on a disabled notifier.
	n.Send("hello")
	n.SendEnrollment("Abdulloh", "+998901234567", "Arab tili", "Online")
	n.SendContact("Fotima", "+998907654321", "Assalomu alaykum")
}

func TestDisabledWithBadChatID(t *testing.T) {
	n := New("123456:token", "not-a-number", testLogger())
	assert.False(t, n.Enabled())
}

func TestEnrollmentMessage(t *testing.T) {
	at := time.Date(2025, 3, 14, 9, 30, 0, 0, time.UTC)
	text := enrollmentMessage("Abdulloh", "+998901234567", "Arab tili", "Online", at)

	assert.Contains(t, text, "Yangi kursga yozilish")
	assert.Contains(t, text, "<b>Ism:</b> Abdulloh")
	assert.Contains(t, text, "<b>Telefon:</b> +998901234567")
	assert.Contains(t, text, "<b>Kurs:</b> Arab tili")
	assert.Contains(t, text, "<b>Kategoriya:</b> Online")
	assert.Contains(t, text, "2025-03-14 09:30")
}

func TestContactMessage(t *testing.T) {
	at := time.Date(2025, 3, 14, 9, 30, 0, 0, time.UTC)

	text := contactMessage("Fotima", "+998907654321", "Assalomu alaykum", at)
	assert.Contains(t, text, "Yangi xabar")
	assert.Contains(t, text, "<b>Xabar:</b> Assalomu alaykum")

	// An empty message drops the message line entirely.
	text = contactMessage("Fotima", "+998907654321", "", at)
	assert.NotContains(t, text, "Xabar:</b>")
}
