package broadcast

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"drama-bot/models"
)

type fakeSender struct {
	failFor map[string]bool
	sent    []string
}

func (f *fakeSender) SendDM(userID, content string) error {
	if f.failFor[userID] {
		return errors.New("blocked the bot")
	}
	f.sent = append(f.sent, userID)
	return nil
}

func userList(n int) []models.User {
	users := make([]models.User, 0, n)
	for i := 1; i <= n; i++ {
		users = append(users, models.User{UserID: fmt.Sprintf("user%d", i)})
	}
	return users
}

func TestSendCountsFailuresWithoutAborting(t *testing.T) {
	sender := &fakeSender{failFor: map[string]bool{"user3": true}}

	result := Send(userList(5), "new drama is up", sender)

	assert.Equal(t, 5, result.Total)
	assert.Equal(t, 4, result.Sent)
	assert.Equal(t, 1, result.Failed)
	// Delivery continued past the failure, in order.
	assert.Equal(t, []string{"user1", "user2", "user4", "user5"}, sender.sent)
}

func TestSendEmptyUserList(t *testing.T) {
	sender := &fakeSender{}
	result := Send(nil, "hello", sender)

	assert.Zero(t, result.Total)
	assert.Zero(t, result.Sent)
	assert.Zero(t, result.Failed)
}
