package connectivity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOracle_DefaultsOnline(t *testing.T) {
	oracle := NewConnectivityOracle()
	assert.True(t, oracle.IsOnline(), "oracle should start online")
}

func TestOracle_NotifiesOnTransitionsOnly(t *testing.T) {
	oracle := NewConnectivityOracle()

	var notifications []bool
	oracle.OnChange(func(online bool) {
		notifications = append(notifications, online)
	})

	oracle.Set(true)
	assert.Empty(t, notifications, "repeating the current state must not notify")

	oracle.Set(false)
	oracle.Set(false)
	oracle.Set(true)

	assert.Equal(t, []bool{false, true}, notifications)
	assert.True(t, oracle.IsOnline())
}

func TestOracle_MultipleSubscribers(t *testing.T) {
	oracle := NewConnectivityOracle()

	first, second := 0, 0
	oracle.OnChange(func(bool) { first++ })
	oracle.OnChange(func(bool) { second++ })

	oracle.Set(false)

	assert.Equal(t, 1, first)
	assert.Equal(t, 1, second)
}
