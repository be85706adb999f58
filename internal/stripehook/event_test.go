package stripehook

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeEventUnrecognizedKeepsRawType(t *testing.T) {
	ev, err := DecodeEvent([]byte(`{"type":"charge.refunded","data":{"object":{"id":"ch_1"}}}`))
	require.NoError(t, err)

	unrec, ok := ev.(Unrecognized)
	require.True(t, ok)
	assert.Equal(t, "charge.refunded", unrec.Type)
}

func TestDecodeEventPrefersNestedMetadata(t *testing.T) {
	body := []byte(`{"type":"checkout.session.completed",` +
		`"metadata":{"userId":"99","tierId":"99"},` +
		`"data":{"object":{"id":"cs_2","metadata":{"userId":"7","tierId":"2"}}}}`)

	ev, err := DecodeEvent(body)
	require.NoError(t, err)

	checkout, ok := ev.(CheckoutCompleted)
	require.True(t, ok)
	assert.Equal(t, "7", checkout.UserID)
	assert.Equal(t, "2", checkout.TierID)
	assert.Equal(t, "cs_2", checkout.SessionID)
}

func TestDecodeEventFallsBackOnEventID(t *testing.T) {
	ev, err := DecodeEvent([]byte(`{"id":"evt_9","type":"checkout.session.completed","metadata":{"userId":"7","tierId":"2"}}`))
	require.NoError(t, err)

	checkout := ev.(CheckoutCompleted)
	assert.Equal(t, "evt_9", checkout.SessionID)
}

func TestDecodeEventRejectsInvalidJSON(t *testing.T) {
	_, err := DecodeEvent([]byte(`{"type":`))
	assert.Error(t, err)
}
