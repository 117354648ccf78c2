package shipment

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTimestampJSON(t *testing.T) {
	ts := Timestamp{Time: time.Date(2025, 5, 21, 14, 10, 8, 0, time.Local)}
	b, err := json.Marshal(ts)
	require.NoError(t, err)
	assert.Equal(t, `"2025-05-21T14:10:08"`, string(b))

	var back Timestamp
	require.NoError(t, json.Unmarshal(b, &back))
	assert.True(t, back.Equal(ts.Time))

	assert.Error(t, json.Unmarshal([]byte(`"2025-05-21T14:10:08Z"`), &back))
	assert.Error(t, json.Unmarshal([]byte(`12`), &back))
}

func TestStatusValid(t *testing.T) {
	for _, s := range []Status{StatusInTransit, StatusAvailable, StatusBroken} {
		assert.True(t, s.Valid(), s)
	}
	assert.False(t, Status("delivered").Valid())
	assert.False(t, Status("").Valid())
}
