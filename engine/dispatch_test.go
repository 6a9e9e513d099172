package engine

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"flowmate/models"
	"flowmate/session"
)

func TestDispatchCalculateSavings(t *testing.T) {
	eng, _ := newTestEngine(t, nil)
	sess, err := eng.StartSession(context.Background())
	require.NoError(t, err)

	msg, err := eng.Dispatch(context.Background(), sess.ID, models.ActionCalculateSavings, map[string]any{
		"tasks_per_week":   float64(10),
		"minutes_per_task": float64(30),
		"hourly_rate":      float64(50),
	})
	require.NoError(t, err)

	// 10 tasks * 30 min = 5h manual, 5 * 0.7 * 0.8 = 2.8h automated away
	assert.Contains(t, msg.Content, "5.0 hours/week")
	assert.Contains(t, msg.Content, "2.8 hours/week")
	assert.Contains(t, msg.Content, "$140/week")
	require.NotNil(t, msg.Metadata)
	assert.Equal(t, "2.8 hours/week", msg.Metadata.TimeSavingsEstimate)

	snap, err := eng.Session(sess.ID)
	require.NoError(t, err)
	assert.Equal(t, 10, snap.UserContext.EstimatedTasksPerWeek)
	// only the bot message is appended, no synthetic user message
	assert.Len(t, snap.Messages, 2)
}

func TestDispatchCalculateSavingsMissingInputs(t *testing.T) {
	eng, _ := newTestEngine(t, nil)
	sess, err := eng.StartSession(context.Background())
	require.NoError(t, err)

	msg, err := eng.Dispatch(context.Background(), sess.ID, models.ActionCalculateSavings, map[string]any{
		"tasks_per_week": float64(10),
	})
	require.NoError(t, err)
	assert.Contains(t, msg.Content, "three things")

	snap, err := eng.Session(sess.ID)
	require.NoError(t, err)
	assert.Zero(t, snap.UserContext.EstimatedTasksPerWeek)
}

func TestDispatchCalculateSavingsRejectsNonPositiveRate(t *testing.T) {
	eng, _ := newTestEngine(t, nil)
	sess, err := eng.StartSession(context.Background())
	require.NoError(t, err)

	msg, err := eng.Dispatch(context.Background(), sess.ID, models.ActionCalculateSavings, map[string]any{
		"tasks_per_week":   float64(10),
		"minutes_per_task": float64(30),
		"hourly_rate":      float64(0),
	})
	require.NoError(t, err)
	assert.NotContains(t, msg.Content, "$")
}

func TestDispatchServiceInfoListsCatalog(t *testing.T) {
	eng, _ := newTestEngine(t, nil)
	sess, err := eng.StartSession(context.Background())
	require.NoError(t, err)

	msg, err := eng.Dispatch(context.Background(), sess.ID, models.ActionServiceInfo, nil)
	require.NoError(t, err)
	assert.Contains(t, msg.Content, "Basic Scripting & Automation")
	assert.Contains(t, msg.Content, "Templates")
}

func TestDispatchUnknownActionIsSafe(t *testing.T) {
	eng, _ := newTestEngine(t, nil)
	sess, err := eng.StartSession(context.Background())
	require.NoError(t, err)

	msg, err := eng.Dispatch(context.Background(), sess.ID, models.QuickActionType("open_pod_bay_doors"), nil)
	require.NoError(t, err)
	assert.NotEmpty(t, msg.Content)
	require.NotNil(t, msg.Metadata)
	assert.Len(t, msg.Metadata.QuickActions, 2)
}

func TestDispatchUnknownSession(t *testing.T) {
	eng, _ := newTestEngine(t, nil)
	_, err := eng.Dispatch(context.Background(), "missing", models.ActionServiceInfo, nil)
	assert.ErrorIs(t, err, session.ErrNotFound)
}

func TestNumberFieldCoercions(t *testing.T) {
	data := map[string]any{
		"f64": float64(4.2),
		"int": 7,
		"str": "12",
	}

	v, ok := numberField(data, "f64")
	assert.True(t, ok)
	assert.Equal(t, 4.2, v)

	v, ok = numberField(data, "int")
	assert.True(t, ok)
	assert.Equal(t, 7.0, v)

	_, ok = numberField(data, "str")
	assert.False(t, ok)

	_, ok = numberField(nil, "f64")
	assert.False(t, ok)
}
