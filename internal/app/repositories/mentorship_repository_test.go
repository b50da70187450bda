package repositories

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLockMentorshipQuery(t *testing.T) {
	sql, args, err := lockMentorshipQuery(42).ToSql()
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(sql, "SELECT m.id, "), sql)
	assert.Contains(t, sql, "FROM mentorships m WHERE m.id = $1")
	assert.True(t, strings.HasSuffix(sql, " FOR UPDATE"), sql)
	assert.NotContains(t, sql, "participant_count", "the count is taken after the lock, not in the locking select")
	assert.Equal(t, []interface{}{int64(42)}, args)
}

func TestParticipantExistsQuery(t *testing.T) {
	sql, args, err := participantExistsQuery(7, 9).ToSql()
	require.NoError(t, err)

	assert.Equal(t,
		"SELECT EXISTS ( SELECT 1 FROM mentorship_participants WHERE mentorship_id = $1 AND student_id = $2 )",
		sql)
	assert.Equal(t, []interface{}{int64(7), int64(9)}, args)
}
