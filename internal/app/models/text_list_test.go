package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseTextList(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want TextList
	}{
		{"comma separated", "Go, Postgres ,Kubernetes", TextList{"Go", "Postgres", "Kubernetes"}},
		{"mixed delimiters", "Best paper;Patent holder\nSpeaker", TextList{"Best paper", "Patent holder", "Speaker"}},
		{"empty entries dropped", " , ;\n", TextList{}},
		{"single entry", "Founder", TextList{"Founder"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseTextList(tt.raw))
		})
	}
}

func TestTextList_UnmarshalJSON(t *testing.T) {
	var payload struct {
		Skills TextList `json:"skills"`
	}

	require.NoError(t, json.Unmarshal([]byte(`{"skills":"Go, SQL"}`), &payload))
	assert.Equal(t, TextList{"Go", "SQL"}, payload.Skills)

	require.NoError(t, json.Unmarshal([]byte(`{"skills":[" Go ","","Rust"]}`), &payload))
	assert.Equal(t, TextList{"Go", "Rust"}, payload.Skills)

	require.NoError(t, json.Unmarshal([]byte(`{"skills":null}`), &payload))
	assert.Empty(t, payload.Skills)

	assert.Error(t, json.Unmarshal([]byte(`{"skills":42}`), &payload))
	assert.Error(t, json.Unmarshal([]byte(`{"skills":[1,2]}`), &payload))
}

func TestTextList_MarshalJSON(t *testing.T) {
	var nilList TextList
	out, err := json.Marshal(nilList)
	require.NoError(t, err)
	assert.JSONEq(t, `[]`, string(out))

	out, err = json.Marshal(TextList{"a", "b"})
	require.NoError(t, err)
	assert.JSONEq(t, `["a","b"]`, string(out))
	assert.Equal(t, "a, b", TextList{"a", "b"}.String())
}

func TestMentorshipOccupancy(t *testing.T) {
	m := &Mentorship{Limit: 5, ParticipantCount: 2}
	assert.Equal(t, "2/5", m.Occupancy())
	assert.False(t, m.IsFull())

	m.ParticipantCount = 5
	assert.True(t, m.IsFull())
}

func TestEnums(t *testing.T) {
	assert.True(t, Department("AIML").IsValid())
	assert.False(t, Department("cse").IsValid())
	assert.True(t, IsAllFilter(" all "))
	assert.True(t, IsAllFilter(""))
	assert.False(t, IsAllFilter("CSE"))
	assert.Greater(t, TierFeatured.Rank(), TierNotable.Rank())
	assert.Greater(t, TierNotable.Rank(), TierNone.Rank())
	assert.False(t, HallOfFameTier("legendary").IsValid())
	assert.True(t, ModeHybrid.IsValid())
	assert.False(t, MentorshipMode("online").IsValid())
}
