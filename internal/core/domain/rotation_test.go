package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func links(kinds ...LinkKind) []MarketingLink {
	out := make([]MarketingLink, len(kinds))
	for i, k := range kinds {
		out[i] = MarketingLink{ID: int64(i + 1), Kind: k}
	}
	return out
}

func ids(ls []MarketingLink) []int64 {
	out := make([]int64, len(ls))
	for i, l := range ls {
		out[i] = l.ID
	}
	return out
}

func TestNextIndex(t *testing.T) {
	three := links(LinkKindDefault, LinkKindDefault, LinkKindDefault)
	id := func(v int64) *int64 { return &v }

	tests := []struct {
		name string
		last *int64
		want int
	}{
		{name: "nothing served yet", last: nil, want: 0},
		{name: "first", last: id(1), want: 1},
		{name: "middle", last: id(2), want: 2},
		{name: "wraps", last: id(3), want: 0},
		{name: "unknown restarts", last: id(99), want: 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, NextIndex(three, tt.last))
		})
	}

	assert.Equal(t, 0, NextIndex(three[:1], id(1)), "a single link is always next")
}

func TestRotationPolicyPool(t *testing.T) {
	mixed := links(LinkKindDefault, LinkKindPersonalized, LinkKindDefault, LinkKindPersonalized)

	assert.Equal(t, []int64{1, 2, 3, 4}, ids(PolicyUniform.Pool(mixed)))
	assert.Equal(t, []int64{2, 4}, ids(PolicyPersonalizedFirst.Pool(mixed)))

	defaults := links(LinkKindDefault, LinkKindDefault)
	assert.Equal(t, []int64{1, 2}, ids(PolicyPersonalizedFirst.Pool(defaults)), "falls back to default links")
	assert.Empty(t, PolicyPersonalizedFirst.Pool(nil))

	assert.True(t, PolicyUniform.Valid())
	assert.True(t, PolicyPersonalizedFirst.Valid())
	assert.False(t, RotationPolicy("weighted").Valid())
}

func TestIndexOf(t *testing.T) {
	ls := links(LinkKindDefault, LinkKindDefault)
	assert.Equal(t, 1, IndexOf(ls, 2))
	assert.Equal(t, -1, IndexOf(ls, 5))
}
