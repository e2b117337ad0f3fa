package registry

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func Test_New(t *testing.T) {
	testCases := []struct {
		name      string
		names     []string
		expectErr bool
	}{
		{
			name:  "empty registry has only END",
			names: nil,
		},
		{
			name:  "ordinary terminal list",
			names: []string{"PLUS", "STAR", "NUMBER"},
		},
		{
			name:      "duplicate name rejected",
			names:     []string{"PLUS", "PLUS"},
			expectErr: true,
		},
		{
			name:      "empty name rejected",
			names:     []string{""},
			expectErr: true,
		},
		{
			name:      "explicit END rejected",
			names:     []string{"END"},
			expectErr: true,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert := assert.New(t)

			reg, err := New(tc.names...)
			if tc.expectErr {
				assert.Error(err)
				return
			}
			assert.NoError(err)

			assert.Equal(len(tc.names)+1, reg.Len())

			idx, ok := reg.Index(End)
			assert.True(ok)
			assert.Equal(EndIndex, idx)

			for i, n := range tc.names {
				idx, ok := reg.Index(n)
				assert.True(ok)
				assert.Equal(i+1, idx)
			}
		})
	}
}

func Test_Load(t *testing.T) {
	doc := `
[[terminal]]
name = "PLUS"

[[terminal]]
name = "NUMBER"
`
	assert := assert.New(t)

	reg, err := Load(strings.NewReader(doc))
	assert.NoError(err)
	assert.Equal(3, reg.Len())
	assert.True(reg.Has("PLUS"))
	assert.True(reg.Has("NUMBER"))
	assert.Equal([]string{"PLUS", "NUMBER"}, reg.Terminals())
}

func Test_Registry_NameRoundTrip(t *testing.T) {
	assert := assert.New(t)

	reg, err := New("PLUS", "NUMBER")
	assert.NoError(err)

	name, ok := reg.Name(1)
	assert.True(ok)
	assert.Equal("PLUS", name)

	_, ok = reg.Name(reg.Len())
	assert.False(ok)
}
