package logfields

import (
	"errors"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHelperKeys(t *testing.T) {
	cases := []struct {
		attr slog.Attr
		key  string
		val  string
	}{
		{Category("学习"), KeyCategory, "学习"},
		{Path("/docs/a.md"), KeyPath, "/docs/a.md"},
		{Kind("cycle"), KeyKind, "cycle"},
		{Output("-"), KeyOutput, "-"},
	}
	for _, c := range cases {
		assert.Equal(t, c.key, c.attr.Key)
		assert.Equal(t, c.val, c.attr.Value.String())
	}
}

func TestIntHelpers(t *testing.T) {
	assert.Equal(t, int64(4), Entries(4).Value.Int64())
	assert.Equal(t, int64(2), Events(2).Value.Int64())
}

func TestError(t *testing.T) {
	assert.Equal(t, "", Error(nil).Value.String())
	assert.Equal(t, "boom", Error(errors.New("boom")).Value.String())
}
