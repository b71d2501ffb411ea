package apperr

import (
	"errors"
	"fmt"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKindOf(t *testing.T) {
	assert.Equal(t, KindConfigMissing, KindOf(ConfigMissing("key unset", "export it")))
	assert.Equal(t, KindResourceMissing, KindOf(ResourceMissing("/tmp/x", os.ErrNotExist)))
	assert.Equal(t, KindUpstream, KindOf(Upstream(fmt.Errorf("boom"))))
	assert.Equal(t, Kind(""), KindOf(fmt.Errorf("plain")))
	assert.Equal(t, Kind(""), KindOf(nil))
}

func TestKindOf_Wrapped(t *testing.T) {
	err := fmt.Errorf("load store: %w", ResourceMissing("/tmp/x", os.ErrNotExist))
	assert.True(t, IsKind(err, KindResourceMissing))
}

func TestUnwrap(t *testing.T) {
	cause := os.ErrNotExist
	err := ResourceMissing("/tmp/x", cause)
	assert.True(t, errors.Is(err, os.ErrNotExist))
	assert.Contains(t, err.Error(), "/tmp/x")
}
