package noisefilter

import (
	"strings"
	"testing"

	"github.com/CodMac/java-autotemplate/model"
	"github.com/stretchr/testify/assert"
)

type prefixFilter string

func (p prefixFilter) IsNoise(qn string) bool { return strings.HasPrefix(qn, string(p)) }

func TestGetNoiseFilter(t *testing.T) {
	t.Run("Default when not registered", func(t *testing.T) {
		f := GetNoiseFilter(model.Language("cobol"))
		assert.IsType(t, &DefaultNoiseFilter{}, f)
		assert.False(t, f.IsNoise("java.lang.String"))
	})

	t.Run("Registered filter", func(t *testing.T) {
		lang := model.Language("test-noise")
		RegisterNoiseFilter(lang, prefixFilter("java.lang."))
		assert.True(t, GetNoiseFilter(lang).IsNoise("java.lang.String"))
	})
}

func TestFilter_KeepsOrder(t *testing.T) {
	names := []string{"java.util.List", "java.lang.String", "com.acme.User"}
	assert.Equal(t, []string{"java.util.List", "com.acme.User"}, Filter(prefixFilter("java.lang."), names))
	assert.Equal(t, names, Filter(&DefaultNoiseFilter{}, names))
	assert.Empty(t, Filter(&DefaultNoiseFilter{}, nil))
}
