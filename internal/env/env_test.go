package env

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestViper_DefaultsWithoutEnvironment(t *testing.T) {
	t.Setenv("EASE_DEBUG", "")
	t.Setenv("CI", "")
	t.Setenv("EASE_TESTING_DEPRECATIONS", "")
	t.Setenv("EASE_AJAX", "")

	e := New(Defaults{})

	assert.False(t, e.DebugMode())
	assert.False(t, e.CI())
	assert.False(t, e.TestingDeprecations())
	assert.False(t, e.Ajax())
}

func TestViper_DefaultDebugFromConfig(t *testing.T) {
	t.Setenv("EASE_DEBUG", "")

	assert.True(t, New(Defaults{Debug: true}).DebugMode())
}

func TestViper_EnvironmentOverridesDefaults(t *testing.T) {
	t.Setenv("EASE_DEBUG", "false")
	t.Setenv("CI", "true")
	t.Setenv("EASE_TESTING_DEPRECATIONS", "1")
	t.Setenv("EASE_AJAX", "true")

	e := New(Defaults{Debug: true})

	assert.False(t, e.DebugMode())
	assert.True(t, e.CI())
	assert.True(t, e.TestingDeprecations())
	assert.True(t, e.Ajax())
}

func TestViper_ReadsAtCallTime(t *testing.T) {
	t.Setenv("CI", "")
	e := New(Defaults{})
	assert.False(t, e.CI())

	t.Setenv("CI", "true")
	assert.True(t, e.CI())
}

func TestViper_AjaxPredicate(t *testing.T) {
	t.Setenv("EASE_AJAX", "true")

	inAjax := false
	e := New(Defaults{}, WithAjax(func() bool { return inAjax }))
	assert.False(t, e.Ajax())

	inAjax = true
	assert.True(t, e.Ajax())
}

func TestViper_SetOverridesEnvironment(t *testing.T) {
	t.Setenv("EASE_DEBUG", "false")

	e := New(Defaults{})
	e.Set(KeyDebug, true)

	assert.True(t, e.DebugMode())
}

func TestViper_CIAcceptsAnyServiceValue(t *testing.T) {
	tests := []struct {
		value string
		want  bool
	}{
		{"", false},
		{"0", false},
		{"false", false},
		{"FALSE", false},
		{"1", true},
		{"true", true},
		{"yes", true},
		{"woodpecker", true},
	}

	for _, tt := range tests {
		t.Run(tt.value, func(t *testing.T) {
			t.Setenv("CI", tt.value)
			assert.Equal(t, tt.want, New(Defaults{}).CI())
		})
	}
}

func TestViper_SetCI(t *testing.T) {
	t.Setenv("CI", "")

	e := New(Defaults{})
	e.Set(KeyCI, true)

	assert.True(t, e.CI())
}
