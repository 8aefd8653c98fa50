package reconcile

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalize(t *testing.T) {
	assert.Equal(t, "", Normalize(""))
	assert.Equal(t, "", Normalize("   "))
	assert.Equal(t, "C1", Normalize("  C1  "))
	assert.Equal(t, "Intro to Art", Normalize("\tIntro to Art\n"))
}

func TestNormalizeForCompare(t *testing.T) {
	assert.Equal(t, "c1", NormalizeForCompare(" C1 "))
	assert.Equal(t, "intro", NormalizeForCompare("INTRO"))
	assert.Equal(t, "", NormalizeForCompare("  "))
}
