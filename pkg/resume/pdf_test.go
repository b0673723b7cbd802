package resume

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExtractTextRejectsNonPDF(t *testing.T) {
	_, err := ExtractText([]byte("definitely not a pdf"))
	assert.Error(t, err)
}

func TestFallbackHasEmptyCollections(t *testing.T) {
	s := Fallback("garbage")

	assert.Equal(t, "Unknown", s.Name)
	assert.NotNil(t, s.Skills)
	assert.NotNil(t, s.Projects)
	assert.NotNil(t, s.Experience)
	assert.Equal(t, "garbage", s.RawParse)
}
