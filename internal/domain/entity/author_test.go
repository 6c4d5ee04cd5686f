package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewAuthor(t *testing.T) {
	author, err := NewAuthor("Alice")
	require.NoError(t, err)

	assert.Equal(t, int64(0), author.ID)
	assert.Equal(t, "Alice", author.Name)
}

func TestNewAuthor_EmptyName(t *testing.T) {
	author, err := NewAuthor("")
	assert.Nil(t, author)

	var vErr *ValidationError
	require.ErrorAs(t, err, &vErr)
	assert.Equal(t, "name", vErr.Field)
}

func TestAuthor_ZeroValue(t *testing.T) {
	var author Author

	assert.Equal(t, int64(0), author.ID)
	assert.Equal(t, "", author.Name)
}
