package strutil

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFold(t *testing.T) {
	assert.Equal(t, "joao", Fold("João"))
	assert.Equal(t, "inscricao", Fold("Inscrição"))
	assert.Equal(t, "maria silva", Fold("MARIA SILVA"))
	assert.Equal(t, "", Fold(""))
}

func TestContainsFold(t *testing.T) {
	assert.True(t, ContainsFold("Maria Conceição", "conceicao"))
	assert.True(t, ContainsFold("João Batista", "JOAO"))
	assert.False(t, ContainsFold("Pedro", "paulo"))
}
