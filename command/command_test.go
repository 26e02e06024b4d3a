package command_test

import (
	"testing"

	"github.com/fwojciec/neoxbridge/command"
	"github.com/stretchr/testify/assert"
)

func TestParse(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in   string
		want command.Kind
	}{
		{"help", command.Help},
		{"  HELP  ", command.Help},
		{"status", command.Status},
		{"Examples", command.Examples},
		{"quit", command.Quit},
		{"exit", command.Quit},
		{"Bye", command.Quit},
		{"help me send 5 NEO", command.None},
		{"what is the status of my tx", command.None},
		{"", command.None},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, command.Parse(tt.in))
		})
	}
}

func TestKind_String(t *testing.T) {
	t.Parallel()
	assert.Equal(t, "quit", command.Quit.String())
	assert.Equal(t, "none", command.None.String())
}
