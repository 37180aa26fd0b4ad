package shell

import (
	"testing"

	producterrors "github.com/abgdnv/stockroom/internal/product/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_ParseCommand(t *testing.T) {
	tests := []struct {
		name    string
		choice  string
		want    Command
		wantErr bool
	}{
		{name: "first entry", choice: "1", want: CommandAdd},
		{name: "last entry", choice: "13", want: CommandExit},
		{name: "surrounding spaces", choice: "  9 ", want: CommandTotalValue},
		{name: "zero", choice: "0", wantErr: true},
		{name: "past the end", choice: "14", wantErr: true},
		{name: "negative", choice: "-1", wantErr: true},
		{name: "word", choice: "add", wantErr: true},
		{name: "empty", choice: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// when
			got, err := ParseCommand(tt.choice)
			// then
			if tt.wantErr {
				require.ErrorIs(t, err, producterrors.ErrInvalidOption)
				assert.Equal(t, producterrors.KindInvalidInput, producterrors.KindOf(err))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func Test_Command_Names(t *testing.T) {
	seen := make(map[string]bool)
	for cmd := CommandAdd; cmd <= CommandExit; cmd++ {
		assert.NotEmpty(t, cmd.Title(), "title of %d", int(cmd))
		assert.False(t, seen[cmd.String()], "duplicate name %s", cmd)
		seen[cmd.String()] = true
	}
	assert.Equal(t, "total_value", CommandTotalValue.String())
	assert.Equal(t, "command(42)", Command(42).String())
}
