package entities

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseSpinType(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		raw     string
		want    SpinType
		wantErr bool
	}{
		{name: "normal", raw: "normal", want: SpinTypeNormal},
		{name: "vip", raw: "vip", want: SpinTypeVip},
		{name: "unknown variant", raw: "mega", wantErr: true},
		{name: "empty string", raw: "", wantErr: true},
		{name: "case sensitive", raw: "VIP", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := ParseSpinType(tt.raw)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.want, got)
			assert.True(t, got.IsValid())
		})
	}
}
