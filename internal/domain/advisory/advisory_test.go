package advisory

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestImageFormat(t *testing.T) {
	tests := []struct {
		mime    string
		want    string
		wantErr bool
	}{
		{mime: "image/png", want: "png"},
		{mime: "image/jpeg", want: "jpeg"},
		{mime: "image/jpg", want: "jpeg"},
		{mime: "image/gif", wantErr: true},
		{mime: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.mime, func(t *testing.T) {
			got, err := ImageFormat(tt.mime)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrUnsupportedImage)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
