package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNetAddress_Set(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    NetAddress
		wantErr bool
	}{
		{name: "localhost with port", input: "localhost:8080", want: NetAddress{Host: "localhost", Port: 8080}},
		{name: "ip with port", input: "127.0.0.1:9090", want: NetAddress{Host: "127.0.0.1", Port: 9090}},
		{name: "empty host", input: ":8080", want: NetAddress{Host: "", Port: 8080}},
		{name: "missing port", input: "localhost", wantErr: true},
		{name: "non-numeric port", input: "localhost:abc", wantErr: true},
		{name: "zero port", input: "localhost:0", wantErr: true},
		{name: "bad host", input: "not an ip:8080", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var addr NetAddress
			err := addr.Set(tt.input)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, addr)
		})
	}
}

func TestNetAddress_String(t *testing.T) {
	assert.Equal(t, "", (&NetAddress{}).String())
	assert.Equal(t, "localhost:8080", (&NetAddress{Host: "localhost", Port: 8080}).String())
}
